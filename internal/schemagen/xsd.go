// =============================================================================
// xml-suite - XSD Serialization
// =============================================================================
//
// This module serializes an inferred structural model as an XSD document.
// The emitted schema uses a deliberately small XSD subset, which is exactly
// the subset the validator understands:
//
//   - Global xs:element declarations, referenced from parent sequences
//   - xs:complexType with xs:sequence and xs:attribute
//   - xs:simpleType with xs:restriction (xs:maxLength for strings)
//   - xs:simpleContent with xs:extension for text-carrying elements
//     that also have attributes
//
// =============================================================================

package schemagen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// WriteXSD serializes the model to outputPath, creating parent directories.
func WriteXSD(model *Model, outputPath string) error {
	data := MarshalXSD(model)

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create schema directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}

	return nil
}

// MarshalXSD renders the model as an XSD document.
func MarshalXSD(model *Model) []byte {
	var buffer bytes.Buffer

	buffer.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
`)

	// The root element is declared first; the remaining declarations follow
	// in the order the elements were first seen in the corpus.
	writeElementDecl(&buffer, model, model.Elements[model.RootName])

	for _, name := range model.ElementOrder {
		if name == model.RootName {
			continue
		}
		buffer.WriteString("\n")
		writeElementDecl(&buffer, model, model.Elements[name])
	}

	buffer.WriteString(`</xs:schema>
`)

	return buffer.Bytes()
}

// writeElementDecl writes one global element declaration.
func writeElementDecl(buffer *bytes.Buffer, model *Model, elem *ElementModel) {
	switch {
	case elem.HasChildren:
		writeComplexElement(buffer, elem)

	case len(elem.Attributes) > 0 && elem.Text.Observations > 0:
		writeSimpleContentElement(buffer, elem)

	case len(elem.Attributes) > 0:
		writeEmptyElement(buffer, elem)

	default:
		writeSimpleElement(buffer, elem)
	}
}

// writeComplexElement declares an element whose content is a sequence of
// child element references.
func writeComplexElement(buffer *bytes.Buffer, elem *ElementModel) {
	buffer.WriteString(fmt.Sprintf(`  <xs:element name="%s">
    <xs:complexType>
      <xs:sequence>
`, elem.Name))

	for _, child := range elem.ChildOrder {
		stats := elem.Children[child]
		buffer.WriteString(fmt.Sprintf(`        <xs:element ref="%s" minOccurs="%d" maxOccurs="%s"/>
`, child, stats.Min, maxOccursValue(stats.Max)))
	}

	buffer.WriteString(`      </xs:sequence>
`)
	writeAttributes(buffer, elem, 3)
	buffer.WriteString(`    </xs:complexType>
  </xs:element>
`)
}

// writeSimpleContentElement declares a text-carrying element with attributes.
func writeSimpleContentElement(buffer *bytes.Buffer, elem *ElementModel) {
	buffer.WriteString(fmt.Sprintf(`  <xs:element name="%s">
    <xs:complexType>
      <xs:simpleContent>
        <xs:extension base="%s">
`, elem.Name, elem.Text.InferredType()))

	writeAttributes(buffer, elem, 5)

	buffer.WriteString(`        </xs:extension>
      </xs:simpleContent>
    </xs:complexType>
  </xs:element>
`)
}

// writeEmptyElement declares an element with attributes and no content.
func writeEmptyElement(buffer *bytes.Buffer, elem *ElementModel) {
	buffer.WriteString(fmt.Sprintf(`  <xs:element name="%s">
    <xs:complexType>
`, elem.Name))

	writeAttributes(buffer, elem, 3)

	buffer.WriteString(`    </xs:complexType>
  </xs:element>
`)
}

// writeSimpleElement declares a plain text element. String values with an
// observed maximum length get an xs:maxLength restriction.
func writeSimpleElement(buffer *bytes.Buffer, elem *ElementModel) {
	xsdType := elem.Text.InferredType()

	if xsdType == "xs:string" && elem.Text.MaxLength > 0 {
		buffer.WriteString(fmt.Sprintf(`  <xs:element name="%s">
    <xs:simpleType>
      <xs:restriction base="xs:string">
        <xs:maxLength value="%d"/>
      </xs:restriction>
    </xs:simpleType>
  </xs:element>
`, elem.Name, elem.Text.MaxLength))
		return
	}

	buffer.WriteString(fmt.Sprintf(`  <xs:element name="%s" type="%s"/>
`, elem.Name, xsdType))
}

// writeAttributes writes the element's xs:attribute declarations.
func writeAttributes(buffer *bytes.Buffer, elem *ElementModel, indentLevel int) {
	indent := ""
	for i := 0; i < indentLevel; i++ {
		indent += "  "
	}

	for _, name := range elem.AttrOrder {
		attr := elem.Attributes[name]

		use := "optional"
		if elem.RequiredAttr(name) {
			use = "required"
		}

		buffer.WriteString(fmt.Sprintf(`%s<xs:attribute name="%s" type="%s" use="%s"/>
`, indent, name, attr.Values.InferredType(), use))
	}
}

// maxOccursValue renders an observed maximum as an XSD maxOccurs value.
// Anything seen more than once is generalized to unbounded: the corpus shows
// repetition is allowed, not how much of it.
func maxOccursValue(max int) string {
	if max > 1 {
		return "unbounded"
	}
	return fmt.Sprintf("%d", max)
}
