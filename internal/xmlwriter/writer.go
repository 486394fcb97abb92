// =============================================================================
// xml-suite - XML Writer Module
// =============================================================================
//
// This module is responsible for serializing element trees into indented XML
// documents. It is used by the filter creator to emit compiled loot filters.
//
// XML STRUCTURE:
//   A compiled loot filter follows this nesting pattern:
//
//   <lootFilter name="Starter" version="1.2">   <!-- Root element -->
//     <rule n="1" name="currency">              <!-- Rule with index -->
//       <condition property="Class" operator="eq" value="Currency"/>
//       <action type="SetTextColor" value="255 200 0"/>
//     </rule>
//     <rule n="2" name="hide-trash">
//       <condition property="Rarity" operator="lt" value="Magic"/>
//       <action type="Hide"/>
//     </rule>
//   </lootFilter>
//
// =============================================================================

package xmlwriter

import (
	"bytes"
	"fmt"
)

// =============================================================================
// ELEMENT MODEL
// =============================================================================

// Attr is a single XML attribute.
type Attr struct {
	Name  string
	Value string
}

// Element represents a generic XML element.
// An element carries either a text value or child elements, never both.
type Element struct {
	Name       string
	Attributes []Attr
	Value      string
	Children   []Element
}

// NewElement creates an element with the given name.
func NewElement(name string) Element {
	return Element{Name: name}
}

// SetAttr appends an attribute and returns the element for chaining.
func (e *Element) SetAttr(name, value string) *Element {
	e.Attributes = append(e.Attributes, Attr{Name: name, Value: value})
	return e
}

// AddChild appends a child element.
func (e *Element) AddChild(child Element) {
	e.Children = append(e.Children, child)
}

// =============================================================================
// GENERATION OPTIONS
// =============================================================================

// Options contains options for XML serialization.
type Options struct {
	// Indent is the string used for indentation.
	// Default: "  " (two spaces)
	Indent string

	// IncludeXMLDeclaration determines whether to include the XML declaration.
	// Default: true
	IncludeXMLDeclaration bool

	// XMLVersion is the XML version for the declaration.
	// Default: "1.0"
	XMLVersion string

	// Encoding is the encoding for the XML declaration.
	// Default: "UTF-8"
	Encoding string
}

// DefaultOptions returns the default serialization options.
func DefaultOptions() Options {
	return Options{
		Indent:                "  ",
		IncludeXMLDeclaration: true,
		XMLVersion:            "1.0",
		Encoding:              "UTF-8",
	}
}

// =============================================================================
// SERIALIZATION
// =============================================================================

// Marshal serializes the root element with the default options.
func Marshal(root Element) []byte {
	return MarshalWithOptions(root, DefaultOptions())
}

// MarshalWithOptions serializes the root element into an indented document.
func MarshalWithOptions(root Element, options Options) []byte {
	var buffer bytes.Buffer

	if options.IncludeXMLDeclaration {
		buffer.WriteString(fmt.Sprintf("<?xml version=\"%s\" encoding=\"%s\"?>\n",
			options.XMLVersion, options.Encoding))
	}

	writeElement(&buffer, root, options.Indent, 0)

	return buffer.Bytes()
}

// writeElement writes an XML element to the buffer with indentation.
func writeElement(buffer *bytes.Buffer, element Element, indent string, level int) {
	for i := 0; i < level; i++ {
		buffer.WriteString(indent)
	}

	buffer.WriteString("<")
	buffer.WriteString(element.Name)

	for _, attr := range element.Attributes {
		buffer.WriteString(fmt.Sprintf(" %s=\"%s\"", attr.Name, EscapeXML(attr.Value)))
	}

	// Empty element: use a self-closing tag.
	if len(element.Children) == 0 && element.Value == "" {
		buffer.WriteString("/>\n")
		return
	}

	buffer.WriteString(">")

	if element.Value != "" {
		buffer.WriteString(EscapeXML(element.Value))
	} else {
		buffer.WriteString("\n")

		for _, child := range element.Children {
			writeElement(buffer, child, indent, level+1)
		}

		for i := 0; i < level; i++ {
			buffer.WriteString(indent)
		}
	}

	buffer.WriteString("</")
	buffer.WriteString(element.Name)
	buffer.WriteString(">\n")
}

// EscapeXML escapes special characters for XML.
func EscapeXML(s string) string {
	var buffer bytes.Buffer

	for _, r := range s {
		switch r {
		case '&':
			buffer.WriteString("&amp;")
		case '<':
			buffer.WriteString("&lt;")
		case '>':
			buffer.WriteString("&gt;")
		case '"':
			buffer.WriteString("&quot;")
		case '\'':
			buffer.WriteString("&apos;")
		default:
			buffer.WriteRune(r)
		}
	}

	return buffer.String()
}
