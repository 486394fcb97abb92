// =============================================================================
// xml-suite - XSD Schema Loading
// =============================================================================
//
// This module loads an XSD document into the compiled form the validator
// works with. It understands exactly the subset the schema generator emits:
// global element declarations, sequences of element references, attributes,
// simpleContent extensions, and string maxLength restrictions.
//
// =============================================================================

package xmlvalidator

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
)

// =============================================================================
// COMPILED SCHEMA MODEL
// =============================================================================

// Content kinds of a declared element.
const (
	// KindComplex: the element contains a sequence of child elements.
	KindComplex = iota

	// KindSimpleContent: the element carries typed text plus attributes.
	KindSimpleContent

	// KindEmpty: the element carries attributes and no content.
	KindEmpty

	// KindSimple: the element carries typed text only.
	KindSimple
)

// Unbounded marks a child reference with no upper occurrence limit.
const Unbounded = -1

// Schema is the compiled form of a loaded XSD.
type Schema struct {
	// RootName is the document root element's name.
	RootName string

	// Elements maps element names to their declarations.
	Elements map[string]*ElementDecl
}

// ElementDecl is one global element declaration.
type ElementDecl struct {
	// Name is the element name.
	Name string

	// Kind is one of the Kind* constants.
	Kind int

	// Type is the XSD base type of the element's text content.
	// Only meaningful for KindSimple and KindSimpleContent.
	Type string

	// MaxLength is the maximum text length, 0 for unlimited.
	MaxLength int

	// Children are the allowed child references, in sequence order.
	Children []ChildRef

	// Attributes are the declared attributes.
	Attributes []AttrDecl
}

// ChildRef is a reference to a child element with occurrence bounds.
type ChildRef struct {
	Name string
	Min  int
	Max  int // Unbounded for no limit
}

// AttrDecl is one declared attribute.
type AttrDecl struct {
	Name     string
	Type     string
	Required bool
}

// Child returns the child reference with the given name, or nil.
func (d *ElementDecl) Child(name string) *ChildRef {
	for i := range d.Children {
		if d.Children[i].Name == name {
			return &d.Children[i]
		}
	}
	return nil
}

// Attribute returns the attribute declaration with the given name, or nil.
func (d *ElementDecl) Attribute(name string) *AttrDecl {
	for i := range d.Attributes {
		if d.Attributes[i].Name == name {
			return &d.Attributes[i]
		}
	}
	return nil
}

// =============================================================================
// XSD DOCUMENT MAPPING
// =============================================================================

// Raw XSD structures for encoding/xml. Field tags use local names only, so
// they match the xs: namespace without hardcoding the prefix.

type xsdSchema struct {
	XMLName  xml.Name     `xml:"schema"`
	Elements []xsdElement `xml:"element"`
}

type xsdElement struct {
	Name        string          `xml:"name,attr"`
	Ref         string          `xml:"ref,attr"`
	Type        string          `xml:"type,attr"`
	MinOccurs   string          `xml:"minOccurs,attr"`
	MaxOccurs   string          `xml:"maxOccurs,attr"`
	ComplexType *xsdComplexType `xml:"complexType"`
	SimpleType  *xsdSimpleType  `xml:"simpleType"`
}

type xsdComplexType struct {
	Sequence      *xsdSequence      `xml:"sequence"`
	SimpleContent *xsdSimpleContent `xml:"simpleContent"`
	Attributes    []xsdAttribute    `xml:"attribute"`
}

type xsdSequence struct {
	Elements []xsdElement `xml:"element"`
}

type xsdSimpleContent struct {
	Extension *xsdExtension `xml:"extension"`
}

type xsdExtension struct {
	Base       string         `xml:"base,attr"`
	Attributes []xsdAttribute `xml:"attribute"`
}

type xsdAttribute struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
	Use  string `xml:"use,attr"`
}

type xsdSimpleType struct {
	Restriction *xsdRestriction `xml:"restriction"`
}

type xsdRestriction struct {
	Base      string    `xml:"base,attr"`
	MaxLength *xsdFacet `xml:"maxLength"`
}

type xsdFacet struct {
	Value string `xml:"value,attr"`
}

// =============================================================================
// SCHEMA LOADING
// =============================================================================

// LoadSchema reads and compiles the XSD at schemaPath.
func LoadSchema(schemaPath string) (*Schema, error) {
	data, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	return ParseSchema(data)
}

// ParseSchema compiles an XSD document.
//
// The first global element declaration is taken as the document root, which
// matches the order the schema generator emits.
func ParseSchema(data []byte) (*Schema, error) {
	var raw xsdSchema
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	if len(raw.Elements) == 0 {
		return nil, fmt.Errorf("schema declares no elements")
	}

	schema := &Schema{
		Elements: make(map[string]*ElementDecl),
	}

	for i, rawElem := range raw.Elements {
		decl, err := compileElement(rawElem)
		if err != nil {
			return nil, err
		}

		if i == 0 {
			schema.RootName = decl.Name
		}
		schema.Elements[decl.Name] = decl
	}

	return schema, nil
}

// compileElement compiles one global element declaration.
func compileElement(raw xsdElement) (*ElementDecl, error) {
	if raw.Name == "" {
		return nil, fmt.Errorf("global element declaration without a name")
	}

	decl := &ElementDecl{Name: raw.Name}

	switch {
	case raw.ComplexType != nil:
		return compileComplexElement(decl, raw.ComplexType)

	case raw.SimpleType != nil:
		decl.Kind = KindSimple
		return compileRestrictedElement(decl, raw.SimpleType)

	default:
		decl.Kind = KindSimple
		decl.Type = raw.Type
		if decl.Type == "" {
			decl.Type = "xs:string"
		}
		return decl, nil
	}
}

// compileComplexElement handles sequence, simpleContent, and attribute-only
// complex types.
func compileComplexElement(decl *ElementDecl, ct *xsdComplexType) (*ElementDecl, error) {
	if ct.SimpleContent != nil {
		if ct.SimpleContent.Extension == nil {
			return nil, fmt.Errorf("element %s: simpleContent without extension", decl.Name)
		}

		decl.Kind = KindSimpleContent
		decl.Type = ct.SimpleContent.Extension.Base
		decl.Attributes = compileAttributes(ct.SimpleContent.Extension.Attributes)
		return decl, nil
	}

	decl.Attributes = compileAttributes(ct.Attributes)

	if ct.Sequence == nil {
		decl.Kind = KindEmpty
		return decl, nil
	}

	decl.Kind = KindComplex

	for _, rawChild := range ct.Sequence.Elements {
		if rawChild.Ref == "" {
			return nil, fmt.Errorf("element %s: sequence entries must be references", decl.Name)
		}

		ref := ChildRef{Name: rawChild.Ref, Min: 1, Max: 1}

		if rawChild.MinOccurs != "" {
			min, err := strconv.Atoi(rawChild.MinOccurs)
			if err != nil {
				return nil, fmt.Errorf("element %s: invalid minOccurs %q", decl.Name, rawChild.MinOccurs)
			}
			ref.Min = min
		}

		if rawChild.MaxOccurs != "" {
			if rawChild.MaxOccurs == "unbounded" {
				ref.Max = Unbounded
			} else {
				max, err := strconv.Atoi(rawChild.MaxOccurs)
				if err != nil {
					return nil, fmt.Errorf("element %s: invalid maxOccurs %q", decl.Name, rawChild.MaxOccurs)
				}
				ref.Max = max
			}
		}

		decl.Children = append(decl.Children, ref)
	}

	return decl, nil
}

// compileRestrictedElement handles simpleType restrictions.
func compileRestrictedElement(decl *ElementDecl, st *xsdSimpleType) (*ElementDecl, error) {
	if st.Restriction == nil {
		return nil, fmt.Errorf("element %s: simpleType without restriction", decl.Name)
	}

	decl.Type = st.Restriction.Base
	if decl.Type == "" {
		decl.Type = "xs:string"
	}

	if st.Restriction.MaxLength != nil {
		maxLength, err := strconv.Atoi(st.Restriction.MaxLength.Value)
		if err != nil {
			return nil, fmt.Errorf("element %s: invalid maxLength %q", decl.Name, st.Restriction.MaxLength.Value)
		}
		decl.MaxLength = maxLength
	}

	return decl, nil
}

// compileAttributes converts raw attribute declarations.
func compileAttributes(raw []xsdAttribute) []AttrDecl {
	var attrs []AttrDecl
	for _, a := range raw {
		attrType := a.Type
		if attrType == "" {
			attrType = "xs:string"
		}
		attrs = append(attrs, AttrDecl{
			Name:     a.Name,
			Type:     attrType,
			Required: a.Use == "required",
		})
	}
	return attrs
}
