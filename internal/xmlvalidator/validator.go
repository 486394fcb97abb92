// =============================================================================
// xml-suite - XML Validation Engine
// =============================================================================
//
// This module validates loot-filter XML documents against a compiled schema.
// It checks:
//   - Element structure (undeclared elements, occurrence bounds)
//   - Attributes (undeclared, missing required)
//   - Data types (integer, decimal, boolean, date)
//   - String length restrictions
//
// ERROR HANDLING:
//   - Problems are collected, not thrown: a single run reports everything.
//   - Each problem carries its file and an element path such as
//     "lootFilter/rule[2]/condition[1]" for easy troubleshooting.
//   - A document that cannot be parsed at all yields one file-level error.
//
// =============================================================================

package xmlvalidator

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lootworks/xml-suite/internal/types"
	"github.com/lootworks/xml-suite/internal/xmltree"
)

// =============================================================================
// VALIDATOR
// =============================================================================

// Validator validates filter documents against a schema.
type Validator struct {
	schema *Schema

	// Log receives progress output. Defaults to the standard logger.
	Log *logrus.Logger
}

// NewValidator creates a Validator for the given schema.
func NewValidator(schema *Schema) *Validator {
	return &Validator{
		schema: schema,
		Log:    logrus.StandardLogger(),
	}
}

// ValidateDirectory loads the schema at schemaPath and validates every
// *.xml file directly inside directory.
//
// The returned error covers operational failures (unreadable schema or
// directory); validation problems are reported through the result.
func ValidateDirectory(directory, schemaPath string) (*types.ValidationResult, error) {
	schema, err := LoadSchema(schemaPath)
	if err != nil {
		return nil, err
	}

	return NewValidator(schema).ValidateAll(directory)
}

// ValidateAll validates every *.xml file directly inside directory.
func (v *Validator) ValidateAll(directory string) (*types.ValidationResult, error) {
	files, err := filepath.Glob(filepath.Join(directory, "*.xml"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", directory, err)
	}

	result := types.NewValidationResult()

	for _, file := range files {
		v.Log.Debugf("validating %s", file)
		result.Merge(v.ValidateFile(file))
	}

	return result, nil
}

// ValidateFile validates a single filter document.
func (v *Validator) ValidateFile(path string) *types.ValidationResult {
	result := types.NewValidationResult()
	result.FilesValidated = 1

	root, err := xmltree.ParseFile(path)
	if err != nil {
		result.Add(&types.ValidationError{
			Severity: types.SeverityError,
			File:     path,
			Rule:     "well_formed",
			Message:  err.Error(),
		})
		return result
	}

	if root.Name != v.schema.RootName {
		result.Add(&types.ValidationError{
			Severity: types.SeverityError,
			File:     path,
			Path:     root.Name,
			Rule:     "root_element",
			Message:  fmt.Sprintf("root element must be <%s>, found <%s>", v.schema.RootName, root.Name),
		})
		return result
	}

	v.validateNode(root, path, root.Name, result)

	return result
}

// =============================================================================
// NODE VALIDATION
// =============================================================================

// validateNode validates one element instance and recurses into declared
// children. nodePath locates the instance for error messages.
func (v *Validator) validateNode(node *xmltree.Node, file, nodePath string, result *types.ValidationResult) {
	decl, declared := v.schema.Elements[node.Name]
	if !declared {
		// The parent already reported the undeclared reference; nothing
		// further can be checked without a declaration.
		return
	}

	v.validateAttributes(node, decl, file, nodePath, result)

	switch decl.Kind {
	case KindComplex:
		v.validateChildren(node, decl, file, nodePath, result)

	case KindSimpleContent, KindSimple:
		v.validateText(node, decl, file, nodePath, result)

	case KindEmpty:
		if node.Text != "" {
			result.Add(&types.ValidationError{
				Severity: types.SeverityError,
				File:     file,
				Path:     nodePath,
				Value:    node.Text,
				Rule:     "empty_content",
				Message:  fmt.Sprintf("element <%s> must not contain text", node.Name),
			})
		}
	}

	if decl.Kind != KindComplex && len(node.Children) > 0 {
		result.Add(&types.ValidationError{
			Severity: types.SeverityError,
			File:     file,
			Path:     nodePath,
			Rule:     "content_model",
			Message:  fmt.Sprintf("element <%s> must not contain child elements", node.Name),
		})
	}
}

// validateAttributes checks declared, undeclared, and required attributes.
func (v *Validator) validateAttributes(node *xmltree.Node, decl *ElementDecl, file, nodePath string, result *types.ValidationResult) {
	for _, name := range node.AttrOrder {
		attrDecl := decl.Attribute(name)
		if attrDecl == nil {
			result.Add(&types.ValidationError{
				Severity: types.SeverityError,
				File:     file,
				Path:     nodePath,
				Field:    name,
				Value:    node.Attributes[name],
				Rule:     "undeclared_attribute",
				Message:  fmt.Sprintf("attribute '%s' is not declared on <%s>", name, node.Name),
			})
			continue
		}

		if msg := validateTypedValue(node.Attributes[name], attrDecl.Type); msg != "" {
			result.Add(&types.ValidationError{
				Severity: types.SeverityError,
				File:     file,
				Path:     nodePath,
				Field:    name,
				Value:    node.Attributes[name],
				Rule:     "data_type",
				Message:  msg,
			})
		}
	}

	for _, attrDecl := range decl.Attributes {
		if !attrDecl.Required {
			continue
		}
		if _, present := node.Attr(attrDecl.Name); !present {
			result.Add(&types.ValidationError{
				Severity: types.SeverityError,
				File:     file,
				Path:     nodePath,
				Field:    attrDecl.Name,
				Rule:     "required_attribute",
				Message:  fmt.Sprintf("required attribute '%s' is missing on <%s>", attrDecl.Name, node.Name),
			})
		}
	}
}

// validateChildren checks occurrence bounds and recurses.
func (v *Validator) validateChildren(node *xmltree.Node, decl *ElementDecl, file, nodePath string, result *types.ValidationResult) {
	counts := make(map[string]int)
	indexes := make(map[string]int)

	for _, child := range node.Children {
		counts[child.Name]++
	}

	for _, child := range node.Children {
		indexes[child.Name]++
		childPath := fmt.Sprintf("%s/%s[%d]", nodePath, child.Name, indexes[child.Name])

		if decl.Child(child.Name) == nil {
			result.Add(&types.ValidationError{
				Severity: types.SeverityError,
				File:     file,
				Path:     childPath,
				Rule:     "undeclared_element",
				Message:  fmt.Sprintf("element <%s> is not declared inside <%s>", child.Name, node.Name),
			})
			continue
		}

		v.validateNode(child, file, childPath, result)
	}

	for _, ref := range decl.Children {
		count := counts[ref.Name]

		if count < ref.Min {
			result.Add(&types.ValidationError{
				Severity: types.SeverityError,
				File:     file,
				Path:     nodePath,
				Field:    ref.Name,
				Rule:     "min_occurs",
				Message:  fmt.Sprintf("element <%s> requires at least %d <%s> child(ren), found %d", node.Name, ref.Min, ref.Name, count),
			})
		}

		if ref.Max != Unbounded && count > ref.Max {
			result.Add(&types.ValidationError{
				Severity: types.SeverityError,
				File:     file,
				Path:     nodePath,
				Field:    ref.Name,
				Rule:     "max_occurs",
				Message:  fmt.Sprintf("element <%s> allows at most %d <%s> child(ren), found %d", node.Name, ref.Max, ref.Name, count),
			})
		}
	}
}

// validateText checks the element's character data against its declared type
// and length restriction.
func (v *Validator) validateText(node *xmltree.Node, decl *ElementDecl, file, nodePath string, result *types.ValidationResult) {
	// Empty content carries no value to type-check. Inference only narrows
	// on non-empty text, so an element that is empty in one document and
	// numeric in another must be accepted in both.
	if node.Text == "" {
		return
	}

	if msg := validateTypedValue(node.Text, decl.Type); msg != "" {
		result.Add(&types.ValidationError{
			Severity: types.SeverityError,
			File:     file,
			Path:     nodePath,
			Value:    node.Text,
			Rule:     "data_type",
			Message:  msg,
		})
	}

	if decl.MaxLength > 0 && len(node.Text) > decl.MaxLength {
		result.Add(&types.ValidationError{
			Severity: types.SeverityError,
			File:     file,
			Path:     nodePath,
			Value:    node.Text,
			Rule:     "max_length",
			Message:  fmt.Sprintf("value exceeds maximum length of %d characters (actual: %d)", decl.MaxLength, len(node.Text)),
		})
	}
}

// =============================================================================
// DATA TYPE VALIDATION
// =============================================================================

// validateTypedValue validates a value against an XSD base type.
// Returns an error message, or the empty string if the value is valid.
func validateTypedValue(value, xsdType string) string {
	value = strings.TrimSpace(value)

	switch xsdType {
	case "xs:string", "":
		return ""

	case "xs:integer":
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			return fmt.Sprintf("value '%s' is not a valid integer", value)
		}
		return ""

	case "xs:decimal":
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Sprintf("value '%s' is not a valid decimal number", value)
		}
		return ""

	case "xs:boolean":
		switch strings.ToLower(value) {
		case "true", "false":
			return ""
		}
		return fmt.Sprintf("value '%s' is not a valid boolean", value)

	case "xs:date":
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return fmt.Sprintf("value '%s' is not a valid date (expected YYYY-MM-DD)", value)
		}
		return ""

	default:
		// Unknown type, treat as string.
		return ""
	}
}
