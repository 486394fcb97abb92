// =============================================================================
// xml-suite - Schema Inference Engine
// =============================================================================
//
// This module infers an XSD schema from a corpus of sample loot-filter XML
// documents. Every sample matched by the source glob is parsed into a generic
// element tree and merged into a single structural model:
//
//   - Element structure: which children each element may contain, with
//     minimum and maximum occurrence counts observed across all samples.
//   - Attributes: an attribute is required if and only if it appears on
//     every occurrence of its element.
//   - Value types: text and attribute values are narrowed through
//     integer -> decimal -> boolean -> date -> string. A value set keeps the
//     narrowest type that every observed value satisfies.
//   - String lengths: the longest observed string value becomes an
//     xs:maxLength restriction.
//
// The merged model is then serialized as an XSD document (see xsd.go).
//
// =============================================================================

package schemagen

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lootworks/xml-suite/internal/xmltree"
)

// =============================================================================
// STRUCTURAL MODEL
// =============================================================================

// Model is the merged structural model of the sample corpus.
type Model struct {
	// RootName is the root element name shared by all samples.
	RootName string

	// Elements maps element names to their merged descriptions.
	Elements map[string]*ElementModel

	// ElementOrder preserves first-seen order for stable XSD output.
	ElementOrder []string

	// SamplesMerged is the number of documents folded into the model.
	SamplesMerged int
}

// ElementModel describes everything observed about one element name.
type ElementModel struct {
	// Name is the element name.
	Name string

	// Occurrences counts how many instances of this element were seen.
	Occurrences int

	// HasChildren is true if any instance contained child elements.
	HasChildren bool

	// Attributes maps attribute names to their observations.
	Attributes map[string]*AttributeModel

	// AttrOrder preserves first-seen attribute order.
	AttrOrder []string

	// Children maps child element names to occurrence statistics.
	Children map[string]*ChildStats

	// ChildOrder preserves first-seen child order.
	ChildOrder []string

	// Text accumulates observations of the element's character data.
	Text *ValueModel
}

// AttributeModel describes one attribute of one element.
type AttributeModel struct {
	// Occurrences counts element instances carrying this attribute.
	Occurrences int

	// Values accumulates the observed attribute values.
	Values *ValueModel
}

// ChildStats tracks how often a child element appears within one parent
// instance, across all parent instances.
type ChildStats struct {
	// Min is the smallest per-instance count observed.
	Min int

	// Max is the largest per-instance count observed.
	Max int
}

// =============================================================================
// VALUE TYPE NARROWING
// =============================================================================

// ValueModel narrows the type of a set of observed values.
// All candidate types start as possible; each observation that does not fit
// a candidate eliminates it, widening the result toward xs:string.
type ValueModel struct {
	// Observations is the number of values folded in.
	Observations int

	// MaxLength is the longest observed value, in bytes.
	MaxLength int

	canInteger bool
	canDecimal bool
	canBoolean bool
	canDate    bool
}

// NewValueModel returns a model with all candidate types still possible.
func NewValueModel() *ValueModel {
	return &ValueModel{
		canInteger: true,
		canDecimal: true,
		canBoolean: true,
		canDate:    true,
	}
}

// Observe folds one value into the model.
func (v *ValueModel) Observe(value string) {
	value = strings.TrimSpace(value)

	v.Observations++
	if len(value) > v.MaxLength {
		v.MaxLength = len(value)
	}

	if v.canInteger {
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			v.canInteger = false
		}
	}
	if v.canDecimal {
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			v.canDecimal = false
		}
	}
	if v.canBoolean {
		switch strings.ToLower(value) {
		case "true", "false":
		default:
			v.canBoolean = false
		}
	}
	if v.canDate {
		if _, err := time.Parse("2006-01-02", value); err != nil {
			v.canDate = false
		}
	}
}

// InferredType returns the narrowest XSD type all observations satisfy.
func (v *ValueModel) InferredType() string {
	if v.Observations == 0 {
		return "xs:string"
	}

	switch {
	case v.canInteger:
		return "xs:integer"
	case v.canDecimal:
		return "xs:decimal"
	case v.canBoolean:
		return "xs:boolean"
	case v.canDate:
		return "xs:date"
	default:
		return "xs:string"
	}
}

// =============================================================================
// GENERATOR
// =============================================================================

// Generator runs schema inference over a sample corpus.
type Generator struct {
	// Log receives progress output. Defaults to the standard logger.
	Log *logrus.Logger
}

// Summary describes a completed inference run.
type Summary struct {
	// SamplesScanned is the number of sample documents merged.
	SamplesScanned int

	// ElementsInferred is the number of distinct element names found.
	ElementsInferred int

	// OutputPath is where the XSD was written.
	OutputPath string
}

// New creates a Generator with default settings.
func New() *Generator {
	return &Generator{Log: logrus.StandardLogger()}
}

// Generate infers a schema from all documents matching sourcePattern and
// writes the resulting XSD to outputPath.
//
// An empty corpus is an error: a schema inferred from nothing would declare
// nothing and silently accept nothing.
func (g *Generator) Generate(sourcePattern, outputPath string) (*Summary, error) {
	files, err := filepath.Glob(sourcePattern)
	if err != nil {
		return nil, fmt.Errorf("invalid source pattern %q: %w", sourcePattern, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no sample filters match %q", sourcePattern)
	}

	model, err := g.BuildModel(files)
	if err != nil {
		return nil, err
	}

	if err := WriteXSD(model, outputPath); err != nil {
		return nil, err
	}

	return &Summary{
		SamplesScanned:   model.SamplesMerged,
		ElementsInferred: len(model.Elements),
		OutputPath:       outputPath,
	}, nil
}

// BuildModel parses each sample file and merges it into a structural model.
func (g *Generator) BuildModel(files []string) (*Model, error) {
	model := &Model{
		Elements: make(map[string]*ElementModel),
	}

	for _, file := range files {
		g.Log.Debugf("merging sample %s", file)

		root, err := xmltree.ParseFile(file)
		if err != nil {
			return nil, err
		}

		if model.RootName == "" {
			model.RootName = root.Name
		} else if model.RootName != root.Name {
			return nil, fmt.Errorf("samples disagree on the root element: %s has <%s>, earlier samples have <%s>",
				file, root.Name, model.RootName)
		}

		model.mergeNode(root)
		model.SamplesMerged++
	}

	return model, nil
}

// =============================================================================
// MODEL MERGING
// =============================================================================

// mergeNode folds one element instance (and its subtree) into the model.
func (m *Model) mergeNode(node *xmltree.Node) {
	elem := m.element(node.Name)
	elem.Occurrences++

	// Attributes.
	for _, name := range node.AttrOrder {
		attr, exists := elem.Attributes[name]
		if !exists {
			attr = &AttributeModel{Values: NewValueModel()}
			elem.Attributes[name] = attr
			elem.AttrOrder = append(elem.AttrOrder, name)
		}
		attr.Occurrences++
		attr.Values.Observe(node.Attributes[name])
	}

	// Children: count occurrences of each child name within this instance.
	if len(node.Children) > 0 {
		elem.HasChildren = true
	}

	counts := make(map[string]int)
	for _, child := range node.Children {
		counts[child.Name]++
	}

	for _, child := range node.Children {
		if _, exists := elem.Children[child.Name]; !exists {
			stats := &ChildStats{Max: counts[child.Name]}
			// A child first seen after its parent has already occurred
			// without it is optional from the start.
			if elem.Occurrences > 1 {
				stats.Min = 0
			} else {
				stats.Min = counts[child.Name]
			}
			elem.Children[child.Name] = stats
			elem.ChildOrder = append(elem.ChildOrder, child.Name)
		}
	}

	for name, stats := range elem.Children {
		count := counts[name]
		if count < stats.Min {
			stats.Min = count
		}
		if count > stats.Max {
			stats.Max = count
		}
	}

	// Text content. Elements with children are treated as structural; any
	// incidental text between children is ignored.
	if !elem.HasChildren && node.Text != "" {
		elem.Text.Observe(node.Text)
	}

	for _, child := range node.Children {
		m.mergeNode(child)
	}
}

// element returns the model for an element name, creating it on first sight.
func (m *Model) element(name string) *ElementModel {
	elem, exists := m.Elements[name]
	if !exists {
		elem = &ElementModel{
			Name:       name,
			Attributes: make(map[string]*AttributeModel),
			Children:   make(map[string]*ChildStats),
			Text:       NewValueModel(),
		}
		m.Elements[name] = elem
		m.ElementOrder = append(m.ElementOrder, name)
	}
	return elem
}

// RequiredAttr reports whether an attribute was present on every occurrence
// of its element.
func (e *ElementModel) RequiredAttr(name string) bool {
	attr, exists := e.Attributes[name]
	return exists && attr.Occurrences == e.Occurrences
}
