// =============================================================================
// xml-suite - Filter Generator
// =============================================================================
//
// This module compiles an intermediate JSON description into a loot-filter
// XML document. It orchestrates the pipeline for a single filter:
//
//   1. Load and check the intermediate file (strictness applies here)
//   2. Order the enabled rules by priority
//   3. Build the filter element tree
//   4. Serialize and write the output document
//
// On error the intermediate file is left untouched and no output is written.
//
// =============================================================================

package filtergen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/lootworks/xml-suite/internal/types"
	"github.com/lootworks/xml-suite/internal/xmlwriter"
)

// =============================================================================
// RESULT
// =============================================================================

// Result describes the outcome of compiling one intermediate file.
type Result struct {
	// Success is true if the output document was written.
	Success bool

	// IntermediatePath is the input file.
	IntermediatePath string

	// OutputFile is the path of the written document, if any.
	OutputFile string

	// RulesEmitted is the number of rules in the output.
	RulesEmitted int

	// RulesSkipped is the number of disabled rules left out.
	RulesSkipped int

	// Problems are the checks the intermediate file tripped, warnings
	// included.
	Problems []*types.ValidationError

	// Error is set when compilation failed.
	Error error
}

// =============================================================================
// GENERATOR
// =============================================================================

// Generator compiles intermediate files at a fixed strictness level.
type Generator struct {
	// Strictness is one of the Strictness* constants.
	Strictness string

	// Log receives progress output. Defaults to the standard logger.
	Log *logrus.Logger
}

// New creates a Generator for the given strictness level.
func New(strictness string) *Generator {
	return &Generator{
		Strictness: strictness,
		Log:        logrus.StandardLogger(),
	}
}

// Run compiles intermediatePath into outputPath.
func (g *Generator) Run(intermediatePath, outputPath string) Result {
	result := Result{
		IntermediatePath: intermediatePath,
	}

	intermediate, checks, err := Load(intermediatePath, g.Strictness)
	if err != nil {
		result.Error = err
		return result
	}

	result.Problems = checks.Errors

	if checks.ErrorCount > 0 {
		result.Error = fmt.Errorf("intermediate file failed %d check(s)", checks.ErrorCount)
		return result
	}

	doc, emitted, skipped := buildFilterDocument(intermediate)
	result.RulesEmitted = emitted
	result.RulesSkipped = skipped

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			result.Error = fmt.Errorf("failed to create output directory: %w", err)
			return result
		}
	}

	data := xmlwriter.Marshal(doc)
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		result.Error = fmt.Errorf("failed to write output file: %w", err)
		return result
	}

	g.Log.Debugf("wrote %s (%d rule(s), %d skipped)", outputPath, emitted, skipped)

	result.Success = true
	result.OutputFile = outputPath
	return result
}

// =============================================================================
// DOCUMENT BUILDING
// =============================================================================

// buildFilterDocument constructs the filter element tree.
// Returns the root element plus the emitted and skipped rule counts.
func buildFilterDocument(intermediate *Intermediate) (xmlwriter.Element, int, int) {
	root := xmlwriter.NewElement("lootFilter")
	root.SetAttr("name", intermediate.Filter.Name)
	if intermediate.Filter.Version != "" {
		root.SetAttr("version", intermediate.Filter.Version)
	}

	if intermediate.Filter.Description != "" {
		desc := xmlwriter.NewElement("description")
		desc.Value = intermediate.Filter.Description
		root.AddChild(desc)
	}

	// Order enabled rules by priority; ties keep authoring order.
	rules := make([]Rule, 0, len(intermediate.Rules))
	skipped := 0
	for _, rule := range intermediate.Rules {
		if rule.IsEnabled() {
			rules = append(rules, rule)
		} else {
			skipped++
		}
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority < rules[j].Priority
	})

	for i, rule := range rules {
		root.AddChild(buildRuleElement(rule, i+1))
	}

	return root, len(rules), skipped
}

// buildRuleElement constructs one rule element.
//
// STRUCTURE:
//   <rule n="1" name="currency" priority="10">
//     <condition property="Class" operator="eq" value="Currency"/>
//     <action type="SetTextColor" value="255 200 0"/>
//   </rule>
func buildRuleElement(rule Rule, index int) xmlwriter.Element {
	element := xmlwriter.NewElement("rule")
	element.SetAttr("n", strconv.Itoa(index))
	element.SetAttr("name", rule.Name)
	element.SetAttr("priority", strconv.Itoa(rule.Priority))

	for _, condition := range rule.Conditions {
		child := xmlwriter.NewElement("condition")
		child.SetAttr("property", condition.Property)
		child.SetAttr("operator", condition.Operator)
		child.SetAttr("value", condition.Value)
		element.AddChild(child)
	}

	for _, action := range rule.Actions {
		child := xmlwriter.NewElement("action")
		child.SetAttr("type", action.Type)
		if action.Value != "" {
			child.SetAttr("value", action.Value)
		}
		element.AddChild(child)
	}

	return element
}
