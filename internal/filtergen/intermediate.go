// =============================================================================
// xml-suite - Intermediate JSON Model
// =============================================================================
//
// This module defines and loads the intermediate JSON representation of a
// loot filter. The intermediate format is the authoring surface: a flat,
// readable description of rules that the generator compiles into filter XML.
//
// INTERMEDIATE FORMAT:
//   {
//     "filter": {"name": "Starter", "description": "...", "version": "1.2"},
//     "rules": [
//       {"name": "currency", "enabled": true, "priority": 10,
//        "conditions": [{"property": "Class", "operator": "eq", "value": "Currency"}],
//        "actions":    [{"type": "SetTextColor", "value": "255 200 0"}]}
//     ]
//   }
//
// STRICTNESS:
//   The strictness level decides how hard the loader pushes back:
//     strict - unknown JSON fields, rules without conditions, and unknown
//              operators or action types are errors
//     normal - unknown operators and action types are warnings; structural
//              problems remain errors
//     loose  - everything above is demoted to a warning
//
// =============================================================================

package filtergen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lootworks/xml-suite/internal/types"
)

// =============================================================================
// STRICTNESS LEVELS
// =============================================================================

// Strictness levels accepted by the generator.
const (
	StrictnessStrict = "strict"
	StrictnessNormal = "normal"
	StrictnessLoose  = "loose"
)

// ValidStrictness reports whether level is a known strictness value.
func ValidStrictness(level string) bool {
	switch level {
	case StrictnessStrict, StrictnessNormal, StrictnessLoose:
		return true
	}
	return false
}

// =============================================================================
// INTERMEDIATE STRUCTURES
// =============================================================================

// Intermediate is the root of an intermediate JSON document.
type Intermediate struct {
	// Filter holds document-level metadata.
	Filter FilterMeta `json:"filter"`

	// Rules are the filter rules, in priority order of appearance.
	Rules []Rule `json:"rules"`
}

// FilterMeta holds document-level metadata.
type FilterMeta struct {
	// Name is the filter's display name. Required.
	Name string `json:"name"`

	// Description is an optional free-text description.
	Description string `json:"description,omitempty"`

	// Version is an optional author-assigned version string.
	Version string `json:"version,omitempty"`
}

// Rule is a single filter rule.
type Rule struct {
	// Name identifies the rule in the output and in error messages.
	Name string `json:"name"`

	// Enabled rules are emitted; disabled rules are skipped.
	// Defaults to true when omitted.
	Enabled *bool `json:"enabled,omitempty"`

	// Priority orders rules in the compiled filter; lower runs first.
	Priority int `json:"priority"`

	// Conditions select the items this rule applies to.
	Conditions []Condition `json:"conditions"`

	// Actions describe what happens to matching items.
	Actions []Action `json:"actions"`
}

// IsEnabled reports whether the rule should be emitted.
func (r *Rule) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// Condition is a single item predicate.
type Condition struct {
	// Property is the item property being tested (e.g. "Rarity").
	Property string `json:"property"`

	// Operator is one of the known comparison operators.
	Operator string `json:"operator"`

	// Value is the comparison operand.
	Value string `json:"value"`
}

// Action is a single display action.
type Action struct {
	// Type is one of the known action types (e.g. "SetTextColor").
	Type string `json:"type"`

	// Value is the action parameter; some actions take none.
	Value string `json:"value,omitempty"`
}

// =============================================================================
// KNOWN VOCABULARY
// =============================================================================

// knownOperators are the condition operators the filter engine understands.
var knownOperators = map[string]bool{
	"eq":       true,
	"neq":      true,
	"lt":       true,
	"lte":      true,
	"gt":       true,
	"gte":      true,
	"contains": true,
	"matches":  true,
}

// knownActions are the display action types the filter engine understands.
var knownActions = map[string]bool{
	"SetTextColor":       true,
	"SetBackgroundColor": true,
	"SetBorderColor":     true,
	"SetFontSize":        true,
	"PlayAlertSound":     true,
	"MinimapIcon":        true,
	"Show":               true,
	"Hide":               true,
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads and checks an intermediate JSON file.
//
// The returned result carries every problem found; whether a given problem
// is an error or a warning depends on the strictness level. The intermediate
// is returned even when problems were found, so loose mode can keep going.
func Load(path, strictness string) (*Intermediate, *types.ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read intermediate file: %w", err)
	}

	var intermediate Intermediate

	decoder := json.NewDecoder(bytes.NewReader(data))
	if strictness == StrictnessStrict {
		decoder.DisallowUnknownFields()
	}

	if err := decoder.Decode(&intermediate); err != nil {
		return nil, nil, fmt.Errorf("failed to parse intermediate file: %w", err)
	}

	result := check(&intermediate, path, strictness)

	return &intermediate, result, nil
}

// check applies the semantic rules the JSON syntax cannot express.
func check(intermediate *Intermediate, file, strictness string) *types.ValidationResult {
	result := types.NewValidationResult()

	// Structural problems are errors except in loose mode.
	structural := types.SeverityError
	if strictness == StrictnessLoose {
		structural = types.SeverityWarning
	}

	// Vocabulary problems are only errors in strict mode.
	vocabulary := types.SeverityWarning
	if strictness == StrictnessStrict {
		vocabulary = types.SeverityError
	}

	if intermediate.Filter.Name == "" {
		result.Add(&types.ValidationError{
			Severity: structural,
			File:     file,
			Field:    "filter.name",
			Rule:     "required",
			Message:  "filter name is required",
		})
	}

	for i := range intermediate.Rules {
		rule := &intermediate.Rules[i]
		rulePath := fmt.Sprintf("rules[%d]", i)

		if rule.Name == "" {
			result.Add(&types.ValidationError{
				Severity: structural,
				File:     file,
				Path:     rulePath,
				Field:    "name",
				Rule:     "required",
				Message:  "rule name is required",
			})
		}

		if len(rule.Conditions) == 0 {
			result.Add(&types.ValidationError{
				Severity: structural,
				File:     file,
				Path:     rulePath,
				Rule:     "no_conditions",
				Message:  fmt.Sprintf("rule '%s' has no conditions and would match every item", rule.Name),
			})
		}

		if len(rule.Actions) == 0 {
			result.Add(&types.ValidationError{
				Severity: structural,
				File:     file,
				Path:     rulePath,
				Rule:     "no_actions",
				Message:  fmt.Sprintf("rule '%s' has no actions", rule.Name),
			})
		}

		for j, condition := range rule.Conditions {
			if condition.Property == "" {
				result.Add(&types.ValidationError{
					Severity: structural,
					File:     file,
					Path:     fmt.Sprintf("%s.conditions[%d]", rulePath, j),
					Field:    "property",
					Rule:     "required",
					Message:  "condition property is required",
				})
			}
			if !knownOperators[condition.Operator] {
				result.Add(&types.ValidationError{
					Severity: vocabulary,
					File:     file,
					Path:     fmt.Sprintf("%s.conditions[%d]", rulePath, j),
					Field:    "operator",
					Value:    condition.Operator,
					Rule:     "unknown_operator",
					Message:  fmt.Sprintf("unknown operator '%s'", condition.Operator),
				})
			}
		}

		for j, action := range rule.Actions {
			if !knownActions[action.Type] {
				result.Add(&types.ValidationError{
					Severity: vocabulary,
					File:     file,
					Path:     fmt.Sprintf("%s.actions[%d]", rulePath, j),
					Field:    "type",
					Value:    action.Type,
					Rule:     "unknown_action",
					Message:  fmt.Sprintf("unknown action type '%s'", action.Type),
				})
			}
		}
	}

	return result
}
