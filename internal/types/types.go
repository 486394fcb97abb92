// =============================================================================
// xml-suite - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - xmlvalidator
//   - filtergen
//   - report
//   - cmd
//
// =============================================================================

package types

import (
	"fmt"
	"strings"
)

// =============================================================================
// SEVERITY LEVELS
// =============================================================================

// Severity levels for validation problems.
const (
	// SeverityError marks a fatal problem; the document is not acceptable.
	SeverityError = "error"

	// SeverityWarning marks a non-fatal problem; processing can continue.
	SeverityWarning = "warning"
)

// =============================================================================
// VALIDATION ERROR
// =============================================================================

// ValidationError represents a single validation problem found in a filter
// document or an intermediate file.
type ValidationError struct {
	// Severity is SeverityError or SeverityWarning.
	Severity string

	// File is the path of the document containing the problem.
	File string

	// Path locates the problem inside the document.
	// Example: "lootFilter/rule[2]/condition[1]"
	Path string

	// Field is the element, attribute, or JSON field that failed.
	Field string

	// Value is the offending value, if any.
	Value string

	// Rule is the validation rule that was violated.
	Rule string

	// Message is a human-readable description of the problem.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var b strings.Builder

	b.WriteString("[")
	b.WriteString(strings.ToUpper(e.Severity))
	b.WriteString("]")

	if e.File != "" {
		b.WriteString(" ")
		b.WriteString(e.File)
	}
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Field != "" {
		b.WriteString(fmt.Sprintf(" field '%s'", e.Field))
	}

	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Value != "" {
		b.WriteString(fmt.Sprintf(" (value: '%s')", e.Value))
	}

	return b.String()
}

// =============================================================================
// VALIDATION RESULT
// =============================================================================

// ValidationResult aggregates the problems found across a validation run.
type ValidationResult struct {
	// IsValid is true if there are no fatal errors.
	IsValid bool

	// Errors contains all validation problems, warnings included.
	Errors []*ValidationError

	// ErrorCount is the number of fatal errors.
	ErrorCount int

	// WarningCount is the number of warnings.
	WarningCount int

	// FilesValidated is the number of documents examined.
	FilesValidated int
}

// NewValidationResult returns an empty, valid result.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid: true,
		Errors:  make([]*ValidationError, 0),
	}
}

// Add appends a problem to the result and updates the counters.
func (r *ValidationResult) Add(err *ValidationError) {
	r.Errors = append(r.Errors, err)

	if err.Severity == SeverityError {
		r.ErrorCount++
		r.IsValid = false
	} else {
		r.WarningCount++
	}
}

// Merge folds another result into this one.
func (r *ValidationResult) Merge(other *ValidationResult) {
	for _, err := range other.Errors {
		r.Add(err)
	}
	r.FilesValidated += other.FilesValidated
}

// FormatErrors formats validation problems for display or logging.
func FormatErrors(errors []*ValidationError) string {
	if len(errors) == 0 {
		return "No validation errors."
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Validation completed with %d problem(s):\n\n", len(errors)))

	for i, err := range errors {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, err.Error()))
	}

	return b.String()
}
