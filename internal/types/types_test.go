package types

import (
	"strings"
	"testing"
)

func TestValidationErrorError(t *testing.T) {
	err := &ValidationError{
		Severity: SeverityError,
		File:     "SampleFilters/starter.xml",
		Path:     "lootFilter/rule[2]",
		Field:    "n",
		Value:    "bad",
		Rule:     "data_type",
		Message:  "value 'bad' is not a valid integer",
	}

	got := err.Error()

	for _, want := range []string{
		"[ERROR]",
		"SampleFilters/starter.xml",
		"lootFilter/rule[2]",
		"field 'n'",
		"value 'bad' is not a valid integer",
		"(value: 'bad')",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Error() = %q, missing %q", got, want)
		}
	}
}

func TestValidationResultCounters(t *testing.T) {
	result := NewValidationResult()

	if !result.IsValid {
		t.Error("empty result should be valid")
	}

	result.Add(&ValidationError{Severity: SeverityWarning, Message: "w"})
	if !result.IsValid || result.WarningCount != 1 {
		t.Errorf("warning flipped validity: valid=%v warnings=%d", result.IsValid, result.WarningCount)
	}

	result.Add(&ValidationError{Severity: SeverityError, Message: "e"})
	if result.IsValid || result.ErrorCount != 1 {
		t.Errorf("error not counted: valid=%v errors=%d", result.IsValid, result.ErrorCount)
	}
}

func TestValidationResultMerge(t *testing.T) {
	a := NewValidationResult()
	a.FilesValidated = 1
	a.Add(&ValidationError{Severity: SeverityError, Message: "e"})

	b := NewValidationResult()
	b.FilesValidated = 2
	b.Add(&ValidationError{Severity: SeverityWarning, Message: "w"})

	a.Merge(b)

	if a.FilesValidated != 3 {
		t.Errorf("FilesValidated = %d, want 3", a.FilesValidated)
	}
	if a.ErrorCount != 1 || a.WarningCount != 1 || len(a.Errors) != 2 {
		t.Errorf("counters after merge: errors=%d warnings=%d total=%d", a.ErrorCount, a.WarningCount, len(a.Errors))
	}
	if a.IsValid {
		t.Error("merged result with an error should be invalid")
	}
}

func TestFormatErrors(t *testing.T) {
	if got := FormatErrors(nil); got != "No validation errors." {
		t.Errorf("FormatErrors(nil) = %q", got)
	}

	got := FormatErrors([]*ValidationError{
		{Severity: SeverityError, Message: "first"},
		{Severity: SeverityWarning, Message: "second"},
	})

	if !strings.Contains(got, "2 problem(s)") {
		t.Errorf("missing problem count: %q", got)
	}
	if !strings.Contains(got, "1. [ERROR]") || !strings.Contains(got, "2. [WARNING]") {
		t.Errorf("problems not numbered: %q", got)
	}
}
