package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/lootworks/xml-suite/internal/types"
)

// stubValidator records whether the validator was invoked and returns a
// canned result.
type stubValidator struct {
	called bool
	result *types.ValidationResult
}

func (s *stubValidator) validate(directory, schemaPath string) (*types.ValidationResult, error) {
	s.called = true
	return s.result, nil
}

func TestRunValidateMissingSchema(t *testing.T) {
	stub := &stubValidator{result: types.NewValidationResult()}

	err := runValidate(filepath.Join(t.TempDir(), "missing.xsd"), t.TempDir(), stub.validate, "")

	if err == nil || !strings.Contains(err.Error(), "schema file not found") {
		t.Errorf("err = %v, want a missing-schema error", err)
	}
	if stub.called {
		t.Error("validator was invoked despite the failed precondition")
	}
}

func TestRunValidateMissingDirectory(t *testing.T) {
	schemaPath := filepath.Join(t.TempDir(), "schema.xsd")
	if err := os.WriteFile(schemaPath, []byte("<unused/>"), 0644); err != nil {
		t.Fatal(err)
	}

	stub := &stubValidator{result: types.NewValidationResult()}

	err := runValidate(schemaPath, filepath.Join(t.TempDir(), "nope"), stub.validate, "")

	if err == nil || !strings.Contains(err.Error(), "filter directory not found") {
		t.Errorf("err = %v, want a missing-directory error", err)
	}
	if stub.called {
		t.Error("validator was invoked despite the failed precondition")
	}
}

func TestRunValidateOutcome(t *testing.T) {
	schemaPath := filepath.Join(t.TempDir(), "schema.xsd")
	if err := os.WriteFile(schemaPath, []byte("<unused/>"), 0644); err != nil {
		t.Fatal(err)
	}
	directory := t.TempDir()

	clean := &stubValidator{result: types.NewValidationResult()}
	if err := runValidate(schemaPath, directory, clean.validate, ""); err != nil {
		t.Errorf("clean run returned error: %v", err)
	}
	if !clean.called {
		t.Error("validator was not invoked")
	}

	failing := &stubValidator{result: types.NewValidationResult()}
	failing.result.Add(&types.ValidationError{
		Severity: types.SeverityError,
		Rule:     "min_occurs",
		Message:  "element <lootFilter> requires at least 1 <rule> child(ren), found 0",
	})

	err := runValidate(schemaPath, directory, failing.validate, "")
	if err == nil || !strings.Contains(err.Error(), "1 error(s)") {
		t.Errorf("err = %v, want a validation failure with the error count", err)
	}
}

func TestRunCreateMissingIntermediate(t *testing.T) {
	err := runCreate(filepath.Join(t.TempDir(), "absent.intermediate.json"), "strict", "")

	if err == nil || !strings.Contains(err.Error(), "intermediate file not found") {
		t.Errorf("err = %v, want a missing-file error", err)
	}
}

func TestRunCreateUnknownStrictness(t *testing.T) {
	err := runCreate("whatever.json", "pedantic", "")

	if err == nil || !strings.Contains(err.Error(), "unknown strictness level") {
		t.Errorf("err = %v, want an unknown-strictness error", err)
	}
}

func TestRunCreateWritesOutput(t *testing.T) {
	intermediatePath := filepath.Join(t.TempDir(), "starter.intermediate.json")
	intermediate := `{
	  "filter": {"name": "Starter"},
	  "rules": [
	    {"name": "currency", "priority": 1,
	     "conditions": [{"property": "Class", "operator": "eq", "value": "Currency"}],
	     "actions": [{"type": "Show"}]}
	  ]
	}`
	if err := os.WriteFile(intermediatePath, []byte(intermediate), 0644); err != nil {
		t.Fatal(err)
	}

	outputPath := filepath.Join(t.TempDir(), "starter.xml")

	if err := runCreate(intermediatePath, "strict", outputPath); err != nil {
		t.Fatalf("runCreate returned error: %v", err)
	}
	if _, err := os.Stat(outputPath); err != nil {
		t.Errorf("output file was not written: %v", err)
	}
}

func TestRunSchema(t *testing.T) {
	samplesDir := t.TempDir()
	sample := `<lootFilter name="a"><rule n="1"><action type="Hide"/></rule></lootFilter>`
	if err := os.WriteFile(filepath.Join(samplesDir, "a.xml"), []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}

	outputPath := filepath.Join(t.TempDir(), "schema", "filter-schema.xsd")

	if err := runSchema(filepath.Join(samplesDir, "*.xml"), outputPath); err != nil {
		t.Fatalf("runSchema returned error: %v", err)
	}
	if _, err := os.Stat(outputPath); err != nil {
		t.Errorf("schema was not written: %v", err)
	}
}

func TestRunSchemaEmptyCorpus(t *testing.T) {
	err := runSchema(filepath.Join(t.TempDir(), "*.xml"), filepath.Join(t.TempDir(), "out.xsd"))

	if err == nil || !strings.Contains(err.Error(), "schema generation failed") {
		t.Errorf("err = %v, want a failure for an empty corpus", err)
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	defer versionCmd.SetOut(nil)

	versionCmd.Run(versionCmd, nil)

	got := out.String()
	for _, want := range []string{
		"xml-suite " + Version,
		"commit: " + Commit,
		"built:  " + BuildDate,
		"go:     " + runtime.Version(),
	} {
		if !strings.Contains(got, want) {
			t.Errorf("version output missing %q:\n%s", want, got)
		}
	}
}

func TestResolveFlag(t *testing.T) {
	newCmd := func() *cobra.Command {
		c := &cobra.Command{}
		c.Flags().String("strictness", "strict", "")
		return c
	}

	// Unset flag, config value present: config wins.
	c := newCmd()
	if got := resolveFlag(c, "strictness", "strict", "loose"); got != "loose" {
		t.Errorf("config value not used: got %q", got)
	}

	// Unset flag, no config value: built-in default stands.
	c = newCmd()
	if got := resolveFlag(c, "strictness", "strict", ""); got != "strict" {
		t.Errorf("default not used: got %q", got)
	}

	// Explicitly set flag beats the config value.
	c = newCmd()
	if err := c.Flags().Set("strictness", "normal"); err != nil {
		t.Fatal(err)
	}
	if got := resolveFlag(c, "strictness", "normal", "loose"); got != "normal" {
		t.Errorf("explicit flag not used: got %q", got)
	}
}
