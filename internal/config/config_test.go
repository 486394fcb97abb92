package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "xml-suite.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load returned error for a missing file: %v", err)
	}

	want := Default()
	if *config != *want {
		t.Errorf("config = %+v, want defaults %+v", config, want)
	}
}

func TestLoadOverridesAndDefaults(t *testing.T) {
	path := writeConfig(t, `
samples_dir: filters
strictness: loose
`)

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if config.SamplesDir != "filters" {
		t.Errorf("SamplesDir = %q, want filters", config.SamplesDir)
	}
	if config.Strictness != "loose" {
		t.Errorf("Strictness = %q, want loose", config.Strictness)
	}

	// Settings the file omits fall back to the built-in defaults.
	if config.SchemaPath != DefaultSchemaPath {
		t.Errorf("SchemaPath = %q, want default %q", config.SchemaPath, DefaultSchemaPath)
	}
	if config.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want default %q", config.LogLevel, DefaultLogLevel)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "strictness: [unclosed"},
		{"unknown strictness", "strictness: pedantic"},
		{"unknown log level", "log_level: chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("Load accepted an invalid configuration")
			}
		})
	}
}
