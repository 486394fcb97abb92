// =============================================================================
// xml-suite - Configuration Module
// =============================================================================
//
// This module is responsible for loading and managing the suite configuration.
// The configuration supplies the default paths and settings shared by all
// commands; individual command flags always take precedence over values
// loaded from the file.
//
// CONFIGURATION FILE:
//   xml-suite.yaml (or the file named by --config): global suite settings.
//
// RESOLUTION ORDER:
//   1. Command-line flag (if explicitly set)
//   2. Configuration file value
//   3. Built-in default
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// BUILT-IN DEFAULTS
// =============================================================================

// Built-in defaults, used when neither a flag nor the configuration file
// provides a value. These mirror the documented CLI defaults.
const (
	DefaultSourceGlob   = "SampleFilters/*.xml"
	DefaultSchemaPath   = "schema/filter-schema.xsd"
	DefaultSamplesDir   = "SampleFilters"
	DefaultGeneratedDir = "generated"
	DefaultStrictness   = "strict"
	DefaultLogLevel     = "info"
)

// =============================================================================
// SUITE CONFIGURATION STRUCTURE
// =============================================================================

// SuiteConfig holds the global suite configuration.
type SuiteConfig struct {
	// SourceGlob is the glob pattern for sample filter XMLs used by schema
	// inference.
	// Default: "SampleFilters/*.xml"
	SourceGlob string `yaml:"source_glob"`

	// SchemaPath is where the inferred XSD is written and read from.
	// Default: "schema/filter-schema.xsd"
	SchemaPath string `yaml:"schema_path"`

	// SamplesDir is the directory of filter XMLs checked by 'validate'.
	// Default: "SampleFilters"
	SamplesDir string `yaml:"samples_dir"`

	// GeneratedDir is the directory where 'create' places compiled filters.
	// Default: "generated"
	GeneratedDir string `yaml:"generated_dir"`

	// Strictness is the default strictness level for 'create'.
	// Valid values: "strict", "normal", "loose"
	// Default: "strict"
	Strictness string `yaml:"strictness"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load loads the suite configuration from a YAML file.
//
// A missing file is not an error: every setting has a usable built-in
// default, so the suite works out of the box in a fresh project directory.
// A file that exists but cannot be parsed is an error.
func Load(configPath string) (*SuiteConfig, error) {
	config := Default()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(config)

	if err := validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Default returns a configuration populated with the built-in defaults.
func Default() *SuiteConfig {
	return &SuiteConfig{
		SourceGlob:   DefaultSourceGlob,
		SchemaPath:   DefaultSchemaPath,
		SamplesDir:   DefaultSamplesDir,
		GeneratedDir: DefaultGeneratedDir,
		Strictness:   DefaultStrictness,
		LogLevel:     DefaultLogLevel,
	}
}

// applyDefaults fills any setting the file left empty.
func applyDefaults(config *SuiteConfig) {
	if config.SourceGlob == "" {
		config.SourceGlob = DefaultSourceGlob
	}
	if config.SchemaPath == "" {
		config.SchemaPath = DefaultSchemaPath
	}
	if config.SamplesDir == "" {
		config.SamplesDir = DefaultSamplesDir
	}
	if config.GeneratedDir == "" {
		config.GeneratedDir = DefaultGeneratedDir
	}
	if config.Strictness == "" {
		config.Strictness = DefaultStrictness
	}
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}
}

// validate rejects values that would only fail later in a confusing place.
func validate(config *SuiteConfig) error {
	switch config.Strictness {
	case "strict", "normal", "loose":
	default:
		return fmt.Errorf("unknown strictness level %q (expected strict, normal, or loose)", config.Strictness)
	}

	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q (expected debug, info, warn, or error)", config.LogLevel)
	}

	return nil
}
