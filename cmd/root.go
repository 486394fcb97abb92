// =============================================================================
// xml-suite - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'schema', 'validate') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (xml-suite)
//   ├── schemaCmd   (xml-suite schema)
//   ├── createCmd   (xml-suite create)
//   ├── validateCmd (xml-suite validate)
//   └── versionCmd  (xml-suite version)
//
// When invoked without a subcommand, the root command starts the interactive
// menu instead of printing help. The menu calls the same in-process handlers
// the subcommands use; exit codes are owned entirely by Execute.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lootworks/xml-suite/internal/config"
	"github.com/lootworks/xml-suite/internal/menu"
	"github.com/lootworks/xml-suite/internal/xmlvalidator"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the suite configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// suiteConfig is the loaded suite configuration. It always holds at least
// the built-in defaults, so handlers can run before Execute in tests.
var suiteConfig = config.Default()

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "xml-suite",
	Short: "xml-suite - Loot-filter authoring toolchain",
	Long: `xml-suite is a CLI toolchain for authoring game loot-filter XML documents.

It infers an XSD schema from a corpus of sample filters, compiles
intermediate JSON descriptions into filter XML, and validates filter
documents against the inferred schema.

Example Usage:
  xml-suite schema                           # Infer the XSD from SampleFilters/*.xml
  xml-suite create -i starter.intermediate.json
  xml-suite validate                         # Check SampleFilters against the schema
  xml-suite                                  # Start the interactive menu`,

	SilenceUsage:  true,
	SilenceErrors: true,

	// Configuration and logging are set up before any handler runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		suiteConfig = loaded

		configureLogging(suiteConfig.LogLevel, verbose)
		log.Debugf("configuration loaded (config file: %s)", cfgFile)
		return nil
	},

	// No subcommand: start the interactive menu over the same handlers.
	RunE: func(cmd *cobra.Command, args []string) error {
		m := menu.New(cmd.InOrStdin(), cmd.OutOrStdout(), &menuDispatcher{})
		return m.Run()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). All failures surface here
// and become exit code 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INTERACTIVE MENU DISPATCH
// =============================================================================

// menuDispatcher routes menu choices to the command handlers with the
// configured defaults, replacing the historical approach of re-spawning the
// binary as a subprocess per choice.
type menuDispatcher struct{}

func (d *menuDispatcher) GenerateSchema() error {
	return runSchema(suiteConfig.SourceGlob, suiteConfig.SchemaPath)
}

func (d *menuDispatcher) CreateFilter(intermediatePath string) error {
	return runCreate(intermediatePath, suiteConfig.Strictness, "")
}

func (d *menuDispatcher) ValidateFilters() error {
	return runValidate(suiteConfig.SchemaPath, suiteConfig.SamplesDir, xmlvalidator.ValidateDirectory, "")
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// --config flag: Allows the user to specify a custom configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"xml-suite.yaml",
		"Path to the suite configuration file",
	)

	// --verbose flag: Enables verbose/debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// resolveFlag applies the resolution order: explicit flag, then config file
// value, then the flag's built-in default.
func resolveFlag(cmd *cobra.Command, name, flagValue, configValue string) string {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	if configValue != "" {
		return configValue
	}
	return flagValue
}
