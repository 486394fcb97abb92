// =============================================================================
// xml-suite - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which validates a directory of
// loot-filter XML documents against the inferred XSD schema.
//
// COMMAND USAGE:
//   xml-suite validate [flags]
//
// FLAGS:
//   -s, --schema     : Path to the XSD schema
//   -d, --directory  : Directory of filter XMLs to validate
//       --report     : Write an XLSX validation report (optional path)
//       --watch      : Re-validate whenever the directory changes
//
// EXIT CODES:
//   0 - every document validated cleanly
//   1 - missing schema/directory, or the validator reported errors
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lootworks/xml-suite/internal/config"
	"github.com/lootworks/xml-suite/internal/report"
	"github.com/lootworks/xml-suite/internal/types"
	"github.com/lootworks/xml-suite/internal/watcher"
	"github.com/lootworks/xml-suite/internal/xmlvalidator"
	"github.com/lootworks/xml-suite/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// validateSchemaPath is the path to the XSD schema.
var validateSchemaPath string

// validateDirectory is the directory of filter XMLs to validate.
var validateDirectory string

// validateReport is the XLSX report path; "auto" derives a unique name.
var validateReport string

// validateWatch re-validates whenever the directory changes.
var validateWatch bool

// validateFunc is the validator entry point; injectable for tests.
type validateFunc func(directory, schemaPath string) (*types.ValidationResult, error)

// =============================================================================
// VALIDATE COMMAND DEFINITION
// =============================================================================

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate filter XMLs against the schema",
	Long: `The validate command checks every filter XML in the given directory
against the XSD schema: element structure, occurrence bounds, attributes,
data types, and string length limits.

All problems are collected and reported in one run; the command exits
non-zero if any document has errors.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		schemaPath := resolveFlag(cmd, "schema", validateSchemaPath, suiteConfig.SchemaPath)
		directory := resolveFlag(cmd, "directory", validateDirectory, suiteConfig.SamplesDir)

		reportPath := validateReport
		if reportPath == "auto" {
			reportPath = utils.GenerateReportFileName("validation_{timestamp}_{uuid}.xlsx")
		}

		if validateWatch {
			return runValidateWatch(schemaPath, directory, reportPath)
		}

		return runValidate(schemaPath, directory, xmlvalidator.ValidateDirectory, reportPath)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the validate command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(
		&validateSchemaPath,
		"schema",
		"s",
		config.DefaultSchemaPath,
		"Path to the XSD schema",
	)

	validateCmd.Flags().StringVarP(
		&validateDirectory,
		"directory",
		"d",
		config.DefaultSamplesDir,
		"Directory of filter XMLs to validate",
	)

	validateCmd.Flags().StringVar(
		&validateReport,
		"report",
		"",
		"Write an XLSX validation report to the given path",
	)
	// --report without a value derives a unique file name.
	validateCmd.Flags().Lookup("report").NoOptDefVal = "auto"

	validateCmd.Flags().BoolVar(
		&validateWatch,
		"watch",
		false,
		"Re-validate whenever the directory changes",
	)
}

// =============================================================================
// HANDLER
// =============================================================================

// runValidate performs one validation pass and prints the findings. It is
// called by the subcommand, the watch loop, and the interactive menu. The
// validator is injected so precondition behavior is testable.
func runValidate(schemaPath, directory string, validate validateFunc, reportPath string) error {
	// Preconditions checked before the validator is ever invoked.
	if !utils.FileExists(schemaPath) {
		return fmt.Errorf("schema file not found: %s (run 'xml-suite schema' to generate it)", schemaPath)
	}
	if !utils.DirExists(directory) {
		return fmt.Errorf("filter directory not found: %s", directory)
	}

	fmt.Println("=== xml-suite: validation ===")
	fmt.Printf("Validating %s against %s...\n", directory, schemaPath)

	result, err := validate(directory, schemaPath)
	if err != nil {
		return fmt.Errorf("validation failed to run: %w", err)
	}

	if len(result.Errors) > 0 {
		fmt.Print(types.FormatErrors(result.Errors))
	}

	fmt.Printf("Files: %d, errors: %d, warnings: %d\n",
		result.FilesValidated, result.ErrorCount, result.WarningCount)

	if reportPath != "" {
		if err := utils.EnsureParentDir(reportPath); err != nil {
			return err
		}
		if err := report.WriteXLSX(result, reportPath); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", reportPath)
	}

	if result.ErrorCount > 0 {
		return fmt.Errorf("validation failed with %d error(s)", result.ErrorCount)
	}

	fmt.Println("All filters are valid.")
	return nil
}

// runValidateWatch validates once, then re-validates after each change to
// the directory until interrupted. Validation failures do not stop the
// loop; the point of watch mode is to keep reporting as files are fixed.
func runValidateWatch(schemaPath, directory, reportPath string) error {
	runOnce := func() {
		if err := runValidate(schemaPath, directory, xmlvalidator.ValidateDirectory, reportPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	runOnce()

	w, err := watcher.New()
	if err != nil {
		return err
	}
	defer w.Close()

	stop := make(chan struct{})
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		close(stop)
	}()

	fmt.Printf("Watching %s for changes (Ctrl-C to stop)...\n", directory)

	return w.Watch(directory, stop, runOnce)
}
