// =============================================================================
// xml-suite - Create Command
// =============================================================================
//
// This file defines the 'create' command, which compiles an intermediate
// JSON description into a loot-filter XML document.
//
// COMMAND USAGE:
//   xml-suite create -i <file> [flags]
//
// FLAGS:
//   -i, --intermediate : Path to the intermediate JSON file (required)
//   -s, --strictness   : Strictness level (strict, normal, loose)
//   -o, --output       : Output path for the compiled filter
//
// The default output name is derived from the intermediate file name:
//   foo.intermediate.json + loose -> generated/foo-loose.xml
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lootworks/xml-suite/internal/config"
	"github.com/lootworks/xml-suite/internal/filtergen"
	"github.com/lootworks/xml-suite/internal/types"
	"github.com/lootworks/xml-suite/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// createIntermediate is the path to the intermediate JSON file.
var createIntermediate string

// createStrictness is the strictness level for compilation.
var createStrictness string

// createOutput is the output path for the compiled filter.
var createOutput string

// =============================================================================
// CREATE COMMAND DEFINITION
// =============================================================================

// createCmd represents the 'create' command.
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Compile an intermediate JSON file into a loot filter",
	Long: `The create command loads an intermediate JSON description of a loot
filter, checks it at the requested strictness level, and compiles it into a
filter XML document.

Strictness levels:
  strict - unknown fields, rules without conditions, and unknown operators
           or action types are errors
  normal - unknown operators and action types are warnings
  loose  - all checks are warnings; output is written regardless`,

	RunE: func(cmd *cobra.Command, args []string) error {
		strictness := resolveFlag(cmd, "strictness", createStrictness, suiteConfig.Strictness)
		return runCreate(createIntermediate, strictness, createOutput)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the create command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVarP(
		&createIntermediate,
		"intermediate",
		"i",
		"",
		"Path to the intermediate JSON file (required)",
	)
	createCmd.MarkFlagRequired("intermediate")

	createCmd.Flags().StringVarP(
		&createStrictness,
		"strictness",
		"s",
		config.DefaultStrictness,
		"Strictness level: strict, normal, or loose",
	)

	createCmd.Flags().StringVarP(
		&createOutput,
		"output",
		"o",
		"",
		"Output path for the compiled filter (default derives from the input name)",
	)
}

// =============================================================================
// HANDLER
// =============================================================================

// runCreate compiles one intermediate file and prints progress. It is called
// by both the subcommand and the interactive menu.
func runCreate(intermediatePath, strictness, outputPath string) error {
	if !filtergen.ValidStrictness(strictness) {
		return fmt.Errorf("unknown strictness level %q (expected strict, normal, or loose)", strictness)
	}

	// Precondition checked before any work is attempted.
	if !utils.FileExists(intermediatePath) {
		return fmt.Errorf("intermediate file not found: %s", intermediatePath)
	}

	if outputPath == "" {
		outputPath = filtergen.DefaultOutputPathIn(suiteConfig.GeneratedDir, intermediatePath, strictness)
	}

	fmt.Println("=== xml-suite: filter creation ===")
	fmt.Printf("Compiling %s (strictness: %s)...\n", intermediatePath, strictness)

	result := filtergen.New(strictness).Run(intermediatePath, outputPath)

	if len(result.Problems) > 0 {
		fmt.Print(types.FormatErrors(result.Problems))
	}

	if result.Error != nil {
		return fmt.Errorf("filter creation failed: %w", result.Error)
	}

	fmt.Printf("Filter written to %s (%d rule(s)", result.OutputFile, result.RulesEmitted)
	if result.RulesSkipped > 0 {
		fmt.Printf(", %d disabled rule(s) skipped", result.RulesSkipped)
	}
	fmt.Println(")")

	return nil
}
