// =============================================================================
// xml-suite - Schema Command
// =============================================================================
//
// This file defines the 'schema' command, which infers an XSD schema from a
// corpus of sample loot-filter XML documents.
//
// COMMAND USAGE:
//   xml-suite schema [flags]
//
// FLAGS:
//   -s, --source  : Glob pattern for sample filter XMLs
//   -o, --output  : Path for the generated XSD
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lootworks/xml-suite/internal/config"
	"github.com/lootworks/xml-suite/internal/schemagen"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// schemaSource is the glob pattern for sample filter XMLs.
var schemaSource string

// schemaOutput is the path for the generated XSD.
var schemaOutput string

// =============================================================================
// SCHEMA COMMAND DEFINITION
// =============================================================================

// schemaCmd represents the 'schema' command.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Infer an XSD schema from sample filter XMLs",
	Long: `The schema command scans the sample filter corpus, merges every document
into a structural model, and writes the inferred XSD schema.

Element structure, attribute requiredness, value types, and string length
limits are all derived from what the samples actually contain. The more
representative the corpus, the tighter the schema.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		source := resolveFlag(cmd, "source", schemaSource, suiteConfig.SourceGlob)
		output := resolveFlag(cmd, "output", schemaOutput, suiteConfig.SchemaPath)
		return runSchema(source, output)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the schema command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().StringVarP(
		&schemaSource,
		"source",
		"s",
		config.DefaultSourceGlob,
		"Glob pattern for sample filter XMLs",
	)

	schemaCmd.Flags().StringVarP(
		&schemaOutput,
		"output",
		"o",
		config.DefaultSchemaPath,
		"Path for the generated XSD schema",
	)
}

// =============================================================================
// HANDLER
// =============================================================================

// runSchema runs schema inference and prints progress. It is called by both
// the subcommand and the interactive menu.
func runSchema(source, output string) error {
	fmt.Println("=== xml-suite: schema generation ===")
	fmt.Printf("Scanning samples matching %s...\n", source)

	summary, err := schemagen.New().Generate(source, output)
	if err != nil {
		return fmt.Errorf("schema generation failed: %w", err)
	}

	fmt.Printf("Merged %d sample(s), inferred %d element(s)\n",
		summary.SamplesScanned, summary.ElementsInferred)
	fmt.Printf("Schema written to %s\n", summary.OutputPath)

	return nil
}
