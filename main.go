// =============================================================================
// xml-suite - Main Entry Point
// =============================================================================
//
// This is the main entry point for the xml-suite CLI, a toolchain for
// authoring game loot-filter XML documents. It initializes the Cobra CLI
// framework and delegates command execution to the cmd package.
//
// USAGE:
//   xml-suite schema        - Infer an XSD schema from sample filter XMLs
//   xml-suite create        - Compile an intermediate JSON file into a filter
//   xml-suite validate      - Validate filter XMLs against the schema
//   xml-suite version       - Display the application version
//   xml-suite               - (no arguments) Start the interactive menu
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//   - SampleFilters/ : Sample loot-filter XML documents (schema corpus)
//   - schema/        : Generated XSD schema output
//
// =============================================================================

package main

import (
	"github.com/lootworks/xml-suite/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
