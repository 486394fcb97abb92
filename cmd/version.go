// =============================================================================
// xml-suite - Version Command
// =============================================================================
//
// This file defines the 'version' command, which displays the suite version
// and build information.
//
// COMMAND USAGE:
//   xml-suite version
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build information, overridden at release time with ldflags:
//
//	go build -ldflags "-X 'github.com/lootworks/xml-suite/cmd.Version=1.1.0' \
//	                   -X 'github.com/lootworks/xml-suite/cmd.Commit=$(git rev-parse --short HEAD)' \
//	                   -X 'github.com/lootworks/xml-suite/cmd.BuildDate=$(date -u +%Y-%m-%d)'"
var (
	// Version is the suite version.
	Version = "1.0.0"

	// Commit is the short hash of the commit the binary was built from.
	Commit = "none"

	// BuildDate is the date the binary was built.
	BuildDate = "unknown"
)

// versionCmd represents the 'version' command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the suite version",
	Long:  `Display the suite version, the commit and date it was built from, and the Go runtime version.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "xml-suite %s\n", Version)
		fmt.Fprintf(out, "  commit: %s\n", Commit)
		fmt.Fprintf(out, "  built:  %s\n", BuildDate)
		fmt.Fprintf(out, "  go:     %s\n", runtime.Version())
	},
}

// init registers the version command with the root command.
func init() {
	rootCmd.AddCommand(versionCmd)
}
