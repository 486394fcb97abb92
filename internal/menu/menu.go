// =============================================================================
// xml-suite - Interactive Menu
// =============================================================================
//
// This module implements the interactive menu shown when the suite is
// invoked without a subcommand. The menu reads one line of input at a time,
// maps it to an action, and calls the matching command handler directly,
// in-process; handlers print their own progress and return an error that the
// menu reports before redrawing. One prompt is outstanding at a time, and
// the loop runs until a quit command is entered.
//
// MENU:
//   1) Generate schema from sample filters
//   2) Create filter from intermediate JSON
//   3) Validate filters against schema
//   q) Quit
//
// Choice 2 first prompts for the intermediate file path; an empty answer
// cancels and redraws. Unrecognized input shows an error and redraws without
// dispatching anything.
//
// =============================================================================

package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// =============================================================================
// DISPATCHER CONTRACT
// =============================================================================

// Dispatcher is the set of actions the menu can invoke. The cmd package
// wires these to the same handlers the subcommands use.
type Dispatcher interface {
	// GenerateSchema runs schema inference with the configured defaults.
	GenerateSchema() error

	// CreateFilter compiles the given intermediate file with the
	// configured defaults.
	CreateFilter(intermediatePath string) error

	// ValidateFilters validates the configured sample directory.
	ValidateFilters() error
}

// =============================================================================
// MENU
// =============================================================================

// Menu is the interactive loop. In and Out are injectable so the loop can be
// driven from tests.
type Menu struct {
	In         io.Reader
	Out        io.Writer
	Dispatcher Dispatcher
}

// New creates a menu over the given streams and dispatcher.
func New(in io.Reader, out io.Writer, dispatcher Dispatcher) *Menu {
	return &Menu{In: in, Out: out, Dispatcher: dispatcher}
}

// Run drives the menu loop until a quit command or end of input.
func (m *Menu) Run() error {
	scanner := bufio.NewScanner(m.In)

	for {
		m.draw()

		choice, ok := m.readLine(scanner)
		if !ok {
			// End of input behaves like quit.
			return scanner.Err()
		}

		switch strings.ToLower(choice) {
		case "1":
			m.dispatch(m.Dispatcher.GenerateSchema())

		case "2":
			m.createFilter(scanner)

		case "3":
			m.dispatch(m.Dispatcher.ValidateFilters())

		case "q", "quit", "exit", "4":
			fmt.Fprintln(m.Out, "Goodbye.")
			return nil

		case "":
			// An empty line just redraws.

		default:
			fmt.Fprintf(m.Out, "Unrecognized choice %q. Please enter 1, 2, 3, or q.\n", choice)
		}
	}
}

// createFilter handles choice 2: prompt for the intermediate path first.
func (m *Menu) createFilter(scanner *bufio.Scanner) {
	fmt.Fprint(m.Out, "Path to intermediate JSON file (empty to cancel): ")

	path, ok := m.readLine(scanner)
	if !ok || path == "" {
		fmt.Fprintln(m.Out, "Cancelled.")
		return
	}

	m.dispatch(m.Dispatcher.CreateFilter(path))
}

// dispatch reports a handler error without leaving the loop, mirroring how a
// failed action should return the user to the menu.
func (m *Menu) dispatch(err error) {
	if err != nil {
		fmt.Fprintf(m.Out, "Error: %v\n", err)
	}
}

// draw renders the menu.
func (m *Menu) draw() {
	fmt.Fprint(m.Out, `
=== xml-suite ===
  1) Generate schema from sample filters
  2) Create filter from intermediate JSON
  3) Validate filters against schema
  q) Quit
Choice: `)
}

// readLine reads one trimmed line. The second return is false at EOF.
func (m *Menu) readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}
