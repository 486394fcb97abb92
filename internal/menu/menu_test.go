package menu

import (
	"errors"
	"strings"
	"testing"
)

// recordingDispatcher records the calls the menu makes.
type recordingDispatcher struct {
	calls       []string
	returnError error
}

func (d *recordingDispatcher) GenerateSchema() error {
	d.calls = append(d.calls, "schema")
	return d.returnError
}

func (d *recordingDispatcher) CreateFilter(intermediatePath string) error {
	d.calls = append(d.calls, "create:"+intermediatePath)
	return d.returnError
}

func (d *recordingDispatcher) ValidateFilters() error {
	d.calls = append(d.calls, "validate")
	return d.returnError
}

// runMenu drives a menu over scripted input and returns the dispatcher,
// the output, and the loop's error.
func runMenu(t *testing.T, input string, returnError error) (*recordingDispatcher, string, error) {
	t.Helper()

	dispatcher := &recordingDispatcher{returnError: returnError}
	var out strings.Builder

	err := New(strings.NewReader(input), &out, dispatcher).Run()

	return dispatcher, out.String(), err
}

func TestRunDispatchesChoices(t *testing.T) {
	dispatcher, _, err := runMenu(t, "1\n3\nq\n", nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	want := []string{"schema", "validate"}
	if len(dispatcher.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", dispatcher.calls, want)
	}
	for i := range want {
		if dispatcher.calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, dispatcher.calls[i], want[i])
		}
	}
}

func TestRunCreatePromptsForPath(t *testing.T) {
	dispatcher, out, err := runMenu(t, "2\nstarter.intermediate.json\nq\n", nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if len(dispatcher.calls) != 1 || dispatcher.calls[0] != "create:starter.intermediate.json" {
		t.Errorf("calls = %v, want the create dispatch with the entered path", dispatcher.calls)
	}
	if !strings.Contains(out, "Path to intermediate JSON file") {
		t.Errorf("path prompt missing from output:\n%s", out)
	}
}

func TestRunCreateEmptyPathCancels(t *testing.T) {
	dispatcher, out, err := runMenu(t, "2\n\nq\n", nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if len(dispatcher.calls) != 0 {
		t.Errorf("calls = %v, want none after cancel", dispatcher.calls)
	}
	if !strings.Contains(out, "Cancelled.") {
		t.Errorf("cancel message missing from output:\n%s", out)
	}
}

func TestRunUnrecognizedChoice(t *testing.T) {
	dispatcher, out, err := runMenu(t, "banana\nq\n", nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if len(dispatcher.calls) != 0 {
		t.Errorf("calls = %v, want none for unrecognized input", dispatcher.calls)
	}
	if !strings.Contains(out, `Unrecognized choice "banana"`) {
		t.Errorf("error message missing from output:\n%s", out)
	}
	// The menu is redrawn after the error.
	if strings.Count(out, "=== xml-suite ===") != 2 {
		t.Errorf("menu should be drawn twice:\n%s", out)
	}
}

func TestRunQuitForms(t *testing.T) {
	for _, quit := range []string{"q", "Q", "quit", "exit", "4"} {
		t.Run(quit, func(t *testing.T) {
			dispatcher, out, err := runMenu(t, quit+"\n", nil)
			if err != nil {
				t.Fatalf("Run returned error: %v", err)
			}
			if len(dispatcher.calls) != 0 {
				t.Errorf("calls = %v, want none", dispatcher.calls)
			}
			if !strings.Contains(out, "Goodbye.") {
				t.Errorf("goodbye message missing:\n%s", out)
			}
		})
	}
}

func TestRunEndOfInputQuits(t *testing.T) {
	dispatcher, _, err := runMenu(t, "", nil)
	if err != nil {
		t.Fatalf("Run returned error at end of input: %v", err)
	}
	if len(dispatcher.calls) != 0 {
		t.Errorf("calls = %v, want none", dispatcher.calls)
	}
}

func TestRunHandlerErrorKeepsLooping(t *testing.T) {
	dispatcher, out, err := runMenu(t, "1\n3\nq\n", errors.New("schema inference blew up"))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	// Both dispatches still happen; the error is reported, not fatal.
	if len(dispatcher.calls) != 2 {
		t.Errorf("calls = %v, want both dispatches despite errors", dispatcher.calls)
	}
	if strings.Count(out, "Error: schema inference blew up") != 2 {
		t.Errorf("handler errors not reported:\n%s", out)
	}
}

func TestRunEmptyLineRedraws(t *testing.T) {
	dispatcher, out, err := runMenu(t, "\n\nq\n", nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(dispatcher.calls) != 0 {
		t.Errorf("calls = %v, want none", dispatcher.calls)
	}
	if strings.Count(out, "=== xml-suite ===") != 3 {
		t.Errorf("menu should redraw on empty lines:\n%s", out)
	}
}
