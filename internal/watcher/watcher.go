// =============================================================================
// xml-suite - Directory Watcher
// =============================================================================
//
// This module wraps fsnotify for the validate --watch mode: it watches the
// sample directory and re-runs validation when filter files change. Editors
// fire bursts of events for a single save, so events are debounced; only
// after the directory has been quiet for the debounce window does the
// callback run.
//
// =============================================================================

package watcher

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is the default quiet window before the callback runs.
const DefaultDebounce = 300 * time.Millisecond

// Watcher re-runs a callback when XML files in a directory change.
type Watcher struct {
	// Debounce is the quiet window; DefaultDebounce when zero.
	Debounce time.Duration

	// Log receives progress output. Defaults to the standard logger.
	Log *logrus.Logger

	fsw *fsnotify.Watcher
}

// New creates a Watcher with default settings.
func New() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &Watcher{
		Debounce: DefaultDebounce,
		Log:      logrus.StandardLogger(),
		fsw:      fsw,
	}, nil
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Watch blocks, invoking onChange after each debounced burst of XML file
// events under directory. It returns when stop is closed or the underlying
// watcher fails.
func (w *Watcher) Watch(directory string, stop <-chan struct{}, onChange func()) error {
	if err := w.fsw.Add(directory); err != nil {
		return fmt.Errorf("failed to watch %s: %w", directory, err)
	}

	debounce := w.Debounce
	if debounce == 0 {
		debounce = DefaultDebounce
	}

	// The timer is armed on the first relevant event and re-armed on each
	// subsequent one; it fires only after a quiet window.
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			w.Log.Debugf("change detected: %s", event.Name)
			timer.Reset(debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)

		case <-timer.C:
			onChange()

		case <-stop:
			return nil
		}
	}
}

// relevant filters events down to XML file modifications.
func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return strings.EqualFold(filepath.Ext(event.Name), ".xml")
}
