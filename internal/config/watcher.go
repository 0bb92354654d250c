package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"
)

// Event identifies which persisted file changed.
type Event int

const (
	// EventConfig fires when the applet configuration changes.
	EventConfig Event = iota
	// EventState fires when the background daemon state changes.
	EventState
	// EventThemeMode fires when the system theme mode changes.
	EventThemeMode
)

// String returns the event name for logging.
func (e Event) String() string {
	switch e {
	case EventConfig:
		return "config"
	case EventState:
		return "state"
	case EventThemeMode:
		return "thememode"
	}
	return "unknown"
}

// Watcher watches the configuration directory and reports which persisted
// file changed. Events are delivered on a buffered channel; bursts beyond
// the buffer are dropped, the next write retriggers.
type Watcher struct {
	fs     *fsnotify.Watcher
	events chan Event
	logger hclog.Logger
}

// Watch starts watching the configuration directory, creating it first so
// the watch can be established before any file exists.
func Watch(logger hclog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{
		fs:     fsw,
		events: make(chan Event, 8),
		logger: logger,
	}
	go w.loop()
	return w, nil
}

// Events returns the channel change notifications are delivered on.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Close stops the watcher and closes the event channel.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

func (w *Watcher) loop() {
	defer close(w.events)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			event, ok := classify(ev.Name)
			if !ok {
				continue
			}
			select {
			case w.events <- event:
			default:
				// Channel full; a pending event already covers this change.
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

// classify maps a changed file name to its event.
func classify(name string) (Event, bool) {
	switch filepath.Base(name) {
	case ConfigFile:
		return EventConfig, true
	case StateFile:
		return EventState, true
	case ThemeModeFile:
		return EventThemeMode, true
	}
	return 0, false
}
