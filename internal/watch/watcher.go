// Package watch reports changes to launch data files.
package watch

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/papapumpkin/launchplot/internal/log"
)

// Debounce is how long a file must stay quiet before its change is emitted.
const Debounce = 100 * time.Millisecond

// ChangeKind describes the type of file change detected.
type ChangeKind int

const (
	ChangeModified ChangeKind = iota // data file edited
	ChangeRemoved                    // data file deleted
	ChangeAdded                      // new data file appeared
)

// String returns the lower-case name of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeModified:
		return "modified"
	case ChangeRemoved:
		return "removed"
	case ChangeAdded:
		return "added"
	default:
		return "unknown"
	}
}

// Change represents a detected change in the data directory.
type Change struct {
	Kind ChangeKind
	File string
}

// Watcher monitors a data directory for changes to files whose name
// contains Filter, using fsnotify.
type Watcher struct {
	Dir     string
	Filter  string
	Changes <-chan Change // Read-only external channel

	changes chan Change // Internal write channel
	stop    chan struct{}
	done    chan struct{}
	watcher *fsnotify.Watcher
}

type pendingChange struct {
	at      time.Time
	created bool
}

// NewWatcher creates a new watcher for the given data directory.
func NewWatcher(dir, filter string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Change, 16)
	w := &Watcher{
		Dir:     dir,
		Filter:  filter,
		Changes: ch,
		changes: ch,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		watcher: fw,
	}
	return w, nil
}

// Start begins watching the data directory for changes.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	close(w.stop)
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]pendingChange)
	ticker := time.NewTicker(Debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.isDataFile(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				p := pending[event.Name]
				p.at = time.Now()
				p.created = p.created || event.Has(fsnotify.Create)
				pending[event.Name] = p
			}

		case <-ticker.C:
			now := time.Now()
			for file, p := range pending {
				if now.Sub(p.at) < Debounce {
					continue
				}
				delete(pending, file)
				if !w.emit(file, p) {
					return
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn("watch error", "dir", w.Dir, "error", err)

		case <-w.stop:
			return
		}
	}
}

// isDataFile reports whether name is a launch data file, skipping hidden
// and editor backup files.
func (w *Watcher) isDataFile(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	return strings.Contains(base, w.Filter)
}

// emit sends the change for file. It returns false when the watcher is
// stopping.
func (w *Watcher) emit(file string, p pendingChange) bool {
	c := Change{Kind: ChangeModified, File: file}
	if _, err := os.Stat(file); err != nil {
		c.Kind = ChangeRemoved
	} else if p.created {
		c.Kind = ChangeAdded
	}

	select {
	case w.changes <- c:
		return true
	case <-w.stop:
		return false
	}
}
