package watcher

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/JoinFullStackDev/blueprint-timeline/internal/util"
)

// Event signals a change to the watched input file.
type Event struct {
	Path      string
	Operation string
}

// FileWatcher emits an Event whenever the watched input file is written or
// created. It watches the containing directory, since editors commonly
// replace files via rename.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	target  string
	events  chan Event
}

// New starts watching the directory holding path, filtering events down to
// the file itself.
func New(path string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, err
	}

	fw := &FileWatcher{
		watcher: watcher,
		target:  abs,
		events:  make(chan Event, 16),
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) processEvents() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				close(fw.events)
				return
			}

			if !sameFile(event.Name, fw.target) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			fw.events <- Event{
				Path:      event.Name,
				Operation: event.Op.String(),
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				close(fw.events)
				return
			}
			// Log error but continue running
			util.LogError("File monitoring error: " + err.Error())
		}
	}
}

func sameFile(a, b string) bool {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false
	}
	return absA == b
}

// Events returns the change notification channel.
func (fw *FileWatcher) Events() <-chan Event {
	return fw.events
}

// Close stops the watcher.
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
