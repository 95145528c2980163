// Package watch notifies when a grid definition file changes on disk.
package watch

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Interface is the surface the TUI consumes, so tests can substitute a
// double for the fsnotify-backed watcher.
type Interface interface {
	Reloads() <-chan struct{}
	Errors() <-chan error
	Close() error
}

// Watcher emits a reload signal whenever the watched file is written or
// recreated. The containing directory is watched rather than the file
// itself, so editors that replace the file atomically still trigger.
type Watcher struct {
	watcher    *fsnotify.Watcher
	filePath   string
	reloadChan chan struct{}
	errorChan  chan error
	done       chan struct{}
}

// NewWatcher creates a watcher for the given file.
func NewWatcher(filePath string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsWatcher.Add(filepath.Dir(filePath)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:    fsWatcher,
		filePath:   filepath.Clean(filePath),
		reloadChan: make(chan struct{}, 1),
		errorChan:  make(chan error, 10),
		done:       make(chan struct{}),
	}

	go w.watch()

	return w, nil
}

// Reloads returns the channel that receives a signal per file change.
func (w *Watcher) Reloads() <-chan struct{} {
	return w.reloadChan
}

// Errors returns the channel that receives watcher errors.
func (w *Watcher) Errors() <-chan error {
	return w.errorChan
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) watch() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			// Coalesce: a pending signal already covers this change.
			select {
			case w.reloadChan <- struct{}{}:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errorChan <- err:
			default:
			}

		case <-w.done:
			return
		}
	}
}

// TestWatcher is a manual double implementing Interface for tests.
type TestWatcher struct {
	reloadChan chan struct{}
	errorChan  chan error
}

// NewTestWatcher creates a test watcher with unbuffered channels.
func NewTestWatcher() *TestWatcher {
	return &TestWatcher{
		reloadChan: make(chan struct{}),
		errorChan:  make(chan error),
	}
}

// Reloads returns the reload channel.
func (t *TestWatcher) Reloads() <-chan struct{} { return t.reloadChan }

// Errors returns the error channel.
func (t *TestWatcher) Errors() <-chan error { return t.errorChan }

// Close is a no-op.
func (t *TestWatcher) Close() error { return nil }

// SendReload delivers a reload signal to the consumer.
func (t *TestWatcher) SendReload() { t.reloadChan <- struct{}{} }

// SendError delivers an error to the consumer.
func (t *TestWatcher) SendError(err error) { t.errorChan <- err }
