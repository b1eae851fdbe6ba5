package catalog

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/penwyp/go-plan-compare/internal/util"
)

const reloadTimeout = 10 * time.Second

// Watcher reloads a Store whenever its catalog file changes on disk
type Watcher struct {
	watcher *fsnotify.Watcher
	store   *Store
	path    string

	// fingerprint of the last successfully loaded contents
	fingerprint string

	reloads chan error
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches path and reloads store whenever its contents change.
// The parent directory is watched so editors that replace the file are seen.
func NewWatcher(store *Store, path string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: watcher,
		store:   store,
		path:    abs,
		reloads: make(chan error, 16),
		done:    make(chan struct{}),
	}
	// A missing file has no fingerprint; its first appearance reloads
	w.fingerprint, _ = util.FileFingerprint(abs)

	go w.processEvents()

	return w, nil
}

func (w *Watcher) processEvents() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			fingerprint, err := util.FileFingerprint(w.path)
			if err == nil && fingerprint == w.fingerprint {
				util.LogDebugf("Catalog file touched without changes: %s", event.Name)
				continue
			}

			util.LogDebugf("Catalog file changed: %s (%s)", event.Name, event.Op.String())
			ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
			err = w.store.Reload(ctx)
			cancel()
			if err == nil {
				w.fingerprint = fingerprint
			}
			w.notify(err)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Log error but continue running
			util.LogError("Catalog watch error: " + err.Error())
		}
	}
}

// notify never blocks the event loop; results are dropped when nobody reads
func (w *Watcher) notify(err error) {
	select {
	case w.reloads <- err:
	default:
	}
}

// Reloads reports the outcome of every reload attempt
func (w *Watcher) Reloads() <-chan error {
	return w.reloads
}

// Close stops watching and waits for the event goroutine to exit
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		err = w.watcher.Close()
		<-w.done
	})
	return err
}
