package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType classifies a persistence change notification.
type EventType int

const (
	// EventCollectionChanged indicates the entries of the given month
	// collection changed.
	EventCollectionChanged EventType = iota

	// EventInvalidated signals that the set of collections itself changed
	// and callers should refresh their full view.
	EventInvalidated
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type       EventType
	Collection string
}

// burstDelay bounds how often consumers re-read the store during a write
// storm; everything inside one window collapses into a single burst.
const burstDelay = 100 * time.Millisecond

// Watch streams change events until ctx is cancelled. Callers should drain
// the returned channel; slow consumers lose intermediate events, never the
// watcher. The channel is closed once ctx is done or the watcher fails.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}

	w := &watcher{
		base:    p.basePath,
		fsw:     fsw,
		events:  make(chan Event, 64),
		watched: make(map[string]struct{}),
		burst:   burst{collections: make(map[string]struct{})},
	}
	if err := w.watchTree(p.basePath); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	go w.run(ctx)
	return w.events, nil
}

// watcher turns raw fsnotify traffic into month-collection events. The UI
// shows one month at a time, so a file write resolves to the collection
// named by its top-level directory, and anything structural (new
// directories, watcher errors) collapses into a single invalidation asking
// clients to re-read.
type watcher struct {
	base    string
	fsw     *fsnotify.Watcher
	events  chan Event
	watched map[string]struct{}

	mu     sync.Mutex
	burst  burst
	closed bool
}

// burst accumulates one flush worth of changes behind a single timer.
type burst struct {
	timer       *time.Timer
	invalidated bool
	collections map[string]struct{}
}

func (w *watcher) run(ctx context.Context) {
	defer w.shutdown()

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// The change cannot be classified; have clients refresh.
			w.invalidate()
		case evt, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(evt)
		}
	}
}

func (w *watcher) handle(evt fsnotify.Event) {
	if evt.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
			// A new directory is a new month bucket, or a new date level
			// under one; watch it so later writes are seen.
			if err := w.watchTree(filepath.Clean(evt.Name)); err != nil {
				fmt.Fprintf(os.Stderr, "store: %v\n", err)
			}
			w.invalidate()
			return
		}
	}

	if name := w.collectionOf(evt.Name); name != "" {
		w.changed(name)
		return
	}
	w.invalidate()
}

// watchTree subscribes dir and every directory below it, skipping ones
// already watched. Only the run goroutine and the initial Watch call touch
// the watched set.
func (w *watcher) watchTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("store: walk %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if _, found := w.watched[path]; found {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("store: watch %s: %w", path, err)
		}
		w.watched[path] = struct{}{}
		return nil
	})
}

// collectionOf maps a changed path to its month collection name, or ""
// when the path does not sit under a collection directory.
func (w *watcher) collectionOf(path string) string {
	rel, err := filepath.Rel(w.base, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return ""
	}
	head := strings.Split(rel, string(os.PathSeparator))[0]
	if head == "" {
		return ""
	}
	return fromCollection(head)
}

func (w *watcher) changed(collection string) {
	w.mu.Lock()
	w.burst.collections[collection] = struct{}{}
	w.armLocked()
	w.mu.Unlock()
}

func (w *watcher) invalidate() {
	w.mu.Lock()
	w.burst.invalidated = true
	w.armLocked()
	w.mu.Unlock()
}

func (w *watcher) armLocked() {
	if w.burst.timer == nil {
		w.burst.timer = time.AfterFunc(burstDelay, w.flush)
	}
}

// flush empties the burst: one invalidation event when anything structural
// happened, plus one change event per touched collection. Runs on the timer
// goroutine.
func (w *watcher) flush() {
	w.mu.Lock()
	b := w.burst
	w.burst = burst{collections: make(map[string]struct{})}
	w.mu.Unlock()

	if b.invalidated {
		w.send(Event{Type: EventInvalidated})
	}
	for name := range b.collections {
		w.send(Event{Type: EventCollectionChanged, Collection: name})
	}
}

// send never blocks and never outlives shutdown; a dropped event is caught
// up by the consumer's next refresh.
func (w *watcher) send(ev Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.events <- ev:
	default:
	}
}

func (w *watcher) shutdown() {
	w.mu.Lock()
	if w.burst.timer != nil {
		w.burst.timer.Stop()
		w.burst.timer = nil
	}
	w.closed = true
	w.mu.Unlock()

	if err := w.fsw.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
	}
	close(w.events)
}
