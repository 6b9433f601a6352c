package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/dayring/pkg/entry"
	"tableflip.dev/dayring/pkg/glyph"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() (string, error) {
	return t.path, nil
}

func day(d int) time.Time {
	return time.Date(2026, time.August, d, 0, 0, 0, 0, time.UTC)
}

func TestStoreListByMonth(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	for _, e := range []*entry.Entry{
		entry.New(glyph.Event, day(23), "dentist"),
		entry.New(glyph.Note, day(5), "slept badly"),
		entry.New(glyph.Event, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), "next month"),
	} {
		if err := p.Store(e); err != nil {
			t.Fatalf("store entry: %v", err)
		}
	}

	ctx := context.Background()
	august := p.List(ctx, "August 2026")
	if len(august) != 2 {
		t.Fatalf("expected 2 entries in August, got %d", len(august))
	}
	if august[0].Date.Day() != 5 || august[1].Date.Day() != 23 {
		t.Fatalf("expected date order 5 then 23, got %v then %v", august[0].Date, august[1].Date)
	}

	cols := p.Collections(ctx, "")
	if len(cols) != 2 {
		t.Fatalf("expected 2 collections, got %v", cols)
	}
}

func TestStoreDelete(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	e := entry.New(glyph.Mood, day(10), "")
	e.Score = 3
	if err := p.Store(e); err != nil {
		t.Fatalf("store entry: %v", err)
	}
	if err := p.Delete(e); err != nil {
		t.Fatalf("delete entry: %v", err)
	}
	if got := p.ListAll(context.Background()); len(got) != 0 {
		t.Fatalf("expected empty store after delete, got %d entries", len(got))
	}
}

func TestWatchBurstCoalesces(t *testing.T) {
	w := &watcher{
		events: make(chan Event, 8),
		burst:  burst{collections: make(map[string]struct{})},
	}

	for i := 0; i < 5; i++ {
		w.changed("August 2026")
	}
	w.invalidate()
	w.flush()

	if got := len(w.events); got != 2 {
		t.Fatalf("expected a burst to flush to 2 events, got %d", got)
	}
	first := <-w.events
	if first.Type != EventInvalidated {
		t.Fatalf("expected the invalidation first, got %v", first)
	}
	second := <-w.events
	if second.Type != EventCollectionChanged || second.Collection != "August 2026" {
		t.Fatalf("expected one change for 'August 2026', got %v", second)
	}
}

func TestStoreWatchEmitsCollectionChanges(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before storing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Store(entry.New(glyph.Event, day(23), "hello")); err != nil {
		t.Fatalf("store entry: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			if evt.Type == EventCollectionChanged {
				if evt.Collection != "August 2026" {
					t.Fatalf("expected collection 'August 2026', got %q", evt.Collection)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for a change event")
		}
	}
}
