package month

import (
	"testing"
	"time"

	"tableflip.dev/dayring/pkg/entry"
	"tableflip.dev/dayring/pkg/glyph"
)

func TestDaysCoversTheMonth(t *testing.T) {
	cases := []struct {
		anchor time.Time
		want   int
	}{
		{time.Date(2026, time.February, 10, 8, 0, 0, 0, time.UTC), 28},
		{time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), 29},
		{time.Date(2026, time.August, 31, 23, 59, 0, 0, time.UTC), 31},
	}
	for _, c := range cases {
		days := Days(c.anchor)
		if len(days) != c.want {
			t.Fatalf("%v: expected %d days, got %d", c.anchor, c.want, len(days))
		}
		if days[0].Day() != 1 {
			t.Fatalf("expected sequence to start on the 1st, got %v", days[0])
		}
		if days[len(days)-1].Day() != c.want {
			t.Fatalf("expected sequence to end on the %dth, got %v", c.want, days[len(days)-1])
		}
	}
}

func TestFlagsMatchSequenceLength(t *testing.T) {
	days := Days(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC))
	entries := []*entry.Entry{
		entry.New(glyph.Event, time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC), "standup"),
		entry.New(glyph.Note, time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC), "tired"),
		entry.New(glyph.Event, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), "next month"),
	}

	flags := Flags(days, entries)
	if len(flags) != len(days) {
		t.Fatalf("expected %d flags, got %d", len(days), len(flags))
	}
	if !flags[4] {
		t.Fatalf("expected the 5th flagged")
	}
	for i, f := range flags {
		if f && i != 4 {
			t.Fatalf("unexpected flag on index %d", i)
		}
	}
}

func TestFlagsEmpty(t *testing.T) {
	if got := Flags(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty flags for empty days")
	}
	days := Days(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC))
	flags := Flags(days, nil)
	if len(flags) != len(days) {
		t.Fatalf("expected zeroed flags of sequence length")
	}
}

func TestIndexOf(t *testing.T) {
	days := Days(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC))

	idx, ok := IndexOf(days, time.Date(2026, time.August, 23, 14, 30, 0, 0, time.UTC))
	if !ok || idx != 22 {
		t.Fatalf("expected index 22 for the 23rd, got %d (ok=%v)", idx, ok)
	}

	if _, ok := IndexOf(days, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)); ok {
		t.Fatalf("expected a day outside the month to be absent")
	}
}
