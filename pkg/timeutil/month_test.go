package timeutil

import (
	"testing"
	"time"
)

func TestDaysIn(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2026, time.February, 28},
		{2024, time.February, 29},
		{2026, time.April, 30},
		{2026, time.August, 31},
	}
	for _, c := range cases {
		got := DaysIn(time.Date(c.year, c.month, 15, 12, 0, 0, 0, time.UTC))
		if got != c.want {
			t.Fatalf("%v %d: expected %d days, got %d", c.month, c.year, c.want, got)
		}
	}
}

func TestFirstOfKeepsLocation(t *testing.T) {
	loc := time.FixedZone("test", 3600)
	first := FirstOf(time.Date(2026, time.August, 23, 18, 30, 0, 0, loc))
	if first.Day() != 1 || first.Hour() != 0 || first.Location() != loc {
		t.Fatalf("unexpected first of month: %v", first)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, time.August, 23, 1, 0, 0, 0, time.UTC)
	b := time.Date(2026, time.August, 23, 23, 59, 0, 0, time.UTC)
	if !SameDay(a, b) {
		t.Fatalf("expected same day")
	}
	if SameDay(a, b.AddDate(0, 0, 1)) {
		t.Fatalf("expected different days")
	}
}

func TestClampDay(t *testing.T) {
	if got := ClampDay(2026, time.February, 31); got != 28 {
		t.Fatalf("expected clamp to 28, got %d", got)
	}
	if got := ClampDay(2026, time.February, 0); got != 1 {
		t.Fatalf("expected clamp to 1, got %d", got)
	}
	if got := ClampDay(2026, time.February, 14); got != 14 {
		t.Fatalf("expected 14 unchanged, got %d", got)
	}
}
