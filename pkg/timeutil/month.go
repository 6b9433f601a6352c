// Package timeutil collects the small pieces of calendar math shared by the
// CLI and the TUI.
package timeutil

import "time"

const (
	// LayoutISO is the key format used for per-day storage buckets.
	LayoutISO = "2006-01-02"
	// LayoutMonth names a month bucket, for example "August 2026".
	LayoutMonth = "January 2006"
	// LayoutUS is the long human-readable day format.
	LayoutUS = "January 2, 2006"
)

// DaysIn returns the number of days in t's month.
func DaysIn(t time.Time) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// FirstOf returns midnight on the first day of t's month, in t's location.
func FirstOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// Midnight truncates t to the start of its day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// ClampDay bounds a day-of-month into what y/m actually has.
func ClampDay(y int, m time.Month, d int) int {
	if d < 1 {
		return 1
	}
	if last := time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day(); d > last {
		return last
	}
	return d
}

// MonthKey names the storage bucket for t's month.
func MonthKey(t time.Time) string {
	return t.Format(LayoutMonth)
}
