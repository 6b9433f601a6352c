// Package month derives the wheel's inputs for a visible calendar month:
// the ordered day sequence and the per-day entry flags.
package month

import (
	"time"

	"tableflip.dev/dayring/pkg/entry"
	"tableflip.dev/dayring/pkg/timeutil"
)

// Days returns every day of anchor's month at midnight, in calendar order.
// Index i is day i+1. The slice is regenerated whenever the visible month
// changes and treated as immutable in between.
func Days(anchor time.Time) []time.Time {
	first := timeutil.FirstOf(anchor)
	n := timeutil.DaysIn(anchor)
	days := make([]time.Time, n)
	for i := range days {
		days[i] = first.AddDate(0, 0, i)
	}
	return days
}

// Flags marks, for each day in the sequence, whether any entry falls on it.
// The result always has the same length as days; it is recomputed whenever
// the day sequence or the entry list changes.
func Flags(days []time.Time, entries []*entry.Entry) []bool {
	flags := make([]bool, len(days))
	if len(days) == 0 || len(entries) == 0 {
		return flags
	}
	byDay := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		byDay[e.Date.Format(timeutil.LayoutISO)] = true
	}
	for i, d := range days {
		flags[i] = byDay[d.Format(timeutil.LayoutISO)]
	}
	return flags
}

// IndexOf finds the sequence index of the day containing date.
func IndexOf(days []time.Time, date time.Time) (int, bool) {
	for i, d := range days {
		if timeutil.SameDay(d, date) {
			return i, true
		}
	}
	return 0, false
}
