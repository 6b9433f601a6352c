// Package entry defines the dated wellness entries dayring records: events,
// notes, mood check-ins, and habit occurrences.
package entry

import (
	"fmt"
	"time"

	"tableflip.dev/dayring/pkg/glyph"
	"tableflip.dev/dayring/pkg/timeutil"
)

// Entry is one dated record. Collection is the month bucket the entry lives
// in, always derivable from Date; the store keeps them together so listing a
// month never parses dates out of keys.
type Entry struct {
	ID         string     `json:"id,omitempty"`
	Collection string     `json:"collection"`
	Kind       glyph.Kind `json:"kind"`
	Date       Timestamp  `json:"date"`
	Score      int        `json:"score,omitempty"`
	Message    string     `json:"message,omitempty"`
	Created    Timestamp  `json:"created,omitempty"`
}

// New creates an entry for the given calendar day.
func New(kind glyph.Kind, date time.Time, message string) *Entry {
	return &Entry{
		Collection: timeutil.MonthKey(date),
		Kind:       kind,
		Date:       Timestamp{Time: timeutil.Midnight(date)},
		Message:    message,
		Created:    Timestamp{Time: time.Now()},
	}
}

// NewMood creates a mood check-in with a 1-5 score.
func NewMood(date time.Time, score int, message string) (*Entry, error) {
	if score < 1 || score > 5 {
		return nil, fmt.Errorf("entry: mood score must be 1-5, got %d", score)
	}
	e := New(glyph.Mood, date, message)
	e.Score = score
	return e, nil
}

// OnDay reports whether the entry belongs to the given calendar day.
func (e *Entry) OnDay(day time.Time) bool {
	return timeutil.SameDay(e.Date.Time, day)
}

// Row returns the columns the agenda table prints for this entry.
func (e *Entry) Row() (string, string, string) {
	return e.Date.Time.Format(timeutil.LayoutISO), e.Kind.String(), e.describe()
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s  %s", e.Kind.String(), e.describe())
}

func (e *Entry) describe() string {
	if e.Kind == glyph.Mood {
		if e.Message == "" {
			return fmt.Sprintf("mood %d/5", e.Score)
		}
		return fmt.Sprintf("mood %d/5  %s", e.Score, e.Message)
	}
	return e.Message
}
