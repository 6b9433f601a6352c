// Package glyph defines the symbols dayring prints for each kind of dated
// entry.
package glyph

import (
	"fmt"
	"strings"
)

// Glyph describes one printable entry symbol.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	Noun    string
	Aliases []string
}

func (g Glyph) String() string {
	return g.Symbol
}

// Kind indexes into DefaultGlyphs.
type Kind int

const (
	Event Kind = iota
	Note
	Mood
	Habit
	Any
)

// DefaultGlyphs returns the glyph set in Kind order.
func DefaultGlyphs() []Glyph {
	return []Glyph{
		{
			Key:     "o",
			Symbol:  "○",
			Meaning: "a scheduled event",
			Noun:    "events",
			Aliases: []string{"event", "events", "o"},
		},
		{
			Key:     "-",
			Symbol:  "⁃",
			Meaning: "a note about the day",
			Noun:    "notes",
			Aliases: []string{"note", "notes", "n", "-"},
		},
		{
			Key:     "~",
			Symbol:  "♡",
			Meaning: "a mood check-in, scored 1-5",
			Noun:    "moods",
			Aliases: []string{"mood", "moods", "m"},
		},
		{
			Key:     "+",
			Symbol:  "●",
			Meaning: "a habit occurrence",
			Noun:    "habits",
			Aliases: []string{"habit", "habits", "h", "+"},
		},
		{
			Key:     "",
			Symbol:  "",
			Meaning: "any",
			Noun:    "",
			Aliases: nil,
		},
	}
}

// Glyph returns the printable glyph for k.
func (k Kind) Glyph() Glyph {
	return DefaultGlyphs()[k]
}

func (k Kind) String() string {
	return k.Glyph().String()
}

// KindForAlias resolves a CLI word like "mood" or "n" to its Kind.
func KindForAlias(alias string) (Kind, error) {
	alias = strings.ToLower(strings.TrimSpace(alias))
	for i, g := range DefaultGlyphs() {
		for _, a := range g.Aliases {
			if a == alias {
				return Kind(i), nil
			}
		}
	}
	return Any, fmt.Errorf("glyph: unknown kind %q", alias)
}
