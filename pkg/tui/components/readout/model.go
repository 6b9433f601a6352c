// Package readout shows the entries of the selected day next to the wheel.
package readout

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/dayring/pkg/entry"
	"tableflip.dev/dayring/pkg/glyph"
	"tableflip.dev/dayring/pkg/timeutil"
	"tableflip.dev/dayring/pkg/tui/theme"
)

type entryItem struct{ e *entry.Entry }

func (it entryItem) Title() string       { return it.e.String() }
func (it entryItem) Description() string { return "" }
func (it entryItem) FilterValue() string { return it.e.Message }

// Model renders the selected day's entries.
type Model struct {
	theme theme.ReadoutTheme

	day     time.Time
	entries []*entry.Entry
	lst     list.Model

	width  int
	height int
}

// New creates an empty readout.
func New(th theme.ReadoutTheme) *Model {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	l := list.New([]list.Item{}, d, 36, 12)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowTitle(false)

	return &Model{theme: th, lst: l}
}

// SetDay replaces the displayed day and its entries.
func (m *Model) SetDay(day time.Time, entries []*entry.Entry) {
	m.day = day
	m.entries = entries
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, entryItem{e: e})
	}
	m.lst.SetItems(items)
}

// SetSize bounds the panel.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if width > 6 && height > 6 {
		m.lst.SetSize(width-6, height-6)
	}
}

// Update forwards navigation keys to the entry list.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	var cmd tea.Cmd
	m.lst, cmd = m.lst.Update(msg)
	return m, cmd
}

// View renders the framed panel.
func (m *Model) View() string {
	if m.day.IsZero() {
		return m.theme.Frame.Render(m.theme.Empty.Render("select a day"))
	}

	title := m.theme.Title.Render(m.day.Format(timeutil.LayoutUS))

	body := m.lst.View()
	if len(m.entries) == 0 {
		body = m.theme.Empty.Render("no entries")
	}

	if s := m.moodLine(); s != "" {
		body += "\n" + s
	}
	return m.theme.Frame.Render(title + "\n\n" + body)
}

func (m *Model) moodLine() string {
	var sum, n int
	for _, e := range m.entries {
		if e.Kind == glyph.Mood {
			sum += e.Score
			n++
		}
	}
	if n == 0 {
		return ""
	}
	return m.theme.Mood.Render(fmt.Sprintf("mood %.1f/5", float64(sum)/float64(n)))
}
