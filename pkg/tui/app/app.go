// Package app wires the dayring TUI: the date wheel, the selected-day
// readout, and the store watch that keeps both fresh.
package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/dayring/pkg/entry"
	"tableflip.dev/dayring/pkg/month"
	"tableflip.dev/dayring/pkg/store"
	"tableflip.dev/dayring/pkg/timeutil"
	"tableflip.dev/dayring/pkg/tui/components/dial"
	"tableflip.dev/dayring/pkg/tui/components/readout"
	"tableflip.dev/dayring/pkg/tui/theme"
)

type entriesLoadedMsg struct {
	monthKey string
	entries  []*entry.Entry
}

type watchReadyMsg struct {
	ch <-chan store.Event
}

type storeChangedMsg struct {
	event store.Event
	ok    bool
}

// App is the root Bubble Tea model.
type App struct {
	svc store.Persistence
	ctx context.Context

	theme   theme.Theme
	dial    *dial.Model
	readout *readout.Model

	anchor   time.Time // any time inside the visible month
	entries  []*entry.Entry
	selected time.Time

	watch  <-chan store.Event
	status string

	width  int
	height int
}

// New creates the app around a loaded store.
func New(svc store.Persistence) *App {
	th := theme.Default()
	now := time.Now()
	a := &App{
		svc:     svc,
		ctx:     context.Background(),
		theme:   th,
		dial:    dial.New(dial.DefaultConfig(), th.Wheel),
		readout: readout.New(th.Readout),
		anchor:  now,
		status:  "drag or click the ring to pick a day · t today · h/l month · q quit",
	}
	a.dial.SetNow(now)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadMonth(), a.startWatch())
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.readout.SetSize(40, msg.Height-2)
		var cmd tea.Cmd
		a.dial, cmd = a.dial.Update(a.dialSize(msg))
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			a.dial.Close()
			return a, tea.Quit
		case "t":
			if cmd, ok := a.dial.JumpToToday(); ok {
				cmds = append(cmds, cmd)
			} else {
				a.anchor = time.Now()
				cmds = append(cmds, a.loadMonth())
			}
		case "h", "left":
			a.anchor = a.anchor.AddDate(0, -1, 0)
			cmds = append(cmds, a.loadMonth())
		case "l", "right":
			a.anchor = a.anchor.AddDate(0, 1, 0)
			cmds = append(cmds, a.loadMonth())
		default:
			var cmd tea.Cmd
			a.readout, cmd = a.readout.Update(msg)
			cmds = append(cmds, cmd)
		}

	case entriesLoadedMsg:
		if msg.monthKey != timeutil.MonthKey(a.anchor) {
			break // a stale load for a month we already left
		}
		a.entries = msg.entries
		days := month.Days(a.anchor)
		a.dial.SetMonth(days, month.Flags(days, a.entries))
		if !a.selected.IsZero() {
			a.dial.Recenter(a.selected)
		}
		a.refreshReadout()

	case dial.SelectedMsg:
		a.selected = msg.Date
		a.refreshReadout()
		a.status = fmt.Sprintf("selected %s", msg.Date.Format(timeutil.LayoutUS))

	case watchReadyMsg:
		a.watch = msg.ch
		cmds = append(cmds, a.nextWatchEvent())

	case storeChangedMsg:
		if !msg.ok {
			break // watch channel closed; stop rearming
		}
		cmds = append(cmds, a.loadMonth(), a.nextWatchEvent())

	default:
		var cmd tea.Cmd
		a.dial, cmd = a.dial.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *App) View() string {
	if a.width <= 0 {
		return ""
	}

	header := a.theme.Footer.Status.Render(timeutil.MonthKey(a.anchor))
	wheelView := a.dial.View()
	side := a.readout.View()

	body := lipgloss.JoinHorizontal(lipgloss.Top, wheelView, side)
	footer := a.theme.Footer.Help.Render(a.status)
	return header + "\n" + body + "\n" + footer
}

// dialSize carves the wheel's share of the window out of the full size
// message; the readout takes a fixed column on the right.
func (a *App) dialSize(msg tea.WindowSizeMsg) tea.WindowSizeMsg {
	w := msg.Width - 42
	if w < 20 {
		w = msg.Width
	}
	h := msg.Height - 2
	if h < 5 {
		h = msg.Height
	}
	return tea.WindowSizeMsg{Width: w, Height: h}
}

func (a *App) refreshReadout() {
	if a.selected.IsZero() {
		if d, ok := a.dial.CenterDate(); ok {
			a.selected = d
		} else {
			return
		}
	}
	day := make([]*entry.Entry, 0, 4)
	for _, e := range a.entries {
		if e.OnDay(a.selected) {
			day = append(day, e)
		}
	}
	a.readout.SetDay(a.selected, day)
}

func (a *App) loadMonth() tea.Cmd {
	key := timeutil.MonthKey(a.anchor)
	return func() tea.Msg {
		return entriesLoadedMsg{monthKey: key, entries: a.svc.List(a.ctx, key)}
	}
}

func (a *App) startWatch() tea.Cmd {
	svc, ctx := a.svc, a.ctx
	return func() tea.Msg {
		ch, err := svc.Watch(ctx)
		if err != nil {
			return storeChangedMsg{ok: false}
		}
		return watchReadyMsg{ch: ch}
	}
}

func (a *App) nextWatchEvent() tea.Cmd {
	ch := a.watch
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		evt, ok := <-ch
		return storeChangedMsg{event: evt, ok: ok}
	}
}

// Run starts the program with mouse reporting enabled and keeps the frame
// scheduler attached for exactly the program's lifetime.
func Run(svc store.Persistence) error {
	a := New(svc)
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseCellMotion())
	a.dial.SetSender(p.Send)
	defer a.dial.Close()

	_, err := p.Run()
	return err
}
