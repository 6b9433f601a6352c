// Package dial hosts the circular date wheel inside Bubble Tea: it feeds
// mouse events into the wheel state machine, forwards frame-coalesced drag
// angles back onto the program loop, and renders the ring.
package dial

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/harmonica"

	"tableflip.dev/dayring/pkg/tui/theme"
	"tableflip.dev/dayring/pkg/wheel"
)

// Terminal cells are roughly twice as tall as wide; the wheel works in row
// units and columns are halved on the way in, doubled on the way out.
const cellAspect = 2.0

// DefaultConfig sizes the wheel for a terminal grid, in row units.
func DefaultConfig() wheel.Config {
	return wheel.Config{
		Radius:        9,
		HalfWidth:     3,
		TapThreshold:  1.2,
		FrameInterval: wheel.DefaultFrameInterval,
	}
}

// FrameMsg carries the frame-coalesced pointer angle back onto the program
// loop. The scheduler's ticker goroutine only ever sends it; all state
// mutation stays in Update.
type FrameMsg struct {
	Angle float64
}

// SelectedMsg announces a committed day selection to the host app.
type SelectedMsg struct {
	Date time.Time
}

type settleTickMsg struct{}

// Model is the Bubble Tea component wrapping wheel.State.
type Model struct {
	state *wheel.State
	sched *wheel.Scheduler
	theme theme.WheelTheme

	interval time.Duration
	now      time.Time

	width  int
	height int

	// Snap animation: a spring settles cursorAngle onto the committed
	// marker after a release or a today-jump.
	spring      harmonica.Spring
	cursorAngle float64
	cursorVel   float64
	cursorShown bool
	settling    bool
	settleTo    float64

	selected *time.Time
}

// New creates a dial with no days; the app supplies them via SetMonth.
func New(cfg wheel.Config, th theme.WheelTheme) *Model {
	m := &Model{
		state:    wheel.NewState(cfg),
		theme:    th,
		interval: cfg.FrameInterval,
		now:      time.Now(),
		spring:   harmonica.NewSpring(harmonica.FPS(60), 8.0, 0.8),
	}
	m.state.OnSelect(func(d time.Time) {
		m.selected = &d
	})
	return m
}

// SetSender wires the frame scheduler to the running program. Must be
// called before the first drag; the scheduler stays attached until Close.
func (m *Model) SetSender(send func(tea.Msg)) {
	if m.sched != nil {
		m.sched.Detach()
	}
	m.sched = wheel.NewScheduler(m.interval, func(angle float64) {
		send(FrameMsg{Angle: angle})
	})
	m.sched.Attach()
	m.state.AttachScheduler(m.sched)
}

// Close detaches the frame scheduler. Safe to call more than once.
func (m *Model) Close() {
	if m.sched != nil {
		m.sched.Detach()
		m.sched = nil
	}
}

// SetMonth replaces the day sequence and its event flags.
func (m *Model) SetMonth(days []time.Time, flags []bool) {
	m.state.SetDays(days, flags)
	m.cursorShown = false
	m.settling = false
}

// SetNow updates the reference time used to mark today.
func (m *Model) SetNow(now time.Time) { m.now = now }

// Recenter aligns the highlight with an externally selected day.
func (m *Model) Recenter(date time.Time) { m.state.Recenter(date) }

// JumpToToday snaps to today's marker and returns the command driving the
// settle animation and the selection notice; the host must run it. When
// today is not visible the wheel is untouched and ok is false.
func (m *Model) JumpToToday() (cmd tea.Cmd, ok bool) {
	if !m.state.JumpToToday(m.now) {
		return nil, false
	}
	return m.withSelected(m.beginSettle()), true
}

// CenterDate exposes the highlighted date.
func (m *Model) CenterDate() (time.Time, bool) { return m.state.CenterDate() }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update routes mouse and frame messages into the wheel state machine.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.state.SetCenter(m.center())

	case tea.MouseClickMsg:
		if msg.Button == tea.MouseLeft {
			m.state.PointerDown(m.point(msg.X, msg.Y))
		}

	case tea.MouseMotionMsg:
		m.state.PointerMove(m.point(msg.X, msg.Y))

	case tea.MouseReleaseMsg:
		m.state.PointerUp(m.point(msg.X, msg.Y))
		if m.state.Phase() == wheel.SnapAnimating {
			cmd = m.beginSettle()
		}

	case FrameMsg:
		// The once-per-frame apply: the drawn cursor tracks the pointer
		// here, never in the raw motion handler.
		m.state.ApplyPointerAngle(msg.Angle)
		if m.state.IsDragging() {
			m.cursorAngle = placementFrame(msg.Angle)
			m.cursorShown = true
		}

	case settleTickMsg:
		cmd = m.stepSettle()
	}

	return m, m.withSelected(cmd)
}

// withSelected drains a selection committed during the current call into a
// SelectedMsg command, batched after cmd.
func (m *Model) withSelected(cmd tea.Cmd) tea.Cmd {
	if m.selected == nil {
		return cmd
	}
	date := *m.selected
	m.selected = nil
	sel := func() tea.Msg { return SelectedMsg{Date: date} }
	if cmd == nil {
		return sel
	}
	return tea.Batch(cmd, sel)
}

func (m *Model) beginSettle() tea.Cmd {
	l := m.state.Layout()
	if l.Len() == 0 {
		m.state.SettleDone()
		return nil
	}
	target := l.AngleOf(m.state.Highlighted())
	if !m.cursorShown {
		m.cursorAngle = target
	}
	// Settle along the short way around the seam.
	for target-m.cursorAngle > math.Pi {
		target -= 2 * math.Pi
	}
	for m.cursorAngle-target > math.Pi {
		target += 2 * math.Pi
	}
	m.settleTo = target
	m.settling = true
	m.cursorShown = true
	return m.settleTick()
}

func (m *Model) stepSettle() tea.Cmd {
	if !m.settling {
		return nil
	}
	m.cursorAngle, m.cursorVel = m.spring.Update(m.cursorAngle, m.cursorVel, m.settleTo)
	if math.Abs(m.cursorAngle-m.settleTo) < 0.01 && math.Abs(m.cursorVel) < 0.01 {
		m.cursorAngle = m.settleTo
		m.cursorVel = 0
		m.settling = false
		m.state.SettleDone()
		return nil
	}
	return m.settleTick()
}

func (m *Model) settleTick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return settleTickMsg{} })
}

// placementFrame maps a [0, 2pi) pointer angle into the frame the layout
// cache uses for marker placement, so spring targets compare cleanly
// across the top seam.
func placementFrame(a float64) float64 {
	if a >= 3*math.Pi/2 {
		a -= 2 * math.Pi
	}
	return a
}

// point maps terminal cell coordinates into wheel space.
func (m *Model) point(col, row int) wheel.Point {
	return wheel.Point{X: float64(col) / cellAspect, Y: float64(row)}
}

func (m *Model) center() wheel.Point {
	return wheel.Point{
		X: float64(m.width) / (2 * cellAspect),
		Y: float64(m.height) / 2,
	}
}

// View draws the ring. The day markers come straight from the layout cache
// and never move; only the highlight, the cursor dot, and the center
// readout change between frames.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	l := m.state.Layout()
	days := m.state.Days()
	c := m.state.Center()

	grid := make([][]string, m.height)
	for r := range grid {
		grid[r] = make([]string, m.width)
		for col := range grid[r] {
			grid[r][col] = " "
		}
	}

	put := func(p wheel.Point, text string, style func(...string) string) {
		row := int(math.Round(p.Y))
		col := int(math.Round(p.X * cellAspect))
		col -= len(text) / 2
		if row < 0 || row >= m.height {
			return
		}
		for i, ch := range []rune(text) {
			x := col + i
			if x < 0 || x >= m.width {
				continue
			}
			grid[row][x] = style(string(ch))
		}
	}

	for i, day := range days {
		off := l.Offset(i)
		p := wheel.Point{X: c.X + off.X, Y: c.Y + off.Y}
		label := fmt.Sprintf("%d", day.Day())

		style := m.theme.Marker.Render
		switch {
		case i == m.state.Highlighted():
			style = m.theme.Highlight.Render
		case sameDay(day, m.now):
			style = m.theme.Today.Render
		case m.state.Flag(i):
			style = m.theme.Event.Render
		}
		put(p, label, style)
	}

	if m.cursorShown && (m.state.IsDragging() || m.settling) {
		r := l.Radius() + l.HalfWidth()
		p := wheel.Point{
			X: c.X + r*math.Cos(m.cursorAngle),
			Y: c.Y + r*math.Sin(m.cursorAngle),
		}
		put(p, "•", m.theme.Cursor.Render)
	}

	m.putCenter(grid, c)

	rows := make([]string, m.height)
	for r := range grid {
		rows[r] = strings.Join(grid[r], "")
	}
	return strings.Join(rows, "\n")
}

// putCenter draws the two-line center readout: the highlighted date and an
// entry hint.
func (m *Model) putCenter(grid [][]string, c wheel.Point) {
	date, ok := m.state.CenterDate()
	if !ok {
		return
	}

	line1 := date.Format("Mon, Jan 2")
	line2 := ""
	if m.state.Flag(m.state.Highlighted()) {
		line2 = "has entries"
	}

	row := int(math.Round(c.Y))
	col := int(math.Round(c.X * cellAspect))
	write := func(r int, text string, style func(...string) string) {
		start := col - len(text)/2
		if r < 0 || r >= len(grid) {
			return
		}
		for i, ch := range []rune(text) {
			x := start + i
			if x < 0 || x >= len(grid[r]) {
				continue
			}
			grid[r][x] = style(string(ch))
		}
	}
	write(row, line1, m.theme.Center.Render)
	if line2 != "" {
		write(row+1, line2, m.theme.CenterDim.Render)
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
