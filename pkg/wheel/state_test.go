package wheel

import (
	"math"
	"testing"
	"time"
)

func monthDays(year int, month time.Month) []time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	days := make([]time.Time, last)
	for i := range days {
		days[i] = time.Date(year, month, i+1, 0, 0, 0, 0, time.UTC)
	}
	return days
}

func newTestState(days []time.Time) (*State, *[]time.Time) {
	s := NewState(testConfig())
	s.SetCenter(Point{X: 250, Y: 250})
	s.SetDays(days, nil)
	selected := &[]time.Time{}
	s.OnSelect(func(d time.Time) {
		*selected = append(*selected, d)
	})
	return s, selected
}

// ringPoint returns the on-ring point for a placement-frame angle.
func ringPoint(s *State, angle float64) Point {
	c := s.Center()
	r := s.Layout().Radius()
	return Point{X: c.X + r*math.Cos(angle), Y: c.Y + r*math.Sin(angle)}
}

func TestTapSelectsDay(t *testing.T) {
	days := monthDays(2026, time.August) // 31 days
	s, selected := newTestState(days)

	off := s.Layout().Offset(14)
	s.Tap(Point{X: s.Center().X + off.X, Y: s.Center().Y + off.Y})

	if s.Highlighted() != 14 {
		t.Fatalf("expected highlight on 14, got %d", s.Highlighted())
	}
	d, ok := s.CenterDate()
	if !ok || !d.Equal(days[14]) {
		t.Fatalf("expected center date %v, got %v", days[14], d)
	}
	if len(*selected) != 1 || !(*selected)[0].Equal(days[14]) {
		t.Fatalf("expected one selection of %v, got %v", days[14], *selected)
	}
	if s.Phase() != SnapAnimating {
		t.Fatalf("expected snap phase after tap, got %v", s.Phase())
	}

	s.SettleDone()
	if s.Phase() != Idle {
		t.Fatalf("expected idle after settle, got %v", s.Phase())
	}
}

func TestTapOutsideAnnulusIsIgnored(t *testing.T) {
	s, selected := newTestState(monthDays(2026, time.August))

	s.Tap(s.Center())
	s.Tap(ringPoint(s, 1.0)) // hit, to prove the wiring works
	before := s.Highlighted()

	far := Point{X: s.Center().X + s.Layout().Radius()*3, Y: s.Center().Y}
	s.Tap(far)

	if len(*selected) != 1 {
		t.Fatalf("expected exactly one selection, got %d", len(*selected))
	}
	if s.Highlighted() != before {
		t.Fatalf("expected highlight unchanged by the outside tap")
	}
}

func TestDragUpdatesHighlightWithoutCommit(t *testing.T) {
	s, selected := newTestState(monthDays(2026, time.August))
	l := s.Layout()

	if !s.PointerDown(ringPoint(s, l.AngleOf(2)+0.3*l.Step())) {
		t.Fatalf("expected pointer-down inside the annulus to start a drag")
	}
	if !s.IsDragging() {
		t.Fatalf("expected dragging state")
	}

	s.PointerMove(ringPoint(s, l.AngleOf(8)+0.3*l.Step()))
	if s.Highlighted() != 8 {
		t.Fatalf("expected continuous highlight on 8, got %d", s.Highlighted())
	}
	if len(*selected) != 0 {
		t.Fatalf("mid-drag moves must not fire the selection callback")
	}
}

func TestDragReleaseSnapsExact(t *testing.T) {
	s, selected := newTestState(monthDays(2026, time.August))
	l := s.Layout()

	s.PointerDown(ringPoint(s, l.AngleOf(2)))
	s.PointerMove(ringPoint(s, l.AngleOf(10)+0.3*l.Step()))
	// Release just past marker 10's center still snaps back to 10.
	tapped := s.PointerUp(ringPoint(s, l.AngleOf(10)+0.3*l.Step()))

	if tapped {
		t.Fatalf("a quarter-ring drag must not read as a tap")
	}
	if s.Highlighted() != 10 {
		t.Fatalf("expected snap to 10, got %d", s.Highlighted())
	}
	if len(*selected) != 1 {
		t.Fatalf("expected one selection per drag, got %d", len(*selected))
	}
	if s.Phase() != SnapAnimating {
		t.Fatalf("expected snap phase after release")
	}
}

func TestTapDragDisambiguation(t *testing.T) {
	s, selected := newTestState(monthDays(2026, time.August))
	l := s.Layout()

	// Displacement under the threshold: a tap, resolved at the up-location.
	down := ringPoint(s, l.AngleOf(20))
	s.PointerDown(down)
	jiggle := Point{X: down.X + 3, Y: down.Y - 2}
	s.PointerMove(jiggle)
	if !s.PointerUp(jiggle) {
		t.Fatalf("sub-threshold displacement must read as a tap")
	}
	if s.Highlighted() != 20 {
		t.Fatalf("expected tap selection of 20, got %d", s.Highlighted())
	}
	if len(*selected) != 1 {
		t.Fatalf("expected one selection, got %d", len(*selected))
	}
}

func TestReleaseAfterRejectedDownSelectsNothing(t *testing.T) {
	s, selected := newTestState(monthDays(2026, time.August))

	// Down at the center misses the annulus, so no drag begins; the later
	// release on the ring belongs to that same rejected gesture and must
	// pass through without selecting.
	if s.PointerDown(s.Center()) {
		t.Fatalf("expected pointer-down at the center to be rejected")
	}
	if s.PointerUp(ringPoint(s, s.Layout().AngleOf(0))) {
		t.Fatalf("expected the release to be inert, not a tap")
	}

	if len(*selected) != 0 {
		t.Fatalf("expected no selection, got %v", *selected)
	}
	if s.Phase() != Idle {
		t.Fatalf("expected idle after the pass-through gesture, got %v", s.Phase())
	}
}

func TestDragReleaseOutsideAnnulusCommitsNothing(t *testing.T) {
	s, selected := newTestState(monthDays(2026, time.August))
	l := s.Layout()

	s.PointerDown(ringPoint(s, l.AngleOf(5)))
	s.PointerMove(ringPoint(s, l.AngleOf(12)+0.3*l.Step()))
	s.PointerUp(s.Center())

	if len(*selected) != 0 {
		t.Fatalf("expected no selection when the pointer lifts off the ring")
	}
	if s.IsDragging() {
		t.Fatalf("expected drag to end")
	}
}

func TestPointerMoveStagesAngleForFrames(t *testing.T) {
	s, _ := newTestState(monthDays(2026, time.August))
	l := s.Layout()

	var applied []float64
	sched := NewScheduler(time.Hour, func(angle float64) {
		applied = append(applied, angle)
	})
	s.AttachScheduler(sched)

	s.PointerDown(ringPoint(s, l.AngleOf(0)+0.2*l.Step()))
	for i := 1; i <= 5; i++ {
		s.PointerMove(ringPoint(s, l.AngleOf(i)+0.2*l.Step()))
	}
	sched.flush()

	if len(applied) != 1 {
		t.Fatalf("expected five moves to coalesce into one apply, got %d", len(applied))
	}

	s.ApplyPointerAngle(applied[0])
	got, ok := s.PointerAngle()
	if !ok || got != applied[0] {
		t.Fatalf("expected applied pointer angle %v, got %v", applied[0], got)
	}
}

func TestJumpToToday(t *testing.T) {
	now := time.Date(2026, time.August, 23, 15, 4, 5, 0, time.UTC)
	s, selected := newTestState(monthDays(2026, time.August))

	if !s.JumpToToday(now) {
		t.Fatalf("expected today to be found in its own month")
	}
	if s.Highlighted() != 22 {
		t.Fatalf("expected highlight on the 23rd (index 22), got %d", s.Highlighted())
	}
	if len(*selected) != 1 {
		t.Fatalf("expected the jump to report a selection")
	}
	if s.Phase() != SnapAnimating {
		t.Fatalf("expected the jump to snap-animate")
	}
}

func TestJumpToTodayAbsentIsNoOp(t *testing.T) {
	now := time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)
	s, selected := newTestState(monthDays(2026, time.January))
	before := s.Highlighted()

	if s.JumpToToday(now) {
		t.Fatalf("expected a month without today to decline the jump")
	}
	if s.Highlighted() != before || len(*selected) != 0 {
		t.Fatalf("expected state untouched by the declined jump")
	}
}

func TestRecenterIgnoredMidDrag(t *testing.T) {
	days := monthDays(2026, time.August)
	s, selected := newTestState(days)
	l := s.Layout()

	if !s.Recenter(days[6]) {
		t.Fatalf("expected recenter to land while idle")
	}
	if s.Highlighted() != 6 || len(*selected) != 0 {
		t.Fatalf("recenter must move the highlight silently")
	}

	s.PointerDown(ringPoint(s, l.AngleOf(6)))
	if s.Recenter(days[20]) {
		t.Fatalf("expected recenter to be ignored mid-drag")
	}
	if s.Highlighted() != 6 {
		t.Fatalf("expected highlight unchanged mid-drag, got %d", s.Highlighted())
	}
}

func TestEmptyDaysIsInert(t *testing.T) {
	s, selected := newTestState(nil)

	if s.PointerDown(Point{X: 250, Y: 130}) {
		t.Fatalf("expected pointer-down to be inert with no days")
	}
	s.PointerMove(Point{X: 250, Y: 130})
	s.Tap(Point{X: 250, Y: 130})
	if s.JumpToToday(time.Now()) {
		t.Fatalf("expected today-jump to be inert with no days")
	}

	if _, ok := s.CenterDate(); ok {
		t.Fatalf("expected no center date with no days")
	}
	if len(*selected) != 0 {
		t.Fatalf("expected no selections with no days")
	}
}

func TestSetDaysRebuildsLayoutAtomically(t *testing.T) {
	s, _ := newTestState(monthDays(2026, time.August))
	if s.Layout().Len() != 31 {
		t.Fatalf("expected 31 markers, got %d", s.Layout().Len())
	}

	s.SetDays(monthDays(2026, time.February), nil)
	if s.Layout().Len() != 28 {
		t.Fatalf("expected layout regenerated with 28 markers, got %d", s.Layout().Len())
	}
	if s.Highlighted() >= 28 {
		t.Fatalf("expected highlight clamped into the new sequence")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected mismatched flags length to panic")
		}
	}()
	s.SetDays(monthDays(2026, time.February), make([]bool, 3))
}
