package wheel

import (
	"math"
	"time"
)

// Phase is the wheel's interaction state.
type Phase int

const (
	// Idle means no pointer interaction is in progress.
	Idle Phase = iota
	// Dragging means a pointer went down inside the annulus and has not
	// lifted yet.
	Dragging
	// SnapAnimating means a selection committed and the highlight is
	// settling onto the chosen marker. The host drives the animation and
	// calls SettleDone when it comes to rest.
	SnapAnimating
)

// Config carries the wheel's tunable constants. Radius and HalfWidth are in
// the host's coordinate units; TapThreshold is the largest pointer-down to
// pointer-up displacement still read as a tap rather than a drag.
type Config struct {
	Radius        float64
	HalfWidth     float64
	TapThreshold  float64
	FrameInterval time.Duration
}

// DefaultConfig returns the tunables used when the host does not override
// them.
func DefaultConfig() Config {
	return Config{
		Radius:        120,
		HalfWidth:     40,
		TapThreshold:  12,
		FrameInterval: DefaultFrameInterval,
	}
}

// State owns the wheel's selection state: the day sequence, the cached
// layout, per-day entry flags, the highlighted index, and the interaction
// phase. The highlighted date is always days[highlighted]; it is derived,
// never stored, so the two cannot disagree.
//
// State is single-threaded by contract. Every method must be called from
// the host's UI loop; the Scheduler's ticker goroutine never touches State
// directly.
type State struct {
	cfg    Config
	days   []time.Time
	flags  []bool
	layout *Layout
	center Point
	sched  *Scheduler

	phase       Phase
	highlighted int

	downAt Point
	moved  float64

	pointerAngle    float64
	hasPointerAngle bool

	onSelect func(time.Time)
}

// NewState creates a wheel with no days. The host supplies days with
// SetDays once it knows the visible month.
func NewState(cfg Config) *State {
	return &State{
		cfg:    cfg,
		layout: NewLayout(0, cfg),
	}
}

// OnSelect registers the host callback invoked once per discrete selection:
// a tap, a drag release, or a today-jump. It is the only side channel
// through which selection changes are observable.
func (s *State) OnSelect(fn func(time.Time)) { s.onSelect = fn }

// AttachScheduler wires the frame scheduler that pointer moves stage their
// raw angle into. Optional; without one, moves still update the highlight
// synchronously.
func (s *State) AttachScheduler(sched *Scheduler) { s.sched = sched }

// SetDays replaces the day sequence and its per-day entry flags, and
// rebuilds the layout cache atomically with them. flags may be nil; a
// non-nil flags of the wrong length is a programming error, since the
// geometry cache must always describe the sequence it was built from.
func (s *State) SetDays(days []time.Time, flags []bool) {
	if flags != nil && len(flags) != len(days) {
		panic("wheel: flags length must match days length")
	}
	s.days = days
	s.flags = flags
	s.layout = NewLayout(len(days), s.cfg)
	s.phase = Idle
	s.moved = 0
	s.hasPointerAngle = false
	if s.highlighted >= len(days) {
		s.highlighted = 0
	}
}

// SetCenter moves the ring center, typically on host resize.
func (s *State) SetCenter(c Point) { s.center = c }

// Center returns the current ring center.
func (s *State) Center() Point { return s.center }

// Layout returns the current layout cache.
func (s *State) Layout() *Layout { return s.layout }

// Days returns the current day sequence.
func (s *State) Days() []time.Time { return s.days }

// Highlighted returns the highlighted index. Meaningless when the day
// sequence is empty; check CenterDate.
func (s *State) Highlighted() int { return s.highlighted }

// CenterDate returns the date under the highlight, or false when the day
// sequence is empty.
func (s *State) CenterDate() (time.Time, bool) {
	if len(s.days) == 0 {
		return time.Time{}, false
	}
	return s.days[s.highlighted], true
}

// Flag reports whether day i has any entries.
func (s *State) Flag(i int) bool {
	if s.flags == nil || i < 0 || i >= len(s.flags) {
		return false
	}
	return s.flags[i]
}

// Phase returns the current interaction phase.
func (s *State) Phase() Phase { return s.phase }

// IsDragging reports whether a drag is in progress.
func (s *State) IsDragging() bool { return s.phase == Dragging }

// PointerAngle returns the most recent frame-applied pointer angle, for
// hosts that draw a tracking cursor between marker centers.
func (s *State) PointerAngle() (float64, bool) {
	return s.pointerAngle, s.hasPointerAngle
}

// PointerDown begins a drag if p falls inside the annulus. Outside it the
// wheel stays inert and the event passes through.
func (s *State) PointerDown(p Point) bool {
	if len(s.days) == 0 {
		return false
	}
	if _, ok := s.layout.IndexAt(p, s.center, Continuous); !ok {
		return false
	}
	s.phase = Dragging
	s.downAt = p
	s.moved = 0
	return true
}

// PointerMove tracks an active drag. The highlight moves synchronously and
// without animation, so it never lags the pointer; the raw pointer angle is
// also staged on the scheduler for once-per-frame consumers.
func (s *State) PointerMove(p Point) {
	if s.phase != Dragging {
		return
	}
	if d := p.Dist(s.downAt); d > s.moved {
		s.moved = d
	}
	idx, ok := s.layout.IndexAt(p, s.center, Continuous)
	if ok && idx != s.highlighted {
		s.highlighted = idx
	}
	if s.sched != nil {
		s.sched.Stage(rawAngle(p, s.center))
	}
}

// PointerUp ends a drag. Displacement below the tap threshold means the
// gesture was a tap: intermediate movement is ignored and the day under the
// up-location wins. Anything larger snaps to the nearest marker in exact
// mode. Both gestures resolve to the exact-mode lookup at the up-location,
// so they share a commit; the threshold exists for hosts that report the
// gesture kind. Either way the selection callback fires and the highlight
// settles through SnapAnimating.
//
// A release with no drag in progress is inert: if the matching down landed
// outside the annulus the whole gesture passes through the wheel untouched.
func (s *State) PointerUp(p Point) (tapped bool) {
	if s.phase != Dragging {
		return false
	}
	s.phase = Idle
	tapped = s.moved < s.cfg.TapThreshold

	idx, ok := s.layout.IndexAt(p, s.center, Exact)
	if !ok {
		// Lifted outside the annulus; keep whatever the drag highlighted
		// but commit nothing.
		return tapped
	}
	s.commit(idx)
	return tapped
}

// Tap selects the day under p directly from Idle, without entering a drag.
func (s *State) Tap(p Point) {
	if len(s.days) == 0 {
		return
	}
	idx, ok := s.layout.IndexAt(p, s.center, Exact)
	if !ok {
		return
	}
	s.commit(idx)
}

// JumpToToday snaps the highlight to today's marker. When today is not in
// the current day sequence the wheel is left untouched and false is
// returned.
func (s *State) JumpToToday(now time.Time) bool {
	idx, ok := s.indexOfDay(now)
	if !ok {
		return false
	}
	s.commit(idx)
	return true
}

// Recenter aligns the highlight with an externally selected date, silently:
// no callback, no snap. Ignored mid-drag so an external write cannot fight
// the user's finger.
func (s *State) Recenter(date time.Time) bool {
	if s.phase == Dragging {
		return false
	}
	idx, ok := s.indexOfDay(date)
	if !ok {
		return false
	}
	s.highlighted = idx
	return true
}

// SettleDone is called by the host when the snap animation comes to rest.
func (s *State) SettleDone() {
	if s.phase == SnapAnimating {
		s.phase = Idle
	}
}

// ApplyPointerAngle is the frame-coalesced apply: the host calls it when
// the scheduler's emit reaches the UI loop, at most once per frame.
func (s *State) ApplyPointerAngle(angle float64) {
	s.pointerAngle = angle
	s.hasPointerAngle = true
}

// commit sets the highlight, enters the snap phase, and notifies the host.
func (s *State) commit(idx int) {
	s.highlighted = idx
	s.phase = SnapAnimating
	if s.onSelect != nil {
		s.onSelect(s.days[idx])
	}
}

func (s *State) indexOfDay(date time.Time) (int, bool) {
	for i, d := range s.days {
		if sameDay(d, date) {
			return i, true
		}
	}
	return 0, false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// rawAngle is the pointer's angle around c, normalized into [0, 2pi); the
// value staged for frame consumers.
func rawAngle(p, c Point) float64 {
	a := math.Atan2(p.Y-c.Y, p.X-c.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
