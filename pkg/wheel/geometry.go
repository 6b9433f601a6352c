// Package wheel implements the circular date selector: the layout of day
// markers around a ring, the pointer-to-index inverse, frame-coalesced drag
// updates, and the selection state machine that ties them together.
//
// The package is pure geometry and state. It never draws, and its
// coordinate space is unit-agnostic; the host decides whether a unit is a
// pixel or a terminal cell.
package wheel

import "math"

// Point is a 2D location or offset in the wheel's coordinate space.
// Y grows downward, matching screen conventions.
type Point struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Layout places n day markers evenly around a ring of fixed radius, index 0
// at twelve o'clock, indices increasing clockwise. Offsets are computed once
// per day-sequence generation; callers build a fresh Layout whenever the day
// sequence changes.
type Layout struct {
	n         int
	radius    float64
	halfWidth float64
	step      float64
	offsets   []Point
}

// NewLayout precomputes marker offsets for n days on the ring described by
// cfg. A layout for zero days is valid and hit-tests to nothing.
func NewLayout(n int, cfg Config) *Layout {
	l := &Layout{
		n:         n,
		radius:    cfg.Radius,
		halfWidth: cfg.HalfWidth,
	}
	if n <= 0 {
		l.n = 0
		return l
	}
	l.step = 2 * math.Pi / float64(n)
	l.offsets = make([]Point, n)
	for i := range l.offsets {
		a := l.angleOf(i)
		l.offsets[i] = Point{X: l.radius * math.Cos(a), Y: l.radius * math.Sin(a)}
	}
	return l
}

// angleOf is the forward placement formula: marker i sits at
// (i/n)*2pi - pi/2. IndexAt is written as its algebraic inverse; the two
// live in the same package so they cannot drift apart.
func (l *Layout) angleOf(i int) float64 {
	return float64(i)*l.step - math.Pi/2
}

// Len returns the number of markers on the ring.
func (l *Layout) Len() int { return l.n }

// Step returns the angular distance between adjacent markers.
func (l *Layout) Step() float64 { return l.step }

// Radius returns the fixed ring radius.
func (l *Layout) Radius() float64 { return l.radius }

// HalfWidth returns the half-width of the interactive annulus.
func (l *Layout) HalfWidth() float64 { return l.halfWidth }

// AngleOf returns the placement angle of marker i.
func (l *Layout) AngleOf(i int) float64 { return l.angleOf(i) }

// Offset returns the precomputed offset of marker i from the ring center.
func (l *Layout) Offset(i int) Point { return l.offsets[i] }
