package wheel

import "math"

// Mode selects how the raw angular index produced by a pointer location is
// discretized.
type Mode int

const (
	// Continuous floors the raw index. During an active drag this keeps
	// the highlight stable: a day boundary is crossed exactly once as the
	// pointer passes through it instead of toggling near the midpoint.
	Continuous Mode = iota

	// Exact rounds to the nearest marker center. Used for taps and for
	// the snap at drag release.
	Exact
)

// IndexAt converts a pointer location into a marker index, or reports no
// hit when the pointer falls outside the annular band [r-w, r+w] around the
// ring. p is the pointer location and c the ring center, both in the
// layout's coordinate space.
//
// The math here is the inverse of angleOf, step by step: recover the
// pointer angle with atan2, move the top quarter back into the frame the
// forward formula uses, divide out the angle step, then discretize.
func (l *Layout) IndexAt(p, c Point, mode Mode) (int, bool) {
	if l.n == 0 {
		return 0, false
	}

	d := p.Dist(c)
	if d < l.radius-l.halfWidth || d > l.radius+l.halfWidth {
		return 0, false
	}

	// Pointer angle normalized into [0, 2pi).
	phi := math.Atan2(p.Y-c.Y, p.X-c.X)
	if phi < 0 {
		phi += 2 * math.Pi
	}

	// angleOf places index 0 at -pi/2, so angles in [3pi/2, 2pi) are the
	// top region and must come back to [-pi/2, 0) before inverting.
	psi := phi
	if psi >= 3*math.Pi/2 {
		psi -= 2 * math.Pi
	}

	raw := (psi + math.Pi/2) / l.step
	raw = math.Mod(raw, float64(l.n))
	if raw < 0 {
		raw += float64(l.n)
	}

	var idx int
	switch mode {
	case Exact:
		idx = int(math.Round(raw))
	default:
		idx = int(math.Floor(raw))
	}

	// Exact mode can round the seam just shy of the top up to n, which is
	// marker 0 again. Anything else out of range is floating point noise
	// at a boundary angle; clamp it.
	if idx >= l.n {
		idx -= l.n
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= l.n {
		idx = l.n - 1
	}
	return idx, true
}
