package wheel

import (
	"math"
	"testing"
)

func testConfig() Config {
	return Config{
		Radius:        120,
		HalfWidth:     40,
		TapThreshold:  12,
		FrameInterval: DefaultFrameInterval,
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	center := Point{X: 300, Y: 300}
	for _, n := range []int{1, 7, 28, 30, 31} {
		l := NewLayout(n, testConfig())
		for i := 0; i < n; i++ {
			off := l.Offset(i)
			p := Point{X: center.X + off.X, Y: center.Y + off.Y}
			got, ok := l.IndexAt(p, center, Exact)
			if !ok {
				t.Fatalf("n=%d i=%d: marker offset missed the annulus", n, i)
			}
			if got != i {
				t.Fatalf("n=%d i=%d: inverse returned %d", n, i, got)
			}
		}
	}
}

func TestLayoutIndexZeroAtTop(t *testing.T) {
	l := NewLayout(30, testConfig())
	if a := l.AngleOf(0); math.Abs(a-(-math.Pi/2)) > 1e-12 {
		t.Fatalf("expected index 0 at -pi/2, got %v", a)
	}
	// A quarter of the way around lands at 3 o'clock.
	if a := l.Step()*7.5 - math.Pi/2; math.Abs(a) > 1e-12 {
		t.Fatalf("expected n/4 at angle 0, got %v", a)
	}

	off := l.Offset(0)
	if math.Abs(off.X) > 1e-9 || math.Abs(off.Y-(-l.Radius())) > 1e-9 {
		t.Fatalf("expected top offset (0, -r), got (%v, %v)", off.X, off.Y)
	}
}

func TestLayoutClockwise(t *testing.T) {
	l := NewLayout(12, testConfig())
	// With y growing downward, clockwise from the top means marker 3 sits
	// at 3 o'clock: positive x, zero y.
	off := l.Offset(3)
	if off.X <= 0 || math.Abs(off.Y) > 1e-9 {
		t.Fatalf("expected marker 3 at 3 o'clock, got (%v, %v)", off.X, off.Y)
	}
	off = l.Offset(6)
	if math.Abs(off.X) > 1e-9 || off.Y <= 0 {
		t.Fatalf("expected marker 6 at 6 o'clock, got (%v, %v)", off.X, off.Y)
	}
}

func TestLayoutEmpty(t *testing.T) {
	l := NewLayout(0, testConfig())
	if l.Len() != 0 {
		t.Fatalf("expected empty layout")
	}
	if _, ok := l.IndexAt(Point{X: 120, Y: 0}, Point{}, Exact); ok {
		t.Fatalf("empty layout must never report a hit")
	}
}

func TestLayoutStepMatchesCircumference(t *testing.T) {
	for _, n := range []int{1, 7, 30} {
		l := NewLayout(n, testConfig())
		if got := l.Step() * float64(n); math.Abs(got-2*math.Pi) > 1e-9 {
			t.Fatalf("n=%d: steps do not close the circle, sum %v", n, got)
		}
	}
}
