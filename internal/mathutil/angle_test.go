package mathutil

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{-7 * math.Pi / 2, math.Pi / 2},
	}
	for _, c := range cases {
		if got := NormalizeAngle(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("NormalizeAngle(%g) = %g, want %g", c.in, got, c.want)
		}
	}
}

func TestAngleInSpan(t *testing.T) {
	cases := []struct {
		a, a0, a1 float64
		want      bool
	}{
		{1, 0.5, 2, true},
		{0.5, 0.5, 2, true},  // start inclusive
		{2, 0.5, 2, false},   // end exclusive
		{3, 0.5, 2, false},
		{6.0, 5.5, 1, true},  // wrapped span, before zero
		{0.5, 5.5, 1, true},  // wrapped span, after zero
		{3, 5.5, 1, false},   // wrapped span, outside
		{-0.2, 5.5, 1, true}, // negative input normalized
	}
	for _, c := range cases {
		if got := AngleInSpan(c.a, c.a0, c.a1); got != c.want {
			t.Errorf("AngleInSpan(%g, %g, %g) = %v, want %v", c.a, c.a0, c.a1, got, c.want)
		}
	}
}

func TestAngleDistFrom(t *testing.T) {
	if d := AngleDistFrom(1, 0.5); math.Abs(d-0.5) > 1e-12 {
		t.Errorf("forward distance = %g, want 0.5", d)
	}
	if d := AngleDistFrom(0.5, 1); math.Abs(d-(2*math.Pi-0.5)) > 1e-12 {
		t.Errorf("wrapped distance = %g, want %g", d, 2*math.Pi-0.5)
	}
}
