package mathutil

import "math"

// NormalizeAngle maps an angle to [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// AngleInSpan reports whether angle a lies in the half-open span [a0, a1),
// all in [0, 2π). A span with a0 > a1 wraps through zero.
func AngleInSpan(a, a0, a1 float64) bool {
	a = NormalizeAngle(a)
	a0 = NormalizeAngle(a0)
	a1 = NormalizeAngle(a1)
	if a0 <= a1 {
		return a >= a0 && a < a1
	}
	return a >= a0 || a < a1
}

// AngleDistFrom returns the counter-clockwise distance from a0 to a, in [0, 2π).
// Used to order rim samples within an edge span.
func AngleDistFrom(a, a0 float64) float64 {
	return NormalizeAngle(a - a0)
}

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
