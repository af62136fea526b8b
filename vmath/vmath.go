package vmath

import "math"

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// Epsilon is the tolerance used by NearlyEqual.
const Epsilon = 1e-6

// Lerp interpolates between a and b. It returns exactly a at t == 0 and
// exactly b at t == 1.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NearlyEqual compares a and b with a tolerance relative to their magnitude.
func NearlyEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return diff <= Epsilon*scale
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
