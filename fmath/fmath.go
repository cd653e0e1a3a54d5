// fmath holds the small float64 helpers the quaternion package leans on: tolerance comparisons and
// degree / radian conversion. Everything here is a thin layer over the standard math package.
package fmath

import "math"

// Epsilon is the default tolerance used when comparing quaternions and vectors with Equals().
const Epsilon = 1e-9

// ToRadians is a helper function to easily convert degrees to radians (which is what the rotation-oriented functions in this module use).
func ToRadians(degrees float64) float64 {
	return math.Pi * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees(radians float64) float64 {
	return radians / math.Pi * 180
}

// ApproxEqual returns true if x and y are within tolerance of each other. Two NaNs are never equal.
func ApproxEqual(x, y, tolerance float64) bool {
	if x == y {
		return true
	}
	return math.Abs(x-y) <= tolerance
}

// Clamp clamps a value to the minimum and maximum values provided.
func Clamp[number float32 | float64 | int | int32 | int64](value, min, max number) number {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// IsFinite returns true if x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
