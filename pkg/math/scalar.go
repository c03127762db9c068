package math

import (
	gomath "math"

	"github.com/chewxy/math32"
)

const radiansPerDegree = float32(gomath.Pi / 180)

// Radians converts degrees to radians.
func Radians(degrees float32) float32 {
	return degrees * radiansPerDegree
}

// Degrees converts radians to degrees.
func Degrees(radians float32) float32 {
	return radians / radiansPerDegree
}

// Clamp limits value to [lo, hi].
func Clamp(value, lo, hi float32) float32 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
