package util

import "github.com/chewxy/math32"

// Clamp restricts a value to be between min and max
func Clamp(value, min, max float32) float32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Mix blends a and b as a*(1-t) + b*t. The result is exactly a at t=0 and
// exactly b at t=1.
func Mix(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// InverseLerp returns where value sits between a and b, clamped to [0,1].
// A zero-width range maps everything to 0.
func InverseLerp(a, b, value float32) float32 {
	span := b - a
	if span == 0 || math32.IsNaN(span) {
		return 0
	}
	return Clamp((value-a)/span, 0, 1)
}

// Radians converts degrees to radians
func Radians(degrees float32) float32 {
	return degrees * math32.Pi / 180
}
