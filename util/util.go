package util

import (
	"math"
)

// Lerp see https://en.wikipedia.org/wiki/Linear_interpolation
// t is not clamped, so easing curves that overshoot carry through to the result.
func Lerp(v0, v1, t float64) float64 {
	return (1-t)*v0 + t*v1
}

// Clamp a value between min and max values
func Clamp(value, _min, _max float64) float64 {
	return math.Min(math.Max(value, _min), _max)
}

// Hypot finds the length of the hypotenuse of a right triangle with sides w and h.
func Hypot(w, h float64) float64 {
	return math.Sqrt(w*w + h*h)
}

// DistanceFloat64 finds the length of the hypotenuse between two points.
// Formula is the square root of (x2 - x1)^2 + (y2 - y1)^2
func DistanceFloat64(x1, y1, x2, y2 float64) float64 {
	return Hypot(x2-x1, y2-y1)
}
