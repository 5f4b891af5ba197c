package splash

import "oddstream.games/digest/util"

// Easing curves map linear progress t in [0, 1] to eased progress.
// Curves may leave [0, 1] in between but always satisfy f(0)=0 and f(1)=1.

// OvershootTension is the tension used by the merging and singularity phases.
const OvershootTension = 6.0

// Overshoot returns a curve that flings past 1 before settling back on it.
// Larger tension means a larger excursion.
func Overshoot(tension float64) func(float64) float64 {
	return func(t float64) float64 {
		t -= 1
		return t*t*((tension+1)*t+tension) + 1
	}
}

// Decelerate starts fast and slows towards the end.
func Decelerate(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// reversed plays curve back to front over the value range from..to, so
// reversed(c, 0, x)(0) == x and reversed(c, 0, x)(1) == 0.
func reversed(curve func(float64) float64, from, to float64) func(float64) float64 {
	return func(t float64) float64 {
		return util.Lerp(from, to, curve(1-t))
	}
}

// forward plays curve over the value range from..to.
func forward(curve func(float64) float64, from, to float64) func(float64) float64 {
	return func(t float64) float64 {
		return util.Lerp(from, to, curve(t))
	}
}
