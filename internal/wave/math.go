package wave

import "math"

// Sample returns the vertical offset of the sine curve at x.
func Sample(x, phase, amplitude, frequency float64) float64 {
	return amplitude * math.Sin(frequency*(x+phase))
}

// DampingFactor is an inverted parabola over [0, end] that is zero at both
// ends and peaks at strength/2 in the middle.
func DampingFactor(end, x, strength float64) float64 {
	if end == 0 {
		return 0
	}
	t := x / end
	return 2 * (1 - t) * t * strength
}

// LinearMap maps num from [inMin, inMax] onto [outMin, outMax].
// A degenerate input range maps everything to outMin.
func LinearMap(num, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return (num-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

// RandInt returns an integer in [lo, hi), or lo for an empty range.
func RandInt(r IntNer, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo)
}

// IntNer is satisfied by *rand.Rand from math/rand/v2.
type IntNer interface {
	IntN(n int) int
}
