package core

// EaseFunc maps normalized progress in [0,1] to an eased ratio in [0,1]
type EaseFunc func(t float64) float64

// EaseLinear passes progress through unchanged
func EaseLinear(t float64) float64 {
	return clamp01(t)
}

// EaseQuadInOut accelerates through the first half of the run and
// decelerates through the second: t < 0.5 yields 2t², otherwise 1-(-2t+2)²/2
func EaseQuadInOut(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
