package anim

// Curve maps linear progress in [0, 1] to eased progress in [0, 1].
// Curves must return 0 for 0 and 1 for 1.
type Curve func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return clamp01(t) }

// EaseIn starts slowly and accelerates.
func EaseIn(t float64) float64 {
	t = clamp01(t)
	return t * t * t
}

// EaseOut starts quickly and decelerates.
func EaseOut(t float64) float64 {
	t = 1 - clamp01(t)
	return 1 - t*t*t
}

// EaseInOut accelerates through the first half and decelerates through
// the second.
func EaseInOut(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
