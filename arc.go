package clockface

// Arc is a clockwise angular range [Start, End] with
// 0 <= Start <= End <= FullTurn.
type Arc struct {
	Start, End Angle
}

// Span returns the angular length of the arc.
func (a Arc) Span() Angle {
	return a.End - a.Start
}

// Empty reports whether the arc covers nothing.
func (a Arc) Empty() bool {
	return a.End <= a.Start
}

// GapArcs returns the two arcs that cover the circle except for a band of
// tol on each side of theta. The arcs are split at the 12 o'clock seam
// and together span exactly FullTurn-2*tol. When the band straddles the
// seam, the second arc is empty. tol is clamped to [0, FullTurn/2].
func GapArcs(theta, tol Angle) [2]Arc {
	tol = min(max(tol, 0), FullTurn/2)
	if tol == FullTurn/2 {
		return [2]Arc{}
	}
	theta = NormalizeAngle(theta)
	start := theta + tol // first covered angle after the gap
	end := theta - tol   // last covered angle before the gap

	switch {
	case end < 0:
		// Gap crosses the seam from the left.
		return [2]Arc{{Start: start, End: end + FullTurn}}
	case start > FullTurn:
		// Gap crosses the seam from the right.
		return [2]Arc{{Start: start - FullTurn, End: end}}
	default:
		return [2]Arc{
			{Start: start, End: FullTurn},
			{Start: 0, End: end},
		}
	}
}
