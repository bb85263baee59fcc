package clockface

// Layout holds the pixel metrics of the face. DefaultLayout is tuned for a
// 144x168 display; hosts with other resolutions scale it with Scaled.
type Layout struct {
	// Inset shrinks the surface bounds to the face rectangle.
	Inset int

	// RingWidth is the thickness of the hour indicator ring.
	RingWidth int

	// NumeralInset is the distance from the face edge to the numeral centers.
	NumeralInset int

	// NumeralSize is the box each hour numeral is centered in.
	NumeralSize Size

	// GapTolerance is the half-width of the gap cut into the ring.
	GapTolerance Angle

	// MinuteInset is the distance from the face edge to the minute hand tip.
	MinuteInset int

	HandWidth       float64
	HandBorderWidth float64
	HubRadius       float64
	HubInnerRadius  float64

	// ArcStep is the angular sampling step of ring wedge outlines.
	ArcStep Angle
}

// DefaultLayout returns the layout for the reference 144x168 display.
func DefaultLayout() Layout {
	return Layout{
		Inset:           2,
		RingWidth:       26,
		NumeralInset:    13,
		NumeralSize:     Size{W: 24, H: 20},
		GapTolerance:    DegreesToAngle(14),
		MinuteInset:     30,
		HandWidth:       3,
		HandBorderWidth: 7,
		HubRadius:       6,
		HubInnerRadius:  2,
		ArcStep:         DegreesToAngle(2),
	}
}

// Scaled returns l with its pixel metrics multiplied by k. Angles are
// unchanged.
func (l Layout) Scaled(k float64) Layout {
	scale := func(v int) int { return int(float64(v)*k + 0.5) }
	l.Inset = scale(l.Inset)
	l.RingWidth = scale(l.RingWidth)
	l.NumeralInset = scale(l.NumeralInset)
	l.NumeralSize = Size{W: scale(l.NumeralSize.W), H: scale(l.NumeralSize.H)}
	l.MinuteInset = scale(l.MinuteInset)
	l.HandWidth *= k
	l.HandBorderWidth *= k
	l.HubRadius *= k
	l.HubInnerRadius *= k
	return l
}
