package clockface

import "math"

// Angle is a rotation measured clockwise from the 12 o'clock position,
// in tenths of a degree.
type Angle int32

// FullTurn is one complete rotation.
const FullTurn Angle = 3600

const (
	hourStep   = FullTurn / 12
	minuteStep = FullTurn / 60
)

// HourAngle returns the angle of a 12-hour clock position.
// hour12 must already be reduced to 0..11.
func HourAngle(hour12 int) Angle {
	return Angle(hour12) * hourStep
}

// MinuteAngle returns the angle of the minute hand for minute 0..59.
func MinuteAngle(minute int) Angle {
	return Angle(minute) * minuteStep
}

// HourTargetAngle is HourAngle for animation targets: 12 o'clock maps to
// FullTurn instead of 0 so that a sweep from the 11 o'clock position keeps
// moving clockwise.
func HourTargetAngle(hour12 int) Angle {
	if hour12 == 0 {
		return FullTurn
	}
	return HourAngle(hour12)
}

// NormalizeAngle reduces a into [0, FullTurn).
func NormalizeAngle(a Angle) Angle {
	a %= FullTurn
	if a < 0 {
		a += FullTurn
	}
	return a
}

// DegreesToAngle converts whole degrees to an Angle.
func DegreesToAngle(deg int) Angle {
	return Angle(deg) * (FullTurn / 360)
}

// Radians returns a in the gg convention: 0 at 3 o'clock, increasing
// clockwise on a y-down surface.
func (a Angle) Radians() float64 {
	return float64(a)/float64(FullTurn)*2*math.Pi - math.Pi/2
}
