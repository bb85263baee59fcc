package clockface

import "math"

// TrigMaxRatio is the fixed-point scale of Sin and Cos: a result of
// TrigMaxRatio represents 1.0.
const TrigMaxRatio = 1 << 16

// sinLUT holds one sine sample per Angle unit over a full turn.
var sinLUT [FullTurn]int32

func init() {
	for i := range sinLUT {
		rad := 2 * math.Pi * float64(i) / float64(FullTurn)
		sinLUT[i] = int32(math.Round(math.Sin(rad) * TrigMaxRatio))
	}
}

// Sin returns the sine of a scaled by TrigMaxRatio.
func Sin(a Angle) int32 {
	return sinLUT[NormalizeAngle(a)]
}

// Cos returns the cosine of a scaled by TrigMaxRatio.
func Cos(a Angle) int32 {
	return sinLUT[NormalizeAngle(a+FullTurn/4)]
}

// divRound divides n by d (d > 0), rounding half away from zero.
func divRound(n, d int64) int64 {
	if n < 0 {
		return -((-n + d/2) / d)
	}
	return (n + d/2) / d
}
