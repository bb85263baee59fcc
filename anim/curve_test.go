package anim

import (
	"math"
	"testing"
)

func TestCurveEndpoints(t *testing.T) {
	curves := map[string]Curve{
		"Linear":    Linear,
		"EaseIn":    EaseIn,
		"EaseOut":   EaseOut,
		"EaseInOut": EaseInOut,
	}
	for name, c := range curves {
		t.Run(name, func(t *testing.T) {
			if got := c(0); got != 0 {
				t.Errorf("%s(0) = %v, want 0", name, got)
			}
			if got := c(1); got != 1 {
				t.Errorf("%s(1) = %v, want 1", name, got)
			}
			if got := c(-1); got != 0 {
				t.Errorf("%s(-1) = %v, want 0", name, got)
			}
			if got := c(2); got != 1 {
				t.Errorf("%s(2) = %v, want 1", name, got)
			}
			prev := 0.0
			for i := 1; i <= 100; i++ {
				v := c(float64(i) / 100)
				if v < prev {
					t.Fatalf("%s not monotonic at %d: %v < %v", name, i, v, prev)
				}
				prev = v
			}
		})
	}
}

func TestEaseInOutMidpoint(t *testing.T) {
	if got := EaseInOut(0.5); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("EaseInOut(0.5) = %v, want 0.5", got)
	}
}
