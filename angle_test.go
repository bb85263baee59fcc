package clockface

import (
	"math"
	"testing"
)

func TestHourAngle(t *testing.T) {
	prev := Angle(-1)
	for h := 0; h < 12; h++ {
		got := HourAngle(h)
		if want := Angle(h) * FullTurn / 12; got != want {
			t.Errorf("HourAngle(%d) = %d, want %d", h, got, want)
		}
		if got < prev {
			t.Errorf("HourAngle(%d) = %d is less than HourAngle(%d) = %d", h, got, h-1, prev)
		}
		prev = got
	}
}

func TestHourTargetAngle(t *testing.T) {
	tests := []struct {
		hour12 int
		want   Angle
	}{
		{0, FullTurn},
		{1, 300},
		{6, 1800},
		{11, 3300},
	}
	for _, tt := range tests {
		if got := HourTargetAngle(tt.hour12); got != tt.want {
			t.Errorf("HourTargetAngle(%d) = %d, want %d", tt.hour12, got, tt.want)
		}
	}
}

func TestMinuteAngle(t *testing.T) {
	if got := MinuteAngle(0); got != 0 {
		t.Errorf("MinuteAngle(0) = %d, want 0", got)
	}
	if got := MinuteAngle(30); got != FullTurn/2 {
		t.Errorf("MinuteAngle(30) = %d, want %d", got, FullTurn/2)
	}
	if got := MinuteAngle(59); got >= FullTurn {
		t.Errorf("MinuteAngle(59) = %d, want < %d", got, FullTurn)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want Angle
	}{
		{0, 0},
		{FullTurn, 0},
		{FullTurn + 5, 5},
		{-5, FullTurn - 5},
		{-FullTurn, 0},
		{2*FullTurn + 300, 300},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); got != tt.want {
			t.Errorf("NormalizeAngle(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDegreesToAngle(t *testing.T) {
	if got := DegreesToAngle(90); got != FullTurn/4 {
		t.Errorf("DegreesToAngle(90) = %d, want %d", got, FullTurn/4)
	}
}

func TestAngleRadians(t *testing.T) {
	tests := []struct {
		a    Angle
		want float64
	}{
		{0, -math.Pi / 2},
		{FullTurn / 4, 0},
		{FullTurn / 2, math.Pi / 2},
	}
	for _, tt := range tests {
		if got := tt.a.Radians(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Angle(%d).Radians() = %v, want %v", tt.a, got, tt.want)
		}
	}
}
