package clockface

import (
	"image"
	"testing"
)

func TestPointFromPolarFitCircle(t *testing.T) {
	r := R(0, 0, 101, 101)
	tests := []struct {
		name string
		a    Angle
		want Point
	}{
		{"12 o'clock", 0, Pt(50, 0)},
		{"3 o'clock", FullTurn / 4, Pt(100, 50)},
		{"6 o'clock", FullTurn / 2, Pt(50, 100)},
		{"9 o'clock", 3 * FullTurn / 4, Pt(0, 50)},
		{"full turn", FullTurn, Pt(50, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointFromPolar(r, tt.a, ScaleFitCircle); got != tt.want {
				t.Errorf("PointFromPolar(%v, %d) = %v, want %v", r, tt.a, got, tt.want)
			}
		})
	}
}

func TestPointFromPolarNonSquare(t *testing.T) {
	r := R(10, 20, 101, 201)

	// Fit circle keeps the smaller dimension as diameter.
	if got, want := PointFromPolar(r, 0, ScaleFitCircle), Pt(60, 70); got != want {
		t.Errorf("fit circle top = %v, want %v", got, want)
	}
	if got, want := PointFromPolar(r, FullTurn/4, ScaleFitCircle), Pt(110, 120); got != want {
		t.Errorf("fit circle right = %v, want %v", got, want)
	}

	// Fill reaches the rect edges on both axes.
	if got, want := PointFromPolar(r, 0, ScaleFill), Pt(60, 20); got != want {
		t.Errorf("fill top = %v, want %v", got, want)
	}
	if got, want := PointFromPolar(r, FullTurn/2, ScaleFill), Pt(60, 220); got != want {
		t.Errorf("fill bottom = %v, want %v", got, want)
	}
}

func TestPointFromPolarStaysInRect(t *testing.T) {
	r := R(2, 14, 140, 140)
	bounds := r.Image()
	for a := Angle(0); a < FullTurn; a += 13 {
		p := PointFromPolar(r, a, ScaleFitCircle)
		if !image.Pt(p.X, p.Y).In(bounds) {
			t.Fatalf("PointFromPolar(%v, %d) = %v, outside %v", r, a, p, bounds)
		}
	}
}

func TestRectCenteredAt(t *testing.T) {
	tests := []struct {
		p    Point
		s    Size
		want Rect
	}{
		{Pt(50, 50), Size{W: 10, H: 20}, R(45, 40, 10, 20)},
		{Pt(50, 50), Size{W: 11, H: 11}, R(45, 45, 11, 11)},
		{Pt(0, 0), Size{W: 4, H: 4}, R(-2, -2, 4, 4)},
	}
	for _, tt := range tests {
		if got := RectCenteredAt(tt.p, tt.s); got != tt.want {
			t.Errorf("RectCenteredAt(%v, %v) = %v, want %v", tt.p, tt.s, got, tt.want)
		}
	}
}

func TestRectCenteredFromPolar(t *testing.T) {
	r := R(0, 0, 101, 101)
	got := RectCenteredFromPolar(r, FullTurn/4, Size{W: 10, H: 10})
	if want := R(95, 45, 10, 10); got != want {
		t.Errorf("RectCenteredFromPolar = %v, want %v", got, want)
	}
}

func TestInsetRect(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		margin int
		want   Rect
		empty  bool
	}{
		{"normal", R(0, 0, 144, 168), 4, R(4, 4, 136, 160), false},
		{"zero", R(1, 2, 3, 4), 0, R(1, 2, 3, 4), false},
		{"exact", R(0, 0, 10, 10), 5, R(5, 5, 0, 0), true},
		{"oversized", R(0, 0, 10, 30), 8, R(8, 8, 0, 14), true},
		{"negative margin grows", R(5, 5, 10, 10), -1, R(4, 4, 12, 12), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InsetRect(tt.r, tt.margin)
			if got != tt.want {
				t.Errorf("InsetRect(%v, %d) = %v, want %v", tt.r, tt.margin, got, tt.want)
			}
			if got.Empty() != tt.empty {
				t.Errorf("InsetRect(%v, %d).Empty() = %v, want %v", tt.r, tt.margin, got.Empty(), tt.empty)
			}
		})
	}
}

func TestRectCenterAndImage(t *testing.T) {
	r := R(10, 20, 30, 40)
	if got, want := r.Center(), Pt(25, 40); got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}
	if got, want := r.Image(), image.Rect(10, 20, 40, 60); got != want {
		t.Errorf("Image() = %v, want %v", got, want)
	}
}

func TestFitCircleAt(t *testing.T) {
	c := fitCircle(R(0, 0, 101, 101))
	if c.center.X != 50 || c.center.Y != 50 || c.radius != 50 {
		t.Fatalf("fitCircle = %+v, want center (50,50) radius 50", c)
	}
	p := c.at(10, FullTurn/4)
	if p.X != 60 || p.Y != 50 {
		t.Errorf("at(10, quarter) = %v, want (60, 50)", p)
	}
}
