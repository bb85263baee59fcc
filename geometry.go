package clockface

import (
	"image"

	"github.com/gogpu/gg"
)

// Point is an integer pixel position on the display.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a width and height in pixels.
type Size struct {
	W, H int
}

// Rect is an origin plus a size. A Rect with a zero or negative
// dimension is empty; drawing into it is a no-op.
type Rect struct {
	Origin Point
	Size   Size
}

// R is a convenience function to create a Rect.
func R(x, y, w, h int) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{W: w, H: h}}
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.Size.W <= 0 || r.Size.H <= 0
}

// Center returns the center of r, truncated toward the origin.
func (r Rect) Center() Point {
	return Point{X: r.Origin.X + r.Size.W/2, Y: r.Origin.Y + r.Size.H/2}
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.Origin.X, r.Origin.Y, r.Origin.X+r.Size.W, r.Origin.Y+r.Size.H)
}

// ScaleMode selects how PointFromPolar fits its curve into a Rect.
type ScaleMode int

const (
	// ScaleFitCircle uses a circle whose diameter is the smaller of the
	// rect's width and height, centered in the rect.
	ScaleFitCircle ScaleMode = iota
	// ScaleFill uses the ellipse inscribed in the full rect.
	ScaleFill
)

// polarFrame holds a curve center and radii in doubled pixel units, so
// that pixel-centered geometry stays integral.
type polarFrame struct {
	cx2, cy2 int64
	rx2, ry2 int64
}

func newPolarFrame(r Rect, mode ScaleMode) polarFrame {
	w, h := int64(r.Size.W), int64(r.Size.H)
	dw, dh := w, h
	if mode == ScaleFitCircle {
		d := min(w, h)
		dw, dh = d, d
	}
	return polarFrame{
		cx2: 2*int64(r.Origin.X) + w - 1,
		cy2: 2*int64(r.Origin.Y) + h - 1,
		rx2: max(dw-1, 0),
		ry2: max(dh-1, 0),
	}
}

// PointFromPolar returns the point at angle a on the curve inscribed in r.
// Angles run clockwise from 12 o'clock.
func PointFromPolar(r Rect, a Angle, mode ScaleMode) Point {
	f := newPolarFrame(r, mode)
	const d = 2 * TrigMaxRatio
	x := divRound(f.cx2*TrigMaxRatio+f.rx2*int64(Sin(a)), d)
	y := divRound(f.cy2*TrigMaxRatio-f.ry2*int64(Cos(a)), d)
	return Point{X: int(x), Y: int(y)}
}

// RectCenteredAt returns a rect of size s centered on p.
func RectCenteredAt(p Point, s Size) Rect {
	return Rect{
		Origin: Point{X: p.X - s.W/2, Y: p.Y - s.H/2},
		Size:   s,
	}
}

// RectCenteredFromPolar returns a rect of size s centered on the
// fit-circle polar point of r at angle a.
func RectCenteredFromPolar(r Rect, a Angle, s Size) Rect {
	return RectCenteredAt(PointFromPolar(r, a, ScaleFitCircle), s)
}

// InsetRect shrinks r by margin on every side. The result may be empty.
func InsetRect(r Rect, margin int) Rect {
	w := max(r.Size.W-2*margin, 0)
	h := max(r.Size.H-2*margin, 0)
	return Rect{
		Origin: Point{X: r.Origin.X + margin, Y: r.Origin.Y + margin},
		Size:   Size{W: w, H: h},
	}
}

// circle is the fit circle of a rect in sub-pixel coordinates, used to
// build paths for the gg canvas.
type circle struct {
	center gg.Point
	radius float64
}

func fitCircle(r Rect) circle {
	f := newPolarFrame(r, ScaleFitCircle)
	return circle{
		center: gg.Pt(float64(f.cx2)/2, float64(f.cy2)/2),
		radius: float64(f.rx2) / 2,
	}
}

// at returns the point at angle a and distance radius from the center,
// using the fixed-point trig tables.
func (c circle) at(radius float64, a Angle) gg.Point {
	s := float64(Sin(a)) / TrigMaxRatio
	k := float64(Cos(a)) / TrigMaxRatio
	return gg.Pt(c.center.X+radius*s, c.center.Y-radius*k)
}
