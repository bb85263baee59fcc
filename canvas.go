package clockface

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Canvas is the drawing context the face is painted on. *gg.Context
// satisfies it; hosts may supply any other implementation with the same
// path semantics (Fill and Stroke consume the current path).
type Canvas interface {
	SetColor(c color.Color)
	SetLineWidth(width float64)
	SetLineCap(lineCap gg.LineCap)
	SetFont(face text.Face)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	DrawCircle(x, y, r float64)
	DrawStringAnchored(s string, x, y, ax, ay float64)
	Fill() error
	Stroke() error
}

var _ Canvas = (*gg.Context)(nil)
