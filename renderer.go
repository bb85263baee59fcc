package clockface

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Renderer paints the clock face onto a Canvas.
//
// A Renderer holds only configuration; all per-frame data comes from the
// FaceState passed to Paint. It is safe to reuse across frames.
type Renderer struct {
	layout Layout
	face   text.Face
	labels [12]string
}

// NewRenderer creates a renderer. Without WithFace the numerals are not
// drawn.
func NewRenderer(opts ...Option) *Renderer {
	return newRenderer(buildOptions(opts))
}

func newRenderer(o options) *Renderer {
	r := &Renderer{
		layout: o.layout,
		face:   o.face,
		labels: Numerals(o.locale),
	}
	if r.face != nil {
		for i, s := range r.labels {
			if !hasGlyphs(r.face, s) {
				r.labels[i] = asciiNumeral(i + 1)
			}
		}
	}
	return r
}

func hasGlyphs(face text.Face, s string) bool {
	for _, c := range s {
		if !face.HasGlyph(c) {
			return false
		}
	}
	return true
}

// Layout returns the layout the renderer draws with.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Labels returns the hour labels, index 0 holding the label for 1 o'clock.
func (r *Renderer) Labels() [12]string {
	return r.labels
}

// Paint draws the face for st into bounds:
//
//  1. background disc
//  2. hour numerals
//  3. indicator ring with a gap at the hour hand angle
//  4. minute hand, border first
//  5. hub
//
// An empty face rectangle draws nothing. Errors from the canvas are
// returned wrapped with the step that failed.
func (r *Renderer) Paint(cv Canvas, bounds Rect, st *FaceState) error {
	l := r.layout
	faceRect := InsetRect(bounds, l.Inset)
	if faceRect.Empty() {
		Logger().Debug("clockface: empty face rect", "bounds", bounds, "inset", l.Inset)
		return nil
	}
	c := fitCircle(faceRect)
	pal := st.Palette

	cv.SetColor(pal.Background.Color())
	cv.DrawCircle(c.center.X, c.center.Y, c.radius)
	if err := cv.Fill(); err != nil {
		return paintError("background", err)
	}

	r.paintNumerals(cv, faceRect, pal)

	if err := r.paintRing(cv, c, st.Hand.Current, pal); err != nil {
		return paintError("indicator", err)
	}
	if err := r.paintMinuteHand(cv, faceRect, c, st.Minute, pal); err != nil {
		return paintError("minute hand", err)
	}
	if err := r.paintHub(cv, c, pal); err != nil {
		return paintError("hub", err)
	}
	return nil
}

func paintError(step string, err error) error {
	return fmt.Errorf("clockface: paint %s: %w", step, err)
}

func (r *Renderer) paintNumerals(cv Canvas, faceRect Rect, pal Palette) {
	if r.face == nil {
		return
	}
	ring := InsetRect(faceRect, r.layout.NumeralInset)
	if ring.Empty() {
		return
	}
	cv.SetFont(r.face)
	cv.SetColor(pal.Foreground.Color())
	for i, s := range r.labels {
		box := RectCenteredFromPolar(ring, HourAngle((i+1)%12), r.layout.NumeralSize)
		x := float64(box.Origin.X) + float64(box.Size.W)/2
		y := float64(box.Origin.Y) + float64(box.Size.H)/2
		cv.DrawStringAnchored(s, x, y, 0.5, 0.5)
	}
}

// paintRing fills the indicator ring except for the gap around theta.
// The numeral under the gap stays visible; the others are covered.
func (r *Renderer) paintRing(cv Canvas, c circle, theta Angle, pal Palette) error {
	outer := c.radius
	inner := max(outer-float64(r.layout.RingWidth), 0)
	arcs := GapArcs(theta, r.layout.GapTolerance)

	drawn := false
	for _, a := range arcs {
		if a.Empty() {
			continue
		}
		ringWedge(cv, c, inner, outer, a, r.layout.ArcStep)
		drawn = true
	}
	if !drawn {
		return nil
	}
	cv.SetColor(pal.Indicator.Color())
	return cv.Fill()
}

// ringWedge adds the closed outline of the ring section a between the
// inner and outer radius: the outer edge clockwise, then the inner edge
// back.
func ringWedge(cv Canvas, c circle, inner, outer float64, a Arc, step Angle) {
	if step <= 0 {
		step = 1
	}
	p := c.at(outer, a.Start)
	cv.MoveTo(p.X, p.Y)
	for t := a.Start + step; t < a.End; t += step {
		p = c.at(outer, t)
		cv.LineTo(p.X, p.Y)
	}
	p = c.at(outer, a.End)
	cv.LineTo(p.X, p.Y)

	for t := a.End; t > a.Start; t -= step {
		p = c.at(inner, t)
		cv.LineTo(p.X, p.Y)
	}
	p = c.at(inner, a.Start)
	cv.LineTo(p.X, p.Y)
	cv.ClosePath()
}

func (r *Renderer) paintMinuteHand(cv Canvas, faceRect Rect, c circle, minute Angle, pal Palette) error {
	handRect := InsetRect(faceRect, r.layout.MinuteInset)
	if handRect.Empty() {
		return nil
	}
	tip := PointFromPolar(handRect, minute, ScaleFitCircle)

	cv.SetLineCap(gg.LineCapRound)
	strokes := []struct {
		width float64
		color gg.RGBA
	}{
		{r.layout.HandBorderWidth, pal.Border},
		{r.layout.HandWidth, pal.MinuteHand},
	}
	for _, s := range strokes {
		cv.SetLineWidth(s.width)
		cv.SetColor(s.color.Color())
		cv.MoveTo(c.center.X, c.center.Y)
		cv.LineTo(float64(tip.X), float64(tip.Y))
		if err := cv.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) paintHub(cv Canvas, c circle, pal Palette) error {
	cv.SetColor(pal.MinuteHand.Color())
	cv.DrawCircle(c.center.X, c.center.Y, r.layout.HubRadius)
	if err := cv.Fill(); err != nil {
		return err
	}
	cv.SetColor(pal.Foreground.Color())
	cv.DrawCircle(c.center.X, c.center.Y, r.layout.HubInnerRadius)
	return cv.Fill()
}
