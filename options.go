package clockface

import (
	"time"

	"github.com/gogpu/clockface/anim"
	"github.com/gogpu/gg/text"
	"golang.org/x/text/language"
)

// DefaultAnimationDuration is the length of the hour indicator sweep.
const DefaultAnimationDuration = 300 * time.Millisecond

// Option configures a Renderer or Coordinator during creation.
//
// Example:
//
//	r := clockface.NewRenderer(
//	    clockface.WithFace(source.Face(16)),
//	    clockface.WithLayout(clockface.DefaultLayout().Scaled(2)),
//	)
type Option func(*options)

// options holds optional configuration shared by Renderer and Coordinator.
type options struct {
	layout   Layout
	palette  Palette
	face     text.Face
	locale   language.Tag
	duration time.Duration
	curve    anim.Curve
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		layout:   DefaultLayout(),
		palette:  DefaultPalette(),
		face:     nil, // numerals are skipped without a face
		locale:   language.English,
		duration: DefaultAnimationDuration,
		curve:    anim.EaseInOut,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLayout sets the pixel metrics of the face.
func WithLayout(l Layout) Option {
	return func(o *options) {
		o.layout = l
	}
}

// WithPalette sets the palette used before the first settings notification.
func WithPalette(p Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithFace sets the font face for the hour numerals. Font loading belongs
// to the host; without a face the numerals are not drawn.
func WithFace(face text.Face) Option {
	return func(o *options) {
		o.face = face
	}
}

// WithNumeralLocale selects the locale whose digits label the hours.
func WithNumeralLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}

// WithAnimationDuration sets the length of the hour indicator sweep.
// Non-positive durations jump to the target on the next frame.
func WithAnimationDuration(d time.Duration) Option {
	return func(o *options) {
		o.duration = d
	}
}

// WithCurve sets the easing curve of the hour indicator sweep.
// A nil curve is ignored.
func WithCurve(c anim.Curve) Option {
	return func(o *options) {
		if c != nil {
			o.curve = c
		}
	}
}
