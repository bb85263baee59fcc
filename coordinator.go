package clockface

import "github.com/gogpu/clockface/anim"

// Surface is the display the face is painted on.
type Surface interface {
	// Bounds returns the rectangle the face occupies.
	Bounds() Rect

	// MarkDirty requests a repaint. The host calls Coordinator.Paint
	// when it is ready to draw.
	MarkDirty()
}

// FaceState is everything a repaint needs. It is owned by a Coordinator
// and handed by pointer to the animator and renderer.
type FaceState struct {
	Hand    HandAnimation
	Minute  Angle
	Palette Palette

	// Last is the most recent sample; valid when HasSample is set.
	Last      Sample
	HasSample bool
}

// Coordinator turns tick and settings notifications into state updates
// and repaint requests.
//
// Coordinator is NOT safe for concurrent use. Notifications, scheduler
// callbacks and Paint must all run on the same goroutine.
type Coordinator struct {
	surface  Surface
	renderer *Renderer
	hand     *HandAnimator
	state    FaceState
}

// NewCoordinator creates a coordinator painting onto surface and
// animating through sched.
func NewCoordinator(surface Surface, sched anim.Scheduler, opts ...Option) (*Coordinator, error) {
	if surface == nil {
		return nil, ErrNilSurface
	}
	if sched == nil {
		return nil, ErrNilScheduler
	}
	o := buildOptions(opts)
	c := &Coordinator{
		surface:  surface,
		renderer: newRenderer(o),
	}
	c.state.Palette = o.palette
	c.hand = NewHandAnimator(&c.state.Hand, sched, o.duration, o.curve, surface.MarkDirty)
	return c, nil
}

// HandleTick applies a tick notification. The first sample places both
// hands without animation. After that a minute change moves the minute
// hand and an hour change starts the indicator sweep. The surface is
// marked dirty at most once per call.
func (c *Coordinator) HandleTick(s Sample, changed TimeUnits) {
	st := &c.state
	if !st.HasSample {
		st.Last, st.HasSample = s, true
		st.Minute = MinuteAngle(s.Minute)
		c.hand.Commit(HourAngle(s.Hour12()))
		Logger().Debug("clockface: first sample", "hour", s.Hour, "minute", s.Minute)
		c.surface.MarkDirty()
		return
	}
	st.Last = s

	dirty := false
	if changed.Has(MinuteUnit) {
		st.Minute = MinuteAngle(s.Minute)
		dirty = true
	}
	if changed.Has(HourUnit) {
		c.hand.Retarget(s.Hour12())
		dirty = true
	}
	if dirty {
		c.surface.MarkDirty()
	}
}

// HandleSettings replaces the palette and requests a repaint when it
// changed.
func (c *Coordinator) HandleSettings(p Palette) {
	if p == c.state.Palette {
		return
	}
	c.state.Palette = p
	c.surface.MarkDirty()
}

// Paint draws the current state onto cv over the surface bounds.
func (c *Coordinator) Paint(cv Canvas) error {
	return c.renderer.Paint(cv, c.surface.Bounds(), &c.state)
}

// State returns a snapshot of the face state.
func (c *Coordinator) State() FaceState {
	return c.state
}

// Animating reports whether the hour indicator is sweeping.
func (c *Coordinator) Animating() bool {
	return c.hand.State() == HandAnimating
}

// Renderer returns the renderer used by Paint.
func (c *Coordinator) Renderer() *Renderer {
	return c.renderer
}
