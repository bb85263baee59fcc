package clockface

import (
	"math"
	"time"

	"github.com/gogpu/clockface/anim"
)

// HandState is the state of the hour indicator animation.
type HandState int

const (
	// HandIdle means the indicator rests at a settled angle.
	HandIdle HandState = iota
	// HandAnimating means a sweep toward a new hour is in flight.
	HandAnimating
)

// String returns the state name.
func (s HandState) String() string {
	switch s {
	case HandIdle:
		return "idle"
	case HandAnimating:
		return "animating"
	default:
		return "unknown"
	}
}

// HandAnimation is the hour indicator state. Current may exceed FullTurn
// while a sweep is running; it is reduced modulo FullTurn when the sweep
// finishes.
type HandAnimation struct {
	From    Angle
	To      Angle
	Current Angle
	Running bool
}

// HandAnimator drives a HandAnimation through an anim.Scheduler.
//
// Transitions:
//
//	Idle      --Retarget-->  Animating
//	Animating --Retarget-->  Animating  (interrupt, then start from Current)
//	Animating --finish---->  Idle       (Current reduced modulo FullTurn)
//	any       --Commit---->  Idle       (interrupt if running)
//
// HandAnimator is NOT safe for concurrent use.
type HandAnimator struct {
	state    *HandAnimation
	sched    anim.Scheduler
	duration time.Duration
	curve    anim.Curve
	repaint  func()

	handle anim.Handle
	gen    uint64
}

// NewHandAnimator creates an animator over state. repaint is called after
// every frame update and when a sweep finishes; it may be nil.
func NewHandAnimator(state *HandAnimation, sched anim.Scheduler, duration time.Duration, curve anim.Curve, repaint func()) *HandAnimator {
	if curve == nil {
		curve = anim.Linear
	}
	if repaint == nil {
		repaint = func() {}
	}
	return &HandAnimator{
		state:    state,
		sched:    sched,
		duration: duration,
		curve:    curve,
		repaint:  repaint,
	}
}

// State returns the current animation state.
func (h *HandAnimator) State() HandState {
	if h.state.Running {
		return HandAnimating
	}
	return HandIdle
}

// Commit settles the indicator at a without animating.
func (h *HandAnimator) Commit(a Angle) {
	h.cancel()
	a = NormalizeAngle(a)
	*h.state = HandAnimation{From: a, To: a, Current: a}
}

// Retarget starts a sweep toward the position of hour12. A sweep already
// in flight is interrupted and the new one starts from the last
// interpolated angle. The sweep always runs clockwise. Retarget reports
// false, and leaves the indicator idle, when it already rests on the
// target position.
func (h *HandAnimator) Retarget(hour12 int) bool {
	h.cancel()

	from := NormalizeAngle(h.state.Current)
	to := HourTargetAngle(hour12)
	for to < from {
		to += FullTurn
	}
	if NormalizeAngle(to) == from {
		*h.state = HandAnimation{From: from, To: from, Current: from}
		return false
	}

	*h.state = HandAnimation{From: from, To: to, Current: from, Running: true}
	h.gen++
	gen := h.gen
	Logger().Debug("clockface: hour sweep start", "from", from, "to", to, "duration", h.duration)

	h.handle = h.sched.Schedule(h.duration,
		func(p float64) {
			if gen == h.gen {
				h.update(p)
			}
		},
		func(finished bool) {
			if gen != h.gen {
				return
			}
			if finished {
				h.finish()
			} else {
				h.interrupt()
			}
		})
	return true
}

// update sets Current to the eased interpolation at progress p.
func (h *HandAnimator) update(p float64) {
	st := h.state
	span := float64(st.To - st.From)
	st.Current = st.From + Angle(math.Round(span*h.curve(p)))
	h.repaint()
}

// finish is the natural completion transition.
func (h *HandAnimator) finish() {
	st := h.state
	st.Current = NormalizeAngle(st.To)
	st.Running = false
	h.handle = nil
	Logger().Debug("clockface: hour sweep finished", "angle", st.Current)
	h.repaint()
}

// interrupt is the cancellation transition. Current keeps the last
// interpolated value so the next sweep starts where this one stopped.
func (h *HandAnimator) interrupt() {
	h.state.Running = false
	h.handle = nil
	Logger().Debug("clockface: hour sweep interrupted", "angle", h.state.Current)
}

func (h *HandAnimator) cancel() {
	if h.handle != nil && h.handle.Running() {
		h.handle.Cancel()
	}
	h.handle = nil
}
