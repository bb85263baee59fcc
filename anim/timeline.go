package anim

import "time"

// Clock supplies the current time to a Timeline.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock with time.Now.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }

// UpdateFunc receives the normalized progress of an animation in [0, 1].
type UpdateFunc func(progress float64)

// StopFunc is called once when an animation ends. finished is true when
// the animation reached the end and false when it was cancelled.
type StopFunc func(finished bool)

// Scheduler starts animations.
type Scheduler interface {
	Schedule(d time.Duration, update UpdateFunc, stop StopFunc) Handle
}

// Handle controls a scheduled animation.
type Handle interface {
	// Cancel stops the animation. The stop callback runs before Cancel
	// returns. Cancelling a finished animation does nothing.
	Cancel()

	// Running reports whether the animation has neither finished nor been
	// cancelled.
	Running() bool
}

// Timeline is a Scheduler driven by explicit calls to Advance.
//
// Timeline is NOT safe for concurrent use. All calls, including those made
// from callbacks, must come from the goroutine that calls Advance.
type Timeline struct {
	clock   Clock
	entries []*entry
	nextID  uint64
}

var _ Scheduler = (*Timeline)(nil)

// NewTimeline creates a Timeline reading time from clock.
// A nil clock uses SystemClock.
func NewTimeline(clock Clock) *Timeline {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Timeline{clock: clock}
}

type entry struct {
	id       uint64
	start    time.Time
	duration time.Duration
	update   UpdateFunc
	stop     StopFunc
	done     bool
}

// Schedule starts an animation of duration d at the current clock time.
// The first update is delivered by the next Advance. Either callback may
// be nil.
func (t *Timeline) Schedule(d time.Duration, update UpdateFunc, stop StopFunc) Handle {
	t.nextID++
	e := &entry{
		id:       t.nextID,
		start:    t.clock.Now(),
		duration: d,
		update:   update,
		stop:     stop,
	}
	t.entries = append(t.entries, e)
	slogger().Debug("anim: scheduled", "id", e.id, "duration", d)
	return e
}

// Advance delivers one update to every running animation and finishes
// those that reached the end. Animations scheduled by callbacks during
// Advance receive their first update on the next call.
func (t *Timeline) Advance() {
	now := t.clock.Now()
	pending := t.entries
	for _, e := range pending {
		if e.done {
			continue
		}
		p := e.progress(now)
		if e.update != nil {
			e.update(p)
		}
		if p >= 1 && !e.done {
			e.end(true)
		}
	}
	t.compact()
}

// Active reports whether any animation is running.
func (t *Timeline) Active() bool {
	for _, e := range t.entries {
		if !e.done {
			return true
		}
	}
	return false
}

// Len returns the number of running animations.
func (t *Timeline) Len() int {
	n := 0
	for _, e := range t.entries {
		if !e.done {
			n++
		}
	}
	return n
}

// compact drops ended entries.
func (t *Timeline) compact() {
	live := t.entries[:0]
	for _, e := range t.entries {
		if !e.done {
			live = append(live, e)
		}
	}
	clear(t.entries[len(live):])
	t.entries = live
}

func (e *entry) progress(now time.Time) float64 {
	if e.duration <= 0 {
		return 1
	}
	p := float64(now.Sub(e.start)) / float64(e.duration)
	return clamp01(p)
}

func (e *entry) end(finished bool) {
	e.done = true
	slogger().Debug("anim: stopped", "id", e.id, "finished", finished)
	if e.stop != nil {
		e.stop(finished)
	}
}

// Cancel implements Handle.
func (e *entry) Cancel() {
	if e.done {
		return
	}
	e.end(false)
}

// Running implements Handle.
func (e *entry) Running() bool {
	return !e.done
}
