// Package anim provides the frame scheduler used to animate the clock face.
//
// A Scheduler accepts an animation of a fixed duration together with an
// update callback, which receives the normalized progress in [0, 1], and a
// stop callback, which fires exactly once when the animation ends either
// naturally or through cancellation.
//
// Timeline is the Scheduler implementation. It does not own a goroutine:
// the host calls Advance from the same loop that delivers every other
// event, so all callbacks run serially.
//
//	tl := anim.NewTimeline(nil)
//	h := tl.Schedule(300*time.Millisecond,
//	    func(p float64) { angle = lerp(from, to, anim.EaseInOut(p)) },
//	    func(finished bool) { ... })
//
//	// Host frame loop:
//	for range frameTicker.C {
//	    tl.Advance()
//	}
//
// Cancel is synchronous: the stop callback runs before Cancel returns and
// no further updates are delivered for that animation.
package anim
