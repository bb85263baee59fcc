// Package clockface draws an analog clock face for small fixed-resolution
// displays.
//
// # Overview
//
// The face shows twelve hour numerals, a minute hand and a hub. The
// current hour is marked by a ring laid over the numerals with a gap cut
// into it: only the numeral under the gap stays visible. When the hour
// changes the gap sweeps clockwise to the new position.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/clockface"
//		"github.com/gogpu/clockface/anim"
//		"github.com/gogpu/clockface/surface"
//		"github.com/gogpu/clockface/tick"
//	)
//
//	s, _ := surface.NewOffscreen(144, 168)
//	tl := anim.NewTimeline(nil)
//	coord, _ := clockface.NewCoordinator(s, tl, clockface.WithFace(face))
//
//	coord.HandleTick(clockface.SampleFromTime(time.Now()), tick.AllUnits)
//	s.Present(coord.Paint)
//	s.SavePNG("face.png")
//
// # Angles
//
// Angles are integers in tenths of a degree, clockwise from 12 o'clock.
// FullTurn is 3600. Positions on the face are computed with fixed-point
// trigonometry (Sin, Cos, PointFromPolar) so the same angle always lands
// on the same pixel.
//
// # Animation
//
// HandAnimator moves the hour indicator through an anim.Scheduler. A sweep
// interrupted by a new hour continues from where it stopped, and the
// indicator angle is reduced to [0, FullTurn) after every sweep. Sweeping
// to 12 o'clock targets FullTurn so the motion stays clockwise.
//
// # Coordinator
//
// Coordinator owns the FaceState. It consumes tick and settings
// notifications, drives the animator and requests at most one repaint per
// notification through its Surface. Paint draws the state with a Renderer
// onto any Canvas; *gg.Context satisfies Canvas.
//
// # Logging
//
// Nothing is logged by default. Use SetLogger to enable debug output for
// this package and anim.
package clockface
