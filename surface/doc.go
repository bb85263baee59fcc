// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides display surfaces for a clock face.
//
// Offscreen implements clockface.Surface over a fixed-size gg.Context.
// Hosts mark it dirty through the coordinator and call Present from their
// event loop; the paint callback runs only when a repaint was requested:
//
//	s, err := surface.NewOffscreen(144, 168)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	coord, _ := clockface.NewCoordinator(s, timeline)
//	...
//	if _, err := s.Present(coord.Paint); err != nil {
//	    return err
//	}
//	img := s.Image()
//
// The face rectangle defaults to the largest centered square, which on a
// portrait display leaves bands above and below the face.
package surface
