// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/clockface"
	"github.com/gogpu/gg"
)

// ErrInvalidDimensions is returned for non-positive surface sizes.
var ErrInvalidDimensions = errors.New("surface: invalid dimensions")

// PaintFunc draws a frame onto a canvas.
type PaintFunc func(cv clockface.Canvas) error

// Option configures an Offscreen.
type Option func(*Offscreen)

// WithFaceRect sets the rectangle the face occupies within the surface.
func WithFaceRect(r clockface.Rect) Option {
	return func(s *Offscreen) {
		s.bounds = r
		s.fixed = true
	}
}

// WithClearColor sets the color the surface is cleared to before every
// frame. The default is transparent.
func WithClearColor(c gg.RGBA) Option {
	return func(s *Offscreen) {
		s.clear = c
	}
}

// Offscreen is a clockface.Surface backed by an in-memory gg.Context.
//
// Offscreen is NOT safe for concurrent use.
type Offscreen struct {
	ctx    *gg.Context
	bounds clockface.Rect
	clear  gg.RGBA
	fixed  bool
	dirty  bool
	frames int
}

var _ clockface.Surface = (*Offscreen)(nil)

// NewOffscreen creates a width x height surface. A new surface starts
// dirty so the first Present draws.
func NewOffscreen(width, height int, opts ...Option) (*Offscreen, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	s := &Offscreen{
		ctx:    gg.NewContext(width, height),
		bounds: centeredSquare(width, height),
		clear:  gg.Transparent,
		dirty:  true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func centeredSquare(width, height int) clockface.Rect {
	d := min(width, height)
	return clockface.R((width-d)/2, (height-d)/2, d, d)
}

// Resize replaces the drawing context with a width x height one and
// marks the surface dirty. A face rectangle set with WithFaceRect is
// kept; otherwise it is recomputed for the new size.
func (s *Offscreen) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width == s.ctx.Width() && height == s.ctx.Height() {
		return nil
	}
	if err := s.ctx.Close(); err != nil {
		return fmt.Errorf("surface: resize: %w", err)
	}
	s.ctx = gg.NewContext(width, height)
	if !s.fixed {
		s.bounds = centeredSquare(width, height)
	}
	s.dirty = true
	return nil
}

// Width returns the surface width in pixels.
func (s *Offscreen) Width() int { return s.ctx.Width() }

// Height returns the surface height in pixels.
func (s *Offscreen) Height() int { return s.ctx.Height() }

// Bounds implements clockface.Surface.
func (s *Offscreen) Bounds() clockface.Rect { return s.bounds }

// MarkDirty implements clockface.Surface.
func (s *Offscreen) MarkDirty() { s.dirty = true }

// Dirty reports whether a repaint is pending.
func (s *Offscreen) Dirty() bool { return s.dirty }

// Frames returns the number of frames painted so far.
func (s *Offscreen) Frames() int { return s.frames }

// Present clears the surface and runs paint if a repaint is pending. It
// reports whether paint ran. The pending flag is cleared even when paint
// fails.
func (s *Offscreen) Present(paint PaintFunc) (bool, error) {
	if !s.dirty {
		return false, nil
	}
	s.dirty = false
	s.frames++
	s.ctx.ClearWithColor(s.clear)
	if err := paint(s.ctx); err != nil {
		return true, fmt.Errorf("surface: present frame %d: %w", s.frames, err)
	}
	return true, nil
}

// Image returns the surface contents.
func (s *Offscreen) Image() image.Image {
	return s.ctx.Image()
}

// SavePNG writes the surface contents to path.
func (s *Offscreen) SavePNG(path string) error {
	return s.ctx.SavePNG(path)
}

// EncodePNG writes the surface contents to w.
func (s *Offscreen) EncodePNG(w io.Writer) error {
	return s.ctx.EncodePNG(w)
}

// Close releases the drawing context.
func (s *Offscreen) Close() error {
	return s.ctx.Close()
}
