package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/clockface"
	"github.com/gogpu/clockface/anim"
	"github.com/gogpu/clockface/internal/host"
	"github.com/gogpu/clockface/internal/term"
	"github.com/gogpu/clockface/surface"
	"github.com/gogpu/clockface/tick"
)

// app is the terminal host. Every method runs on the loop goroutine.
type app struct {
	screen   tcell.Screen
	face     *host.Face
	settings *host.Settings

	surf  *surface.Offscreen
	tl    *anim.Timeline
	coord *clockface.Coordinator
}

func newApp(screen tcell.Screen, face *host.Face) (*app, error) {
	a := &app{
		screen:   screen,
		face:     face,
		settings: host.NewSettings(face.Palette),
	}
	if err := a.rebuild(); err != nil {
		return nil, err
	}
	return a, nil
}

// rebuild sizes the surface to the screen and recreates the coordinator
// for the new face diameter. The last sample is replayed without
// animation.
func (a *app) rebuild() error {
	w, h := term.ImageSize(a.screen.Size())
	if a.surf == nil {
		s, err := surface.NewOffscreen(w, h)
		if err != nil {
			return err
		}
		a.surf = s
	} else if err := a.surf.Resize(w, h); err != nil {
		return err
	}

	var last clockface.FaceState
	if a.coord != nil {
		last = a.coord.State()
	}

	a.tl = anim.NewTimeline(nil)
	opts := append(a.face.Options(a.surf.Bounds().Size.W), clockface.WithPalette(a.settings.Palette()))
	coord, err := clockface.NewCoordinator(a.surf, a.tl, opts...)
	if err != nil {
		return err
	}
	a.coord = coord
	if last.HasSample {
		a.coord.HandleTick(last.Last, tick.AllUnits)
	}
	a.screen.Clear()
	return nil
}

// loop serializes tick, frame and terminal events until the user quits
// or ctx is done.
func (a *app) loop(ctx context.Context, ticks <-chan tick.Event, events <-chan tcell.Event, frame time.Duration) error {
	frames := time.NewTicker(frame)
	defer frames.Stop()

	for {
		var frameC <-chan time.Time
		if a.tl.Active() {
			frameC = frames.C
		}

		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-ticks:
			if !ok {
				return nil
			}
			a.coord.HandleTick(ev.Sample, ev.Changed)
		case <-frameC:
			a.tl.Advance()
		case ev := <-events:
			quit, err := a.handleEvent(ev)
			if err != nil || quit {
				return err
			}
		}

		if err := a.draw(); err != nil {
			clockface.Logger().Warn("clockterm: draw failed", "err", err)
		}
	}
}

// handleEvent applies a terminal event and reports whether to quit.
func (a *app) handleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true, nil
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return true, nil
			case 't':
				a.coord.HandleSettings(a.settings.Next())
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
		return false, a.rebuild()
	}
	return false, nil
}

// draw presents a pending frame and copies it to the screen.
func (a *app) draw() error {
	painted, err := a.surf.Present(a.coord.Paint)
	if !painted {
		return err
	}
	term.Blit(a.screen, a.surf.Image(), 0, 0, tcell.ColorDefault)
	a.screen.Show()
	return err
}

func (a *app) close() {
	_ = a.surf.Close()
}
