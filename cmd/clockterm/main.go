// Command clockterm shows a live clock face in the terminal.
//
// Keys: q or Esc quits, t toggles the palette.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/clockface/internal/host"
	"github.com/gogpu/clockface/tick"
)

func main() {
	var (
		fps     = flag.Int("fps", 30, "animation frames per second")
		unit    = flag.Duration("unit", time.Minute, "tick boundary (use 1s to watch it move)")
		logFile = flag.String("log", "", "file for -v output")
		face    host.Flags
	)
	face.Register(flag.CommandLine)
	flag.Parse()

	if err := run(*fps, *unit, *logFile, &face); err != nil {
		fmt.Fprintf(os.Stderr, "clockterm: %v\n", err)
		os.Exit(1)
	}
}

func run(fps int, unit time.Duration, logFile string, flags *host.Flags) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}

	// The terminal is taken over, so logs go to a file or nowhere.
	var logw io.Writer = io.Discard
	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		logw = f
	}
	face, err := flags.Setup(logw)
	if err != nil {
		return err
	}
	defer func() { _ = face.Close() }()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	a, err := newApp(screen, face)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	src := tick.NewSource(tick.WithUnit(unit))
	go func() { _ = src.Run(ctx) }()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	return a.loop(ctx, src.Events(), events, time.Second/time.Duration(fps))
}
