// Command clockpng renders the clock face to PNG files.
//
// Without -animate it writes a single frame showing -time. With -animate
// it starts one hour earlier, ticks to -time and writes every frame of
// the hour sweep as output-NNN.png.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gogpu/clockface"
	"github.com/gogpu/clockface/anim"
	"github.com/gogpu/clockface/internal/host"
	"github.com/gogpu/clockface/surface"
	"github.com/gogpu/clockface/tick"
	"github.com/gogpu/gg"
)

// stepClock is an anim.Clock moved by hand so frames are evenly spaced.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func main() {
	var (
		width   = flag.Int("width", 144, "image width")
		height  = flag.Int("height", 168, "image height")
		at      = flag.String("time", "", "time of day to show, HH:MM (default now)")
		output  = flag.String("output", "clock.png", "output file")
		animate = flag.Bool("animate", false, "write the hour sweep as numbered frames")
		fps     = flag.Int("fps", 30, "frames per second with -animate")
		face    host.Flags
	)
	face.Register(flag.CommandLine)
	flag.Parse()

	t := time.Now()
	if *at != "" {
		var err error
		if t, err = host.ParseClock(*at, t); err != nil {
			log.Fatal(err)
		}
	}

	s, err := surface.NewOffscreen(*width, *height, surface.WithClearColor(gg.Black))
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = s.Close() }()

	f, err := face.Setup(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	clock := &stepClock{now: t}
	tl := anim.NewTimeline(clock)
	coord, err := clockface.NewCoordinator(s, tl, f.Options(s.Bounds().Size.W)...)
	if err != nil {
		log.Fatal(err)
	}

	if !*animate {
		coord.HandleTick(clockface.SampleFromTime(t), tick.AllUnits)
		if _, err := s.Present(coord.Paint); err != nil {
			log.Fatal(err)
		}
		if err := s.SavePNG(*output); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Clock saved to %s (%dx%d)\n", *output, *width, *height)
		return
	}

	frames, err := writeSweep(s, coord, tl, clock, t, *output, *fps)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %d frames to %s\n", frames, framePattern(*output))
}

// writeSweep renders the transition from one hour before t to t.
func writeSweep(s *surface.Offscreen, coord *clockface.Coordinator, tl *anim.Timeline, clock *stepClock, t time.Time, output string, fps int) (int, error) {
	if fps <= 0 {
		return 0, fmt.Errorf("clockpng: fps must be positive, got %d", fps)
	}
	step := time.Second / time.Duration(fps)
	pattern := framePattern(output)

	prev := t.Add(-time.Hour)
	coord.HandleTick(clockface.SampleFromTime(prev), tick.AllUnits)
	coord.HandleTick(clockface.SampleFromTime(t), clockface.ChangedUnits(prev, t))

	n := 0
	for {
		if _, err := s.Present(coord.Paint); err != nil {
			return n, err
		}
		if err := s.SavePNG(fmt.Sprintf(pattern, n)); err != nil {
			return n, fmt.Errorf("clockpng: frame %d: %w", n, err)
		}
		n++
		if !tl.Active() {
			return n, nil
		}
		clock.now = clock.now.Add(step)
		tl.Advance()
	}
}

// framePattern turns "clock.png" into "clock-%03d.png".
func framePattern(output string) string {
	base := strings.TrimSuffix(output, ".png")
	base = strings.ReplaceAll(base, "%", "%%")
	return base + "-%03d.png"
}
