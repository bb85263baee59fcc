// Package host holds the setup shared by the clockface commands: flag
// definitions, logging, font loading and palette settings.
package host

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gogpu/clockface"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
)

// ReferenceSize is the face diameter the default layout is tuned for.
const ReferenceSize = 144

// ErrUnknownShaper is returned for an unsupported -shaper value.
var ErrUnknownShaper = errors.New("host: unknown shaper")

// Flags are the face settings common to every command.
type Flags struct {
	MinuteHand string
	Background string
	Font       string
	FontSize   float64
	Locale     string
	Shaper     string
	Duration   time.Duration
	Verbose    bool
}

// Register defines the flags on fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.MinuteHand, "minute-color", "#FF5500", "minute hand color (hex)")
	fs.StringVar(&f.Background, "background", "#000000", "face background color (hex)")
	fs.StringVar(&f.Font, "font", "", "TrueType font file for numerals (default Go Regular)")
	fs.Float64Var(&f.FontSize, "font-size", 14, "numeral font size at the reference face size")
	fs.StringVar(&f.Locale, "locale", "en", "BCP 47 language tag for numerals")
	fs.StringVar(&f.Shaper, "shaper", "builtin", "text shaper: builtin or gotext")
	fs.DurationVar(&f.Duration, "duration", clockface.DefaultAnimationDuration, "hour sweep duration")
	fs.BoolVar(&f.Verbose, "v", false, "log debug output to stderr")
}

// Face is the result of Setup.
type Face struct {
	Palette clockface.Palette
	Source  *text.FontSource

	locale   language.Tag
	fontSize float64
	duration time.Duration
}

// Options returns the face options for a face of the given diameter.
// Layout and font size are scaled from ReferenceSize.
func (f *Face) Options(diameter int) []clockface.Option {
	k := float64(diameter) / ReferenceSize
	return []clockface.Option{
		clockface.WithLayout(clockface.DefaultLayout().Scaled(k)),
		clockface.WithPalette(f.Palette),
		clockface.WithNumeralLocale(f.locale),
		clockface.WithFace(f.Source.Face(f.fontSize * k)),
		clockface.WithAnimationDuration(f.duration),
	}
}

// Close releases the font.
func (f *Face) Close() error {
	return f.Source.Close()
}

// Setup applies the global settings, logging to logw when -v is set, and
// loads the face resources.
func (f *Flags) Setup(logw io.Writer) (*Face, error) {
	if f.Verbose {
		clockface.SetLogger(slog.New(slog.NewTextHandler(logw, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if err := SetShaper(f.Shaper); err != nil {
		return nil, err
	}

	pal, err := clockface.ParsePalette(f.MinuteHand, f.Background)
	if err != nil {
		return nil, err
	}
	tag, err := language.Parse(f.Locale)
	if err != nil {
		return nil, fmt.Errorf("host: locale %q: %w", f.Locale, err)
	}
	source, err := LoadFont(f.Font)
	if err != nil {
		return nil, err
	}
	return &Face{
		Palette:  pal,
		Source:   source,
		locale:   tag,
		fontSize: f.FontSize,
		duration: f.Duration,
	}, nil
}

// LoadFont loads the font at path, or Go Regular when path is empty.
func LoadFont(path string) (*text.FontSource, error) {
	if path == "" {
		source, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("host: builtin font: %w", err)
		}
		return source, nil
	}
	source, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("host: font %s: %w", path, err)
	}
	return source, nil
}

// SetShaper selects the global text shaper by name.
func SetShaper(name string) error {
	switch name {
	case "", "builtin":
		text.SetShaper(nil)
	case "gotext":
		text.SetShaper(text.NewGoTextShaper())
	default:
		return fmt.Errorf("%w: %q", ErrUnknownShaper, name)
	}
	return nil
}

// ParseClock parses "HH:MM" as a time of day on the date of day.
func ParseClock(s string, day time.Time) (time.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("host: time %q: want HH:MM", s)
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}
