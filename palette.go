package clockface

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

// Palette holds the colors used to paint the face.
// MinuteHand and Background come from the settings collaborator; the rest
// are derived by NewPalette and may be overridden.
type Palette struct {
	MinuteHand gg.RGBA
	Background gg.RGBA
	Foreground gg.RGBA
	Indicator  gg.RGBA
	Border     gg.RGBA
}

// SettingsSource delivers the current palette on demand.
type SettingsSource interface {
	Palette() Palette
}

// NewPalette builds a palette from the two user-configurable colors.
// Foreground is black or white, whichever contrasts with the background;
// the indicator ring uses the foreground and the hand border uses the
// background.
func NewPalette(minuteHand, background gg.RGBA) Palette {
	fg := gg.White
	if luminance(background) > 0.5 {
		fg = gg.Black
	}
	return Palette{
		MinuteHand: minuteHand,
		Background: background,
		Foreground: fg,
		Indicator:  fg,
		Border:     background,
	}
}

// DefaultPalette returns the palette used until settings arrive.
func DefaultPalette() Palette {
	return NewPalette(gg.Hex("#FF5500"), gg.Black)
}

// ParsePalette parses hex colors ("#RGB", "#RRGGBB", with optional alpha)
// into a palette.
func ParsePalette(minuteHand, background string) (Palette, error) {
	mh, err := parseHexColor(minuteHand)
	if err != nil {
		return Palette{}, err
	}
	bg, err := parseHexColor(background)
	if err != nil {
		return Palette{}, err
	}
	return NewPalette(mh, bg), nil
}

func parseHexColor(s string) (gg.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for _, r := range hex {
		if !isHexDigit(r) {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return gg.Hex(hex), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// luminance returns the relative luminance of c (Rec. 709 weights).
func luminance(c gg.RGBA) float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}
