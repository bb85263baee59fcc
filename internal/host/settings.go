package host

import "github.com/gogpu/clockface"

// Settings is a clockface.SettingsSource that cycles through a fixed set
// of palettes.
type Settings struct {
	palettes []clockface.Palette
	current  int
}

var _ clockface.SettingsSource = (*Settings)(nil)

// NewSettings creates settings starting at base, with the inverted
// palette as the alternative.
func NewSettings(base clockface.Palette) *Settings {
	return &Settings{palettes: []clockface.Palette{base, Inverted(base)}}
}

// Palette returns the active palette.
func (s *Settings) Palette() clockface.Palette {
	return s.palettes[s.current]
}

// Next switches to the next palette and returns it.
func (s *Settings) Next() clockface.Palette {
	s.current = (s.current + 1) % len(s.palettes)
	return s.Palette()
}

// Inverted swaps the background with its contrasting foreground.
func Inverted(p clockface.Palette) clockface.Palette {
	return clockface.NewPalette(p.MinuteHand, p.Foreground)
}
