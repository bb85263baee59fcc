// Package term shows images on a tcell screen.
package term

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// halfBlock is drawn with the upper pixel as foreground and the lower
// pixel as background.
const halfBlock = '▀'

// ImageSize returns the pixel size that fills cols x rows cells.
func ImageSize(cols, rows int) (width, height int) {
	return cols, rows * 2
}

// Blit draws img with its top-left corner at cell (x, y). Each cell shows
// two vertically stacked pixels. Pixels that are mostly transparent use
// bg.
func Blit(screen tcell.Screen, img image.Image, x, y int, bg tcell.Color) {
	b := img.Bounds()
	for py := b.Min.Y; py < b.Max.Y; py += 2 {
		row := y + (py-b.Min.Y)/2
		for px := b.Min.X; px < b.Max.X; px++ {
			top := CellColor(img.At(px, py), bg)
			bottom := bg
			if py+1 < b.Max.Y {
				bottom = CellColor(img.At(px, py+1), bg)
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			screen.SetContent(x+px-b.Min.X, row, halfBlock, nil, style)
		}
	}
}

// CellColor converts c to a terminal color.
func CellColor(c color.Color, bg tcell.Color) tcell.Color {
	r, g, b, a := c.RGBA()
	if a < 0x8000 {
		return bg
	}
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
