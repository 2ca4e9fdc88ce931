package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/palettepal/palettepal/internal/palette"
)

// cellColor converts an engine color to the terminal's RGB color type.
func cellColor(c palette.Color) tcell.Color {
	rgb := c.RGB()
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// fgStyle paints the foreground with the given color.
func fgStyle(c palette.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(cellColor(c))
}

// bgStyle paints the background with the given color.
func bgStyle(c palette.Color) tcell.Style {
	return tcell.StyleDefault.Background(cellColor(c))
}

// drawText writes a string starting at (x, y). Returns the x position
// following the last rune drawn.
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
