package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/palettepal/palettepal/internal/palette"
)

// Swatch is one palette display cell. Swatches beyond a harmony's size are
// hidden rather than cleared so their colors survive a mode switch.
type Swatch struct {
	Color   palette.Color
	Label   string
	Visible bool
}

// drawSwatches renders the swatch row: an indicator line marking the
// selected swatch, then a block of background-colored cells per swatch with
// its label centered on the bottom row.
func drawSwatches(screen tcell.Screen, swatches []Swatch, selected, x, y, width, height int) {
	if len(swatches) == 0 || width < len(swatches) || height < 2 {
		return
	}
	cellWidth := width / len(swatches)

	for i, sw := range swatches {
		if !sw.Visible {
			continue
		}
		sx := x + i*cellWidth

		if i == selected {
			drawText(screen, sx+cellWidth/2, y, tcell.StyleDefault, "▼")
		}

		style := bgStyle(sw.Color)
		for row := 1; row < height; row++ {
			for col := 0; col < cellWidth-1; col++ {
				screen.SetContent(sx+col, y+row, ' ', nil, style)
			}
		}

		if sw.Label != "" && cellWidth > len(sw.Label) {
			drawText(screen, sx+(cellWidth-len(sw.Label))/2, y+height-1, style, sw.Label)
		}
	}
}
