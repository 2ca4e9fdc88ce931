package tui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/palettepal/palettepal/internal/palette"
)

// Param selects which color component a slider sweeps along its bar.
type Param int

const (
	ParamHue Param = iota
	ParamSaturation
	ParamLightness
	ParamRed
	ParamGreen
	ParamBlue
)

// Slider is one gradient slider row: a pointer line above a colored bar
// with a label on the left and the numeric value on the right.
type Slider struct {
	Label string
	Value int
	Max   int
	Wrap  bool
	Param Param

	// Base supplies the fixed components of the gradient; the swept
	// component is replaced cell by cell.
	Base palette.Color
}

// Increment adjusts the value by delta, wrapping or clamping per the
// slider's configuration.
func (s *Slider) Increment(delta int) {
	s.Value += delta
	if s.Wrap {
		s.Value = s.Value % (s.Max + 1)
		if s.Value < 0 {
			s.Value += s.Max + 1
		}
	}
	if s.Value > s.Max {
		s.Value = s.Max
	}
	if s.Value < 0 {
		s.Value = 0
	}
}

// PushDigit appends a typed digit to the value, keeping the last three
// digits and clamping to the slider maximum.
func (s *Slider) PushDigit(d int) {
	v := s.Value*10 + d
	v %= 1000
	if v > s.Max {
		v = s.Max
	}
	s.Value = v
}

// Gradient produces the bar colors for the given width. Each cell holds the
// base color with the swept component replaced by the cell's position scaled
// to the component range.
func (s *Slider) Gradient(width int) []palette.Color {
	colors := make([]palette.Color, 0, width)
	if width <= 0 {
		return colors
	}

	switch s.Param {
	case ParamHue, ParamSaturation, ParamLightness:
		hsl := s.Base.HSL()
		space := s.Base.Space()
		for i := 0; i < width; i++ {
			h, sat, l := hsl.H, hsl.S, hsl.L
			switch s.Param {
			case ParamHue:
				h = float64(i) / float64(width) * 360
			case ParamSaturation:
				sat = float64(i) / float64(width) * 100
			case ParamLightness:
				l = float64(i) / float64(width) * 100
			}
			colors = append(colors, palette.New(h, sat, l, space))
		}
	case ParamRed, ParamGreen, ParamBlue:
		rgb := s.Base.RGB()
		for i := 0; i < width; i++ {
			r, g, b := rgb.R, rgb.G, rgb.B
			v := int(float64(i)/float64(width)*255 + 0.5)
			switch s.Param {
			case ParamRed:
				r = v
			case ParamGreen:
				g = v
			case ParamBlue:
				b = v
			}
			colors = append(colors, palette.FromRGB(r, g, b, palette.SpaceStandard))
		}
	}
	return colors
}

// pointerPos maps the current value onto a bar cell index.
func (s *Slider) pointerPos(width int) int {
	pos := int(float64(s.Value)/float64(s.Max)*float64(width)) - 1
	if pos > width-1 {
		pos = width - 1
	}
	if pos < 0 {
		pos = 0
	}
	return pos
}

// draw renders the slider's two rows at (x, y) within the given total width.
func (s *Slider) draw(screen tcell.Screen, x, y, totalWidth int, focused bool) {
	// Room for " L " on the left and " nnn" on the right.
	barWidth := totalWidth - len(s.Label) - len(strconv.Itoa(s.Max)) - 4
	if barWidth < 1 {
		return
	}

	pad := len(s.Label) + 2
	drawText(screen, x+pad+s.pointerPos(barWidth), y, tcell.StyleDefault, "▼")

	bx := drawText(screen, x, y+1, tcell.StyleDefault, " "+s.Label+" ")
	for _, c := range s.Gradient(barWidth) {
		bx = drawText(screen, bx, y+1, fgStyle(c), "█")
	}

	valueStyle := tcell.StyleDefault.Bold(true)
	if focused {
		valueStyle = valueStyle.Reverse(true)
	}
	drawText(screen, bx+1, y+1, valueStyle, strconv.Itoa(s.Value))
}
