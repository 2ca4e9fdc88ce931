package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/palettepal/palettepal/internal/palette"
)

// formatRGB renders the RGB readout line, either as 0-255 integers or as
// normalized 0-1 values.
func formatRGB(c palette.Color, normalized bool) string {
	if normalized {
		n := c.RGBNormalized()
		return fmt.Sprintf("(%.3f, %.3f, %.3f)", n.R, n.G, n.B)
	}
	rgb := c.RGB()
	return fmt.Sprintf("(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// formatHSL renders the HSL readout line. The display always shows the
// standard-space hue angle, so RYB colors read out as what the eye sees.
func formatHSL(c palette.Color, normalized bool) string {
	hsl := c.HSLInRGBSpace()
	if normalized {
		return fmt.Sprintf("(%.3f, %.3f, %.3f)", hsl.H/360, hsl.S/100, hsl.L/100)
	}
	return fmt.Sprintf("(%g, %g, %g)", hsl.H, hsl.S, hsl.L)
}

// formatName returns the exact CSS name of the color, or "N/A".
func formatName(c palette.Color) string {
	if name, ok := palette.NameOf(c.RGB()); ok {
		return name
	}
	return "N/A"
}

// copyValue builds the string placed on the clipboard for the given format.
func copyValue(c palette.Color, format string, normalized bool) string {
	switch format {
	case "hsl":
		if normalized {
			n := c.HSLNormalized()
			return fmt.Sprintf("%.3f, %.3f, %.3f", n.H, n.S, n.L)
		}
		hsl := c.HSL()
		return fmt.Sprintf("%g, %g, %g", hsl.H, hsl.S, hsl.L)
	case "hex":
		return c.Hex()
	default:
		if normalized {
			n := c.RGBNormalized()
			return fmt.Sprintf("%.3f, %.3f, %.3f", n.R, n.G, n.B)
		}
		rgb := c.RGB()
		return fmt.Sprintf("%d, %d, %d", rgb.R, rgb.G, rgb.B)
	}
}

// parseTriple parses a "(a, b, c)" readout entry into its three components.
// The parentheses and surrounding whitespace are optional.
func parseTriple(s string) (a, b, c float64, err error) {
	s = strings.Trim(s, "() \t")
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected 3 comma-separated values, got %d", len(parts))
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		vals[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("value %d: %w", i+1, err)
		}
	}
	return vals[0], vals[1], vals[2], nil
}

// textField holds an in-progress readout entry. While editing, the typed
// buffer is shown in place of the computed value; Enter applies it and
// leaves editing mode.
type textField struct {
	buffer  string
	editing bool
}

func (f *textField) typeRune(r rune) {
	f.editing = true
	f.buffer += string(r)
}

func (f *textField) backspace() {
	if f.buffer != "" {
		f.buffer = f.buffer[:len(f.buffer)-1]
	}
	f.editing = true
}

// take returns the buffer and resets the field.
func (f *textField) take() string {
	s := f.buffer
	f.buffer = ""
	f.editing = false
	return s
}
