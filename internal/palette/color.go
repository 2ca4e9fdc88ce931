package palette

import "math"

// Space tags how a Color's stored HSL triple is interpreted.
type Space int

const (
	// SpaceStandard interprets the HSL value directly in RGB-derived HSL
	// space; the RGB view is a plain HSL→RGB conversion.
	SpaceStandard Space = iota

	// SpaceRYB interprets the HSL value as sitting in RYB-derived space;
	// the RGB view passes through an additional RYB→RGB conversion.
	SpaceRYB
)

func (s Space) String() string {
	switch s {
	case SpaceRYB:
		return "ryb"
	default:
		return "standard"
	}
}

// Color is an immutable color value: a canonical HSL triple plus the
// colorspace tag that says how to interpret it. Every transformation
// returns a new Color; the zero value is black in standard space.
//
// All derived views (RGB, RYB, Hex, ...) are pure functions of the stored
// fields, so Color values are safe to share between goroutines.
type Color struct {
	hsl   HSL
	space Space
}

// New creates a Color from raw HSL components in the given space.
// The components are stored as given; hue wrapping and saturation/lightness
// clamping happen only in the operations documented to do so.
func New(h, s, l float64, space Space) Color {
	return Color{hsl: HSL{H: h, S: s, L: l}, space: space}
}

// FromRGB creates a Color from 8-bit RGB components. With SpaceRYB the
// components are first reinterpreted through an RGB→RYB conversion, then
// reduced to HSL; with SpaceStandard they convert to HSL directly.
func FromRGB(r, g, b int, space Space) Color {
	if space == SpaceRYB {
		ryb := RGBToRYB(RGB{R: r, G: g, B: b})
		r, g, b = ryb.R, ryb.Y, ryb.B
	}
	hsl := RGBToHSL(r, g, b)
	return Color{hsl: hsl, space: space}
}

// FromHex creates a Color from a hex string ("#rrggbb" or "rrggbb",
// case-insensitive). Returns a *ParseError for malformed input.
func FromHex(s string) (Color, error) {
	rgb, err := HexToRGB(s)
	if err != nil {
		return Color{}, err
	}
	return FromRGB(rgb.R, rgb.G, rgb.B, SpaceStandard), nil
}

// FromName creates a Color from a CSS color name (exact, case-insensitive
// match). Returns a *NameNotFoundError when the table has no entry.
func FromName(name string) (Color, error) {
	rgb, err := LookupName(name)
	if err != nil {
		return Color{}, err
	}
	return FromRGB(rgb.R, rgb.G, rgb.B, SpaceStandard), nil
}

// Space reports which colorspace the stored HSL value sits in.
func (c Color) Space() Space {
	return c.space
}

// HSL returns the stored HSL value, unnormalized and uninterpreted.
func (c Color) HSL() HSL {
	return c.hsl
}

// RGB returns the displayable 8-bit RGB value.
func (c Color) RGB() RGB {
	rgb := HSLToRGB(c.hsl.H, c.hsl.S, c.hsl.L)
	switch c.space {
	case SpaceRYB:
		return RYBToRGB(RYB{R: rgb.R, Y: rgb.G, B: rgb.B})
	default:
		return rgb
	}
}

// RYB returns the color expressed in the red-yellow-blue mixing model.
func (c Color) RYB() RYB {
	rgb := HSLToRGB(c.hsl.H, c.hsl.S, c.hsl.L)
	switch c.space {
	case SpaceRYB:
		return RYB{R: rgb.R, Y: rgb.G, B: rgb.B}
	default:
		return RGBToRYB(rgb)
	}
}

// Hex returns the displayable color as a lowercase "#rrggbb" string.
func (c Color) Hex() string {
	rgb := c.RGB()
	return RGBToHex(rgb.R, rgb.G, rgb.B)
}

// HSLNorm is an HSL triple with each component normalized to 0-1.
type HSLNorm struct {
	H float64 `json:"h"` // Hue / 360
	S float64 `json:"s"` // Saturation / 100
	L float64 `json:"l"` // Lightness / 100
}

// RGBNorm is an RGB triple with each channel normalized to 0-1.
type RGBNorm struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// HSLNormalized returns the stored HSL value with each component divided by
// its maximum (360 or 100).
func (c Color) HSLNormalized() HSLNorm {
	return HSLNorm{H: c.hsl.H / 360, S: c.hsl.S / 100, L: c.hsl.L / 100}
}

// RGBNormalized returns the displayable RGB value with each channel divided
// by 255.
func (c Color) RGBNormalized() RGBNorm {
	rgb := c.RGB()
	return RGBNorm{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
}

// HSLInRGBSpace re-derives HSL from the displayable RGB view, ignoring the
// colorspace tag. RYB-space colors still report a meaningful HSL for
// display this way.
func (c Color) HSLInRGBSpace() HSL {
	rgb := c.RGB()
	return RGBToHSL(rgb.R, rgb.G, rgb.B)
}

// Rotate returns the color with its hue rotated theta degrees around the
// color wheel, wrapped into [0,360). Negative angles rotate backwards.
func (c Color) Rotate(theta float64) Color {
	h := math.Mod(c.hsl.H+theta, 360)
	if h < 0 {
		h += 360
	}
	return Color{hsl: HSL{H: h, S: c.hsl.S, L: c.hsl.L}, space: c.space}
}

// Lighten returns the color with lightness mult*(l+add), clamped to
// [0,100]. Lighten(add, 1) shifts, Lighten(0, mult) scales.
func (c Color) Lighten(add, mult float64) Color {
	l := clampPercent(mult * (c.hsl.L + add))
	return Color{hsl: HSL{H: c.hsl.H, S: c.hsl.S, L: l}, space: c.space}
}

// Saturate returns the color with saturation mult*(s+add), clamped to
// [0,100].
func (c Color) Saturate(add, mult float64) Color {
	s := clampPercent(mult * (c.hsl.S + add))
	return Color{hsl: HSL{H: c.hsl.H, S: s, L: c.hsl.L}, space: c.space}
}

func clampPercent(v float64) float64 {
	return math.Min(math.Max(v, 0), 100)
}
