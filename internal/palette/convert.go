package palette

import (
	"math"
	"strconv"
	"strings"
)

// HSL represents a color in HSL (Hue, Saturation, Lightness) space.
//
// Components are kept as floats because transformations such as Lighten can
// produce fractional values. Hue is in degrees, saturation and lightness in
// percent.
type HSL struct {
	H float64 `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S float64 `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L float64 `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// RGB represents an RGB color with 8-bit components.
type RGB struct {
	R int `json:"r"` // Red component (0-255)
	G int `json:"g"` // Green component (0-255)
	B int `json:"b"` // Blue component (0-255)
}

// roundHalfUp converts a non-negative float to int by adding 0.5 and
// truncating, so exact halves round up. This is the package-wide rounding
// contract; math.Round is not equivalent for all inputs and must not be
// substituted.
func roundHalfUp(x float64) int {
	return int(x + 0.5)
}

// RGBToHSL converts 8-bit RGB components to HSL.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to 0-1 range
//  2. Find min and max components
//  3. Lightness is (max + min) / 2
//  4. Saturation depends on whether lightness is above 0.5
//  5. Hue depends on which component is max
//
// Results are rounded half-up to whole degrees/percent. Achromatic inputs
// (r=g=b) return hue 0 and saturation 0 without dividing by zero.
func RGBToHSL(r, g, b int) HSL {
	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	maxc := math.Max(rf, math.Max(gf, bf))
	minc := math.Min(rf, math.Min(gf, bf))

	l := (maxc + minc) / 2.0

	if maxc == minc {
		return HSL{H: 0, S: 0, L: float64(roundHalfUp(l * 100))}
	}

	var s float64
	if l <= 0.5 {
		s = (maxc - minc) / (maxc + minc)
	} else {
		s = (maxc - minc) / (2.0 - maxc - minc)
	}

	rc := (maxc - rf) / (maxc - minc)
	gc := (maxc - gf) / (maxc - minc)
	bc := (maxc - bf) / (maxc - minc)

	var h float64
	switch maxc {
	case rf:
		h = bc - gc
	case gf:
		h = 2.0 + rc - bc
	default:
		h = 4.0 + gc - rc
	}
	h = math.Mod(h/6.0, 1.0)
	if h < 0 {
		h++
	}

	return HSL{
		H: float64(roundHalfUp(h * 360)),
		S: float64(roundHalfUp(s * 100)),
		L: float64(roundHalfUp(l * 100)),
	}
}

// HSLToRGB converts an HSL color (h in degrees, s/l in percent) to 8-bit
// RGB. Inputs are normalized to 0-1 before the classical inverse transform;
// outputs are rounded half-up. For in-range inputs the formula cannot
// produce channels outside 0-255.
func HSLToRGB(h, s, l float64) RGB {
	hn := h / 360.0
	sn := s / 100.0
	ln := l / 100.0

	if sn == 0 {
		v := roundHalfUp(ln * 255)
		return RGB{R: v, G: v, B: v}
	}

	var m2 float64
	if ln <= 0.5 {
		m2 = ln * (1 + sn)
	} else {
		m2 = ln + sn - ln*sn
	}
	m1 := 2*ln - m2

	return RGB{
		R: roundHalfUp(hueToChannel(m1, m2, hn+1.0/3.0) * 255),
		G: roundHalfUp(hueToChannel(m1, m2, hn) * 255),
		B: roundHalfUp(hueToChannel(m1, m2, hn-1.0/3.0) * 255),
	}
}

// hueToChannel computes one normalized RGB channel from the two lightness
// bounds and a hue offset. The hue wraps into [0,1).
func hueToChannel(m1, m2, hue float64) float64 {
	hue = math.Mod(hue, 1.0)
	if hue < 0 {
		hue++
	}
	switch {
	case hue < 1.0/6.0:
		return m1 + (m2-m1)*hue*6
	case hue < 0.5:
		return m2
	case hue < 2.0/3.0:
		return m1 + (m2-m1)*(2.0/3.0-hue)*6
	default:
		return m1
	}
}

// RGBToHex formats 8-bit RGB components as a lowercase "#rrggbb" string,
// two zero-padded hex digits per channel.
func RGBToHex(r, g, b int) string {
	const digits = "0123456789abcdef"
	return string([]byte{
		'#',
		digits[r>>4&0xf], digits[r&0xf],
		digits[g>>4&0xf], digits[g&0xf],
		digits[b>>4&0xf], digits[b&0xf],
	})
}

// HexToRGB parses a hex color string into RGB components.
//
// A single leading '#' is optional; the remainder must be exactly six hex
// digits (case-insensitive). Anything else returns a *ParseError.
func HexToRGB(s string) (RGB, error) {
	t := strings.TrimPrefix(s, "#")
	if len(t) != 6 {
		return RGB{}, &ParseError{Input: s, Reason: "want exactly 6 hex digits"}
	}
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return RGB{}, &ParseError{Input: s, Reason: "invalid hex digits"}
	}
	return RGB{
		R: int(v >> 16 & 0xff),
		G: int(v >> 8 & 0xff),
		B: int(v & 0xff),
	}, nil
}
