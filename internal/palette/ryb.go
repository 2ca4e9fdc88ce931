package palette

// RYB represents a color in the artist's red-yellow-blue mixing model.
//
// It is structurally identical to RGB (three 8-bit channels) but not
// directly displayable; convert through RYBToRGB first. Not every RGB color
// has an exact RYB representation and vice versa, so conversions between
// the two are lossy.
type RYB struct {
	R int `json:"r"` // Red component (0-255)
	Y int `json:"y"` // Yellow component (0-255)
	B int `json:"b"` // Blue component (0-255)
}

// cornerTable holds the 8 control-point colors of a unit-cube
// interpolation, indexed by the 3-bit corner id. Bit 2 is the first
// dimension, bit 0 the last, so index 0b101 is (1,0,1).
type cornerTable [8][3]float64

// RYB mixing is empirically modeled, not a linear transform, so each
// conversion direction interpolates over its own measured corner table.
// See https://math.stackexchange.com/questions/305395 for the derivation.
var (
	// rybToRGBGossett is the table from Gossett & Chen, "Paint Inspired
	// Color Compositing". Its (1,1,1) corner is dark brown rather than
	// black, so mixing all three paints can never reach #000000. Kept for
	// comparison; not selected.
	rybToRGBGossett = cornerTable{
		{1.0, 1.0, 1.0},     // 000 white
		{0.163, 0.373, 0.6}, // 001 blue
		{1.0, 1.0, 0.0},     // 010 yellow
		{0.0, 0.66, 0.2},    // 011 green
		{1.0, 0.0, 0.0},     // 100 red
		{0.5, 0.0, 0.5},     // 101 purple
		{1.0, 0.5, 0.0},     // 110 orange
		{0.2, 0.094, 0.0},   // 111 near-black brown
	}

	// rybToRGBIrisson is the Irisson variant, modified so the (1,1,1)
	// corner is true black. This is the shipped table; switching to the
	// Gossett table would change every palette output.
	rybToRGBIrisson = cornerTable{
		{1.0, 1.0, 1.0},     // 000 white
		{0.163, 0.373, 0.6}, // 001 blue
		{1.0, 1.0, 0.0},     // 010 yellow
		{0.0, 0.66, 0.2},    // 011 green
		{1.0, 0.0, 0.0},     // 100 red
		{0.5, 0.5, 0.9},     // 101 purple
		{1.0, 0.5, 0.0},     // 110 orange
		{0.0, 0.0, 0.0},     // 111 black
	}

	// rgbToRYBTable interpolates the reverse direction. It is an
	// independently chosen table, not the inverse of the forward one;
	// RGB colors without an RYB representation land on an approximation.
	rgbToRYBTable = cornerTable{
		{1.0, 1.0, 1.0},     // 000
		{0.0, 0.0, 1.0},     // 001
		{0.0, 1.0, 0.483},   // 010
		{0.0, 0.053, 0.21},  // 011
		{1.0, 0.0, 0.0},     // 100
		{0.309, 0.0, 0.469}, // 101
		{0.0, 1.0, 0.0},     // 110
		{0.0, 0.0, 0.0},     // 111
	}
)

// trilerp interpolates a point (x, y, z) in the unit cube over the given
// corner table. Each corner's weight is the product, per dimension, of the
// coordinate when the corner bit is 1 or its complement when 0.
func trilerp(x, y, z float64, table cornerTable) (float64, float64, float64) {
	xi, yi, zi := 1-x, 1-y, 1-z
	weights := [8]float64{
		xi * yi * zi, // 000
		xi * yi * z,  // 001
		xi * y * zi,  // 010
		xi * y * z,   // 011
		x * yi * zi,  // 100
		x * yi * z,   // 101
		x * y * zi,   // 110
		x * y * z,    // 111
	}

	var out [3]float64
	for corner, w := range weights {
		out[0] += w * table[corner][0]
		out[1] += w * table[corner][1]
		out[2] += w * table[corner][2]
	}
	return out[0], out[1], out[2]
}

// RYBToRGB converts an RYB color to displayable RGB using the Irisson
// corner table. The anchors are exact: RYB(0,0,0) is white #ffffff and
// RYB(255,255,255) is black #000000.
func RYBToRGB(c RYB) RGB {
	r, g, b := trilerp(float64(c.R)/255, float64(c.Y)/255, float64(c.B)/255, rybToRGBIrisson)
	return RGB{
		R: roundHalfUp(r * 255),
		G: roundHalfUp(g * 255),
		B: roundHalfUp(b * 255),
	}
}

// RGBToRYB approximates an RGB color in RYB space. Round-tripping through
// RYBToRGB is not exact; the two color solids are not congruent.
func RGBToRYB(c RGB) RYB {
	r, y, b := trilerp(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, rgbToRYBTable)
	return RYB{
		R: roundHalfUp(r * 255),
		Y: roundHalfUp(y * 255),
		B: roundHalfUp(b * 255),
	}
}
