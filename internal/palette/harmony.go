package palette

// Harmony names a palette-generation rule. The string form is what the
// server tools and configuration accept.
type Harmony string

const (
	HarmonyComplementary Harmony = "complementary"
	HarmonyAnalogous     Harmony = "analogous"
	HarmonyTriadic       Harmony = "triadic"
	HarmonyCompound      Harmony = "compound"
	HarmonySquare        Harmony = "square"
	HarmonyRectangle     Harmony = "rectangle"
	HarmonyMonochrome    Harmony = "monochrome"
)

// Harmonies lists every supported harmony, in menu order.
func Harmonies() []Harmony {
	return []Harmony{
		HarmonyComplementary,
		HarmonyAnalogous,
		HarmonyTriadic,
		HarmonyCompound,
		HarmonySquare,
		HarmonyRectangle,
		HarmonyMonochrome,
	}
}

// ParseHarmony validates a harmony name. Returns a *ParseError for names
// outside the supported set.
func ParseHarmony(s string) (Harmony, error) {
	for _, h := range Harmonies() {
		if s == string(h) {
			return h, nil
		}
	}
	return "", &ParseError{Input: s, Reason: "unknown harmony"}
}

// Harmonize applies the named harmony to the color. The result order is
// part of the contract; callers map it directly onto display slots.
// Unknown harmonies return nil; use ParseHarmony to validate external
// input first.
func (c Color) Harmonize(h Harmony) []Color {
	switch h {
	case HarmonyComplementary:
		return c.Complement()
	case HarmonyAnalogous:
		return c.Analogous()
	case HarmonyTriadic:
		return c.Triad()
	case HarmonyCompound:
		return c.Compound()
	case HarmonySquare:
		return c.Square()
	case HarmonyRectangle:
		return c.Rectangle()
	case HarmonyMonochrome:
		return c.Shades()
	default:
		return nil
	}
}

// Complement returns the complementary color, 180 degrees around the color
// wheel.
func (c Color) Complement() []Color {
	return []Color{c.Rotate(180)}
}

// Triad returns the triadic colors, +/-120 degrees around the color wheel.
func (c Color) Triad() []Color {
	return []Color{c.Rotate(120), c.Rotate(-120)}
}

// Analogous returns the analogous colors, +/-30 degrees around the color
// wheel.
func (c Color) Analogous() []Color {
	return []Color{c.Rotate(30), c.Rotate(-30)}
}

// Compound returns the compound (split-complementary) colors, +/-150
// degrees around the color wheel.
func (c Color) Compound() []Color {
	return []Color{c.Rotate(150), c.Rotate(-150)}
}

// Square returns the square harmony, 90-degree increments around the color
// wheel.
func (c Color) Square() []Color {
	return []Color{c.Rotate(90), c.Rotate(180), c.Rotate(270)}
}

// Rectangle returns the rectangular harmony at 150, 180, and 330 degrees.
func (c Color) Rectangle() []Color {
	return []Color{c.Rotate(150), c.Rotate(180), c.Rotate(330)}
}

// Shades returns lighter and darker variants of the color: lightness
// halved, shifted -20, shifted +20, and scaled 1.5x, in that order.
func (c Color) Shades() []Color {
	return []Color{
		c.Lighten(0, 0.5),
		c.Lighten(-20, 1),
		c.Lighten(20, 1),
		c.Lighten(0, 1.5),
	}
}
