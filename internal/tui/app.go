package tui

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/palettepal/palettepal/internal/palette"
)

// EntryMode selects how the three sliders map onto a color.
type EntryMode int

const (
	// ModeHSL edits hue, saturation, and lightness.
	ModeHSL EntryMode = iota
	// ModeRYB edits HSL with the hue interpreted on the artist's wheel.
	ModeRYB
	// ModeRGB edits the red, green, and blue channels directly.
	ModeRGB
)

func (m EntryMode) String() string {
	switch m {
	case ModeRYB:
		return "HSL (RYB Space)"
	case ModeRGB:
		return "RGB"
	default:
		return "HSL"
	}
}

// paletteCustom is the palette mode where each swatch is set individually.
const paletteCustom = "custom"

// paletteModes is the cycle order for the p key.
var paletteModes = []string{
	paletteCustom,
	string(palette.HarmonyComplementary),
	string(palette.HarmonyAnalogous),
	string(palette.HarmonyTriadic),
	string(palette.HarmonyCompound),
	string(palette.HarmonySquare),
	string(palette.HarmonyRectangle),
	string(palette.HarmonyMonochrome),
}

// Focus targets, cycled with Tab.
const (
	focusSlider1 = iota
	focusSlider2
	focusSlider3
	focusRGB
	focusHSL
	focusHex
	focusName
)

// Config sets the picker's starting state.
type Config struct {
	// Initial is the color shown at startup.
	Initial palette.Color

	// RYBSpace starts the picker in the artist's colorspace entry mode.
	RYBSpace bool
}

// App is the picker's complete state. Drawing reads the state; key handling
// mutates it.
type App struct {
	screen tcell.Screen

	sliders    [3]*Slider
	mode       EntryMode
	paletteIdx int
	normalized bool

	swatches [5]Swatch
	selected int

	focus     int
	rgbField  textField
	hslField  textField
	hexField  textField
	nameField textField

	status string
	rng    *rand.Rand
}

// New builds the picker in its startup state. The terminal is not touched
// until Run.
func New(cfg Config) *App {
	a := &App{
		sliders: [3]*Slider{
			{Label: "H", Max: 360, Wrap: true, Param: ParamHue},
			{Label: "S", Max: 100, Param: ParamSaturation},
			{Label: "L", Max: 100, Param: ParamLightness},
		},
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if cfg.RYBSpace {
		a.mode = ModeRYB
	}

	for i := range a.swatches {
		a.swatches[i] = Swatch{
			Color:   cfg.Initial,
			Label:   fmt.Sprintf("<F%d>", i+1),
			Visible: true,
		}
	}
	a.setSliders(cfg.Initial)
	return a
}

// space is the colorspace new slider colors are constructed in.
func (a *App) space() palette.Space {
	if a.mode == ModeRYB {
		return palette.SpaceRYB
	}
	return palette.SpaceStandard
}

// color builds the current color from the slider values.
func (a *App) color() palette.Color {
	v1 := float64(a.sliders[0].Value)
	v2 := float64(a.sliders[1].Value)
	v3 := float64(a.sliders[2].Value)
	if a.mode == ModeRGB {
		return palette.FromRGB(a.sliders[0].Value, a.sliders[1].Value, a.sliders[2].Value, palette.SpaceStandard)
	}
	return palette.New(v1, v2, v3, a.space())
}

// setSliders loads a color into the sliders per the current entry mode and
// refreshes the gradients.
func (a *App) setSliders(c palette.Color) {
	if a.mode == ModeRGB {
		rgb := c.RGB()
		a.sliders[0].Value = rgb.R
		a.sliders[1].Value = rgb.G
		a.sliders[2].Value = rgb.B
	} else {
		hsl := c.HSL()
		a.sliders[0].Value = int(hsl.H)
		a.sliders[1].Value = int(hsl.S)
		a.sliders[2].Value = int(hsl.L)
	}
	a.updateGradients()
}

// updateGradients rebuilds each slider's gradient base from the other two
// sliders, so every bar previews what moving that slider would produce.
func (a *App) updateGradients() {
	v1, v2, v3 := a.sliders[0].Value, a.sliders[1].Value, a.sliders[2].Value
	if a.mode == ModeRGB {
		a.sliders[0].Base = palette.FromRGB(0, v2, v3, palette.SpaceStandard)
		a.sliders[1].Base = palette.FromRGB(v1, 0, v3, palette.SpaceStandard)
		a.sliders[2].Base = palette.FromRGB(v1, v2, 0, palette.SpaceStandard)
		return
	}
	space := a.space()
	a.sliders[0].Base = palette.New(0, float64(v2), float64(v3), space)
	a.sliders[1].Base = palette.New(float64(v1), 100, float64(v3), space)
	a.sliders[2].Base = palette.New(float64(v1), float64(v2), 50, space)
}

// paletteMode is the current p-cycle entry.
func (a *App) paletteMode() string {
	return paletteModes[a.paletteIdx]
}

// setColor routes a new color into the swatches. In custom mode only the
// selected swatch changes; in a harmony mode the base swatch changes and
// the rest are refilled from it.
func (a *App) setColor(c palette.Color) {
	if a.paletteMode() == paletteCustom {
		a.swatches[a.selected].Color = c
		return
	}
	a.swatches[0].Color = c
	a.fillPalette()
}

// fillPalette computes the harmony of swatch 1 into swatches 2-5, hiding
// any swatch beyond the harmony's size.
func (a *App) fillPalette() {
	mode := a.paletteMode()
	if mode == paletteCustom {
		for i := range a.swatches {
			a.swatches[i].Visible = true
		}
		return
	}

	colors := a.swatches[0].Color.Harmonize(palette.Harmony(mode))
	for i, c := range colors {
		if i+1 < len(a.swatches) {
			a.swatches[i+1].Color = c
		}
	}
	for i := range a.swatches {
		a.swatches[i].Visible = i < len(colors)+1
	}
}

// selectedSwatch returns the swatch the F keys last picked.
func (a *App) selectedSwatch() *Swatch {
	return &a.swatches[a.selected]
}

// sliderChanged applies a slider edit: refresh gradients and push the new
// color into the swatches.
func (a *App) sliderChanged() {
	a.updateGradients()
	a.setColor(a.color())
}

// cycleEntryMode steps HSL -> RYB -> RGB, reloading the sliders so the
// displayed color is preserved across the switch.
func (a *App) cycleEntryMode() {
	c := a.selectedSwatch().Color
	a.mode = (a.mode + 1) % 3

	if a.mode == ModeRGB {
		a.sliders[0].Label, a.sliders[0].Max, a.sliders[0].Param = "R", 255, ParamRed
		a.sliders[1].Label, a.sliders[1].Max, a.sliders[1].Param = "G", 255, ParamGreen
		a.sliders[2].Label, a.sliders[2].Max, a.sliders[2].Param = "B", 255, ParamBlue
	} else {
		a.sliders[0].Label, a.sliders[0].Max, a.sliders[0].Param = "H", 360, ParamHue
		a.sliders[1].Label, a.sliders[1].Max, a.sliders[1].Param = "S", 100, ParamSaturation
		a.sliders[2].Label, a.sliders[2].Max, a.sliders[2].Param = "L", 100, ParamLightness
	}

	// Hue/sat/light numbers carry over into RYB space unchanged; the hue
	// is simply reinterpreted on the artist's wheel.
	if a.mode == ModeRYB {
		hsl := c.HSL()
		c = palette.New(hsl.H, hsl.S, hsl.L, palette.SpaceRYB)
	}
	a.setSliders(c)
	a.setColor(a.color())

	// Text entry needs the standard spaces to round-trip.
	if a.mode == ModeRYB && a.focus >= focusRGB {
		a.focus = focusSlider1
	}
}

// cyclePalette steps through custom plus the seven harmonies.
func (a *App) cyclePalette() {
	a.paletteIdx = (a.paletteIdx + 1) % len(paletteModes)
	a.fillPalette()
	if a.selected >= len(a.swatches) || !a.swatches[a.selected].Visible {
		a.selected = 0
	}
	a.status = "Palette: " + a.paletteMode()
}

// selectSwatch handles F1-F5.
func (a *App) selectSwatch(i int) {
	if i < 0 || i >= len(a.swatches) || !a.swatches[i].Visible {
		return
	}
	a.selected = i
	if a.paletteMode() == paletteCustom {
		a.setSliders(a.swatches[i].Color)
	}
}

// randomize picks a random color, keeping saturation and lightness away
// from the washed-out extremes.
func (a *App) randomize() {
	h := a.rng.Intn(361)
	s := 20 + a.rng.Intn(81)
	l := 20 + a.rng.Intn(61)
	c := palette.New(float64(h), float64(s), float64(l), a.space())
	a.setSliders(c)
	a.setColor(a.color())
}

// copyColor places the selected swatch's value on the system clipboard via
// the terminal's OSC 52 escape.
func (a *App) copyColor(format string) {
	value := copyValue(a.selectedSwatch().Color, format, a.normalized)
	if a.screen != nil {
		a.screen.SetClipboard([]byte(value))
	}
	a.status = fmt.Sprintf("Copied %s: %s", format, value)
}

// submitRGB applies a typed "(r, g, b)" entry, scaled up from 0-1 values
// when the normalized toggle is on. Parse errors leave the color alone.
func (a *App) submitRGB(s string) {
	r, g, b, err := parseTriple(s)
	if err != nil {
		a.status = "Invalid RGB: " + s
		return
	}
	if a.normalized {
		r, g, b = r*255, g*255, b*255
	}
	c := palette.FromRGB(int(r), int(g), int(b), palette.SpaceStandard)
	a.setSliders(c)
	a.setColor(a.color())
	a.status = ""
}

// submitHSL applies a typed "(h, s, l)" entry, scaled up from 0-1 values
// when the normalized toggle is on.
func (a *App) submitHSL(s string) {
	h, sat, l, err := parseTriple(s)
	if err != nil {
		a.status = "Invalid HSL: " + s
		return
	}
	if a.normalized {
		h, sat, l = h*360, sat*100, l*100
	}
	c := palette.New(h, sat, l, palette.SpaceStandard)
	a.setSliders(c)
	a.setColor(a.color())
	a.status = ""
}

// submitHex applies a typed hex entry. Parse errors leave the color alone.
func (a *App) submitHex(s string) {
	c, err := palette.FromHex(s)
	if err != nil {
		a.status = "Invalid hex: " + s
		return
	}
	a.setSliders(c)
	a.setColor(a.color())
	a.status = ""
}

// submitName applies a typed CSS name entry. Unknown names leave the color
// alone.
func (a *App) submitName(s string) {
	c, err := palette.FromName(s)
	if err != nil {
		a.status = "Unknown name: " + s
		return
	}
	a.setSliders(c)
	a.setColor(a.color())
	a.status = ""
}

// cycleFocus moves Tab focus across the sliders and, outside RYB mode, the
// readout entry fields.
func (a *App) cycleFocus() {
	limit := focusName + 1
	if a.mode == ModeRYB {
		limit = focusSlider3 + 1
	}
	a.focus = (a.focus + 1) % limit
}

// Run owns the terminal until the user quits.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	a.screen = screen
	defer screen.Fini()

	log.WithField("mode", a.mode.String()).Debug("picker started")

	for {
		a.draw()
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if !a.handleKey(ev) {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// handleKey mutates state for one keystroke. Returns false to quit.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	// Field editing captures every rune until Enter or Escape.
	if a.focus >= focusRGB {
		var field *textField
		var submit func(string)
		switch a.focus {
		case focusRGB:
			field, submit = &a.rgbField, a.submitRGB
		case focusHSL:
			field, submit = &a.hslField, a.submitHSL
		case focusHex:
			field, submit = &a.hexField, a.submitHex
		default:
			field, submit = &a.nameField, a.submitName
		}

		switch ev.Key() {
		case tcell.KeyEnter:
			submit(field.take())
		case tcell.KeyEscape:
			field.take()
			a.focus = focusSlider1
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			field.backspace()
		case tcell.KeyTab:
			field.take()
			a.cycleFocus()
		case tcell.KeyRune:
			field.typeRune(ev.Rune())
		}
		return true
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		a.cycleFocus()
		return true
	case tcell.KeyUp, tcell.KeyRight:
		delta := 1
		if ev.Modifiers()&tcell.ModShift != 0 {
			delta = 10
		}
		a.sliders[a.focus].Increment(delta)
		a.sliderChanged()
		return true
	case tcell.KeyDown, tcell.KeyLeft:
		delta := -1
		if ev.Modifiers()&tcell.ModShift != 0 {
			delta = -10
		}
		a.sliders[a.focus].Increment(delta)
		a.sliderChanged()
		return true
	case tcell.KeyF1, tcell.KeyF2, tcell.KeyF3, tcell.KeyF4, tcell.KeyF5:
		a.selectSwatch(int(ev.Key() - tcell.KeyF1))
		return true
	}

	if ev.Key() != tcell.KeyRune {
		return true
	}

	r := ev.Rune()
	switch {
	case r >= '0' && r <= '9':
		a.sliders[a.focus].PushDigit(int(r - '0'))
		a.sliderChanged()
	case r == 'q':
		return false
	case r == 'm':
		a.cycleEntryMode()
	case r == 'p':
		a.cyclePalette()
	case r == 'n':
		a.normalized = !a.normalized
	case r == '!':
		a.randomize()
	case r == 'h':
		a.copyColor("hsl")
	case r == 'r':
		a.copyColor("rgb")
	case r == 'x':
		a.copyColor("hex")
	}
	return true
}

// draw renders the whole frame.
func (a *App) draw() {
	s := a.screen
	s.Clear()
	width, height := s.Size()

	y := 0
	for i, slider := range a.sliders {
		slider.draw(s, 0, y, width, a.focus == i)
		y += 2
	}
	y++

	c := a.selectedSwatch().Color
	labelStyle := tcell.StyleDefault.Bold(true)

	drawText(s, 1, y, labelStyle, "Mode ")
	drawText(s, 7, y, tcell.StyleDefault, a.mode.String())
	y++

	drawText(s, 1, y, labelStyle, "RGB  ")
	a.drawField(s, 7, y, &a.rgbField, a.focus == focusRGB, formatRGB(c, a.normalized))
	y++

	drawText(s, 1, y, labelStyle, "HSL  ")
	a.drawField(s, 7, y, &a.hslField, a.focus == focusHSL, formatHSL(c, a.normalized))
	y++

	drawText(s, 1, y, labelStyle, "Hex  ")
	a.drawField(s, 7, y, &a.hexField, a.focus == focusHex, c.Hex())
	y++

	drawText(s, 1, y, labelStyle, "Name ")
	a.drawField(s, 7, y, &a.nameField, a.focus == focusName, formatName(c))
	y++

	drawText(s, 1, y, labelStyle, "Norm ")
	norm := "off"
	if a.normalized {
		norm = "on"
	}
	drawText(s, 7, y, tcell.StyleDefault, norm)
	y++

	drawText(s, 1, y, labelStyle, "Palette ")
	drawText(s, 10, y, tcell.StyleDefault, a.paletteMode())
	y += 2

	swatchHeight := height - y - 2
	if swatchHeight > 1 {
		drawSwatches(s, a.swatches[:], a.selected, 0, y, width, swatchHeight)
	}

	if a.status != "" {
		drawText(s, 1, height-1, tcell.StyleDefault.Dim(true), a.status)
	}

	s.Show()
}

// drawField renders a readout field, showing the edit buffer with a cursor
// mark while the field is focused and being typed into.
func (a *App) drawField(s tcell.Screen, x, y int, field *textField, focused bool, value string) {
	style := tcell.StyleDefault
	if focused {
		style = style.Underline(true)
		if field.editing {
			value = field.buffer
		}
		drawText(s, x, y, style, value+"_")
		return
	}
	drawText(s, x, y, style, value)
}
