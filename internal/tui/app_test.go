package tui

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/palettepal/palettepal/internal/palette"
)

func testApp() *App {
	a := New(Config{Initial: palette.New(250, 100, 50, palette.SpaceStandard)})
	a.rng = rand.New(rand.NewSource(1))
	return a
}

func TestNewApp_InitialState(t *testing.T) {
	a := testApp()

	if a.sliders[0].Value != 250 || a.sliders[1].Value != 100 || a.sliders[2].Value != 50 {
		t.Errorf("slider values = %d/%d/%d, want 250/100/50",
			a.sliders[0].Value, a.sliders[1].Value, a.sliders[2].Value)
	}
	if a.mode != ModeHSL {
		t.Errorf("mode = %v, want HSL", a.mode)
	}
	if a.paletteMode() != paletteCustom {
		t.Errorf("palette mode = %q, want custom", a.paletteMode())
	}
	for i, sw := range a.swatches {
		if !sw.Visible {
			t.Errorf("swatch %d not visible", i)
		}
		if sw.Color.Hex() != "#2a00ff" {
			t.Errorf("swatch %d = %s, want #2a00ff", i, sw.Color.Hex())
		}
	}
}

func TestNewApp_RYBDefault(t *testing.T) {
	a := New(Config{Initial: palette.New(0, 100, 50, palette.SpaceRYB), RYBSpace: true})
	if a.mode != ModeRYB {
		t.Errorf("mode = %v, want RYB", a.mode)
	}
	if a.color().Space() != palette.SpaceRYB {
		t.Errorf("color space = %v, want ryb", a.color().Space())
	}
}

func TestCycleEntryMode(t *testing.T) {
	a := testApp()

	a.cycleEntryMode() // HSL -> RYB
	if a.mode != ModeRYB {
		t.Fatalf("mode = %v, want RYB", a.mode)
	}
	// The HSL numbers carry over, reinterpreted on the artist's wheel.
	if a.sliders[0].Value != 250 || a.sliders[1].Value != 100 || a.sliders[2].Value != 50 {
		t.Errorf("RYB slider values = %d/%d/%d, want 250/100/50",
			a.sliders[0].Value, a.sliders[1].Value, a.sliders[2].Value)
	}
	if a.color().Space() != palette.SpaceRYB {
		t.Errorf("color space = %v, want ryb", a.color().Space())
	}

	a.cycleEntryMode() // RYB -> RGB
	if a.mode != ModeRGB {
		t.Fatalf("mode = %v, want RGB", a.mode)
	}
	if a.sliders[0].Label != "R" || a.sliders[0].Max != 255 {
		t.Errorf("slider 1 = %s/%d, want R/255", a.sliders[0].Label, a.sliders[0].Max)
	}

	a.cycleEntryMode() // RGB -> HSL
	if a.mode != ModeHSL {
		t.Fatalf("mode = %v, want HSL", a.mode)
	}
	if a.sliders[0].Label != "H" || a.sliders[0].Max != 360 {
		t.Errorf("slider 1 = %s/%d, want H/360", a.sliders[0].Label, a.sliders[0].Max)
	}
}

func TestCycleEntryMode_RGBValues(t *testing.T) {
	a := New(Config{Initial: palette.FromRGB(255, 0, 0, palette.SpaceStandard)})
	a.cycleEntryMode() // -> RYB
	a.cycleEntryMode() // -> RGB

	// Red survives both hops: RYB reinterpretation keeps hue 0 at red.
	if a.sliders[0].Value != 255 || a.sliders[1].Value != 0 || a.sliders[2].Value != 0 {
		t.Errorf("RGB slider values = %d/%d/%d, want 255/0/0",
			a.sliders[0].Value, a.sliders[1].Value, a.sliders[2].Value)
	}
}

func TestCyclePalette_Triadic(t *testing.T) {
	a := testApp()

	// custom -> complementary -> analogous -> triadic
	a.cyclePalette()
	a.cyclePalette()
	a.cyclePalette()
	if a.paletteMode() != string(palette.HarmonyTriadic) {
		t.Fatalf("palette mode = %q, want triadic", a.paletteMode())
	}

	// Triad yields two companions: three visible swatches.
	wantVisible := []bool{true, true, true, false, false}
	for i, sw := range a.swatches {
		if sw.Visible != wantVisible[i] {
			t.Errorf("swatch %d visible = %v, want %v", i, sw.Visible, wantVisible[i])
		}
	}
	if h := a.swatches[1].Color.HSL().H; h != 10 {
		t.Errorf("swatch 2 hue = %v, want 10", h)
	}
	if h := a.swatches[2].Color.HSL().H; h != 130 {
		t.Errorf("swatch 3 hue = %v, want 130", h)
	}
}

func TestCyclePalette_MonochromeFillsAll(t *testing.T) {
	a := testApp()
	a.paletteIdx = len(paletteModes) - 2
	a.cyclePalette()
	if a.paletteMode() != string(palette.HarmonyMonochrome) {
		t.Fatalf("palette mode = %q, want monochrome", a.paletteMode())
	}
	for i, sw := range a.swatches {
		if !sw.Visible {
			t.Errorf("swatch %d hidden, monochrome fills all five", i)
		}
	}
}

func TestSetColor_CustomChangesOnlySelected(t *testing.T) {
	a := testApp()
	a.selected = 2

	green := palette.FromRGB(0, 255, 0, palette.SpaceStandard)
	a.setColor(green)

	if a.swatches[2].Color.Hex() != "#00ff00" {
		t.Errorf("selected swatch = %s, want #00ff00", a.swatches[2].Color.Hex())
	}
	if a.swatches[0].Color.Hex() != "#2a00ff" {
		t.Errorf("swatch 1 changed to %s", a.swatches[0].Color.Hex())
	}
}

func TestSelectSwatch(t *testing.T) {
	a := testApp()
	a.swatches[3].Color = palette.FromRGB(0, 128, 128, palette.SpaceStandard)

	a.selectSwatch(3)
	if a.selected != 3 {
		t.Fatalf("selected = %d, want 3", a.selected)
	}
	// Custom mode loads the swatch into the sliders.
	if a.sliders[0].Value != 180 {
		t.Errorf("hue slider = %d, want 180", a.sliders[0].Value)
	}

	// Hidden swatches cannot be selected.
	a.swatches[4].Visible = false
	a.selectSwatch(4)
	if a.selected != 3 {
		t.Errorf("selected = %d, selecting a hidden swatch should be ignored", a.selected)
	}
}

func TestRandomize_StaysInRange(t *testing.T) {
	a := testApp()
	for i := 0; i < 50; i++ {
		a.randomize()
		h, s, l := a.sliders[0].Value, a.sliders[1].Value, a.sliders[2].Value
		if h < 0 || h > 360 {
			t.Fatalf("hue %d out of range", h)
		}
		if s < 20 || s > 100 {
			t.Fatalf("saturation %d out of range", s)
		}
		if l < 20 || l > 80 {
			t.Fatalf("lightness %d out of range", l)
		}
	}
}

func TestSubmitHex(t *testing.T) {
	a := testApp()
	a.submitHex("#00ff00")
	if a.sliders[0].Value != 120 || a.sliders[1].Value != 100 || a.sliders[2].Value != 50 {
		t.Errorf("slider values = %d/%d/%d, want 120/100/50",
			a.sliders[0].Value, a.sliders[1].Value, a.sliders[2].Value)
	}

	// Parse failures leave the color alone.
	a.submitHex("#nope")
	if a.sliders[0].Value != 120 {
		t.Errorf("bad hex changed hue slider to %d", a.sliders[0].Value)
	}
	if a.status == "" {
		t.Error("bad hex should set the status line")
	}
}

func TestSubmitName(t *testing.T) {
	a := testApp()
	a.submitName("aqua")
	if a.selectedSwatch().Color.Hex() != "#00ffff" {
		t.Errorf("swatch = %s, want #00ffff", a.selectedSwatch().Color.Hex())
	}

	a.submitName("not-a-color")
	if a.selectedSwatch().Color.Hex() != "#00ffff" {
		t.Errorf("unknown name changed swatch to %s", a.selectedSwatch().Color.Hex())
	}
}

func TestSubmitRGB(t *testing.T) {
	a := testApp()
	a.submitRGB("(0, 255, 255)")
	if a.selectedSwatch().Color.Hex() != "#00ffff" {
		t.Errorf("swatch = %s, want #00ffff", a.selectedSwatch().Color.Hex())
	}

	a.normalized = true
	a.submitRGB("1, 0, 0")
	if a.selectedSwatch().Color.Hex() != "#ff0000" {
		t.Errorf("normalized entry gave %s, want #ff0000", a.selectedSwatch().Color.Hex())
	}

	a.submitRGB("garbage")
	if a.selectedSwatch().Color.Hex() != "#ff0000" {
		t.Errorf("bad entry changed swatch to %s", a.selectedSwatch().Color.Hex())
	}
}

func TestSubmitHSL(t *testing.T) {
	a := testApp()
	a.submitHSL("(120, 100, 50)")
	if a.sliders[0].Value != 120 {
		t.Errorf("hue slider = %d, want 120", a.sliders[0].Value)
	}

	a.normalized = true
	a.submitHSL("0.5, 1, 0.5")
	if a.sliders[0].Value != 180 {
		t.Errorf("normalized entry set hue %d, want 180", a.sliders[0].Value)
	}
}

func TestCopyColor_NoScreen(t *testing.T) {
	a := testApp()
	a.copyColor("hex")
	if a.status != "Copied hex: #2a00ff" {
		t.Errorf("status = %q", a.status)
	}
}

func TestCycleFocus(t *testing.T) {
	a := testApp()
	for i, want := range []int{focusSlider2, focusSlider3, focusRGB, focusHSL, focusHex, focusName, focusSlider1} {
		a.cycleFocus()
		if a.focus != want {
			t.Fatalf("step %d focus = %d, want %d", i, a.focus, want)
		}
	}

	// RYB mode disables the entry fields.
	a.mode = ModeRYB
	a.focus = focusSlider3
	a.cycleFocus()
	if a.focus != focusSlider1 {
		t.Errorf("focus = %d, RYB mode should skip the entry fields", a.focus)
	}
}

func TestHandleKey(t *testing.T) {
	a := testApp()

	if a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if a.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Escape should quit")
	}

	a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	if !a.normalized {
		t.Error("n should toggle normalized mode")
	}

	a.handleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if a.sliders[0].Value != 251 {
		t.Errorf("arrow up moved hue to %d, want 251", a.sliders[0].Value)
	}
	a.handleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift))
	if a.sliders[0].Value != 261 {
		t.Errorf("shift+up moved hue to %d, want 261", a.sliders[0].Value)
	}

	a.handleKey(tcell.NewEventKey(tcell.KeyF3, 0, tcell.ModNone))
	if a.selected != 2 {
		t.Errorf("F3 selected swatch %d, want 2", a.selected)
	}
}

func TestHandleKey_FieldEditing(t *testing.T) {
	a := testApp()
	a.focus = focusHex

	for _, r := range "#00ff00" {
		a.handleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	// Command keys are plain text while editing.
	if a.normalized {
		t.Error("rune keys must not trigger commands while editing")
	}
	a.handleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if a.selectedSwatch().Color.Hex() != "#00ff00" {
		t.Errorf("swatch = %s, want #00ff00", a.selectedSwatch().Color.Hex())
	}

	// Escape cancels the edit and returns focus to the sliders.
	a.focus = focusName
	a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))
	a.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if a.focus != focusSlider1 {
		t.Errorf("focus = %d, want slider 1 after Escape", a.focus)
	}
	if a.nameField.buffer != "" {
		t.Errorf("buffer = %q, want empty after Escape", a.nameField.buffer)
	}
}
