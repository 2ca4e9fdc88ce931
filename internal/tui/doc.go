// Package tui implements the interactive terminal color picker.
//
// The picker presents three gradient sliders (hue/saturation/lightness, or
// red/green/blue in RGB entry mode), a readout panel with editable hex and
// name fields, and a row of five palette swatches filled from the selected
// harmony. All color math is delegated to the palette package; this package
// only maps colors onto terminal cells and keys onto state changes.
//
// # Keys
//
//	Tab         cycle focus (sliders, then the RGB/HSL/hex/name fields)
//	arrows      adjust the focused slider by 1 (Shift: by 10)
//	0-9         type a value into the focused slider
//	m           cycle entry mode: HSL, HSL in RYB space, RGB
//	p           cycle palette: custom plus the seven harmonies
//	n           toggle normalized readout values
//	F1-F5       select a swatch
//	!           randomize the color
//	h, r, x     copy HSL, RGB, or hex to the clipboard (OSC 52)
//	q, Esc      quit
//
// State methods are separated from drawing so behavior is testable without
// a live terminal.
package tui
