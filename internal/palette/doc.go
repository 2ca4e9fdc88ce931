// Package palette implements color-space conversion and harmony generation
// for HSL, RGB, RYB, and hexadecimal color representations.
//
// The package has two layers. The conversion layer is a set of stateless
// functions translating between RGB, HSL, RYB, and hex strings. On top of it
// sits Color, an immutable value type holding a canonical HSL triple plus a
// colorspace tag, which exposes derived representations and palette
// (harmony) operations.
//
// # Value Ranges
//
// Colors use the following semantic ranges:
//   - Hue: 0-360 degrees (cyclic; operations wrap, never clamp)
//   - Saturation, Lightness: 0-100 percent (clamped by Lighten/Saturate)
//   - RGB and RYB channels: 0-255
//
// Values outside these ranges are accepted by constructors and conversion
// functions without checking; clamping and wrapping happen only in the
// operations documented to do so.
//
// # Rounding
//
// Every float-to-integer conversion uses round-half-up (add 0.5, truncate).
// This is a bit-exact contract: external consumers may rely on it, along
// with the lowercase "#rrggbb" hex format.
//
// # RYB Color Space
//
// RYB is the artist's red-yellow-blue paint-mixing model. It is related to
// RGB by trilinear interpolation over fixed corner tables, not by a linear
// transform, so RGB→RYB→RGB round trips lose precision. That lossiness is
// inherent to the model.
//
// # Thread Safety
//
// All functions are pure and all types are immutable values; everything in
// this package is safe for concurrent use without synchronization. The CSS
// name table is read-only after package initialization.
package palette
