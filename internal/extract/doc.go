// Package extract derives color palettes from image files.
//
// It wraps image loading behind a concurrency-safe cache and reduces an
// image to its dominant colors, returned as engine Color values ordered by
// pixel share. Large images are downsampled before analysis and can be
// pre-blurred to keep single-pixel noise out of the palette.
//
// # Grouping
//
// Pixel colors are first quantized to 16-unit buckets per channel, then
// buckets are merged when they sit within a CIE Lab distance threshold of
// an already-accepted swatch. Lab distance approximates perceptual
// similarity far better than RGB distance, so near-identical tones collapse
// into one swatch instead of splitting the share between them.
package extract
