package extract

import (
	"fmt"
	"image"
	"sort"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/palettepal/palettepal/internal/palette"
)

// Swatch is one dominant color and the share of pixels it covers. Hex and
// RGB are both views of Color, so they always agree.
type Swatch struct {
	Color palette.Color `json:"-"`
	Hex   string        `json:"hex"`
	RGB   palette.RGB   `json:"rgb"`
	Share float64       `json:"share"` // percent of sampled pixels (0-100)
}

// Options tunes palette extraction. The zero value selects the defaults.
type Options struct {
	// MaxSample bounds the longer image edge before analysis; larger
	// images are resized down. Default 256, <=0 selects the default.
	MaxSample int

	// BlurRadius applies a Gaussian pre-blur to suppress speckle and
	// dithering. 0 disables the blur.
	BlurRadius float64

	// MergeDistance is the CIE Lab distance under which two quantized
	// buckets count as the same swatch. Default 0.12, <=0 selects the
	// default.
	MergeDistance float64
}

const (
	defaultMaxSample     = 256
	defaultMergeDistance = 0.12
)

// Dominant reduces an image to its count most dominant colors, ordered by
// descending pixel share. Fewer swatches may be returned when the image has
// fewer distinct color groups. count must be positive.
func Dominant(img image.Image, count int, opts Options) ([]Swatch, error) {
	if count <= 0 {
		return nil, fmt.Errorf("swatch count must be positive, got %d", count)
	}

	maxSample := opts.MaxSample
	if maxSample <= 0 {
		maxSample = defaultMaxSample
	}
	mergeDist := opts.MergeDistance
	if mergeDist <= 0 {
		mergeDist = defaultMergeDistance
	}

	img = downsample(img, maxSample)
	if opts.BlurRadius > 0 {
		img = blur.Gaussian(img, opts.BlurRadius)
	}

	buckets, total := quantize(img)
	groups := mergeBuckets(buckets, mergeDist)

	if len(groups) > count {
		groups = groups[:count]
	}

	swatches := make([]Swatch, len(groups))
	for i, g := range groups {
		c := palette.FromRGB(g.rgb.R, g.rgb.G, g.rgb.B, palette.SpaceStandard)
		swatches[i] = Swatch{
			Color: c,
			Hex:   c.Hex(),
			RGB:   c.RGB(),
			Share: float64(g.count) / float64(total) * 100,
		}
	}
	return swatches, nil
}

// FromFile is the cache-aware convenience form of Dominant with default
// options.
func FromFile(cache *Cache, path string, count int) ([]Swatch, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return Dominant(img, count, Options{})
}

func downsample(img image.Image, maxEdge int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxEdge && h <= maxEdge {
		return img
	}
	if w >= h {
		return imaging.Resize(img, maxEdge, 0, imaging.Lanczos)
	}
	return imaging.Resize(img, 0, maxEdge, imaging.Lanczos)
}

type bucket struct {
	rgb   palette.RGB
	count int
}

// quantize counts pixels into 16-unit-per-channel buckets, the same
// grouping step used for dominant-color analysis of screenshots: colors
// within 16 units per channel collapse together before the perceptual
// merge pass.
func quantize(img image.Image) ([]bucket, int) {
	counts := make(map[palette.RGB]int)
	bounds := img.Bounds()
	total := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			key := palette.RGB{
				R: int(r>>8) / 16 * 16,
				G: int(g>>8) / 16 * 16,
				B: int(b>>8) / 16 * 16,
			}
			counts[key]++
			total++
		}
	}

	buckets := make([]bucket, 0, len(counts))
	for rgb, n := range counts {
		buckets = append(buckets, bucket{rgb: rgb, count: n})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].count != buckets[j].count {
			return buckets[i].count > buckets[j].count
		}
		// Deterministic order for equal counts.
		return less(buckets[i].rgb, buckets[j].rgb)
	})
	return buckets, total
}

// mergeBuckets folds each bucket into the nearest already-accepted group
// when it sits within dist in Lab space; otherwise the bucket starts a new
// group. Buckets arrive ordered by count, so group anchor colors are always
// the most common representative. The result keeps descending-count order.
func mergeBuckets(buckets []bucket, dist float64) []bucket {
	groups := make([]bucket, 0, len(buckets))
	anchors := make([]colorful.Color, 0, len(buckets))

	for _, b := range buckets {
		c := toColorful(b.rgb)
		merged := false
		for i, anchor := range anchors {
			if c.DistanceLab(anchor) < dist {
				groups[i].count += b.count
				merged = true
				break
			}
		}
		if !merged {
			groups = append(groups, b)
			anchors = append(anchors, c)
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count > groups[j].count
	})
	return groups
}

func toColorful(c palette.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func less(a, b palette.RGB) bool {
	if a.R != b.R {
		return a.R < b.R
	}
	if a.G != b.G {
		return a.G < b.G
	}
	return a.B < b.B
}
