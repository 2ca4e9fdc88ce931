package extract

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

// Cache holds decoded images keyed by file path so repeated palette
// requests for the same file skip disk I/O. Safe for concurrent use.
//
// Entries stay in memory until Evict or Clear; long-running servers should
// evict files they are done with.
type Cache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewCache returns an empty image cache ready for use.
func NewCache() *Cache {
	return &Cache{images: make(map[string]image.Image)}
}

// Load returns the decoded image for path, reading and decoding it on the
// first request. Decoding goes through the imaging package, which applies
// EXIF orientation so photo palettes are not derived from rotated data.
//
// The cache key is the exact path string; relative and absolute paths to
// the same file cache separately.
func (c *Cache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Evict removes one path from the cache; unknown paths are a no-op.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Clear drops every cached image.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Info describes an image file: pixel dimensions, format guessed from the
// file extension, and on-disk size.
type Info struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Format        string `json:"format"` // "png", "jpeg", "gif", or "unknown"
	FileSizeBytes int64  `json:"file_size_bytes"`
}

// FileInfo loads an image (through the cache) and reports its metadata.
func FileInfo(cache *Cache, path string) (*Info, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	}

	bounds := img.Bounds()
	return &Info{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}
