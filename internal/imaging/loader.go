package imaging

import (
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"
)

// FrameCache keeps decoded background frames keyed by path so repeated
// renders over the same camera frame skip the disk.
//
// FrameCache is safe for concurrent use.
type FrameCache struct {
	mu     sync.RWMutex
	frames map[string]image.Image
}

// NewFrameCache returns an empty cache.
func NewFrameCache() *FrameCache {
	return &FrameCache{frames: make(map[string]image.Image)}
}

// Load returns the frame at path, decoding it on first use. PNG, JPEG and
// GIF are supported. Paths are cached verbatim, so a relative and an
// absolute path to the same file are two entries.
func (c *FrameCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.frames[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load frame: %w", err)
	}

	c.mu.Lock()
	c.frames[path] = img
	c.mu.Unlock()
	return img, nil
}

// Evict drops path from the cache.
func (c *FrameCache) Evict(path string) {
	c.mu.Lock()
	delete(c.frames, path)
	c.mu.Unlock()
}

// Len reports how many frames are cached.
func (c *FrameCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.frames)
}

// fitFrame scales and centre-crops frame to a size x size canvas.
func fitFrame(frame image.Image, size int) *image.NRGBA {
	b := frame.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return imaging.Clone(frame)
	}
	return imaging.Fill(frame, size, size, imaging.Center, imaging.Lanczos)
}
