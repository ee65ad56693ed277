package scene

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ironsheep/gaze-fov/internal/fov"
	"github.com/ironsheep/gaze-fov/internal/geometry"
)

// Upper limits on scene size. Canvases and object lists are allocated from
// these values, so untrusted input is held to them.
const (
	MaxImageSize = 8192
	MaxObjects   = 1000
)

// Scene is one classification input.
type Scene struct {
	ID        string                 `json:"id,omitempty" yaml:"id,omitempty"`
	ImageSize int                    `json:"image_size" yaml:"image_size"`
	Context   geometry.BoundingBox   `json:"context" yaml:"context"`
	Gaze      geometry.Gaze          `json:"gaze" yaml:"gaze"`
	Objects   []geometry.BoundingBox `json:"objects" yaml:"objects"`
}

// New returns a scene with a fresh ID.
func New(size int, context geometry.BoundingBox, gaze geometry.Gaze, objects []geometry.BoundingBox) *Scene {
	return &Scene{
		ID:        uuid.NewString(),
		ImageSize: size,
		Context:   context,
		Gaze:      gaze,
		Objects:   objects,
	}
}

// Validate checks the parts of a scene the classifier relies on.
func (s *Scene) Validate() error {
	if s.ImageSize <= 0 || s.ImageSize > MaxImageSize {
		return fmt.Errorf("%w: image size %d outside [1,%d]", fov.ErrInvalidInput, s.ImageSize, MaxImageSize)
	}
	if s.ID != "" {
		if _, err := uuid.Parse(s.ID); err != nil {
			return fmt.Errorf("%w: scene id %q: %v", fov.ErrInvalidInput, s.ID, err)
		}
	}
	if s.Gaze.Degenerate() {
		return fmt.Errorf("%w: gaze start equals gaze end", fov.ErrInvalidInput)
	}
	boxes := append([]geometry.BoundingBox{s.Context}, s.Objects...)
	for i, b := range boxes {
		if b.XMin > b.XMax || b.YMin > b.YMax {
			return fmt.Errorf("%w: %s has inverted extent", fov.ErrInvalidInput, boxName(i))
		}
		if b.Confidence < 0 || b.Confidence > 1 {
			return fmt.Errorf("%w: %s confidence %g outside [0,1]", fov.ErrInvalidInput, boxName(i), b.Confidence)
		}
	}
	return nil
}

func boxName(i int) string {
	if i == 0 {
		return "context"
	}
	return fmt.Sprintf("object %d", i-1)
}

// Classify runs c over the scene.
func (s *Scene) Classify(c *fov.Classifier) (*fov.Result, error) {
	return c.Classify(s.Gaze, s.Objects, s.Context)
}
