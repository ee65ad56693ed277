package scene

import (
	"fmt"
	"math/rand"

	"github.com/ironsheep/gaze-fov/internal/fov"
	"github.com/ironsheep/gaze-fov/internal/geometry"
)

// Generator draws random scenes.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Object returns a random box inside a size x size canvas.
// size must be at least 2.
func (g *Generator) Object(size int) geometry.BoundingBox {
	xmax := 1 + g.rng.Intn(size-1)
	xmin := g.rng.Intn(xmax)
	ymax := 1 + g.rng.Intn(size-1)
	ymin := g.rng.Intn(ymax)
	return geometry.Box(float64(xmin), float64(ymin), float64(xmax), float64(ymax), g.rng.Float64())
}

// Gaze returns a gaze whose start and end are distinct whole-pixel points
// inside box. It fails when box holds fewer than two such points.
func (g *Generator) Gaze(box geometry.BoundingBox) (geometry.Gaze, error) {
	x0, y0 := int(box.XMin), int(box.YMin)
	w, h := int(box.XMax)-x0, int(box.YMax)-y0
	if w < 1 || h < 1 || w*h < 2 {
		return geometry.Gaze{}, fmt.Errorf("%w: box %gx%g is too small for a gaze", fov.ErrInvalidInput, box.Width(), box.Height())
	}

	for {
		start := geometry.Point{X: float64(x0 + g.rng.Intn(w)), Y: float64(y0 + g.rng.Intn(h))}
		end := geometry.Point{X: float64(x0 + g.rng.Intn(w)), Y: float64(y0 + g.rng.Intn(h))}
		if start != end {
			return geometry.Gaze{Start: start, End: end}, nil
		}
	}
}

// FOVDegree returns a random opening angle in [30, 90).
func (g *Generator) FOVDegree() float64 {
	return float64(30 + g.rng.Intn(60))
}

// Scene returns a scene of n random objects with a random driver box and a
// gaze inside it.
func (g *Generator) Scene(size, n int) (*Scene, error) {
	if size < 3 || size > MaxImageSize {
		return nil, fmt.Errorf("%w: image size %d outside [3,%d]", fov.ErrInvalidInput, size, MaxImageSize)
	}
	if n < 0 || n > MaxObjects {
		return nil, fmt.Errorf("%w: object count %d outside [0,%d]", fov.ErrInvalidInput, n, MaxObjects)
	}

	objects := make([]geometry.BoundingBox, n)
	for i := range objects {
		objects[i] = g.Object(size)
	}

	for {
		context := g.Object(size)
		gaze, err := g.Gaze(context)
		if err != nil {
			continue
		}
		return New(size, context, gaze, objects), nil
	}
}
