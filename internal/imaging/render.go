package imaging

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/gaze-fov/internal/fov"
	"github.com/ironsheep/gaze-fov/internal/scene"
)

// Label position on the canvas.
const (
	labelX = 10
	labelY = 30
)

// RenderOptions controls Render.
type RenderOptions struct {
	Palette Palette `json:"palette"`

	// FOVThickness is the stroke width of the wedge boundary arrows.
	FOVThickness int `json:"fov_thickness"`

	// WedgeOpacity in [0,1] fills the wedge translucently; 0 leaves it empty.
	WedgeOpacity float64 `json:"wedge_opacity"`

	// ShowLowConfidence draws objects that were skipped for low confidence.
	ShowLowConfidence bool `json:"show_low_confidence"`

	// GridSpacing draws a coordinate grid every GridSpacing pixels when > 0.
	GridSpacing int  `json:"grid_spacing"`
	GridLabels  bool `json:"grid_labels"`

	// Background replaces the plain canvas with a camera frame, fitted to
	// the scene size.
	Background image.Image `json:"-"`
}

// DefaultRenderOptions returns the standard look.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Palette:      DefaultPalette(),
		FOVThickness: 3,
	}
}

// Render draws a classified scene: the context box, the gaze arrow, the
// two wedge boundary arrows, every object coloured by its bucket and the
// DISTRACTED/FOCUS! label.
func Render(s *scene.Scene, res *fov.Result, opts RenderOptions) (*image.RGBA, error) {
	if s.ImageSize <= 0 {
		return nil, fmt.Errorf("%w: image size %d must be positive", fov.ErrInvalidInput, s.ImageSize)
	}
	if len(res.EdgeCounts) != len(s.Objects) {
		return nil, fmt.Errorf("%w: result covers %d objects, scene has %d", fov.ErrInvalidInput, len(res.EdgeCounts), len(s.Objects))
	}
	pal, err := opts.Palette.resolve()
	if err != nil {
		return nil, err
	}
	thickness := opts.FOVThickness
	if thickness <= 0 {
		thickness = 1
	}

	var canvas *image.NRGBA
	if opts.Background != nil {
		if opts.Background.Bounds().Empty() {
			return nil, fmt.Errorf("%w: background frame is empty", fov.ErrInvalidInput)
		}
		canvas = fitFrame(opts.Background, s.ImageSize)
	} else {
		canvas = imaging.New(s.ImageSize, s.ImageSize, pal.background)
	}
	img := image.NewRGBA(canvas.Bounds())
	draw.Draw(img, img.Bounds(), canvas, image.Point{}, draw.Src)

	if opts.GridSpacing > 0 {
		drawGrid(img, opts.GridSpacing, opts.GridLabels, pal.grid)
	}

	if opts.WedgeOpacity > 0 {
		layer := image.NewRGBA(img.Bounds())
		draw.Draw(layer, layer.Bounds(), img, image.Point{}, draw.Src)
		fillTriangle(layer, s.Gaze.Start, res.FOVPoint1, res.FOVPoint2, pal.wedge)
		img = blend.Opacity(img, layer, opts.WedgeOpacity)
	}

	drawRect(img, s.Context, 1, pal.context)
	drawArrow(img, s.Gaze.Start, res.FOVPoint1, thickness, pal.fov)
	drawArrow(img, s.Gaze.Start, res.FOVPoint2, thickness, pal.fov)
	drawArrow(img, s.Gaze.Start, s.Gaze.End, 1, pal.gaze)

	for i, b := range res.Buckets() {
		if b == fov.BucketLowConfidence && !opts.ShowLowConfidence {
			continue
		}
		drawRect(img, s.Objects[i], 1, pal.buckets[b])
	}

	drawText(img, labelX, labelY, res.Label, pal.label)
	return img, nil
}
