package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/gaze-fov/internal/fov"
	"github.com/ironsheep/gaze-fov/internal/geometry"
)

// Crop extracts the region (x1,y1)-(x2,y2) of img, x2 and y2 exclusive, and
// scales it by scale when scale is positive and not 1.
func Crop(img image.Image, x1, y1, x2, y2 int, scale float64) (image.Image, error) {
	bounds := img.Bounds()
	if x1 < bounds.Min.X || y1 < bounds.Min.Y || x2 > bounds.Max.X || y2 > bounds.Max.Y {
		return nil, fmt.Errorf("%w: crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			fov.ErrInvalidInput, x1, y1, x2, y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("%w: invalid crop region: x1 must be < x2, y1 must be < y2", fov.ErrInvalidInput)
	}

	cropped := imaging.Crop(img, image.Rect(x1, y1, x2, y2))
	if scale != 1.0 && scale > 0 {
		w := int(float64(cropped.Bounds().Dx()) * scale)
		h := int(float64(cropped.Bounds().Dy()) * scale)
		cropped = imaging.Resize(cropped, w, h, imaging.Lanczos)
	}
	return cropped, nil
}

// CropToBox zooms into box with margin pixels of surrounding context. The
// region is clamped to the image.
func CropToBox(img image.Image, box geometry.BoundingBox, margin int, scale float64) (image.Image, error) {
	b := img.Bounds()
	x1 := max(b.Min.X, int(math.Floor(box.XMin))-margin)
	y1 := max(b.Min.Y, int(math.Floor(box.YMin))-margin)
	x2 := min(b.Max.X, int(math.Ceil(box.XMax))+margin+1)
	y2 := min(b.Max.Y, int(math.Ceil(box.YMax))+margin+1)
	return Crop(img, x1, y1, x2, y2, scale)
}
