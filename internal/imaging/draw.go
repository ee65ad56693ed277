package imaging

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/gaze-fov/internal/geometry"
)

// arrowTip is the arrow head length as a fraction of the shaft length.
const arrowTip = 0.1

// plot paints one pixel, blending c over the existing pixel when c is
// translucent. Pixels outside img are ignored.
func plot(img *image.RGBA, x, y int, c color.NRGBA) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return
	}
	if c.A == 255 {
		img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		return
	}
	if c.A == 0 {
		return
	}
	dst := img.RGBAAt(x, y)
	a := uint32(c.A)
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a) + 127) / 255)
	}
	img.SetRGBA(x, y, color.RGBA{
		R: mix(c.R, dst.R),
		G: mix(c.G, dst.G),
		B: mix(c.B, dst.B),
		A: uint8(a + uint32(dst.A)*(255-a)/255),
	})
}

// plotThick paints a thickness x thickness square centred on (x, y).
func plotThick(img *image.RGBA, x, y, thickness int, c color.NRGBA) {
	if thickness <= 1 {
		plot(img, x, y, c)
		return
	}
	lo := -(thickness - 1) / 2
	hi := lo + thickness
	for dy := lo; dy < hi; dy++ {
		for dx := lo; dx < hi; dx++ {
			plot(img, x+dx, y+dy, c)
		}
	}
}

// drawLine draws a straight segment with Bresenham's algorithm.
func drawLine(img *image.RGBA, x0, y0, x1, y1, thickness int, c color.NRGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plotThick(img, x0, y0, thickness, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// drawRect outlines box, edges included.
func drawRect(img *image.RGBA, box geometry.BoundingBox, thickness int, c color.NRGBA) {
	x0, y0 := round(box.XMin), round(box.YMin)
	x1, y1 := round(box.XMax), round(box.YMax)
	drawLine(img, x0, y0, x1, y0, thickness, c)
	drawLine(img, x1, y0, x1, y1, thickness, c)
	drawLine(img, x1, y1, x0, y1, thickness, c)
	drawLine(img, x0, y1, x0, y0, thickness, c)
}

// drawArrow draws a segment from -> to with a two-stroke head at to.
func drawArrow(img *image.RGBA, from, to geometry.Point, thickness int, c color.NRGBA) {
	drawLine(img, round(from.X), round(from.Y), round(to.X), round(to.Y), thickness, c)

	length := geometry.Distance(from, to) * arrowTip
	if length < 1 {
		return
	}
	back := geometry.VectorAngle(to, from)
	for _, side := range []float64{math.Pi / 4, -math.Pi / 4} {
		a := back + side
		tip := geometry.Point{X: to.X + length*math.Cos(a), Y: to.Y + length*math.Sin(a)}
		drawLine(img, round(to.X), round(to.Y), round(tip.X), round(tip.Y), thickness, c)
	}
}

// fillTriangle paints every pixel whose centre lies in triangle abc.
func fillTriangle(img *image.RGBA, a, b, c geometry.Point, col color.NRGBA) {
	minX := int(math.Floor(math.Min(a.X, math.Min(b.X, c.X))))
	maxX := int(math.Ceil(math.Max(a.X, math.Max(b.X, c.X))))
	minY := int(math.Floor(math.Min(a.Y, math.Min(b.Y, c.Y))))
	maxY := int(math.Ceil(math.Max(a.Y, math.Max(b.Y, c.Y))))

	r := image.Rect(minX, minY, maxX+1, maxY+1).Intersect(img.Bounds())
	edge := func(p, q geometry.Point, x, y float64) float64 {
		return (q.X-p.X)*(y-p.Y) - (q.Y-p.Y)*(x-p.X)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			w0 := edge(a, b, px, py)
			w1 := edge(b, c, px, py)
			w2 := edge(c, a, px, py)
			if (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0) {
				plot(img, x, y, col)
			}
		}
	}
}

// drawText writes s with its baseline starting at (x, y).
func drawText(img *image.RGBA, x, y int, s string, c color.NRGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func round(v float64) int {
	return int(math.Round(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
