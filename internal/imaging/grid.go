package imaging

import (
	"image"
	"image/color"
	"strconv"
)

// coordGlyphs is a 3x5 pixel font covering the characters of "x,y" labels.
var coordGlyphs = map[rune][5]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	',': {"000", "000", "000", "010", "010"},
}

const (
	glyphAdvance = 4
	glyphHeight  = 7
)

// drawGrid paints vertical and horizontal lines every spacing pixels. When
// labels is set each crossing is tagged with its "x,y" pixel coordinate.
func drawGrid(img *image.RGBA, spacing int, labels bool, c color.NRGBA) {
	if spacing <= 0 {
		return
	}
	b := img.Bounds()

	for x := b.Min.X + spacing; x < b.Max.X; x += spacing {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			plot(img, x, y, c)
		}
	}
	for y := b.Min.Y + spacing; y < b.Max.Y; y += spacing {
		for x := b.Min.X; x < b.Max.X; x++ {
			plot(img, x, y, c)
		}
	}

	if !labels {
		return
	}
	fg := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	bg := color.NRGBA{A: 180}
	for y := b.Min.Y + spacing; y < b.Max.Y; y += spacing {
		for x := b.Min.X + spacing; x < b.Max.X; x += spacing {
			drawCoord(img, x+2, y+2, strconv.Itoa(x)+","+strconv.Itoa(y), fg, bg)
		}
	}
}

// drawCoord writes a coordinate label on a translucent backing.
func drawCoord(img *image.RGBA, x, y int, text string, fg, bg color.NRGBA) {
	w := len(text) * glyphAdvance
	for dy := -1; dy < glyphHeight; dy++ {
		for dx := -1; dx < w; dx++ {
			plot(img, x+dx, y+dy, bg)
		}
	}

	cx := x
	for _, ch := range text {
		if glyph, ok := coordGlyphs[ch]; ok {
			for row, line := range glyph {
				for col, px := range line {
					if px == '1' {
						plot(img, cx+col, y+row, fg)
					}
				}
			}
		}
		cx += glyphAdvance
	}
}
