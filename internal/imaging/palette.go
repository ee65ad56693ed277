package imaging

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/gaze-fov/internal/fov"
)

// Palette holds the colours used by Render, as "#RRGGBB" or "#RRGGBBAA".
type Palette struct {
	Background     string `json:"background"`
	Context        string `json:"context"`
	FOV            string `json:"fov"`
	Wedge          string `json:"wedge"`
	Gaze           string `json:"gaze"`
	Intersecting   string `json:"intersecting"`
	OutsideContext string `json:"outside_context"`
	Unseen         string `json:"unseen"`
	LowConfidence  string `json:"low_confidence"`
	Label          string `json:"label"`
	Grid           string `json:"grid"`
}

// DefaultPalette returns the standard scene colours.
func DefaultPalette() Palette {
	return Palette{
		Background:     "#000000",
		Context:        "#0000FF",
		FOV:            "#00FF00",
		Wedge:          "#00FF00",
		Gaze:           "#00FFFF",
		Intersecting:   "#FF0000",
		OutsideContext: "#FFFFFF",
		Unseen:         "#FFFF00",
		LowConfidence:  "#808080",
		Label:          "#FFFFFF",
		Grid:           "#FF000080",
	}
}

// ParseColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA". The leading '#' is
// optional.
func ParseColor(hex string) (color.NRGBA, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return color.NRGBA{}, fmt.Errorf("%w: empty color string", fov.ErrInvalidInput)
	}
	if hex[0] != '#' {
		hex = "#" + hex
	}

	alpha := uint8(255)
	if len(hex) == 9 {
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: invalid alpha in %q", fov.ErrInvalidInput, hex)
		}
		alpha = uint8(a)
		hex = hex[:7]
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: invalid color %q: %v", fov.ErrInvalidInput, hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// resolved is a Palette with every entry parsed.
type resolved struct {
	background color.NRGBA
	context    color.NRGBA
	fov        color.NRGBA
	wedge      color.NRGBA
	gaze       color.NRGBA
	label      color.NRGBA
	grid       color.NRGBA
	buckets    map[fov.Bucket]color.NRGBA
}

func (p Palette) resolve() (*resolved, error) {
	def := DefaultPalette()
	pick := func(v, fallback string) (color.NRGBA, error) {
		if v == "" {
			v = fallback
		}
		return ParseColor(v)
	}

	r := &resolved{buckets: make(map[fov.Bucket]color.NRGBA, 4)}
	for _, e := range []struct {
		dst     *color.NRGBA
		v, dflt string
	}{
		{&r.background, p.Background, def.Background},
		{&r.context, p.Context, def.Context},
		{&r.fov, p.FOV, def.FOV},
		{&r.wedge, p.Wedge, def.Wedge},
		{&r.gaze, p.Gaze, def.Gaze},
		{&r.label, p.Label, def.Label},
		{&r.grid, p.Grid, def.Grid},
	} {
		c, err := pick(e.v, e.dflt)
		if err != nil {
			return nil, err
		}
		*e.dst = c
	}

	for b, pair := range map[fov.Bucket][2]string{
		fov.BucketIntersecting:   {p.Intersecting, def.Intersecting},
		fov.BucketOutsideContext: {p.OutsideContext, def.OutsideContext},
		fov.BucketUnseen:         {p.Unseen, def.Unseen},
		fov.BucketLowConfidence:  {p.LowConfidence, def.LowConfidence},
	} {
		c, err := pick(pair[0], pair[1])
		if err != nil {
			return nil, err
		}
		r.buckets[b] = c
	}
	return r, nil
}
