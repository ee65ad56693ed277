package fov

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/gaze-fov/internal/geometry"
	"github.com/ironsheep/gaze-fov/internal/log"
)

// Classifier sorts scene objects into field-of-view buckets.
type Classifier struct {
	cfg       Config
	halfAngle float64
	log       logrus.FieldLogger
}

// Option customises a Classifier.
type Option func(*Classifier)

// WithLogger sets the logger used for diagnostics. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Classifier) {
		if l != nil {
			c.log = l
		}
	}
}

// New validates cfg and returns a Classifier for it.
func New(cfg Config, opts ...Option) (*Classifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Classifier{
		cfg:       cfg,
		halfAngle: cfg.HalfAngle(),
		log:       log.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Config returns the tunables the classifier was built with.
func (c *Classifier) Config() Config {
	return c.cfg
}

// Wedge returns the two boundary points of the field of view and its angle
// range as seen from the gaze start.
func (c *Classifier) Wedge(gaze geometry.Gaze) (p1, p2 geometry.Point, fov geometry.AngleRange) {
	p1 = geometry.Rotate(gaze.End, gaze.Start, c.halfAngle)
	p2 = geometry.Rotate(gaze.End, gaze.Start, -c.halfAngle)
	fov = geometry.NewAngleRange(
		geometry.VectorAngle(gaze.Start, p1),
		geometry.VectorAngle(gaze.Start, p2),
	)
	return p1, p2, fov
}

// Classify assigns every object to exactly one bucket.
//
// Objects that do not overlap context are OutsideContext. The rest are
// LowConfidence when their confidence is below the threshold; otherwise
// their edges are counted against the wedge and they become Intersecting
// or Unseen. An error wrapping ErrInvalidInput is returned when the gaze
// start and end coincide.
func (c *Classifier) Classify(gaze geometry.Gaze, objects []geometry.BoundingBox, context geometry.BoundingBox) (*Result, error) {
	if gaze.Degenerate() {
		return nil, fmt.Errorf("%w: gaze start and end are both (%g,%g)", ErrInvalidInput, gaze.Start.X, gaze.Start.Y)
	}

	res := newResult(len(objects))
	res.FOVPoint1, res.FOVPoint2, res.FOVRange = c.Wedge(gaze)

	for i, obj := range objects {
		if !geometry.BoxesOverlap(obj, context) {
			res.OutsideContext = append(res.OutsideContext, i)
			continue
		}
		if obj.Confidence < c.cfg.ConfThreshold {
			res.LowConfidence = append(res.LowConfidence, i)
			continue
		}

		count := EdgeHits(gaze.Start, obj, res.FOVRange)
		res.EdgeCounts[i] = count
		c.log.WithFields(logrus.Fields{
			"object": i,
			"edges":  count,
		}).Trace("edge hits")

		if count >= c.cfg.CountThreshold {
			res.Intersecting = append(res.Intersecting, i)
		} else {
			res.Unseen = append(res.Unseen, i)
		}
	}

	res.Label = LabelFocused
	if res.Distracted() {
		res.Label = LabelDistracted
	}

	lo, hi := res.FOVRange.Degrees()
	c.log.WithFields(logrus.Fields{
		"fov_min_deg":     lo,
		"fov_max_deg":     hi,
		"objects":         len(objects),
		"intersecting":    len(res.Intersecting),
		"outside_context": len(res.OutsideContext),
		"unseen":          len(res.Unseen),
		"low_confidence":  len(res.LowConfidence),
	}).Debug("classified scene")

	return res, nil
}

// EdgeHits counts how many of the box's top, bottom, left and right edges
// overlap fov when seen from origin.
func EdgeHits(origin geometry.Point, box geometry.BoundingBox, fov geometry.AngleRange) int {
	c := box.Corners()
	tl := geometry.VectorAngle(origin, c.TopLeft)
	tr := geometry.VectorAngle(origin, c.TopRight)
	bl := geometry.VectorAngle(origin, c.BottomLeft)
	br := geometry.VectorAngle(origin, c.BottomRight)

	edges := [4][2]float64{
		{tl, tr}, // top
		{bl, br}, // bottom
		{tl, bl}, // left
		{tr, br}, // right
	}

	count := 0
	for _, e := range edges {
		if geometry.AngleRangeOverlapsFov(fov.Min, fov.Max, e[0], e[1]) {
			count++
		}
	}
	return count
}

// Classify is a convenience wrapper that builds a Classifier for cfg and
// runs it once.
func Classify(gaze geometry.Gaze, objects []geometry.BoundingBox, context geometry.BoundingBox, cfg Config) (*Result, error) {
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return c.Classify(gaze, objects, context)
}
