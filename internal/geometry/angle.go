package geometry

import (
	"math"

	"github.com/golang/geo/s1"
)

// AngleRange is a pair of angles in radians with Min <= Max.
//
// The pair is stored numerically and carries no winding. Overlaps and
// AngleRangeOverlapsFov read it as the shorter closed arc between Min and
// Max, which may cross the ±π seam.
type AngleRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// NewAngleRange builds a range from two raw angles in either order.
func NewAngleRange(a, b float64) AngleRange {
	return AngleRange{Min: math.Min(a, b), Max: math.Max(a, b)}
}

// Arc returns the shorter closed arc joining Min and Max.
//
// When Min and Max are exactly π apart both arcs have the same length and
// the arc running counter-clockwise from Min to Max is returned.
func (r AngleRange) Arc() s1.Interval {
	return s1.IntervalFromPointPair(r.Min, r.Max)
}

// Width returns the angular length of the arc in radians, in [0, π].
func (r AngleRange) Width() float64 {
	return r.Arc().Length()
}

// Contains reports whether angle a lies on the arc, endpoints included.
func (r AngleRange) Contains(a float64) bool {
	return r.Arc().Contains(a)
}

// Overlaps reports whether the arcs of r and o share at least one point.
// Arcs that only touch at an endpoint overlap.
func (r AngleRange) Overlaps(o AngleRange) bool {
	return r.Arc().Intersects(o.Arc())
}

// Degrees returns the range endpoints in degrees.
func (r AngleRange) Degrees() (lo, hi float64) {
	return r.Min * 180 / math.Pi, r.Max * 180 / math.Pi
}

// AngleRangeOverlapsFov reports whether the arc spanned by angle1 and angle2
// overlaps the field of view [fovMin, fovMax].
//
// Both ranges are taken as the shorter arc between their endpoints, so a pair
// such as (170°, -170°) spans the 20° across the seam. The field of view is
// always narrower than π. Bounds are inclusive: an arc ending exactly on
// fovMin or fovMax overlaps. The result does not depend on the order of
// angle1 and angle2.
func AngleRangeOverlapsFov(fovMin, fovMax, angle1, angle2 float64) bool {
	return NewAngleRange(fovMin, fovMax).Overlaps(NewAngleRange(angle1, angle2))
}
