package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point represents a 2D coordinate.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Vec returns p as a gonum vector.
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// PointFromVec converts a gonum vector back into a Point.
func PointFromVec(v r2.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}

// Rotate returns p rotated about center by rad radians.
//
// Positive angles rotate counter-clockwise using the standard rotation matrix
//
//	x' = (x-cx)*cos(rad) - (y-cy)*sin(rad) + cx
//	y' = (x-cx)*sin(rad) + (y-cy)*cos(rad) + cy
func Rotate(p, center Point, rad float64) Point {
	return PointFromVec(r2.Rotate(p.Vec(), rad, center.Vec()))
}

// VectorAngle returns the angle of the vector start->end measured from the
// positive X axis, in the range (-π, π].
//
// The angle is undefined when start == end; math.Atan2 returns 0 in that case.
func VectorAngle(start, end Point) float64 {
	d := r2.Sub(end.Vec(), start.Vec())
	return math.Atan2(d.Y, d.X)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return r2.Norm(r2.Sub(b.Vec(), a.Vec()))
}

// Gaze is a direction of regard from Start toward End.
type Gaze struct {
	Start Point `json:"start" yaml:"start"`
	End   Point `json:"end" yaml:"end"`
}

// Angle returns the direction of the gaze.
func (g Gaze) Angle() float64 {
	return VectorAngle(g.Start, g.End)
}

// Degenerate reports whether the gaze has no direction.
func (g Gaze) Degenerate() bool {
	return g.Start == g.End
}
