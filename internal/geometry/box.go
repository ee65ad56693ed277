package geometry

import (
	"github.com/golang/geo/r1"
	"gonum.org/v1/gonum/spatial/r2"
)

// BoundingBox is an axis-aligned box with a detection confidence.
//
// XMin <= XMax and YMin <= YMax are assumed but not enforced. Confidence is
// in [0, 1] and is ignored by the overlap test.
type BoundingBox struct {
	XMin       float64 `json:"xmin" yaml:"xmin"`
	YMin       float64 `json:"ymin" yaml:"ymin"`
	XMax       float64 `json:"xmax" yaml:"xmax"`
	YMax       float64 `json:"ymax" yaml:"ymax"`
	Confidence float64 `json:"conf" yaml:"conf"`
}

// Box builds a BoundingBox from its four edges and a confidence score.
func Box(xmin, ymin, xmax, ymax, conf float64) BoundingBox {
	return BoundingBox{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax, Confidence: conf}
}

// Corners holds the four corners of a box.
type Corners struct {
	TopLeft     Point
	TopRight    Point
	BottomLeft  Point
	BottomRight Point
}

// Corners returns the box corners. "Top" is the YMin side.
func (b BoundingBox) Corners() Corners {
	return Corners{
		TopLeft:     Point{X: b.XMin, Y: b.YMin},
		TopRight:    Point{X: b.XMax, Y: b.YMin},
		BottomLeft:  Point{X: b.XMin, Y: b.YMax},
		BottomRight: Point{X: b.XMax, Y: b.YMax},
	}
}

// Center returns the centroid of the box.
func (b BoundingBox) Center() Point {
	return PointFromVec(b.Box().Center())
}

// Box returns the extent of b as a gonum box.
func (b BoundingBox) Box() r2.Box {
	return r2.Box{Min: r2.Vec{X: b.XMin, Y: b.YMin}, Max: r2.Vec{X: b.XMax, Y: b.YMax}}
}

// Width returns XMax - XMin.
func (b BoundingBox) Width() float64 { return b.XMax - b.XMin }

// Height returns YMax - YMin.
func (b BoundingBox) Height() float64 { return b.YMax - b.YMin }

func (b BoundingBox) xSpan() r1.Interval { return r1.Interval{Lo: b.XMin, Hi: b.XMax} }
func (b BoundingBox) ySpan() r1.Interval { return r1.Interval{Lo: b.YMin, Hi: b.YMax} }

// BoxesOverlap reports whether a and b overlap or one contains the other.
//
// The horizontal extents interleave when either box's left edge lies within
// the other's horizontal span, edges included. The vertical extents are
// tested the same way and both must interleave.
func BoxesOverlap(a, b BoundingBox) bool {
	horizontal := b.xSpan().Contains(a.XMin) || a.xSpan().Contains(b.XMin)
	vertical := b.ySpan().Contains(a.YMin) || a.ySpan().Contains(b.YMin)
	return horizontal && vertical
}
