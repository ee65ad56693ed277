// Package geometry provides the 2D primitives used to decide whether an object
// lies inside a gaze field of view.
//
// The package covers three concerns:
//   - Points and vectors: rotation about a center and the angle of a vector.
//   - Angle ranges: overlap of two arcs on the circle, including arcs that
//     cross the ±π seam.
//   - Bounding boxes: axis-aligned overlap between two boxes.
//
// # Coordinate System
//
// Coordinates are real-valued. Angles are in radians and follow math.Atan2,
// so they lie in (-π, π]. A positive rotation turns counter-clockwise in a
// Y-up frame. In image space, where Y grows downward, the same rotation turns
// clockwise on screen.
//
// # Angle Ranges
//
// An AngleRange stores two angles as a plain numeric pair with Min <= Max. It
// does not record which way round the circle the range goes. The overlap test
// resolves that when it runs: each range is read as the shorter closed arc
// joining its endpoints. An edge at 170° and -170° therefore spans 20° across
// the seam, not 340° through zero.
//
// # Preconditions
//
// Functions in this package do not validate their inputs. Callers must ensure
// that a vector's start and end points differ and that angles lie in [-π, π].
// The fov package performs that validation before calling into geometry.
//
// # Thread Safety
//
// All types are values and all functions are pure; they may be called
// concurrently without coordination.
package geometry
