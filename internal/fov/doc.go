// Package fov classifies scene objects against a driver's field of view.
//
// A gaze vector and an FOV angle define a wedge. Each object is an
// axis-aligned box with a detection confidence. Classification sorts every
// object index into exactly one bucket:
//
//   - Intersecting: overlaps the context box and enough of its edges fall
//     inside the wedge.
//   - OutsideContext: does not overlap the context box at all.
//   - Unseen: overlaps the context box but too few edges reach the wedge.
//   - LowConfidence: overlaps the context box but its confidence is below the
//     threshold, so it is never tested against the wedge.
//
// The driver is distracted when at least one object is Intersecting.
//
// # Algorithm
//
//  1. The FOV degree is halved and converted to radians.
//  2. The gaze end point is rotated about the gaze start by plus and minus
//     that angle, giving the two boundary points of the wedge.
//  3. The angles of the boundary points, seen from the gaze start, form the
//     FOV angle range.
//  4. The top, bottom, left and right edges of each relevant object are
//     tested against that range and the overlapping edges are counted.
//  5. Objects whose count reaches the count threshold are Intersecting.
//
// # Configuration
//
// Config carries the three tunables: FOVDegree in [0, 90), ConfThreshold in
// (0, 1) and CountThreshold in [1, 4]. New rejects anything outside those
// ranges with an error wrapping ErrInvalidInput, as does Classify for a gaze
// whose start and end coincide.
//
// # Thread Safety
//
// A Classifier is immutable after New and may be shared between goroutines.
// The optional logger only records diagnostics and never changes a result.
package fov
