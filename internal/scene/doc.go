// Package scene models the inputs of one classification: a square canvas, a
// context box (the driver), a gaze vector and the candidate objects.
//
// # Generation
//
// Generator produces random scenes for demos and tests. Coordinates are whole
// pixels drawn the same way for every box:
//
//	xmax in [1, size)   xmin in [0, xmax)
//	ymax in [1, size)   ymin in [0, ymax)
//	conf in [0, 1)
//
// The gaze start and end are drawn inside the context box using half-open
// ranges and redrawn until they differ. A context box too small to hold two
// distinct points is regenerated.
//
// A Generator is not safe for concurrent use. Give each goroutine its own.
//
// # Files
//
// Scenes are stored as YAML (.yaml, .yml) or JSON (.json). JSON input is
// validated against an embedded JSON Schema before decoding so that malformed
// files report every problem at once. YAML input is decoded strictly:
// unknown keys are rejected.
//
// Example YAML:
//
//	id: 2b7e1516-28ae-4d2a-a6d2-abf7158809cf
//	image_size: 100
//	context: {xmin: 0, ymin: 0, xmax: 100, ymax: 100, conf: 1}
//	gaze:
//	  start: {x: 50, y: 10}
//	  end: {x: 50, y: 90}
//	objects:
//	  - {xmin: 40, ymin: 40, xmax: 60, ymax: 60, conf: 0.9}
package scene
