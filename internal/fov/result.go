package fov

import "github.com/ironsheep/gaze-fov/internal/geometry"

// Bucket names the classification an object received.
type Bucket string

const (
	BucketIntersecting   Bucket = "intersecting"
	BucketOutsideContext Bucket = "outside_context"
	BucketUnseen         Bucket = "unseen"
	BucketLowConfidence  Bucket = "low_confidence"
)

// Labels shown for the two driver states.
const (
	LabelDistracted = "DISTRACTED"
	LabelFocused    = "FOCUS!"
)

// Result is the outcome of one classification call.
//
// The four index lists are ascending and pairwise disjoint; together they
// cover every input index exactly once.
type Result struct {
	// FOVPoint1 is the gaze end rotated counter-clockwise by the half angle.
	FOVPoint1 geometry.Point `json:"fov_p1"`

	// FOVPoint2 is the gaze end rotated clockwise by the half angle.
	FOVPoint2 geometry.Point `json:"fov_p2"`

	// FOVRange is the angular range of the wedge seen from the gaze start.
	FOVRange geometry.AngleRange `json:"fov_range"`

	Intersecting   []int `json:"intersecting"`
	OutsideContext []int `json:"outside_context"`
	Unseen         []int `json:"unseen"`
	LowConfidence  []int `json:"low_confidence"`

	// EdgeCounts holds, per input object, how many edges reached the wedge.
	// Objects that were not tested have a count of zero.
	EdgeCounts []int `json:"edge_counts"`

	// Label is LabelDistracted or LabelFocused.
	Label string `json:"label"`
}

func newResult(n int) *Result {
	return &Result{
		Intersecting:   []int{},
		OutsideContext: []int{},
		Unseen:         []int{},
		LowConfidence:  []int{},
		EdgeCounts:     make([]int, n),
	}
}

// Distracted reports whether any object is inside the field of view.
func (r *Result) Distracted() bool {
	return len(r.Intersecting) > 0
}

// BucketOf returns the bucket holding object i. The second return value is
// false when i is not an index of the classified input.
func (r *Result) BucketOf(i int) (Bucket, bool) {
	for _, set := range []struct {
		b   Bucket
		idx []int
	}{
		{BucketIntersecting, r.Intersecting},
		{BucketOutsideContext, r.OutsideContext},
		{BucketUnseen, r.Unseen},
		{BucketLowConfidence, r.LowConfidence},
	} {
		for _, j := range set.idx {
			if j == i {
				return set.b, true
			}
		}
	}
	return "", false
}

// Buckets returns the bucket of every object in input order.
func (r *Result) Buckets() []Bucket {
	out := make([]Bucket, len(r.EdgeCounts))
	assign := func(b Bucket, idx []int) {
		for _, i := range idx {
			out[i] = b
		}
	}
	assign(BucketIntersecting, r.Intersecting)
	assign(BucketOutsideContext, r.OutsideContext)
	assign(BucketUnseen, r.Unseen)
	assign(BucketLowConfidence, r.LowConfidence)
	return out
}
