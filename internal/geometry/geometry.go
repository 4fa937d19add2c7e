// Package geometry provides the 2D primitives used to detect wall contacts:
// segment intersection, epsilon point equality, and a point-in-band test for
// endpoints terminating against a wall's body. All functions are pure.
package geometry

import (
	"math"

	"github.com/panelwright/wallplan/internal/model"
)

// PointsEqual reports whether two points coincide under an absolute per-axis
// tolerance. The comparison is per axis, not Euclidean, which is how
// near-coincident endpoints from user input are merged.
func PointsEqual(p, q model.Point2D, epsilon float64) bool {
	return math.Abs(p.X-q.X) <= epsilon && math.Abs(p.Y-q.Y) <= epsilon
}

// SegmentIntersection computes the intersection point of two line segments.
// Returns false when the segments are parallel or the intersection falls
// outside either segment.
func SegmentIntersection(aStart, aEnd, bStart, bEnd model.Point2D) (model.Point2D, bool) {
	d1x := aEnd.X - aStart.X
	d1y := aEnd.Y - aStart.Y
	d2x := bEnd.X - bStart.X
	d2y := bEnd.Y - bStart.Y

	denom := d1x*d2y - d1y*d2x
	if denom == 0 {
		return model.Point2D{}, false
	}

	t := ((bStart.X-aStart.X)*d2y - (bStart.Y-aStart.Y)*d2x) / denom
	u := ((bStart.X-aStart.X)*d1y - (bStart.Y-aStart.Y)*d1x) / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return model.Point2D{}, false
	}

	return model.Point2D{
		X: aStart.X + t*d1x,
		Y: aStart.Y + t*d1y,
	}, true
}

// PointInBand reports whether a point lies within a band around a segment:
// its projection onto the segment's axis must fall within [0, length] and its
// perpendicular offset within halfWidth. This models a wall endpoint
// terminating flush against the side of another wall (a T-junction).
func PointInBand(p, segStart, segEnd model.Point2D, halfWidth float64) bool {
	dx := segEnd.X - segStart.X
	dy := segEnd.Y - segStart.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		return false
	}

	// Unit axis along the segment
	ux := dx / length
	uy := dy / length

	px := p.X - segStart.X
	py := p.Y - segStart.Y

	along := px*ux + py*uy
	perp := px*-uy + py*ux

	return along >= 0 && along <= length && math.Abs(perp) <= halfWidth
}
