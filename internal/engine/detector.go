// Package engine implements the panel planning pipeline: pairwise wall
// contact detection, per-wall joint resolution, and the stateful cutting
// engine that turns wall dimensions into panels while reusing leftovers.
package engine

import (
	"math"

	"github.com/panelwright/wallplan/internal/geometry"
	"github.com/panelwright/wallplan/internal/model"
)

// ContactKind describes how two walls were found to meet.
type ContactKind string

const (
	ContactSharedEndpoint ContactKind = "shared_endpoint"
	ContactCrossing       ContactKind = "crossing"
	ContactTJunction      ContactKind = "t_junction"
)

// JoinClassifier supplies the joining method for a detected contact. The
// detector aggregates contacts; it does not decide how walls join. wall1 is
// the touching wall for T-junctions.
type JoinClassifier func(wall1, wall2 model.Wall, at model.Point2D, kind ContactKind) model.JointType

// DefaultClassifier treats shared-endpoint contacts as mitred corners and
// everything else as flush butt joints. Editors override this per pair.
func DefaultClassifier(wall1, wall2 model.Wall, at model.Point2D, kind ContactKind) model.JointType {
	if kind == ContactSharedEndpoint {
		return model.JointCut45
	}
	return model.JointButtIn
}

// Detector finds every pairwise wall contact in a project and aggregates
// them into intersection records keyed by mm-rounded location. It is pure
// given the wall set: detection runs once per project, before any cutting.
type Detector struct {
	Classifier JoinClassifier
	Epsilon    float64
}

// NewDetector returns a Detector with the default classifier and tolerance.
func NewDetector() *Detector {
	return &Detector{
		Classifier: DefaultClassifier,
		Epsilon:    model.PointEpsilon,
	}
}

// gridKey is an intersection location rounded to the nearest millimeter.
// Contacts computed via different paths at the same physical location
// collapse into a single record.
type gridKey struct {
	X, Y int
}

func keyFor(p model.Point2D) gridKey {
	return gridKey{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// Detect examines every unordered wall pair and returns the intersection set
// in a deterministic order (first contact location wins the record slot).
func (d *Detector) Detect(walls []model.Wall) []model.Intersection {
	byKey := make(map[gridKey]int)
	var intersections []model.Intersection

	record := func(at model.Point2D, pair model.WallPair) {
		k := keyFor(at)
		if idx, ok := byKey[k]; ok {
			intersections[idx].Pairs = append(intersections[idx].Pairs, pair)
			return
		}
		byKey[k] = len(intersections)
		intersections = append(intersections, model.Intersection{
			X:     at.X,
			Y:     at.Y,
			Pairs: []model.WallPair{pair},
		})
	}

	for i := 0; i < len(walls); i++ {
		for j := i + 1; j < len(walls); j++ {
			w1, w2 := walls[i], walls[j]

			if at, ok := d.sharedEndpoint(w1, w2); ok {
				record(at, model.WallPair{
					Wall1:  w1.ID,
					Wall2:  w2.ID,
					Method: d.Classifier(w1, w2, at, ContactSharedEndpoint),
				})
				continue
			}

			if at, ok := geometry.SegmentIntersection(w1.Start, w1.End, w2.Start, w2.End); ok {
				record(at, model.WallPair{
					Wall1:  w1.ID,
					Wall2:  w2.ID,
					Method: d.Classifier(w1, w2, at, ContactCrossing),
				})
				continue
			}

			// T-junction: an endpoint of one wall lands on the body of the
			// other, within a band as wide as the host wall's thickness.
			// The touching wall is always recorded as wall1.
			if at, ok := d.endpointOnBody(w1, w2); ok {
				record(at, model.WallPair{
					Wall1:  w1.ID,
					Wall2:  w2.ID,
					Method: d.Classifier(w1, w2, at, ContactTJunction),
				})
				continue
			}
			if at, ok := d.endpointOnBody(w2, w1); ok {
				record(at, model.WallPair{
					Wall1:  w2.ID,
					Wall2:  w1.ID,
					Method: d.Classifier(w2, w1, at, ContactTJunction),
				})
			}
		}
	}

	return intersections
}

// sharedEndpoint reports whether any endpoint of w1 coincides with any
// endpoint of w2 under the detector tolerance. The contact location is w1's
// matching endpoint.
func (d *Detector) sharedEndpoint(w1, w2 model.Wall) (model.Point2D, bool) {
	for _, p1 := range []model.Point2D{w1.Start, w1.End} {
		for _, p2 := range []model.Point2D{w2.Start, w2.End} {
			if geometry.PointsEqual(p1, p2, d.Epsilon) {
				return p1, true
			}
		}
	}
	return model.Point2D{}, false
}

// endpointOnBody reports whether an endpoint of the touching wall lies on the
// host wall's body band.
func (d *Detector) endpointOnBody(touching, host model.Wall) (model.Point2D, bool) {
	for _, p := range []model.Point2D{touching.Start, touching.End} {
		if geometry.PointInBand(p, host.Start, host.End, host.Thickness) {
			return p, true
		}
	}
	return model.Point2D{}, false
}
