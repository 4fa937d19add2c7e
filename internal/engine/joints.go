package engine

import "github.com/panelwright/wallplan/internal/model"

// ResolveJoints determines the joint type at each end of a wall from the
// project's intersection set. It is a pure function of (wall, intersections).
//
// End assignment uses the wall's orientation and drawing direction: for a
// horizontal wall an intersection lands on the start or end by exact X
// comparison (Y for vertical walls), and "start" maps to the left end only
// when the wall runs forward. A mitred contact dominates: if any pair at an
// end joins with a 45 cut, that end is mitred regardless of other contacts.
// Ends with no contacts default to butt joints.
func ResolveJoints(w model.Wall, intersections []model.Intersection) model.JointAssignment {
	horizontal := w.Horizontal()

	var startCoord, endCoord float64
	var forward bool
	if horizontal {
		startCoord, endCoord = w.Start.X, w.End.X
		forward = w.LeftToRight()
	} else {
		startCoord, endCoord = w.Start.Y, w.End.Y
		forward = w.BottomToTop()
	}

	var leftMethods, rightMethods []model.JointType
	for _, in := range intersections {
		if !in.Involves(w.ID) {
			continue
		}

		coord := in.X
		if !horizontal {
			coord = in.Y
		}

		// Exact comparison on the relevant axis: contacts not landing
		// precisely on an endpoint coordinate (interior crossings,
		// off-axis T-junctions) do not assign an end joint.
		var atStart, atEnd bool
		switch coord {
		case startCoord:
			atStart = true
		case endCoord:
			atEnd = true
		default:
			continue
		}

		methods := in.MethodsFor(w.ID)
		if atStart == forward {
			leftMethods = append(leftMethods, methods...)
		}
		if atEnd == forward {
			rightMethods = append(rightMethods, methods...)
		}
	}

	return model.JointAssignment{
		Left:  dominantJoint(leftMethods),
		Right: dominantJoint(rightMethods),
	}
}

// dominantJoint resolves a list of contact methods at one end: a 45 cut wins
// whenever present, since a mitred corner changes the panel's edge profile
// regardless of other contacts.
func dominantJoint(methods []model.JointType) model.JointType {
	for _, m := range methods {
		if m == model.JointCut45 {
			return model.JointCut45
		}
	}
	return model.JointButtIn
}
