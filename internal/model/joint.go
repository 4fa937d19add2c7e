package model

// JointType describes how a wall end meets its neighbor.
type JointType string

const (
	JointCut45  JointType = "45_cut"  // mitred corner, panel edge beveled at 45 degrees
	JointButtIn JointType = "butt_in" // flush square-cut joint
)

// EdgeType is the cut profile of one long edge of a panel or leftover.
type EdgeType string

const (
	EdgeStraight EdgeType = "straight"
	EdgeCut45    EdgeType = "45_cut"
)

// JointAssignment holds the resolved joint type for each end of a wall.
// It is derived from the intersection set, never stored independently.
type JointAssignment struct {
	Left  JointType `json:"left"`
	Right JointType `json:"right"`
}

// WallPair records two walls meeting at an intersection and how they join.
type WallPair struct {
	Wall1  string    `json:"wall1"`
	Wall2  string    `json:"wall2"`
	Method JointType `json:"joining_method"`
}

// Intersection is a contact location shared by one or more wall pairs.
// Contacts found through different paths (shared endpoint, crossing,
// T-junction) at the same mm-rounded location collapse into one record.
type Intersection struct {
	X     float64    `json:"x"`
	Y     float64    `json:"y"`
	Pairs []WallPair `json:"pairs"`
}

// Involves reports whether any pair at this intersection references the wall.
func (in Intersection) Involves(wallID string) bool {
	for _, p := range in.Pairs {
		if p.Wall1 == wallID || p.Wall2 == wallID {
			return true
		}
	}
	return false
}

// MethodsFor collects the joining methods of every pair referencing the wall.
func (in Intersection) MethodsFor(wallID string) []JointType {
	var methods []JointType
	for _, p := range in.Pairs {
		if p.Wall1 == wallID || p.Wall2 == wallID {
			methods = append(methods, p.Method)
		}
	}
	return methods
}
