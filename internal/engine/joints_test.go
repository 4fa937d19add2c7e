package engine

import (
	"testing"

	"github.com/panelwright/wallplan/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestResolveJoints_NoContactsDefaultsToButt(t *testing.T) {
	w := wallAt("a", 0, 0, 3000, 0)
	joints := ResolveJoints(w, nil)
	assert.Equal(t, model.JointButtIn, joints.Left)
	assert.Equal(t, model.JointButtIn, joints.Right)
}

func TestResolveJoints_HorizontalForwardWall(t *testing.T) {
	w := wallAt("a", 0, 0, 3000, 0)
	intersections := []model.Intersection{
		{X: 3000, Y: 0, Pairs: []model.WallPair{{Wall1: "a", Wall2: "b", Method: model.JointCut45}}},
	}

	joints := ResolveJoints(w, intersections)
	assert.Equal(t, model.JointButtIn, joints.Left)
	assert.Equal(t, model.JointCut45, joints.Right)
}

func TestResolveJoints_DirectionInvertsEnds(t *testing.T) {
	// Same geometry drawn right to left: the contact at x=3000 now lands on
	// the wall's start, which is its right end.
	w := wallAt("a", 3000, 0, 0, 0)
	intersections := []model.Intersection{
		{X: 3000, Y: 0, Pairs: []model.WallPair{{Wall1: "a", Wall2: "b", Method: model.JointCut45}}},
	}

	joints := ResolveJoints(w, intersections)
	assert.Equal(t, model.JointCut45, joints.Right)
	assert.Equal(t, model.JointButtIn, joints.Left)
}

func TestResolveJoints_VerticalWallUsesYAxis(t *testing.T) {
	w := wallAt("a", 0, 0, 0, 2000)
	intersections := []model.Intersection{
		{X: 0, Y: 0, Pairs: []model.WallPair{{Wall1: "a", Wall2: "b", Method: model.JointCut45}}},
		{X: 0, Y: 2000, Pairs: []model.WallPair{{Wall1: "c", Wall2: "a", Method: model.JointButtIn}}},
	}

	joints := ResolveJoints(w, intersections)
	assert.Equal(t, model.JointCut45, joints.Left, "bottom contact is the left end of an upward wall")
	assert.Equal(t, model.JointButtIn, joints.Right)
}

func TestResolveJoints_MitreDominatesAtOneEnd(t *testing.T) {
	// Three walls meet at the wall's right end: one mitred pair and one butt
	// pair. The mitre wins regardless of order.
	w := wallAt("a", 0, 0, 3000, 0)
	intersections := []model.Intersection{
		{X: 3000, Y: 0, Pairs: []model.WallPair{
			{Wall1: "a", Wall2: "b", Method: model.JointButtIn},
			{Wall1: "c", Wall2: "a", Method: model.JointCut45},
		}},
	}

	joints := ResolveJoints(w, intersections)
	assert.Equal(t, model.JointCut45, joints.Right)
}

func TestResolveJoints_InteriorContactAssignsNoEnd(t *testing.T) {
	// A crossing in the middle of the wall touches neither end coordinate.
	w := wallAt("a", 0, 0, 3000, 0)
	intersections := []model.Intersection{
		{X: 1500, Y: 0, Pairs: []model.WallPair{{Wall1: "b", Wall2: "a", Method: model.JointCut45}}},
	}

	joints := ResolveJoints(w, intersections)
	assert.Equal(t, model.JointButtIn, joints.Left)
	assert.Equal(t, model.JointButtIn, joints.Right)
}

func TestResolveJoints_UnrelatedIntersectionsIgnored(t *testing.T) {
	w := wallAt("a", 0, 0, 3000, 0)
	intersections := []model.Intersection{
		{X: 0, Y: 0, Pairs: []model.WallPair{{Wall1: "x", Wall2: "y", Method: model.JointCut45}}},
	}

	joints := ResolveJoints(w, intersections)
	assert.Equal(t, model.JointButtIn, joints.Left)
	assert.Equal(t, model.JointButtIn, joints.Right)
}

func TestResolveJoints_DiagonalWallTreatedAsVertical(t *testing.T) {
	// Known limitation: a true diagonal classifies as vertical, so its ends
	// are assigned on the Y axis.
	w := wallAt("a", 0, 0, 2000, 2000)
	intersections := []model.Intersection{
		{X: 2000, Y: 2000, Pairs: []model.WallPair{{Wall1: "a", Wall2: "b", Method: model.JointCut45}}},
	}

	joints := ResolveJoints(w, intersections)
	assert.Equal(t, model.JointCut45, joints.Right, "top contact of an upward diagonal is its right end")
	assert.Equal(t, model.JointButtIn, joints.Left)
}
