package engine

import (
	"testing"

	"github.com/panelwright/wallplan/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roomWalls returns a closed rectangular room drawn clockwise from the
// bottom-left corner.
func roomWalls() []model.Wall {
	return []model.Wall{
		wallAt("south", 0, 0, 4800, 0),
		wallAt("east", 4800, 0, 4800, 3600),
		wallAt("north", 4800, 3600, 0, 3600),
		wallAt("west", 0, 3600, 0, 0),
	}
}

func TestPlan_ClosedRoom(t *testing.T) {
	planner := NewPlanner(model.DefaultSettings())
	result := planner.Plan(roomWalls())

	require.Empty(t, result.WallErrors)
	assert.Len(t, result.Intersections, 4)
	assert.NotEmpty(t, result.Manifest)

	// Every wall's panel widths must sum to its length.
	for _, w := range roomWalls() {
		var sum float64
		for _, rec := range result.PanelsFor(w.ID) {
			sum += rec.Panel.EffectiveWidth()
		}
		assert.Equal(t, w.Length(), sum, "wall %s", w.ID)
	}

	total := result.Analysis.FullPanels + result.Analysis.CutPanels + result.Analysis.LeftoverPanels
	assert.Equal(t, result.Analysis.TotalPanels, total)
	assert.Equal(t, result.Analysis.TotalPanels, len(result.Manifest))
}

func TestPlan_Idempotent(t *testing.T) {
	walls := roomWalls()

	first := NewPlanner(model.DefaultSettings()).Plan(walls)
	second := NewPlanner(model.DefaultSettings()).Plan(walls)

	assert.Equal(t, first.Analysis, second.Analysis)
	require.Equal(t, len(first.Manifest), len(second.Manifest))
	for i := range first.Manifest {
		a, b := first.Manifest[i], second.Manifest[i]
		assert.Equal(t, a.WallID, b.WallID)
		assert.Equal(t, a.Panel.Kind, b.Panel.Kind)
		assert.Equal(t, a.Panel.Width, b.Panel.Width)
		assert.Equal(t, a.Panel.JointType, b.Panel.JointType)
	}
	require.Equal(t, len(first.Leftovers), len(second.Leftovers))
	for i := range first.Leftovers {
		assert.Equal(t, first.Leftovers[i].LongerFace, second.Leftovers[i].LongerFace)
		assert.Equal(t, first.Leftovers[i].ShorterFace, second.Leftovers[i].ShorterFace)
	}
}

func TestPlan_BadWallDoesNotAbortProject(t *testing.T) {
	walls := roomWalls()
	bad := model.NewWall(model.Point2D{X: 10, Y: 10}, model.Point2D{X: 10, Y: 10}, 100, 2800)
	bad.ID = "bad"
	walls = append([]model.Wall{bad}, walls...)

	result := NewPlanner(model.DefaultSettings()).Plan(walls)

	require.Len(t, result.WallErrors, 1)
	assert.Equal(t, "bad", result.WallErrors[0].WallID)
	assert.Empty(t, result.PanelsFor("bad"))
	assert.NotEmpty(t, result.PanelsFor("south"), "remaining walls still planned")
}

func TestPlan_SeededPoolServesFirstWall(t *testing.T) {
	planner := NewPlanner(model.DefaultSettings())
	planner.Seed = []model.Leftover{
		model.NewLeftover(100, 950, 950, model.EdgeStraight, model.EdgeStraight),
	}

	// One lone wall short enough that its remainder fits the seeded leftover.
	w := wallAt("solo", 0, 0, 1350, 0)
	result := planner.Plan([]model.Wall{w})

	require.Empty(t, result.WallErrors)
	records := result.PanelsFor("solo")
	require.Len(t, records, 2)
	assert.Equal(t, model.PanelLeftover, records[1].Panel.Kind)
	assert.Equal(t, 0, result.Analysis.FullPanelsUsedForCutting)
}

func TestPlan_ManifestCarriesWallHeightAndApplication(t *testing.T) {
	w := model.NewWall(model.Point2D{X: 0, Y: 0}, model.Point2D{X: 2300, Y: 0}, 100, 3000)
	w.ID = "w"
	w.Application = model.ApplicationCeiling

	result := NewPlanner(model.DefaultSettings()).Plan([]model.Wall{w})
	require.NotEmpty(t, result.Manifest)
	for _, rec := range result.Manifest {
		assert.Equal(t, 3000.0, rec.Length)
		assert.Equal(t, model.ApplicationCeiling, rec.Application)
	}
}

func TestPlan_CallerSuppliedIntersections(t *testing.T) {
	w := wallAt("a", 0, 0, 4800, 0)
	intersections := []model.Intersection{
		{X: 0, Y: 0, Pairs: []model.WallPair{{Wall1: "a", Wall2: "z", Method: model.JointCut45}}},
		{X: 4800, Y: 0, Pairs: []model.WallPair{{Wall1: "a", Wall2: "y", Method: model.JointCut45}}},
	}

	result := NewPlanner(model.DefaultSettings()).PlanWithIntersections([]model.Wall{w}, intersections)
	records := result.PanelsFor("a")
	require.Len(t, records, 5)
	assert.Equal(t, model.JointCut45, records[4].Panel.JointType)
}
