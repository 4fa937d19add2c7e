package engine

import (
	"testing"

	"github.com/panelwright/wallplan/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCutter() (*Cutter, *LeftoverPool, *model.Analysis) {
	pool := NewLeftoverPool()
	analysis := &model.Analysis{}
	return NewCutter(model.DefaultSettings(), pool, analysis, nil), pool, analysis
}

func widthSum(panels []model.Panel) float64 {
	var sum float64
	for _, p := range panels {
		sum += p.EffectiveWidth()
	}
	return sum
}

func bothEnds(j model.JointType) model.JointAssignment {
	return model.JointAssignment{Left: j, Right: j}
}

// Wall 4800/100, both ends butt: four full panels and a lone 200 mm side
// panel. The remainder equals exactly twice the thickness, so the single
// side panel branch is taken but no trim allowance is applied.
func TestCutWall_RemainderAtExactBoundary(t *testing.T) {
	cutter, _, analysis := newTestCutter()

	panels, err := cutter.CutWall(4800, 100, bothEnds(model.JointButtIn))
	require.NoError(t, err)
	require.Len(t, panels, 5)

	for _, p := range panels[:4] {
		assert.Equal(t, model.PanelFull, p.Kind)
		assert.Equal(t, 1150.0, p.EffectiveWidth(), "no trim allowance at the exact boundary")
	}
	assert.Equal(t, model.PanelSide, panels[4].Kind)
	assert.Equal(t, 200.0, panels[4].Width)
	assert.Equal(t, model.JointButtIn, panels[4].JointType)
	assert.Equal(t, 4800.0, widthSum(panels))

	assert.Equal(t, 4, analysis.FullPanels)
	assert.Equal(t, 1, analysis.CutPanels)
	assert.Equal(t, 1, analysis.FullPanelsUsedForCutting)
	assert.Equal(t, 5, analysis.TotalPanels)
}

func TestCutWall_TrimAllowanceBelowBoundary(t *testing.T) {
	cutter, _, _ := newTestCutter()

	// 4750 leaves 150, strictly below 2x100: the last full panel is trimmed
	// to 1130 and the side panel grows to 170.
	panels, err := cutter.CutWall(4750, 100, bothEnds(model.JointButtIn))
	require.NoError(t, err)
	require.Len(t, panels, 5)

	assert.Equal(t, 1130.0, panels[3].EffectiveWidth(), "last full panel trimmed")
	assert.Equal(t, 1150.0, panels[3].Width, "nominal width unchanged")
	assert.NotEmpty(t, panels[3].Note)
	assert.Equal(t, 170.0, panels[4].Width)
	assert.Equal(t, 4750.0, widthSum(panels))
}

func TestCutWall_NoTrimWithoutFullPanels(t *testing.T) {
	cutter, _, _ := newTestCutter()

	panels, err := cutter.CutWall(150, 100, bothEnds(model.JointButtIn))
	require.NoError(t, err)
	require.Len(t, panels, 1)
	assert.Equal(t, 150.0, panels[0].Width, "no full panel to trim")
	assert.Equal(t, 150.0, widthSum(panels))
}

// Wall 10000/100, both ends mitred: eight full panels and an 800 mm
// remainder split into two 400 mm mitred side panels. The first opens a
// fresh full panel; its remnant keeps the complementary bevel and serves
// the second side panel.
func TestCutWall_SplitRemainderReusesOwnLeftover(t *testing.T) {
	cutter, pool, analysis := newTestCutter()

	panels, err := cutter.CutWall(10000, 100, bothEnds(model.JointCut45))
	require.NoError(t, err)
	require.Len(t, panels, 10)

	assert.Equal(t, model.PanelSide, panels[8].Kind, "first side panel is a fresh cut")
	assert.Equal(t, model.PanelLeftover, panels[9].Kind, "second side panel reuses the remnant")
	assert.Equal(t, 400.0, panels[8].Width)
	assert.Equal(t, 400.0, panels[9].Width)
	assert.Equal(t, 10000.0, widthSum(panels))

	assert.Equal(t, 8, analysis.FullPanels)
	assert.Equal(t, 1, analysis.CutPanels)
	assert.Equal(t, 1, analysis.LeftoverPanels)
	assert.Equal(t, 1, analysis.FullPanelsUsedForCutting)

	// Fresh mitred cut donates 1150-400+100 on the longer face; consuming
	// the existing bevel for the second panel leaves 850-400 straight.
	items := pool.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 450.0, items[0].LongerFace)
	assert.Equal(t, 450.0, items[0].ShorterFace)
	assert.Equal(t, model.EdgeStraight, items[0].LeftEdge)
}

// Two consecutive walls over one shared pool: the second wall's side panel
// fits a prior leftover, so no new full panel is opened for it.
func TestCutWall_SecondWallConsumesPriorLeftover(t *testing.T) {
	cutter, pool, analysis := newTestCutter()

	_, err := cutter.CutWall(4800, 100, bothEnds(model.JointButtIn))
	require.NoError(t, err)
	require.Equal(t, 1, pool.Len())
	usedBefore := analysis.FullPanelsUsedForCutting

	panels, err := cutter.CutWall(2500, 100, bothEnds(model.JointButtIn))
	require.NoError(t, err)
	require.Len(t, panels, 3)

	assert.Equal(t, model.PanelLeftover, panels[2].Kind)
	assert.Equal(t, usedBefore, analysis.FullPanelsUsedForCutting,
		"consuming a leftover must not open a new full panel")
	assert.Equal(t, 2500.0, widthSum(panels))
}

func TestCutWall_MixedEndsPreferMitredEndWithCompatibleLeftover(t *testing.T) {
	cutter, pool, _ := newTestCutter()
	pool.Donate(model.NewLeftover(100, 500, 400, model.EdgeCut45, model.EdgeStraight))

	joints := model.JointAssignment{Left: model.JointCut45, Right: model.JointButtIn}
	panels, err := cutter.CutWall(1300, 100, joints)
	require.NoError(t, err)
	require.Len(t, panels, 2)

	side := panels[1]
	assert.Equal(t, model.JointCut45, side.JointType, "compatible mitred leftover wins the lone side panel")
	assert.Equal(t, model.PanelLeftover, side.Kind)
}

func TestCutWall_MixedEndsFallBackToButtEnd(t *testing.T) {
	cutter, _, _ := newTestCutter()

	joints := model.JointAssignment{Left: model.JointCut45, Right: model.JointButtIn}
	panels, err := cutter.CutWall(1300, 100, joints)
	require.NoError(t, err)
	require.Len(t, panels, 2)
	assert.Equal(t, model.JointButtIn, panels[1].JointType, "no mitred leftover: side panel goes to the butt end")
}

func TestCutWall_ExactMultipleNeedsNoSidePanel(t *testing.T) {
	cutter, pool, analysis := newTestCutter()

	panels, err := cutter.CutWall(2300, 100, bothEnds(model.JointButtIn))
	require.NoError(t, err)
	require.Len(t, panels, 2)
	assert.Equal(t, 2300.0, widthSum(panels))
	assert.Equal(t, 0, pool.Len())
	assert.Equal(t, 0, analysis.CutPanels)
}

func TestCutWall_TwoSidePanelsUseEndJointTypes(t *testing.T) {
	cutter, _, _ := newTestCutter()

	joints := model.JointAssignment{Left: model.JointCut45, Right: model.JointButtIn}
	panels, err := cutter.CutWall(1950, 100, joints)
	require.NoError(t, err)
	require.Len(t, panels, 3)

	assert.Equal(t, model.JointCut45, panels[1].JointType)
	assert.Equal(t, model.JointButtIn, panels[2].JointType)
	assert.Equal(t, 400.0, panels[1].Width)
	assert.Equal(t, 400.0, panels[2].Width)
	assert.Equal(t, 1950.0, widthSum(panels))
}

func TestCutWall_OddRemainderSplitsAtFloor(t *testing.T) {
	cutter, _, _ := newTestCutter()

	panels, err := cutter.CutWall(1451, 100, bothEnds(model.JointButtIn))
	require.NoError(t, err)
	require.Len(t, panels, 3)
	assert.Equal(t, 150.0, panels[1].Width)
	assert.Equal(t, 151.0, panels[2].Width)
	assert.Equal(t, 1451.0, widthSum(panels))
}

func TestCutWall_RejectsInvalidDimensions(t *testing.T) {
	cutter, _, _ := newTestCutter()

	_, err := cutter.CutWall(0, 100, bothEnds(model.JointButtIn))
	assert.Error(t, err)
	_, err = cutter.CutWall(-100, 100, bothEnds(model.JointButtIn))
	assert.Error(t, err)
	_, err = cutter.CutWall(1000, 0, bothEnds(model.JointButtIn))
	assert.Error(t, err)
}

func TestCutWall_WidthSumInvariantAcrossLengths(t *testing.T) {
	lengths := []float64{151, 200, 575, 1149, 1150, 1151, 2874, 4800, 4750, 9999, 10000}
	for _, length := range lengths {
		cutter, _, _ := newTestCutter()
		panels, err := cutter.CutWall(length, 100, bothEnds(model.JointCut45))
		require.NoError(t, err)
		assert.Equal(t, length, widthSum(panels), "wall length %.0f", length)
	}
}
