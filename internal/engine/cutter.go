package engine

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/panelwright/wallplan/internal/model"
)

// Cutter converts one wall's length, thickness, and resolved end joints into
// a concrete panel sequence, reading and mutating the shared leftover pool.
type Cutter struct {
	Settings model.PlanSettings
	Pool     *LeftoverPool
	Analysis *model.Analysis
	Logger   *slog.Logger
}

// NewCutter builds a cutter over a shared pool and counter set.
func NewCutter(settings model.PlanSettings, pool *LeftoverPool, analysis *model.Analysis, logger *slog.Logger) *Cutter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cutter{Settings: settings, Pool: pool, Analysis: analysis, Logger: logger}
}

// CutWall plans the panels covering one wall. The effective widths of the
// returned panels always sum to exactly wallLength.
//
// Full panels are placed first. A remainder at or below twice the wall
// thickness becomes a single side panel; when it is strictly below that
// bound and a full panel exists, the last full panel is trimmed by the
// allowance and the side panel grows by the same amount. Larger remainders
// split into two side panels, one per end. Side panels are served from the
// leftover pool first; a miss opens a fresh full panel and donates its
// remnant back to the pool.
func (c *Cutter) CutWall(wallLength, wallThickness float64, joints model.JointAssignment) ([]model.Panel, error) {
	if wallLength <= 0 {
		return nil, fmt.Errorf("wall length must be positive, got %.3f", wallLength)
	}
	if wallThickness <= 0 {
		return nil, fmt.Errorf("wall thickness must be positive, got %.3f", wallThickness)
	}

	maxWidth := c.Settings.MaxPanelWidth
	fullCount := int(math.Floor(wallLength / maxWidth))
	remaining := wallLength
	var panels []model.Panel
	for i := 0; i < fullCount; i++ {
		panels = append(panels, model.Panel{Kind: model.PanelFull, Width: maxWidth})
		remaining -= maxWidth
	}
	c.Analysis.FullPanels += fullCount
	c.Analysis.TotalPanels += fullCount

	if remaining <= 0 {
		return panels, nil
	}

	if remaining <= 2*wallThickness {
		// Single side panel. The trim allowance applies only strictly below
		// the bound: a remainder of exactly twice the thickness is cut as-is.
		if remaining < 2*wallThickness && fullCount > 0 {
			last := &panels[len(panels)-1]
			last.ActualWidth = maxWidth - c.Settings.TrimAllowance
			last.Note = fmt.Sprintf("trimmed %.0f mm for side panel fit", c.Settings.TrimAllowance)
			remaining += c.Settings.TrimAllowance
			c.Logger.Debug("trim allowance applied",
				"trim", c.Settings.TrimAllowance, "side_width", remaining)
		}

		joint := joints.Left
		if joints.Left != joints.Right {
			// Mixed ends: place the lone side panel on the mitred end when a
			// compatible leftover already exists, otherwise on the butt end.
			if _, ok := c.Pool.FindCompatible(remaining, wallThickness, model.JointCut45); ok {
				joint = model.JointCut45
			} else {
				joint = model.JointButtIn
			}
		}
		panels = append(panels, c.sidePanel(remaining, wallThickness, joint))
		return panels, nil
	}

	// Two side panels, one per end, split at the floor of the midpoint.
	first := math.Floor(remaining / 2)
	second := remaining - first
	panels = append(panels,
		c.sidePanel(first, wallThickness, joints.Left),
		c.sidePanel(second, wallThickness, joints.Right),
	)
	return panels, nil
}

// sidePanel produces one side panel of the given width, consuming a pooled
// leftover when a compatible one exists and otherwise cutting a fresh full
// panel whose remnant is donated back to the pool.
func (c *Cutter) sidePanel(width, wallThickness float64, joint model.JointType) model.Panel {
	c.Analysis.TotalPanels++

	if lo, ok := c.Pool.FindCompatible(width, wallThickness, joint); ok {
		c.Pool.Consume(lo.ID, width, wallThickness, joint)
		c.Analysis.LeftoverPanels++
		c.Logger.Debug("side panel from leftover",
			"width", width, "joint", joint, "leftover", lo.ID)
		return model.Panel{
			Kind:       model.PanelLeftover,
			Width:      width,
			JointType:  joint,
			LeftoverID: lo.ID,
			Note:       fmt.Sprintf("cut from leftover %s", lo.ID),
		}
	}

	c.Analysis.CutPanels++
	c.Analysis.FullPanelsUsedForCutting++
	c.Pool.Donate(c.newLeftover(width, wallThickness, joint))
	c.Logger.Debug("side panel from fresh full panel", "width", width, "joint", joint)
	return model.Panel{
		Kind:      model.PanelSide,
		Width:     width,
		JointType: joint,
	}
}

// newLeftover builds the remnant left when a side panel is cut from a fresh
// full panel. A mitred cut leaves the complementary bevel on the remnant's
// left edge, so its longer face extends one wall thickness past the cut.
func (c *Cutter) newLeftover(cutWidth, wallThickness float64, joint model.JointType) model.Leftover {
	rest := c.Settings.MaxPanelWidth - cutWidth
	if joint == model.JointCut45 {
		return model.NewLeftover(wallThickness, rest+wallThickness, rest, model.EdgeCut45, model.EdgeStraight)
	}
	return model.NewLeftover(wallThickness, rest, rest, model.EdgeStraight, model.EdgeStraight)
}
