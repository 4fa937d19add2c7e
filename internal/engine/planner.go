package engine

import (
	"log/slog"

	"github.com/panelwright/wallplan/internal/model"
)

// Planner runs the full planning pipeline for one project: contact detection
// once over all walls, then joint resolution and panel cutting per wall in
// the order supplied by the caller, all against one shared leftover pool.
//
// The run is single-threaded by design: donor/consumer order on the pool is
// part of the algorithm's output, so processing order must be deterministic.
type Planner struct {
	Settings model.PlanSettings
	Detector *Detector
	Logger   *slog.Logger

	// Seed holds leftovers carried over from a previous run. Nil starts the
	// run with an empty pool.
	Seed []model.Leftover
}

// NewPlanner returns a planner with the given settings, a default detector,
// and a discarded log stream.
func NewPlanner(settings model.PlanSettings) *Planner {
	return &Planner{
		Settings: settings,
		Detector: NewDetector(),
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// Plan detects all wall contacts and cuts every wall. Counters reset at the
// start of each run; re-running on an unchanged wall set from a fresh pool
// produces an identical result.
func (p *Planner) Plan(walls []model.Wall) model.PlanResult {
	intersections := p.Detector.Detect(walls)
	return p.PlanWithIntersections(walls, intersections)
}

// PlanWithIntersections cuts every wall against a caller-supplied
// intersection set, for callers (editors) that maintain contacts themselves.
func (p *Planner) PlanWithIntersections(walls []model.Wall, intersections []model.Intersection) model.PlanResult {
	result := model.PlanResult{Intersections: intersections}

	pool := NewLeftoverPoolFrom(p.Seed)
	cutter := NewCutter(p.Settings, pool, &result.Analysis, p.Logger)

	for _, w := range walls {
		if err := w.Validate(); err != nil {
			result.WallErrors = append(result.WallErrors, model.WallError{WallID: w.ID, Message: err.Error()})
			p.Logger.Warn("wall rejected", "wall", w.ID, "error", err)
			continue
		}

		joints := ResolveJoints(w, intersections)
		panels, err := cutter.CutWall(w.Length(), w.Thickness, joints)
		if err != nil {
			result.WallErrors = append(result.WallErrors, model.WallError{WallID: w.ID, Message: err.Error()})
			p.Logger.Warn("wall rejected", "wall", w.ID, "error", err)
			continue
		}

		for _, panel := range panels {
			result.Manifest = append(result.Manifest, model.PanelRecord{
				WallID:      w.ID,
				Application: w.Application,
				Panel:       panel,
				Length:      w.Height,
			})
		}
		p.Logger.Info("wall planned",
			"wall", w.ID, "length", w.Length(),
			"left", joints.Left, "right", joints.Right,
			"panels", len(panels), "pool", pool.Len())
	}

	result.Leftovers = pool.Items()
	return result
}
