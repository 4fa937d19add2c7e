package model

// PanelKind classifies how a panel was produced.
type PanelKind string

const (
	PanelFull     PanelKind = "full"     // cut at the full manufactured width
	PanelSide     PanelKind = "side"     // remainder panel cut fresh from a new full panel
	PanelLeftover PanelKind = "leftover" // remainder panel cut from a pooled leftover
)

// Panel is one panel produced for a wall. Panels are immutable once produced.
type Panel struct {
	Kind        PanelKind `json:"kind"`
	Width       float64   `json:"width"`                  // nominal width in mm
	ActualWidth float64   `json:"actual_width,omitempty"` // set when a full panel is trimmed
	JointType   JointType `json:"joint_type,omitempty"`   // side/leftover panels only
	LeftoverID  string    `json:"leftover_id,omitempty"`  // donor leftover, leftover panels only
	Note        string    `json:"note,omitempty"`
}

// EffectiveWidth returns the installed width: ActualWidth when a trim was
// applied, Width otherwise. Summing effective widths over a wall's panels
// reproduces the wall length exactly.
func (p Panel) EffectiveWidth() float64 {
	if p.ActualWidth > 0 {
		return p.ActualWidth
	}
	return p.Width
}

// PanelRecord is one manifest row: a panel bound to the wall it covers.
type PanelRecord struct {
	WallID      string          `json:"wall_id"`
	Application ApplicationType `json:"application"`
	Panel       Panel           `json:"panel"`
	Length      float64         `json:"length"` // equals the wall height
}

// Analysis holds running totals for one planning run.
//
// CutPanels counts side panels cut fresh, each of which opens one new full
// panel, so FullPanelsUsedForCutting tracks it; leftover-derived panels
// increment LeftoverPanels only.
type Analysis struct {
	FullPanels               int `json:"full_panels"`
	CutPanels                int `json:"cut_panels"`
	LeftoverPanels           int `json:"leftover_panels"`
	FullPanelsUsedForCutting int `json:"full_panels_used_for_cutting"`
	TotalPanels              int `json:"total_panels"`
}

// WallError records a wall that was rejected during planning. One bad wall
// does not abort the rest of the project.
type WallError struct {
	WallID  string `json:"wall_id"`
	Message string `json:"message"`
}

// PlanResult is the output of one full planning run.
type PlanResult struct {
	Manifest      []PanelRecord  `json:"manifest"`
	Leftovers     []Leftover     `json:"leftovers"`
	Intersections []Intersection `json:"intersections"`
	Analysis      Analysis       `json:"analysis"`
	WallErrors    []WallError    `json:"wall_errors,omitempty"`
}

// PanelsFor returns the manifest entries belonging to one wall, in cut order.
func (r PlanResult) PanelsFor(wallID string) []PanelRecord {
	var records []PanelRecord
	for _, rec := range r.Manifest {
		if rec.WallID == wallID {
			records = append(records, rec)
		}
	}
	return records
}
