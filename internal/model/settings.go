package model

// PointEpsilon is the absolute per-axis tolerance, in mm, under which two
// points count as the same point. Near-coincident endpoints from user input
// are merged at this tolerance everywhere points are compared.
const PointEpsilon = 0.001

// PlanSettings holds the cutting constants for one planning run.
type PlanSettings struct {
	// MaxPanelWidth is the fixed manufactured panel width in mm.
	MaxPanelWidth float64 `json:"max_panel_width"`
	// TrimAllowance is the amount shaved off the last full panel, in mm, so
	// the adjoining side panel can be installed cleanly.
	TrimAllowance float64 `json:"trim_allowance"`
}

// DefaultSettings returns the standard manufacturing constants.
func DefaultSettings() PlanSettings {
	return PlanSettings{
		MaxPanelWidth: 1150.0,
		TrimAllowance: 20.0,
	}
}

// Project ties everything together for save/load.
type Project struct {
	Name          string         `json:"name"`
	Walls         []Wall         `json:"walls"`
	Intersections []Intersection `json:"intersections,omitempty"`
	Settings      PlanSettings   `json:"settings"`
	Result        *PlanResult    `json:"result,omitempty"`
}

// NewProject returns an empty project with default settings.
func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Walls:    []Wall{},
		Settings: DefaultSettings(),
	}
}
