package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new projects
	DefaultMaxPanelWidth float64 `json:"default_max_panel_width"`
	DefaultTrimAllowance float64 `json:"default_trim_allowance"`
	DefaultThickness     float64 `json:"default_thickness"`
	DefaultWallHeight    float64 `json:"default_wall_height"`

	// Application preferences
	KeepLeftovers  bool     `json:"keep_leftovers"` // persist the leftover pool between projects
	RecentProjects []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig matching DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultMaxPanelWidth: defaults.MaxPanelWidth,
		DefaultTrimAllowance: defaults.TrimAllowance,
		DefaultThickness:     100.0,
		DefaultWallHeight:    2800.0,
		KeepLeftovers:        true,
		RecentProjects:       []string{},
	}
}

// ApplyToSettings copies the config defaults into a PlanSettings struct.
// Used when creating a new project so it inherits the user's saved defaults.
func (c AppConfig) ApplyToSettings(s *PlanSettings) {
	s.MaxPanelWidth = c.DefaultMaxPanelWidth
	s.TrimAllowance = c.DefaultTrimAllowance
}
