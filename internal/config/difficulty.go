package config

// DifficultyManager ramps scroll speed with score. Speed is a non-decreasing
// step function of score: it rises by StepAmount each time the score reaches
// a positive multiple of StepEvery.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	if cfg.StepEvery <= 0 {
		cfg.StepEvery = 1 // Prevent division by zero
	}
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether speed progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.StepAmount > 0
}

// BaseSpeed returns the speed at score 0.
func (d *DifficultyManager) BaseSpeed() int {
	return d.cfg.BaseSpeed
}

// Advance is called after the score was incremented. It returns the new speed
// and whether the score just crossed a step threshold.
func (d *DifficultyManager) Advance(score, speed int) (int, bool) {
	if !d.IsEnabled() || score <= 0 || score%d.cfg.StepEvery != 0 {
		return speed, false
	}
	return speed + d.cfg.StepAmount, true
}
