package config

import "time"

// DifficultyManager calculates the current level and fall interval from
// cleared lines, applying the configured preset shaping.
type DifficultyManager struct {
	cfg        BlocksConfig
	startLevel int
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg BlocksConfig) *DifficultyManager {
	start := cfg.Difficulty.StartLevel
	if start < 1 {
		start = 1
	}
	return &DifficultyManager{
		cfg:        cfg,
		startLevel: start,
	}
}

// SetStartLevel overrides the starting level.
func (d *DifficultyManager) SetStartLevel(level int) {
	if level < 1 {
		level = 1
	}
	d.startLevel = level
}

// SetEnabled enables or disables level progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Difficulty.Enabled = enabled
}

// IsEnabled returns whether level progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Difficulty.Enabled
}

// Level returns the current level for the given total of cleared lines.
func (d *DifficultyManager) Level(linesCleared int) int {
	if !d.cfg.Difficulty.Enabled {
		return d.startLevel
	}

	perLevel := d.cfg.Gameplay.LinesPerLevel
	if perLevel <= 0 {
		perLevel = 10
	}

	level := d.startLevel + linesCleared/perLevel
	if max := d.cfg.Gameplay.MaxLevel; max > 0 && level > max {
		level = max
	}
	return level
}

// FallInterval returns the gravity period for a level, scaled by the
// preset's gravity multiplier.
func (d *DifficultyManager) FallInterval(level int) time.Duration {
	table := d.cfg.Timing.GravityMS
	if len(table) == 0 {
		return time.Second
	}

	idx := level - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(table) {
		idx = len(table) - 1
	}

	ms := float64(table[idx])
	if scale := d.cfg.Difficulty.GravityScale; scale > 0 {
		ms *= scale
	}
	if ms < 1 {
		ms = 1
	}
	return time.Duration(ms) * time.Millisecond
}

// LockDelay returns the configured lock grace window.
func (d *DifficultyManager) LockDelay() time.Duration {
	if d.cfg.Timing.LockDelayMS <= 0 {
		return 0
	}
	return time.Duration(d.cfg.Timing.LockDelayMS) * time.Millisecond
}
