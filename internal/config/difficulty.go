package config

// DifficultyManager maps progress (score or ticks) to a level in [0, 1]
// and scales the machine parameters by it.
type DifficultyManager struct {
	cfg  DifficultyConfig
	base float64
}

// NewDifficultyManager starts at cfg.InitialLevel.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, base: unit(cfg.InitialLevel)}
}

// SetInitialLevel moves the starting level.
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.base = unit(level)
}

// SetEnabled turns progression on or off; the initial level still applies.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled reports whether the level moves at all.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level interpolates from the initial level to 1 as score (or ticks,
// depending on the progression type) approaches MaxAt.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.base
	}

	var progress int
	switch d.cfg.Progression.Type {
	case "score":
		progress = score
	case "time":
		progress = ticks
	default:
		return d.base
	}

	span := float64(max(d.cfg.Progression.MaxAt, 1))
	return d.base + unit(float64(progress)/span)*(1-d.base)
}

// Speed scales a fall speed in cells per tick.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnInterval shortens the ticks between hopper spawns, never below 1.
func (d *DifficultyManager) SpawnInterval(base, score, ticks int) int {
	cut := int(d.Level(score, ticks) * float64(d.cfg.Scaling.IntervalReduction))
	return max(base-cut, 1)
}

// BombChance lowers the bomb probability as the level rises.
func (d *DifficultyManager) BombChance(base float64, score, ticks int) float64 {
	return unit(base - d.Level(score, ticks)*d.cfg.Scaling.BombChanceReduction)
}

// unit clamps v to [0, 1].
func unit(v float64) float64 {
	return min(max(v, 0), 1)
}
