// Package config provides YAML-based game configuration loading and
// difficulty management for clawful.
package config

import (
	"fmt"

	"github.com/vovakirdan/clawful/internal/blob"
)

// ClawfulConfig contains all configuration for the claw game.
type ClawfulConfig struct {
	Board      ClawfulBoard     `yaml:"board"`
	Pile       ClawfulPile      `yaml:"pile"`
	Physics    ClawfulPhysics   `yaml:"physics"`
	Scoring    ClawfulScoring   `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ClawfulBoard defines the playfield dimensions.
type ClawfulBoard struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`    // Total rows, including the overflow area
	Ceiling int `yaml:"ceiling"` // Landing at or above this row ends the game
}

// ClawfulPile defines the hopper of waiting pieces.
type ClawfulPile struct {
	Capacity      int      `yaml:"capacity"`
	SpawnInterval int      `yaml:"spawn_interval"` // Ticks between spawns of one spawner
	BombChance    float64  `yaml:"bomb_chance"`
	MaxPoints     int      `yaml:"max_points"`
	Multipliers   bool     `yaml:"multipliers"`
	Colors        []string `yaml:"colors"`
	Prefill       int      `yaml:"prefill"` // Pieces in the pile when a game starts
}

// ClawfulPhysics defines how fast things move, in rows per tick.
type ClawfulPhysics struct {
	FallSpeed float64 `yaml:"fall_speed"` // Cascading cells
	DropSpeed float64 `yaml:"drop_speed"` // Pieces released by the claw
}

// ClawfulScoring defines the chain mode threshold.
type ClawfulScoring struct {
	ChainMinGroup int `yaml:"chain_min_group"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	SpeedMultiplier     float64 `yaml:"speed_multiplier"`      // Added to fall speed
	IntervalReduction   int     `yaml:"interval_reduction"`    // Ticks removed from the spawn interval
	BombChanceReduction float64 `yaml:"bomb_chance_reduction"` // Subtracted from the bomb chance
}

// Validate checks the values the engine would reject.
func (c ClawfulConfig) Validate() error {
	opts := c.BoardOptions(0)
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("config: board: %w", err)
	}
	if c.Pile.Capacity <= 0 {
		return fmt.Errorf("config: pile capacity must be positive, got %d", c.Pile.Capacity)
	}
	if c.Pile.SpawnInterval <= 0 {
		return fmt.Errorf("config: spawn interval must be positive, got %d", c.Pile.SpawnInterval)
	}
	if c.Physics.FallSpeed <= 0 || c.Physics.DropSpeed <= 0 {
		return fmt.Errorf("config: fall and drop speeds must be positive")
	}
	if _, err := c.SpawnOptions(); err != nil {
		return err
	}
	return nil
}

// BoardOptions converts the board section into engine options. minGroup is
// the auto-score threshold of the mode being played.
func (c ClawfulConfig) BoardOptions(minGroup int) blob.BoardOptions {
	return blob.BoardOptions{
		Columns:           c.Board.Columns,
		Rows:              c.Board.Rows,
		Ceiling:           c.Board.Ceiling,
		AutoScoreMinGroup: minGroup,
		ActivateOnLanding: true,
	}
}

// SpawnOptions converts the pile section into spawner options.
func (c ClawfulConfig) SpawnOptions() (blob.SpawnOptions, error) {
	opts := blob.SpawnOptions{
		MaxPoints:   c.Pile.MaxPoints,
		Multipliers: c.Pile.Multipliers,
		BombChance:  c.Pile.BombChance,
	}
	if opts.MaxPoints < 0 || opts.MaxPoints > blob.MaxPointValue {
		return opts, fmt.Errorf("config: max_points must be in 0..%d, got %d", blob.MaxPointValue, opts.MaxPoints)
	}
	for _, name := range c.Pile.Colors {
		key, err := blob.ParseColor(name)
		if err != nil {
			return opts, fmt.Errorf("config: pile colors: %w", err)
		}
		opts.Colors = append(opts.Colors, key)
	}
	if len(opts.Colors) == 0 {
		return opts, fmt.Errorf("config: pile needs at least one color")
	}
	return opts, nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a --difficulty value. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
