package config

import (
	_ "embed"

	"github.com/vovakirdan/clawful/internal/blob"
)

//go:embed defaults/clawful.yaml
var defaultClawfulYAML []byte

// DefaultClawfulConfig returns the built-in configuration. It mirrors
// defaults/clawful.yaml and is used when the embedded file cannot be parsed.
func DefaultClawfulConfig() ClawfulConfig {
	return ClawfulConfig{
		Board: ClawfulBoard{
			Columns: 6,
			Rows:    9,
			Ceiling: 8,
		},
		Pile: ClawfulPile{
			Capacity:      30,
			SpawnInterval: 90,
			BombChance:    0.1,
			MaxPoints:     blob.MaxPointValue,
			Multipliers:   true,
			Colors:        []string{"white", "red"},
			Prefill:       6,
		},
		Physics: ClawfulPhysics{
			FallSpeed: 0.25,
			DropSpeed: 0.5,
		},
		Scoring: ClawfulScoring{
			ChainMinGroup: 4,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 400,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:     1.0,
				IntervalReduction:   60,
				BombChanceReduction: 0.05,
			},
		},
	}
}
