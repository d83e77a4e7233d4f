package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const clawfulFile = "clawful.yaml"

// LoadClawful loads the game configuration.
// Search order: customPath -> ~/.clawful/configs/clawful.yaml -> ./configs/clawful.yaml -> embedded default
func LoadClawful(customPath string) (ClawfulConfig, error) {
	// Unset keys keep their default values.
	cfg := DefaultClawfulConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(clawfulFile); userCfgPath != "" {
		if c, ok := tryFile(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryFile(filepath.Join("configs", clawfulFile)); ok {
		return c, nil
	}

	// Use embedded default YAML
	embedded := DefaultClawfulConfig()
	if err := yaml.Unmarshal(defaultClawfulYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultClawfulConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryFile parses an optional config file. Unreadable or invalid files are
// skipped so the next location in the search order is used.
func tryFile(path string) (ClawfulConfig, bool) {
	cfg := DefaultClawfulConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".clawful", "configs", filename)
}

// ApplyClawfulPreset modifies the config based on a difficulty preset.
func ApplyClawfulPreset(cfg *ClawfulConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// A bigger pile and more bombs make it harder to run out of moves.
	switch preset {
	case DifficultyEasy:
		cfg.Pile.Capacity = 40
		cfg.Pile.BombChance = 0.15
	case DifficultyHard:
		cfg.Pile.Capacity = 20
		cfg.Pile.BombChance = 0.06
	}
}
