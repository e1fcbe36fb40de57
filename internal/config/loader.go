package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlaster loads the blaster configuration. Keys missing from a file keep
// their default values.
// Search order: customPath -> ~/.blaster/configs/blaster.yaml -> ./configs/blaster.yaml -> embedded default
func LoadBlaster(customPath string) (BlasterConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BlasterConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseBlaster(data)
		if err != nil {
			return BlasterConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("blaster.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseBlaster(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/blaster.yaml"); err == nil {
		if cfg, err := ParseBlaster(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseBlaster(defaultBlasterYAML)
	if err != nil {
		return DefaultBlasterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseBlaster decodes YAML on top of the hard-coded defaults and validates
// the result.
func ParseBlaster(data []byte) (BlasterConfig, error) {
	cfg := DefaultBlasterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlasterConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BlasterConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blaster", "configs", filename)
}

// ApplyBlasterPreset modifies the config based on a difficulty preset.
func ApplyBlasterPreset(cfg *BlasterConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the player's stock based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Player.Charges = 5
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Player.Charges = 1
		cfg.Phaser.Delay = max(cfg.Phaser.Delay/2, 1)
	}
}
