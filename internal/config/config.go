// Package config provides YAML-based game configuration loading and
// difficulty management for the blaster.
package config

import (
	"github.com/vovakirdan/tui-blaster/internal/core"
)

// BlasterConfig contains all configuration for the blaster game.
type BlasterConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Phaser     PhaserConfig     `yaml:"phaser"`
	Endless    EndlessConfig    `yaml:"endless"`
	Levels     []LevelConfig    `yaml:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines the player's ship and its stock.
type PlayerConfig struct {
	Lives             int     `yaml:"lives"`
	Charges           int     `yaml:"charges"` // phaser charges per game
	Speed             float64 `yaml:"speed"`
	ShotSpeed         float64 `yaml:"shot_speed"`
	RespawnDelay      int     `yaml:"respawn_delay"`      // ticks
	InvulnerableTicks int     `yaml:"invulnerable_ticks"` // immunity after a respawn
}

// PhaserConfig defines the special weapon.
type PhaserConfig struct {
	Delay    int     `yaml:"delay"`     // ticks the field stays frozen
	BeamStep float64 `yaml:"beam_step"` // spacing of the drawn beam
}

// EndlessConfig defines how endless mode ramps up once the level list is exhausted.
type EndlessConfig struct {
	CycleSpeedup float64 `yaml:"cycle_speedup"` // added to the speed factor per full cycle
}

// LevelConfig is one wave of enemies.
type LevelConfig struct {
	Name   string        `yaml:"name"`
	Groups []GroupConfig `yaml:"groups"`
}

// GroupConfig is a number of enemies of one archetype.
type GroupConfig struct {
	Archetype string `yaml:"archetype"`
	Count     int    `yaml:"count"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "level", or "none"
	MaxAt int    `yaml:"max_at"` // Score/level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed at max difficulty
}

// Validate reports the first structural problem in cfg.
func (c BlasterConfig) Validate() error {
	if c.Player.Lives <= 0 {
		return core.Configf("validate config", "player.lives must be positive, got %d", c.Player.Lives)
	}
	if c.Player.Charges < 0 {
		return core.Configf("validate config", "player.charges must not be negative, got %d", c.Player.Charges)
	}
	if c.Player.Speed <= 0 || c.Player.ShotSpeed <= 0 {
		return core.Configf("validate config", "player speeds must be positive")
	}
	if c.Phaser.Delay <= 0 {
		return core.Configf("validate config", "phaser.delay must be positive, got %d", c.Phaser.Delay)
	}
	if len(c.Levels) == 0 {
		return core.Configf("validate config", "at least one level is required")
	}
	for i, lvl := range c.Levels {
		if len(lvl.Groups) == 0 {
			return core.Configf("validate config", "level %d (%s) has no groups", i+1, lvl.Name)
		}
		for _, g := range lvl.Groups {
			if g.Archetype == "" || g.Count <= 0 {
				return core.Configf("validate config", "level %d (%s): bad group %+v", i+1, lvl.Name, g)
			}
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset resolves a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", core.Configf("parse difficulty", "unknown preset %q (want easy, normal, hard or fixed)", name)
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
