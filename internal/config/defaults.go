package config

import (
	_ "embed"
)

//go:embed defaults/blaster.yaml
var defaultBlasterYAML []byte

// DefaultBlasterConfig returns the hard-coded blaster configuration used when
// the embedded YAML cannot be read.
func DefaultBlasterConfig() BlasterConfig {
	return BlasterConfig{
		Player: PlayerConfig{
			Lives:             3,
			Charges:           3,
			Speed:             1,
			ShotSpeed:         1.2,
			RespawnDelay:      60,
			InvulnerableTicks: 90,
		},
		Phaser: PhaserConfig{
			Delay:    45,
			BeamStep: 1,
		},
		Endless: EndlessConfig{
			CycleSpeedup: 0.25,
		},
		Levels: []LevelConfig{
			{Name: "first contact", Groups: []GroupConfig{{Archetype: "saucer", Count: 8}}},
			{Name: "streak", Groups: []GroupConfig{
				{Archetype: "saucer", Count: 6},
				{Archetype: "streaker", Count: 4},
			}},
			{Name: "armor", Groups: []GroupConfig{
				{Archetype: "tank", Count: 3},
				{Archetype: "wobbler", Count: 6},
			}},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}
