package game

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blaster/internal/core"
	"github.com/vovakirdan/tui-blaster/internal/sim/asset"
	"github.com/vovakirdan/tui-blaster/internal/sim/location"
)

// Tuning holds the gameplay constants of a simulation. Durations are in ticks.
type Tuning struct {
	Lives             int
	Charges           int     // special-weapon charges per game
	PlayerSpeed       float64 // pixels per tick
	ShotSpeed         float64 // player projectile, pixels per tick
	PhaserDelay       uint64  // pause before the special weapon resolves
	BeamStep          float64 // spacing of the drawn beam points
	RespawnDelay      uint64
	InvulnerableTicks uint64 // immunity after a respawn
}

// DefaultTuning returns the values used when no configuration is supplied.
func DefaultTuning() Tuning {
	return Tuning{
		Lives:             3,
		Charges:           3,
		PlayerSpeed:       1,
		ShotSpeed:         1.2,
		PhaserDelay:       45,
		BeamStep:          1,
		RespawnDelay:      60,
		InvulnerableTicks: 90,
	}
}

// Options configures an Orchestrator.
type Options struct {
	Field  core.Field
	Assets *asset.Library
	Rng    location.Rand
	Tuning Tuning
	Ledger Ledger      // nil discards events
	Logger *log.Logger // nil discards logs
}
