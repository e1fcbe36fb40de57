// Package game runs the simulation: it owns the shared State, advances every
// entity once per tick in a fixed order, resolves collisions and reports the
// outcome to a Ledger.
package game

import (
	"github.com/vovakirdan/tui-blaster/internal/core"
	"github.com/vovakirdan/tui-blaster/internal/sim/entity"
	"github.com/vovakirdan/tui-blaster/internal/sim/particle"
)

// State is the mutable record of one simulation. Only the Orchestrator adds or
// removes members; entities never reference it.
type State struct {
	Tick uint64

	Enemies    []*entity.Enemy
	Particles  []*particle.Particle
	Centers    []*particle.ExplosionCenter
	Player     *entity.Player     // nil while dead
	PlayerShot *particle.Particle // the single live player projectile

	Paused   bool
	GameOver bool

	TotalEnemiesAtLevelStart int

	Score   int
	Lives   int
	Charges int
	Level   int

	// BeamPath is the special weapon's beam while it is resolving.
	BeamPath     []core.GameLocation
	PhaserTarget *entity.Enemy
}

// PhaserResolving reports whether a special-weapon shot is pending.
func (s *State) PhaserResolving() bool {
	return s.PhaserTarget != nil
}

// hasEnemy reports whether e is still a live member.
func (s *State) hasEnemy(e *entity.Enemy) bool {
	for _, x := range s.Enemies {
		if x == e {
			return true
		}
	}
	return false
}

// removeEnemy drops e and reports whether it was present.
func (s *State) removeEnemy(e *entity.Enemy) bool {
	for i, x := range s.Enemies {
		if x == e {
			s.Enemies = append(s.Enemies[:i], s.Enemies[i+1:]...)
			return true
		}
	}
	return false
}

// liveBullets counts the bullets in flight fired by owner.
func (s *State) liveBullets(owner *entity.Enemy) int {
	n := 0
	for _, p := range s.Particles {
		if p.Kind() == entity.KindBullet && p.Owner() == owner {
			n++
		}
	}
	return n
}

// Ledger receives the semantic events of the simulation. It never drives the
// simulation back.
type Ledger interface {
	IncreaseScore(n int)
	RemoveLife()
	NextLevel()
	ConsumeSpecialWeaponCharge()
}

type nopLedger struct{}

func (nopLedger) IncreaseScore(int)           {}
func (nopLedger) RemoveLife()                 {}
func (nopLedger) NextLevel()                  {}
func (nopLedger) ConsumeSpecialWeaponCharge() {}

// Input is the per-tick snapshot of player intent.
type Input struct {
	Left, Right, Up, Down bool
	Fire                  bool
	SpecialWeapon         bool
	SelfDestruct          bool
	Pause                 bool // toggles the pause flag
}

// StepEvents summarizes what happened during one Step.
type StepEvents struct {
	Kills          int
	PlayerDied     bool
	SelfDestructed bool
	PhaserArmed    bool
	PhaserResolved bool
	LevelComplete  bool
	GameOver       bool
}
