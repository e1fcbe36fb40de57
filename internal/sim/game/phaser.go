package game

import (
	"math"

	"github.com/vovakirdan/tui-blaster/internal/core"
	"github.com/vovakirdan/tui-blaster/internal/sim/entity"
)

// firePhaser arms the special weapon when it is legal: a live player, a
// charge left, at least one enemy and no phaser already resolving. The target
// is picked uniformly at random and destroyed PhaserDelay ticks later while the
// simulation stays paused.
func (o *Orchestrator) firePhaser(tick uint64, ev *StepEvents) {
	s := &o.state
	if s.Player == nil || s.Charges <= 0 || len(s.Enemies) == 0 || s.PhaserResolving() {
		return
	}

	target := s.Enemies[o.rng.Intn(len(s.Enemies))]
	s.Charges--
	o.ledger.ConsumeSpecialWeaponCharge()

	w, h := float64(o.shotFrame.Width()), float64(o.shotFrame.Height())
	s.BeamPath = beam(s.Player.Muzzle(w, h), target.CenterLocation(), o.tuning.BeamStep)
	s.PhaserTarget = target
	s.Paused = true

	o.events.schedule(tick+o.tuning.PhaserDelay, eventPhaserResolve, target)
	ev.PhaserArmed = true
	o.log.Debug("phaser armed", "target", target.Archetype(), "charges", s.Charges, "resolve_at", tick+o.tuning.PhaserDelay)
}

// resolvePhaser resumes the simulation and destroys the target if it is still
// live. A target already destroyed by an ordinary hit is neither removed nor
// scored again.
func (o *Orchestrator) resolvePhaser(target *entity.Enemy, ev *StepEvents) {
	s := &o.state
	s.Paused = false
	s.BeamPath = nil
	s.PhaserTarget = nil
	ev.PhaserResolved = true

	if !s.hasEnemy(target) {
		o.log.Debug("phaser target already gone")
		return
	}
	if o.destroyEnemy(target) {
		ev.Kills++
	}
}

// beam returns points from a to b spaced step pixels apart, both ends included.
func beam(a, b core.GameLocation, step float64) []core.GameLocation {
	if step <= 0 {
		step = 1
	}
	n := int(math.Ceil(a.Distance(b) / step))
	if n == 0 {
		return []core.GameLocation{a}
	}
	path := make([]core.GameLocation, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		path = append(path, core.Loc(a.Left+(b.Left-a.Left)*t, a.Top+(b.Top-a.Top)*t))
	}
	return path
}
