package game

import (
	"github.com/vovakirdan/tui-blaster/internal/core"
	"github.com/vovakirdan/tui-blaster/internal/sim/entity"
	"github.com/vovakirdan/tui-blaster/internal/sim/particle"
)

// fireControl lets every armed enemy shoot at the player. Nothing fires while
// the player is dead.
func (o *Orchestrator) fireControl(tick uint64) {
	if o.state.Player == nil {
		return
	}
	for _, e := range o.state.Enemies {
		if !o.shouldFire(e, tick) {
			continue
		}
		angle, ok := e.FireAngle()
		if !ok {
			continue
		}
		hb := e.Hitbox()
		origin := core.Loc(hb.Center().Left-float64(o.bulletFrame.Width())/2, hb.Bottom)
		o.state.Particles = append(o.state.Particles,
			particle.NewBullet(e, origin, angle, e.Weapon().BulletSpeed, o.bulletFrame, o.field))
		e.MarkFired(tick)
	}
}

// shouldFire is the fire-control predicate. Evaluating it without a live
// player is an ordering bug and panics with *core.LogicGuard.
func (o *Orchestrator) shouldFire(e *entity.Enemy, tick uint64) bool {
	if o.state.Player == nil {
		panic(&core.LogicGuard{Op: "fire control", Message: "predicate evaluated with no live player"})
	}

	w := e.Weapon()
	if w.Interval == 0 || !e.Hittable() {
		return false
	}
	if e.LastFireTick() != 0 && tick-e.LastFireTick() < w.Interval {
		return false
	}
	if o.state.liveBullets(e) >= w.MaxBullets {
		return false
	}
	return o.rng.Float64() < w.Chance
}
