// Package collision detects hitbox overlaps between the player, the player's
// shot and everything that can hurt the player. It reports what happened and
// leaves the consequences to the caller.
package collision

import (
	"github.com/vovakirdan/tui-blaster/internal/core"
	"github.com/vovakirdan/tui-blaster/internal/sim/entity"
	"github.com/vovakirdan/tui-blaster/internal/sim/particle"
)

// Hittable is any object with a kind and a hitbox.
type Hittable interface {
	Kind() entity.Kind
	Hitbox() core.GameRectangle
}

// Hits reports whether two objects overlap.
func Hits(a, b Hittable) bool {
	return core.Overlaps(a.Hitbox(), b.Hitbox())
}

// World is the read-only view of one tick's objects.
type World struct {
	Player             *entity.Player // nil while the player is dead
	PlayerInvulnerable bool
	Shot               *particle.Particle // nil while no shot is in flight
	Enemies            []*entity.Enemy
	Particles          []*particle.Particle
	Centers            []*particle.ExplosionCenter
}

// Result lists the collisions found in a World.
type Result struct {
	// ShotVictim is the enemy struck by the player's shot.
	ShotVictim *entity.Enemy

	// PlayerHit is set when the player touched a hittable object.
	PlayerHit bool
	// PlayerHitBy is the kind of object that struck the player.
	PlayerHitBy entity.Kind
}

// Resolve tests the shot against enemies, then the player against enemies,
// active particles and burning explosion centers. The enemy struck by the shot
// is no longer a threat to the player in the same tick.
func Resolve(w World) Result {
	var res Result

	if w.Shot != nil {
		for _, e := range w.Enemies {
			if e.Hittable() && Hits(w.Shot, e) {
				res.ShotVictim = e
				break
			}
		}
	}

	if w.Player == nil || w.PlayerInvulnerable {
		return res
	}

	for _, e := range w.Enemies {
		if e == res.ShotVictim || !e.Hittable() {
			continue
		}
		if Hits(w.Player, e) {
			return res.hitBy(e.Kind())
		}
	}
	for _, p := range w.Particles {
		if p.Dormant() || p.Kind() == entity.KindPlayerShot {
			continue
		}
		if Hits(w.Player, p) {
			return res.hitBy(p.Kind())
		}
	}
	for _, c := range w.Centers {
		if c.Burning() && Hits(w.Player, c) {
			return res.hitBy(c.Kind())
		}
	}
	return res
}

func (r Result) hitBy(k entity.Kind) Result {
	r.PlayerHit = true
	r.PlayerHitBy = k
	return r
}
