package entity

import (
	"math"

	"github.com/vovakirdan/tui-blaster/internal/core"
	"github.com/vovakirdan/tui-blaster/internal/sim/animation"
	"github.com/vovakirdan/tui-blaster/internal/sim/asset"
	"github.com/vovakirdan/tui-blaster/internal/sim/location"
)

// AimFunc returns the firing angle, in degrees, for a shot leaving from.
type AimFunc func(from core.GameLocation) float64

// Enemy binds a location provider and a frame provider to the static data of
// its archetype. It never references the simulation that owns it.
type Enemy struct {
	id        int
	archetype Archetype
	data      asset.EnemyAsset
	explosion asset.ExplosionAsset

	location location.Provider
	frames   animation.Provider
	damage   *animation.Static // set for archetypes that show damage
	heading  *animation.Static // set for archetypes that face their heading

	width  float64
	height float64

	frame  core.Frame
	origin core.GameLocation

	frameInterval     uint64
	baseFrameInterval uint64
	nextFrameTick     uint64

	hitPoints int
	aim       AimFunc

	lastFireTick uint64
}

// ID returns the identifier assigned at creation.
func (e *Enemy) ID() int { return e.id }

// Kind returns KindEnemy.
func (e *Enemy) Kind() Kind { return KindEnemy }

// Archetype returns the enemy's archetype.
func (e *Enemy) Archetype() Archetype { return e.archetype }

// Update advances animation on the enemy's own frame timer and movement on
// every tick, then recomputes the render origin from the offset table.
func (e *Enemy) Update(tick uint64) {
	switch {
	case e.nextFrameTick == 0:
		e.nextFrameTick = tick + e.frameInterval
	case tick >= e.nextFrameTick:
		mustFrame(e.frames.NextFrame())
		e.nextFrameTick = tick + e.frameInterval
	}

	e.location.Update(tick)

	if e.heading != nil {
		if d, ok := e.location.(location.Directional); ok {
			idx := 1
			if d.MovingLeft() {
				idx = 0
			}
			e.heading.SetIndex(idx)
		}
	}

	e.refresh()
}

// refresh caches the current frame and its render origin.
func (e *Enemy) refresh() {
	e.frame = mustFrame(e.frames.CurrentFrame())
	idx := e.frames.CurrentIndex()
	offset := core.GameLocation{}
	if idx >= 0 && idx < len(e.data.Offsets) {
		offset = e.data.Offsets[idx]
	}
	e.origin = e.location.Location().Add(offset)
}

// Location returns the top-left corner of the hitbox.
func (e *Enemy) Location() core.GameLocation {
	return e.location.Location()
}

// Hitbox returns the enemy's footprint at its current location.
func (e *Enemy) Hitbox() core.GameRectangle {
	return core.RectAt(e.location.Location(), e.width, e.height)
}

// CenterLocation returns the center of the hitbox.
func (e *Enemy) CenterLocation() core.GameLocation {
	return e.Hitbox().Center()
}

// Hittable reports whether the enemy can currently be struck. A cloaker
// showing its invisible frame cannot.
func (e *Enemy) Hittable() bool {
	return !e.frame.Empty()
}

// Explosion returns the explosion template spawned when the enemy dies.
func (e *Enemy) Explosion() asset.ExplosionAsset {
	return e.explosion
}

// Points returns the score awarded for destroying the enemy.
func (e *Enemy) Points() int {
	return e.data.Points
}

// Frame returns the frame drawn on the last update.
func (e *Enemy) Frame() core.Frame {
	return e.frame
}

// Origin returns the render origin computed on the last update.
func (e *Enemy) Origin() core.GameLocation {
	return e.origin
}

// FrameIndex returns the current animation frame index.
func (e *Enemy) FrameIndex() int {
	return e.frames.CurrentIndex()
}

// FrameInterval returns the ticks between animation frames.
func (e *Enemy) FrameInterval() uint64 {
	return e.frameInterval
}

// IncreaseSpeed rescales movement and the frame interval by the same factor,
// both relative to their values at creation.
func (e *Enemy) IncreaseSpeed(factor float64) {
	if factor <= 0 {
		return
	}
	e.location.IncreaseSpeed(factor)
	interval := uint64(math.Round(float64(e.baseFrameInterval) / factor))
	e.frameInterval = max(interval, 1)
}

// Speed returns the current movement speed when the location provider
// exposes one.
func (e *Enemy) Speed() (float64, bool) {
	s, ok := e.location.(interface{ Speed() float64 })
	if !ok {
		return 0, false
	}
	return s.Speed(), true
}

// FireAngle evaluates the bound aim function against the enemy's center.
// ok is false when the enemy has no weapon.
func (e *Enemy) FireAngle() (angle float64, ok bool) {
	if e.aim == nil {
		return 0, false
	}
	return e.aim(e.CenterLocation()), true
}

// Weapon returns the archetype's firing parameters.
func (e *Enemy) Weapon() Weapon {
	return Weapon{
		Interval:    e.data.FireInterval,
		Chance:      e.data.FireChance,
		MaxBullets:  e.data.MaxBullets,
		BulletSpeed: e.data.BulletSpeed,
	}
}

// Weapon describes how often and how hard an enemy shoots.
type Weapon struct {
	Interval    uint64
	Chance      float64
	MaxBullets  int
	BulletSpeed float64
}

// LastFireTick returns the tick of the enemy's most recent shot.
func (e *Enemy) LastFireTick() uint64 {
	return e.lastFireTick
}

// MarkFired records a shot at tick.
func (e *Enemy) MarkFired(tick uint64) {
	e.lastFireTick = tick
}

// HitPoints returns the remaining hit points.
func (e *Enemy) HitPoints() int {
	return e.hitPoints
}

// Hit applies one point of damage and reports whether the enemy is destroyed.
// Armored archetypes switch to the matching damage frame.
func (e *Enemy) Hit() bool {
	e.hitPoints--
	if e.hitPoints <= 0 {
		return true
	}
	if e.damage != nil {
		e.damage.SetIndex(e.data.HitPoints - e.hitPoints)
		e.refresh()
	}
	return false
}

// Draw renders the current frame with the archetype palette applied.
func (e *Enemy) Draw(r core.Renderer) {
	if e.frame.Empty() {
		return
	}
	r.Draw(e.origin, e.frame.Recolor(e.data.Palette))
}

// mustFrame unwraps a frame provider result. Providers are configured by the
// factory before the enemy escapes, so an error here is a broken invariant.
func mustFrame(f core.Frame, err error) core.Frame {
	if err != nil {
		panic(err)
	}
	return f
}
