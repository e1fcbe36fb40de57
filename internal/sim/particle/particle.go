// Package particle implements projectiles and explosions: free-flying
// particles that live until they leave the field, and explosion centers that
// burn for a fixed number of ticks.
package particle

import (
	"github.com/vovakirdan/tui-blaster/internal/core"
	"github.com/vovakirdan/tui-blaster/internal/sim/entity"
)

// DefaultMargin is how far outside the field a particle may travel before it
// stops being tracked.
const DefaultMargin = 4

// Config describes a particle at launch.
type Config struct {
	Kind         entity.Kind // KindShrapnel, KindBullet or KindPlayerShot
	Origin       core.GameLocation
	Angle        float64 // degrees
	Speed        float64
	Acceleration float64 // speed multiplier per update; 0 means 1
	Frame        core.Frame
	Field        core.Field
	Margin       float64
	Delay        int           // updates to stay dormant before moving
	Owner        *entity.Enemy // firing enemy, bullets only
}

// Particle is a single moving sprite.
type Particle struct {
	kind         entity.Kind
	loc          core.GameLocation
	angle        float64
	speed        float64
	acceleration float64
	frame        core.Frame
	bounds       core.GameRectangle
	dormant      int
	owner        *entity.Enemy
}

// New launches a particle.
func New(cfg Config) *Particle {
	accel := cfg.Acceleration
	if accel == 0 {
		accel = 1
	}
	return &Particle{
		kind:         cfg.Kind,
		loc:          cfg.Origin,
		angle:        cfg.Angle,
		speed:        cfg.Speed,
		acceleration: accel,
		frame:        cfg.Frame,
		bounds:       cfg.Field.Rect().Expand(cfg.Margin),
		dormant:      cfg.Delay,
		owner:        cfg.Owner,
	}
}

// NewBullet launches an enemy bullet owned by owner.
func NewBullet(owner *entity.Enemy, origin core.GameLocation, angle, speed float64, frame core.Frame, field core.Field) *Particle {
	return New(Config{
		Kind:   entity.KindBullet,
		Origin: origin,
		Angle:  angle,
		Speed:  speed,
		Frame:  frame,
		Field:  field,
		Margin: DefaultMargin,
		Owner:  owner,
	})
}

// NewPlayerShot launches the player's projectile straight up.
func NewPlayerShot(origin core.GameLocation, speed float64, frame core.Frame, field core.Field) *Particle {
	return New(Config{
		Kind:   entity.KindPlayerShot,
		Origin: origin,
		Angle:  90,
		Speed:  speed,
		Frame:  frame,
		Field:  field,
		Margin: DefaultMargin,
	})
}

// Kind returns the particle's discriminant.
func (p *Particle) Kind() entity.Kind { return p.kind }

// Owner returns the enemy that fired a bullet, nil for other kinds.
func (p *Particle) Owner() *entity.Enemy { return p.owner }

// Location returns the top-left corner.
func (p *Particle) Location() core.GameLocation { return p.loc }

// Speed returns the current speed.
func (p *Particle) Speed() float64 { return p.speed }

// Angle returns the heading in degrees.
func (p *Particle) Angle() float64 { return p.angle }

// Frame returns the sprite.
func (p *Particle) Frame() core.Frame { return p.frame }

// Dormant reports whether the particle is still waiting for its explosion's
// burst to finish. Dormant particles neither move, draw nor collide.
func (p *Particle) Dormant() bool { return p.dormant > 0 }

// Update moves the particle along its heading and then applies acceleration.
func (p *Particle) Update() {
	if p.dormant > 0 {
		p.dormant--
		return
	}
	p.loc = p.loc.Add(core.Step(p.angle, p.speed))
	p.speed *= p.acceleration
}

// Traveling reports whether the particle is still inside the field expanded
// by its margin. Once false the particle must be pruned.
func (p *Particle) Traveling() bool {
	return p.bounds.Contains(p.loc)
}

// Hitbox returns the particle's rectangle.
func (p *Particle) Hitbox() core.GameRectangle {
	return core.RectAt(p.loc, float64(p.frame.Width()), float64(p.frame.Height()))
}

// Draw renders the particle unless it is dormant.
func (p *Particle) Draw(r core.Renderer) {
	if p.Dormant() {
		return
	}
	r.Draw(p.loc, p.frame)
}
