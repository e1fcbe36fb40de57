package particle

import (
	"github.com/vovakirdan/tui-blaster/internal/core"
	"github.com/vovakirdan/tui-blaster/internal/sim/asset"
	"github.com/vovakirdan/tui-blaster/internal/sim/entity"
)

// ExplosionCenter is the burst frame of an explosion. It is Bursting while
// fewer than delay updates have elapsed and Exhausted afterwards; Exhausted is
// terminal.
type ExplosionCenter struct {
	loc     core.GameLocation
	frame   core.Frame
	delay   int
	elapsed int
}

// NewExplosionCenter creates a burst whose frame is centered on at.
func NewExplosionCenter(at core.GameLocation, frame core.Frame, delay int) *ExplosionCenter {
	return &ExplosionCenter{
		loc:   centered(at, frame),
		frame: frame,
		delay: delay,
	}
}

// Kind returns KindExplosionCenter.
func (c *ExplosionCenter) Kind() entity.Kind { return entity.KindExplosionCenter }

// Burning reports whether the burst is still shown.
func (c *ExplosionCenter) Burning() bool {
	return c.elapsed < c.delay
}

// Update counts one elapsed tick. Exhausted centers stay exhausted.
func (c *ExplosionCenter) Update() {
	if c.Burning() {
		c.elapsed++
	}
}

// Elapsed returns the number of ticks burned so far.
func (c *ExplosionCenter) Elapsed() int { return c.elapsed }

// Delay returns the burn duration.
func (c *ExplosionCenter) Delay() int { return c.delay }

// Location returns the top-left corner of the burst frame.
func (c *ExplosionCenter) Location() core.GameLocation { return c.loc }

// Hitbox returns the burst rectangle.
func (c *ExplosionCenter) Hitbox() core.GameRectangle {
	return core.RectAt(c.loc, float64(c.frame.Width()), float64(c.frame.Height()))
}

// Draw renders the burst while it is burning.
func (c *ExplosionCenter) Draw(r core.Renderer) {
	if !c.Burning() {
		return
	}
	r.Draw(c.loc, c.frame)
}

// Spawn creates the center and shrapnel of an explosion at the given point.
// Particle i uses Angles[i], the shrapnel frame at ParticleFrameIndexes[i] and
// the shared or per-particle speed. Shrapnel stays dormant while the center
// burns. The asset must have passed Validate.
func Spawn(e asset.ExplosionAsset, at core.GameLocation, field core.Field) (*ExplosionCenter, []*Particle) {
	center := NewExplosionCenter(at, e.Center, e.CenterDelay)

	particles := make([]*Particle, 0, len(e.Angles))
	for i, angle := range e.Angles {
		frame := e.ParticleFrame(i)
		particles = append(particles, New(Config{
			Kind:         entity.KindShrapnel,
			Origin:       centered(at, frame),
			Angle:        angle,
			Speed:        e.ParticleSpeed(i),
			Acceleration: e.Acceleration,
			Frame:        frame,
			Field:        field,
			Margin:       DefaultMargin,
			Delay:        e.CenterDelay,
		}))
	}
	return center, particles
}

// centered returns the top-left corner that centers frame on at.
func centered(at core.GameLocation, frame core.Frame) core.GameLocation {
	return core.Loc(at.Left-float64(frame.Width())/2, at.Top-float64(frame.Height())/2)
}
