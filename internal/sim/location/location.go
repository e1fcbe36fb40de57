// Package location computes where an entity is on each tick. Every variant
// is a small movement strategy that an entity holds by handle; none of them
// know anything about sprites, collisions or the simulation state.
package location

import (
	"math"

	"github.com/vovakirdan/tui-blaster/internal/core"
)

// Provider is a movement strategy.
type Provider interface {
	// Location returns the entity's top-left position.
	Location() core.GameLocation

	// Update advances the position for the given tick.
	Update(tick uint64)

	// IncreaseSpeed rescales movement to base speed * factor. The base speed is
	// remembered at construction, so repeated calls never compound.
	IncreaseSpeed(factor float64)
}

// Directional is implemented by providers whose heading can be queried for
// frame selection.
type Directional interface {
	MovingLeft() bool
	MovingUp() bool
}

// IndexSource exposes the frame index of a bound frame provider. Cloaking and
// crab movement are driven by the entity's animation.
type IndexSource interface {
	CurrentIndex() int
}

// Target reports the location an attacker steers toward. ok is false while
// there is nothing to chase.
type Target func() (loc core.GameLocation, ok bool)

// Motion holds the parameters shared by the moving variants.
type Motion struct {
	Start  core.GameLocation
	Angle  float64 // degrees, 0 = right, 90 = up
	Speed  float64 // pixels per tick
	Width  float64 // footprint used for edge tests
	Height float64
	Field  core.Field
}

// mover is the common state of every moving variant.
type mover struct {
	loc       core.GameLocation
	angle     float64
	speed     float64
	baseSpeed float64
	factor    float64
	width     float64
	height    float64
	field     core.Field
}

func newMover(m Motion) mover {
	return mover{
		loc:       m.Start,
		angle:     normalize(m.Angle),
		speed:     m.Speed,
		baseSpeed: m.Speed,
		factor:    1,
		width:     m.Width,
		height:    m.Height,
		field:     m.Field,
	}
}

func (m *mover) Location() core.GameLocation {
	return m.loc
}

func (m *mover) IncreaseSpeed(factor float64) {
	m.factor = factor
	m.speed = m.baseSpeed * factor
}

// Angle returns the current heading in degrees.
func (m *mover) Angle() float64 {
	return m.angle
}

// Speed returns the current speed in pixels per tick.
func (m *mover) Speed() float64 {
	return m.speed
}

// BaseSpeed returns the speed before any IncreaseSpeed factor.
func (m *mover) BaseSpeed() float64 {
	return m.baseSpeed
}

func (m *mover) advance() {
	m.loc = m.loc.Add(core.Step(m.angle, m.speed))
}

func (m *mover) movingLeft() bool {
	return math.Cos(core.Radians(m.angle)) < -1e-9
}

func (m *mover) movingRight() bool {
	return math.Cos(core.Radians(m.angle)) > 1e-9
}

func (m *mover) movingUp() bool {
	return math.Sin(core.Radians(m.angle)) > 1e-9
}

func (m *mover) movingDown() bool {
	return math.Sin(core.Radians(m.angle)) < -1e-9
}

// bounceHorizontal clamps to the left/right edges and mirrors the heading
// (180 - angle) when the entity was moving into the edge.
func (m *mover) bounceHorizontal() bool {
	switch {
	case m.loc.Left < m.field.Left:
		m.loc.Left = m.field.Left
		if m.movingLeft() {
			m.angle = normalize(180 - m.angle)
			return true
		}
	case m.loc.Left+m.width > m.field.Right:
		m.loc.Left = m.field.Right - m.width
		if m.movingRight() {
			m.angle = normalize(180 - m.angle)
			return true
		}
	}
	return false
}

// bounceVertical clamps to the top/bottom edges and flips the heading
// (angle * -1) when the entity was moving into the edge.
func (m *mover) bounceVertical() bool {
	switch {
	case m.loc.Top < m.field.Top:
		m.loc.Top = m.field.Top
		if m.movingUp() {
			m.angle = normalize(-m.angle)
			return true
		}
	case m.loc.Top+m.height > m.field.Bottom:
		m.loc.Top = m.field.Bottom - m.height
		if m.movingDown() {
			m.angle = normalize(-m.angle)
			return true
		}
	}
	return false
}

// normalize maps an angle into [0, 360).
func normalize(angle float64) float64 {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// randomIn returns a uniformly random value in [lo, hi]. A collapsed range
// yields lo.
func randomIn(rng Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// Rand is the subset of *math/rand.Rand the random variants use.
type Rand interface {
	Intn(n int) int
	Float64() float64
}
