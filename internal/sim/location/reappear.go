package location

import (
	"math"

	"github.com/vovakirdan/tui-blaster/internal/core"
)

// Vector is one heading/speed pair of a Reappear pool.
type Vector struct {
	Angle float64
	Speed float64
}

// ReappearConfig configures a Reappear provider.
type ReappearConfig struct {
	Width  float64
	Height float64
	Field  core.Field
	Pool   []Vector
	Rng    Rand
}

// Reappear crosses the field along a randomly chosen vector. Once it has fully
// left through the far edge it re-enters from the side its new heading points
// away from, with a freshly sampled vector. The speed factor applies to every
// future sample as well.
type Reappear struct {
	mover
	pool []Vector
	rng  Rand
}

// NewReappear creates a reappearing provider. It starts off-field.
func NewReappear(cfg ReappearConfig) *Reappear {
	r := &Reappear{
		mover: newMover(Motion{Width: cfg.Width, Height: cfg.Height, Field: cfg.Field}),
		pool:  cfg.Pool,
		rng:   cfg.Rng,
	}
	r.spawn()
	return r
}

func (r *Reappear) Update(uint64) {
	r.advance()
	if r.gone() {
		r.spawn()
	}
}

func (r *Reappear) horizontal() bool {
	rad := core.Radians(r.angle)
	return math.Abs(math.Cos(rad)) >= math.Abs(math.Sin(rad))
}

// gone reports whether the entity has fully crossed the edge it moves toward.
func (r *Reappear) gone() bool {
	f := r.field
	if r.horizontal() {
		if r.movingRight() {
			return r.loc.Left >= f.Right
		}
		return r.loc.Left+r.width <= f.Left
	}
	if r.movingUp() {
		return r.loc.Top+r.height <= f.Top
	}
	return r.loc.Top >= f.Bottom
}

func (r *Reappear) spawn() {
	v := Vector{Angle: 0, Speed: 1}
	if len(r.pool) > 0 {
		v = r.pool[r.rng.Intn(len(r.pool))]
	}
	r.angle = normalize(v.Angle)
	r.baseSpeed = v.Speed
	r.speed = v.Speed * r.factor

	f := r.field
	if r.horizontal() {
		r.loc.Top = randomIn(r.rng, f.Top, f.Bottom-r.height)
		if r.movingRight() {
			r.loc.Left = f.Left - r.width
		} else {
			r.loc.Left = f.Right
		}
		return
	}
	r.loc.Left = randomIn(r.rng, f.Left, f.Right-r.width)
	if r.movingUp() {
		r.loc.Top = f.Bottom
	} else {
		r.loc.Top = f.Top - r.height
	}
}

var _ Provider = (*Reappear)(nil)
