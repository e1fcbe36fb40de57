package location

// WobbleConfig configures a Wobble provider.
type WobbleConfig struct {
	Motion
	Angles []float64 // pool the heading is sampled from
	Every  uint64    // ticks between samples
	Rng    Rand
}

// Wobble re-samples its heading from a fixed pool every few ticks and bounces
// off the edges. Reaching the bottom lifts it to two-thirds of the field height
// so it cannot stay pinned there.
type Wobble struct {
	mover
	angles   []float64
	every    uint64
	rng      Rand
	lastTurn uint64
	turned   bool
}

// NewWobble creates a wobbling provider.
func NewWobble(cfg WobbleConfig) *Wobble {
	every := cfg.Every
	if every == 0 {
		every = 1
	}
	return &Wobble{
		mover:  newMover(cfg.Motion),
		angles: cfg.Angles,
		every:  every,
		rng:    cfg.Rng,
	}
}

func (w *Wobble) Update(tick uint64) {
	if len(w.angles) > 0 && (!w.turned || tick-w.lastTurn >= w.every) {
		w.angle = normalize(w.angles[w.rng.Intn(len(w.angles))])
		w.lastTurn = tick
		w.turned = true
	}

	w.advance()
	w.bounceHorizontal()

	if w.loc.Top+w.height >= w.field.Bottom {
		w.loc.Top = w.twoThirds() - w.height
		if w.movingDown() {
			w.angle = normalize(-w.angle)
		}
		return
	}
	w.bounceVertical()
}

// twoThirds returns the line two-thirds of the way down the field.
func (w *Wobble) twoThirds() float64 {
	return w.field.Top + w.field.Height()*2/3
}

var _ Provider = (*Wobble)(nil)
