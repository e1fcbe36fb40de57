package location

// WrapConfig configures a Wrap provider.
type WrapConfig struct {
	Motion
	BandTop   float64 // vertical position restored once Threshold is passed
	Threshold float64 // top coordinate that triggers the band reset
}

// Wrap vanishes off one horizontal edge and reappears at the opposite one.
// When its descent carries it past Threshold it is lifted back to BandTop.
type Wrap struct {
	mover
	bandTop   float64
	threshold float64
}

// NewWrap creates a wrapping provider.
func NewWrap(cfg WrapConfig) *Wrap {
	return &Wrap{
		mover:     newMover(cfg.Motion),
		bandTop:   cfg.BandTop,
		threshold: cfg.Threshold,
	}
}

func (w *Wrap) Update(uint64) {
	w.advance()

	switch {
	case w.movingRight() && w.loc.Left >= w.field.Right:
		w.loc.Left = w.field.Left - w.width
	case w.movingLeft() && w.loc.Left+w.width <= w.field.Left:
		w.loc.Left = w.field.Right
	}

	if w.loc.Top > w.threshold {
		w.loc.Top = w.bandTop
	}
	if w.loc.Top < w.field.Top {
		w.loc.Top = w.field.Top
		if w.movingUp() {
			w.angle = normalize(-w.angle)
		}
	}
}

var _ Provider = (*Wrap)(nil)
