package location

// Extreme identifies the edge an Extreme provider travels toward.
type Extreme int

const (
	ExtremeBottom Extreme = iota
	ExtremeTop
)

func (e Extreme) String() string {
	if e == ExtremeTop {
		return "top"
	}
	return "bottom"
}

// ExtremeConfig configures a ToExtreme provider.
type ExtremeConfig struct {
	Motion
	Target Extreme
	Reset  float64 // top coordinate restored after the target edge is crossed
}

// ToExtreme travels toward the top or bottom edge and snaps back to Reset once
// it has fully crossed it. Side edges reflect the heading.
type ToExtreme struct {
	mover
	target Extreme
	reset  float64
}

// NewToExtreme creates a move-to-extreme-then-reset provider.
func NewToExtreme(cfg ExtremeConfig) *ToExtreme {
	return &ToExtreme{
		mover:  newMover(cfg.Motion),
		target: cfg.Target,
		reset:  cfg.Reset,
	}
}

func (e *ToExtreme) Update(uint64) {
	e.advance()
	e.bounceHorizontal()

	switch e.target {
	case ExtremeBottom:
		if e.loc.Top >= e.field.Bottom {
			e.loc.Top = e.reset
		}
	case ExtremeTop:
		if e.loc.Top+e.height <= e.field.Top {
			e.loc.Top = e.reset
		}
	}
}

var _ Provider = (*ToExtreme)(nil)
