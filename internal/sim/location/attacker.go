package location

// AttackerConfig configures an Attacker provider.
type AttackerConfig struct {
	Motion
	Target    Target
	TurnEvery uint64 // ticks between course corrections
}

// Attacker zig-zags diagonally toward a target. Every TurnEvery ticks it picks
// the diagonal that points at the target; between corrections it bounces off
// the field edges like Bounce.
type Attacker struct {
	mover
	target    Target
	turnEvery uint64
	lastTurn  uint64
	turned    bool
}

// NewAttacker creates an attacking provider.
func NewAttacker(cfg AttackerConfig) *Attacker {
	every := cfg.TurnEvery
	if every == 0 {
		every = 1
	}
	return &Attacker{
		mover:     newMover(cfg.Motion),
		target:    cfg.Target,
		turnEvery: every,
	}
}

func (a *Attacker) Update(tick uint64) {
	if !a.turned || tick-a.lastTurn >= a.turnEvery {
		a.steer()
		a.lastTurn = tick
		a.turned = true
	}

	a.advance()
	a.bounceHorizontal()
	a.bounceVertical()
}

func (a *Attacker) steer() {
	if a.target == nil {
		return
	}
	t, ok := a.target()
	if !ok {
		return
	}

	left := t.Left < a.loc.Left+a.width/2
	up := t.Top < a.loc.Top+a.height/2
	switch {
	case !left && up:
		a.angle = 45
	case left && up:
		a.angle = 135
	case left && !up:
		a.angle = 225
	default:
		a.angle = 315
	}
}

// MovingLeft reports whether the current heading has a leftward component.
func (a *Attacker) MovingLeft() bool {
	return a.movingLeft()
}

// MovingUp reports whether the current heading has an upward component.
func (a *Attacker) MovingUp() bool {
	return a.movingUp()
}

var (
	_ Provider    = (*Attacker)(nil)
	_ Directional = (*Attacker)(nil)
)
