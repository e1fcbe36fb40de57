package location

// CrabConfig configures a Crab provider.
type CrabConfig struct {
	Motion
	Frames   IndexSource
	UpFrames int     // frame indexes below this move the entity up
	Drift    float64 // horizontal speed as a fraction of Speed
}

// Crab moves vertically in step with its animation: frames [0, UpFrames) carry
// it up, the rest carry it down. It wraps vertically and drifts sideways,
// bouncing off the side edges.
type Crab struct {
	mover
	frames   IndexSource
	upFrames int
	drift    float64
	dir      float64
}

// NewCrab creates a crab provider bound to the entity's animation. The
// initial drift direction follows the sign of cos(Angle).
func NewCrab(cfg CrabConfig) *Crab {
	c := &Crab{
		mover:    newMover(cfg.Motion),
		frames:   cfg.Frames,
		upFrames: cfg.UpFrames,
		drift:    cfg.Drift,
		dir:      1,
	}
	if c.movingLeft() {
		c.dir = -1
	}
	return c
}

func (c *Crab) Update(uint64) {
	up := c.frames != nil && c.frames.CurrentIndex() < c.upFrames
	if up {
		c.loc.Top -= c.speed
	} else {
		c.loc.Top += c.speed
	}

	c.loc.Left += c.dir * c.speed * c.drift
	switch {
	case c.loc.Left < c.field.Left:
		c.loc.Left = c.field.Left
		c.dir = 1
	case c.loc.Left+c.width > c.field.Right:
		c.loc.Left = c.field.Right - c.width
		c.dir = -1
	}

	switch {
	case c.loc.Top+c.height <= c.field.Top:
		c.loc.Top = c.field.Bottom
	case c.loc.Top >= c.field.Bottom:
		c.loc.Top = c.field.Top - c.height
	}
}

// MovingUp reports whether the current frame carries the crab upward.
func (c *Crab) MovingUp() bool {
	return c.frames != nil && c.frames.CurrentIndex() < c.upFrames
}

// MovingLeft reports the drift direction.
func (c *Crab) MovingLeft() bool {
	return c.dir < 0
}

var (
	_ Provider    = (*Crab)(nil)
	_ Directional = (*Crab)(nil)
)
