package location

import (
	"github.com/vovakirdan/tui-blaster/internal/core"
)

// CloakingConfig configures a Cloaking provider.
type CloakingConfig struct {
	Start     core.GameLocation
	Width     float64
	Height    float64
	Area      core.GameRectangle // region the entity may reappear in
	Frames    IndexSource
	Invisible int    // frame index during which teleporting is allowed
	Cooldown  uint64 // minimum ticks between teleports at speed factor 1
	Rng       Rand
}

// Cloaking stands still while visible and jumps to a random spot of Area when
// its animation shows the invisible frame and the cooldown has expired.
// IncreaseSpeed shortens the cooldown.
type Cloaking struct {
	loc          core.GameLocation
	width        float64
	height       float64
	area         core.GameRectangle
	frames       IndexSource
	invisible    int
	cooldown     uint64
	baseCooldown uint64
	readyAt      uint64
	rng          Rand
}

// NewCloaking creates a cloaking provider bound to the entity's animation.
func NewCloaking(cfg CloakingConfig) *Cloaking {
	cd := cfg.Cooldown
	if cd == 0 {
		cd = 1
	}
	return &Cloaking{
		loc:          cfg.Start,
		width:        cfg.Width,
		height:       cfg.Height,
		area:         cfg.Area,
		frames:       cfg.Frames,
		invisible:    cfg.Invisible,
		cooldown:     cd,
		baseCooldown: cd,
		rng:          cfg.Rng,
	}
}

func (c *Cloaking) Location() core.GameLocation {
	return c.loc
}

func (c *Cloaking) Update(tick uint64) {
	if c.frames == nil || c.frames.CurrentIndex() != c.invisible {
		return
	}
	if tick < c.readyAt {
		return
	}
	c.loc = core.Loc(
		randomIn(c.rng, c.area.Left, c.area.Right-c.width),
		randomIn(c.rng, c.area.Top, c.area.Bottom-c.height),
	)
	c.readyAt = tick + c.cooldown
}

func (c *Cloaking) IncreaseSpeed(factor float64) {
	if factor <= 0 {
		return
	}
	cd := uint64(float64(c.baseCooldown) / factor)
	if cd == 0 {
		cd = 1
	}
	c.cooldown = cd
}

// Cooldown returns the current ticks between teleports.
func (c *Cloaking) Cooldown() uint64 {
	return c.cooldown
}

var _ Provider = (*Cloaking)(nil)
