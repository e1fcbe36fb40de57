package entity

import (
	"github.com/vovakirdan/tui-blaster/internal/core"
	"github.com/vovakirdan/tui-blaster/internal/sim/asset"
)

// PlayerConfig configures a Player.
type PlayerConfig struct {
	Frame     core.Frame
	Explosion asset.ExplosionAsset
	Start     core.GameLocation
	Speed     float64            // pixels per tick
	Bounds    core.GameRectangle // area the player may move in
}

// Player is the ship controlled by input.
type Player struct {
	loc               core.GameLocation
	frame             core.Frame
	explosion         asset.ExplosionAsset
	speed             float64
	bounds            core.GameRectangle
	invulnerableUntil uint64
}

// NewPlayer creates a player clamped into its bounds.
func NewPlayer(cfg PlayerConfig) *Player {
	p := &Player{
		loc:       cfg.Start,
		frame:     cfg.Frame,
		explosion: cfg.Explosion,
		speed:     cfg.Speed,
		bounds:    cfg.Bounds,
	}
	p.clamp()
	return p
}

// Kind returns KindPlayer.
func (p *Player) Kind() Kind { return KindPlayer }

// Move shifts the player by dx, dy steps of its speed.
func (p *Player) Move(dx, dy int) {
	p.loc.Left += float64(dx) * p.speed
	p.loc.Top += float64(dy) * p.speed
	p.clamp()
}

func (p *Player) clamp() {
	w, h := p.size()
	p.loc.Left = core.ClampF(p.loc.Left, p.bounds.Left, p.bounds.Right-w)
	p.loc.Top = core.ClampF(p.loc.Top, p.bounds.Top, p.bounds.Bottom-h)
}

func (p *Player) size() (float64, float64) {
	return float64(p.frame.Width()), float64(p.frame.Height())
}

// Location returns the top-left corner.
func (p *Player) Location() core.GameLocation {
	return p.loc
}

// Hitbox returns the player's rectangle.
func (p *Player) Hitbox() core.GameRectangle {
	w, h := p.size()
	return core.RectAt(p.loc, w, h)
}

// CenterLocation returns the center of the hitbox.
func (p *Player) CenterLocation() core.GameLocation {
	return p.Hitbox().Center()
}

// Muzzle returns the spawn location of a shot of the given size: centered
// horizontally, directly above the ship.
func (p *Player) Muzzle(shotWidth, shotHeight float64) core.GameLocation {
	w, _ := p.size()
	return core.Loc(p.loc.Left+(w-shotWidth)/2, p.loc.Top-shotHeight)
}

// Explosion returns the template spawned when the player is destroyed.
func (p *Player) Explosion() asset.ExplosionAsset {
	return p.explosion
}

// SetInvulnerableUntil makes the player immune to collisions before tick.
func (p *Player) SetInvulnerableUntil(tick uint64) {
	p.invulnerableUntil = tick
}

// ExtendInvulnerability pushes the end of the immunity window back by ticks.
func (p *Player) ExtendInvulnerability(ticks uint64) {
	p.invulnerableUntil += ticks
}

// Invulnerable reports whether collisions are ignored at tick.
func (p *Player) Invulnerable(tick uint64) bool {
	return tick < p.invulnerableUntil
}

// Draw renders the ship. While invulnerable it blinks every few ticks.
func (p *Player) Draw(r core.Renderer, tick uint64) {
	if p.Invulnerable(tick) && (tick/4)%2 == 1 {
		return
	}
	r.Draw(p.loc, p.frame)
}
