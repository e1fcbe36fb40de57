package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blaster/internal/core"
	"github.com/vovakirdan/tui-blaster/internal/sim/asset"
	"github.com/vovakirdan/tui-blaster/internal/sim/collision"
	"github.com/vovakirdan/tui-blaster/internal/sim/entity"
	"github.com/vovakirdan/tui-blaster/internal/sim/location"
	"github.com/vovakirdan/tui-blaster/internal/sim/particle"
)

// Orchestrator advances a State one tick at a time. It is single-threaded:
// Step and Draw must not be called concurrently.
type Orchestrator struct {
	state   State
	field   core.Field
	assets  *asset.Library
	factory *entity.Factory
	rng     location.Rand
	tuning  Tuning
	ledger  Ledger
	log     *log.Logger
	events  scheduler

	shotFrame   core.Frame
	bulletFrame core.Frame
	beamFrame   core.Frame

	playerBounds core.GameRectangle
	speedFactor  float64 // level-wide multiplier applied on top of kill speed-ups
	levelDone    bool
	pausedAt     uint64 // tick of the last player-requested pause
}

// New creates an orchestrator with a live player and no enemies. Call
// LoadLevel to populate the field.
func New(opts Options) (*Orchestrator, error) {
	if opts.Assets == nil {
		return nil, core.Configf("new orchestrator", "asset library is required")
	}
	if opts.Rng == nil {
		return nil, core.Configf("new orchestrator", "random source is required")
	}
	if opts.Field.Width() <= 0 || opts.Field.Height() <= 0 {
		return nil, core.Configf("new orchestrator", "empty field %+v", opts.Field)
	}

	o := &Orchestrator{
		field:       opts.Field,
		assets:      opts.Assets,
		rng:         opts.Rng,
		tuning:      opts.Tuning,
		ledger:      opts.Ledger,
		log:         opts.Logger,
		speedFactor: 1,
		beamFrame:   core.Frame{{core.ColorBrightCyan}},
	}
	if o.ledger == nil {
		o.ledger = nopLedger{}
	}
	if o.log == nil {
		o.log = log.New(io.Discard)
	}

	var err error
	if o.shotFrame, err = opts.Assets.Sprite(asset.SpritePlayerShot); err != nil {
		return nil, err
	}
	if o.bulletFrame, err = opts.Assets.Sprite(asset.SpriteBullet); err != nil {
		return nil, err
	}

	o.factory = &entity.Factory{
		Assets: opts.Assets,
		Field:  opts.Field,
		Rng:    opts.Rng,
		Target: o.playerTarget,
		Aim:    o.aimAtPlayer,
	}

	// The player roams the lowest quarter of the field.
	o.playerBounds = opts.Field.Rect()
	o.playerBounds.Top = opts.Field.Bottom - opts.Field.Height()/4

	o.state.Lives = opts.Tuning.Lives
	o.state.Charges = opts.Tuning.Charges
	if err := o.spawnPlayer(0); err != nil {
		return nil, err
	}
	return o, nil
}

// State exposes the simulation state. Callers may read it between steps.
func (o *Orchestrator) State() *State {
	return &o.state
}

// Factory returns the enemy factory bound to this simulation.
func (o *Orchestrator) Factory() *entity.Factory {
	return o.factory
}

// Field returns the play field.
func (o *Orchestrator) Field() core.Field {
	return o.field
}

// PendingEvents returns the number of scheduled events not yet run.
func (o *Orchestrator) PendingEvents() int {
	return o.events.pending()
}

// Step advances the simulation to tick. Ticks must increase monotonically.
func (o *Orchestrator) Step(tick uint64, in Input) StepEvents {
	var ev StepEvents
	s := &o.state
	s.Tick = tick

	o.runDue(tick, &ev)

	if in.Pause && !s.PhaserResolving() && !s.GameOver {
		s.Paused = !s.Paused
		if s.Paused {
			o.pausedAt = tick
		} else {
			o.resume(tick)
		}
	}
	if s.Paused || s.GameOver {
		ev.GameOver = s.GameOver
		return ev
	}

	o.controlPlayer(in)

	for _, e := range s.Enemies {
		e.Update(tick)
	}
	o.fireControl(tick)

	if in.SelfDestruct && s.Player != nil {
		o.selfDestruct(tick, &ev)
	}

	if in.SpecialWeapon {
		o.firePhaser(tick, &ev)
	}

	o.advanceParticles()
	o.advanceCenters()
	o.collide(tick, &ev)

	if len(s.Enemies) == 0 && len(s.Particles) == 0 && !o.levelDone && !s.GameOver {
		o.levelDone = true
		ev.LevelComplete = true
		o.ledger.NextLevel()
		o.log.Debug("level complete", "level", s.Level, "score", s.Score)
	}

	ev.GameOver = s.GameOver
	return ev
}

func (o *Orchestrator) runDue(tick uint64, ev *StepEvents) {
	for _, e := range o.events.due(tick) {
		switch e.kind {
		case eventPhaserResolve:
			o.resolvePhaser(e.target, ev)
		case eventRespawn:
			if o.state.Paused && !o.state.PhaserResolving() {
				o.events.schedule(tick+1, eventRespawn, nil)
				continue
			}
			if o.state.Player == nil && !o.state.GameOver {
				if err := o.spawnPlayer(tick); err != nil {
					panic(err)
				}
				o.log.Debug("player respawned", "tick", tick, "lives", o.state.Lives)
			}
		}
	}
}

// resume gives back the invulnerability a respawned player sat out while paused.
func (o *Orchestrator) resume(tick uint64) {
	p := o.state.Player
	if p != nil && p.Invulnerable(o.pausedAt) {
		p.ExtendInvulnerability(tick - o.pausedAt)
	}
}

func (o *Orchestrator) controlPlayer(in Input) {
	p := o.state.Player
	if p == nil {
		return
	}

	dx, dy := 0, 0
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	if dx != 0 || dy != 0 {
		p.Move(dx, dy)
	}

	if in.Fire && o.state.PlayerShot == nil {
		w, h := float64(o.shotFrame.Width()), float64(o.shotFrame.Height())
		o.state.PlayerShot = particle.NewPlayerShot(p.Muzzle(w, h), o.tuning.ShotSpeed, o.shotFrame, o.field)
	}
}

// advanceParticles moves travelling particles and drops the rest. A particle
// that leaves the field during this update is dropped on the next one.
func (o *Orchestrator) advanceParticles() {
	s := &o.state
	kept := s.Particles[:0]
	for _, p := range s.Particles {
		if !p.Traveling() {
			continue
		}
		p.Update()
		kept = append(kept, p)
	}
	clear(s.Particles[len(kept):])
	s.Particles = kept

	if s.PlayerShot != nil {
		if s.PlayerShot.Traveling() {
			s.PlayerShot.Update()
		} else {
			s.PlayerShot = nil
		}
	}
}

func (o *Orchestrator) advanceCenters() {
	s := &o.state
	kept := s.Centers[:0]
	for _, c := range s.Centers {
		if !c.Burning() {
			continue
		}
		c.Update()
		kept = append(kept, c)
	}
	clear(s.Centers[len(kept):])
	s.Centers = kept
}

func (o *Orchestrator) collide(tick uint64, ev *StepEvents) {
	s := &o.state
	res := collision.Resolve(collision.World{
		Player:             s.Player,
		PlayerInvulnerable: s.Player != nil && s.Player.Invulnerable(tick),
		Shot:               s.PlayerShot,
		Enemies:            s.Enemies,
		Particles:          s.Particles,
		Centers:            s.Centers,
	})

	if res.ShotVictim != nil {
		s.PlayerShot = nil
		if res.ShotVictim.Hit() {
			o.destroyEnemy(res.ShotVictim)
			ev.Kills++
		}
	}
	if res.PlayerHit {
		o.log.Debug("player destroyed", "by", res.PlayerHitBy, "tick", tick)
		o.killPlayer(tick)
		ev.PlayerDied = true
	}
}

// destroyEnemy removes e, spawns its explosion, awards its points and speeds
// up the survivors. It is a no-op when e is no longer live.
func (o *Orchestrator) destroyEnemy(e *entity.Enemy) bool {
	s := &o.state
	before := len(s.Enemies)
	if !s.removeEnemy(e) {
		return false
	}

	o.explode(e.Explosion(), e.CenterLocation())
	s.Score += e.Points()
	o.ledger.IncreaseScore(e.Points())

	remaining := before - 1
	if remaining > 0 {
		factor := o.speedFactor * float64(s.TotalEnemiesAtLevelStart) / float64(remaining)
		for _, other := range s.Enemies {
			other.IncreaseSpeed(factor)
		}
	}

	o.log.Debug("enemy destroyed",
		"archetype", e.Archetype(),
		"points", e.Points(),
		"remaining", remaining,
	)
	return true
}

func (o *Orchestrator) killPlayer(tick uint64) {
	s := &o.state
	o.explode(s.Player.Explosion(), s.Player.CenterLocation())
	s.Player = nil
	o.loseLife(tick)
}

func (o *Orchestrator) loseLife(tick uint64) {
	s := &o.state
	s.Lives--
	o.ledger.RemoveLife()
	if s.Lives <= 0 {
		s.Lives = 0
		s.GameOver = true
		if o.events.cancel(eventPhaserResolve) > 0 {
			s.Paused = false
			s.BeamPath = nil
			s.PhaserTarget = nil
			o.log.Debug("phaser cancelled by game over")
		}
		o.log.Debug("game over", "score", s.Score, "level", s.Level)
		return
	}
	o.events.schedule(tick+o.tuning.RespawnDelay, eventRespawn, nil)
}

func (o *Orchestrator) selfDestruct(tick uint64, ev *StepEvents) {
	s := &o.state
	for _, e := range s.Enemies {
		o.explode(e.Explosion(), e.CenterLocation())
	}
	clear(s.Enemies)
	s.Enemies = s.Enemies[:0]

	o.explode(s.Player.Explosion(), s.Player.CenterLocation())
	s.Player = nil
	ev.SelfDestructed = true
	o.log.Debug("self destruct", "tick", tick)
	o.loseLife(tick)
}

func (o *Orchestrator) explode(e asset.ExplosionAsset, at core.GameLocation) {
	center, shrapnel := particle.Spawn(e, at, o.field)
	o.state.Centers = append(o.state.Centers, center)
	o.state.Particles = append(o.state.Particles, shrapnel...)
}

func (o *Orchestrator) spawnPlayer(tick uint64) error {
	frame, err := o.assets.Sprite(asset.SpritePlayer)
	if err != nil {
		return err
	}
	start := core.Loc(
		o.field.Left+(o.field.Width()-float64(frame.Width()))/2,
		o.field.Bottom-float64(frame.Height()),
	)
	p, err := o.factory.NewPlayer(start, o.tuning.PlayerSpeed, o.playerBounds)
	if err != nil {
		return fmt.Errorf("spawn player: %w", err)
	}
	if tick > 0 {
		p.SetInvulnerableUntil(tick + o.tuning.InvulnerableTicks)
	}
	o.state.Player = p
	return nil
}

func (o *Orchestrator) playerTarget() (core.GameLocation, bool) {
	if o.state.Player == nil {
		return core.GameLocation{}, false
	}
	return o.state.Player.CenterLocation(), true
}

func (o *Orchestrator) aimAtPlayer(from core.GameLocation) float64 {
	if o.state.Player == nil {
		panic(&core.LogicGuard{Op: "aim", Message: "aim evaluated with no live player"})
	}
	return core.AngleTo(from, o.state.Player.CenterLocation())
}
