package entity

import (
	"github.com/vovakirdan/tui-blaster/internal/core"
	"github.com/vovakirdan/tui-blaster/internal/sim/animation"
	"github.com/vovakirdan/tui-blaster/internal/sim/asset"
	"github.com/vovakirdan/tui-blaster/internal/sim/location"
)

// Tuning for the movement variants. Speeds come from the asset tables.
const (
	wobbleEvery     = 40
	attackerTurn    = 30
	cloakCooldown   = 60
	crabDrift       = 0.5
	streakerBand    = 0.6 // fraction of field height before a streaker is lifted
	cometSpeedBoost = 1.4
)

// Factory builds enemies from archetypes. Target and Aim may be nil; they are
// consulted lazily, so the player may come and go after creation.
type Factory struct {
	Assets *asset.Library
	Field  core.Field
	Rng    location.Rand
	Target location.Target
	Aim    AimFunc

	nextID int
}

// NewEnemy creates an enemy of the given archetype with its hitbox at start.
// An unknown archetype yields a *core.ConfigurationError.
func (f *Factory) NewEnemy(a Archetype, start core.GameLocation) (*Enemy, error) {
	if !a.Valid() {
		return nil, core.Configf("new enemy", "unknown archetype %d", int(a))
	}

	data, err := f.Assets.Enemy(a.String())
	if err != nil {
		return nil, err
	}
	explosion, err := f.Assets.Explosion(data.Explosion)
	if err != nil {
		return nil, err
	}

	width, height := data.Footprint()
	motion := location.Motion{
		Start:  start,
		Speed:  data.Speed,
		Width:  width,
		Height: height,
		Field:  f.Field,
	}

	e := &Enemy{
		archetype:         a,
		data:              data,
		explosion:         explosion,
		width:             width,
		height:            height,
		frameInterval:     data.FrameInterval,
		baseFrameInterval: data.FrameInterval,
		hitPoints:         data.HitPoints,
	}

	switch a {
	case ArchetypeSaucer:
		motion.Angle = f.pick(30, 150, 210, 330)
		e.frames = animation.NewBackAndForth(0)
		e.location = location.NewBounce(motion)

	case ArchetypeStreaker:
		motion.Angle = f.pick(355, 185)
		e.frames = animation.NewCircular(0)
		e.location = location.NewWrap(location.WrapConfig{
			Motion:    motion,
			BandTop:   f.Field.Top + 1,
			Threshold: f.Field.Top + f.Field.Height()*streakerBand,
		})

	case ArchetypeDiver:
		motion.Angle = f.pick(255, 270, 285)
		e.frames = animation.NewBackAndForth(0)
		e.location = location.NewToExtreme(location.ExtremeConfig{
			Motion: motion,
			Target: location.ExtremeBottom,
			Reset:  f.Field.Top - height,
		})

	case ArchetypeWobbler:
		e.frames = animation.NewCircular(0)
		e.location = location.NewWobble(location.WobbleConfig{
			Motion: motion,
			Angles: []float64{0, 45, 135, 180, 225, 315},
			Every:  wobbleEvery,
			Rng:    f.Rng,
		})

	case ArchetypeZigzag:
		e.heading = animation.NewStatic(1)
		e.frames = e.heading
		e.location = location.NewAttacker(location.AttackerConfig{
			Motion:    motion,
			Target:    f.Target,
			TurnEvery: attackerTurn,
		})

	case ArchetypeCloaker:
		e.frames = animation.NewCircular(0)
		area := f.Field.Rect()
		area.Bottom = f.Field.Top + f.Field.Height()*2/3
		e.location = location.NewCloaking(location.CloakingConfig{
			Start:     start,
			Width:     width,
			Height:    height,
			Area:      area,
			Frames:    e.frames,
			Invisible: data.InvisibleFrame,
			Cooldown:  cloakCooldown,
			Rng:       f.Rng,
		})

	case ArchetypeCrab:
		motion.Angle = f.pick(0, 180)
		e.frames = animation.NewCircular(0)
		e.location = location.NewCrab(location.CrabConfig{
			Motion:   motion,
			Frames:   e.frames,
			UpFrames: data.UpFrames,
			Drift:    crabDrift,
		})

	case ArchetypeComet:
		s := data.Speed
		e.frames = animation.NewStatic(0)
		e.location = location.NewReappear(location.ReappearConfig{
			Width:  width,
			Height: height,
			Field:  f.Field,
			Pool: []location.Vector{
				{Angle: 0, Speed: s},
				{Angle: 180, Speed: s},
				{Angle: 345, Speed: s * cometSpeedBoost},
				{Angle: 195, Speed: s * cometSpeedBoost},
			},
			Rng: f.Rng,
		})

	case ArchetypeTank:
		motion.Angle = f.pick(0, 180)
		e.damage = animation.NewStatic(0)
		e.frames = e.damage
		e.location = location.NewBounce(motion)
	}

	e.frames.SetFrames(data.Frames)
	if data.Fires() {
		e.aim = f.Aim
	}

	f.nextID++
	e.id = f.nextID
	e.refresh()
	return e, nil
}

// NewPlayer creates the player ship from the sprite tables.
func (f *Factory) NewPlayer(start core.GameLocation, speed float64, bounds core.GameRectangle) (*Player, error) {
	frame, err := f.Assets.Sprite(asset.SpritePlayer)
	if err != nil {
		return nil, err
	}
	explosion, err := f.Assets.Explosion(asset.ExplosionPlayer)
	if err != nil {
		return nil, err
	}
	return NewPlayer(PlayerConfig{
		Frame:     frame,
		Explosion: explosion,
		Start:     start,
		Speed:     speed,
		Bounds:    bounds,
	}), nil
}

func (f *Factory) pick(angles ...float64) float64 {
	return angles[f.Rng.Intn(len(angles))]
}
