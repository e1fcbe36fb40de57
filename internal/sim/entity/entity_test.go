package entity

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blaster/internal/core"
	"github.com/vovakirdan/tui-blaster/internal/sim/asset"
)

var testField = core.Field{Top: 0, Bottom: 60, Left: 0, Right: 120, PixelSize: 1}

type drawCall struct {
	origin core.GameLocation
	frame  core.Frame
}

type recorder struct {
	calls []drawCall
}

func (r *recorder) Draw(origin core.GameLocation, frame core.Frame) {
	r.calls = append(r.calls, drawCall{origin: origin, frame: frame})
}

func newFactory(t *testing.T) *Factory {
	t.Helper()
	lib, err := asset.Load()
	require.NoError(t, err)
	return &Factory{
		Assets: lib,
		Field:  testField,
		Rng:    rand.New(rand.NewSource(7)),
	}
}

func TestFactoryBuildsEveryArchetype(t *testing.T) {
	f := newFactory(t)
	for _, a := range Archetypes() {
		e, err := f.NewEnemy(a, core.Loc(40, 10))
		require.NoError(t, err, a.String())
		assert.Equal(t, a, e.Archetype())
		assert.Equal(t, KindEnemy, e.Kind())
		assert.Positive(t, e.Points(), a.String())
		assert.Len(t, e.Explosion().ParticleFrameIndexes, len(e.Explosion().Angles))

		for tick := uint64(1); tick <= 200; tick++ {
			e.Update(tick)
		}
	}
}

func TestFactoryAssignsIDs(t *testing.T) {
	f := newFactory(t)
	a, err := f.NewEnemy(ArchetypeSaucer, core.Loc(0, 0))
	require.NoError(t, err)
	b, err := f.NewEnemy(ArchetypeSaucer, core.Loc(0, 0))
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestFactoryUnknownArchetype(t *testing.T) {
	f := newFactory(t)

	_, err := f.NewEnemy(Archetype(99), core.Loc(0, 0))
	var cfgErr *core.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))

	_, err = ParseArchetype("dragon")
	require.True(t, errors.As(err, &cfgErr))
}

func TestArchetypeNames(t *testing.T) {
	for _, a := range Archetypes() {
		parsed, err := ParseArchetype(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}
	assert.Equal(t, "unknown", Archetype(-1).String())
	assert.False(t, Archetype(42).Valid())
}

func TestEnemyFrameTimerAndOffsets(t *testing.T) {
	f := newFactory(t)
	e, err := f.NewEnemy(ArchetypeSaucer, core.Loc(40, 10))
	require.NoError(t, err)
	require.Equal(t, uint64(8), e.FrameInterval())

	e.Update(1)
	assert.Equal(t, 0, e.FrameIndex(), "first update only arms the timer")
	for tick := uint64(2); tick <= 8; tick++ {
		e.Update(tick)
	}
	assert.Equal(t, 0, e.FrameIndex())

	e.Update(9)
	assert.Equal(t, 1, e.FrameIndex())
	assert.Equal(t, e.Location(), e.Origin())

	for tick := uint64(10); tick <= 17; tick++ {
		e.Update(tick)
	}
	assert.Equal(t, 2, e.FrameIndex())
	assert.Equal(t, e.Location().Add(core.Loc(1, 0)), e.Origin(), "narrow pose is shifted to stay centered")
	assert.Equal(t, 3, e.Frame().Width())

	w := e.Hitbox().Width()
	assert.Equal(t, 5.0, w, "hitbox uses the footprint, not the current pose")
}

func TestEnemyIncreaseSpeedScalesMovementAndAnimation(t *testing.T) {
	f := newFactory(t)
	e, err := f.NewEnemy(ArchetypeSaucer, core.Loc(40, 10))
	require.NoError(t, err)

	base, ok := e.Speed()
	require.True(t, ok)

	e.IncreaseSpeed(2)
	speed, _ := e.Speed()
	assert.InDelta(t, base*2, speed, 1e-9)
	assert.Equal(t, uint64(4), e.FrameInterval())

	e.IncreaseSpeed(1.25)
	speed, _ = e.Speed()
	assert.InDelta(t, base*1.25, speed, 1e-9, "relative to base speed")
	assert.Equal(t, uint64(6), e.FrameInterval())

	e.IncreaseSpeed(1000)
	assert.Equal(t, uint64(1), e.FrameInterval())
}

func TestEnemyFireAngle(t *testing.T) {
	f := newFactory(t)

	saucer, err := f.NewEnemy(ArchetypeSaucer, core.Loc(40, 10))
	require.NoError(t, err)
	_, ok := saucer.FireAngle()
	assert.False(t, ok, "no aim function bound")

	f.Aim = func(from core.GameLocation) float64 {
		return core.AngleTo(from, core.Loc(from.Left, from.Top+10))
	}
	saucer, err = f.NewEnemy(ArchetypeSaucer, core.Loc(40, 10))
	require.NoError(t, err)
	angle, ok := saucer.FireAngle()
	require.True(t, ok)
	assert.InDelta(t, -90, angle, 1e-9)

	streaker, err := f.NewEnemy(ArchetypeStreaker, core.Loc(40, 10))
	require.NoError(t, err)
	_, ok = streaker.FireAngle()
	assert.False(t, ok, "streakers never fire")

	w := saucer.Weapon()
	assert.Equal(t, 1, w.MaxBullets)
	assert.Positive(t, w.Interval)

	saucer.MarkFired(77)
	assert.Equal(t, uint64(77), saucer.LastFireTick())
}

func TestArmoredEnemyShowsDamage(t *testing.T) {
	f := newFactory(t)
	tank, err := f.NewEnemy(ArchetypeTank, core.Loc(40, 10))
	require.NoError(t, err)
	require.Equal(t, 3, tank.HitPoints())

	assert.False(t, tank.Hit())
	assert.Equal(t, 1, tank.FrameIndex())
	assert.False(t, tank.Hit())
	assert.Equal(t, 2, tank.FrameIndex())

	tank.Update(1)
	tank.Update(2)
	assert.Equal(t, 2, tank.FrameIndex(), "damage frames do not animate")

	assert.True(t, tank.Hit())
}

func TestCloakerIsNotHittableWhileInvisible(t *testing.T) {
	f := newFactory(t)
	c, err := f.NewEnemy(ArchetypeCloaker, core.Loc(40, 10))
	require.NoError(t, err)
	assert.True(t, c.Hittable())

	c.Update(1)
	c.Update(13)
	c.Update(25)
	require.Equal(t, 2, c.FrameIndex())
	assert.False(t, c.Hittable())

	r := &recorder{}
	c.Draw(r)
	assert.Empty(t, r.calls)

	c.Update(37)
	assert.True(t, c.Hittable())
}

func TestZigzagFacesItsHeading(t *testing.T) {
	f := newFactory(t)
	f.Target = func() (core.GameLocation, bool) { return core.Loc(0, 50), true }

	z, err := f.NewEnemy(ArchetypeZigzag, core.Loc(60, 10))
	require.NoError(t, err)

	z.Update(1)
	assert.Equal(t, 0, z.FrameIndex(), "moving left")

	f2 := newFactory(t)
	f2.Target = func() (core.GameLocation, bool) { return core.Loc(119, 50), true }
	z2, err := f2.NewEnemy(ArchetypeZigzag, core.Loc(10, 10))
	require.NoError(t, err)
	z2.Update(1)
	assert.Equal(t, 1, z2.FrameIndex(), "moving right")
}

func TestEnemyDrawAppliesPalette(t *testing.T) {
	f := newFactory(t)
	e, err := f.NewEnemy(ArchetypeSaucer, core.Loc(40, 10))
	require.NoError(t, err)

	r := &recorder{}
	e.Draw(r)
	require.Len(t, r.calls, 1)
	assert.Equal(t, e.Origin(), r.calls[0].origin)

	var sawRed bool
	for _, row := range r.calls[0].frame {
		for _, c := range row {
			assert.NotEqual(t, core.ColorDefault, c)
			sawRed = sawRed || c == core.ColorBrightRed
		}
	}
	assert.True(t, sawRed)

	tmpl, _ := f.Assets.Enemy("saucer")
	assert.Equal(t, core.ColorDefault, tmpl.Frames[0][0][1], "template is untouched")
}

func TestPlayerMovementAndMuzzle(t *testing.T) {
	f := newFactory(t)
	bounds := core.GameRectangle{Left: 0, Top: 40, Right: 120, Bottom: 60}
	p, err := f.NewPlayer(core.Loc(58, 50), 1, bounds)
	require.NoError(t, err)
	assert.Equal(t, KindPlayer, p.Kind())

	p.Move(-1, 0)
	assert.Equal(t, core.Loc(57, 50), p.Location())

	for range 100 {
		p.Move(-1, -1)
	}
	assert.Equal(t, core.Loc(0, 40), p.Location(), "clamped into bounds")

	for range 200 {
		p.Move(1, 1)
	}
	assert.Equal(t, core.Loc(115, 57), p.Location())

	assert.Equal(t, core.Loc(117, 55), p.Muzzle(1, 2))
	assert.Equal(t, core.Loc(117.5, 58.5), p.CenterLocation())
}

func TestPlayerInvulnerability(t *testing.T) {
	f := newFactory(t)
	p, err := f.NewPlayer(core.Loc(10, 50), 1, testField.Rect())
	require.NoError(t, err)

	assert.False(t, p.Invulnerable(0))
	p.SetInvulnerableUntil(100)
	assert.True(t, p.Invulnerable(99))
	assert.False(t, p.Invulnerable(100))

	p.ExtendInvulnerability(10)
	assert.True(t, p.Invulnerable(109))
	assert.False(t, p.Invulnerable(110))

	r := &recorder{}
	p.Draw(r, 0)
	p.Draw(r, 4)
	p.Draw(r, 100)
	assert.Len(t, r.calls, 2, "hidden on blink ticks while invulnerable")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "player_shot", KindPlayerShot.String())
	assert.Equal(t, "explosion_center", KindExplosionCenter.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
