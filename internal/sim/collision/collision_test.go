package collision

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blaster/internal/core"
	"github.com/vovakirdan/tui-blaster/internal/sim/asset"
	"github.com/vovakirdan/tui-blaster/internal/sim/entity"
	"github.com/vovakirdan/tui-blaster/internal/sim/particle"
)

var testField = core.Field{Top: 0, Bottom: 60, Left: 0, Right: 120, PixelSize: 1}

type fixture struct {
	factory *entity.Factory
	shot    core.Frame
	bullet  core.Frame
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	lib, err := asset.Load()
	require.NoError(t, err)
	shot, err := lib.Sprite(asset.SpritePlayerShot)
	require.NoError(t, err)
	bullet, err := lib.Sprite(asset.SpriteBullet)
	require.NoError(t, err)
	return &fixture{
		factory: &entity.Factory{Assets: lib, Field: testField, Rng: rand.New(rand.NewSource(1))},
		shot:    shot,
		bullet:  bullet,
	}
}

func (f *fixture) enemy(t *testing.T, at core.GameLocation) *entity.Enemy {
	t.Helper()
	e, err := f.factory.NewEnemy(entity.ArchetypeSaucer, at)
	require.NoError(t, err)
	return e
}

func (f *fixture) player(t *testing.T, at core.GameLocation) *entity.Player {
	t.Helper()
	p, err := f.factory.NewPlayer(at, 1, testField.Rect())
	require.NoError(t, err)
	return p
}

func TestShotHitsFirstOverlappingEnemy(t *testing.T) {
	f := newFixture(t)
	enemies := []*entity.Enemy{
		f.enemy(t, core.Loc(0, 0)),
		f.enemy(t, core.Loc(20, 10)),
		f.enemy(t, core.Loc(22, 10)),
	}
	shot := particle.NewPlayerShot(core.Loc(22, 10), 1, f.shot, testField)

	res := Resolve(World{Shot: shot, Enemies: enemies})
	assert.Same(t, enemies[1], res.ShotVictim)
	assert.False(t, res.PlayerHit)
}

func TestShotMissesTouchingEnemy(t *testing.T) {
	f := newFixture(t)
	e := f.enemy(t, core.Loc(20, 10)) // 5x2: spans [20,25) x [10,12)
	shot := particle.NewPlayerShot(core.Loc(25, 10), 1, f.shot, testField)

	res := Resolve(World{Shot: shot, Enemies: []*entity.Enemy{e}})
	assert.Nil(t, res.ShotVictim, "sharing an edge is not an overlap")
}

func TestPlayerHitByEnemy(t *testing.T) {
	f := newFixture(t)
	p := f.player(t, core.Loc(50, 40))
	e := f.enemy(t, core.Loc(52, 41))

	res := Resolve(World{Player: p, Enemies: []*entity.Enemy{e}})
	assert.True(t, res.PlayerHit)
	assert.Equal(t, entity.KindEnemy, res.PlayerHitBy)
}

func TestInvulnerablePlayerIsNotHit(t *testing.T) {
	f := newFixture(t)
	p := f.player(t, core.Loc(50, 40))
	e := f.enemy(t, core.Loc(52, 41))

	res := Resolve(World{Player: p, PlayerInvulnerable: true, Enemies: []*entity.Enemy{e}})
	assert.False(t, res.PlayerHit)
}

func TestShotVictimDoesNotKillPlayer(t *testing.T) {
	f := newFixture(t)
	p := f.player(t, core.Loc(50, 40))
	e := f.enemy(t, core.Loc(52, 39))
	shot := particle.NewPlayerShot(core.Loc(52, 39), 1, f.shot, testField)

	res := Resolve(World{Player: p, Shot: shot, Enemies: []*entity.Enemy{e}})
	assert.Same(t, e, res.ShotVictim)
	assert.False(t, res.PlayerHit)
}

func TestPlayerHitByBullet(t *testing.T) {
	f := newFixture(t)
	p := f.player(t, core.Loc(50, 40))
	owner := f.enemy(t, core.Loc(0, 0))
	b := particle.NewBullet(owner, core.Loc(52, 41), 270, 1, f.bullet, testField)

	res := Resolve(World{Player: p, Particles: []*particle.Particle{b}})
	assert.True(t, res.PlayerHit)
	assert.Equal(t, entity.KindBullet, res.PlayerHitBy)
}

func TestDormantShrapnelIsHarmless(t *testing.T) {
	f := newFixture(t)
	p := f.player(t, core.Loc(50, 40))
	e, err := f.factory.Assets.Explosion("small")
	require.NoError(t, err)

	_, shrapnel := particle.Spawn(e, core.Loc(52, 41), testField)
	res := Resolve(World{Player: p, Particles: shrapnel})
	assert.False(t, res.PlayerHit)
}

func TestPlayerHitByBurningCenter(t *testing.T) {
	f := newFixture(t)
	p := f.player(t, core.Loc(50, 40))
	c := particle.NewExplosionCenter(core.Loc(52, 41), core.Frame{{core.ColorYellow}}, 2)

	res := Resolve(World{Player: p, Centers: []*particle.ExplosionCenter{c}})
	assert.True(t, res.PlayerHit)
	assert.Equal(t, entity.KindExplosionCenter, res.PlayerHitBy)

	c.Update()
	c.Update()
	res = Resolve(World{Player: p, Centers: []*particle.ExplosionCenter{c}})
	assert.False(t, res.PlayerHit, "exhausted centers are harmless")
}

func TestNoPlayerNoShot(t *testing.T) {
	f := newFixture(t)
	res := Resolve(World{Enemies: []*entity.Enemy{f.enemy(t, core.Loc(1, 1))}})
	assert.Equal(t, Result{}, res)
}

func TestHitsIsSymmetric(t *testing.T) {
	f := newFixture(t)
	p := f.player(t, core.Loc(50, 40))
	for _, at := range []core.GameLocation{core.Loc(46, 40), core.Loc(45, 40), core.Loc(54, 42), core.Loc(55, 43)} {
		e := f.enemy(t, at)
		assert.Equal(t, Hits(p, e), Hits(e, p), "at %v", at)
	}
}
