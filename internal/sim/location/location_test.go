package location

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blaster/internal/core"
)

var testField = core.Field{Top: 0, Bottom: 100, Left: 0, Right: 200, PixelSize: 1}

// seqRand replays fixed values so random variants are predictable.
type seqRand struct {
	ints   []int
	floats []float64
}

func (r *seqRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *seqRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

type fixedIndex int

func (f *fixedIndex) CurrentIndex() int { return int(*f) }

func TestBounceStraightLine(t *testing.T) {
	b := NewBounce(Motion{Start: core.Loc(50, 50), Angle: 0, Speed: 2, Width: 4, Height: 4, Field: testField})
	b.Update(1)
	assert.InDelta(t, 52, b.Location().Left, 1e-9)
	assert.InDelta(t, 50, b.Location().Top, 1e-9)
}

func TestBounceReflectsOffRightEdge(t *testing.T) {
	b := NewBounce(Motion{Start: core.Loc(194, 50), Angle: 30, Speed: 4, Width: 4, Height: 4, Field: testField})
	b.Update(1)

	assert.InDelta(t, 196, b.Location().Left, 1e-9, "clamped to the right edge")
	assert.InDelta(t, 150, b.Angle(), 1e-9, "180 - 30")
}

func TestBounceReflectsOffTopEdge(t *testing.T) {
	b := NewBounce(Motion{Start: core.Loc(50, 1), Angle: 60, Speed: 4, Width: 4, Height: 4, Field: testField})
	b.Update(1)

	assert.InDelta(t, 0, b.Location().Top, 1e-9)
	assert.InDelta(t, 300, b.Angle(), 1e-9, "-60 normalized")
}

func TestBounceStaysInsideField(t *testing.T) {
	b := NewBounce(Motion{Start: core.Loc(10, 10), Angle: 37, Speed: 7, Width: 5, Height: 3, Field: testField})
	for tick := uint64(1); tick <= 500; tick++ {
		b.Update(tick)
		loc := b.Location()
		require.GreaterOrEqual(t, loc.Left, testField.Left)
		require.LessOrEqual(t, loc.Left+5, testField.Right)
		require.GreaterOrEqual(t, loc.Top, testField.Top)
		require.LessOrEqual(t, loc.Top+3, testField.Bottom)
	}
}

func TestIncreaseSpeedUsesBaseSpeed(t *testing.T) {
	b := NewBounce(Motion{Start: core.Loc(50, 50), Angle: 0, Speed: 2, Width: 1, Height: 1, Field: testField})

	b.IncreaseSpeed(1.5)
	assert.InDelta(t, 3, b.Speed(), 1e-9)

	b.IncreaseSpeed(2)
	assert.InDelta(t, 4, b.Speed(), 1e-9, "factor applies to base speed, not compounded")
	assert.InDelta(t, 2, b.BaseSpeed(), 1e-9)
}

func TestWrapReappearsOnOppositeSide(t *testing.T) {
	w := NewWrap(WrapConfig{
		Motion:    Motion{Start: core.Loc(194, 20), Angle: 0, Speed: 3, Width: 4, Height: 4, Field: testField},
		BandTop:   10,
		Threshold: 60,
	})
	w.Update(1)
	assert.InDelta(t, 197, w.Location().Left, 1e-9, "still partly visible")

	w.Update(2)
	assert.InDelta(t, -4, w.Location().Left, 1e-9, "re-enters from the left edge")
}

func TestWrapLeftwardWrap(t *testing.T) {
	w := NewWrap(WrapConfig{
		Motion:    Motion{Start: core.Loc(-2, 20), Angle: 180, Speed: 3, Width: 4, Height: 4, Field: testField},
		BandTop:   10,
		Threshold: 60,
	})
	w.Update(1)
	assert.InDelta(t, 200, w.Location().Left, 1e-9)
}

func TestWrapResetsBandPastThreshold(t *testing.T) {
	w := NewWrap(WrapConfig{
		Motion:    Motion{Start: core.Loc(50, 58), Angle: 270, Speed: 5, Width: 4, Height: 4, Field: testField},
		BandTop:   10,
		Threshold: 60,
	})
	w.Update(1)
	assert.InDelta(t, 10, w.Location().Top, 1e-9)
}

func TestToExtremeResetsAfterBottom(t *testing.T) {
	e := NewToExtreme(ExtremeConfig{
		Motion: Motion{Start: core.Loc(50, 95), Angle: 270, Speed: 4, Width: 4, Height: 4, Field: testField},
		Target: ExtremeBottom,
		Reset:  -4,
	})
	e.Update(1)
	assert.InDelta(t, 99, e.Location().Top, 1e-9)

	e.Update(2)
	assert.InDelta(t, -4, e.Location().Top, 1e-9)
}

func TestToExtremeResetsAfterTop(t *testing.T) {
	e := NewToExtreme(ExtremeConfig{
		Motion: Motion{Start: core.Loc(50, -2), Angle: 90, Speed: 3, Width: 4, Height: 4, Field: testField},
		Target: ExtremeTop,
		Reset:  100,
	})
	e.Update(1)
	assert.InDelta(t, 100, e.Location().Top, 1e-9)
	assert.Equal(t, "top", ExtremeTop.String())
}

func TestWobbleSamplesEveryNTicks(t *testing.T) {
	rng := &seqRand{ints: []int{0, 1, 0}}
	w := NewWobble(WobbleConfig{
		Motion: Motion{Start: core.Loc(100, 30), Speed: 1, Width: 2, Height: 2, Field: testField},
		Angles: []float64{0, 180},
		Every:  3,
		Rng:    rng,
	})

	w.Update(1)
	assert.InDelta(t, 0, w.Angle(), 1e-9)
	w.Update(2)
	w.Update(3)
	assert.InDelta(t, 0, w.Angle(), 1e-9, "no resample before Every ticks")
	w.Update(4)
	assert.InDelta(t, 180, w.Angle(), 1e-9)
}

func TestWobbleLiftsOffBottom(t *testing.T) {
	w := NewWobble(WobbleConfig{
		Motion: Motion{Start: core.Loc(100, 95), Speed: 4, Width: 2, Height: 2, Field: testField},
		Angles: []float64{270},
		Every:  10,
		Rng:    &seqRand{},
	})
	w.Update(1)

	twoThirds := testField.Height() * 2 / 3
	assert.InDelta(t, twoThirds-2, w.Location().Top, 1e-9)
	assert.InDelta(t, 90, w.Angle(), 1e-9, "heading flipped upward")
}

func TestAttackerSteersTowardTarget(t *testing.T) {
	target := core.Loc(10, 90)
	a := NewAttacker(AttackerConfig{
		Motion:    Motion{Start: core.Loc(100, 10), Speed: 2, Width: 4, Height: 4, Field: testField},
		Target:    func() (core.GameLocation, bool) { return target, true },
		TurnEvery: 5,
	})

	a.Update(1)
	assert.True(t, a.MovingLeft())
	assert.False(t, a.MovingUp())

	target = core.Loc(190, 0)
	a.Update(2)
	assert.True(t, a.MovingLeft(), "keeps course between corrections")

	a.Update(6)
	assert.False(t, a.MovingLeft())
	assert.True(t, a.MovingUp())
}

func TestAttackerWithoutTargetKeepsHeading(t *testing.T) {
	a := NewAttacker(AttackerConfig{
		Motion: Motion{Start: core.Loc(100, 50), Angle: 135, Speed: 1, Width: 2, Height: 2, Field: testField},
		Target: func() (core.GameLocation, bool) { return core.GameLocation{}, false },
	})
	a.Update(1)
	assert.InDelta(t, 135, a.Angle(), 1e-9)
}

func TestCloakingTeleportsOnlyWhenInvisible(t *testing.T) {
	idx := fixedIndex(0)
	c := NewCloaking(CloakingConfig{
		Start:     core.Loc(5, 5),
		Width:     10,
		Height:    10,
		Area:      core.GameRectangle{Left: 0, Top: 0, Right: 110, Bottom: 60},
		Frames:    &idx,
		Invisible: 2,
		Cooldown:  10,
		Rng:       &seqRand{floats: []float64{0.5, 0.5, 0.0, 1.0}},
	})

	c.Update(1)
	assert.Equal(t, core.Loc(5, 5), c.Location(), "visible frames never move")

	idx = 2
	c.Update(2)
	assert.Equal(t, core.Loc(50, 25), c.Location())

	c.Update(5)
	assert.Equal(t, core.Loc(50, 25), c.Location(), "cooldown not expired")

	c.Update(12)
	assert.Equal(t, core.Loc(0, 50), c.Location())
}

func TestCloakingIncreaseSpeedShortensCooldown(t *testing.T) {
	c := NewCloaking(CloakingConfig{Cooldown: 30, Rng: rand.New(rand.NewSource(1))})
	c.IncreaseSpeed(2)
	assert.Equal(t, uint64(15), c.Cooldown())
	c.IncreaseSpeed(100)
	assert.Equal(t, uint64(1), c.Cooldown())
}

func TestCrabFollowsAnimation(t *testing.T) {
	idx := fixedIndex(0)
	c := NewCrab(CrabConfig{
		Motion:   Motion{Start: core.Loc(50, 50), Angle: 0, Speed: 2, Width: 4, Height: 4, Field: testField},
		Frames:   &idx,
		UpFrames: 2,
		Drift:    0.5,
	})

	c.Update(1)
	assert.Equal(t, core.Loc(51, 48), c.Location())
	assert.True(t, c.MovingUp())

	idx = 3
	c.Update(2)
	assert.Equal(t, core.Loc(52, 50), c.Location())
	assert.False(t, c.MovingUp())
}

func TestCrabWrapsVertically(t *testing.T) {
	idx := fixedIndex(0)
	c := NewCrab(CrabConfig{
		Motion:   Motion{Start: core.Loc(50, -3), Angle: 0, Speed: 2, Width: 4, Height: 4, Field: testField},
		Frames:   &idx,
		UpFrames: 1,
	})
	c.Update(1)
	assert.InDelta(t, 100, c.Location().Top, 1e-9)
}

func TestCrabBouncesOffSides(t *testing.T) {
	idx := fixedIndex(0)
	c := NewCrab(CrabConfig{
		Motion:   Motion{Start: core.Loc(195, 50), Angle: 0, Speed: 4, Width: 4, Height: 4, Field: testField},
		Frames:   &idx,
		UpFrames: 1,
		Drift:    1,
	})
	c.Update(1)
	assert.InDelta(t, 196, c.Location().Left, 1e-9)
	assert.True(t, c.MovingLeft())
}

func TestReappearSpawnsOffField(t *testing.T) {
	rng := &seqRand{ints: []int{0, 1}, floats: []float64{0.5, 0.25}}
	r := NewReappear(ReappearConfig{
		Width:  4,
		Height: 4,
		Field:  testField,
		Pool:   []Vector{{Angle: 0, Speed: 50}, {Angle: 180, Speed: 10}},
		Rng:    rng,
	})

	assert.InDelta(t, -4, r.Location().Left, 1e-9, "moving right enters from the left")
	assert.InDelta(t, 48, r.Location().Top, 1e-9)

	for tick := uint64(1); tick <= 4; tick++ {
		r.Update(tick)
	}
	assert.InDelta(t, 196, r.Location().Left, 1e-9)

	r.Update(5)
	assert.InDelta(t, 200, r.Location().Left, 1e-9, "moving left enters from the right")
	assert.InDelta(t, 180, r.Angle(), 1e-9)
	assert.InDelta(t, 24, r.Location().Top, 1e-9)
}

func TestReappearKeepsSpeedFactor(t *testing.T) {
	rng := &seqRand{ints: []int{0, 0}}
	r := NewReappear(ReappearConfig{
		Width:  2,
		Height: 2,
		Field:  testField,
		Pool:   []Vector{{Angle: 270, Speed: 60}},
		Rng:    rng,
	})
	assert.InDelta(t, -2, r.Location().Top, 1e-9, "moving down enters from the top")

	r.IncreaseSpeed(2)
	assert.InDelta(t, 120, r.Speed(), 1e-9)

	r.Update(1)
	r.Update(2)
	assert.InDelta(t, 120, r.Speed(), 1e-9, "resampled vector keeps the factor")
	assert.InDelta(t, 60, r.BaseSpeed(), 1e-9)
}
