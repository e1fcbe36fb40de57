package animation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blaster/internal/core"
)

// testFrames builds n distinct 1x1 frames so an index can be read back from
// the returned frame's color.
func testFrames(n int) []core.Frame {
	frames := make([]core.Frame, n)
	for i := range frames {
		frames[i] = core.Frame{{core.Color(i + 1)}}
	}
	return frames
}

func indexOf(f core.Frame) int {
	return int(f[0][0]) - 1
}

func collect(t *testing.T, p Provider, n int) []int {
	t.Helper()
	out := make([]int, 0, n)
	for range n {
		f, err := p.NextFrame()
		require.NoError(t, err)
		assert.Equal(t, p.CurrentIndex(), indexOf(f))
		out = append(out, indexOf(f))
	}
	return out
}

func TestBackAndForthPingPong(t *testing.T) {
	p := NewBackAndForth(0)
	p.SetFrames(testFrames(3))

	assert.Equal(t, 0, p.CurrentIndex())
	assert.Equal(t, []int{1, 2, 1, 0, 1, 2, 1, 0}, collect(t, p, 8))
}

func TestBackAndForthSmallSets(t *testing.T) {
	two := NewBackAndForth(0)
	two.SetFrames(testFrames(2))
	assert.Equal(t, []int{1, 0, 1, 0}, collect(t, two, 4))

	one := NewBackAndForth(0)
	one.SetFrames(testFrames(1))
	assert.Equal(t, []int{0, 0, 0}, collect(t, one, 3))
}

func TestBackAndForthStartingMidway(t *testing.T) {
	p := NewBackAndForth(2)
	p.SetFrames(testFrames(4))
	assert.Equal(t, []int{3, 2, 1, 0, 1}, collect(t, p, 5))
}

func TestCircularWraps(t *testing.T) {
	p := NewCircular(0)
	p.SetFrames(testFrames(4))
	assert.Equal(t, []int{1, 2, 3, 0, 1, 2, 3, 0}, collect(t, p, 8))
}

func TestStaticHoldsIndex(t *testing.T) {
	p := NewStatic(1)
	p.SetFrames(testFrames(3))
	assert.Equal(t, []int{1, 1, 1}, collect(t, p, 3))

	p.SetIndex(2)
	f, err := p.CurrentFrame()
	require.NoError(t, err)
	assert.Equal(t, 2, indexOf(f))

	p.SetIndex(10)
	assert.Equal(t, 2, p.CurrentIndex(), "out of range index is clamped")
}

func TestFramesNotSetIsConfigurationError(t *testing.T) {
	providers := map[string]Provider{
		"back-and-forth": NewBackAndForth(0),
		"circular":       NewCircular(0),
		"static":         NewStatic(0),
	}

	for name, p := range providers {
		t.Run(name, func(t *testing.T) {
			_, err := p.CurrentFrame()
			var cfgErr *core.ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "CurrentFrame: expected ConfigurationError, got %v", err)

			_, err = p.NextFrame()
			require.True(t, errors.As(err, &cfgErr), "NextFrame: expected ConfigurationError, got %v", err)
		})
	}
}

func TestSetFramesResetsOutOfRangeIndex(t *testing.T) {
	p := NewCircular(0)
	p.SetFrames(testFrames(4))
	collect(t, p, 3)
	require.Equal(t, 3, p.CurrentIndex())

	p.SetFrames(testFrames(2))
	assert.Equal(t, 0, p.CurrentIndex())
}
