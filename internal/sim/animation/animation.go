// Package animation selects the current sprite frame of an entity over time,
// independently of where the entity is.
package animation

import "github.com/vovakirdan/tui-blaster/internal/core"

// Provider is a frame-selection strategy.
type Provider interface {
	// SetFrames installs the frame set. The current index is kept when it is
	// still in range and reset to zero otherwise.
	SetFrames(frames []core.Frame)

	// CurrentFrame returns the frame at the current index.
	CurrentFrame() (core.Frame, error)

	// NextFrame advances the index and returns the new current frame.
	NextFrame() (core.Frame, error)

	// CurrentIndex returns the index of the current frame.
	CurrentIndex() int
}

// frameSet holds the frames and index shared by every provider.
type frameSet struct {
	frames []core.Frame
	index  int
}

func (s *frameSet) SetFrames(frames []core.Frame) {
	s.frames = frames
	if s.index >= len(frames) {
		s.index = 0
	}
}

func (s *frameSet) CurrentIndex() int {
	return s.index
}

func (s *frameSet) current(op string) (core.Frame, error) {
	if len(s.frames) == 0 {
		return nil, core.Configf(op, "frames have not been set")
	}
	return s.frames[s.index], nil
}

// BackAndForth ping-pongs through its frames: 0,1,...,N-1,N-2,...,0,1,...
// The direction flips exactly at each end, so no end frame is repeated.
type BackAndForth struct {
	frameSet
	reverse bool
}

// NewBackAndForth creates a ping-pong provider starting at index start.
func NewBackAndForth(start int) *BackAndForth {
	return &BackAndForth{frameSet: frameSet{index: start}}
}

func (p *BackAndForth) CurrentFrame() (core.Frame, error) {
	return p.current("BackAndForth.CurrentFrame")
}

func (p *BackAndForth) NextFrame() (core.Frame, error) {
	if len(p.frames) == 0 {
		return nil, core.Configf("BackAndForth.NextFrame", "frames have not been set")
	}
	if len(p.frames) == 1 {
		return p.frames[0], nil
	}

	if p.reverse {
		p.index--
	} else {
		p.index++
	}

	last := len(p.frames) - 1
	if p.index >= last {
		p.index = last
		p.reverse = true
	} else if p.index <= 0 {
		p.index = 0
		p.reverse = false
	}
	return p.frames[p.index], nil
}

// Circular cycles 0,1,...,N-1 and wraps back to 0.
type Circular struct {
	frameSet
}

// NewCircular creates a wrapping provider starting at index start.
func NewCircular(start int) *Circular {
	return &Circular{frameSet: frameSet{index: start}}
}

func (p *Circular) CurrentFrame() (core.Frame, error) {
	return p.current("Circular.CurrentFrame")
}

func (p *Circular) NextFrame() (core.Frame, error) {
	if len(p.frames) == 0 {
		return nil, core.Configf("Circular.NextFrame", "frames have not been set")
	}
	p.index = (p.index + 1) % len(p.frames)
	return p.frames[p.index], nil
}

// Static keeps one frame until something outside the timer changes it, such as
// an armored enemy taking damage or an attacker turning.
type Static struct {
	frameSet
}

// NewStatic creates a provider fixed at index start.
func NewStatic(start int) *Static {
	return &Static{frameSet: frameSet{index: start}}
}

func (p *Static) CurrentFrame() (core.Frame, error) {
	return p.current("Static.CurrentFrame")
}

// NextFrame does not advance a static provider.
func (p *Static) NextFrame() (core.Frame, error) {
	return p.current("Static.NextFrame")
}

// SetIndex selects a frame in response to an external event. Out-of-range
// indexes are clamped to the frame set.
func (p *Static) SetIndex(i int) {
	if len(p.frames) == 0 {
		p.index = max(i, 0)
		return
	}
	p.index = core.Clamp(i, 0, len(p.frames)-1)
}

var (
	_ Provider = (*BackAndForth)(nil)
	_ Provider = (*Circular)(nil)
	_ Provider = (*Static)(nil)
)
