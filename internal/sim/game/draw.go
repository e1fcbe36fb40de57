package game

import (
	"github.com/vovakirdan/tui-blaster/internal/core"
)

// Draw renders the post-update state of the last tick. It never mutates the
// simulation.
func (o *Orchestrator) Draw(r core.Renderer) {
	s := &o.state

	for _, c := range s.Centers {
		c.Draw(r)
	}
	for _, e := range s.Enemies {
		e.Draw(r)
	}
	for _, p := range s.Particles {
		p.Draw(r)
	}
	if s.PlayerShot != nil {
		s.PlayerShot.Draw(r)
	}
	for _, at := range s.BeamPath {
		r.Draw(at, o.beamFrame)
	}
	if s.Player != nil {
		s.Player.Draw(r, s.Tick)
	}
}
