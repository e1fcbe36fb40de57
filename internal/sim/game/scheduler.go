package game

import (
	"github.com/vovakirdan/tui-blaster/internal/sim/entity"
)

type eventKind int

const (
	eventPhaserResolve eventKind = iota
	eventRespawn
)

func (k eventKind) String() string {
	switch k {
	case eventPhaserResolve:
		return "phaser_resolve"
	case eventRespawn:
		return "respawn"
	default:
		return "unknown"
	}
}

// event is a deferred action that becomes due at readyAt.
type event struct {
	readyAt uint64
	seq     uint64
	kind    eventKind
	target  *entity.Enemy
}

// scheduler is a queue of deferred events ordered by readyAt, then by the
// order they were scheduled in.
type scheduler struct {
	queue []event
	seq   uint64
}

func (s *scheduler) schedule(readyAt uint64, kind eventKind, target *entity.Enemy) {
	s.seq++
	ev := event{readyAt: readyAt, seq: s.seq, kind: kind, target: target}

	i := len(s.queue)
	for i > 0 && s.queue[i-1].readyAt > readyAt {
		i--
	}
	s.queue = append(s.queue, event{})
	copy(s.queue[i+1:], s.queue[i:])
	s.queue[i] = ev
}

// due removes and returns every event ready at tick.
func (s *scheduler) due(tick uint64) []event {
	n := 0
	for n < len(s.queue) && s.queue[n].readyAt <= tick {
		n++
	}
	if n == 0 {
		return nil
	}
	out := append([]event(nil), s.queue[:n]...)
	s.queue = s.queue[n:]
	return out
}

// cancel drops every queued event of kind and returns how many were dropped.
func (s *scheduler) cancel(kind eventKind) int {
	kept := s.queue[:0]
	for _, ev := range s.queue {
		if ev.kind != kind {
			kept = append(kept, ev)
		}
	}
	n := len(s.queue) - len(kept)
	clear(s.queue[len(kept):])
	s.queue = kept
	return n
}

func (s *scheduler) pending() int {
	return len(s.queue)
}
