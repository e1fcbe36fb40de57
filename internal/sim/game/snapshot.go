package game

import (
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is a primitive-typed copy of the simulation used for determinism
// checks and debugging.
type Snapshot struct {
	Tick     uint64 `msgpack:"tick"`
	Score    int    `msgpack:"score"`
	Lives    int    `msgpack:"lives"`
	Charges  int    `msgpack:"charges"`
	Level    int    `msgpack:"level"`
	Paused   bool   `msgpack:"paused"`
	GameOver bool   `msgpack:"game_over"`

	TotalEnemies int `msgpack:"total_enemies"`

	Enemies   []EnemySnapshot    `msgpack:"enemies"`
	Particles []ParticleSnapshot `msgpack:"particles"`
	Centers   []CenterSnapshot   `msgpack:"centers"`

	PlayerAlive bool    `msgpack:"player_alive"`
	PlayerLeft  float64 `msgpack:"player_left"`
	PlayerTop   float64 `msgpack:"player_top"`

	ShotAlive bool    `msgpack:"shot_alive"`
	ShotLeft  float64 `msgpack:"shot_left"`
	ShotTop   float64 `msgpack:"shot_top"`

	BeamLength    int `msgpack:"beam_length"`
	PendingEvents int `msgpack:"pending_events"`
}

// EnemySnapshot is one enemy in a Snapshot.
type EnemySnapshot struct {
	ID        int     `msgpack:"id"`
	Archetype int     `msgpack:"archetype"`
	Left      float64 `msgpack:"left"`
	Top       float64 `msgpack:"top"`
	Frame     int     `msgpack:"frame"`
	HitPoints int     `msgpack:"hp"`
}

// ParticleSnapshot is one particle in a Snapshot.
type ParticleSnapshot struct {
	Kind  int     `msgpack:"kind"`
	Left  float64 `msgpack:"left"`
	Top   float64 `msgpack:"top"`
	Speed float64 `msgpack:"speed"`
}

// CenterSnapshot is one explosion center in a Snapshot.
type CenterSnapshot struct {
	Left    float64 `msgpack:"left"`
	Top     float64 `msgpack:"top"`
	Elapsed int     `msgpack:"elapsed"`
}

// Snapshot captures the current state.
func (o *Orchestrator) Snapshot() Snapshot {
	s := &o.state
	snap := Snapshot{
		Tick:          s.Tick,
		Score:         s.Score,
		Lives:         s.Lives,
		Charges:       s.Charges,
		Level:         s.Level,
		Paused:        s.Paused,
		GameOver:      s.GameOver,
		TotalEnemies:  s.TotalEnemiesAtLevelStart,
		Enemies:       make([]EnemySnapshot, 0, len(s.Enemies)),
		Particles:     make([]ParticleSnapshot, 0, len(s.Particles)),
		Centers:       make([]CenterSnapshot, 0, len(s.Centers)),
		BeamLength:    len(s.BeamPath),
		PendingEvents: o.events.pending(),
	}

	for _, e := range s.Enemies {
		loc := e.Location()
		snap.Enemies = append(snap.Enemies, EnemySnapshot{
			ID:        e.ID(),
			Archetype: int(e.Archetype()),
			Left:      loc.Left,
			Top:       loc.Top,
			Frame:     e.FrameIndex(),
			HitPoints: e.HitPoints(),
		})
	}
	for _, p := range s.Particles {
		loc := p.Location()
		snap.Particles = append(snap.Particles, ParticleSnapshot{
			Kind:  int(p.Kind()),
			Left:  loc.Left,
			Top:   loc.Top,
			Speed: p.Speed(),
		})
	}
	for _, c := range s.Centers {
		loc := c.Location()
		snap.Centers = append(snap.Centers, CenterSnapshot{Left: loc.Left, Top: loc.Top, Elapsed: c.Elapsed()})
	}

	if s.Player != nil {
		snap.PlayerAlive = true
		loc := s.Player.Location()
		snap.PlayerLeft, snap.PlayerTop = loc.Left, loc.Top
	}
	if s.PlayerShot != nil {
		snap.ShotAlive = true
		loc := s.PlayerShot.Location()
		snap.ShotLeft, snap.ShotTop = loc.Left, loc.Top
	}
	return snap
}

// Encode serializes the snapshot with msgpack.
func (snap *Snapshot) Encode() ([]byte, error) {
	return msgpack.Marshal(snap)
}

// Hash returns an FNV-1a hash of the encoded snapshot.
func (snap *Snapshot) Hash() uint64 {
	b, err := snap.Encode()
	if err != nil {
		// Every field is a primitive, so encoding cannot fail.
		panic(err)
	}
	h := fnv.New64a()
	_, _ = h.Write(b)
	return h.Sum64()
}
