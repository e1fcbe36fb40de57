// Package asset holds the static sprite and explosion templates. Templates are
// validated once when the library is loaded and every accessor hands out an
// independent copy, so entities sharing an archetype never alias pixel data.
package asset

import (
	"maps"

	"github.com/vovakirdan/tui-blaster/internal/core"
)

// ExplosionAsset is the template for one explosion: a burst frame shown at the
// origin for CenterDelay ticks and one shrapnel particle per entry of Angles.
type ExplosionAsset struct {
	Name                 string
	Center               core.Frame
	Shrapnel             []core.Frame
	Angles               []float64 // degrees
	ParticleFrameIndexes []int     // index into Shrapnel for each angle
	UseSpeed             bool      // true: every particle uses Speed
	Speed                float64
	Speeds               []float64 // per-angle speeds when UseSpeed is false
	Acceleration         float64   // speed multiplier applied after each move
	CenterDelay          int       // ticks the burst frame burns
}

// Validate checks the structural invariants of the template. It returns a
// *core.InvariantViolation describing the first problem found.
func (e ExplosionAsset) Validate() error {
	op := "explosion " + e.Name
	if e.Center.Height() == 0 {
		return core.Invariantf(op, "center frame is missing")
	}
	if len(e.Angles) != len(e.ParticleFrameIndexes) {
		return core.Invariantf(op, "%d angles but %d particle frame indexes",
			len(e.Angles), len(e.ParticleFrameIndexes))
	}
	if !e.UseSpeed && len(e.Speeds) != len(e.Angles) {
		return core.Invariantf(op, "%d angles but %d speeds", len(e.Angles), len(e.Speeds))
	}
	for i, idx := range e.ParticleFrameIndexes {
		if idx < 0 || idx >= len(e.Shrapnel) {
			return core.Invariantf(op, "particle %d uses shrapnel frame %d of %d", i, idx, len(e.Shrapnel))
		}
	}
	if e.UseSpeed && e.Speed <= 0 {
		return core.Invariantf(op, "shared speed must be positive, got %v", e.Speed)
	}
	if !e.UseSpeed {
		for i, s := range e.Speeds {
			if s <= 0 {
				return core.Invariantf(op, "speed %d must be positive, got %v", i, s)
			}
		}
	}
	// Particles only leave the field while speed never decays.
	if e.Acceleration < 1 {
		return core.Invariantf(op, "acceleration must be >= 1, got %v", e.Acceleration)
	}
	if e.CenterDelay < 0 {
		return core.Invariantf(op, "center delay must not be negative, got %d", e.CenterDelay)
	}
	return nil
}

// ParticleSpeed returns the launch speed of particle i.
func (e ExplosionAsset) ParticleSpeed(i int) float64 {
	if e.UseSpeed {
		return e.Speed
	}
	return e.Speeds[i]
}

// ParticleFrame returns the shrapnel frame used by particle i.
func (e ExplosionAsset) ParticleFrame(i int) core.Frame {
	return e.Shrapnel[e.ParticleFrameIndexes[i]]
}

// Clone returns a deep copy.
func (e ExplosionAsset) Clone() ExplosionAsset {
	out := e
	out.Center = e.Center.Clone()
	out.Shrapnel = core.CloneFrames(e.Shrapnel)
	out.Angles = append([]float64(nil), e.Angles...)
	out.ParticleFrameIndexes = append([]int(nil), e.ParticleFrameIndexes...)
	out.Speeds = append([]float64(nil), e.Speeds...)
	return out
}

// EnemyAsset is the static data of one enemy archetype.
type EnemyAsset struct {
	Name      string
	Frames    []core.Frame
	Offsets   []core.GameLocation // render offset per frame index
	Points    int
	Explosion string
	Palette   core.Palette

	FrameInterval  uint64  // ticks between animation frames
	Speed          float64 // base movement speed, pixels per tick
	HitPoints      int
	InvisibleFrame int // frame index during which a cloaker may teleport, -1 if none
	UpFrames       int // frames of the cycle that carry a crab upward

	FireInterval uint64 // minimum ticks between shots, 0 = never fires
	FireChance   float64
	MaxBullets   int
	BulletSpeed  float64
}

// Fires reports whether the archetype shoots at the player.
func (e EnemyAsset) Fires() bool {
	return e.FireInterval > 0
}

// Footprint returns the largest width and height over all frames. The hitbox
// uses the footprint so it does not jitter between poses.
func (e EnemyAsset) Footprint() (width, height float64) {
	var w, h int
	for _, f := range e.Frames {
		w = max(w, f.Width())
		h = max(h, f.Height())
	}
	return float64(w), float64(h)
}

// Validate checks the enemy template. Explosion references are checked by the
// library, which knows the explosion table.
func (e EnemyAsset) Validate() error {
	op := "enemy " + e.Name
	if len(e.Frames) == 0 {
		return core.Invariantf(op, "no frames")
	}
	if len(e.Offsets) != len(e.Frames) {
		return core.Invariantf(op, "%d frames but %d offsets", len(e.Frames), len(e.Offsets))
	}
	if e.FrameInterval == 0 {
		return core.Invariantf(op, "frame interval must be positive")
	}
	if e.HitPoints < 1 {
		return core.Invariantf(op, "hit points must be at least 1, got %d", e.HitPoints)
	}
	if e.Points < 0 {
		return core.Invariantf(op, "points must not be negative, got %d", e.Points)
	}
	if e.InvisibleFrame >= len(e.Frames) {
		return core.Invariantf(op, "invisible frame %d out of range", e.InvisibleFrame)
	}
	if e.UpFrames > len(e.Frames) {
		return core.Invariantf(op, "up frames %d exceeds %d frames", e.UpFrames, len(e.Frames))
	}
	if e.Fires() && (e.MaxBullets < 1 || e.BulletSpeed <= 0) {
		return core.Invariantf(op, "firing archetype needs max bullets >= 1 and a positive bullet speed")
	}
	return nil
}

// Clone returns a deep copy.
func (e EnemyAsset) Clone() EnemyAsset {
	out := e
	out.Frames = core.CloneFrames(e.Frames)
	out.Offsets = append([]core.GameLocation(nil), e.Offsets...)
	out.Palette = maps.Clone(e.Palette)
	return out
}
