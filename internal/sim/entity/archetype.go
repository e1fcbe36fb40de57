package entity

import (
	"github.com/vovakirdan/tui-blaster/internal/core"
)

// Archetype selects an enemy's movement and animation pair.
type Archetype int

const (
	ArchetypeSaucer   Archetype = iota // bounces, ping-pong animation, fires
	ArchetypeStreaker                  // wraps horizontally
	ArchetypeDiver                     // dives to the bottom and resets at the top
	ArchetypeWobbler                   // random headings, fires
	ArchetypeZigzag                    // attacks the player, faces its heading
	ArchetypeCloaker                   // teleports while invisible
	ArchetypeCrab                      // walks up and down with its animation
	ArchetypeComet                     // crosses the field and reappears
	ArchetypeTank                      // armored, shows damage
	archetypeCount
)

var archetypeNames = [...]string{
	ArchetypeSaucer:   "saucer",
	ArchetypeStreaker: "streaker",
	ArchetypeDiver:    "diver",
	ArchetypeWobbler:  "wobbler",
	ArchetypeZigzag:   "zigzag",
	ArchetypeCloaker:  "cloaker",
	ArchetypeCrab:     "crab",
	ArchetypeComet:    "comet",
	ArchetypeTank:     "tank",
}

func (a Archetype) String() string {
	if a < 0 || a >= archetypeCount {
		return "unknown"
	}
	return archetypeNames[a]
}

// Valid reports whether a names a known archetype.
func (a Archetype) Valid() bool {
	return a >= 0 && a < archetypeCount
}

// ParseArchetype resolves an archetype by name.
func ParseArchetype(name string) (Archetype, error) {
	for i, n := range archetypeNames {
		if n == name {
			return Archetype(i), nil
		}
	}
	return 0, core.Configf("parse archetype", "unknown archetype %q", name)
}

// Archetypes lists every archetype in declaration order.
func Archetypes() []Archetype {
	out := make([]Archetype, 0, archetypeCount)
	for a := Archetype(0); a < archetypeCount; a++ {
		out = append(out, a)
	}
	return out
}
