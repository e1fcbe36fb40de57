package game

import (
	"fmt"

	"github.com/vovakirdan/tui-blaster/internal/core"
	"github.com/vovakirdan/tui-blaster/internal/sim/entity"
)

// Formation grid used to place a level's enemies.
const (
	formationCellW  = 8
	formationCellH  = 4
	formationMargin = 2
)

// Group is a number of enemies of one archetype.
type Group struct {
	Archetype entity.Archetype
	Count     int
}

// Level lists the enemies of one wave.
type Level struct {
	Name   string
	Groups []Group
}

// Size returns the number of enemies in the level.
func (l Level) Size() int {
	n := 0
	for _, g := range l.Groups {
		n += g.Count
	}
	return n
}

// LoadLevel replaces the enemies with the level's formation. number is the
// 1-based level shown to the player; speedFactor scales every enemy's base
// speed for the whole level.
func (o *Orchestrator) LoadLevel(number int, lvl Level, speedFactor float64) error {
	if speedFactor <= 0 {
		speedFactor = 1
	}

	enemies := make([]*entity.Enemy, 0, lvl.Size())
	cols := max(int((o.field.Width()-2*formationMargin)/formationCellW), 1)
	slot := 0
	for _, g := range lvl.Groups {
		for range g.Count {
			row, col := slot/cols, slot%cols
			at := core.Loc(
				o.field.Left+formationMargin+float64(col*formationCellW),
				o.field.Top+formationMargin+float64(row*formationCellH),
			)
			e, err := o.factory.NewEnemy(g.Archetype, at)
			if err != nil {
				return fmt.Errorf("level %d: %w", number, err)
			}
			if speedFactor != 1 {
				e.IncreaseSpeed(speedFactor)
			}
			enemies = append(enemies, e)
			slot++
		}
	}

	s := &o.state
	s.Enemies = enemies
	s.TotalEnemiesAtLevelStart = len(enemies)
	s.Level = number
	s.PlayerShot = nil
	o.speedFactor = speedFactor
	o.levelDone = false

	o.log.Debug("level loaded", "level", number, "name", lvl.Name, "enemies", len(enemies), "speed", speedFactor)
	return nil
}

// AddEnemy places an already-built enemy into the current level and counts it
// toward the level total.
func (o *Orchestrator) AddEnemy(e *entity.Enemy) {
	o.state.Enemies = append(o.state.Enemies, e)
	o.state.TotalEnemiesAtLevelStart++
	o.levelDone = false
}
