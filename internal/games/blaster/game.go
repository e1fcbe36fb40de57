// Package blaster adapts the shooter simulation to the platform's game
// interface: level progression, HUD and the session leaderboard.
package blaster

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blaster/internal/config"
	"github.com/vovakirdan/tui-blaster/internal/core"
	"github.com/vovakirdan/tui-blaster/internal/registry"
	"github.com/vovakirdan/tui-blaster/internal/sim/asset"
	"github.com/vovakirdan/tui-blaster/internal/sim/entity"
	"github.com/vovakirdan/tui-blaster/internal/sim/game"
)

// HUD layout
const (
	hudRows    = 1
	minScreenW = 40
	minScreenH = 20
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through levels, win at end
	ModeEndless                  // Cycle levels forever, faster each cycle
)

// Scores is the leaderboard the game reads its "best" from and records
// finished games into.
type Scores interface {
	HighScore(gameID string) (int, error)
	SaveScore(gameID, player string, score, level int) (int64, error)
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	scores           Scores
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// SetScores sets the leaderboard shared by every game instance.
func SetScores(s Scores) {
	scores = s
}

// SetLogger sets the logger handed to every simulation.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the blaster on top of the simulation orchestrator.
type Game struct {
	mode   GameMode
	player string

	sim    *game.Orchestrator
	board  *scoreboard
	levels []game.Level

	cfg        config.BlasterConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig

	tick         uint64
	levelIndex   int
	endlessCycle int
	won          bool
	recorded     bool
	best         int

	screenTooSmall bool
}

// New creates a new blaster game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign, player: "local"}
}

// NewEndless creates a new blaster game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless, player: "local"}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "blaster_endless"
	}
	return "blaster"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Blaster (Endless)"
	}
	return "Blaster"
}

// SetPlayer names the player recorded on the leaderboard.
func (g *Game) SetPlayer(name string) {
	if name != "" {
		g.player = name
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	g.runtime = runtime
	g.tick = 0
	g.levelIndex = 0
	g.endlessCycle = 0
	g.won = false
	g.recorded = false
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	cfg, err := config.LoadBlaster(configPath)
	if err != nil {
		return err
	}
	if difficultyPreset != "" {
		config.ApplyBlasterPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	if g.levels, err = buildLevels(cfg.Levels); err != nil {
		return err
	}

	lib, err := asset.Load()
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}

	field := core.Field{
		Top:       hudRows,
		Bottom:    float64(max(runtime.ScreenH, minScreenH)),
		Left:      0,
		Right:     float64(max(runtime.ScreenW, minScreenW)),
		PixelSize: 1,
	}

	g.board = &scoreboard{}
	g.sim, err = game.New(game.Options{
		Field:  field,
		Assets: lib,
		Rng:    rand.New(rand.NewSource(runtime.Seed)),
		Tuning: tuning(cfg),
		Ledger: g.board,
		Logger: logger.With("game", g.ID()),
	})
	if err != nil {
		return err
	}

	g.refreshBest()
	return g.loadLevel()
}

func tuning(cfg config.BlasterConfig) game.Tuning {
	return game.Tuning{
		Lives:             cfg.Player.Lives,
		Charges:           cfg.Player.Charges,
		PlayerSpeed:       cfg.Player.Speed,
		ShotSpeed:         cfg.Player.ShotSpeed,
		PhaserDelay:       uint64(cfg.Phaser.Delay),
		BeamStep:          cfg.Phaser.BeamStep,
		RespawnDelay:      uint64(max(cfg.Player.RespawnDelay, 1)),
		InvulnerableTicks: uint64(max(cfg.Player.InvulnerableTicks, 0)),
	}
}

func buildLevels(in []config.LevelConfig) ([]game.Level, error) {
	levels := make([]game.Level, 0, len(in))
	for i, lc := range in {
		lvl := game.Level{Name: lc.Name}
		for _, gc := range lc.Groups {
			a, err := entity.ParseArchetype(gc.Archetype)
			if err != nil {
				return nil, fmt.Errorf("level %d (%s): %w", i+1, lc.Name, err)
			}
			lvl.Groups = append(lvl.Groups, game.Group{Archetype: a, Count: gc.Count})
		}
		levels = append(levels, lvl)
	}
	if len(levels) == 0 {
		return nil, core.Configf("build levels", "no levels configured")
	}
	return levels, nil
}

// levelNumber is the 1-based level shown to the player.
func (g *Game) levelNumber() int {
	return g.endlessCycle*len(g.levels) + g.levelIndex + 1
}

func (g *Game) loadLevel() error {
	number := g.levelNumber()
	factor := g.difficulty.SpeedFactor(g.sim.State().Score, number) +
		float64(g.endlessCycle)*g.cfg.Endless.CycleSpeedup
	return g.sim.LoadLevel(number, g.levels[g.levelIndex], factor)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.sim == nil {
		return core.StepResult{State: g.State()}
	}

	st := g.sim.State()
	if in.Has(core.ActionRestart) && (st.GameOver || g.won) {
		if err := g.Reset(g.runtime); err != nil {
			logger.Error("restart failed", "err", err)
		}
		return core.StepResult{State: g.State()}
	}
	if g.won {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	ev := g.sim.Step(g.tick, inputFrom(in))

	if g.board.cleared {
		g.board.cleared = false
		g.advanceLevel()
	}
	if ev.GameOver || g.won {
		g.record()
	}
	return core.StepResult{State: g.State()}
}

// advanceLevel moves to the next level once the field is clear.
func (g *Game) advanceLevel() {
	g.levelIndex++
	if g.levelIndex >= len(g.levels) {
		if g.mode == ModeCampaign {
			g.won = true
			return
		}
		g.levelIndex = 0
		g.endlessCycle++
	}
	if err := g.loadLevel(); err != nil {
		// Levels were validated in Reset.
		panic(err)
	}
}

// record saves the final score once per game.
func (g *Game) record() {
	if g.recorded {
		return
	}
	g.recorded = true
	st := g.sim.State()
	if scores != nil {
		if _, err := scores.SaveScore(g.ID(), g.player, st.Score, st.Level); err != nil {
			logger.Warn("save score", "err", err)
		}
	}
	g.refreshBest()
	logger.Info("game finished", "game", g.ID(), "player", g.player, "score", st.Score, "level", st.Level, "won", g.won)
}

func (g *Game) refreshBest() {
	if scores == nil {
		return
	}
	best, err := scores.HighScore(g.ID())
	if err != nil {
		logger.Warn("read high score", "err", err)
		return
	}
	g.best = best
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	st := g.sim.State()
	return core.GameState{
		Score:    st.Score,
		Lives:    st.Lives,
		Level:    st.Level,
		Charges:  st.Charges,
		GameOver: st.GameOver,
		Won:      g.won,
		Paused:   st.Paused && !st.PhaserResolving(),
	}
}

// Snapshot returns the simulation snapshot for determinism checks.
func (g *Game) Snapshot() game.Snapshot {
	return g.sim.Snapshot()
}

func inputFrom(in core.InputFrame) game.Input {
	return game.Input{
		Left:          in.Has(core.ActionLeft),
		Right:         in.Has(core.ActionRight),
		Up:            in.Has(core.ActionUp),
		Down:          in.Has(core.ActionDown),
		Fire:          in.Has(core.ActionFire),
		SpecialWeapon: in.Has(core.ActionSpecialWeapon),
		SelfDestruct:  in.Has(core.ActionSelfDestruct),
		Pause:         in.Has(core.ActionPause),
	}
}

// scoreboard receives the simulation's ledger events.
type scoreboard struct {
	score     int
	livesLost int
	charges   int
	cleared   bool
}

func (b *scoreboard) IncreaseScore(n int)          { b.score += n }
func (b *scoreboard) RemoveLife()                  { b.livesLost++ }
func (b *scoreboard) NextLevel()                   { b.cleared = true }
func (b *scoreboard) ConsumeSpecialWeaponCharge() { b.charges++ }

func init() {
	registry.Register("blaster", func() registry.Game {
		return New()
	})
	registry.Register("blaster_endless", func() registry.Game {
		return NewEndless()
	})
}
