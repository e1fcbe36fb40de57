package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blaster/internal/core"
	"github.com/vovakirdan/tui-blaster/internal/registry"
	"github.com/vovakirdan/tui-blaster/internal/storage"
)

// helpRows is the space below the game screen reserved for the help line.
const helpRows = 1

// playerNamer is implemented by games that record a player name.
type playerNamer interface {
	SetPlayer(name string)
}

// Model is the Bubble Tea model running one game. The simulation advances
// only on TickMsg, at the configured tick rate, with the keys pressed since
// the previous tick.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	fixedSeed  bool
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	board      Leaderboard
	showScores bool
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a model for game and resets it. A zero seed picks a
// time-based one, renewed on every restart.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) (Model, error) {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	if n, ok := game.(playerNamer); ok {
		n.SetPlayer(player)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:     cfg,
		fixedSeed:  fixed,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		board:      NewLeaderboard(store, game.ID(), game.Title(), cfg.ScreenW, cfg.ScreenH),
		logger:     logger,
	}
	m.help.Width = cfg.ScreenW

	if err := game.Reset(m.gameConfig()); err != nil {
		return Model{}, fmt.Errorf("start %s: %w", game.ID(), err)
	}
	m.gameState = game.State()
	return m, nil
}

func gameHeight(screenH int) int {
	return max(screenH-helpRows, 1)
}

// gameConfig is the runtime config seen by the game: the window minus the help line.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	return cfg
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Scores):
		m.showScores = !m.showScores
		if m.showScores {
			m.board.Refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if m.showScores {
		var cmd tea.Cmd
		m.board.table, cmd = m.board.table.Update(msg)
		return m, cmd
	}

	action := m.keys.Action(msg)
	if action == core.ActionRestart && !m.gameState.GameOver && !m.gameState.Won {
		return m, nil
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. A running game restarts at
// the new size since the field geometry is fixed for a game's lifetime.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.board.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	if !m.gameState.GameOver {
		if err := m.game.Reset(m.gameConfig()); err != nil {
			m.logger.Error("reset after resize", "game", m.game.ID(), "err", err)
		}
		m.gameState = m.game.State()
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.showScores {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.inputFrame.Has(core.ActionRestart) && (m.gameState.GameOver || m.gameState.Won) {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		if err := m.game.Reset(m.gameConfig()); err != nil {
			m.logger.Error("restart", "game", m.game.ID(), "err", err)
		}
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to ~/.blaster/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".blaster", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.board.View() + "\n" + helpStyle.Render(m.help.View(m.keys))
	}

	m.game.Render(m.screen)
	return renderFrame(m.screen, m.help.View(m.keys))
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a local game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	model, err := NewModel(game, store, cfg, player, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
