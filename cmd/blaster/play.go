package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blaster/internal/core"
	"github.com/vovakirdan/tui-blaster/internal/games/blaster"
	"github.com/vovakirdan/tui-blaster/internal/platform/tui"
	"github.com/vovakirdan/tui-blaster/internal/registry"
	"github.com/vovakirdan/tui-blaster/internal/storage"
)

var (
	flagMode       string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagPlayer     string
	flagDebug      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  X            - Phaser (destroys a random enemy)
  K            - Self-destruct
  P/Esc        - Pause
  Tab          - Leaderboard
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Modes:
  campaign - Play through the configured levels once
  endless  - Cycle through the levels, faster on every pass

Difficulty options:
  easy   - More lives and charges, slow progression
  normal - Default settings
  hard   - Fewer lives, one charge, quicker phaser
  fixed  - No speed progression

Examples:
  blaster play
  blaster play --mode endless
  blaster play --difficulty hard
  blaster play --config ./my-levels.yaml --log-file blaster.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "campaign", "Game mode: campaign, endless")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded on the leaderboard (default: $USER)")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log simulation events at debug level")
}

func gameIDForMode(mode string) (string, error) {
	switch mode {
	case "", "campaign":
		return "blaster", nil
	case "endless":
		return "blaster_endless", nil
	default:
		return "", fmt.Errorf("unknown mode %q (want campaign or endless)", mode)
	}
}

func runPlay(cmd *cobra.Command, _ []string) error {
	gameID, err := gameIDForMode(flagMode)
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("leaderboard disabled", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
		blaster.SetScores(store)
	}

	blaster.SetLogger(logger)
	blaster.SetConfigPath(flagConfig)
	if err := blaster.SetDifficultyPreset(flagDifficulty); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	player := flagPlayer
	if player == "" {
		player = os.Getenv("USER")
	}

	logger.Info("starting", "game", gameID, "seed", flagSeed, "fps", flagFPS)
	if err := tui.Run(game, store, cfg, player, logger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
