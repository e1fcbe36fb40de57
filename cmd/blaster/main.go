// blaster is a fixed-camera arcade shooter for the terminal.
//
// Usage:
//
//	blaster play             - Play the campaign
//	blaster play --mode endless
//	blaster list             - List registered game modes
//	blaster assets           - Validate and list the asset tables
//	blaster serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-blaster/internal/games/blaster"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blaster",
	Short: "Blaster - a terminal arcade shooter",
	Long: `Blaster is a fixed-camera arcade shooter played in the terminal.
Clear each wave of enemies with your blaster and your phaser charges.

Available commands:
  play     - Play the campaign or endless mode
  list     - Show the registered game modes
  assets   - Validate and list the built-in asset tables
  serve    - Start SSH server for remote play

Examples:
  blaster play
  blaster play --mode endless --difficulty hard
  blaster play --seed 42 --log-file blaster.log
  blaster serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the CLI logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blaster",
	})
}
