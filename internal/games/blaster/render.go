package blaster

import (
	"fmt"

	"github.com/vovakirdan/tui-blaster/internal/core"
)

const hudSeparator = '─'

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}
	if g.sim == nil {
		return
	}

	g.sim.Draw(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, lives, phaser charges and the level on row 0.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.sim.State()

	dst.DrawHLine(0, 0, dst.Width(), hudSeparator)

	left := fmt.Sprintf(" Score: %d  Best: %d ", st.Score, max(g.best, st.Score))
	dst.DrawTextColor(1, 0, left, core.ColorBrightWhite)

	mid := fmt.Sprintf(" Lives: %d  Phaser: %d ", st.Lives, st.Charges)
	x := (dst.Width() - len(mid)) / 2
	dst.DrawTextColor(x, 0, mid, core.ColorBrightCyan)

	var level string
	if g.mode == ModeEndless {
		level = fmt.Sprintf(" Level: %d ", st.Level)
	} else {
		level = fmt.Sprintf(" Level: %d/%d ", st.Level, len(g.levels))
	}
	dst.DrawTextColor(dst.Width()-len(level)-1, 0, level, core.ColorBrightYellow)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	st := g.sim.State()
	midY := dst.Height() / 2

	switch {
	case g.won:
		dst.DrawTextCentered(midY-1, "ALL WAVES CLEARED")
		dst.DrawTextCentered(midY+1, fmt.Sprintf("Final score: %d  -  R to restart, Q to quit", st.Score))
	case st.GameOver:
		dst.DrawTextCentered(midY-1, "GAME OVER")
		dst.DrawTextCentered(midY+1, fmt.Sprintf("Score: %d  -  R to restart, Q to quit", st.Score))
	case st.Paused && !st.PhaserResolving():
		dst.DrawTextCentered(midY, "PAUSED")
	case st.Player == nil:
		dst.DrawTextCentered(midY, "Ship lost")
	}
}
