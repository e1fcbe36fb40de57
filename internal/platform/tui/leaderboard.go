package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blaster/internal/storage"
)

const maxScores = 20

var statsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1)

// Leaderboard shows the session's best scores for one game.
type Leaderboard struct {
	gameID string
	title  string
	store  *storage.Store
	scores []storage.ScoreEntry
	stats  *storage.GameStats
	table  table.Model
	width  int
	height int
}

// NewLeaderboard creates a leaderboard view for gameID.
func NewLeaderboard(store *storage.Store, gameID, title string, width, height int) Leaderboard {
	l := Leaderboard{
		gameID: gameID,
		title:  title,
		store:  store,
		width:  width,
		height: height,
	}
	l.table = l.createTable()
	return l
}

// createTable creates a new table sized to the window.
func (l *Leaderboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 10},
		{Title: "Level", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(l.height-8, 3)), // Leave room for title and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Refresh reloads the scores from the store.
func (l *Leaderboard) Refresh() {
	l.scores = nil
	l.stats = nil
	if l.store != nil {
		if scores, err := l.store.TopScores(l.gameID, maxScores); err == nil {
			l.scores = scores
		}
		if stats, err := l.store.GetGameStats(l.gameID); err == nil {
			l.stats = stats
		}
	}

	rows := make([]table.Row, len(l.scores))
	for i, s := range l.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Player,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Level),
		}
	}
	l.table.SetRows(rows)
	l.table.GotoTop()
}

// Resize adapts the table to a new window size.
func (l *Leaderboard) Resize(width, height int) {
	l.width, l.height = width, height
	l.table = l.createTable()
	l.Refresh()
}

// View renders the leaderboard.
func (l Leaderboard) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(l.scores) == 0 {
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No scores recorded this session.")
	} else {
		content = l.table.View()
	}

	parts := []string{
		titleStyle.Render(fmt.Sprintf("HIGH SCORES - %s", l.title)),
		boxStyle.Render(content),
	}
	if line := l.statsLine(); line != "" {
		parts = append(parts, statsStyle.Render(line))
	}
	body := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.Place(l.width, max(l.height-1, 1), lipgloss.Center, lipgloss.Center, body)
}

// statsLine summarizes the session's finished games, or "" when there are none.
func (l Leaderboard) statsLine() string {
	if l.stats == nil || l.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Games: %d  Average: %.0f  Best level: %d",
		l.stats.GamesCount, l.stats.AvgScore, l.stats.BestLevel)
}
