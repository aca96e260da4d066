package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/catch-arcade/internal/storage"
)

// maxHistoryRounds is how many rounds the history table loads.
const maxHistoryRounds = 100

// HistoryKeyMap defines the key bindings for the round history table.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "tab", "b"),
			key.WithHelp("esc/tab", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// historyView shows the rounds played in this process.
type historyView struct {
	store  *storage.Store
	rounds []storage.RoundResult
	stats  storage.HistoryStats
	table  table.Model
	help   help.Model
	keys   HistoryKeyMap
	width  int
	height int
}

func newHistoryView(store *storage.Store, width, height int) historyView {
	h := help.New()
	h.ShowAll = false
	v := historyView{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	v.table = v.createTable()
	return v
}

// createTable creates a table sized for the current terminal.
func (v *historyView) createTable() table.Model {
	columns := []table.Column{
		{Title: "Round", Width: 6},
		{Title: "Score", Width: 6},
		{Title: "Caught", Width: 7},
		{Title: "Missed", Width: 7},
		{Title: "Bombs", Width: 6},
		{Title: "Lives+", Width: 7},
		{Title: "Time", Width: 8},
	}

	height := v.height - 10 // Title, stats, help and borders
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// Refresh reloads rounds and stats from the store.
func (v *historyView) Refresh() error {
	if v.store == nil {
		v.rounds = nil
		v.stats = storage.HistoryStats{}
		v.updateTableRows()
		return nil
	}

	rounds, err := v.store.RecentRounds(maxHistoryRounds)
	if err != nil {
		return err
	}
	stats, err := v.store.Stats()
	if err != nil {
		return err
	}
	v.rounds = rounds
	v.stats = *stats
	v.updateTableRows()
	return nil
}

// Stats returns the stats from the last Refresh.
func (v historyView) Stats() storage.HistoryStats {
	return v.stats
}

// updateTableRows fills the table, newest round first.
func (v *historyView) updateTableRows() {
	rows := make([]table.Row, len(v.rounds))
	for i, r := range v.rounds {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.ID),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Catches),
			fmt.Sprintf("%d", r.Misses),
			fmt.Sprintf("%d", r.BombsCaught),
			fmt.Sprintf("%d", r.LivesGained),
			r.Duration.Round(100 * time.Millisecond).String(),
		}
	}
	v.table.SetRows(rows)
	v.table.GotoTop()
}

// Resize adapts the table to a new terminal size.
func (v *historyView) Resize(width, height int) {
	v.width = width
	v.height = height
	v.table = v.createTable()
	v.updateTableRows()
	v.help.Width = width
}

// Update scrolls the table. It reports whether the view should close.
func (v *historyView) Update(msg tea.KeyMsg) (closed bool, cmd tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		return true, nil
	case key.Matches(msg, v.keys.Up), key.Matches(msg, v.keys.Down):
		v.table, cmd = v.table.Update(msg)
		return false, cmd
	}
	return false, nil
}

// View renders the history screen.
func (v historyView) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("ROUNDS THIS SESSION", v.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(summaryLine(v.stats), v.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(v.renderTableContent()), v.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(v.help.View(v.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (v historyView) renderTableContent() string {
	if len(v.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No rounds finished yet.\nCatch some blocks first!")
	}
	return v.table.View()
}

// summaryLine formats aggregate stats for the status bar and history header.
func summaryLine(s storage.HistoryStats) string {
	if s.Rounds == 0 {
		return "No rounds yet"
	}
	return fmt.Sprintf("Rounds: %d  |  Avg: %.1f  |  Best: %d  |  Played: %s",
		s.Rounds, s.AvgScore, s.BestScore, s.PlayTime.Round(time.Second))
}
