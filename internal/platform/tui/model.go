package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catch-arcade/internal/audio"
	"github.com/vovakirdan/catch-arcade/internal/core"
	"github.com/vovakirdan/catch-arcade/internal/games/catch"
	"github.com/vovakirdan/catch-arcade/internal/storage"
)

// footerRows is the space below the play screen for status and help.
const footerRows = 2

// Options carries the collaborators of the game screen. Every field may be
// left zero: a nil store keeps no history, a nil player plays no sound and a
// nil logger discards log output.
type Options struct {
	Runtime    core.RuntimeConfig
	Difficulty string
	Store      *storage.Store
	Audio      *audio.Player
	Logger     *log.Logger
}

// Model is the Bubble Tea model for running the catch game.
//
// Simulation and movement ticks arrive as separate messages. Update handles
// one message at a time, so the game never sees them interleave.
type Model struct {
	game    *catch.Game
	screen  *core.Screen
	opts    Options
	keys    KeyMap
	help    help.Model
	latch   *core.MoveLatch
	history historyView

	lastSimTick time.Time
	showHistory bool
	quitting    bool
	width       int
	height      int
	now         func() time.Time
}

// NewModel creates a new Bubble Tea model for the game.
func NewModel(game *catch.Game, opts Options) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	w, h := opts.Runtime.ScreenW, opts.Runtime.ScreenH
	input := game.Config().Input
	hold := time.Duration(input.HoldWindowMS) * time.Millisecond
	delay := time.Duration(input.RepeatDelayMS) * time.Millisecond

	m := Model{
		game:    game,
		screen:  core.NewScreen(w, screenRows(h)),
		opts:    opts,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		latch:   core.NewMoveLatch(hold, delay),
		history: newHistoryView(opts.Store, w, h),
		width:   w,
		height:  h,
		now:     time.Now,
	}
	m.help.Width = w
	m.refreshHistory()
	return m
}

func screenRows(height int) int {
	return max(height-footerRows, 1)
}

// Init starts both tick loops.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		simTickCmd(m.opts.Runtime.TickRate),
		moveTickCmd(m.opts.Runtime.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case SimTickMsg:
		return m.handleSimTick(time.Time(msg))

	case MoveTickMsg:
		return m.handleMoveTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHistory {
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		closed, cmd := m.history.Update(msg)
		if closed {
			m.showHistory = false
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Mute):
		if m.opts.Audio != nil {
			muted := m.opts.Audio.ToggleMute()
			m.opts.Logger.Debug("audio mute toggled", "muted", muted)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.History):
		if m.game.State() != catch.StatePlaying {
			m.refreshHistory()
			m.showHistory = true
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeftHeld:
		// A terminal repeats only the most recent key, so a new direction
		// replaces the old one.
		m.latch.Apply(core.ActionRightReleased, m.now())
		m.latch.Apply(action, m.now())
	case core.ActionRightHeld:
		m.latch.Apply(core.ActionLeftReleased, m.now())
		m.latch.Apply(action, m.now())
	case core.ActionStart, core.ActionRestart, core.ActionTogglePause:
		from := m.game.State()
		if m.game.HandleAction(action) {
			m.latch.Release()
			m.opts.Logger.Debug("state changed", "from", from, "to", m.game.State(), "action", action)
		}
	}
	return m, nil
}

// handleResize adapts the screen buffer to the terminal. The play area is
// scaled to fit, so the game keeps running unchanged.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, screenRows(msg.Height))
	m.history.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleSimTick advances the simulation by the time since the previous tick.
func (m Model) handleSimTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := measureDT(m.lastSimTick, now)
	m.lastSimTick = now

	result := m.game.Tick(dt)
	for _, ev := range result.Events {
		m.playFeedback(ev)
		if ev.Type == catch.EventGameOver {
			m.recordRound()
		}
	}

	return m, simTickCmd(m.opts.Runtime.TickRate)
}

// handleMoveTick moves the paddle one fixed step from the latched keys.
func (m Model) handleMoveTick(now time.Time) (tea.Model, tea.Cmd) {
	left, right := m.latch.Held(now)
	m.game.MoveTick(left, right)
	return m, moveTickCmd(m.opts.Runtime.TickRate)
}

// soundFor maps a game event to its feedback sound.
func soundFor(t catch.EventType) (audio.Sound, bool) {
	switch t {
	case catch.EventHit:
		return audio.SoundHit, true
	case catch.EventLifeGained:
		return audio.SoundLifeGained, true
	case catch.EventGameOver:
		return audio.SoundGameOver, true
	}
	return 0, false
}

// playFeedback hands an event's sound to the audio player without waiting.
func (m Model) playFeedback(ev catch.Event) {
	m.opts.Logger.Debug("event", "type", ev.Type, "kind", ev.Kind, "score", ev.Score, "lives", ev.Lives)
	if m.opts.Audio == nil {
		return
	}
	if s, ok := soundFor(ev.Type); ok {
		m.opts.Audio.Play(s)
	}
}

// recordRound stores the finished round in the history.
func (m *Model) recordRound() {
	s := m.game.Session()
	result := storage.RoundResult{
		Score:       s.Score,
		Catches:     s.Round.Catches,
		Misses:      s.Round.Misses,
		BombsCaught: s.Round.BombsCaught,
		BombsDodged: s.Round.BombsDodged,
		LivesGained: s.Round.LivesGained,
		Duration:    time.Duration(s.Round.Elapsed * float64(time.Second)),
		Difficulty:  m.opts.Difficulty,
	}
	m.opts.Logger.Info("round over",
		"score", result.Score,
		"high_score", s.HighScore,
		"catches", result.Catches,
		"misses", result.Misses,
		"duration", result.Duration.Round(time.Millisecond),
	)

	if m.opts.Store == nil {
		return
	}
	// Best-effort save, game continues regardless
	if _, err := m.opts.Store.SaveRound(result); err != nil {
		m.opts.Logger.Warn("cannot record round", "err", err)
		return
	}
	m.refreshHistory()
}

func (m *Model) refreshHistory() {
	if err := m.history.Refresh(); err != nil {
		m.opts.Logger.Warn("cannot load round history", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// statusLine shows session history on game over and the mute flag.
func (m Model) statusLine() string {
	var parts []string
	if m.game.State() == catch.StateGameOver {
		parts = append(parts, summaryLine(m.history.Stats()))
	}
	if m.opts.Audio != nil && m.opts.Audio.Muted() {
		parts = append(parts, "muted")
	}
	return strings.Join(parts, "  |  ")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHistory {
		return m.history.View()
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program for the game.
func Run(game *catch.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
