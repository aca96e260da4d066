package tui

import (
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/catch-arcade/internal/audio"
	"github.com/vovakirdan/catch-arcade/internal/config"
	"github.com/vovakirdan/catch-arcade/internal/core"
	"github.com/vovakirdan/catch-arcade/internal/games/catch"
	"github.com/vovakirdan/catch-arcade/internal/storage"
)

var baseTime = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

type countingOutput struct {
	mu    sync.Mutex
	count int
}

func (o *countingOutput) Init(beep.SampleRate, int) error { return nil }

func (o *countingOutput) Play(beep.Streamer) {
	o.mu.Lock()
	o.count++
	o.mu.Unlock()
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	rc := core.DefaultConfig()
	rc.Seed = 42
	opts.Runtime = rc
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	m := NewModel(catch.New(config.DefaultCatchConfig(), rc), opts)
	m.now = func() time.Time { return baseTime }
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelStartAndPause(t *testing.T) {
	m := newTestModel(t, Options{})
	if m.game.State() != catch.StateHome {
		t.Fatalf("Expected home, got %s", m.game.State())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.game.State() != catch.StatePlaying {
		t.Fatalf("Expected playing after space, got %s", m.game.State())
	}

	m = update(t, m, runeKey("p"))
	if m.game.State() != catch.StatePaused {
		t.Fatalf("Expected paused, got %s", m.game.State())
	}

	m = update(t, m, runeKey("p"))
	if m.game.State() != catch.StatePlaying {
		t.Fatalf("Expected playing after resume, got %s", m.game.State())
	}
}

func TestModelSimTickMeasuresDT(t *testing.T) {
	m := newTestModel(t, Options{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = update(t, m, SimTickMsg(baseTime))
	m = update(t, m, SimTickMsg(baseTime.Add(250*time.Millisecond)))

	want := firstTickDT + 0.25
	got := m.game.Session().Round.Elapsed
	if got < want-1e-9 || got > want+1e-9 {
		t.Errorf("elapsed = %f, want %f", got, want)
	}
}

func TestModelMoveTickUsesLatch(t *testing.T) {
	m := newTestModel(t, Options{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	start := m.game.Paddle().X

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, MoveTickMsg(baseTime.Add(10*time.Millisecond)))
	moved := m.game.Paddle().X
	if moved >= start {
		t.Fatalf("Expected paddle to move left: %f -> %f", start, moved)
	}

	// The wall clock does not change the step size.
	cfg := config.DefaultCatchConfig()
	if step := start - moved; step < cfg.Player.Speed*cfg.Player.MoveStep-1e-9 || step > cfg.Player.Speed*cfg.Player.MoveStep+1e-9 {
		t.Errorf("step = %f, want %f", step, cfg.Player.Speed*cfg.Player.MoveStep)
	}

	// Without a repeat the latch expires.
	m = update(t, m, MoveTickMsg(baseTime.Add(time.Second)))
	if m.game.Paddle().X != moved {
		t.Error("Paddle kept moving after the hold window expired")
	}
}

func TestModelHoldCoversRepeatDelay(t *testing.T) {
	m := newTestModel(t, Options{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	start := m.game.Paddle().X

	// One press, no repeats yet: the key is still down 300ms later.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, MoveTickMsg(baseTime.Add(300*time.Millisecond)))
	if m.game.Paddle().X <= start {
		t.Errorf("Paddle stopped before the terminal started repeating, x = %f", m.game.Paddle().X)
	}
}

func TestModelDirectionSwitch(t *testing.T) {
	m := newTestModel(t, Options{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	start := m.game.Paddle().X

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, MoveTickMsg(baseTime))

	if m.game.Paddle().X <= start {
		t.Errorf("Expected the newer direction to win, x = %f", m.game.Paddle().X)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t, Options{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	for i := range 120 {
		m = update(t, m, SimTickMsg(baseTime.Add(time.Duration(i)*16*time.Millisecond)))
	}
	before := m.game.Snapshot()

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	after := m.game.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("Resize changed the game state")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40-footerRows {
		t.Errorf("screen = %dx%d, want 120x%d", m.screen.Width(), m.screen.Height(), 40-footerRows)
	}
}

func TestModelGameOverRecordsRound(t *testing.T) {
	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	out := &countingOutput{}
	player := audio.New(config.AudioConfig{Enabled: true, Volume: 0.5, SampleRate: 44100},
		audio.WithOutput(out), audio.WithLogger(log.New(io.Discard)))
	if err := player.Start(); err != nil {
		t.Fatalf("audio Start() failed: %v", err)
	}

	m := newTestModel(t, Options{Store: store, Audio: player, Difficulty: "normal"})
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	now := baseTime
	for i := 0; i < 600 && m.game.State() == catch.StatePlaying; i++ {
		now = now.Add(500 * time.Millisecond)
		m = update(t, m, SimTickMsg(now))
	}
	if m.game.State() != catch.StateGameOver {
		t.Fatalf("Expected game over, got %s", m.game.State())
	}

	// Extra ticks must not record the round again.
	for range 10 {
		now = now.Add(500 * time.Millisecond)
		m = update(t, m, SimTickMsg(now))
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 1 {
		t.Errorf("Expected 1 recorded round, got %d", stats.Rounds)
	}
	if stats.BestScore != m.game.Session().Score {
		t.Errorf("Recorded score %d, want %d", stats.BestScore, m.game.Session().Score)
	}

	view := m.View()
	if !strings.Contains(view, "Rounds: 1") {
		t.Error("Game over status should show the round history")
	}

	player.Close()
	if played, _ := player.Stats(); played == 0 {
		t.Error("Expected feedback sounds")
	}
}

func TestModelHistoryView(t *testing.T) {
	m := newTestModel(t, Options{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.showHistory {
		t.Fatal("Expected history view to open on the home screen")
	}
	if !strings.Contains(m.View(), "ROUNDS THIS SESSION") {
		t.Error("History view missing title")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showHistory {
		t.Error("Expected esc to close the history view")
	}
	if m.game.State() != catch.StateHome {
		t.Error("Closing history must not change the game state")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.showHistory {
		t.Error("History should not open while playing")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, Options{})
	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("Expected empty view after quit")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t, Options{})
	m = update(t, m, runeKey("?"))
	if !m.help.ShowAll {
		t.Error("Expected full help after ?")
	}
	if !strings.Contains(m.View(), "screenshot") {
		t.Error("Full help should list every binding")
	}
}

func TestMeasureDT(t *testing.T) {
	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		want float64
	}{
		{"first tick", time.Time{}, baseTime, firstTickDT},
		{"measured", baseTime, baseTime.Add(50 * time.Millisecond), 0.05},
		{"clock went back", baseTime, baseTime.Add(-time.Second), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := measureDT(tt.prev, tt.now); got != tt.want {
				t.Errorf("measureDT() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestSoundFor(t *testing.T) {
	tests := []struct {
		event catch.EventType
		want  audio.Sound
	}{
		{catch.EventHit, audio.SoundHit},
		{catch.EventLifeGained, audio.SoundLifeGained},
		{catch.EventGameOver, audio.SoundGameOver},
	}
	for _, tt := range tests {
		got, ok := soundFor(tt.event)
		if !ok || got != tt.want {
			t.Errorf("soundFor(%s) = %s, %v", tt.event, got, ok)
		}
	}
	if _, ok := soundFor(catch.EventType(99)); ok {
		t.Error("unknown events should have no sound")
	}
}

func TestRenderScreenColors(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.SetColored(1, 0, 'X', core.ColorRed)
	s.SetColored(2, 0, 'Y', core.ColorRed)

	out := RenderScreen(s)
	if !strings.Contains(out, "X") || !strings.Contains(out, "Y") {
		t.Errorf("rendered output lost characters: %q", out)
	}
	if strings.Count(out, "\n") != 0 {
		t.Error("single row should not contain newlines")
	}
}
