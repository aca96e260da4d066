package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/catch-arcade/internal/audio"
	"github.com/vovakirdan/catch-arcade/internal/core"
	"github.com/vovakirdan/catch-arcade/internal/games/catch"
	"github.com/vovakirdan/catch-arcade/internal/platform/tui"
	"github.com/vovakirdan/catch-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game on its home screen.

Controls:
  Left/A, Right/D  - Move the paddle
  Space/Enter      - Start a round
  P/Esc            - Pause and resume
  R                - Restart after game over
  Tab              - Rounds played this session
  M                - Mute
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 7 lives, fewer bombs, slower spawns
  normal - 5 lives, the classic balance
  hard   - 3 lives, more bombs, faster spawns and falls

Examples:
  catch play
  catch play --difficulty easy
  catch play --config ./my-catch.toml --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := validateFPS(flagFPS); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	cfg, source, preset, err := loadSettings(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source, "difficulty", preset)

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	logger.Debug("runtime", "width", rc.ScreenW, "height", rc.ScreenH, "fps", rc.TickRate, "seed", rc.Seed)

	// Round history lives only as long as the process.
	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		logger.Warn("round history unavailable", "err", err)
		store = nil
	}

	player := audio.New(cfg.Audio, audio.WithLogger(logger))
	if err := player.Start(); err != nil {
		logger.Info("playing without sound", "reason", err)
	}
	player.SetMuted(flagMute)

	runErr := tui.Run(catch.New(cfg, rc), tui.Options{
		Runtime:    rc,
		Difficulty: string(preset),
		Store:      store,
		Audio:      player,
		Logger:     logger,
	})

	played, dropped := player.Stats()
	logger.Debug("audio", "available", player.Available(), "played", played, "dropped", dropped)
	player.Close()
	if store != nil {
		store.Close()
	}
	return runErr
}
