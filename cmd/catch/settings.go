package main

import (
	"fmt"

	"github.com/vovakirdan/catch-arcade/internal/config"
)

// loadSettings resolves the game config from --config and --difficulty.
// It returns the config, where it came from and the preset name.
func loadSettings(path, difficulty string) (config.CatchConfig, string, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.CatchConfig{}, "", "", err
	}

	cfg, source, err := config.Load(path)
	if err != nil {
		return config.CatchConfig{}, "", "", err
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.CatchConfig{}, "", "", err
	}
	if preset == "" {
		preset = config.DifficultyNormal
	}
	return cfg, source, preset, nil
}

// validateFPS rejects tick rates the event loop cannot sensibly deliver.
func validateFPS(fps int) error {
	if fps < 1 || fps > 240 {
		return fmt.Errorf("invalid --fps %d (want 1 to 240)", fps)
	}
	return nil
}
