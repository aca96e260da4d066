// Package config provides YAML/TOML game configuration loading and
// difficulty scaling for the catch arcade.
package config

import (
	"errors"
	"fmt"
)

// CatchConfig contains all tunables for the catch game.
// Distances are play-area units (an 800x600 logical field by default),
// speeds are units per second and durations are seconds unless noted.
type CatchConfig struct {
	PlayArea PlayAreaConfig `yaml:"play_area" toml:"play_area"`
	Player   PlayerConfig   `yaml:"player" toml:"player"`
	Entities EntityConfig   `yaml:"entities" toml:"entities"`
	Spawn    SpawnConfig    `yaml:"spawn" toml:"spawn"`
	Session  SessionConfig  `yaml:"session" toml:"session"`
	Input    InputConfig    `yaml:"input" toml:"input"`
	Audio    AudioConfig    `yaml:"audio" toml:"audio"`
}

// PlayAreaConfig defines the logical playfield.
type PlayAreaConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlayerConfig defines the paddle.
type PlayerConfig struct {
	Width    float64 `yaml:"width" toml:"width"`
	Height   float64 `yaml:"height" toml:"height"`
	Y        float64 `yaml:"y" toml:"y"`                 // Bottom edge above the play area floor
	Speed    float64 `yaml:"speed" toml:"speed"`         // Units per second
	MoveStep float64 `yaml:"move_step" toml:"move_step"` // Assumed seconds per movement tick
}

// EntityConfig defines falling entities.
type EntityConfig struct {
	Size          float64 `yaml:"size" toml:"size"`
	MinFallSpeed  float64 `yaml:"min_fall_speed" toml:"min_fall_speed"`
	MaxFallSpeed  float64 `yaml:"max_fall_speed" toml:"max_fall_speed"`
	SpeedPerPoint float64 `yaml:"speed_per_point" toml:"speed_per_point"` // Fall speed added per score point
	BombChance    float64 `yaml:"bomb_chance" toml:"bomb_chance"`
}

// SpawnConfig defines spawn cadence.
type SpawnConfig struct {
	Interval           float64 `yaml:"interval" toml:"interval"`                         // Baseline seconds between spawns
	DifficultyPerPoint float64 `yaml:"difficulty_per_point" toml:"difficulty_per_point"` // Difficulty factor added per score point
}

// SessionConfig defines score and life bookkeeping.
type SessionConfig struct {
	Lives      int `yaml:"lives" toml:"lives"`
	BonusEvery int `yaml:"bonus_every" toml:"bonus_every"` // Normal catches per bonus life
}

// InputConfig defines how held keys are latched.
type InputConfig struct {
	HoldWindowMS  int `yaml:"hold_window_ms" toml:"hold_window_ms"`   // Hold after each key repeat
	RepeatDelayMS int `yaml:"repeat_delay_ms" toml:"repeat_delay_ms"` // Hold after the first press, covers the terminal's repeat delay
}

// AudioConfig defines feedback sound settings.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled" toml:"enabled"`
	Volume     float64 `yaml:"volume" toml:"volume"` // 0.0 to 1.0
	SampleRate int     `yaml:"sample_rate" toml:"sample_rate"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the config describes a playable game.
func (c CatchConfig) Validate() error {
	switch {
	case c.PlayArea.Width <= 0 || c.PlayArea.Height <= 0:
		return fmt.Errorf("config: play area must be positive: %w", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive: %w", ErrInvalidConfig)
	case c.Player.Width > c.PlayArea.Width:
		return fmt.Errorf("config: player wider than play area: %w", ErrInvalidConfig)
	case c.Player.Speed < 0 || c.Player.MoveStep <= 0:
		return fmt.Errorf("config: player speed and move step must be positive: %w", ErrInvalidConfig)
	case c.Entities.Size <= 0 || c.Entities.Size > c.PlayArea.Width:
		return fmt.Errorf("config: entity size out of range: %w", ErrInvalidConfig)
	case c.Entities.MinFallSpeed < 0 || c.Entities.MaxFallSpeed < c.Entities.MinFallSpeed:
		return fmt.Errorf("config: fall speed range invalid: %w", ErrInvalidConfig)
	case c.Entities.SpeedPerPoint < 0:
		return fmt.Errorf("config: speed_per_point must not be negative: %w", ErrInvalidConfig)
	case c.Entities.BombChance < 0 || c.Entities.BombChance > 1:
		return fmt.Errorf("config: bomb_chance must be within [0, 1]: %w", ErrInvalidConfig)
	case c.Spawn.Interval <= 0 || c.Spawn.DifficultyPerPoint < 0:
		return fmt.Errorf("config: spawn settings invalid: %w", ErrInvalidConfig)
	case c.Session.Lives <= 0 || c.Session.BonusEvery <= 0:
		return fmt.Errorf("config: lives and bonus_every must be positive: %w", ErrInvalidConfig)
	case c.Input.HoldWindowMS < 0 || c.Input.RepeatDelayMS < 0:
		return fmt.Errorf("config: hold_window_ms and repeat_delay_ms must not be negative: %w", ErrInvalidConfig)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("config: audio volume must be within [0, 1]: %w", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty means "keep config values".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *CatchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Session.Lives = 7
		cfg.Entities.BombChance = 0.10
		cfg.Spawn.Interval = 1.25
	case DifficultyHard:
		cfg.Session.Lives = 3
		cfg.Entities.BombChance = 0.25
		cfg.Spawn.Interval = 0.8
		cfg.Entities.SpeedPerPoint *= 1.5
	}
}
