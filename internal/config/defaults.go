package config

import (
	_ "embed"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the built-in configuration.
// It mirrors defaults/catch.yaml and is used when the embedded file cannot be parsed.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		PlayArea: PlayAreaConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:    100,
			Height:   20,
			Y:        40,
			Speed:    800,
			MoveStep: 0.016,
		},
		Entities: EntityConfig{
			Size:          30,
			MinFallSpeed:  120,
			MaxFallSpeed:  220,
			SpeedPerPoint: 3,
			BombChance:    0.15,
		},
		Spawn: SpawnConfig{
			Interval:           1.0,
			DifficultyPerPoint: 0.02,
		},
		Session: SessionConfig{
			Lives:      5,
			BonusEvery: 10,
		},
		Input: InputConfig{
			HoldWindowMS:  150,
			RepeatDelayMS: 500,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.6,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCatchYAML
}
