package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}

	path := filepath.Join(t.TempDir(), "catch.log")
	logger, closeLog, err := newLogger(path, "debug")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("hello", "k", 1)
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(string(data), "catch") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestNewLoggerDiscardsWithoutPath(t *testing.T) {
	logger, closeLog, err := newLogger("", "info")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("dropped")
	if err := closeLog(); err != nil {
		t.Errorf("close: %v", err)
	}
}

func TestValidateFPS(t *testing.T) {
	tests := []struct {
		fps     int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{60, false},
		{240, false},
		{241, true},
	}
	for _, tt := range tests {
		if err := validateFPS(tt.fps); (err != nil) != tt.wantErr {
			t.Errorf("validateFPS(%d) error = %v, wantErr %v", tt.fps, err, tt.wantErr)
		}
	}
}

func runConfigWith(t *testing.T, cfgPath, difficulty, format string, def bool) string {
	t.Helper()
	oldConfig, oldDifficulty, oldFormat, oldDefault := flagConfig, flagDifficulty, flagFormat, flagDefault
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagFormat, flagDefault = oldConfig, oldDifficulty, oldFormat, oldDefault
		configCmd.SetOut(nil)
	})
	flagConfig, flagDifficulty, flagFormat, flagDefault = cfgPath, difficulty, format, def

	var buf bytes.Buffer
	configCmd.SetOut(&buf)
	if err := runConfig(configCmd, nil); err != nil {
		t.Fatalf("runConfig: %v", err)
	}
	return buf.String()
}

func TestConfigCommandAppliesFileAndPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catch.yaml")
	if err := os.WriteFile(path, []byte("player:\n  speed: 500\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out := runConfigWith(t, path, "hard", "toml", false)
	if !strings.Contains(out, "speed = 500.0") && !strings.Contains(out, "speed = 500") {
		t.Errorf("file override missing from output:\n%s", out)
	}
	if !strings.Contains(out, "lives = 3") {
		t.Errorf("hard preset missing from output:\n%s", out)
	}
}

func TestConfigCommandDefault(t *testing.T) {
	out := runConfigWith(t, "", "", "yaml", true)
	if !strings.Contains(out, "play_area:") || !strings.Contains(out, "lives: 5") {
		t.Errorf("unexpected default config:\n%s", out)
	}
}

func TestLoadSettingsRejectsUnknownDifficulty(t *testing.T) {
	if _, _, _, err := loadSettings("", "nightmare"); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
}
