package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the embedded defaults in Load results.
const SourceEmbedded = "embedded"

// configNames are tried in order inside each search directory.
var configNames = []string{"catch.yaml", "catch.yml", "catch.toml"}

// Load loads the catch configuration and reports where it came from.
// Search order: customPath -> ~/.arcade/configs/catch.{yaml,yml,toml} ->
// ./configs/catch.{yaml,yml,toml} -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
// A broken customPath is an error, broken discovered files are skipped.
func Load(customPath string) (CatchConfig, string, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, "", err
		}
		return cfg, customPath, nil
	}

	for _, dir := range searchDirs() {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if cfg, err := LoadFile(path); err == nil {
				return cfg, path, nil
			}
		}
	}

	cfg := DefaultCatchConfig()
	if err := yaml.Unmarshal(defaultCatchYAML, &cfg); err != nil {
		return DefaultCatchConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// LoadFile reads and validates a single config file. The format is chosen by extension.
func LoadFile(path string) (CatchConfig, error) {
	cfg := DefaultCatchConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := Parse(data, filepath.Ext(path), &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the format named by ext (".yaml", ".yml" or ".toml") into cfg.
func Parse(data []byte, ext string, cfg *CatchConfig) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err := toml.Decode(string(data), cfg)
		return err
	default:
		return fmt.Errorf("unsupported config extension %q", ext)
	}
}

// Encode renders cfg as "yaml" or "toml".
func Encode(cfg CatchConfig, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml", "":
		return yaml.Marshal(cfg)
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("config: unsupported format %q", format)
	}
}

// searchDirs returns the directories scanned for config files.
func searchDirs() []string {
	dirs := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".arcade", "configs"))
	}
	return append(dirs, "configs")
}
