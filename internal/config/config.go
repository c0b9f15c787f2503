// Package config loads the overlay configuration from a YAML file,
// falling back to defaults when the file is absent.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all overlay settings.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// BridgeURL is the WebSocket address of the screen-reader daemon.
	// Empty means speak to standard output.
	BridgeURL string `yaml:"bridge_url"`

	// HistoryPath is the SQLite transcript file. Empty disables the
	// transcript.
	HistoryPath string `yaml:"history_path"`

	// RequireVisible switches point-of-interest visibility from an
	// advisory flag to a hard filter.
	RequireVisible bool `yaml:"require_visible"`

	// Keybinds maps overlay commands to key names.
	Keybinds map[string]string `yaml:"keybinds"`
}

// Default returns the overlay config with sensible defaults.
func Default() Config {
	return Config{
		LogLevel:    "info",
		HistoryPath: "blindrun-history.db",
		Keybinds: map[string]string{
			"announce_position": "F1",
			"find_nearest":      "F2",
			"repeat_last":       "F3",
			"focus_next":        "Tab",
			"focus_prev":        "Shift+Tab",
			"activate":          "Enter",
		},
	}
}

// Load reads config from a YAML file. A missing file returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SlogLevel parses LogLevel into a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
