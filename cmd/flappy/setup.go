package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// loadFlappyConfig loads the constants table from the global flags and
// returns it with the variant name scores are filed under.
func loadFlappyConfig() (config.FlappyConfig, string, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, "", err
	}

	if flagPreset == "" {
		if flagConfig != "" {
			return cfg, string(config.VariantCustom), nil
		}
		return cfg, string(config.PresetClassic), nil
	}

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return config.FlappyConfig{}, "", err
	}
	if err := config.ApplyFlappyPreset(&cfg, preset); err != nil {
		return config.FlappyConfig{}, "", err
	}
	return cfg, string(preset), nil
}

// openLogger returns a logger writing to the --log file, or discarding
// everything when no file was given. The terminal belongs to the game.
func openLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
