package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// effectiveConfig loads the config file and applies the preset and any flags
// the user set explicitly, in that order.
func effectiveConfig(cmd *cobra.Command) (config.TetrisConfig, config.Source, error) {
	cfg, src, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return cfg, src, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, src, err
	}
	config.ApplyPreset(&cfg, preset)

	flags := cmd.Flags()
	if flags.Changed("start-level") {
		cfg.StartLevel = flagStartLevel
	}
	if flags.Changed("easy") {
		cfg.Easy = flagEasy
	}
	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}

	return cfg, src, config.Validate(cfg)
}

// newLogger returns a logger writing to --log-file, or a discarding logger
// when no file is given. The caller must call the returned close function.
func newLogger() (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	if flagLogFile == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
	})
	return logger.With("run", uuid.NewString()), f.Close, nil
}
