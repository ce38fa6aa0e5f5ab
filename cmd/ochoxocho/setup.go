package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/draney98/ochoXocho/internal/config"
	"github.com/draney98/ochoXocho/internal/core"
	"github.com/draney98/ochoXocho/internal/games/ochoxocho"
	"github.com/draney98/ochoXocho/internal/storage"
)

// loadConfig reads the config file, applies the difficulty preset and hands
// the result to the game package.
func loadConfig(difficulty string) (config.OchoConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.OchoConfig{}, err
	}
	preset, err := config.ParseDifficulty(difficulty)
	if err != nil {
		return config.OchoConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	ochoxocho.SetConfig(cfg)
	return cfg, nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database, warning and continuing without it on
// failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// consoleLogger logs to stderr for commands that do not take over the
// terminal.
func consoleLogger(prefix string) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// gameLogger returns the logger for interactive play. The TUI owns the
// terminal, so with --debug logs go to ~/.ochoxocho/debug.log and are
// discarded otherwise. The returned closer must be called on exit.
func gameLogger() (*log.Logger, io.Closer) {
	discard := log.New(io.Discard)
	if !flagDebug {
		return discard, nopCloser{}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return discard, nopCloser{}
	}
	dir := filepath.Join(home, ".ochoxocho")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return discard, nopCloser{}
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return discard, nopCloser{}
	}
	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	return l, f
}
