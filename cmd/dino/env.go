package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dino/internal/audio"
	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/games/dino"
	"github.com/vovakirdan/tui-dino/internal/platform/tui"
	"github.com/vovakirdan/tui-dino/internal/storage"
)

// env holds what a command opened and must release.
type env struct {
	deps   tui.Deps
	store  *storage.Store
	writer *storage.BestWriter
	sound  *audio.SoundManager
	logOut io.Closer
}

// loadConfig reads the runner config and applies --difficulty. A broken
// config falls back to the defaults.
func loadConfig(logger *log.Logger) config.DinoConfig {
	cfg, err := config.LoadDino(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		logger.Warn("could not load config", "error", err)
		cfg = config.DefaultDinoConfig()
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			fmt.Fprintf(os.Stderr, "Warning: unknown difficulty %q, using config\n", flagDifficulty)
		} else {
			config.ApplyDinoPreset(&cfg, preset)
		}
	}
	return cfg
}

// interactiveLogger never writes to the terminal the game is drawn on.
func interactiveLogger() (*log.Logger, io.Closer) {
	if flagLogFile == "" {
		return log.New(io.Discard), nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), nil
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "dino",
	})
	return logger, f
}

// serverLogger logs to stderr for the long-running commands.
func serverLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// openEnv opens storage and audio and builds the shared TUI deps. The game
// still runs when the database cannot be opened.
func openEnv(logger *log.Logger, withSound bool) *env {
	e := &env{}
	e.deps = tui.Deps{
		Config: loadConfig(logger),
		Logger: logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
	} else {
		e.store = store
		e.writer = storage.NewBestWriter(store, logger)
		e.deps.Scores = store
		e.deps.Reader = store
		e.deps.Board = store
		e.deps.Best = e.writer
	}

	if withSound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			e.sound = sm
			e.deps.Sound = sm
		}
	}
	return e
}

// Close flushes the best score and releases everything in reverse order.
func (e *env) Close() {
	if e.sound != nil {
		e.sound.Cleanup()
	}
	if e.writer != nil {
		e.writer.Close()
	}
	if e.store != nil {
		e.store.Close()
	}
	if e.logOut != nil {
		e.logOut.Close()
	}
}

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
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

// runInteractive runs the TUI app and exits on failure.
func runInteractive(start *dino.Archetype) {
	logger, logOut := interactiveLogger()
	e := openEnv(logger, flagSound)
	e.logOut = logOut

	runErr := tui.RunApp(e.deps, runtimeConfig(), start)
	e.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
