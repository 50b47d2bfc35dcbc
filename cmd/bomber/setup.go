package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/platform/tui"
	"github.com/vovakirdan/tui-bomber/internal/profile"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "bomber",
})

// setupLogger applies --log-level to the command logger and the default
// logger used by the simulation loop.
func setupLogger() {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using warn\n", err)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	log.SetLevel(level)
}

// loadGameConfig loads the YAML config, applies --fps and resolves the
// difficulty preset. The preset is applied later, per game.
func loadGameConfig() (config.BombermanConfig, config.DifficultyPreset) {
	cfg, err := config.LoadBomberman(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		cfg.Loop.FPS = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		os.Exit(1)
	}

	name := flagDifficulty
	if name == "" {
		name = string(cfg.Difficulty.Preset)
	}
	if name == "" {
		name = string(config.DifficultyNormal)
	}
	preset, err := config.ParsePreset(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, preset
}

// openStore opens the scores database. A failure is only a warning: the
// game still works without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// mustOpenStore opens the scores database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// loadUser returns the --user profile, creating it on first use. Without a
// store the profile lives only for this process.
func loadUser(store *storage.Store) *profile.User {
	if flagUser == "" {
		return nil
	}
	if store == nil {
		u, err := profile.New(flagUser, profile.AvatarWhite)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Warn("profile progress will not be saved", "user", flagUser)
		return u
	}
	u, err := store.LoadOrCreateProfile(flagUser, profile.AvatarWhite)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return u
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig(cfg config.BombermanConfig) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Loop.FPS,
		Seed:     flagSeed,
	}
}

// uiOptions builds the driver options from the loop and input config.
func uiOptions(cfg config.BombermanConfig) tui.Options {
	return tui.Options{
		Username:   flagUser,
		RenderFPS:  cfg.Loop.RenderFPS,
		Spin:       cfg.Loop.Spin,
		HoldWindow: cfg.Input.HoldWindow,
		Logger:     logger,
	}
}
