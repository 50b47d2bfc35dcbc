package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
	Long: `Config is read from the first of:
  --config <path>
  ~/.bomber/configs/bomberman.yaml
  ./configs/bomberman.yaml
  the built-in defaults

Missing values keep their defaults.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default config file",
	Long: `Write the default config to path, or to ~/.bomber/configs/bomberman.yaml
when no path is given. An existing file is never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfigInit,
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load and validate the config",
	Args:  cobra.NoArgs,
	Run:   runConfigCheck,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configCheckCmd)
}

func runConfigInit(_ *cobra.Command, args []string) {
	path := config.UserConfigPath()
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: cannot determine home directory; pass a path")
		os.Exit(1)
	}
	if err := config.WriteDefault(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	fmt.Printf("Wrote %s\n", abs)
}

func runConfigCheck(_ *cobra.Command, _ []string) {
	cfg, preset := loadGameConfig()
	config.ApplyBombermanPreset(&cfg, preset)

	fmt.Println("Config OK")
	fmt.Printf("  Difficulty:  %s\n", preset)
	fmt.Printf("  Grid:        %dx%d\n", cfg.Grid.Cols, cfg.Grid.Rows)
	fmt.Printf("  Levels:      %d\n", cfg.Levels.Count)
	fmt.Printf("  Enemies:     %v\n", cfg.EnemiesPerLevel())
	fmt.Printf("  Player HP:   %d (max %d)\n", cfg.Player.Baseline.HP, cfg.Player.Max.HP)
	fmt.Printf("  Sim rate:    %d fps, render %d fps\n", cfg.Loop.FPS, cfg.Loop.RenderFPS)
}
