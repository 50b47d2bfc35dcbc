// bomber is a terminal bomber game: plant bombs, clear enemies and find
// the exit through three levels.
//
// Usage:
//
//	bomber play                 - Play a run directly
//	bomber menu                 - Start menu with difficulty picker and scoreboard
//	bomber serve                - Start SSH server for remote play
//	bomber scores               - Show high scores
//	bomber profile <command>    - Manage player profiles
//	bomber simulate             - Run a headless game with random input
//	bomber config init          - Write the default config file
//
// Global flags:
//
//	--fps <rate>          - Simulation rate (default: from config, 60)
//	--seed <value>        - RNG seed for level generation
//	--db <path>           - Database path (default: ~/.bomber/scores.db)
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal or hard
//	--user <name>         - Profile to play as
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagUser       string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bomber",
	Short: "Bomber - plant bombs in your terminal",
	Long: `Bomber is a terminal arena game. Blow up blocks and enemies, collect
power-ups and find the hidden exit on each of the three levels.

Available commands:
  play      - Play a run directly
  menu      - Menu with difficulty picker and scoreboard
  serve     - Start SSH server for remote play
  scores    - View high scores
  profile   - Create, show, list and delete profiles
  simulate  - Headless run with random input
  config    - Manage the config file

Examples:
  bomber play --difficulty hard
  bomber menu --user alice
  bomber serve --ssh :2222
  bomber scores --limit 20`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogger()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Simulation rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bomber/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard (default: from config)")
	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "", "Profile name to play as")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
