package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run directly, without the menu.

Controls:
  WASD/Arrows  - Walk (held keys keep walking)
  X            - Stop
  Space        - Plant bomb
  P            - Pause
  R            - Restart (after game over or victory)
  B/Esc        - Leave (when paused or after the run)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Fewer enemies, more HP and power-ups
  normal - Values from the config file
  hard   - More enemies, less HP, shorter invincibility

Examples:
  bomber play
  bomber play --difficulty hard
  bomber play --user alice
  bomber play --config ./my-bomber.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, preset := loadGameConfig()

	// Open score storage
	store := openStore()
	user := loadUser(store)

	game := tui.NewGameFactory(cfg, user, store, logger)(preset)
	logger.Debug("starting run", "difficulty", preset, "user", flagUser)

	// Run the game
	runErr := tui.Run(game, store, runtimeConfig(cfg), uiOptions(cfg))

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
