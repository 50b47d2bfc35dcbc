package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start bomber with the menu",
	Long: `Start bomber in interactive menu mode.

Pick a difficulty, start a run or browse the scoreboard. After a run ends,
press B or Esc to return to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Select
  Tab             - Scoreboard
  Q               - Quit

Examples:
  bomber menu
  bomber menu --user alice
  bomber menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, preset := loadGameConfig()

	store := openStore()
	user := loadUser(store)

	factory := tui.NewGameFactory(cfg, user, store, logger)
	err := tui.RunSession(store, runtimeConfig(cfg), uiOptions(cfg), user, preset, factory)

	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
