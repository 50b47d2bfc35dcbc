package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/profile"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

var flagAvatar string

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage player profiles",
	Long: `Profiles keep a player's experience, account level, wins, losses and
best score across runs. Play as a profile with --user <name>.

Examples:
  bomber profile create alice --avatar red
  bomber profile show alice
  bomber profile list
  bomber profile delete alice`,
}

var profileCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a profile",
	Args:  cobra.ExactArgs(1),
	Run:   runProfileCreate,
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a profile",
	Args:  cobra.ExactArgs(1),
	Run:   runProfileShow,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles by account level",
	Args:  cobra.NoArgs,
	Run:   runProfileList,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	Run:   runProfileDelete,
}

func init() {
	profileCreateCmd.Flags().StringVar(&flagAvatar, "avatar", string(profile.AvatarWhite), "Avatar: white, black, blue, red")

	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileDeleteCmd)
}

func runProfileCreate(_ *cobra.Command, args []string) {
	avatar, err := profile.ParseAvatar(flagAvatar)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := mustOpenStore()
	defer store.Close()

	if _, err := store.LoadProfile(args[0]); err == nil {
		fmt.Fprintf(os.Stderr, "Error: profile %q already exists\n", args[0])
		os.Exit(1)
	}

	u, err := profile.New(args[0], avatar)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := store.SaveProfile(u); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving profile: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created profile %s\n", u)
}

func runProfileShow(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	u, err := store.LoadProfile(args[0])
	if err != nil {
		exitProfileErr(args[0], err)
	}

	fmt.Printf("Player:      %s\n", u.Username)
	fmt.Printf("Avatar:      %s\n", u.Avatar)
	fmt.Printf("Level:       %d (%d/%d exp)\n", u.Level, u.Exp, u.ExpToNext())
	fmt.Printf("Games:       %d played, %d won, %d lost\n", u.GamesPlayed, u.GamesWon, u.GamesLost)
	fmt.Printf("Win rate:    %.0f%%\n", u.WinRate()*100)
	fmt.Printf("High score:  %d\n", u.HighScore)
	fmt.Printf("Created:     %s\n", u.CreatedAt.Local().Format("2006-01-02 15:04"))
}

func runProfileList(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	users, err := store.ListProfiles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing profiles: %v\n", err)
		os.Exit(1)
	}
	if len(users) == 0 {
		fmt.Println("No profiles yet.")
		fmt.Println()
		fmt.Println("Run 'bomber profile create <name>' or play with --user <name>.")
		return
	}

	fmt.Printf("  %-16s  %-6s  %-5s  %-5s  %-5s  %s\n", "Player", "Avatar", "Level", "Won", "Lost", "Best")
	fmt.Printf("  %-16s  %-6s  %-5s  %-5s  %-5s  %s\n", "------", "------", "-----", "---", "----", "----")
	for _, u := range users {
		fmt.Printf("  %-16s  %-6s  %-5d  %-5d  %-5d  %d\n",
			u.Username, u.Avatar, u.Level, u.GamesWon, u.GamesLost, u.HighScore)
	}
}

func runProfileDelete(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	if err := store.DeleteProfile(args[0]); err != nil {
		exitProfileErr(args[0], err)
	}
	fmt.Printf("Deleted profile %s\n", args[0])
}

func exitProfileErr(name string, err error) {
	if errors.Is(err, storage.ErrProfileNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no profile named %q\n", name)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
