package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomberman"
	"github.com/vovakirdan/tui-bomber/internal/games/bomberman/loop"
	"github.com/vovakirdan/tui-bomber/internal/games/bomberman/sim"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

var (
	flagSimDuration time.Duration
	flagSimSave     bool
	flagSimRender   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game with random input",
	Long: `Run the simulation without a terminal UI. A random walker plays until
the run ends or the duration elapses. Events are logged at info level;
a summary is printed at the end.

Examples:
  bomber simulate
  bomber simulate --duration 2m --log-level info
  bomber simulate --seed 42 --render
  bomber simulate --user bot --save`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().DurationVar(&flagSimDuration, "duration", 30*time.Second, "Maximum wall-clock time to run")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the result in the scores database")
	simulateCmd.Flags().BoolVar(&flagSimRender, "render", false, "Print the final frame")
}

// walker produces random input: it keeps a direction for a while and
// plants a bomb now and then.
type walker struct {
	rng  *rand.Rand
	dir  core.Action
	left int
}

var walkDirs = []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionStop}

func (w *walker) next() core.InputFrame {
	frame := core.NewInputFrame()
	if w.left <= 0 {
		w.dir = walkDirs[w.rng.Intn(len(walkDirs))]
		w.left = 10 + w.rng.Intn(40)
	}
	w.left--
	frame.Set(w.dir)
	if w.rng.Intn(90) == 0 {
		frame.Set(core.ActionBomb)
	}
	return frame
}

func eventName(e sim.Event) string {
	name := fmt.Sprintf("%T", e)
	return name[strings.LastIndexByte(name, '.')+1:]
}

func runSimulate(_ *cobra.Command, _ []string) {
	cfg, preset := loadGameConfig()
	config.ApplyBombermanPreset(&cfg, preset)

	var store *storage.Store
	if flagSimSave || flagUser != "" {
		store = openStore()
		if store != nil {
			defer store.Close()
		}
	}
	user := loadUser(store)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := []bomberman.Option{bomberman.WithLogger(logger)}
	if user != nil {
		var profiles bomberman.ProfileStore
		if store != nil {
			profiles = store
		}
		opts = append(opts, bomberman.WithProfile(user, profiles))
	}
	game := bomberman.New(cfg.ToSim(), opts...)
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: cfg.Loop.FPS, Seed: seed})
	defer game.Stop()

	w := &walker{rng: rand.New(rand.NewSource(seed))}
	counts := make(map[string]int)

	var l *loop.Loop
	step := func() {
		game.Step(w.next())
		for _, e := range game.Events() {
			name := eventName(e)
			counts[name]++
			logger.Info("event", "type", name, "detail", fmt.Sprintf("%+v", e))
		}
		if game.State().GameOver {
			l.Stop()
		}
	}
	l = loop.New(cfg.Loop.FPS, step, loop.WithSpin(false), loop.WithLogger(logger))

	ctx, cancel := context.WithTimeout(context.Background(), flagSimDuration)
	defer cancel()

	start := time.Now()
	logger.Info("simulation started", "seed", seed, "difficulty", preset, "fps", cfg.Loop.FPS)
	l.Start(ctx)
	<-l.Done()

	state := game.State()
	outcome := "timeout"
	switch {
	case state.Won:
		outcome = "victory"
	case state.GameOver:
		outcome = "game over"
	}

	fmt.Printf("Seed:     %d\n", seed)
	fmt.Printf("Outcome:  %s after %s (%d ticks)\n", outcome, time.Since(start).Round(time.Millisecond), l.Ticks())
	fmt.Printf("Level:    %d\n", state.Level)
	fmt.Printf("Score:    %d\n", state.Score)

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("Events:")
	for _, name := range names {
		fmt.Printf("  %-16s %d\n", name, counts[name])
	}

	if flagSimRender {
		screen := core.NewScreen(80, 24)
		game.Render(screen)
		fmt.Println()
		fmt.Println(screen.String())
	}

	if flagSimSave && store != nil && state.Score > 0 {
		if _, err := store.SaveRun(storage.RunResult{
			GameID:       game.ID(),
			Username:     flagUser,
			Score:        state.Score,
			LevelReached: state.Level,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving score: %v\n", err)
			os.Exit(1)
		}
	}
}
