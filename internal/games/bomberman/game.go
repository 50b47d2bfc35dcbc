// Package bomberman adapts the bomberman simulation to the platform's
// core.Game interface. It owns scoring and profile progress; the sim
// package only reports events.
package bomberman

import (
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomberman/sim"
	"github.com/vovakirdan/tui-bomber/internal/profile"
)

// ID is the stable identifier used for score storage.
const ID = "bomberman"

// ProfileStore persists profile progress.
type ProfileStore interface {
	SaveProfile(u *profile.User) error
}

// Game implements core.Game around a sim.World. Step and Render may be
// called from different goroutines.
type Game struct {
	mu sync.Mutex

	cfg       sim.Config
	worldOpts []sim.Option
	world     *sim.World
	rng       *rand.Rand // experience rolls
	logger    *log.Logger

	user     *profile.User
	profiles ProfileStore

	screenW int
	screenH int

	levelScore int
	totalScore int
	paused     bool
	events     []sim.Event
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for game events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithProfile makes the game award experience to u and save it to store
// after every level, victory and loss. store may be nil.
func WithProfile(u *profile.User, store ProfileStore) Option {
	return func(g *Game) {
		g.user = u
		g.profiles = store
	}
}

// WithWorldOptions passes extra options to every World the game creates.
func WithWorldOptions(opts ...sim.Option) Option {
	return func(g *Game) { g.worldOpts = append(g.worldOpts, opts...) }
}

// New creates a game with the given simulation constants.
func New(cfg sim.Config, opts ...Option) *Game {
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Bomberman" }

// Reset starts a new run. A zero seed picks one from the clock.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.mu.Lock()
	defer g.mu.Unlock()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if g.world != nil {
		g.world.Stop()
	}

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.rng = rand.New(rand.NewSource(seed + 1))
	opts := append([]sim.Option{sim.WithRand(rand.New(rand.NewSource(seed)))}, g.worldOpts...)
	g.world = sim.NewWorld(g.cfg, opts...)
	g.totalScore = 0
	g.levelScore = 0
	g.paused = false

	g.logger.Debug("run started", "seed", seed, "levels", g.cfg.Levels())
	g.events = g.world.Start()
	g.handle(g.events)
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.world == nil {
		return core.StepResult{State: g.stateLocked()}
	}

	phase := g.world.Phase()
	if in.Has(core.ActionRestart) && (phase == sim.PhaseGameOver || phase == sim.PhaseVictory) {
		// A retried level keeps the points banked on earlier levels.
		if phase == sim.PhaseVictory {
			g.totalScore = 0
		}
		g.levelScore = 0
		g.paused = false
		g.events = g.world.Restart()
		g.logger.Debug("run restarted", "level", g.world.Level()+1)
		g.handle(g.events)
		return core.StepResult{State: g.stateLocked()}
	}

	if in.Has(core.ActionPause) && phase == sim.PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		g.events = nil
		return core.StepResult{State: g.stateLocked()}
	}

	g.events = g.world.Tick(toInput(in))
	g.handle(g.events)
	return core.StepResult{State: g.stateLocked()}
}

// toInput converts a platform input frame into a simulation intent.
func toInput(in core.InputFrame) sim.Input {
	var si sim.Input
	si.PlaceBomb = in.Has(core.ActionBomb)
	if in.Has(core.ActionStop) {
		return si
	}
	switch in.Direction() {
	case core.ActionLeft:
		si.Move, si.Moving = sim.MoveLeft, true
	case core.ActionUp:
		si.Move, si.Moving = sim.MoveUp, true
	case core.ActionRight:
		si.Move, si.Moving = sim.MoveRight, true
	case core.ActionDown:
		si.Move, si.Moving = sim.MoveDown, true
	}
	return si
}

// handle applies score and profile bookkeeping for one tick's events.
func (g *Game) handle(events []sim.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case sim.LevelStarted:
			g.levelScore = 0
			g.logger.Debug("level started", "level", e.Level+1, "enemies", e.Enemies)
		case sim.EnemyKilled:
			g.levelScore += e.Points
			g.logger.Debug("enemy killed", "kind", e.Kind, "cell", e.Cell, "points", e.Points)
		case sim.PickupCollected:
			g.levelScore += e.Points
			g.logger.Debug("pickup collected", "type", e.Type, "points", e.Points)
		case sim.PlayerDamaged:
			g.logger.Debug("player damaged", "hp", e.HP)
		case sim.LevelFinished:
			g.totalScore += g.levelScore
			g.levelScore = 0
			g.logger.Info("level finished", "level", e.Level+1, "score", g.totalScore)
			if g.user != nil {
				gained := g.user.AddLevelExp(g.rng, e.Level)
				g.logger.Debug("experience gained", "user", g.user.Username, "exp", gained)
				g.saveProfile()
			}
		case sim.Victory:
			g.logger.Info("victory", "score", g.totalScore)
			if g.user != nil {
				g.user.AddWin(g.rng)
				g.user.SetHighScore(g.totalScore)
				g.saveProfile()
			}
		case sim.GameOver:
			g.levelScore = 0
			g.logger.Info("game over", "level", e.Level+1, "score", g.totalScore)
			if g.user != nil {
				g.user.AddLoss()
				g.user.SetHighScore(g.totalScore)
				g.saveProfile()
			}
		}
	}
}

func (g *Game) saveProfile() {
	if g.profiles == nil {
		return
	}
	if err := g.profiles.SaveProfile(g.user); err != nil {
		g.logger.Warn("cannot save profile", "user", g.user.Username, "err", err)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateLocked()
}

func (g *Game) stateLocked() core.GameState {
	if g.world == nil {
		return core.GameState{Level: 1}
	}
	phase := g.world.Phase()
	return core.GameState{
		Score:    g.totalScore + g.levelScore,
		Level:    g.world.Level() + 1,
		GameOver: phase == sim.PhaseGameOver || phase == sim.PhaseVictory,
		Won:      phase == sim.PhaseVictory,
		Paused:   g.paused,
	}
}

// Events returns a copy of the events produced by the last Step or Reset.
func (g *Game) Events() []sim.Event {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]sim.Event(nil), g.events...)
}

// Profile returns the profile the game updates, or nil.
func (g *Game) Profile() *profile.User {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.user == nil {
		return nil
	}
	u := *g.user
	return &u
}

// Stop cancels pending fuse timers.
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.world != nil {
		g.world.Stop()
	}
}
