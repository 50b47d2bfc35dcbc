package sim

import (
	"math/rand"
	"time"
)

// Phase is the run-level state of a World.
type Phase int

const (
	PhasePlaying    Phase = iota // level in progress, including terminal player animations
	PhaseTransition              // level finished, waiting before the next one
	PhaseGameOver                // player died
	PhaseVictory                 // last level finished
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseTransition:
		return "transition"
	case PhaseGameOver:
		return "game_over"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Input is the player's intent for one tick.
type Input struct {
	Move      Move
	Moving    bool
	PlaceBomb bool
}

// World owns one run: the floor, the player, the level index, and the
// fuse queue. A World is not safe for concurrent use except for fuse
// timers, which only enqueue into the fuse queue.
type World struct {
	cfg   Config
	rng   *rand.Rand
	clock Clock
	sched Scheduler
	anim  Animations

	floor  *Floor
	player *Player
	fuses  fuseQueue

	level        int
	startLevel   int
	tick         uint64
	phase        Phase
	transitionAt time.Time
}

// Option configures a World.
type Option func(*World)

// WithRand sets the random source used for generation and enemy AI.
func WithRand(rng *rand.Rand) Option {
	return func(w *World) { w.rng = rng }
}

// WithClock sets the clock used for cooldowns and transitions.
func WithClock(c Clock) Option {
	return func(w *World) { w.clock = c }
}

// WithScheduler sets the fuse timer facility.
func WithScheduler(s Scheduler) Option {
	return func(w *World) { w.sched = s }
}

// WithAnimations sets the animation-completion source.
func WithAnimations(a Animations) Option {
	return func(w *World) { w.anim = a }
}

// WithStartLevel makes runs begin at the given 0-indexed level.
func WithStartLevel(level int) Option {
	return func(w *World) { w.startLevel = level }
}

// NewWorld creates a World. Call Start to generate the first level.
func NewWorld(cfg Config, opts ...Option) *World {
	w := &World{
		cfg:   cfg,
		clock: RealClock,
		sched: RealScheduler,
		anim:  FrameAnimations(cfg.Animation),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if w.startLevel < 0 || w.startLevel >= cfg.Levels() {
		w.startLevel = 0
	}
	w.floor = NewFloor(cfg)
	w.player = NewPlayer(cfg.Baseline, cfg.Max, cfg.TileSize, cfg.PlayerHitCooldown)
	return w
}

// Config returns the simulation constants.
func (w *World) Config() Config { return w.cfg }

// Floor returns the arena.
func (w *World) Floor() *Floor { return w.floor }

// Player returns the player.
func (w *World) Player() *Player { return w.player }

// Level returns the 0-indexed current level.
func (w *World) Level() int { return w.level }

// Phase returns the run phase.
func (w *World) Phase() Phase { return w.phase }

// TickCount returns the number of ticks run since the World was created.
func (w *World) TickCount() uint64 { return w.tick }

// Start begins a new run at the configured start level.
func (w *World) Start() []Event {
	return w.startLevelAt(w.startLevel)
}

// Restart regenerates the current level after game over. After victory it
// begins a new run at the start level.
func (w *World) Restart() []Event {
	if w.phase == PhaseGameOver {
		return w.startLevelAt(w.level)
	}
	return w.Start()
}

func (w *World) startLevelAt(level int) []Event {
	w.level = level
	w.phase = PhasePlaying
	w.fuses.drain()
	GenerateLevel(w.floor, w.rng, level)
	w.player.reset()
	w.player.setImmortal(w.clock.Now())
	return []Event{LevelStarted{Level: level, Enemies: len(w.floor.enemies)}}
}

// Tick advances the simulation by one step and returns what happened.
func (w *World) Tick(in Input) []Event {
	w.tick++
	now := w.clock.Now()

	switch w.phase {
	case PhaseTransition:
		if now.Before(w.transitionAt) {
			return nil
		}
		if w.level+1 >= w.cfg.Levels() {
			w.phase = PhaseVictory
			w.floor.Clear()
			return []Event{Victory{Level: w.level}}
		}
		return w.startLevelAt(w.level + 1)
	case PhaseGameOver, PhaseVictory:
		return nil
	}

	var events []Event
	w.drainFuses()
	events = w.applyInput(in, events)

	sw := w.floor.UpdatePlaceables(w.anim, w.tick)
	for i, b := range sw.Detonated {
		events = append(events, BombExploded{Cell: b.Cell, Cells: sw.Explosions[i].Len()})
	}
	for _, c := range sw.DestroyedTiles {
		events = append(events, TileDestroyed{Cell: c})
	}
	for _, pu := range sw.BurnedPickups {
		events = append(events, PickupDestroyed{Type: pu.Type, Cell: pu.Cell})
	}

	events = append(events, w.player.Update(w.floor, now, w.tick)...)

	for _, e := range w.floor.enemies {
		if e.Update(now, w.tick, w.rng) {
			events = append(events, EnemyKilled{Kind: e.Kind, Cell: e.Cell(), Points: e.Kind.Points()})
		}
	}

	return append(events, w.checkTransitions(now)...)
}

// drainFuses marks bombs whose fuse expired since the last tick. Fuses of
// bombs that no longer exist are dropped.
func (w *World) drainFuses() {
	for _, id := range w.fuses.drain() {
		if b := w.floor.bombByID(id); b != nil && b.State == BombArmed {
			b.State = BombFused
			b.timer = nil
		}
	}
}

func (w *World) applyInput(in Input, events []Event) []Event {
	p := w.player
	if !p.Alive || p.LevelFinished {
		return events
	}
	p.SetIntent(in.Move, in.Moving)
	if in.PlaceBomb {
		if b := w.placeBomb(); b != nil {
			events = append(events, BombPlaced{Cell: b.Cell, Radius: b.Radius})
		}
	}
	return events
}

// placeBomb plants a bomb under the player's center if capacity allows and
// arms its fuse on the scheduler.
func (w *World) placeBomb() *Bomb {
	p := w.player
	if p.Bombs <= 0 {
		return nil
	}
	b := w.floor.PlaceBomb(p.Cell(), p.Radius, p)
	if b == nil {
		return nil
	}
	p.Bombs--
	id := b.ID
	b.timer = w.sched.AfterFunc(b.Fuse, func() { w.fuses.push(id) })
	return b
}

func (w *World) checkTransitions(now time.Time) []Event {
	p := w.player
	switch {
	case !p.Alive && w.anim.PlayerFinished(p, w.tick):
		w.phase = PhaseGameOver
		w.floor.Clear()
		return []Event{GameOver{Level: w.level}}
	case p.LevelFinished && w.anim.PlayerFinished(p, w.tick):
		w.phase = PhaseTransition
		w.transitionAt = now.Add(w.cfg.LevelTransition)
		w.floor.Clear()
		return []Event{LevelFinished{Level: w.level, Last: w.level+1 >= w.cfg.Levels()}}
	}
	return nil
}

// Stop cancels pending fuses. The World can be restarted afterwards.
func (w *World) Stop() {
	w.floor.Clear()
	w.fuses.drain()
}
