package sim

import (
	"math/rand"
	"testing"
	"time"
)

func TestWorldStartsLevel(t *testing.T) {
	cfg := testConfig()
	w := NewWorld(cfg, WithRand(rand.New(rand.NewSource(1))), WithClock(newFakeClock()), WithScheduler(&manualScheduler{}))
	events := w.Start()

	ev, ok := hasEvent[LevelStarted](events)
	if !ok || ev.Level != 0 || ev.Enemies != 3 {
		t.Fatalf("events = %v, expected LevelStarted{0, 3}", events)
	}
	if w.Phase() != PhasePlaying {
		t.Errorf("phase = %s", w.Phase())
	}
	if !w.Player().Damaged {
		t.Error("player should be immortal at level start")
	}
}

func TestWorldBombLifecycle(t *testing.T) {
	w, _, sched := newTestWorld(t, testConfig())
	p := w.Player()

	events := w.Tick(Input{PlaceBomb: true})
	placed, ok := hasEvent[BombPlaced](events)
	if !ok || placed.Cell != (Cell{X: 1, Y: 1}) {
		t.Fatalf("events = %v, expected BombPlaced at (1,1)", events)
	}
	if p.Bombs != 0 || sched.Pending() != 1 {
		t.Fatalf("bombs = %d pending fuses = %d", p.Bombs, sched.Pending())
	}

	events = w.Tick(Input{PlaceBomb: true})
	if _, ok := hasEvent[BombPlaced](events); ok {
		t.Fatal("no bomb should be placed without capacity")
	}

	if n := sched.FireAll(); n != 1 {
		t.Fatalf("fired %d fuses, expected 1", n)
	}
	events = w.Tick(Input{})
	exploded, ok := hasEvent[BombExploded](events)
	if !ok || exploded.Cells != 3 {
		t.Fatalf("events = %v, expected BombExploded covering 3 cells", events)
	}
	if p.Bombs != 1 {
		t.Errorf("bombs = %d, expected refund on the explosion tick", p.Bombs)
	}
	if len(w.Floor().Bombs()) != 0 || len(w.Floor().Explosions()) != 1 {
		t.Errorf("bombs = %d explosions = %d", len(w.Floor().Bombs()), len(w.Floor().Explosions()))
	}

	for i := 0; i < w.Config().Animation.Explosion; i++ {
		w.Tick(Input{})
	}
	if len(w.Floor().Explosions()) != 0 {
		t.Error("explosion should retire after its animation")
	}
	if p.HP != w.Config().Baseline.HP {
		t.Errorf("HP = %d, player was immortal during the blast", p.HP)
	}
}

func TestWorldBlastDestroysBlock(t *testing.T) {
	w, _, sched := newTestWorld(t, testConfig())
	block := Cell{X: 3, Y: 1}
	w.Floor().Grid().SetType(block, TileBreakable)
	w.Player().Radius = 2

	w.Tick(Input{PlaceBomb: true})
	sched.FireAll()
	events := w.Tick(Input{})
	if ev, ok := hasEvent[TileDestroyed](events); !ok || ev.Cell != block {
		t.Fatalf("events = %v, expected TileDestroyed at %s", events, block)
	}

	for i := 0; i < w.Config().Animation.TileClear; i++ {
		if w.Floor().Grid().TypeAt(block) != TileBreakable {
			t.Fatalf("block cleared after %d ticks, before its animation finished", i)
		}
		w.Tick(Input{})
	}
	if w.Floor().Grid().TypeAt(block) != TileFloor {
		t.Error("block should be floor once its animation finished")
	}
}

func TestWorldRestartCancelsFuses(t *testing.T) {
	w, _, sched := newTestWorld(t, testConfig())
	w.Tick(Input{PlaceBomb: true})

	w.Restart()
	if n := sched.FireAll(); n != 0 {
		t.Errorf("fired %d fuses after restart, expected 0", n)
	}
	if w.Player().Bombs != w.Config().Baseline.Bombs {
		t.Errorf("bombs = %d after restart", w.Player().Bombs)
	}
}

func TestWorldStaleFuseIgnored(t *testing.T) {
	w, _, _ := newTestWorld(t, testConfig())
	w.fuses.push(BombID(999))
	events := w.Tick(Input{})
	if _, ok := hasEvent[BombExploded](events); ok {
		t.Error("fuse of an unknown bomb must be ignored")
	}
}

func TestWorldEnemyKilledEvent(t *testing.T) {
	w, clock, _ := newTestWorld(t, testConfig())
	f := w.Floor()
	e := f.AddEnemy(Puropen, Cell{X: 5, Y: 5}, w.rng)
	e.Moving = false
	blast := CastExplosion(f.grid, Cell{X: 5, Y: 5}, 1)
	blast.StartTick = w.TickCount()
	f.explosions = append(f.explosions, blast)
	clock.Advance(time.Millisecond)

	events := w.Tick(Input{})
	ev, ok := hasEvent[EnemyKilled](events)
	if !ok || ev.Kind != Puropen || ev.Points != 100 {
		t.Fatalf("events = %v, expected EnemyKilled for 100 points", events)
	}
	if f.AliveEnemies() != 0 || len(f.Enemies()) != 1 {
		t.Errorf("dying enemy should stay until its animation ends")
	}
}

func tickUntil[T Event](t *testing.T, w *World, limit int) (T, []Event) {
	t.Helper()
	for i := 0; i < limit; i++ {
		events := w.Tick(Input{})
		if ev, ok := hasEvent[T](events); ok {
			return ev, events
		}
	}
	var zero T
	t.Fatalf("event %T not seen within %d ticks", zero, limit)
	return zero, nil
}

func TestWorldLevelTransition(t *testing.T) {
	w, clock, _ := newTestWorld(t, testConfig())
	w.Floor().SetExit(Cell{X: 1, Y: 1})

	events := w.Tick(Input{})
	if _, ok := hasEvent[ExitReached](events); !ok {
		t.Fatalf("events = %v, expected ExitReached", events)
	}

	finished, _ := tickUntil[LevelFinished](t, w, 10)
	if finished.Level != 0 || finished.Last {
		t.Errorf("LevelFinished = %+v", finished)
	}
	if w.Phase() != PhaseTransition {
		t.Fatalf("phase = %s, expected transition", w.Phase())
	}

	if events := w.Tick(Input{}); len(events) != 0 {
		t.Errorf("transition delay not honoured, got %v", events)
	}

	clock.Advance(w.Config().LevelTransition)
	events = w.Tick(Input{})
	started, ok := hasEvent[LevelStarted](events)
	if !ok || started.Level != 1 || started.Enemies != 4 {
		t.Fatalf("events = %v, expected LevelStarted{1, 4}", events)
	}
	if w.Level() != 1 || w.Phase() != PhasePlaying {
		t.Errorf("level = %d phase = %s", w.Level(), w.Phase())
	}
}

func TestWorldVictory(t *testing.T) {
	cfg := testConfig()
	w, clock, _ := newTestWorld(t, cfg, WithStartLevel(cfg.Levels()-1))
	w.Floor().SetExit(Cell{X: 1, Y: 1})

	finished, _ := tickUntil[LevelFinished](t, w, 10)
	if !finished.Last {
		t.Error("last level should be flagged")
	}

	clock.Advance(cfg.LevelTransition)
	victory, _ := tickUntil[Victory](t, w, 1)
	if victory.Level != cfg.Levels()-1 {
		t.Errorf("Victory = %+v", victory)
	}
	if w.Phase() != PhaseVictory {
		t.Errorf("phase = %s", w.Phase())
	}
	if events := w.Tick(Input{PlaceBomb: true}); events != nil {
		t.Errorf("finished run should ignore ticks, got %v", events)
	}

	events := w.Restart()
	if ev, ok := hasEvent[LevelStarted](events); !ok || ev.Level != cfg.Levels()-1 {
		t.Errorf("restart events = %v", events)
	}
}

func TestWorldGameOver(t *testing.T) {
	w, clock, _ := newTestWorld(t, testConfig())
	clock.Advance(w.Config().PlayerHitCooldown)
	w.Player().HP = 1

	f := w.Floor()
	blast := CastExplosion(f.grid, Cell{X: 1, Y: 1}, 1)
	blast.StartTick = w.TickCount()
	f.explosions = append(f.explosions, blast)

	events := w.Tick(Input{})
	if ev, ok := hasEvent[PlayerDamaged](events); !ok || ev.HP != 0 {
		t.Fatalf("events = %v, expected PlayerDamaged{HP: 0}", events)
	}
	if w.Player().State != StateDying {
		t.Fatalf("state = %s, expected dying", w.Player().State)
	}

	over, _ := tickUntil[GameOver](t, w, 10)
	if over.Level != 0 || w.Phase() != PhaseGameOver {
		t.Errorf("GameOver = %+v phase %s", over, w.Phase())
	}
	if len(f.Bombs())+len(f.Explosions()) != 0 {
		t.Error("game over should clear the floor")
	}
}

func TestWorldRestartRetriesCurrentLevel(t *testing.T) {
	w, clock, _ := newTestWorld(t, testConfig())
	w.Floor().SetExit(Cell{X: 1, Y: 1})
	tickUntil[LevelFinished](t, w, 10)
	clock.Advance(w.Config().LevelTransition)
	tickUntil[LevelStarted](t, w, 1)
	if w.Level() != 1 {
		t.Fatalf("level = %d, expected 1", w.Level())
	}

	clock.Advance(w.Config().PlayerHitCooldown)
	w.Player().HP = 1
	f := w.Floor()
	blast := CastExplosion(f.grid, Cell{X: 1, Y: 1}, 1)
	blast.StartTick = w.TickCount()
	f.explosions = append(f.explosions, blast)

	over, _ := tickUntil[GameOver](t, w, 10)
	if over.Level != 1 {
		t.Fatalf("GameOver = %+v, expected level 1", over)
	}

	events := w.Restart()
	if ev, ok := hasEvent[LevelStarted](events); !ok || ev.Level != 1 {
		t.Errorf("restart events = %v, expected LevelStarted on level 1", events)
	}
	if w.Level() != 1 || w.Phase() != PhasePlaying {
		t.Errorf("level = %d phase = %s after restart", w.Level(), w.Phase())
	}
	if p := w.Player(); !p.Alive || p.HP != w.Config().Baseline.HP {
		t.Errorf("player = %+v, expected baseline stats", p)
	}
}

func TestWorldExitClosedWhileEnemiesLive(t *testing.T) {
	w, _, _ := newTestWorld(t, testConfig())
	f := w.Floor()
	f.SetExit(Cell{X: 1, Y: 1})
	e := f.AddEnemy(Puropen, Cell{X: 11, Y: 9}, w.rng)
	e.Moving = false

	events := w.Tick(Input{})
	if _, ok := hasEvent[ExitReached](events); ok {
		t.Error("exit must stay closed while an enemy remains")
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	w, _, _ := newTestWorld(t, testConfig())
	w.Tick(Input{PlaceBomb: true})
	s := w.Snapshot()

	if len(s.Bombs) != 1 || s.Player.Bombs != 0 {
		t.Fatalf("snapshot bombs = %v player bombs = %d", s.Bombs, s.Player.Bombs)
	}
	s.Tiles[1][1].Type = TileUnbreakable
	if w.Floor().Grid().TypeAt(Cell{X: 1, Y: 1}) != TileFloor {
		t.Error("mutating the snapshot changed the world")
	}
	if s.Cols != w.Config().Cols || s.Rows != w.Config().Rows || len(s.Tiles) != s.Rows {
		t.Errorf("snapshot dims = %dx%d", s.Cols, s.Rows)
	}
	if !s.ExitOpen {
		t.Error("exit should be open with no enemies")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	bad := DefaultConfig()
	bad.Cols = 16
	bad.Max.Speed = 1
	if err := bad.Validate(); err == nil {
		t.Error("expected validation errors")
	}
}

func TestEnemiesForLevelClamps(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.EnemiesForLevel(10); got != 5 {
		t.Errorf("EnemiesForLevel(10) = %d, expected 5", got)
	}
	if got := cfg.EnemiesForLevel(-1); got != 3 {
		t.Errorf("EnemiesForLevel(-1) = %d, expected 3", got)
	}
}
