package sim

import (
	"math/rand"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type manualTimer struct {
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

// manualScheduler holds fuses until the test fires them.
type manualScheduler struct {
	timers []*manualTimer
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &manualTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// FireAll runs every pending fuse and returns how many fired.
func (s *manualScheduler) FireAll() int {
	n := 0
	for _, t := range s.timers {
		if t.stopped || t.fired {
			continue
		}
		t.fired = true
		t.f()
		n++
	}
	return n
}

func (s *manualScheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Animation = AnimationTicks{
		TileClear:     3,
		Explosion:     5,
		EnemyDeath:    2,
		PlayerDying:   2,
		PlayerWinning: 2,
	}
	return cfg
}

// openGrid returns a grid with only the permanent pillars.
func openGrid(cols, rows int) *Grid {
	g := NewGrid(cols, rows)
	for _, t := range g.Tiles() {
		if IsPillar(t.Cell, cols, rows) {
			g.SetType(t.Cell, TileUnbreakable)
		}
	}
	return g
}

// openFloor returns an enemy-free floor over openGrid.
func openFloor(cfg Config) *Floor {
	f := NewFloor(cfg)
	f.SetGrid(openGrid(cfg.Cols, cfg.Rows))
	f.SetExit(Cell{X: cfg.Cols - 2, Y: cfg.Rows - 2})
	return f
}

// newTestWorld starts a world and swaps its level for an open arena with
// no enemies, so tests place everything explicitly.
func newTestWorld(t *testing.T, cfg Config, opts ...Option) (*World, *fakeClock, *manualScheduler) {
	t.Helper()
	clock := newFakeClock()
	sched := &manualScheduler{}
	base := []Option{
		WithRand(rand.New(rand.NewSource(7))),
		WithClock(clock),
		WithScheduler(sched),
	}
	w := NewWorld(cfg, append(base, opts...)...)
	w.Start()
	w.floor.Clear()
	w.floor.SetGrid(openGrid(cfg.Cols, cfg.Rows))
	w.floor.SetExit(Cell{X: cfg.Cols - 2, Y: cfg.Rows - 2})
	return w, clock, sched
}

func hasEvent[T Event](events []Event) (T, bool) {
	for _, e := range events {
		if v, ok := e.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
