package bomberman

import "github.com/vovakirdan/tui-bomber/internal/games/bomberman/sim"

// Snapshot is a copy of the world plus the run's score bookkeeping.
type Snapshot struct {
	World      sim.Snapshot
	Score      int // total plus current level
	LevelScore int
	TotalScore int
	Paused     bool
}

// Snapshot returns a copy of the current state for tests and headless runs.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *Game) snapshotLocked() Snapshot {
	s := Snapshot{
		Score:      g.totalScore + g.levelScore,
		LevelScore: g.levelScore,
		TotalScore: g.totalScore,
		Paused:     g.paused,
	}
	if g.world != nil {
		s.World = g.world.Snapshot()
	}
	return s
}
