package sim

import (
	"time"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// BombState tracks a bomb from placement to removal.
type BombState int

const (
	BombArmed     BombState = iota // fuse running
	BombFused                      // fuse expired, waiting for the next sweep
	BombDetonated                  // explosion built and tiles hit
	BombRetired                    // removed from the floor
)

// String returns the state name.
func (s BombState) String() string {
	switch s {
	case BombArmed:
		return "armed"
	case BombFused:
		return "fused"
	case BombDetonated:
		return "detonated"
	case BombRetired:
		return "retired"
	default:
		return "unknown"
	}
}

// BombID identifies a bomb for the lifetime of a World.
type BombID uint64

// Bomb is a placed explosive.
type Bomb struct {
	ID     BombID
	Cell   Cell
	Radius int // copied from the placer when planted
	Fuse   time.Duration
	State  BombState
	Box    core.Rect

	// CollisionEnabled starts false so the placer can step off the bomb.
	CollisionEnabled bool

	owner *Player
	timer Timer
}

// enableCollision turns the bomb solid once placer no longer overlaps it.
func (b *Bomb) enableCollision(placer core.Rect) {
	if !b.CollisionEnabled && !b.Box.Intersects(placer) {
		b.CollisionEnabled = true
	}
}

// cancel stops a pending fuse.
func (b *Bomb) cancel() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
