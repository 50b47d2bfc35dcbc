package sim

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// EnemyKind selects an enemy archetype. Kinds differ only in their numbers.
type EnemyKind int

const (
	Puropen EnemyKind = iota
	Denkyun
)

type enemyStats struct {
	name   string
	speed  int
	hp     int
	points int
}

var enemyTable = [...]enemyStats{
	Puropen: {name: "puropen", speed: 2, hp: 1, points: 100},
	Denkyun: {name: "denkyun", speed: 2, hp: 2, points: 400},
}

// EnemyKinds returns every archetype.
func EnemyKinds() []EnemyKind {
	return []EnemyKind{Puropen, Denkyun}
}

// String returns the archetype name.
func (k EnemyKind) String() string {
	if k < 0 || int(k) >= len(enemyTable) {
		return "unknown"
	}
	return enemyTable[k].name
}

// Speed returns the archetype's pixels per tick.
func (k EnemyKind) Speed() int { return enemyTable[k].speed }

// HP returns the archetype's starting hit points.
func (k EnemyKind) HP() int { return enemyTable[k].hp }

// Points returns the score awarded for a kill.
func (k EnemyKind) Points() int { return enemyTable[k].points }

// Enemy box insets relative to the enemy's tile-aligned position.
const (
	enemyInsetX  = 7
	enemyShrinkW = 12
	enemyShrinkH = 15
)

// Enemy is a randomly walking hostile.
type Enemy struct {
	ID   int
	Kind EnemyKind

	X, Y int // sprite origin; Box is inset from it
	Box  core.Rect

	HP     int
	Speed  int
	Dir    Move
	Moving bool
	State  LifeState

	Alive   bool
	Damaged bool

	// DyingTick is the tick on which the enemy died.
	DyingTick uint64

	floor      *Floor
	turnChance float64
	hits       cooldown
}

func newEnemy(id int, kind EnemyKind, c Cell, f *Floor, rng *rand.Rand) *Enemy {
	ts := f.TileSize()
	e := &Enemy{
		ID:         id,
		Kind:       kind,
		X:          c.X * ts,
		Y:          c.Y * ts,
		HP:         kind.HP(),
		Speed:      kind.Speed(),
		Moving:     true,
		State:      StateWalking,
		Alive:      true,
		floor:      f,
		turnChance: f.cfg.EnemyTurnChance,
		hits:       cooldown{window: f.cfg.EnemyHitCooldown},
	}
	e.Box = core.NewRect(e.X+enemyInsetX, e.Y, ts-enemyShrinkW, ts-enemyShrinkH)
	e.Dir = Moves[rng.Intn(len(Moves))]
	return e
}

// Cell returns the cell holding the center of the enemy's box.
func (e *Enemy) Cell() Cell {
	return CenterCell(e.Box, e.floor.TileSize())
}

// Update runs one tick of enemy logic. It reports whether the enemy died
// during this tick.
func (e *Enemy) Update(now time.Time, tick uint64, rng *rand.Rand) (killed bool) {
	if !e.Alive {
		return false
	}

	if e.hits.ready(now) {
		e.Damaged = false
		if e.floor.CollidesWithExplosions(e.Box) {
			e.hits.reset(now)
			if e.damage(tick) {
				return true
			}
		}
	}

	if !e.Moving {
		return false
	}

	dx, dy := e.Dir.Delta()
	next := e.Box.Translate(dx*e.Speed, dy*e.Speed)
	blocked := e.floor.CollidesWithEntities(next, e) ||
		e.floor.CollidesWithBombs(next, false) ||
		e.floor.CollidesWithBlocks(next)

	if blocked || rng.Float64() < e.turnChance {
		e.turn(rng)
	} else {
		e.X += dx * e.Speed
		e.Y += dy * e.Speed
	}
	e.Box = e.Box.MoveTo(e.X+enemyInsetX, e.Y)
	return false
}

// damage removes one hit point and reports whether the enemy died.
func (e *Enemy) damage(tick uint64) bool {
	e.HP--
	e.Damaged = true
	if e.HP > 0 {
		return false
	}
	e.Moving = false
	e.Alive = false
	e.State = StateDying
	e.DyingTick = tick
	return true
}

// turn picks a new direction uniformly among the three others.
func (e *Enemy) turn(rng *rand.Rand) {
	choices := make([]Move, 0, len(Moves)-1)
	for _, m := range Moves {
		if m != e.Dir {
			choices = append(choices, m)
		}
	}
	e.Dir = choices[rng.Intn(len(choices))]
}
