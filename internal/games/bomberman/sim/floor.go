package sim

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// Exit is the hidden door that ends a level once every enemy is gone.
type Exit struct {
	Cell Cell
	Box  core.Rect
}

// Floor is the arena: the grid plus every transient object on it. It
// answers collision queries and performs the per-tick sweeps. A Floor is
// reused across levels; Clear resets it.
type Floor struct {
	cfg  Config
	grid *Grid

	bombs      []*Bomb
	explosions []*Explosion
	pickups    []*PowerUp
	enemies    []*Enemy
	exit       Exit
	destroying []*Tile

	nextBombID      BombID
	nextExplosionID uint64
	nextEnemyID     int
}

// NewFloor creates an empty arena with an all-Floor grid.
func NewFloor(cfg Config) *Floor {
	return &Floor{
		cfg:  cfg,
		grid: NewGrid(cfg.Cols, cfg.Rows),
	}
}

// Grid returns the tile grid.
func (f *Floor) Grid() *Grid { return f.grid }

// TileSize returns the pixel size of a cell.
func (f *Floor) TileSize() int { return f.cfg.TileSize }

// Bombs returns the placed bombs.
func (f *Floor) Bombs() []*Bomb { return f.bombs }

// Explosions returns the active explosions.
func (f *Floor) Explosions() []*Explosion { return f.explosions }

// Pickups returns the power-ups still on the floor.
func (f *Floor) Pickups() []*PowerUp { return f.pickups }

// Enemies returns every enemy not yet removed, dying ones included.
func (f *Floor) Enemies() []*Enemy { return f.enemies }

// Exit returns the level exit.
func (f *Floor) Exit() Exit { return f.exit }

// AliveEnemies counts enemies that have not died.
func (f *Floor) AliveEnemies() int {
	n := 0
	for _, e := range f.enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// SetGrid installs a new layout.
func (f *Floor) SetGrid(g *Grid) {
	f.grid = g
}

// SetExit places the exit at c.
func (f *Floor) SetExit(c Cell) {
	f.exit = Exit{Cell: c, Box: c.Box(f.cfg.TileSize)}
}

// AddPickup hides a power-up of type t at c.
func (f *Floor) AddPickup(c Cell, t PowerUpType) *PowerUp {
	pu := &PowerUp{Cell: c, Type: t, Box: c.Box(f.cfg.TileSize)}
	f.pickups = append(f.pickups, pu)
	return pu
}

// AddEnemy spawns an enemy of the given kind on c.
func (f *Floor) AddEnemy(kind EnemyKind, c Cell, rng *rand.Rand) *Enemy {
	f.nextEnemyID++
	e := newEnemy(f.nextEnemyID, kind, c, f, rng)
	f.enemies = append(f.enemies, e)
	return e
}

// PickupAt returns the uncollected power-up on c, or nil.
func (f *Floor) PickupAt(c Cell) *PowerUp {
	for _, pu := range f.pickups {
		if pu.Cell == c && !pu.Collected {
			return pu
		}
	}
	return nil
}

// BombAt returns the bomb on c, or nil.
func (f *Floor) BombAt(c Cell) *Bomb {
	for _, b := range f.bombs {
		if b.Cell == c {
			return b
		}
	}
	return nil
}

func (f *Floor) bombByID(id BombID) *Bomb {
	for _, b := range f.bombs {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// IsFloorAt reports whether the cell at (x, y) is walkable Floor.
func (f *Floor) IsFloorAt(x, y int) bool {
	return f.grid.TypeAt(Cell{X: x, Y: y}) == TileFloor
}

// CollidesWithBlocks reports whether box covers any Breakable or
// Unbreakable cell. Coverage is by tile, not by the block's shape.
func (f *Floor) CollidesWithBlocks(box core.Rect) bool {
	ts := f.cfg.TileSize
	left := floorDiv(box.X, ts)
	right := floorDiv(box.Right()-1, ts)
	top := floorDiv(box.Y, ts)
	bottom := floorDiv(box.Bottom()-1, ts)

	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			if f.grid.TypeAt(Cell{X: x, Y: y}).Solid() {
				return true
			}
		}
	}
	return false
}

// CollidesWithBombs reports whether box intersects a bomb. For the placer,
// bombs it has stepped off become solid first and only solid bombs count;
// enemies are blocked by every bomb.
func (f *Floor) CollidesWithBombs(box core.Rect, placer bool) bool {
	for _, b := range f.bombs {
		if !placer {
			if b.Box.Intersects(box) {
				return true
			}
			continue
		}
		b.enableCollision(box)
		if b.CollisionEnabled && b.Box.Intersects(box) {
			return true
		}
	}
	return false
}

// CollidesWithEntities reports whether box intersects a living enemy other
// than exclude. The player passes nil.
func (f *Floor) CollidesWithEntities(box core.Rect, exclude *Enemy) bool {
	for _, e := range f.enemies {
		if e == exclude || !e.Alive {
			continue
		}
		if e.Box.Intersects(box) {
			return true
		}
	}
	return false
}

// CollidesWithExplosions reports whether the cell under box's center is
// part of any active explosion.
func (f *Floor) CollidesWithExplosions(box core.Rect) bool {
	c := CenterCell(box, f.cfg.TileSize)
	for _, e := range f.explosions {
		if e.Contains(c) {
			return true
		}
	}
	return false
}

// CollidesWithPickup returns the first uncollected power-up box intersects
// and marks it collected.
func (f *Floor) CollidesWithPickup(box core.Rect) *PowerUp {
	for _, pu := range f.pickups {
		if pu.Collected || f.grid.TypeAt(pu.Cell) != TileFloor {
			continue
		}
		if pu.Box.Intersects(box) {
			pu.Collected = true
			return pu
		}
	}
	return nil
}

// CollidesWithExit reports whether box sits exactly on the exit with no
// enemy left on the floor.
func (f *Floor) CollidesWithExit(box core.Rect) bool {
	return len(f.enemies) == 0 && f.exit.Box == box
}

// PlaceBomb plants a bomb on c. It returns nil when c is not Floor or
// already holds a bomb. Collision starts disabled.
func (f *Floor) PlaceBomb(c Cell, radius int, owner *Player) *Bomb {
	if !f.IsFloorAt(c.X, c.Y) || f.BombAt(c) != nil {
		return nil
	}
	f.nextBombID++
	b := &Bomb{
		ID:     f.nextBombID,
		Cell:   c,
		Radius: radius,
		Fuse:   f.cfg.Fuse,
		State:  BombArmed,
		Box:    c.Box(f.cfg.TileSize),
		owner:  owner,
	}
	f.bombs = append(f.bombs, b)
	return b
}

// Detonate starts destroying the first Breakable tile along each ray of e
// and returns the cells hit. Unbreakable tiles and farther blocks are left
// untouched.
func (f *Floor) Detonate(e *Explosion, tick uint64) []Cell {
	var hit []Cell
	for _, m := range Moves {
		ray := e.Ray(m)
		if len(ray) == 0 {
			continue
		}
		c := ray[len(ray)-1]
		t := f.grid.At(c)
		if t.Type != TileBreakable || t.Hit {
			continue
		}
		t.Hit = true
		t.HitTick = tick
		f.destroying = append(f.destroying, t)
		hit = append(hit, c)
	}
	return hit
}

// RemovePickupsInBlast burns uncollected power-ups lying exposed on blast
// cells. Pickups still under a block survive the blast that uncovers them.
func (f *Floor) RemovePickupsInBlast(e *Explosion) []*PowerUp {
	var burned []*PowerUp
	for _, pu := range f.pickups {
		if pu.Collected || !e.Contains(pu.Cell) {
			continue
		}
		if f.grid.TypeAt(pu.Cell) != TileFloor {
			continue
		}
		pu.Collected = true
		burned = append(burned, pu)
	}
	return burned
}

// Clear drops every transient object and cancels pending fuses.
func (f *Floor) Clear() {
	for _, b := range f.bombs {
		b.cancel()
		b.State = BombRetired
	}
	f.bombs = nil
	f.explosions = nil
	f.pickups = nil
	f.enemies = nil
	f.destroying = nil
	f.exit = Exit{}
}

// Sweep lists what one UpdatePlaceables pass changed.
type Sweep struct {
	ClearedTiles   []Cell
	Detonated      []*Bomb
	Explosions     []*Explosion
	DestroyedTiles []Cell
	BurnedPickups  []*PowerUp
	RetiredBlasts  int
	RemovedEnemies []*Enemy
}

// UpdatePlaceables performs the per-tick sweeps: destroyed tiles whose
// animation finished become fresh Floor tiles, exploded bombs become
// explosions and refund their placer, finished explosions and collected
// pickups are dropped, and dead enemies whose animation finished are removed.
func (f *Floor) UpdatePlaceables(anim Animations, tick uint64) Sweep {
	var sw Sweep

	f.destroying = slices.DeleteFunc(f.destroying, func(t *Tile) bool {
		if !anim.TileCleared(t, tick) {
			return false
		}
		f.grid.SetType(t.Cell, TileFloor)
		sw.ClearedTiles = append(sw.ClearedTiles, t.Cell)
		return true
	})

	f.bombs = slices.DeleteFunc(f.bombs, func(b *Bomb) bool {
		if b.State != BombFused {
			return false
		}
		f.nextExplosionID++
		e := CastExplosion(f.grid, b.Cell, b.Radius)
		e.ID = f.nextExplosionID
		e.StartTick = tick
		f.explosions = append(f.explosions, e)
		b.State = BombDetonated

		sw.DestroyedTiles = append(sw.DestroyedTiles, f.Detonate(e, tick)...)
		sw.BurnedPickups = append(sw.BurnedPickups, f.RemovePickupsInBlast(e)...)
		sw.Detonated = append(sw.Detonated, b)
		sw.Explosions = append(sw.Explosions, e)

		if b.owner != nil {
			b.owner.refundBomb()
		}
		b.State = BombRetired
		return true
	})

	// Explosions spawned this tick stay for at least one tick of damage checks.
	f.explosions = slices.DeleteFunc(f.explosions, func(e *Explosion) bool {
		if e.StartTick == tick || !anim.ExplosionFinished(e, tick) {
			return false
		}
		sw.RetiredBlasts++
		return true
	})

	f.pickups = slices.DeleteFunc(f.pickups, func(pu *PowerUp) bool {
		return pu.Collected
	})

	f.enemies = slices.DeleteFunc(f.enemies, func(e *Enemy) bool {
		if e.Alive || !anim.EnemyRemoved(e, tick) {
			return false
		}
		sw.RemovedEnemies = append(sw.RemovedEnemies, e)
		return true
	})

	return sw
}
