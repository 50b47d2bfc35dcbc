// Package sim implements the bomberman simulation: the tile grid, bombs and
// explosions, the player and enemy state machines, and the per-tick
// orchestration that ties them together.
//
// The package is pure: it has no terminal, storage, or logging dependency.
// Time, randomness, fuse timers, and animation completion are injected so
// tests can drive every transition deterministically.
package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// TileType classifies a grid cell.
type TileType int

const (
	TileFloor TileType = iota
	TileBreakable
	TileUnbreakable
)

// String returns a human-readable tile type name.
func (t TileType) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileBreakable:
		return "breakable"
	case TileUnbreakable:
		return "unbreakable"
	default:
		return "unknown"
	}
}

// Solid reports whether entities are blocked by this tile type.
func (t TileType) Solid() bool {
	return t != TileFloor
}

// Cell is a grid coordinate: X is the column, Y the row.
type Cell struct {
	X, Y int
}

// String formats the cell as (col,row).
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighbouring cell in direction m.
func (c Cell) Step(m Move) Cell {
	dx, dy := m.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Box returns the pixel-space box covering the cell.
func (c Cell) Box(tileSize int) core.Rect {
	return core.NewRect(c.X*tileSize, c.Y*tileSize, tileSize, tileSize)
}

// CellAt returns the cell containing pixel (x, y).
func CellAt(x, y, tileSize int) Cell {
	return Cell{X: floorDiv(x, tileSize), Y: floorDiv(y, tileSize)}
}

// CenterCell returns the cell containing the center of box.
func CenterCell(box core.Rect, tileSize int) Cell {
	cx, cy := box.Center()
	return CellAt(cx, cy, tileSize)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Tile is one grid cell. Tiles are replaced, never reset in place, once
// their destruction animation finishes.
type Tile struct {
	Cell Cell
	Type TileType

	// Hit is set when an explosion started destroying the tile.
	Hit     bool
	HitTick uint64
}

// NewTile creates an intact tile.
func NewTile(c Cell, t TileType) *Tile {
	return &Tile{Cell: c, Type: t}
}
