package sim

import (
	"fmt"
	"math/rand"
)

// Grid is a fixed cols x rows array of tiles.
type Grid struct {
	cols  int
	rows  int
	tiles []*Tile
}

// NewGrid creates a grid where every cell is Floor.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{
		cols:  cols,
		rows:  rows,
		tiles: make([]*Tile, cols*rows),
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := Cell{X: x, Y: y}
			g.tiles[g.index(c)] = NewTile(c, TileFloor)
		}
	}
	return g
}

// Cols returns the grid width in cells.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// InBounds reports whether c addresses a cell of the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.cols && c.Y >= 0 && c.Y < g.rows
}

// At returns the tile at c. Addressing a cell outside the grid is a
// programming error and panics.
func (g *Grid) At(c Cell) *Tile {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("sim: cell %s outside %dx%d grid", c, g.cols, g.rows))
	}
	return g.tiles[g.index(c)]
}

// TypeAt returns the tile type at c. Cells outside the grid read as
// Unbreakable so collision queries treat them as walls.
func (g *Grid) TypeAt(c Cell) TileType {
	if !g.InBounds(c) {
		return TileUnbreakable
	}
	return g.tiles[g.index(c)].Type
}

// Set stores tile t at its own cell, replacing whatever was there.
func (g *Grid) Set(t *Tile) {
	g.tiles[g.index(t.Cell)] = t
}

// SetType replaces the tile at c with a fresh tile of type t.
func (g *Grid) SetType(c Cell, t TileType) {
	g.Set(NewTile(c, t))
}

// Tiles returns every tile in row-major order.
func (g *Grid) Tiles() []*Tile {
	return g.tiles
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := &Grid{cols: g.cols, rows: g.rows, tiles: make([]*Tile, len(g.tiles))}
	for i, t := range g.tiles {
		cp := *t
		clone.tiles[i] = &cp
	}
	return clone
}

func (g *Grid) index(c Cell) int {
	return c.Y*g.cols + c.X
}

// IsPillar reports whether c is a permanent wall: the border ring or a cell
// whose row and column are both even.
func IsPillar(c Cell, cols, rows int) bool {
	if c.X == 0 || c.Y == 0 || c.X == cols-1 || c.Y == rows-1 {
		return true
	}
	return c.X%2 == 0 && c.Y%2 == 0
}

// spawnCluster is kept clear so the player can move and plant a first bomb.
var spawnCluster = [...]Cell{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}}

// spawnGuards are forced Breakable as the first obstacles around the spawn.
var spawnGuards = [...]Cell{{X: 3, Y: 1}, {X: 1, Y: 3}}

// InSpawnCluster reports whether c belongs to the player's spawn cluster.
func InSpawnCluster(c Cell) bool {
	for _, s := range spawnCluster {
		if s == c {
			return true
		}
	}
	return false
}

// GenerateGrid builds a level layout: pillars are Unbreakable, other cells
// are Breakable with probability breakableChance, and the spawn cluster is
// cleared with its two guard blocks forced.
func GenerateGrid(rng *rand.Rand, cols, rows int, breakableChance float64) *Grid {
	g := NewGrid(cols, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := Cell{X: x, Y: y}
			switch {
			case IsPillar(c, cols, rows):
				g.SetType(c, TileUnbreakable)
			case rng.Float64() < breakableChance:
				g.SetType(c, TileBreakable)
			}
		}
	}

	for _, c := range spawnCluster {
		if g.InBounds(c) {
			g.SetType(c, TileFloor)
		}
	}
	for _, c := range spawnGuards {
		if g.InBounds(c) && !IsPillar(c, cols, rows) {
			g.SetType(c, TileBreakable)
		}
	}
	return g
}
