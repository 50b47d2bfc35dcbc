package sim

// Explosion is the set of cells hit by a detonated bomb.
type Explosion struct {
	ID        uint64
	Origin    Cell
	Radius    int
	StartTick uint64

	rays  [len(Moves)][]Cell
	cells map[Cell]struct{}
}

// CastExplosion walks four rays out of origin. Floor cells are included and
// the ray continues; a Breakable cell is included and stops the ray; an
// Unbreakable or out-of-bounds cell stops the ray and is excluded. The
// origin is always included.
func CastExplosion(g *Grid, origin Cell, radius int) *Explosion {
	e := &Explosion{
		Origin: origin,
		Radius: radius,
		cells:  map[Cell]struct{}{origin: {}},
	}
	for i, m := range Moves {
		c := origin
		for step := 0; step < radius; step++ {
			c = c.Step(m)
			t := g.TypeAt(c)
			if t == TileUnbreakable {
				break
			}
			e.rays[i] = append(e.rays[i], c)
			e.cells[c] = struct{}{}
			if t == TileBreakable {
				break
			}
		}
	}
	return e
}

// Contains reports whether c is part of the blast.
func (e *Explosion) Contains(c Cell) bool {
	_, ok := e.cells[c]
	return ok
}

// Ray returns the cells reached in direction m, nearest first, excluding the origin.
func (e *Explosion) Ray(m Move) []Cell {
	return e.rays[m]
}

// Cells returns every affected cell, origin first, then each ray in Moves order.
func (e *Explosion) Cells() []Cell {
	out := make([]Cell, 0, len(e.cells))
	out = append(out, e.Origin)
	for _, ray := range e.rays {
		out = append(out, ray...)
	}
	return out
}

// Len returns the number of affected cells.
func (e *Explosion) Len() int {
	return len(e.cells)
}
