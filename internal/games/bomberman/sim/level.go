package sim

import (
	"math/rand"
)

// GenerateLevel fills f with a fresh layout for the 0-indexed level:
// terrain, hidden power-ups, the exit, and the level's enemy quota.
func GenerateLevel(f *Floor, rng *rand.Rand, level int) {
	cfg := f.cfg
	f.Clear()
	f.SetGrid(GenerateGrid(rng, cfg.Cols, cfg.Rows, cfg.BreakableChance))
	placePickups(f, rng)
	placeExit(f, rng)
	placeEnemies(f, rng, cfg.EnemiesForLevel(level))
}

// placePickups rolls a power-up for each Breakable tile. With compound
// rarity on, the rolled type must also pass a roll on its own percentage.
func placePickups(f *Floor, rng *rand.Rand) {
	for _, t := range f.grid.Tiles() {
		if t.Type != TileBreakable {
			continue
		}
		if rng.Float64() >= f.cfg.PowerUpChance {
			continue
		}
		pt := rollPowerUpType(rng)
		if f.cfg.CompoundRarity && rng.Float64()*100 >= pt.Percent() {
			continue
		}
		f.AddPickup(t.Cell, pt)
	}
}

// placeExit hides the exit under a random Breakable tile past the exit
// threshold that holds no power-up. If the layout has none, one is forced.
func placeExit(f *Floor, rng *rand.Rand) {
	var candidates []Cell
	for _, t := range f.grid.Tiles() {
		c := t.Cell
		if t.Type != TileBreakable || c.X <= f.cfg.ExitMinCol || c.Y <= f.cfg.ExitMinRow {
			continue
		}
		if f.PickupAt(c) != nil {
			continue
		}
		candidates = append(candidates, c)
	}
	if len(candidates) > 0 {
		f.SetExit(candidates[rng.Intn(len(candidates))])
		return
	}

	// Force the exit onto a non-pillar cell in the far region.
	var fallback []Cell
	for _, t := range f.grid.Tiles() {
		c := t.Cell
		if c.X <= f.cfg.ExitMinCol || c.Y <= f.cfg.ExitMinRow || IsPillar(c, f.cfg.Cols, f.cfg.Rows) {
			continue
		}
		fallback = append(fallback, c)
	}
	if len(fallback) == 0 {
		// Tiny grids: the cell diagonally opposite the spawn is never a pillar.
		fallback = append(fallback, Cell{X: f.cfg.Cols - 2, Y: f.cfg.Rows - 2})
	}
	c := fallback[rng.Intn(len(fallback))]
	if pu := f.PickupAt(c); pu != nil {
		pu.Collected = true
	}
	f.grid.SetType(c, TileBreakable)
	f.SetExit(c)
}

// placeEnemies scans Floor cells outside the spawn cluster in row-major
// order, spawning an enemy of random kind with the configured chance until
// quota enemies exist. Scans repeat while eligible cells remain.
func placeEnemies(f *Floor, rng *rand.Rand, quota int) {
	if quota <= 0 {
		return
	}
	eligible := 0
	for _, t := range f.grid.Tiles() {
		if t.Type == TileFloor && !InSpawnCluster(t.Cell) {
			eligible++
		}
	}
	if eligible == 0 {
		return
	}

	occupied := make(map[Cell]bool, quota)
	kinds := EnemyKinds()
	for len(f.enemies) < quota && len(occupied) < eligible {
		for _, t := range f.grid.Tiles() {
			if len(f.enemies) >= quota {
				return
			}
			c := t.Cell
			if t.Type != TileFloor || InSpawnCluster(c) || occupied[c] {
				continue
			}
			if rng.Float64() < f.cfg.EnemySpawnChance {
				f.AddEnemy(kinds[rng.Intn(len(kinds))], c, rng)
				occupied[c] = true
			}
		}
		if f.cfg.EnemySpawnChance <= 0 {
			return
		}
	}
}
