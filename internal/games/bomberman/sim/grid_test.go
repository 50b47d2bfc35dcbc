package sim

import (
	"math/rand"
	"testing"
)

func TestGenerateGridInvariants(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := GenerateGrid(rng, 17, 13, 0.4)

		for _, tile := range g.Tiles() {
			c := tile.Cell
			if IsPillar(c, 17, 13) && tile.Type != TileUnbreakable {
				t.Fatalf("seed %d: pillar %s is %s", seed, c, tile.Type)
			}
			if !IsPillar(c, 17, 13) && tile.Type == TileUnbreakable {
				t.Fatalf("seed %d: non-pillar %s is unbreakable", seed, c)
			}
		}

		for _, c := range []Cell{{1, 1}, {2, 1}, {1, 2}} {
			if g.TypeAt(c) != TileFloor {
				t.Errorf("seed %d: spawn cell %s should be floor, got %s", seed, c, g.TypeAt(c))
			}
		}
		for _, c := range []Cell{{3, 1}, {1, 3}} {
			if g.TypeAt(c) != TileBreakable {
				t.Errorf("seed %d: guard cell %s should be breakable, got %s", seed, c, g.TypeAt(c))
			}
		}
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(5, 5)

	if g.TypeAt(Cell{X: -1, Y: 0}) != TileUnbreakable {
		t.Error("out-of-bounds cells should read as unbreakable")
	}
	if g.TypeAt(Cell{X: 5, Y: 2}) != TileUnbreakable {
		t.Error("out-of-bounds cells should read as unbreakable")
	}

	defer func() {
		if recover() == nil {
			t.Error("At() outside the grid should panic")
		}
	}()
	g.At(Cell{X: 5, Y: 5})
}

func TestGridReplaceTile(t *testing.T) {
	g := NewGrid(5, 5)
	c := Cell{X: 2, Y: 3}
	g.SetType(c, TileBreakable)
	old := g.At(c)
	old.Hit = true

	g.SetType(c, TileFloor)
	fresh := g.At(c)
	if fresh == old {
		t.Fatal("SetType should install a new tile")
	}
	if fresh.Hit || fresh.Type != TileFloor {
		t.Errorf("fresh tile = %+v, expected intact floor", fresh)
	}
}

func TestCellGeometry(t *testing.T) {
	if got := CellAt(95, 48, 48); got != (Cell{X: 1, Y: 1}) {
		t.Errorf("CellAt(95, 48) = %s", got)
	}
	if got := CellAt(-1, 0, 48); got != (Cell{X: -1, Y: 0}) {
		t.Errorf("CellAt(-1, 0) = %s, expected (-1,0)", got)
	}
	if got := (Cell{X: 2, Y: 1}).Step(MoveUp); got != (Cell{X: 2, Y: 0}) {
		t.Errorf("Step(up) = %s", got)
	}
}
