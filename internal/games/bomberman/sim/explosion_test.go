package sim

import (
	"math/rand"
	"testing"
)

func TestExplosionAtSpawnCorner(t *testing.T) {
	g := openGrid(17, 13)
	e := CastExplosion(g, Cell{X: 1, Y: 1}, 1)

	want := []Cell{{1, 1}, {2, 1}, {1, 2}}
	if e.Len() != len(want) {
		t.Fatalf("Len() = %d, expected %d (cells %v)", e.Len(), len(want), e.Cells())
	}
	for _, c := range want {
		if !e.Contains(c) {
			t.Errorf("explosion should contain %s", c)
		}
	}
	for _, c := range []Cell{{0, 1}, {1, 0}} {
		if e.Contains(c) {
			t.Errorf("border wall %s must not be part of the blast", c)
		}
	}
}

func TestExplosionRays(t *testing.T) {
	g := openGrid(17, 13)
	origin := Cell{X: 5, Y: 5}
	g.SetType(Cell{X: 7, Y: 5}, TileBreakable) // right, two away
	g.SetType(Cell{X: 8, Y: 5}, TileBreakable) // behind the first block

	e := CastExplosion(g, origin, 4)

	tests := []struct {
		name string
		dir  Move
		want []Cell
	}{
		{"right stops on first block", MoveRight, []Cell{{6, 5}, {7, 5}}},
		{"left runs full radius", MoveLeft, []Cell{{4, 5}, {3, 5}, {2, 5}, {1, 5}}},
		{"up stops before pillar", MoveUp, []Cell{{5, 4}, {5, 3}, {5, 2}, {5, 1}}},
		{"down runs full radius", MoveDown, []Cell{{5, 6}, {5, 7}, {5, 8}, {5, 9}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ray := e.Ray(tc.dir)
			if len(ray) != len(tc.want) {
				t.Fatalf("ray = %v, expected %v", ray, tc.want)
			}
			for i := range ray {
				if ray[i] != tc.want[i] {
					t.Errorf("ray[%d] = %s, expected %s", i, ray[i], tc.want[i])
				}
			}
		})
	}

	if e.Contains(Cell{X: 8, Y: 5}) {
		t.Error("block behind the first block must not be reached")
	}
	if !e.Contains(origin) {
		t.Error("origin must always be included")
	}
}

func TestExplosionColumnPillars(t *testing.T) {
	g := openGrid(17, 13)
	// On an even column every odd step up/down is blocked by a pillar row.
	e := CastExplosion(g, Cell{X: 2, Y: 1}, 3)
	if len(e.Ray(MoveDown)) != 0 {
		t.Errorf("ray down from (2,1) should hit pillar (2,2) immediately, got %v", e.Ray(MoveDown))
	}
	if len(e.Ray(MoveUp)) != 0 {
		t.Errorf("ray up from (2,1) should hit the border, got %v", e.Ray(MoveUp))
	}
}

// Every ray is at most radius long and ends at the first non-Floor cell.
func TestExplosionRayProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 200; i++ {
		g := GenerateGrid(rng, 17, 13, 0.5)
		var origin Cell
		for {
			origin = Cell{X: rng.Intn(17), Y: rng.Intn(13)}
			if g.TypeAt(origin) == TileFloor {
				break
			}
		}
		radius := 1 + rng.Intn(4)
		e := CastExplosion(g, origin, radius)

		for _, m := range Moves {
			ray := e.Ray(m)
			if len(ray) > radius {
				t.Fatalf("ray %s from %s has %d cells, radius %d", m, origin, len(ray), radius)
			}
			for j, c := range ray {
				tt := g.TypeAt(c)
				if tt == TileUnbreakable {
					t.Fatalf("ray %s from %s includes unbreakable %s", m, origin, c)
				}
				if tt == TileBreakable && j != len(ray)-1 {
					t.Fatalf("ray %s from %s continues past breakable %s", m, origin, c)
				}
			}
		}
	}
}
