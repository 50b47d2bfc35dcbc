package sim

import (
	"math/rand"
	"testing"
	"time"
)

func TestEnemyBox(t *testing.T) {
	f := openFloor(DefaultConfig())
	e := f.AddEnemy(Denkyun, Cell{X: 3, Y: 3}, rand.New(rand.NewSource(1)))

	if e.Box.X != 3*48+7 || e.Box.Y != 3*48 || e.Box.W != 36 || e.Box.H != 33 {
		t.Errorf("box = %+v", e.Box)
	}
	if e.Cell() != (Cell{X: 3, Y: 3}) {
		t.Errorf("cell = %s, expected (3,3)", e.Cell())
	}
	if e.HP != 2 || e.Speed != 2 || !e.Moving || !e.Alive {
		t.Errorf("enemy = %+v", e)
	}
}

func TestEnemyKindTable(t *testing.T) {
	tests := []struct {
		kind   EnemyKind
		hp     int
		points int
	}{
		{Puropen, 1, 100},
		{Denkyun, 2, 400},
	}
	for _, tc := range tests {
		if tc.kind.HP() != tc.hp || tc.kind.Points() != tc.points {
			t.Errorf("%s: hp %d points %d", tc.kind, tc.kind.HP(), tc.kind.Points())
		}
	}
}

func TestEnemyTurnPicksAnotherDirection(t *testing.T) {
	f := openFloor(DefaultConfig())
	rng := rand.New(rand.NewSource(5))
	e := f.AddEnemy(Puropen, Cell{X: 5, Y: 5}, rng)

	seen := map[Move]bool{}
	for i := 0; i < 200; i++ {
		before := e.Dir
		e.turn(rng)
		if e.Dir == before {
			t.Fatalf("turn kept direction %s", before)
		}
		seen[e.Dir] = true
	}
	if len(seen) != len(Moves) {
		t.Errorf("turn reached %d directions, expected all %d", len(seen), len(Moves))
	}
}

func TestEnemyTurnsWhenBlocked(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnemyTurnChance = 0
	f := NewFloor(cfg)
	f.SetGrid(openGrid(cfg.Cols, cfg.Rows))
	rng := rand.New(rand.NewSource(2))
	e := f.AddEnemy(Puropen, Cell{X: 1, Y: 1}, rng)
	e.Dir = MoveUp

	e.Update(time.Now(), 1, rng)
	if e.Dir == MoveUp {
		t.Error("enemy facing the border should turn")
	}
	if e.Y != cfg.TileSize || e.X != cfg.TileSize {
		t.Errorf("blocked enemy moved to (%d,%d)", e.X, e.Y)
	}
}

func TestEnemyWalksWhenClear(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnemyTurnChance = 0
	f := NewFloor(cfg)
	f.SetGrid(openGrid(cfg.Cols, cfg.Rows))
	rng := rand.New(rand.NewSource(2))
	e := f.AddEnemy(Puropen, Cell{X: 1, Y: 1}, rng)
	e.Dir = MoveRight

	e.Update(time.Now(), 1, rng)
	if e.X != cfg.TileSize+e.Speed || e.Dir != MoveRight {
		t.Errorf("enemy at x=%d dir %s, expected one step right", e.X, e.Dir)
	}
	if e.Box.X != e.X+enemyInsetX {
		t.Errorf("box x = %d does not follow the inset", e.Box.X)
	}
}

func TestEnemyBlockedByBombAndOthers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnemyTurnChance = 0
	f := NewFloor(cfg)
	f.SetGrid(openGrid(cfg.Cols, cfg.Rows))
	rng := rand.New(rand.NewSource(4))

	e := f.AddEnemy(Puropen, Cell{X: 3, Y: 1}, rng)
	e.Dir = MoveLeft
	e.X = 3*cfg.TileSize - 6 // box one pixel right of the bomb
	e.Box = e.Box.MoveTo(e.X+enemyInsetX, e.Y)
	b := f.PlaceBomb(Cell{X: 2, Y: 1}, 1, nil)
	b.CollisionEnabled = false

	e.Update(time.Now(), 1, rng)
	if e.Dir == MoveLeft {
		t.Error("enemy should treat every bomb as solid")
	}

	other := f.AddEnemy(Puropen, Cell{X: 5, Y: 1}, rng)
	other.Dir = MoveLeft
	f.bombs = nil
	e.Dir = MoveRight
	e.X = 4*cfg.TileSize + 11 // box edge one pixel short of the other enemy
	e.Box = e.Box.MoveTo(e.X+enemyInsetX, e.Y)
	e.Update(time.Now(), 2, rng)
	if e.Dir == MoveRight {
		t.Error("enemy should turn away from another living enemy")
	}
}

func TestDyingEnemyNeverMoves(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnemyTurnChance = 0
	f := NewFloor(cfg)
	f.SetGrid(openGrid(cfg.Cols, cfg.Rows))
	rng := rand.New(rand.NewSource(9))
	e := f.AddEnemy(Puropen, Cell{X: 5, Y: 5}, rng)
	e.Dir = MoveRight
	f.explosions = append(f.explosions, CastExplosion(f.grid, Cell{X: 5, Y: 5}, 1))

	now := time.Now()
	if !e.Update(now, 1, rng) {
		t.Fatal("one-hit enemy in a blast should die")
	}
	x, y := e.X, e.Y
	f.explosions = nil
	for i := 0; i < 50; i++ {
		if e.Update(now.Add(time.Duration(i)*time.Second), uint64(i+2), rng) {
			t.Fatal("dead enemy reported killed twice")
		}
	}
	if e.X != x || e.Y != y || e.State != StateDying || e.Alive {
		t.Errorf("dying enemy changed: (%d,%d) state %s alive %v", e.X, e.Y, e.State, e.Alive)
	}
}

func TestEnemyHitCooldown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnemyTurnChance = 0
	f := NewFloor(cfg)
	f.SetGrid(openGrid(cfg.Cols, cfg.Rows))
	rng := rand.New(rand.NewSource(9))
	e := f.AddEnemy(Denkyun, Cell{X: 5, Y: 5}, rng)
	e.Moving = false
	f.explosions = append(f.explosions, CastExplosion(f.grid, Cell{X: 5, Y: 5}, 1))

	now := time.Now()
	if e.Update(now, 1, rng) {
		t.Fatal("two-hit enemy should survive the first hit")
	}
	if e.HP != 1 || !e.Damaged {
		t.Errorf("hp = %d damaged = %v", e.HP, e.Damaged)
	}
	if e.Update(now.Add(time.Second), 2, rng) {
		t.Fatal("second hit inside the cooldown must not land")
	}
	if !e.Update(now.Add(cfg.EnemyHitCooldown), 3, rng) {
		t.Error("hit after the cooldown should kill")
	}
}
