package sim

// TileView is the copied state of one grid cell.
type TileView struct {
	Type TileType
	Hit  bool
}

// BombView is the copied state of a bomb.
type BombView struct {
	Cell             Cell
	Radius           int
	State            BombState
	CollisionEnabled bool
}

// ExplosionView is the copied state of an explosion.
type ExplosionView struct {
	Origin Cell
	Cells  []Cell
}

// PickupView is the copied state of a power-up. Hidden pickups are still
// under a block.
type PickupView struct {
	Cell   Cell
	Type   PowerUpType
	Hidden bool
}

// EnemyView is the copied state of an enemy.
type EnemyView struct {
	ID      int
	Kind    EnemyKind
	X, Y    int
	Cell    Cell
	HP      int
	Dir     Move
	State   LifeState
	Alive   bool
	Damaged bool
}

// PlayerView is the copied state of the player.
type PlayerView struct {
	X, Y          int
	Cell          Cell
	HP            int
	Speed         int
	MaxBombs      int
	Bombs         int
	Radius        int
	Dir           Move
	State         LifeState
	Alive         bool
	Damaged       bool
	LevelFinished bool
}

// Snapshot is a deep copy of everything the presentation needs for a frame.
// It shares no memory with the World.
type Snapshot struct {
	Tick       uint64
	Level      int
	Levels     int
	Phase      Phase
	Cols       int
	Rows       int
	TileSize   int
	Tiles      [][]TileView // [row][col]
	Bombs      []BombView
	Explosions []ExplosionView
	Pickups    []PickupView
	Enemies    []EnemyView
	Exit       Cell
	ExitOpen   bool // no enemy remains
	ExitHidden bool // still under a block
	Player     PlayerView
}

// Snapshot copies the current state.
func (w *World) Snapshot() Snapshot {
	f := w.floor
	g := f.grid
	s := Snapshot{
		Tick:     w.tick,
		Level:    w.level,
		Levels:   w.cfg.Levels(),
		Phase:    w.phase,
		Cols:     g.Cols(),
		Rows:     g.Rows(),
		TileSize: w.cfg.TileSize,
		Exit:     f.exit.Cell,
		ExitOpen: len(f.enemies) == 0,
	}
	s.ExitHidden = g.TypeAt(f.exit.Cell) != TileFloor

	s.Tiles = make([][]TileView, g.Rows())
	for y := range s.Tiles {
		row := make([]TileView, g.Cols())
		for x := range row {
			t := g.At(Cell{X: x, Y: y})
			row[x] = TileView{Type: t.Type, Hit: t.Hit}
		}
		s.Tiles[y] = row
	}

	for _, b := range f.bombs {
		s.Bombs = append(s.Bombs, BombView{
			Cell:             b.Cell,
			Radius:           b.Radius,
			State:            b.State,
			CollisionEnabled: b.CollisionEnabled,
		})
	}
	for _, e := range f.explosions {
		s.Explosions = append(s.Explosions, ExplosionView{Origin: e.Origin, Cells: e.Cells()})
	}
	for _, pu := range f.pickups {
		if pu.Collected {
			continue
		}
		s.Pickups = append(s.Pickups, PickupView{
			Cell:   pu.Cell,
			Type:   pu.Type,
			Hidden: g.TypeAt(pu.Cell) != TileFloor,
		})
	}
	for _, e := range f.enemies {
		s.Enemies = append(s.Enemies, EnemyView{
			ID:      e.ID,
			Kind:    e.Kind,
			X:       e.X,
			Y:       e.Y,
			Cell:    e.Cell(),
			HP:      e.HP,
			Dir:     e.Dir,
			State:   e.State,
			Alive:   e.Alive,
			Damaged: e.Damaged,
		})
	}

	p := w.player
	s.Player = PlayerView{
		X:             p.X,
		Y:             p.Y,
		Cell:          p.Cell(),
		HP:            p.HP,
		Speed:         p.Speed,
		MaxBombs:      p.MaxBombs,
		Bombs:         p.Bombs,
		Radius:        p.Radius,
		Dir:           p.Dir,
		State:         p.State,
		Alive:         p.Alive,
		Damaged:       p.Damaged,
		LevelFinished: p.LevelFinished,
	}
	return s
}

// AliveEnemies counts living enemies in the snapshot.
func (s Snapshot) AliveEnemies() int {
	n := 0
	for _, e := range s.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}
