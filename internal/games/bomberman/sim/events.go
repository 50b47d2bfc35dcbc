package sim

// Event is something that happened during a tick. Each Tick returns the
// events it produced; the simulation itself keeps no score.
type Event interface {
	event()
}

// LevelStarted is emitted when a level has been generated and play begins.
type LevelStarted struct {
	Level   int // 0-indexed
	Enemies int
}

// LevelFinished is emitted once the player's exit animation has finished.
type LevelFinished struct {
	Level int
	Last  bool // no further level follows
}

// GameOver is emitted once the player's death animation has finished.
type GameOver struct {
	Level int
}

// Victory is emitted after the transition that follows the last level.
type Victory struct {
	Level int
}

// EnemyKilled carries the score delta for a defeated enemy.
type EnemyKilled struct {
	Kind   EnemyKind
	Cell   Cell
	Points int
}

// PickupCollected carries the score delta for a collected power-up.
type PickupCollected struct {
	Type   PowerUpType
	Cell   Cell
	Points int
}

// BombPlaced is emitted when a bomb is planted.
type BombPlaced struct {
	Cell   Cell
	Radius int
}

// BombExploded is emitted when a bomb's explosion is built.
type BombExploded struct {
	Cell  Cell
	Cells int
}

// TileDestroyed is emitted when an explosion starts destroying a block.
type TileDestroyed struct {
	Cell Cell
}

// PickupDestroyed is emitted when a blast burns an uncollected pickup.
type PickupDestroyed struct {
	Type PowerUpType
	Cell Cell
}

// PlayerDamaged is emitted when the player loses a hit point.
type PlayerDamaged struct {
	HP int
}

// ExitReached is emitted when the player steps onto the open exit.
type ExitReached struct{}

func (LevelStarted) event()    {}
func (LevelFinished) event()   {}
func (GameOver) event()        {}
func (Victory) event()         {}
func (EnemyKilled) event()     {}
func (PickupCollected) event() {}
func (BombPlaced) event()      {}
func (BombExploded) event()    {}
func (TileDestroyed) event()   {}
func (PickupDestroyed) event() {}
func (PlayerDamaged) event()   {}
func (ExitReached) event()     {}
