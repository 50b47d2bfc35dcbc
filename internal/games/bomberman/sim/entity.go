package sim

// LifeState is the animation/life state shared by the player and enemies.
type LifeState int

const (
	StateIdle LifeState = iota
	StateWalking
	StateDying
	StateHit
	StateWinning
)

// String returns the state name.
func (s LifeState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateDying:
		return "dying"
	case StateHit:
		return "hit"
	case StateWinning:
		return "winning"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state never changes again within a level.
func (s LifeState) Terminal() bool {
	return s == StateDying || s == StateWinning
}

// snapToCell returns the top-left pixel of the cell holding the center of
// an entity whose box starts at (x, y).
func snapToCell(x, y, w, h, tileSize int) (int, int) {
	cx := (x + w/2) / tileSize * tileSize
	cy := (y + h/2) / tileSize * tileSize
	return cx, cy
}
