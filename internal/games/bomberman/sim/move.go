package sim

// Move is one of the four unit directions.
type Move int

const (
	MoveLeft Move = iota
	MoveUp
	MoveRight
	MoveDown
)

// Moves lists every direction in a fixed order.
var Moves = [...]Move{MoveLeft, MoveUp, MoveRight, MoveDown}

// Delta returns the unit vector for the direction.
func (m Move) Delta() (dx, dy int) {
	switch m {
	case MoveLeft:
		return -1, 0
	case MoveUp:
		return 0, -1
	case MoveRight:
		return 1, 0
	case MoveDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns the direction name.
func (m Move) String() string {
	switch m {
	case MoveLeft:
		return "left"
	case MoveUp:
		return "up"
	case MoveRight:
		return "right"
	case MoveDown:
		return "down"
	default:
		return "none"
	}
}
