package connectfour

// Cell is the content of a single board position.
type Cell uint8

const (
	Empty Cell = iota
	PlayerOne
	PlayerTwo
)

// String returns the symbol used when the board is rendered.
func (that Cell) String() string {
	switch that {
	case PlayerOne:
		return "X"
	case PlayerTwo:
		return "O"
	default:
		return "-"
	}
}

// IsPlayer reports whether the cell is owned by one of the two players.
func (that Cell) IsPlayer() bool {
	return that == PlayerOne || that == PlayerTwo
}

// Opponent returns the other player. Empty falls back to PlayerOne.
func (that Cell) Opponent() Cell {
	if that == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// Number is the 1-based player number shown to humans, 0 for Empty.
func (that Cell) Number() int {
	switch that {
	case PlayerOne:
		return 1
	case PlayerTwo:
		return 2
	default:
		return 0
	}
}
