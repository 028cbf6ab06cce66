package game

// Color identifies a side, or the absence of a stone on a cell.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

// Opponent returns the other side. Empty maps to Empty.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

// ParseColor maps a role string to a side.
func ParseColor(role string) (Color, bool) {
	switch role {
	case "black":
		return Black, true
	case "white":
		return White, true
	}
	return Empty, false
}

// Legality is the verdict of applying a placement to a position.
type Legality int

const (
	Legal Legality = iota
	IllegalTurn
	IllegalOutOfRange
	IllegalOccupied
	// The placement would capture an enemy chain. NoGo forbids captures, so a
	// move that leaves any adjacent enemy chain without a liberty is illegal.
	IllegalTake
	// The placed stone's own chain would have no liberty.
	IllegalSuicide
)

func (l Legality) String() string {
	switch l {
	case Legal:
		return "legal"
	case IllegalTurn:
		return "illegal_turn"
	case IllegalOutOfRange:
		return "illegal_out_of_range"
	case IllegalOccupied:
		return "illegal_occupied"
	case IllegalTake:
		return "illegal_take"
	case IllegalSuicide:
		return "illegal_suicide"
	}
	return "unknown"
}
