package game

import "fmt"

// Move is a placement of one stone: a board cell index plus the side placing
// it. The zero-ish sentinel NoMove signals "no legal placement". Move is
// comparable and cheap to copy, so it doubles as the key of the shared
// action-statistics table in the searcher.
type Move struct {
	Pos   int16
	Color Color
}

// NoMove is the sentinel returned when a side has no legal placement, and the
// move stored on a search tree root.
var NoMove = Move{Pos: -1}

// Place builds a move at a cell index for a side.
func Place(pos int, c Color) Move {
	return Move{Pos: int16(pos), Color: c}
}

// Valid reports whether the move names an actual cell.
func (m Move) Valid() bool {
	return m.Pos >= 0
}

// String renders the move as side plus cell index, e.g. "B[42]". The move
// does not know the board size, so no letter-number coordinate is derived.
func (m Move) String() string {
	if !m.Valid() {
		return "none"
	}
	side := "B"
	if m.Color == White {
		side = "W"
	}
	return fmt.Sprintf("%s[%d]", side, m.Pos)
}
