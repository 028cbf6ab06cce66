package game

import "strings"

// Position is one immutable-by-convention NoGo board state: cell contents
// plus the side to move. Apply never mutates the receiver; it returns a fresh
// value, so positions cached on different search tree nodes never alias.
type Position struct {
	size  int
	cells []Color
	turn  Color
}

// NewPosition returns an empty size*size board with Black to move.
func NewPosition(size int) Position {
	return Position{
		size:  size,
		cells: make([]Color, size*size),
		turn:  Black,
	}
}

func (p Position) Size() int { return p.size }

// Turn is the side to move.
func (p Position) Turn() Color { return p.turn }

// Cell returns the content of a cell index, or Empty when out of range.
func (p Position) Cell(pos int) Color {
	if pos < 0 || pos >= len(p.cells) {
		return Empty
	}
	return p.cells[pos]
}

// Cells is the number of cells on the board.
func (p Position) Cells() int { return len(p.cells) }

func (p Position) clone() Position {
	cells := make([]Color, len(p.cells))
	copy(cells, p.cells)
	return Position{size: p.size, cells: cells, turn: p.turn}
}

// Apply checks m against this position and, when legal, returns the resulting
// position with the turn flipped. The receiver is left untouched on every
// path. This is the single legality authority: search, playouts and the
// engine all go through it.
func (p Position) Apply(m Move) (Position, Legality) {
	if m.Color != p.turn {
		return p, IllegalTurn
	}
	pos := int(m.Pos)
	if pos < 0 || pos >= len(p.cells) {
		return p, IllegalOutOfRange
	}
	if p.cells[pos] != Empty {
		return p, IllegalOccupied
	}

	next := p.clone()
	next.cells[pos] = m.Color

	// Capturing is forbidden: no adjacent enemy chain may be left without a
	// liberty.
	enemy := m.Color.Opponent()
	for _, n := range next.neighbors(pos) {
		if next.cells[n] == enemy && !next.hasLiberty(n) {
			return p, IllegalTake
		}
	}

	// Neither may the placed stone's own chain.
	if !next.hasLiberty(pos) {
		return p, IllegalSuicide
	}

	next.turn = p.turn.Opponent()
	return next, Legal
}

// neighbors returns the orthogonal neighbor indices of pos.
func (p Position) neighbors(pos int) []int {
	buf := make([]int, 0, 4)
	x, y := pos%p.size, pos/p.size
	if x > 0 {
		buf = append(buf, pos-1)
	}
	if x < p.size-1 {
		buf = append(buf, pos+1)
	}
	if y > 0 {
		buf = append(buf, pos-p.size)
	}
	if y < p.size-1 {
		buf = append(buf, pos+p.size)
	}
	return buf
}

// hasLiberty flood-fills the chain containing pos and reports whether any
// stone of the chain touches an empty cell.
func (p Position) hasLiberty(pos int) bool {
	color := p.cells[pos]
	if color == Empty {
		return true
	}

	visited := make([]bool, len(p.cells))
	stack := []int{pos}
	visited[pos] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, n := range p.neighbors(cur) {
			switch {
			case p.cells[n] == Empty:
				return true
			case p.cells[n] == color && !visited[n]:
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	return false
}

// String renders the board row by row, top row first, '.' for empty cells.
func (p Position) String() string {
	var b strings.Builder
	for y := p.size - 1; y >= 0; y-- {
		for x := 0; x < p.size; x++ {
			switch p.cells[y*p.size+x] {
			case Black:
				b.WriteByte('X')
			case White:
				b.WriteByte('O')
			default:
				b.WriteByte('.')
			}
			if x < p.size-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
