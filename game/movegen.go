package game

// Moves enumerates every placement for one side on a size*size board: the
// full fixed candidate set, one move per cell. Content is stable across
// calls; callers that need a random order permute their own copy.
func Moves(size int, c Color) []Move {
	moves := make([]Move, size*size)
	for i := range moves {
		moves[i] = Place(i, c)
	}
	return moves
}

// LegalMoves filters the full candidate set of the side to move down to the
// placements this position accepts. Used by the engine for terminal
// detection; the searcher filters inline to reuse the resulting positions.
func LegalMoves(p Position) []Move {
	var legal []Move
	for _, m := range Moves(p.Size(), p.Turn()) {
		if _, verdict := p.Apply(m); verdict == Legal {
			legal = append(legal, m)
		}
	}
	return legal
}
