package searcher

import "nogo/game"

// rollout plays a uniform-random game to completion from state and returns
// the winner. Each ply shuffles the full candidate set of the side to move
// and plays the first legal placement; a side with no legal placement loses.
// That is the only termination condition: every placement consumes an empty
// cell, so the loop runs at most Cells() plies.
//
// Legality comes from the same Apply used for real play, so simulated games
// can never diverge from the engine's rules.
func (m *MCTS) rollout(state game.Position) game.Color {
	for {
		moves := m.space(state.Turn())
		m.rng.Shuffle(len(moves), func(i, j int) {
			moves[i], moves[j] = moves[j], moves[i]
		})

		played := false
		for _, mv := range moves {
			if next, verdict := state.Apply(mv); verdict == game.Legal {
				state = next
				played = true
				break
			}
		}
		if !played {
			// The side to move is out of placements and loses.
			return state.Turn().Opponent()
		}
		m.metrics.AddPlayoutMove()
	}
}

// space returns the reusable scratch move set for one side. The set's content
// is fixed; its order is whatever the last shuffle left behind.
func (m *MCTS) space(c game.Color) []game.Move {
	if c == game.Black {
		return m.blackSpace
	}
	return m.whiteSpace
}
