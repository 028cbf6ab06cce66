package searcher

import "nogo/game"

// Local-shape heuristic. Layered on top of the UCT score to bias the search
// toward placements that keep their own liberties open and away from
// placements that clump same-color stones, which in NoGo burn the liberties
// that decide the endgame.
//
// Each cardinal direction around the candidate cell is classified by probing
// the one-step and two-step neighbors on the parent state:
//
//   - one-step cell holds a same-color stone: the direction is "crowded";
//   - one-step cell is empty and the two-step cell holds a same-color stone:
//     a loose cluster, counted as neither open nor crowded;
//   - one-step cell is empty otherwise: the direction is "open";
//   - off-board or enemy-occupied: ignored.
//
// The bonus is weights[open] - weights[crowded], both capped at tier 3. The
// weight tiers are preserved tuning values, not derived.

// shapeBonus scores candidate on the position it would be played in. Bounded
// by +-weights[3].
func (m *MCTS) shapeBonus(parent game.Position, candidate game.Move) float64 {
	size := parent.Size()
	x := int(candidate.Pos) % size
	y := int(candidate.Pos) / size

	open, crowded := 0, 0
	for _, d := range directions {
		x1, y1 := x+d[0], y+d[1]
		if x1 < 0 || x1 >= size || y1 < 0 || y1 >= size {
			continue
		}
		switch parent.Cell(y1*size + x1) {
		case candidate.Color:
			crowded++
		case game.Empty:
			x2, y2 := x+2*d[0], y+2*d[1]
			if x2 >= 0 && x2 < size && y2 >= 0 && y2 < size &&
				parent.Cell(y2*size+x2) == candidate.Color {
				continue
			}
			open++
		}
	}

	return m.weights[min(open, 3)] - m.weights[min(crowded, 3)]
}
