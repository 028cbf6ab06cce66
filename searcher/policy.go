package searcher

import (
	"math"

	"nogo/game"
)

// score is the desirability of one candidate edge: observed win rate of its
// shared statistic, the UCT exploration term against a reference total, and
// the local-shape bonus computed on the parent state.
//
// refTotal is the root's own visit count when the candidate's parent is the
// root, otherwise the shared total of the parent's move. A nil or zero-total
// statistic scores +Inf: the zero-visit-preference rule in selection should
// make that unreachable, but an unbounded preference beats trusting NaN
// propagation.
func (m *MCTS) score(stat *actionStat, refTotal int, parent game.Position, candidate game.Move) float64 {
	if stat == nil || stat.total == 0 {
		return math.Inf(1)
	}

	winRate := float64(stat.win) / float64(stat.total)
	exploration := math.Sqrt(math.Log(float64(refTotal)) / float64(stat.total))
	return winRate + m.c*exploration + m.shapeBonus(parent, candidate)
}

// selectLeaf descends from the root to a childless node: either one not yet
// expanded or a true terminal. At every internal node the children are
// shuffled first, so the mandatory preference for never-visited children is a
// uniform random pick among them; visited children compete on score.
func (m *MCTS) selectLeaf(t *tree) int {
	id := rootID
	for {
		n := t.at(id)
		if len(n.children) == 0 {
			return id
		}

		order := m.rng.Perm(len(n.children))

		refTotal := n.visits
		if id != rootID {
			if s := m.stats.get(n.move); s != nil {
				refTotal = s.total
			}
		}

		best := n.children[order[0]]
		bestScore := math.Inf(-1)
		for _, i := range order {
			childID := n.children[i]
			child := t.at(childID)
			stat := m.stats.get(child.move)
			if stat == nil || stat.total == 0 {
				// Every discovered move gets simulated once before it is
				// ever scored.
				best = childID
				break
			}
			if s := m.score(stat, refTotal, n.state, child.move); s > bestScore {
				bestScore = s
				best = childID
			}
		}

		id = best
	}
}

// bestRootMove scores every direct child of the root with the same rule used
// during selection and returns the winner's move. The search loop guarantees
// each child has total >= 1 by the time the budget can expire; a zero-total
// child would score +Inf and win outright, which is the defensive fallback.
func (m *MCTS) bestRootMove(t *tree) game.Move {
	root := t.root()
	if len(root.children) == 0 {
		return game.NoMove
	}

	best := t.at(root.children[0]).move
	bestScore := math.Inf(-1)
	for _, childID := range root.children {
		child := t.at(childID)
		s := m.score(m.stats.get(child.move), root.visits, root.state, child.move)
		if s > bestScore {
			bestScore = s
			best = child.move
		}
	}
	return best
}
