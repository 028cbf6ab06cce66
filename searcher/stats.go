package searcher

import "nogo/game"

// actionStat accumulates playout outcomes for one move. One record is shared
// by every tree node carrying that move as its edge label, regardless of
// where in the tree the node sits: separate branches that reach the "same"
// move pool their learning instead of starting cold.
type actionStat struct {
	total int
	win   int
}

// actionTable maps move identity to its shared statistic. It belongs to
// exactly one agent and is cleared once per episode.
type actionTable map[game.Move]*actionStat

func newActionTable() actionTable {
	return make(actionTable)
}

// get returns the statistic for m, or nil when the move has never been
// backpropagated. Callers must treat nil/zero total as "never visited".
func (t actionTable) get(m game.Move) *actionStat {
	return t[m]
}

// record adds one playout result (Win or Loss) to the statistic of m.
func (t actionTable) record(m game.Move, result int) {
	s := t[m]
	if s == nil {
		s = &actionStat{}
		t[m] = s
	}
	s.total++
	s.win += result
}

// reset drops every statistic at an episode boundary.
func (t actionTable) reset() {
	clear(t)
}
