package searcher

import (
	"time"

	"nogo/game"
	"nogo/meta"

	"golang.org/x/exp/rand"
)

// MCTS drives the search for one agent: a fresh tree per decision, a shared
// action-statistics table per episode, and one seedable random generator for
// shuffles, tie-breaking and playouts. Nothing here is safe to share across
// concurrent Decide calls; the whole search is strictly sequential and
// single-owner.
type MCTS struct {
	size     int
	c        float64
	weights  [4]float64
	episodes int
	schedule []time.Duration
	rng      *rand.Rand
	metrics  Collector

	stats actionTable
	ply   int

	blackSpace []game.Move
	whiteSpace []game.Move
}

type Option func(*MCTS)

// WithEpisodes fixes the budget to a cycle count instead of the per-ply
// wall-clock schedule.
func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

// WithSchedule replaces the per-ply wall-clock allowance table. Plies past
// the end of the table reuse its last entry.
func WithSchedule(schedule []time.Duration) Option {
	return func(m *MCTS) {
		if len(schedule) > 0 {
			m.schedule = schedule
		}
	}
}

// WithExploration sets the exploration weight c.
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		m.c = c
	}
}

// WithShapeWeights replaces the local-shape bonus tier table.
func WithShapeWeights(weights [4]float64) Option {
	return func(m *MCTS) {
		m.weights = weights
	}
}

// WithRand attaches the owning agent's random generator.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithMetrics enables per-decision metrics collection.
func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

// NewMCTS builds a searcher for a size*size board.
func NewMCTS(size int, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		size:       size,
		c:          meta.EXPLORATION_C,
		weights:    meta.ShapeWeights,
		schedule:   meta.DefaultSchedule,
		rng:        rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:    NewNoCollector(),
		stats:      newActionTable(),
		blackSpace: game.Moves(size, game.Black),
		whiteSpace: game.Moves(size, game.White),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// OpenEpisode resets the shared statistics table and the ply counter at the
// start of a new game.
func (m *MCTS) OpenEpisode() {
	m.stats.reset()
	m.ply = 0
}

// Metrics exposes the collector for callers that enabled it.
func (m *MCTS) Metrics() Collector {
	return m.metrics
}

// Decide runs one full search from state and returns the chosen move for the
// side to move. ok is false when that side has no legal placement; callers
// must treat that as the episode's terminal signal, not an error.
//
// Per decision: IDLE -> tree built -> searching -> decided -> torn down.
// The tree never outlives the call.
func (m *MCTS) Decide(state game.Position) (move game.Move, ok bool) {
	m.metrics.Start(m.ply)
	deadline := time.Now().Add(m.allowance())
	m.ply++

	t := newTree(state)
	defer t.release()

	rootSide := state.Turn()
	for cycle := 0; ; cycle++ {
		if m.episodes > 0 {
			if cycle >= m.episodes {
				break
			}
		} else if cycle > 0 && !time.Now().Before(deadline) {
			// Time budget, checked only after at least one full cycle.
			break
		}

		leafID := m.selectLeaf(t)
		m.expand(t, leafID)

		// Simulate one of the just-created children, picked uniformly, or
		// the leaf itself when it has no legal continuation.
		simID := leafID
		if children := t.at(leafID).children; len(children) > 0 {
			simID = children[m.rng.Intn(len(children))]
		}
		winner := m.rollout(t.at(simID).state)

		result := Loss
		if winner == rootSide {
			result = Win
		}
		m.backpropagate(t, simID, result)
		m.metrics.AddCycle()

		if len(t.root().children) == 0 {
			// No legal placement from the root; searching cannot help.
			break
		}
	}

	m.metrics.SetTreeSize(t.size())

	best := m.bestRootMove(t)
	return best, best.Valid()
}

// allowance is the wall-clock budget for the current ply.
func (m *MCTS) allowance() time.Duration {
	if len(m.schedule) == 0 {
		return 0
	}
	return m.schedule[min(m.ply, len(m.schedule)-1)]
}

// expand populates leaf with one child per legal continuation, each caching
// the resulting position. A leaf that stays childless is terminal. Selection
// only ever returns childless nodes, so re-expansion cannot happen; the
// guard keeps a misuse from corrupting child lists.
func (m *MCTS) expand(t *tree, leafID int) {
	if len(t.at(leafID).children) > 0 {
		return
	}

	state := t.at(leafID).state
	for _, mv := range m.space(state.Turn()) {
		if next, verdict := state.Apply(mv); verdict == game.Legal {
			t.add(leafID, mv, next)
		}
	}
}

// backpropagate walks from the simulated node up to the root, adding the
// playout result to the shared statistic of every edge on the path and to
// each node's own counters, then credits the root once. Statistics for a
// move accumulate across every branch that reaches it, not just this path's
// physical nodes.
func (m *MCTS) backpropagate(t *tree, id int, result int) {
	for id != rootID {
		n := t.at(id)
		n.visits++
		n.wins += result
		m.stats.record(n.move, result)
		id = n.parent
	}

	root := t.root()
	root.visits++
	root.wins += result
}
