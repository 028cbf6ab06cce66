package searcher

import (
	"testing"
	"time"

	"nogo/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// runCycles drives N full select->expand->simulate->backpropagate cycles on
// an externally owned tree, mirroring one Decide loop.
func runCycles(m *MCTS, tr *tree, n int) {
	rootSide := tr.root().state.Turn()
	for i := 0; i < n; i++ {
		leafID := m.selectLeaf(tr)
		m.expand(tr, leafID)

		simID := leafID
		if children := tr.at(leafID).children; len(children) > 0 {
			simID = children[m.rng.Intn(len(children))]
		}
		winner := m.rollout(tr.at(simID).state)

		result := Loss
		if winner == rootSide {
			result = Win
		}
		m.backpropagate(tr, simID, result)
	}
}

func TestExpand(t *testing.T) {
	t.Run("creates one child per legal continuation", func(t *testing.T) {
		m := NewMCTS(3, WithRand(newTestRand(1)))
		tr := newTree(game.NewPosition(3))

		m.expand(tr, rootID)

		require.Len(t, tr.root().children, 9,
			"Empty 3x3 board has 9 legal placements")
	})

	t.Run("children round-trip through the rules", func(t *testing.T) {
		m := NewMCTS(3, WithRand(newTestRand(1)))
		parent := game.NewPosition(3)
		tr := newTree(parent)

		m.expand(tr, rootID)

		for _, id := range tr.root().children {
			child := tr.at(id)
			replayed, verdict := parent.Apply(child.move)
			require.Equal(t, game.Legal, verdict)
			require.Equal(t, replayed.String(), child.state.String(),
				"Child state must equal parent state with its move applied")
			require.Equal(t, replayed.Turn(), child.state.Turn())
		}
	})

	t.Run("terminal leaf stays childless", func(t *testing.T) {
		state := game.NewPosition(2)
		for _, mv := range []game.Move{
			game.Place(0, game.Black), game.Place(3, game.White), game.Place(1, game.Black),
		} {
			state, _ = state.Apply(mv)
		}
		m := NewMCTS(2, WithRand(newTestRand(1)))
		tr := newTree(state)

		m.expand(tr, rootID)

		require.Empty(t, tr.root().children)
	})

	t.Run("never re-expands", func(t *testing.T) {
		m := NewMCTS(3, WithRand(newTestRand(1)))
		tr := newTree(game.NewPosition(3))

		m.expand(tr, rootID)
		m.expand(tr, rootID)

		require.Len(t, tr.root().children, 9, "Child list must not be duplicated")
	})
}

func TestBackpropagate(t *testing.T) {
	t.Run("credits the path and the shared table", func(t *testing.T) {
		m := NewMCTS(3, WithRand(newTestRand(1)))
		state := game.NewPosition(3)
		tr := newTree(state)
		m.expand(tr, rootID)
		childID := tr.root().children[0]
		m.expand(tr, childID)
		grandID := tr.at(childID).children[0]

		m.backpropagate(tr, grandID, Win)

		require.Equal(t, 1, tr.root().visits, "Root is credited once")
		require.Equal(t, 1, tr.root().wins)
		require.Equal(t, 1, m.stats.get(tr.at(childID).move).total)
		require.Equal(t, 1, m.stats.get(tr.at(grandID).move).total)
		require.Equal(t, 1, m.stats.get(tr.at(grandID).move).win)
	})

	t.Run("statistics pool across branches with the same move", func(t *testing.T) {
		m := NewMCTS(3, WithRand(newTestRand(1)))
		state := game.NewPosition(3)
		tr := newTree(state)
		m.expand(tr, rootID)

		// Two different root children both have subtrees containing the same
		// second-ply white move; its statistic must accumulate from both.
		firstID := tr.root().children[0]
		secondID := tr.root().children[1]
		m.expand(tr, firstID)
		m.expand(tr, secondID)

		shared := game.NoMove
		for _, a := range tr.at(firstID).children {
			for _, b := range tr.at(secondID).children {
				if tr.at(a).move == tr.at(b).move {
					shared = tr.at(a).move
					m.backpropagate(tr, a, Win)
					m.backpropagate(tr, b, Loss)
				}
			}
			if shared.Valid() {
				break
			}
		}

		require.True(t, shared.Valid(), "3x3 subtrees must share a move")
		require.Equal(t, 2, m.stats.get(shared).total,
			"One statistic accumulates across branches")
		require.Equal(t, 1, m.stats.get(shared).win)
	})
}

func TestStatisticsConservation(t *testing.T) {
	const cycles = 60
	m := NewMCTS(3, WithRand(newTestRand(3)))
	tr := newTree(game.NewPosition(3))
	defer tr.release()

	runCycles(m, tr, cycles)

	require.Equal(t, cycles, tr.root().visits,
		"Root total equals the number of cycles")

	for id := range tr.nodes {
		n := tr.at(id)
		require.GreaterOrEqual(t, n.visits, n.wins, "visits >= wins on every node")
		require.GreaterOrEqual(t, n.wins, 0)
	}

	// Every root child was visited at least once before scoring could ever
	// apply to it.
	require.GreaterOrEqual(t, cycles, len(tr.root().children))
	for _, id := range tr.root().children {
		stat := m.stats.get(tr.at(id).move)
		require.NotNil(t, stat)
		require.GreaterOrEqual(t, stat.total, 1,
			"No root child may reach final scoring unvisited")
	}
}

func TestDecide(t *testing.T) {
	t.Run("returns a legal move", func(t *testing.T) {
		m := NewMCTS(3, WithRand(newTestRand(5)), WithEpisodes(50))
		state := game.NewPosition(3)

		move, ok := m.Decide(state)

		require.True(t, ok)
		_, verdict := state.Apply(move)
		require.Equal(t, game.Legal, verdict)
	})

	t.Run("is deterministic under one seed", func(t *testing.T) {
		state := game.NewPosition(5)

		a, okA := NewMCTS(5, WithRand(newTestRand(9)), WithEpisodes(100)).Decide(state)
		b, okB := NewMCTS(5, WithRand(newTestRand(9)), WithEpisodes(100)).Decide(state)

		require.True(t, okA)
		require.True(t, okB)
		require.Equal(t, a, b, "Same seed, config and state must give the same move")
	})

	t.Run("signals no move on an exhausted position", func(t *testing.T) {
		state := game.NewPosition(2)
		for _, mv := range []game.Move{
			game.Place(0, game.Black), game.Place(3, game.White), game.Place(1, game.Black),
		} {
			state, _ = state.Apply(mv)
		}
		m := NewMCTS(2, WithRand(newTestRand(5)), WithEpisodes(10))

		move, ok := m.Decide(state)

		require.False(t, ok, "No legal placement is a terminal signal, not an error")
		require.Equal(t, game.NoMove, move)
	})

	t.Run("respects the wall-clock allowance", func(t *testing.T) {
		allowance := 50 * time.Millisecond
		m := NewMCTS(5, WithRand(newTestRand(5)), WithSchedule([]time.Duration{allowance}))

		start := time.Now()
		_, ok := m.Decide(game.NewPosition(5))
		elapsed := time.Since(start)

		require.True(t, ok)
		// Slack covers the cycle in flight when the deadline hits.
		require.Less(t, elapsed, allowance+500*time.Millisecond)
	})

	t.Run("episode reset clears learning", func(t *testing.T) {
		m := NewMCTS(3, WithRand(newTestRand(5)), WithEpisodes(20))
		_, ok := m.Decide(game.NewPosition(3))
		require.True(t, ok)
		require.NotEmpty(t, m.stats)

		m.OpenEpisode()

		require.Empty(t, m.stats, "Shared statistics reset at episode boundaries")
	})
}

func TestAllowance(t *testing.T) {
	schedule := []time.Duration{100 * time.Millisecond, 50 * time.Millisecond}
	m := NewMCTS(3, WithRand(newTestRand(1)), WithSchedule(schedule))

	require.Equal(t, schedule[0], m.allowance())
	m.ply = 1
	require.Equal(t, schedule[1], m.allowance())
	m.ply = 10
	require.Equal(t, schedule[1], m.allowance(), "Plies past the table reuse its last entry")
}
