package agent

import (
	"testing"

	"nogo/game"
	"nogo/meta"

	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	t.Run("builds from a valid argument string", func(t *testing.T) {
		p, err := NewPlayer("name=tester role=black seed=1 c=0.3 n=50 size=3")

		require.NoError(t, err)
		require.Equal(t, "tester", p.Name())
		require.Equal(t, game.Black, p.Role())
	})

	t.Run("reports the configured board size", func(t *testing.T) {
		p, err := NewPlayer("role=black size=5")
		require.NoError(t, err)
		require.Equal(t, 5, p.Size())

		p, err = NewPlayer("role=black")
		require.NoError(t, err)
		require.Equal(t, meta.BOARD_SIZE, p.Size())
	})

	t.Run("has a collector only when it searches", func(t *testing.T) {
		searching, err := NewPlayer("role=black seed=1 n=10 size=3")
		require.NoError(t, err)
		require.NotNil(t, searching.Metrics())

		random, err := NewPlayer("role=black seed=1 size=3 random")
		require.NoError(t, err)
		require.Nil(t, random.Metrics(),
			"A random player runs no search to measure")
	})

	t.Run("rejects reserved characters in the name", func(t *testing.T) {
		_, err := NewPlayer("name=bad[name] role=black")

		require.Error(t, err)
		require.Contains(t, err.Error(), "reserved")
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		_, err := NewPlayer("name=x role=purple")
		require.Error(t, err)

		_, err = NewPlayer("name=x")
		require.Error(t, err, "A missing role must not default")
	})

	t.Run("rejects malformed numeric values", func(t *testing.T) {
		_, err := NewPlayer("role=black c=abc")
		require.Error(t, err)

		_, err = NewPlayer("role=black seed=1.5")
		require.Error(t, err)

		_, err = NewPlayer("role=black size=1")
		require.Error(t, err)
	})
}

func TestTakeAction(t *testing.T) {
	t.Run("search picks a legal move", func(t *testing.T) {
		p, err := NewPlayer("role=black seed=3 n=50 size=3")
		require.NoError(t, err)
		state := game.NewPosition(3)

		p.OpenEpisode()
		move, ok := p.TakeAction(state)

		require.True(t, ok)
		_, verdict := state.Apply(move)
		require.Equal(t, game.Legal, verdict)
	})

	t.Run("is deterministic under one seed", func(t *testing.T) {
		state := game.NewPosition(3)
		args := "role=black seed=42 n=100 size=3"

		p1, err := NewPlayer(args)
		require.NoError(t, err)
		p2, err := NewPlayer(args)
		require.NoError(t, err)

		p1.OpenEpisode()
		p2.OpenEpisode()
		m1, ok1 := p1.TakeAction(state)
		m2, ok2 := p2.TakeAction(state)

		require.True(t, ok1)
		require.True(t, ok2)
		require.Equal(t, m1, m2)
	})

	t.Run("random fallback skips the search", func(t *testing.T) {
		p, err := NewPlayer("role=black seed=5 size=3 random")
		require.NoError(t, err)
		state := game.NewPosition(3)

		move, ok := p.TakeAction(state)

		require.True(t, ok)
		_, verdict := state.Apply(move)
		require.Equal(t, game.Legal, verdict)
	})

	t.Run("signals no move on an exhausted position", func(t *testing.T) {
		state := game.NewPosition(2)
		for _, mv := range []game.Move{
			game.Place(0, game.Black), game.Place(3, game.White), game.Place(1, game.Black),
		} {
			next, verdict := state.Apply(mv)
			require.Equal(t, game.Legal, verdict)
			state = next
		}

		p, err := NewPlayer("role=white seed=5 n=10 size=2")
		require.NoError(t, err)
		p.OpenEpisode()

		move, ok := p.TakeAction(state)

		require.False(t, ok)
		require.Equal(t, game.NoMove, move)
	})

	t.Run("refuses to act out of turn", func(t *testing.T) {
		p, err := NewPlayer("role=white seed=5 n=10 size=3")
		require.NoError(t, err)

		_, ok := p.TakeAction(game.NewPosition(3))

		require.False(t, ok, "Black to move, white agent must decline")
	})
}
