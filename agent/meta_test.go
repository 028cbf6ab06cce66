package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseMeta(t *testing.T) {
	t.Run("splits key=value pairs", func(t *testing.T) {
		m := ParseMeta("name=mcts role=black seed=7")

		require.Equal(t, "mcts", m.String("name", ""))
		require.Equal(t, "black", m.String("role", ""))
		require.Equal(t, "7", m.String("seed", ""))
	})

	t.Run("bare token is a presence flag", func(t *testing.T) {
		m := ParseMeta("role=white random")

		require.True(t, m.Has("random"))
		require.False(t, m.Has("n"))
	})

	t.Run("later pairs win", func(t *testing.T) {
		m := ParseMeta("name=a name=b")

		require.Equal(t, "b", m.String("name", ""))
	})
}

func TestMetaGetters(t *testing.T) {
	m := ParseMeta("n=100 c=0.5 schedule=100,50 bad=oops")

	t.Run("typed values parse", func(t *testing.T) {
		n, err := m.Int("n", 0)
		require.NoError(t, err)
		require.Equal(t, 100, n)

		c, err := m.Float("c", 0)
		require.NoError(t, err)
		require.InDelta(t, 0.5, c, 1e-9)

		schedule, err := m.Durations("schedule", nil)
		require.NoError(t, err)
		require.Equal(t, []time.Duration{100 * time.Millisecond, 50 * time.Millisecond}, schedule)
	})

	t.Run("absent keys fall back to defaults", func(t *testing.T) {
		n, err := m.Int("missing", 42)
		require.NoError(t, err)
		require.Equal(t, 42, n)
	})

	t.Run("malformed values are errors, not defaults", func(t *testing.T) {
		_, err := m.Int("bad", 0)
		require.Error(t, err)

		_, err = m.Float("bad", 0)
		require.Error(t, err)

		_, err = ParseMeta("schedule=10,oops").Durations("schedule", nil)
		require.Error(t, err)

		_, err = ParseMeta("schedule=0").Durations("schedule", nil)
		require.Error(t, err, "Non-positive allowances are rejected")
	})
}
