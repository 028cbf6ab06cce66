package experiments

import (
	"testing"

	"nogo/experiments/metrics"
	"nogo/game"
	"nogo/meta"

	"github.com/stretchr/testify/require"
)

func TestAgentArgs(t *testing.T) {
	t.Run("renders a fixed cycle budget", func(t *testing.T) {
		config := metrics.AgentConfig{ID: 3, C: 0.5, Episodes: meta.EPISODES, Seed: 100}

		args := agentArgs(config, game.Black, 7)

		require.Equal(t, "name=agent3 role=black seed=107 c=0.5 n=1000", args)
	})

	t.Run("renders a time budget when no cycle budget is set", func(t *testing.T) {
		config := metrics.AgentConfig{ID: 1, C: 0.3, TimeMs: TimeBudget}

		args := agentArgs(config, game.White, 1)

		require.Contains(t, args, "schedule=100")
		require.NotContains(t, args, "n=")
	})

	t.Run("renders a random agent without search settings", func(t *testing.T) {
		config := metrics.AgentConfig{ID: 2, Random: true}

		args := agentArgs(config, game.White, 1)

		require.Contains(t, args, "random")
		require.NotContains(t, args, "c=")
		require.NotContains(t, args, "schedule=")
	})
}

func TestExplorationConfigs(t *testing.T) {
	// The c comparison must not depend on host speed, so every variant
	// carries the same fixed cycle budget.
	for _, config := range explorationConfigs {
		require.Equal(t, meta.EPISODES, config.Episodes)
	}
}
