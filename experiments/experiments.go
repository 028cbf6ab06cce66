package experiments

import (
	"fmt"
	"strings"
	"time"

	"nogo/agent"
	"nogo/engine"
	"nogo/experiments/metrics"
	"nogo/game"
	"nogo/meta"

	"github.com/rs/zerolog/log"
)

const (
	NumGames   = 30  // Per match up
	TimeBudget = 100 // Milliseconds per move
)

// The exploration sweep runs on a fixed cycle budget so the comparison
// between c values does not depend on the host's playout throughput.
var explorationConfigs = []metrics.AgentConfig{
	{ID: 1, C: 0.1, Episodes: meta.EPISODES},
	{ID: 2, C: 0.3, Episodes: meta.EPISODES},
	{ID: 3, C: 0.5, Episodes: meta.EPISODES},
	{ID: 4, C: 1.0, Episodes: meta.EPISODES},
	{ID: 5, C: 1.4, Episodes: meta.EPISODES},
}

// RunExplorationExperiment pits exploration-weight variants against the
// default-c baseline.
func RunExplorationExperiment() error {
	baseline := metrics.AgentConfig{ID: 0, C: meta.EXPLORATION_C, Episodes: meta.EPISODES}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range explorationConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment("exploration", append(explorationConfigs, baseline), matchUps)
}

// RunBaselineExperiment measures the searcher against the plain random
// fallback policy.
func RunBaselineExperiment() error {
	searchers := metrics.AgentConfig{ID: 1, C: meta.EXPLORATION_C, TimeMs: TimeBudget}
	random := metrics.AgentConfig{ID: 2, Random: true}
	matchUps := [][2]metrics.AgentConfig{
		{searchers, random},
		{random, searchers},
	}

	return runExperiment("baseline", []metrics.AgentConfig{searchers, random}, matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) error {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...",
			mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < NumGames; i++ {
			start := time.Now()
			result, err := runGame(matchup[0], matchup[1], count+1)
			if err != nil {
				return err
			}
			count++

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:        count,
				Agent1:    matchup[0].ID,
				Agent2:    matchup[1].ID,
				Winner:    result.Winner,
				Moves:     result.Moves,
				StartTime: start,
				Duration:  time.Since(start),
			})
			for _, mm := range result.MoveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:          count,
					Step:          mm.Step,
					Player:        mm.Player,
					SearchMetrics: mm.SearchMetrics,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s",
				mi+1, len(matchUps), i+1, NumGames, result.Winner)
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}

	log.Info().Msgf("completed %s experiment with %d games", name, count)
	return nil
}

// runGame plays one game, agent1 as black and agent2 as white. The game
// index perturbs the seeds so repeated games differ while staying
// reproducible.
func runGame(config1, config2 metrics.AgentConfig, gameIndex int) (engine.Result, error) {
	black, err := agent.NewPlayer(agentArgs(config1, game.Black, gameIndex))
	if err != nil {
		return engine.Result{}, err
	}
	white, err := agent.NewPlayer(agentArgs(config2, game.White, gameIndex))
	if err != nil {
		return engine.Result{}, err
	}

	e, err := engine.LocalEngine(meta.BOARD_SIZE, black, white)
	if err != nil {
		return engine.Result{}, err
	}
	return e.Run(), nil
}

// agentArgs renders one config as the key=value string NewPlayer consumes.
func agentArgs(config metrics.AgentConfig, who game.Color, gameIndex int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "name=agent%d role=%s seed=%d", config.ID, who, config.Seed+gameIndex)
	if config.Random {
		b.WriteString(" random")
		return b.String()
	}
	fmt.Fprintf(&b, " c=%g", config.C)
	if config.Episodes > 0 {
		fmt.Fprintf(&b, " n=%d", config.Episodes)
	} else if config.TimeMs > 0 {
		fmt.Fprintf(&b, " schedule=%d", config.TimeMs)
	}
	return b.String()
}
