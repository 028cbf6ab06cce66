package engine

import (
	"fmt"

	"nogo/agent"
	"nogo/game"
	"nogo/utils"

	"github.com/rs/zerolog/log"
)

// LocalOption configures a local engine.
type LocalOption func(*localEngine)

// WithVerbose renders the board after every placement.
func WithVerbose() LocalOption {
	return func(e *localEngine) {
		e.verbose = true
	}
}

type localEngine struct {
	size    int
	roles   [2]game.Color
	agents  [2]agent.Agent
	verbose bool
}

// LocalEngine wires two agents into one in-process game on a size*size
// board. The agents must cover black and white between them, in any order.
func LocalEngine(size int, a, b agent.Agent, options ...LocalOption) (Engine, error) {
	if size < 2 {
		return nil, fmt.Errorf("invalid board size %d", size)
	}
	if a.Role() == b.Role() {
		return nil, fmt.Errorf("both agents play %s", a.Role())
	}
	for _, ag := range []agent.Agent{a, b} {
		if ag.Role() != game.Black && ag.Role() != game.White {
			return nil, fmt.Errorf("agent %s has no side", ag.Name())
		}
	}

	e := &localEngine{
		size:   size,
		roles:  [2]game.Color{a.Role(), b.Role()},
		agents: [2]agent.Agent{a, b},
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Run plays one episode. A side loses when it has no legal placement left or
// when it returns a placement the rules reject.
func (e *localEngine) Run() Result {
	state := game.NewPosition(e.size)

	for _, ag := range e.agents {
		ag.OpenEpisode()
	}
	defer func() {
		for _, ag := range e.agents {
			ag.CloseEpisode()
		}
	}()

	log.Info().
		Int("size", e.size).
		Str("black", e.agentFor(game.Black).Name()).
		Str("white", e.agentFor(game.White).Name()).
		Msg("episode started")

	var result Result
	limit := e.size * e.size
	for step := 1; ; step++ {
		if result.Moves >= limit {
			// Every cell is occupied yet neither side starved; the rules
			// make this unreachable, so stop rather than loop.
			log.Error().Int("moves", result.Moves).Msg("board exhausted without a loser")
			result.Winner = state.Turn().Opponent()
			break
		}
		side := state.Turn()
		current := e.agentFor(side)

		move, ok := current.TakeAction(state)
		if !ok {
			// Out of placements: the opponent wins.
			result.Winner = side.Opponent()
			break
		}

		next, verdict := state.Apply(move)
		if verdict != game.Legal {
			log.Error().
				Str("agent", current.Name()).
				Stringer("move", move).
				Stringer("verdict", verdict).
				Msg("agent played an illegal move, forfeiting")
			result.Winner = side.Opponent()
			break
		}
		state = next
		result.Moves++

		if p, ok := current.(*agent.Player); ok {
			// No collector means the agent picked without searching; an
			// empty record would only pollute the experiment output.
			if collector := p.Metrics(); collector != nil {
				result.MoveMetrics = append(result.MoveMetrics, MoveMetric{
					Step:          step,
					Player:        side,
					SearchMetrics: collector.Complete(),
				})
			}
		}

		if e.verbose {
			fmt.Printf("%d. %v\n%s", step, move, Render(state))
		}
	}

	log.Info().
		Stringer("winner", result.Winner).
		Int("moves", result.Moves).
		Msg("episode finished")

	return result
}

// agentFor finds the agent playing a side.
func (e *localEngine) agentFor(side game.Color) agent.Agent {
	i := utils.FindIndex(e.roles[:], side)
	return e.agents[i]
}
