package agent

import (
	"fmt"
	"strings"
	"time"

	"nogo/game"
	"nogo/meta"
	"nogo/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// reservedNameChars may not appear in an agent name; names are echoed into
// tournament records where these characters act as delimiters.
const reservedNameChars = "[]():; "

// Player is the search-backed agent: it owns one seedable random generator,
// one MCTS instance and the full candidate move set of its side. With the
// "random" flag it degrades to shuffle-and-first-legal without searching.
type Player struct {
	name   string
	who    game.Color
	size   int
	random bool

	rng   *rand.Rand
	mcts  *searcher.MCTS
	space []game.Move
}

// NewPlayer builds a player from a key=value argument string. Recognized
// keys: name, role (black|white), size, seed, c, n, schedule (comma list of
// milliseconds), random. Invalid configuration is rejected here, never
// defaulted away.
func NewPlayer(args string) (*Player, error) {
	m := ParseMeta(args)

	name := m.String("name", "mcts")
	if strings.ContainsAny(name, reservedNameChars) {
		return nil, fmt.Errorf("invalid name %q: contains reserved characters", name)
	}

	role := m.String("role", "unknown")
	who, ok := game.ParseColor(role)
	if !ok {
		return nil, fmt.Errorf("invalid role %q: want black or white", role)
	}

	size, err := m.Int("size", meta.BOARD_SIZE)
	if err != nil {
		return nil, err
	}
	if size < 2 {
		return nil, fmt.Errorf("invalid size %d: board must be at least 2x2", size)
	}

	seed, err := m.Int("seed", int(time.Now().UnixNano()))
	if err != nil {
		return nil, err
	}
	c, err := m.Float("c", meta.EXPLORATION_C)
	if err != nil {
		return nil, err
	}
	episodes, err := m.Int("n", 0)
	if err != nil {
		return nil, err
	}
	schedule, err := m.Durations("schedule", meta.DefaultSchedule)
	if err != nil {
		return nil, err
	}

	random := m.Has("random")

	rng := rand.New(rand.NewSource(uint64(seed)))
	options := []searcher.Option{
		searcher.WithRand(rng),
		searcher.WithExploration(c),
		searcher.WithSchedule(schedule),
	}
	if !random {
		// A random player never searches, so its collector would never
		// start and would report nonsense durations.
		options = append(options, searcher.WithMetrics())
	}
	if episodes > 0 {
		// A fixed cycle budget takes precedence over the time schedule.
		options = append(options, searcher.WithEpisodes(episodes))
	}

	return &Player{
		name:   name,
		who:    who,
		size:   size,
		random: random,
		rng:    rng,
		mcts:   searcher.NewMCTS(size, options...),
		space:  game.Moves(size, who),
	}, nil
}

func (p *Player) Name() string     { return p.name }
func (p *Player) Role() game.Color { return p.who }
func (p *Player) Size() int        { return p.size }

// OpenEpisode clears the shared action statistics and the ply counter.
func (p *Player) OpenEpisode() {
	p.mcts.OpenEpisode()
}

func (p *Player) CloseEpisode() {}

// TakeAction decides the next placement. Search is skipped for the random
// fallback policy and for positions where it is not this player's turn to
// move, which is a caller bug worth a loud log rather than a wrong tree.
func (p *Player) TakeAction(state game.Position) (game.Move, bool) {
	if state.Turn() != p.who {
		log.Warn().
			Str("agent", p.name).
			Str("role", p.who.String()).
			Str("turn", state.Turn().String()).
			Msg("asked to act out of turn")
		return game.NoMove, false
	}

	if p.random {
		return p.randomAction(state)
	}
	return p.mcts.Decide(state)
}

// randomAction is the plain fallback policy: uniform shuffle, first legal.
func (p *Player) randomAction(state game.Position) (game.Move, bool) {
	p.rng.Shuffle(len(p.space), func(i, j int) {
		p.space[i], p.space[j] = p.space[j], p.space[i]
	})
	for _, m := range p.space {
		if _, verdict := state.Apply(m); verdict == game.Legal {
			return m, true
		}
	}
	return game.NoMove, false
}

// Metrics exposes the searcher's collector for the engine's records. It is
// nil for a random player, which has no searches to measure.
func (p *Player) Metrics() searcher.Collector {
	if p.random {
		return nil
	}
	return p.mcts.Metrics()
}
