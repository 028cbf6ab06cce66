// meta/meta.go
package meta

import "time"

// BOARD_SIZE defines the default edge length of the NoGo board.
const BOARD_SIZE = 9

// EXPLORATION_C defines the default exploration weight in the selection score.
const EXPLORATION_C = 0.3

// EPISODES defines the default fixed cycle budget where one is wanted over
// the wall-clock schedule, such as the hardware-independent experiments.
const EPISODES = 1000

// ShapeWeights is the tier table for the local-shape bonus, indexed by the
// number of qualifying directions (capped at 3). Empirically tuned; do not
// re-derive.
var ShapeWeights = [4]float64{0.0, 0.03, 0.07, 0.1}

// DefaultSchedule is the per-ply wall-clock allowance used when no fixed
// episode budget is configured. Indexed by the agent's ply counter; plies
// past the end reuse the last entry.
var DefaultSchedule = []time.Duration{
	1000 * time.Millisecond,
	1000 * time.Millisecond,
	800 * time.Millisecond,
	800 * time.Millisecond,
	600 * time.Millisecond,
	600 * time.Millisecond,
	400 * time.Millisecond,
	400 * time.Millisecond,
	200 * time.Millisecond,
}
