package engine

import (
	"nogo/game"
	"nogo/searcher"
)

// Result summarizes one finished episode.
type Result struct {
	Winner game.Color
	Moves  int
	// Per-move search metrics in play order, for agents that collect them.
	MoveMetrics []MoveMetric
}

// MoveMetric ties one decision's metrics to its place in the game.
type MoveMetric struct {
	Step   int
	Player game.Color
	searcher.SearchMetrics
}

// Engine runs one episode till a side has no legal placement.
type Engine interface {
	Run() Result
}
