package metrics

import (
	"time"

	"nogo/game"
	"nogo/searcher"
)

// AgentConfig is one self-play agent parameterization under test.
type AgentConfig struct {
	ID       int
	C        float64
	Episodes int  // fixed cycle budget; 0 means the time schedule applies
	TimeMs   int  // single-entry schedule in milliseconds when Episodes == 0
	Seed     int
	Random   bool // plain shuffle-and-first-legal fallback, no search
}

// GameRecord describes one finished self-play game.
type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing black
	Agent2 int // AgentConfig.ID playing white
	Winner game.Color
	Moves  int

	StartTime time.Time
	Duration  time.Duration
}

// MoveRecord ties one decision's search metrics to its game.
type MoveRecord struct {
	Game   int // GameRecord.ID
	Step   int
	Player game.Color
	searcher.SearchMetrics
}
