package searcher

import "time"

// SearchMetrics describes one Decide call.
type SearchMetrics struct {
	Ply          int
	Duration     time.Duration
	Cycles       int
	PlayoutMoves int
	TreeSize     int
}

// Collector gathers per-decision metrics. The search is single-owner, so no
// synchronization is needed; a nil-behaving no-op collector is the default.
type Collector interface {
	Start(ply int)
	AddCycle()
	AddPlayoutMove()
	SetTreeSize(size int)
	Complete() SearchMetrics
}

type collector struct {
	ply          int
	startTime    time.Time
	cycles       int
	playoutMoves int
	treeSize     int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(ply int) {
	m.ply = ply
	m.startTime = time.Now()
	m.cycles = 0
	m.playoutMoves = 0
	m.treeSize = 0
}

func (m *collector) AddCycle() {
	m.cycles++
}

func (m *collector) AddPlayoutMove() {
	m.playoutMoves++
}

func (m *collector) SetTreeSize(size int) {
	m.treeSize = size
}

func (m *collector) Complete() SearchMetrics {
	return SearchMetrics{
		Ply:          m.ply,
		Duration:     time.Since(m.startTime),
		Cycles:       m.cycles,
		PlayoutMoves: m.playoutMoves,
		TreeSize:     m.treeSize,
	}
}

type noCollector struct{}

// NewNoCollector returns a collector that records nothing.
func NewNoCollector() Collector {
	return noCollector{}
}

func (noCollector) Start(ply int)           {}
func (noCollector) AddCycle()               {}
func (noCollector) AddPlayoutMove()         {}
func (noCollector) SetTreeSize(size int)    {}
func (noCollector) Complete() SearchMetrics { return SearchMetrics{} }
