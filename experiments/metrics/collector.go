package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Searcher     string
	Goroutines   int
	Duration     time.Duration
	Rollouts     int
	Cutoff       int
	Depth        int
	Nodes        int
	FullPlayouts int
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	Action string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int     // Player ID
	Winner         int     // Player ID, 0 for a draw
	Utility        float64 // Final utility from player 1's perspective
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers search statistics. Implementations must be safe for use
// by concurrent search workers.
type Collector interface {
	Start(searcher string, goroutines, cutoff, depth int)
	AddRollout()
	AddFullPlayout()
	AddNode()
	Complete() SearchMetric
}

type collector struct {
	searcher     string
	goroutines   int
	cutoff       int
	depth        int
	startTime    time.Time
	rollouts     atomic.Int32
	fullPlayouts atomic.Int32
	nodes        atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(searcher string, goroutines, cutoff, depth int) {
	m.startTime = time.Now()
	m.searcher = searcher
	m.goroutines = goroutines
	m.cutoff = cutoff
	m.depth = depth
	m.rollouts.Store(0)
	m.fullPlayouts.Store(0)
	m.nodes.Store(0)
}

func (m *collector) AddRollout() {
	m.rollouts.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Searcher:     m.searcher,
		Goroutines:   m.goroutines,
		Duration:     time.Since(m.startTime),
		Rollouts:     int(m.rollouts.Load()),
		Cutoff:       m.cutoff,
		Depth:        m.depth,
		Nodes:        int(m.nodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(searcher string, goroutines, cutoff, depth int) {}
func (m *dummyCollector) AddRollout() {}
func (m *dummyCollector) AddFullPlayout() {}
func (m *dummyCollector) AddNode() {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
