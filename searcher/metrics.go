package searcher

import "time"

// MoveMetrics describes the work behind a single FindMove verdict.
type MoveMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int
	TableHits int
	Cutoffs   int
}

// metricsCollector accumulates counters during one search. Searches run on a
// single goroutine, so plain fields suffice.
type metricsCollector struct {
	startTime time.Time
	nodes     int
	tableHits int
	cutoffs   int
}

func (m *metricsCollector) start() {
	*m = metricsCollector{startTime: time.Now()}
}

func (m *metricsCollector) addNode() {
	m.nodes++
}

func (m *metricsCollector) addTableHit() {
	m.tableHits++
}

func (m *metricsCollector) addCutoff() {
	m.cutoffs++
}

func (m *metricsCollector) complete() MoveMetrics {
	return MoveMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes,
		TableHits: m.tableHits,
		Cutoffs:   m.cutoffs,
	}
}
