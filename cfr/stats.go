package cfr

import "sync"

// PerformanceStats is a point-in-time snapshot of training progress.
type PerformanceStats struct {
	TotalIterations    uint64
	AverageConvergence float64
	TotalInfoSets      int
	TotalSimulations   uint64
}

type statsTracker struct {
	mu  sync.Mutex
	cur PerformanceStats
}

// recordBatch folds one completed batch into the counters. The
// convergence field is a running blend, each new batch averaged
// against everything before it.
func (t *statsTracker) recordBatch(convergence float64, infoSets int) {
	t.mu.Lock()
	t.cur.TotalIterations++
	t.cur.AverageConvergence = (t.cur.AverageConvergence + convergence) / 2
	t.cur.TotalInfoSets = infoSets
	t.mu.Unlock()
}

func (t *statsTracker) addSimulations(n uint64) {
	t.mu.Lock()
	t.cur.TotalSimulations += n
	t.mu.Unlock()
}

func (t *statsTracker) snapshot() PerformanceStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cur
}

func (t *statsTracker) reset() {
	t.mu.Lock()
	t.cur = PerformanceStats{}
	t.mu.Unlock()
}
