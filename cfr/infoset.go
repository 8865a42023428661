package cfr

import (
	"math"
	"sync"

	"pokersolver/common/defaultmap"
	"pokersolver/common/linq"
	"pokersolver/holdem"
)

// Strategy accumulates per-action weights for one infoset. The same
// weight field carries both the regret sum and the cumulative reach
// probability, matching the reference engine's single-table behavior.
type Strategy struct {
	Weights     map[holdem.Action]float64
	TotalRegret float64
	VisitCount  uint64
}

func NewStrategy() Strategy {
	return Strategy{
		Weights: make(map[holdem.Action]float64),
	}
}

// UpdateRegret accumulates one action's regret.
func (s *Strategy) UpdateRegret(action holdem.Action, regret float64) {
	s.Weights[action] += regret
	s.TotalRegret += math.Abs(regret)
	s.VisitCount++
}

// Normalized returns a copy whose weights are clamped to zero and
// rescaled to sum to 1. An all-nonpositive weight map normalizes to
// empty mass on every action and is returned clamped, unscaled.
func (s *Strategy) Normalized() Strategy {
	cp := Strategy{
		Weights:     linq.CopyMap(s.Weights),
		TotalRegret: s.TotalRegret,
		VisitCount:  s.VisitCount,
	}
	total := 0.0
	for a, w := range cp.Weights {
		if w < 0 {
			cp.Weights[a] = 0
			w = 0
		}
		total += w
	}
	if total > 0 {
		for a := range cp.Weights {
			cp.Weights[a] /= total
		}
	}
	return cp
}

// BestAction returns the highest-weight action, Fold when empty.
func (s *Strategy) BestAction() holdem.Action {
	best := holdem.ActionFold
	bestWeight := math.Inf(-1)
	found := false
	for a, w := range s.Weights {
		if !found || w > bestWeight || (w == bestWeight && a < best) {
			best = a
			bestWeight = w
			found = true
		}
	}
	if !found {
		return holdem.ActionFold
	}
	return best
}

func (s *Strategy) ActionProbability(action holdem.Action) float64 {
	return s.Weights[action]
}

// InfoSet is one learned abstraction bucket. Entries are created
// lazily by the table and live until Clear; the strategy is mutated
// in place under the infoset's own lock.
type InfoSet struct {
	Key                string
	Strategy           Strategy
	AverageStrategySum float64

	mu sync.Mutex
}

func newInfoSet(key string) *InfoSet {
	return &InfoSet{
		Key:      key,
		Strategy: NewStrategy(),
	}
}

// Table is the solver's persistent memory: a concurrent key -> infoset
// store with at-most-once creation per key.
type Table struct {
	sets defaultmap.DefaultSafemap[string, *InfoSet]
}

func NewTable() *Table {
	return &Table{
		sets: defaultmap.New(newInfoSet),
	}
}

// GetOrCreate returns the infoset for key, creating it exactly once
// no matter how many callers race on the same key.
func (t *Table) GetOrCreate(key string) *InfoSet {
	return t.sets.Get(key)
}

func (t *Table) Lookup(key string) (*InfoSet, bool) {
	return t.sets.Lookup(key)
}

func (t *Table) Size() int {
	return t.sets.Count()
}

// Clear drops every entry. Used only during shutdown and model load.
func (t *Table) Clear() {
	t.sets.Clear()
}

func (t *Table) Foreach(it func(*InfoSet) bool) {
	t.sets.Foreach(func(_ string, is *InfoSet) bool {
		return it(is)
	})
}
