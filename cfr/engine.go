package cfr

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"pokersolver/common/random"
	"pokersolver/common/safemap"
	"pokersolver/holdem"
)

// Engine is the regret-matching solver. One engine owns the infoset
// table, the equity cache and the per-worker random streams; all
// exported methods are safe for concurrent use after Initialize.
type Engine struct {
	cfg   Config
	table *Table
	stats *statsTracker

	equityCache safemap.Safemap[string, float64]

	rngs    []*rand.Rand
	trainMu sync.Mutex
	simMu   sync.Mutex
	sim     *rand.Rand

	initialized atomic.Bool
	stopping    atomic.Bool

	log zerolog.Logger
}

func NewEngine(cfg Config, logger zerolog.Logger) *Engine {
	return &Engine{
		cfg:         cfg,
		table:       NewTable(),
		stats:       &statsTracker{},
		equityCache: safemap.New[string, float64](),
		log:         logger.With().Str("component", "cfr-engine").Logger(),
	}
}

// Initialize allocates one random stream per worker and resets the
// statistics. Calling it on an initialized engine is a no-op.
func (e *Engine) Initialize() error {
	if e.initialized.Load() {
		return nil
	}
	if e.cfg.NumThreads <= 0 {
		return fmt.Errorf("invalid thread count %d", e.cfg.NumThreads)
	}
	if e.cfg.BatchSize <= 0 {
		return fmt.Errorf("invalid batch size %d", e.cfg.BatchSize)
	}
	if e.cfg.UseGPUAcceleration {
		e.log.Warn().Msg("gpu acceleration requested but no backend is available, falling back to cpu")
		e.cfg.UseGPUAcceleration = false
	}

	e.rngs = make([]*rand.Rand, e.cfg.NumThreads)
	for i := range e.rngs {
		e.rngs[i] = rand.New(rand.NewSource(int64(frand.Uint64n(math.MaxInt64)) ^ int64(i)))
	}
	e.sim = rand.New(rand.NewSource(int64(frand.Uint64n(math.MaxInt64))))

	e.stats.reset()
	e.stopping.Store(false)
	e.initialized.Store(true)
	e.log.Info().
		Int("threads", e.cfg.NumThreads).
		Int("batch_size", e.cfg.BatchSize).
		Msg("engine initialized")
	return nil
}

// Shutdown waits for the in-flight batch and drops the learned table.
// Safe to call more than once.
func (e *Engine) Shutdown() {
	if !e.initialized.CompareAndSwap(true, false) {
		return
	}
	e.stopping.Store(true)
	e.trainMu.Lock()
	e.table.Clear()
	e.equityCache.Clear()
	e.trainMu.Unlock()
	e.log.Info().Msg("engine shut down")
}

func (e *Engine) IsInitialized() bool {
	return e.initialized.Load()
}

func (e *Engine) GetPerformanceStats() PerformanceStats {
	return e.stats.snapshot()
}

func (e *Engine) ResetStatistics() {
	e.stats.reset()
}

func (e *Engine) InfoSetCount() int {
	return e.table.Size()
}

// generateKey buckets a state into its abstraction key: betting round,
// position, pot-to-stack ratio quantized to five buckets, and a
// rolling hash of the hole cards folded to three digits.
func generateKey(state *holdem.GameState) string {
	potBucket := int((state.PotSize/state.StackSize)*5) % 5
	var cardHash uint64
	for _, c := range state.HoleCards {
		cardHash = cardHash*53 + c.Hash()
	}
	return fmt.Sprintf("%d_%d_%d_%d", state.BettingRound, state.Position, potBucket, cardHash%1000)
}

// Evaluate runs one regret-matching update for a single state and
// returns the node utility under the current strategy. Invalid states
// contribute nothing and touch no infoset.
func (e *Engine) Evaluate(state *holdem.GameState, reachProb float64) float64 {
	if !state.IsValid() {
		return 0.0
	}
	actions := state.LegalActions()
	if len(actions) == 0 {
		return 0.0
	}

	is := e.table.GetOrCreate(generateKey(state))
	is.mu.Lock()
	defer is.mu.Unlock()

	// Current strategy via regret matching: positive weights rescaled
	// to probabilities, uniform when no positive mass exists.
	probs := make([]float64, len(actions))
	norm := 0.0
	for i, a := range actions {
		probs[i] = math.Max(is.Strategy.Weights[a], 0)
		norm += probs[i]
	}
	if norm > 0 {
		for i := range probs {
			probs[i] /= norm
		}
	} else {
		for i := range probs {
			probs[i] = 1.0 / float64(len(actions))
		}
	}

	hs := HandStrength(state)
	utilities := make([]float64, len(actions))
	nodeUtility := 0.0
	for i, a := range actions {
		utilities[i] = actionUtility(state, a, hs)
		nodeUtility += probs[i] * utilities[i]
	}

	for i, a := range actions {
		is.Strategy.UpdateRegret(a, utilities[i]-nodeUtility)
	}
	for i, a := range actions {
		contribution := reachProb * probs[i]
		is.Strategy.Weights[a] += contribution
		is.AverageStrategySum += contribution
	}
	return nodeUtility
}

// actionUtility scores one action with the single-ply heuristic:
// a hand-strength-scaled payoff shaped by position, pot pressure and
// table size.
func actionUtility(state *holdem.GameState, action holdem.Action, handStrength float64) float64 {
	var base float64
	switch action {
	case holdem.ActionFold:
		base = 0.0
	case holdem.ActionCall, holdem.ActionCheck:
		base = state.PotSize * 0.4 * handStrength
	case holdem.ActionBet, holdem.ActionRaise:
		base = state.PotSize * 0.8 * handStrength
	case holdem.ActionAllIn:
		base = state.StackSize * handStrength
	}
	posFactor := (float64(state.Position) + 1) / 6.0
	potFactor := math.Min(state.PotSize/state.StackSize, 2.0)
	playerFactor := (10.0 - float64(state.NumPlayers)) / 10.0
	return base * (0.8 + posFactor*0.4) * (1 + potFactor*0.2) * (1 + playerFactor*0.1)
}

// defaultStrategy is the prior returned for states the solver has
// never trained on.
func defaultStrategy() Strategy {
	s := NewStrategy()
	s.Weights[holdem.ActionFold] = 0.2
	s.Weights[holdem.ActionCall] = 0.3
	s.Weights[holdem.ActionBet] = 0.3
	s.Weights[holdem.ActionCheck] = 0.2
	return s
}

// GetStrategy returns the normalized strategy for the state's bucket,
// or the default prior when the bucket has never been visited.
func (e *Engine) GetStrategy(state *holdem.GameState) Strategy {
	is, ok := e.table.Lookup(generateKey(state))
	if !ok {
		return defaultStrategy()
	}
	is.mu.Lock()
	defer is.mu.Unlock()
	return is.Strategy.Normalized()
}

func (e *Engine) GetBestAction(state *holdem.GameState) holdem.Action {
	s := e.GetStrategy(state)
	return s.BestAction()
}

func (e *Engine) GetActionProbability(state *holdem.GameState, action holdem.Action) float64 {
	s := e.GetStrategy(state)
	return s.ActionProbability(action)
}

// SampleAction draws a legal action from the current strategy mixed
// with uniform exploration at the configured rate.
func (e *Engine) SampleAction(state *holdem.GameState, rng *rand.Rand) (holdem.Action, error) {
	actions := state.LegalActions()
	if len(actions) == 0 {
		return holdem.ActionFold, fmt.Errorf("no legal actions")
	}
	s := e.GetStrategy(state)

	eps := e.cfg.ExplorationRate
	probs := make(map[holdem.Action]float64, len(actions))
	total := 0.0
	for _, a := range actions {
		p := (1-eps)*s.ActionProbability(a) + eps/float64(len(actions))
		probs[a] = p
		total += p
	}
	if total <= 0 {
		for _, a := range actions {
			probs[a] = 1.0 / float64(len(actions))
		}
	} else {
		for a := range probs {
			probs[a] /= total
		}
	}
	return random.Sample(rng, probs)
}
