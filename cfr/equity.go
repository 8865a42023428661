package cfr

import (
	"math"
	"math/rand"
	"strconv"
	"strings"

	"pokersolver/holdem"
)

// SimulationResult is the full outcome of a Monte Carlo equity run.
// HandRankDistribution is indexed by hand category, high card through
// straight flush.
type SimulationResult struct {
	WinProbability       float64
	TieProbability       float64
	ExpectedValue        float64
	Simulations          int
	HandRankDistribution [9]float64
}

func (r SimulationResult) IsValid() bool {
	return r.Simulations > 0
}

// HandStrength is the fast preflop-style heuristic used by the
// regret-matching utilities: a 0.5 baseline adjusted for high cards,
// pocket pairs, suitedness and a dealt board, clamped to [0, 1].
func HandStrength(state *holdem.GameState) float64 {
	strength := 0.5
	for _, c := range state.HoleCards {
		if c.Rank >= holdem.RankJack {
			strength += 0.1
		}
	}
	if state.HoleCards[0].Rank == state.HoleCards[1].Rank {
		strength += 0.2
	}
	if state.HoleCards[0].Suit == state.HoleCards[1].Suit {
		strength += 0.05
	}
	if len(state.CommunityCards) > 0 {
		strength += 0.1
	}
	return math.Max(0, math.Min(1, strength))
}

// PotOdds returns the pot share offered for a call, 1.0 when there is
// nothing to call.
func PotOdds(state *holdem.GameState) float64 {
	if state.ToCall <= 0 {
		return 1.0
	}
	return state.PotSize / (state.PotSize + state.ToCall)
}

// RunMonteCarloSimulation is the cheap fallback estimator: the hero's
// heuristic strength, nudged by position and pot odds, rolled against
// uniformly random opponent strength.
func (e *Engine) RunMonteCarloSimulation(state *holdem.GameState, simulations int, rng *rand.Rand) float64 {
	if simulations <= 0 || !state.IsValid() {
		return 0.0
	}
	hero := HandStrength(state) + float64(state.Position)*0.02 + PotOdds(state)*0.1
	wins := 0
	for i := 0; i < simulations; i++ {
		opponent := 0.2 + rng.Float64()*0.6
		if hero > opponent {
			wins++
		}
	}
	e.stats.addSimulations(uint64(simulations))
	return float64(wins) / float64(simulations)
}

// SimulateEquity is the canonical deck-based estimator: every rollout
// completes the board from the shuffled remaining deck, deals each
// active opponent a random hand and showdowns against the hero.
func (e *Engine) SimulateEquity(state *holdem.GameState, simulations int, rng *rand.Rand) SimulationResult {
	if simulations <= 0 || !state.IsValid() {
		return SimulationResult{}
	}
	opponents := state.NumActivePlayers - 1
	if opponents < 1 {
		opponents = 1
	}

	known := append([]holdem.Card{state.HoleCards[0], state.HoleCards[1]}, state.CommunityCards...)
	deck := holdem.RemainingDeck(known...)
	boardNeed := 5 - len(state.CommunityCards)
	if maxOpp := (len(deck) - boardNeed) / 2; opponents > maxOpp {
		opponents = maxOpp
	}

	var result SimulationResult
	wins, ties := 0, 0
	board := make([]holdem.Card, 0, 5)
	players := make([][]holdem.Card, 1+opponents)
	players[0] = state.HoleCards[:]
	for i := 0; i < simulations; i++ {
		holdem.Shuffle(rng, deck)
		next := 0

		board = append(board[:0], state.CommunityCards...)
		for j := 0; j < boardNeed; j++ {
			board = append(board, deck[next])
			next++
		}

		heroRank := holdem.EvaluateHandRank(holdem.ConcatCards(state.HoleCards[:], board))
		result.HandRankDistribution[heroRank[0]]++

		for o := 0; o < opponents; o++ {
			players[1+o] = deck[next : next+2]
			next += 2
		}
		mask := holdem.ComputeWinners(players, board)
		winners := 0
		for _, m := range mask {
			winners += m
		}
		if mask[0] == 1 {
			if winners == 1 {
				wins++
			} else {
				ties++
			}
		}
	}

	result.Simulations = simulations
	result.WinProbability = float64(wins) / float64(simulations)
	result.TieProbability = float64(ties) / float64(simulations)
	for c := range result.HandRankDistribution {
		result.HandRankDistribution[c] /= float64(simulations)
	}
	e.stats.addSimulations(uint64(simulations))
	return result
}

const maxEquityCacheEntries = 100000

func equityCacheKey(state *holdem.GameState) string {
	var b strings.Builder
	for _, c := range state.HoleCards {
		b.WriteString(c.String())
	}
	b.WriteByte('_')
	for _, c := range state.CommunityCards {
		b.WriteString(c.String())
	}
	b.WriteByte('_')
	b.WriteString(strconv.Itoa(state.NumActivePlayers))
	return b.String()
}

// CalculateWinProbability runs the canonical estimator behind a
// bounded result cache. Equal decision points share one estimate.
func (e *Engine) CalculateWinProbability(state *holdem.GameState, simulations int) float64 {
	if !e.initialized.Load() {
		return 0.5
	}
	if simulations <= 0 || !state.IsValid() {
		return 0.0
	}
	key := equityCacheKey(state)
	if p, ok := e.equityCache.Get(key); ok {
		return p
	}

	e.simMu.Lock()
	result := e.SimulateEquity(state, simulations, e.sim)
	e.simMu.Unlock()

	if e.equityCache.Count() >= maxEquityCacheEntries {
		e.equityCache.Clear()
	}
	e.equityCache.Set(key, result.WinProbability)
	return result.WinProbability
}

// CalculateExpectedValue reports the full simulation result with the
// call-or-win expected value filled in.
func (e *Engine) CalculateExpectedValue(state *holdem.GameState, simulations int) SimulationResult {
	if !e.initialized.Load() || simulations <= 0 || !state.IsValid() {
		return SimulationResult{}
	}
	e.simMu.Lock()
	result := e.SimulateEquity(state, simulations, e.sim)
	e.simMu.Unlock()

	lossProb := 1 - result.WinProbability - result.TieProbability
	result.ExpectedValue = result.WinProbability*state.PotSize - lossProb*state.ToCall
	return result
}
