package cfr

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokersolver/holdem"
)

func TestHandStrength(t *testing.T) {
	pocketAces := &holdem.GameState{
		HoleCards: [2]holdem.Card{
			holdem.NewCard(holdem.RankAce, holdem.SuitSpades),
			holdem.NewCard(holdem.RankAce, holdem.SuitHearts),
		},
		PotSize: 10, StackSize: 100, NumPlayers: 2,
	}
	// 0.5 base + 0.1 + 0.1 high cards + 0.2 pair.
	assert.InDelta(t, 0.9, HandStrength(pocketAces), 1e-12)

	withBoard := pocketAces.Clone()
	withBoard.CommunityCards = []holdem.Card{holdem.NewCard(holdem.RankTwo, holdem.SuitClubs)}
	assert.InDelta(t, 1.0, HandStrength(withBoard), 1e-12)

	trash := pocketAces.Clone()
	trash.HoleCards = [2]holdem.Card{
		holdem.NewCard(holdem.RankSeven, holdem.SuitSpades),
		holdem.NewCard(holdem.RankTwo, holdem.SuitHearts),
	}
	assert.InDelta(t, 0.5, HandStrength(trash), 1e-12)

	suited := trash.Clone()
	suited.HoleCards[1].Suit = holdem.SuitSpades
	assert.InDelta(t, 0.55, HandStrength(suited), 1e-12)
}

func TestHandStrengthBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, gs := range holdem.RandomBatch(rng, 500) {
		hs := HandStrength(&gs)
		require.GreaterOrEqual(t, hs, 0.0)
		require.LessOrEqual(t, hs, 1.0)
	}
}

func TestPotOdds(t *testing.T) {
	gs := flopState()
	gs.ToCall = 0
	assert.InDelta(t, 1.0, PotOdds(gs), 1e-12)

	gs.ToCall = 10
	assert.InDelta(t, 0.75, PotOdds(gs), 1e-12)
}

func TestRunMonteCarloSimulation(t *testing.T) {
	e := newTestEngine(t)
	rng := rand.New(rand.NewSource(5))

	gs := flopState()
	gs.HoleCards = [2]holdem.Card{
		holdem.NewCard(holdem.RankAce, holdem.SuitSpades),
		holdem.NewCard(holdem.RankAce, holdem.SuitHearts),
	}
	gs.ToCall = 0

	// Hero strength 1.0 + position bonus beats every opponent draw
	// from U(0.2, 0.8).
	assert.InDelta(t, 1.0, e.RunMonteCarloSimulation(gs, 1000, rng), 1e-12)
	assert.Equal(t, uint64(1000), e.GetPerformanceStats().TotalSimulations)

	assert.Zero(t, e.RunMonteCarloSimulation(gs, 0, rng))
}

func TestRunMonteCarloSimulationConverges(t *testing.T) {
	e := newTestEngine(t)

	gs := flopState()
	gs.Position = holdem.PositionSmallBlind
	gs.HoleCards = [2]holdem.Card{
		holdem.NewCard(holdem.RankNine, holdem.SuitSpades),
		holdem.NewCard(holdem.RankSix, holdem.SuitHearts),
	}
	gs.ToCall = 10

	// Independent streams land within sampling noise of each other.
	a := e.RunMonteCarloSimulation(gs, 100000, rand.New(rand.NewSource(1)))
	b := e.RunMonteCarloSimulation(gs, 100000, rand.New(rand.NewSource(2)))
	assert.Greater(t, a, 0.0)
	assert.Less(t, a, 1.0)
	assert.InDelta(t, a, b, 0.02)
}

func TestSimulateEquityPlayedBoard(t *testing.T) {
	e := newTestEngine(t)
	rng := rand.New(rand.NewSource(5))

	// The board is a royal flush, so every showdown splits.
	gs := flopState()
	gs.BettingRound = holdem.RoundRiver
	gs.CommunityCards = []holdem.Card{
		holdem.NewCard(holdem.RankAce, holdem.SuitSpades),
		holdem.NewCard(holdem.RankKing, holdem.SuitSpades),
		holdem.NewCard(holdem.RankQueen, holdem.SuitSpades),
		holdem.NewCard(holdem.RankJack, holdem.SuitSpades),
		holdem.NewCard(holdem.RankTen, holdem.SuitSpades),
	}
	gs.HoleCards = [2]holdem.Card{
		holdem.NewCard(holdem.RankTwo, holdem.SuitHearts),
		holdem.NewCard(holdem.RankThree, holdem.SuitDiamonds),
	}

	result := e.SimulateEquity(gs, 500, rng)
	require.True(t, result.IsValid())
	assert.Zero(t, result.WinProbability)
	assert.InDelta(t, 1.0, result.TieProbability, 1e-12)
	assert.InDelta(t, 1.0, result.HandRankDistribution[8], 1e-12)
}

func TestSimulateEquityStrongHandWins(t *testing.T) {
	e := newTestEngine(t)
	rng := rand.New(rand.NewSource(5))

	gs := flopState()
	gs.BettingRound = holdem.RoundPreflop
	gs.CommunityCards = nil
	gs.NumActivePlayers = 2
	gs.HoleCards = [2]holdem.Card{
		holdem.NewCard(holdem.RankAce, holdem.SuitSpades),
		holdem.NewCard(holdem.RankAce, holdem.SuitHearts),
	}

	result := e.SimulateEquity(gs, 2000, rng)
	require.Equal(t, 2000, result.Simulations)
	assert.Greater(t, result.WinProbability, 0.7)

	total := result.WinProbability + result.TieProbability
	assert.LessOrEqual(t, total, 1.0+1e-12)

	distSum := 0.0
	for _, f := range result.HandRankDistribution {
		distSum += f
	}
	assert.InDelta(t, 1.0, distSum, 1e-9)
}

func TestSimulateEquityInvalidInput(t *testing.T) {
	e := newTestEngine(t)
	rng := rand.New(rand.NewSource(5))

	assert.False(t, e.SimulateEquity(flopState(), 0, rng).IsValid())

	broken := flopState()
	broken.StackSize = 0
	assert.False(t, e.SimulateEquity(broken, 100, rng).IsValid())
}

func TestCalculateWinProbability(t *testing.T) {
	e := newTestEngine(t)
	gs := flopState()

	assert.Zero(t, e.CalculateWinProbability(gs, 0))

	p1 := e.CalculateWinProbability(gs, 500)
	assert.Greater(t, p1, 0.0)
	simsAfterFirst := e.GetPerformanceStats().TotalSimulations

	// Second call is served from the cache: same value, no new rolls.
	p2 := e.CalculateWinProbability(gs, 500)
	assert.Equal(t, p1, p2)
	assert.Equal(t, simsAfterFirst, e.GetPerformanceStats().TotalSimulations)
}

func TestCalculateWinProbabilityUninitialized(t *testing.T) {
	e := NewEngine(testConfig(), zerolog.Nop())
	assert.InDelta(t, 0.5, e.CalculateWinProbability(flopState(), 100), 1e-12)
}

func TestCalculateExpectedValue(t *testing.T) {
	e := newTestEngine(t)

	gs := flopState()
	gs.NumActivePlayers = 2
	gs.ToCall = 10
	gs.HoleCards = [2]holdem.Card{
		holdem.NewCard(holdem.RankAce, holdem.SuitSpades),
		holdem.NewCard(holdem.RankAce, holdem.SuitHearts),
	}
	gs.CommunityCards = nil
	gs.BettingRound = holdem.RoundPreflop

	result := e.CalculateExpectedValue(gs, 2000)
	require.True(t, result.IsValid())

	lossProb := 1 - result.WinProbability - result.TieProbability
	expected := result.WinProbability*gs.PotSize - lossProb*gs.ToCall
	assert.InDelta(t, expected, result.ExpectedValue, 1e-9)

	// Aces preflop against one caller are a clear plus-EV spot.
	assert.Greater(t, result.ExpectedValue, 0.0)
}
