package holdem

import (
	"math/rand"

	"pokersolver/common/random"
)

var roundBoardCards = map[BettingRound]int{
	RoundPreflop: 0,
	RoundFlop:    3,
	RoundTurn:    4,
	RoundRiver:   5,
}

// Prior over observed opponent actions, used only to synthesize
// plausible action histories for generated training states.
var historyPrior = map[Action]float64{
	ActionFold:  0.1,
	ActionCheck: 0.25,
	ActionCall:  0.35,
	ActionBet:   0.15,
	ActionRaise: 0.15,
}

// RandomState synthesizes one realistic training snapshot for the
// given betting round. Cards are dealt from a shuffled deck so hole
// and board cards never collide.
func RandomState(rng *rand.Rand, round BettingRound) *GameState {
	deck := FullDeck()
	Shuffle(rng, deck)

	boardLen := roundBoardCards[round]
	state := &GameState{
		HoleCards:      [2]Card{deck[0], deck[1]},
		CommunityCards: deck[2 : 2+boardLen],

		PotSize:    5 + rng.Float64()*45,
		StackSize:  50 + rng.Float64()*150,
		BigBlind:   2,
		SmallBlind: 1,

		Position:     Position(rng.Intn(6)),
		NumPlayers:   2 + rng.Intn(5),
		BettingRound: round,
	}
	state.NumActivePlayers = state.NumPlayers

	if rng.Float64() < 0.5 {
		state.ToCall = state.BigBlind * float64(1+rng.Intn(4))
	}
	state.MinRaise = state.ToCall + state.BigBlind
	state.MaxBet = state.StackSize

	historyLen := rng.Intn(4)
	for range historyLen {
		act, err := random.Sample(rng, historyPrior)
		if err != nil {
			break
		}
		state.ActionHistory = append(state.ActionHistory, act)
	}

	return state
}

// RandomBatch generates count states with the production street mix:
// 40% preflop, 30% flop, 20% turn, the rest river.
func RandomBatch(rng *rand.Rand, count int) []GameState {
	states := make([]GameState, 0, count)

	preflop := int(float64(count) * 0.4)
	flop := int(float64(count) * 0.3)
	turn := int(float64(count) * 0.2)
	river := count - preflop - flop - turn

	for _, part := range []struct {
		round BettingRound
		n     int
	}{
		{RoundPreflop, preflop},
		{RoundFlop, flop},
		{RoundTurn, turn},
		{RoundRiver, river},
	} {
		for range part.n {
			states = append(states, *RandomState(rng, part.round))
		}
	}

	rng.Shuffle(len(states), func(i, j int) {
		states[i], states[j] = states[j], states[i]
	})
	return states
}
