package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseState() *GameState {
	return &GameState{
		HoleCards:        [2]Card{NewCard(RankAce, SuitSpades), NewCard(RankKing, SuitSpades)},
		PotSize:          30,
		StackSize:        100,
		BigBlind:         2,
		SmallBlind:       1,
		Position:         PositionButton,
		NumPlayers:       6,
		NumActivePlayers: 3,
		BettingRound:     RoundFlop,
		CommunityCards: []Card{
			NewCard(RankTen, SuitHearts),
			NewCard(RankSeven, SuitDiamonds),
			NewCard(RankTwo, SuitClubs),
		},
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, baseState().IsValid())

	zeroStack := baseState()
	zeroStack.StackSize = 0
	assert.False(t, zeroStack.IsValid())

	negativePot := baseState()
	negativePot.PotSize = -1
	assert.False(t, negativePot.IsValid())

	headsUpShort := baseState()
	headsUpShort.NumPlayers = 1
	assert.False(t, headsUpShort.IsValid())
}

func TestLegalActionsUnraised(t *testing.T) {
	gs := baseState()
	gs.ToCall = 0

	actions := gs.LegalActions()
	assert.ElementsMatch(t, []Action{ActionFold, ActionCheck, ActionBet, ActionAllIn}, actions)
	assert.NotContains(t, actions, ActionCall)
}

func TestLegalActionsFacingBet(t *testing.T) {
	gs := baseState()
	gs.ToCall = 10

	actions := gs.LegalActions()
	assert.ElementsMatch(t, []Action{ActionFold, ActionCall, ActionRaise, ActionAllIn}, actions)

	// Raising requires chips behind beyond the call.
	gs.ToCall = gs.StackSize
	actions = gs.LegalActions()
	assert.ElementsMatch(t, []Action{ActionFold, ActionCall, ActionAllIn}, actions)
}

func TestClone(t *testing.T) {
	gs := baseState()
	gs.ActionHistory = []Action{ActionCall, ActionRaise}

	cp := gs.Clone()
	require.Equal(t, gs, cp)

	cp.CommunityCards[0] = NewCard(RankTwo, SuitSpades)
	cp.ActionHistory[0] = ActionFold
	assert.Equal(t, NewCard(RankTen, SuitHearts), gs.CommunityCards[0])
	assert.Equal(t, ActionCall, gs.ActionHistory[0])
}
