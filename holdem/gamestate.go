package holdem

// GameState is one decision-point snapshot supplied by the external
// table extractor. The solver never stores these; it only reads them.
type GameState struct {
	HoleCards      [2]Card
	CommunityCards []Card

	PotSize    float64
	StackSize  float64
	BigBlind   float64
	SmallBlind float64

	Position         Position
	NumPlayers       int
	NumActivePlayers int

	BettingRound BettingRound

	ActionHistory []Action

	ToCall   float64
	MinRaise float64
	MaxBet   float64
}

// IsValid reports whether the snapshot is usable for evaluation.
func (gs *GameState) IsValid() bool {
	return gs.PotSize >= 0 && gs.StackSize > 0 && gs.NumPlayers >= 2
}

// LegalActions derives the available actions. Fold is always legal.
// With nothing to call the player may check or bet; facing a bet the
// player may call, and raise only with chips behind beyond the call.
// All-in is legal whenever any stack remains.
func (gs *GameState) LegalActions() []Action {
	actions := make([]Action, 0, 4)
	actions = append(actions, ActionFold)
	if gs.ToCall == 0 {
		actions = append(actions, ActionCheck, ActionBet)
	} else {
		actions = append(actions, ActionCall)
		if gs.StackSize > gs.ToCall {
			actions = append(actions, ActionRaise)
		}
	}
	if gs.StackSize > 0 {
		actions = append(actions, ActionAllIn)
	}
	return actions
}

func (gs *GameState) Clone() *GameState {
	cp := *gs

	cp.CommunityCards = make([]Card, len(gs.CommunityCards))
	copy(cp.CommunityCards, gs.CommunityCards)

	cp.ActionHistory = make([]Action, len(gs.ActionHistory))
	copy(cp.ActionHistory, gs.ActionHistory)

	return &cp
}
