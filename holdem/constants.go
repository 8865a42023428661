package holdem

// Suit of a card. Order matches the table extractor's encoding.
type Suit uint8

const (
	SuitSpades   = Suit(0)
	SuitHearts   = Suit(1)
	SuitDiamonds = Suit(2)
	SuitClubs    = Suit(3)
)

var suit2string = map[Suit]string{
	SuitSpades:   "♠",
	SuitHearts:   "♥",
	SuitDiamonds: "♦",
	SuitClubs:    "♣",
}

// Rank of a card, 2..14 with Ace high.
type Rank uint8

const (
	RankTwo   = Rank(2)
	RankThree = Rank(3)
	RankFour  = Rank(4)
	RankFive  = Rank(5)
	RankSix   = Rank(6)
	RankSeven = Rank(7)
	RankEight = Rank(8)
	RankNine  = Rank(9)
	RankTen   = Rank(10)
	RankJack  = Rank(11)
	RankQueen = Rank(12)
	RankKing  = Rank(13)
	RankAce   = Rank(14)
)

var rank2string = map[Rank]string{
	RankTwo: "2", RankThree: "3", RankFour: "4", RankFive: "5",
	RankSix: "6", RankSeven: "7", RankEight: "8", RankNine: "9",
	RankTen: "T", RankJack: "J", RankQueen: "Q", RankKing: "K",
	RankAce: "A",
}

type Card struct {
	Rank Rank
	Suit Suit
}

func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Hash is the abstraction hash used for infoset keys: rank*4 + suit.
func (c Card) Hash() uint64 {
	return uint64(c.Rank)*4 + uint64(c.Suit)
}

func (c Card) String() string {
	return rank2string[c.Rank] + suit2string[c.Suit]
}

type Action uint8

const (
	ActionFold  = Action(0)
	ActionCheck = Action(1)
	ActionCall  = Action(2)
	ActionBet   = Action(3)
	ActionRaise = Action(4)
	ActionAllIn = Action(5)
)

var Action2string = map[Action]string{
	ActionFold:  "FOLD",
	ActionCheck: "CHECK",
	ActionCall:  "CALL",
	ActionBet:   "BET",
	ActionRaise: "RAISE",
	ActionAllIn: "ALL_IN",
}

func (a Action) String() string {
	if s, ok := Action2string[a]; ok {
		return s
	}
	return "UNKNOWN"
}

// Position at a 6-max table.
type Position uint8

const (
	PositionSmallBlind     = Position(0)
	PositionBigBlind       = Position(1)
	PositionUnderTheGun    = Position(2)
	PositionMiddlePosition = Position(3)
	PositionCutoff         = Position(4)
	PositionButton         = Position(5)
)

type BettingRound uint8

const (
	RoundPreflop = BettingRound(0)
	RoundFlop    = BettingRound(1)
	RoundTurn    = BettingRound(2)
	RoundRiver   = BettingRound(3)
)

var round2string = map[BettingRound]string{
	RoundPreflop: "preflop",
	RoundFlop:    "flop",
	RoundTurn:    "turn",
	RoundRiver:   "river",
}

func (r BettingRound) String() string {
	if s, ok := round2string[r]; ok {
		return s
	}
	return "unknown"
}
