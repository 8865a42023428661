package holdem

import "math/rand"

// FullDeck returns all 52 cards in a fixed order.
func FullDeck() []Card {
	deck := make([]Card, 0, 52)
	for suit := range 4 {
		for rank := int(RankTwo); rank <= int(RankAce); rank++ {
			deck = append(deck, NewCard(Rank(rank), Suit(suit)))
		}
	}
	return deck
}

// RemainingDeck returns the deck minus the known cards.
func RemainingDeck(known ...Card) []Card {
	used := make(map[Card]bool, len(known))
	for _, c := range known {
		used[c] = true
	}
	deck := make([]Card, 0, 52-len(known))
	for _, c := range FullDeck() {
		if !used[c] {
			deck = append(deck, c)
		}
	}
	return deck
}

// Shuffle permutes the deck in place using the caller's rng.
func Shuffle(rng *rand.Rand, deck []Card) {
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}
