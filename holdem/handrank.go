package holdem

import (
	"slices"
)

// HandRank is a comparable rank vector for lexicographic comparison.
// Format: [category, ...ranks in priority order]
type HandRank []int16

func CompareHandRanks(a, b HandRank) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return len(a) - len(b)
}

func ConcatCards(holeCards, communityCards []Card) []Card {
	result := make([]Card, 0, len(holeCards)+len(communityCards))
	result = append(result, holeCards...)
	result = append(result, communityCards...)
	return result
}

func getKickers(allCards []Card, comboCards []Card, numKickers int) []int16 {
	used := make(map[Card]bool, len(comboCards))
	for _, c := range comboCards {
		used[c] = true
	}
	remaining := make([]Card, 0, len(allCards)-len(comboCards))
	for _, c := range allCards {
		if !used[c] {
			remaining = append(remaining, c)
		}
	}
	slices.SortFunc(remaining, func(a, b Card) int {
		return int(b.Rank) - int(a.Rank)
	})
	result := make([]int16, 0, numKickers)
	for i := 0; i < numKickers && i < len(remaining); i++ {
		result = append(result, int16(remaining[i].Rank))
	}
	return result
}

func straightTopRank(combo []Card) int16 {
	hasAce := false
	hasTwo := false
	for _, c := range combo {
		if c.Rank == RankAce {
			hasAce = true
		}
		if c.Rank == RankTwo {
			hasTwo = true
		}
	}
	if hasAce && hasTwo {
		return int16(RankFive) // A-2-3-4-5: top is the five
	}
	maxRank := int16(0)
	for _, c := range combo {
		if int16(c.Rank) > maxRank {
			maxRank = int16(c.Rank)
		}
	}
	return maxRank
}

// GetFlush returns flush cards (all cards of the flush suit)
func GetFlush(cards ...Card) ([]Card, bool) {
	for suit := range 4 {
		cnt := 0
		for _, c := range cards {
			if c.Suit == Suit(suit) {
				cnt++
			}
		}
		if cnt >= 5 {
			flushCards := make([]Card, 0, cnt)
			for _, c := range cards {
				if c.Suit == Suit(suit) {
					flushCards = append(flushCards, c)
				}
			}
			return flushCards, true
		}
	}
	return nil, false
}

// GetStraight returns the HIGHEST straight from given cards
func GetStraight(cards ...Card) ([]Card, bool) {
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	slices.SortFunc(sorted, func(c1, c2 Card) int {
		return int(c1.Rank) - int(c2.Rank)
	})

	uniqueCards := make([]Card, 0, len(sorted))
	prevRank := Rank(0)
	for _, c := range sorted {
		if c.Rank != prevRank {
			uniqueCards = append(uniqueCards, c)
			prevRank = c.Rank
		}
	}

	// Check normal straights first (from highest window to find best)
	if len(uniqueCards) >= 5 {
		for i := len(uniqueCards) - 5; i >= 0; i-- {
			if uniqueCards[i+4].Rank-uniqueCards[i].Rank == 4 {
				straight := make([]Card, 0, 5)
				targetRank := uniqueCards[i].Rank
				for j := 0; j < 5; j++ {
					for _, c := range sorted {
						if c.Rank == targetRank+Rank(j) {
							straight = append(straight, c)
							break
						}
					}
				}
				return straight, true
			}
		}
	}

	// Wheel (A-2-3-4-5) as fallback
	hasAce := len(uniqueCards) > 0 && uniqueCards[len(uniqueCards)-1].Rank == RankAce
	hasTwo := len(uniqueCards) > 0 && uniqueCards[0].Rank == RankTwo
	if hasAce && hasTwo {
		required := []Rank{RankThree, RankFour, RankFive}
		allPresent := true
		for _, r := range required {
			found := false
			for _, c := range uniqueCards {
				if c.Rank == r {
					found = true
					break
				}
			}
			if !found {
				allPresent = false
				break
			}
		}
		if allPresent {
			straight := make([]Card, 0, 5)
			for _, r := range []Rank{RankAce, RankTwo, RankThree, RankFour, RankFive} {
				for _, c := range sorted {
					if c.Rank == r {
						straight = append(straight, c)
						break
					}
				}
			}
			return straight, true
		}
	}

	return nil, false
}

func GetStraightFlush(cards ...Card) ([]Card, bool) {
	flushCards, isFlush := GetFlush(cards...)
	if !isFlush {
		return nil, false
	}
	return GetStraight(flushCards...)
}

func getRankGroups(cards []Card, size int) ([]Card, bool) {
	rankCount := make(map[Rank][]Card)
	for _, c := range cards {
		rankCount[c.Rank] = append(rankCount[c.Rank], c)
	}
	var best []Card
	for _, group := range rankCount {
		if len(group) >= size {
			if best == nil || group[0].Rank > best[0].Rank {
				best = group[:size]
			}
		}
	}
	if best != nil {
		return best, true
	}
	return nil, false
}

func GetFour(cards ...Card) ([]Card, bool) {
	return getRankGroups(cards, 4)
}

func GetThree(cards ...Card) ([]Card, bool) {
	return getRankGroups(cards, 3)
}

func GetPair(cards ...Card) ([]Card, bool) {
	return getRankGroups(cards, 2)
}

func GetTwoPairs(cards ...Card) ([]Card, bool) {
	first, ok := GetPair(cards...)
	if !ok {
		return nil, false
	}
	remaining := make([]Card, 0, len(cards)-2)
	for _, c := range cards {
		if c != first[0] && c != first[1] {
			remaining = append(remaining, c)
		}
	}
	second, ok := GetPair(remaining...)
	if !ok {
		return nil, false
	}
	return append(first, second...), true
}

func GetFullHouse(cards ...Card) ([]Card, bool) {
	three, ok := GetThree(cards...)
	if !ok {
		return nil, false
	}
	remaining := make([]Card, 0, len(cards)-3)
	for _, c := range cards {
		if c != three[0] && c != three[1] && c != three[2] {
			remaining = append(remaining, c)
		}
	}
	pair, ok := GetPair(remaining...)
	if !ok {
		return nil, false
	}
	return append(three, pair...), true
}

// EvaluateHandRank builds the full comparable rank vector for a set of
// 5 to 7 cards.
func EvaluateHandRank(allCards []Card) HandRank {
	if combo, ok := GetStraightFlush(allCards...); ok {
		return HandRank{8, straightTopRank(combo)}
	}
	if combo, ok := GetFour(allCards...); ok {
		rank := HandRank{7, int16(combo[0].Rank)}
		return append(rank, getKickers(allCards, combo, 1)...)
	}
	if combo, ok := GetFullHouse(allCards...); ok {
		return HandRank{6, int16(combo[0].Rank), int16(combo[3].Rank)}
	}
	if combo, ok := GetFlush(allCards...); ok {
		slices.SortFunc(combo, func(a, b Card) int {
			return int(b.Rank) - int(a.Rank)
		})
		rank := HandRank{5}
		for i := 0; i < 5 && i < len(combo); i++ {
			rank = append(rank, int16(combo[i].Rank))
		}
		return rank
	}
	if combo, ok := GetStraight(allCards...); ok {
		return HandRank{4, straightTopRank(combo)}
	}
	if combo, ok := GetThree(allCards...); ok {
		rank := HandRank{3, int16(combo[0].Rank)}
		return append(rank, getKickers(allCards, combo, 2)...)
	}
	if combo, ok := GetTwoPairs(allCards...); ok {
		high := int16(combo[0].Rank)
		low := int16(combo[2].Rank)
		if low > high {
			high, low = low, high
		}
		rank := HandRank{2, high, low}
		return append(rank, getKickers(allCards, combo, 1)...)
	}
	if combo, ok := GetPair(allCards...); ok {
		rank := HandRank{1, int16(combo[0].Rank)}
		return append(rank, getKickers(allCards, combo, 3)...)
	}

	sorted := make([]Card, len(allCards))
	copy(sorted, allCards)
	slices.SortFunc(sorted, func(a, b Card) int {
		return int(b.Rank) - int(a.Rank)
	})
	rank := HandRank{0}
	for i := 0; i < 5 && i < len(sorted); i++ {
		rank = append(rank, int16(sorted[i].Rank))
	}
	return rank
}

var categoryNames = [9]string{
	"High Card", "Pair", "Two Pairs", "Three of a Kind",
	"Straight", "Flush", "Full House", "Four of a Kind", "Straight Flush",
}

// EvaluateHand returns (combo cards, category, name)
func EvaluateHand(cards ...Card) ([]Card, int, string) {
	if combo, ok := GetStraightFlush(cards...); ok {
		return combo, 8, categoryNames[8]
	}
	if combo, ok := GetFour(cards...); ok {
		return combo, 7, categoryNames[7]
	}
	if combo, ok := GetFullHouse(cards...); ok {
		return combo, 6, categoryNames[6]
	}
	if combo, ok := GetFlush(cards...); ok {
		return combo, 5, categoryNames[5]
	}
	if combo, ok := GetStraight(cards...); ok {
		return combo, 4, categoryNames[4]
	}
	if combo, ok := GetThree(cards...); ok {
		return combo, 3, categoryNames[3]
	}
	if combo, ok := GetTwoPairs(cards...); ok {
		return combo, 2, categoryNames[2]
	}
	if combo, ok := GetPair(cards...); ok {
		return combo, 1, categoryNames[1]
	}
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	slices.SortFunc(sorted, func(a, b Card) int {
		return int(b.Rank) - int(a.Rank)
	})
	if len(sorted) > 5 {
		sorted = sorted[:5]
	}
	return sorted, 0, categoryNames[0]
}

// ComputeWinners returns a bitmask: 1 = winner, 0 = loser. Supports split pots (ties).
func ComputeWinners(playersCards [][]Card, communityCards []Card) []int {
	numPlayers := len(playersCards)
	result := make([]int, numPlayers)

	handRanks := make([]HandRank, numPlayers)
	for i, cards := range playersCards {
		if cards == nil {
			handRanks[i] = HandRank{-1}
		} else {
			handRanks[i] = EvaluateHandRank(ConcatCards(cards, communityCards))
		}
	}

	bestRank := HandRank{-1}
	for _, rank := range handRanks {
		if CompareHandRanks(rank, bestRank) > 0 {
			bestRank = rank
		}
	}

	for i, rank := range handRanks {
		if CompareHandRanks(rank, bestRank) == 0 {
			result[i] = 1
		}
	}
	return result
}
