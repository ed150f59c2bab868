package strategy

import (
	"fmt"
	"strings"

	"maxjack/internal/game"
)

// Pair is an unordered starting pair stored with the lower rank first, so
// {6,5} and {5,6} are the same key.
type Pair struct {
	Low  game.Rank
	High game.Rank
}

// NumPairs is the number of unordered rank pairs: 13 same-rank pairs plus
// 78 mixed pairs.
const NumPairs = game.NumRanks * (game.NumRanks + 1) / 2

func NewPair(a, b game.Rank) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{Low: a, High: b}
}

func PairOf(cards [2]game.Card) Pair {
	return NewPair(cards[0].Rank, cards[1].Rank)
}

// ParsePair reads "5,6" or "5, 6".
func ParsePair(s string) (Pair, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Pair{}, fmt.Errorf("parse pair %q: want two ranks", s)
	}
	a, err := game.ParseRank(strings.TrimSpace(parts[0]))
	if err != nil {
		return Pair{}, fmt.Errorf("parse pair %q: %w", s, err)
	}
	b, err := game.ParseRank(strings.TrimSpace(parts[1]))
	if err != nil {
		return Pair{}, fmt.Errorf("parse pair %q: %w", s, err)
	}
	return NewPair(a, b), nil
}

func (p Pair) Valid() bool {
	return p.Low.Valid() && p.High.Valid() && p.Low <= p.High
}

func (p Pair) String() string {
	return p.Low.String() + ", " + p.High.String()
}

// AllPairs enumerates every pair in rank order, low rank outer.
func AllPairs() []Pair {
	pairs := make([]Pair, 0, NumPairs)
	for _, low := range game.Ranks() {
		for _, high := range game.Ranks()[low:] {
			pairs = append(pairs, Pair{Low: low, High: high})
		}
	}
	return pairs
}
