package game

import "fmt"

const (
	HandsPerRound = 4
	CardsPerHand  = 3
)

// Hand is one of the four dealt hands. Only the first two cards are shown
// before a hand is chosen.
type Hand [CardsPerHand]Card

func (h Hand) Cards() []Card {
	return h[:]
}

// StartingPair returns the two revealed cards in draw order.
func (h Hand) StartingPair() [2]Card {
	return [2]Card{h[0], h[1]}
}

func (h Hand) Score() int {
	return Score(h[:])
}

// Round holds four hands dealt from one deck.
type Round struct {
	Hands [HandsPerRound]Hand
}

// Deal draws twelve cards from d, three per hand, filling hand 1 first.
func Deal(d *Deck) (Round, error) {
	var r Round
	for i := range r.Hands {
		for j := range r.Hands[i] {
			card, err := d.Draw()
			if err != nil {
				return Round{}, fmt.Errorf("deal hand %d card %d: %w", i+1, j+1, err)
			}
			r.Hands[i][j] = card
		}
	}
	return r, nil
}

func (r Round) Totals() [HandsPerRound]int {
	var totals [HandsPerRound]int
	for i, h := range r.Hands {
		totals[i] = h.Score()
	}
	return totals
}

func (r Round) StartingPairs() [HandsPerRound][2]Card {
	var pairs [HandsPerRound][2]Card
	for i, h := range r.Hands {
		pairs[i] = h.StartingPair()
	}
	return pairs
}
