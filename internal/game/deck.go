package game

import (
	"errors"
	"math/rand"
)

// DeckSize is the number of cards in one shoe.
const DeckSize = NumRanks * 4

var ErrEmptyDeck = errors.New("deck is empty")

type Deck struct {
	cards []Card
	drawn int
}

// NewDeck returns a shuffled 52-card deck. With suited set every rank
// appears once per suit; otherwise the four copies of each rank carry
// NoSuit. A seeded rng gives a reproducible order.
func NewDeck(rng *rand.Rand, suited bool) *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
	}

	for _, suit := range Suits() {
		if !suited {
			suit = NoSuit
		}
		for _, rank := range Ranks() {
			d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
		}
	}

	d.shuffle(rng)
	return d
}

func (d *Deck) shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes the next card. A deck is never refilled; a fresh round
// needs a fresh deck.
func (d *Deck) Draw() (Card, error) {
	if d.drawn >= len(d.cards) {
		return Card{}, ErrEmptyDeck
	}

	card := d.cards[d.drawn]
	d.drawn++
	return card, nil
}

func (d *Deck) Remaining() int {
	return len(d.cards) - d.drawn
}
