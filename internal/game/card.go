package game

import "fmt"

type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the size of the rank alphabet.
const NumRanks = 13

var rankNames = [NumRanks]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

var rankValues = [NumRanks]int{2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10, 10, 11}

// Ranks lists every rank in table order, 2 through A.
func Ranks() []Rank {
	ranks := make([]Rank, NumRanks)
	for i := range ranks {
		ranks[i] = Rank(i)
	}
	return ranks
}

func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Value is the base value before ace reduction: face value, 10 for
// J/Q/K and 11 for an ace.
func (r Rank) Value() int {
	if !r.Valid() {
		return 0
	}
	return rankValues[r]
}

func ParseRank(s string) (Rank, error) {
	for i, name := range rankNames {
		if name == s {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("unknown rank %q", s)
}

type Suit int

const (
	NoSuit Suit = iota
	Hearts
	Diamonds
	Clubs
	Spades
)

var suitNames = map[Suit]string{
	Hearts:   "Hearts",
	Diamonds: "Diamonds",
	Clubs:    "Clubs",
	Spades:   "Spades",
}

var suitSymbols = map[Suit]string{
	Hearts:   "♥",
	Diamonds: "♦",
	Clubs:    "♣",
	Spades:   "♠",
}

// Suits lists the four display suits.
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}

func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return ""
}

func (s Suit) Symbol() string {
	return suitSymbols[s]
}

// Card is a rank with an optional suit. The suit never affects scoring.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	if c.Suit == NoSuit {
		return c.Rank.String()
	}
	return c.Rank.String() + c.Suit.Symbol()
}
