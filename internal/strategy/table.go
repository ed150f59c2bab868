package strategy

import (
	"errors"
	"fmt"

	"maxjack/internal/game"
)

var (
	ErrMissingPair   = errors.New("pair missing from strategy table")
	ErrDuplicatePair = errors.New("pair listed twice in strategy table")
)

// MissingPairError names the starting pair a table lookup could not find.
type MissingPairError struct {
	Pair Pair
}

func (e *MissingPairError) Error() string {
	return fmt.Sprintf("strategy table has no entry for pair (%s)", e.Pair)
}

func (e *MissingPairError) Unwrap() error {
	return ErrMissingPair
}

// Table orders starting pairs by preference; index 0 is the best pair.
type Table struct {
	order      []Pair
	precedence map[Pair]int
}

// NewTable builds a table from pairs in preference order. The list must
// name each of the 91 pairs exactly once.
func NewTable(pairs []Pair) (*Table, error) {
	t := &Table{
		order:      make([]Pair, 0, len(pairs)),
		precedence: make(map[Pair]int, len(pairs)),
	}

	for _, p := range pairs {
		p = NewPair(p.Low, p.High)
		if !p.Valid() {
			return nil, fmt.Errorf("invalid pair %v in strategy table", p)
		}
		if _, ok := t.precedence[p]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePair, p)
		}
		t.precedence[p] = len(t.order)
		t.order = append(t.order, p)
	}

	for _, p := range AllPairs() {
		if _, ok := t.precedence[p]; !ok {
			return nil, &MissingPairError{Pair: p}
		}
	}

	return t, nil
}

func (t *Table) Len() int {
	return len(t.order)
}

// Pairs returns a copy of the preference order.
func (t *Table) Pairs() []Pair {
	out := make([]Pair, len(t.order))
	copy(out, t.order)
	return out
}

// Precedence returns the 0-based position of p.
func (t *Table) Precedence(p Pair) (int, error) {
	idx, ok := t.precedence[NewPair(p.Low, p.High)]
	if !ok {
		return 0, &MissingPairError{Pair: p}
	}
	return idx, nil
}

// Select picks the hand (1-based) whose starting pair ranks best. Equal
// pairs resolve to the lowest hand number.
func (t *Table) Select(pairs [game.HandsPerRound]Pair) (int, error) {
	chosen := 0
	best := 0
	for i, p := range pairs {
		idx, err := t.Precedence(p)
		if err != nil {
			return 0, fmt.Errorf("select hand %d: %w", i+1, err)
		}
		if chosen == 0 || idx < best {
			chosen = i + 1
			best = idx
		}
	}
	return chosen, nil
}

// SelectRound applies Select to the revealed cards of a dealt round.
func (t *Table) SelectRound(r game.Round) (int, error) {
	var pairs [game.HandsPerRound]Pair
	for i, cards := range r.StartingPairs() {
		pairs[i] = PairOf(cards)
	}
	return t.Select(pairs)
}
