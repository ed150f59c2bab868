package strategy

import (
	"sort"

	"maxjack/internal/game"
)

// PairSymmetryMultiplier scales same-rank pair counts so they compare
// with mixed pairs, which are observed in two draw orders.
const PairSymmetryMultiplier = 2.6710816777

// Counts tallies winning starting pairs by draw order: [first][second].
type Counts struct {
	Rounds int
	Wins   [game.NumRanks][game.NumRanks]uint64
}

func NewCounts() *Counts {
	return &Counts{}
}

// Record credits the starting pair of every hand that reaches the round's
// best non-bust total. Tied hands are all credited; a round where every
// hand busts credits nothing.
func (c *Counts) Record(r game.Round) {
	c.Rounds++

	totals := r.Totals()
	best, ok := game.BestTotal(totals)
	if !ok {
		return
	}

	for i, h := range r.Hands {
		if totals[i] == best {
			c.Wins[h[0].Rank][h[1].Rank]++
		}
	}
}

// Merge adds other into c.
func (c *Counts) Merge(other *Counts) {
	c.Rounds += other.Rounds
	for i := range c.Wins {
		for j := range c.Wins[i] {
			c.Wins[i][j] += other.Wins[i][j]
		}
	}
}

// Frequency is a folded, unordered pair count.
type Frequency struct {
	Pair  Pair
	Count float64
}

// Fold collapses the directional counts into the 91 unordered pairs and
// sorts them by count, highest first. Equal counts keep rank order.
func (c *Counts) Fold() []Frequency {
	freqs := make([]Frequency, 0, NumPairs)
	for _, p := range AllPairs() {
		var count float64
		if p.Low == p.High {
			count = PairSymmetryMultiplier * float64(c.Wins[p.Low][p.High])
		} else {
			count = float64(c.Wins[p.Low][p.High] + c.Wins[p.High][p.Low])
		}
		freqs = append(freqs, Frequency{Pair: p, Count: count})
	}

	sort.SliceStable(freqs, func(i, j int) bool {
		return freqs[i].Count > freqs[j].Count
	})
	return freqs
}

// Ranking turns folded frequencies into a strategy table.
func Ranking(freqs []Frequency) (*Table, error) {
	pairs := make([]Pair, len(freqs))
	for i, f := range freqs {
		pairs[i] = f.Pair
	}
	return NewTable(pairs)
}
