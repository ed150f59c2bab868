package game

import (
	"errors"
	"fmt"
)

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomePush
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomePush:
		return "push"
	case OutcomeLose:
		return "lose"
	default:
		return "none"
	}
}

// Payout multipliers in stake units.
const (
	WinPayout  = 1.5
	PushPayout = 0.0
	LosePayout = -1.0
)

var ErrInvalidHand = errors.New("hand choice must be between 1 and 4")

type Result struct {
	Chosen  int
	Outcome Outcome
	Payout  float64

	// Best is the highest non-bust total, zero when every hand busts.
	Best    int
	AllBust bool
}

// BestTotal returns the highest total not over 21. ok is false when all
// hands bust.
func BestTotal(totals [HandsPerRound]int) (best int, ok bool) {
	for _, t := range totals {
		if IsBust(t) {
			continue
		}
		if !ok || t > best {
			best = t
			ok = true
		}
	}
	return best, ok
}

// Resolve scores the chosen hand (1-based) against the four totals. A
// unique best total wins, a shared best total pushes, anything else loses,
// including every round where all four hands bust.
func Resolve(chosen int, totals [HandsPerRound]int) (Result, error) {
	if chosen < 1 || chosen > HandsPerRound {
		return Result{}, fmt.Errorf("resolve %d: %w", chosen, ErrInvalidHand)
	}

	best, ok := BestTotal(totals)
	if !ok {
		return Result{Chosen: chosen, Outcome: OutcomeLose, Payout: LosePayout, AllBust: true}, nil
	}

	res := Result{Chosen: chosen, Best: best}
	if totals[chosen-1] != best {
		res.Outcome = OutcomeLose
		res.Payout = LosePayout
		return res, nil
	}

	count := 0
	for _, t := range totals {
		if t == best {
			count++
		}
	}

	if count > 1 {
		res.Outcome = OutcomePush
		res.Payout = PushPayout
	} else {
		res.Outcome = OutcomeWin
		res.Payout = WinPayout
	}
	return res, nil
}
