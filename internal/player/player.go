package player

import "maxjack/internal/game"

// Ledger is a running record of resolved rounds and the payout they
// earned, in stake units.
type Ledger struct {
	Rounds int
	Wins   int
	Losses int
	Pushes int
	Total  float64
}

// Add records a resolved round. Results without an outcome are ignored.
func (l *Ledger) Add(res game.Result) {
	switch res.Outcome {
	case game.OutcomeWin:
		l.Wins++
	case game.OutcomePush:
		l.Pushes++
	case game.OutcomeLose:
		l.Losses++
	default:
		return
	}

	l.Rounds++
	l.Total += res.Payout
}

func (l *Ledger) Merge(other Ledger) {
	l.Rounds += other.Rounds
	l.Wins += other.Wins
	l.Losses += other.Losses
	l.Pushes += other.Pushes
	l.Total += other.Total
}

// EV is the mean payout per round.
func (l Ledger) EV() float64 {
	if l.Rounds == 0 {
		return 0
	}
	return l.Total / float64(l.Rounds)
}

func (l Ledger) WinRate() float64 {
	if l.Rounds == 0 {
		return 0
	}
	return float64(l.Wins) / float64(l.Rounds) * 100
}
