package game

// BustLimit is the highest total that does not bust.
const BustLimit = 21

// Score totals a hand of any length, counting each ace as 11 and then
// reducing aces to 1 one at a time while the total is over 21.
func Score(cards []Card) int {
	score := 0
	aces := 0

	for _, card := range cards {
		score += card.Rank.Value()
		if card.Rank == Ace {
			aces++
		}
	}

	return reduceAces(score, aces)
}

func reduceAces(score, aces int) int {
	for score > BustLimit && aces > 0 {
		score -= 10
		aces--
	}
	return score
}

func IsBust(total int) bool {
	return total > BustLimit
}
