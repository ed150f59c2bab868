package strategy

import "fmt"

// defaultOrder is the preference order mined from one million simulated
// rounds, best pair first.
var defaultOrder = []string{
	"5,6", "4,7", "3,8", "K,A", "10,A", "Q,A", "2,9", "J,A",
	"3,7", "4,6", "5,5", "2,8", "9,A", "8,A", "7,A", "6,A",
	"2,7", "4,5", "3,6", "5,A", "4,A", "A,A", "3,A", "2,A",
	"2,K", "2,Q", "2,10", "2,J", "3,Q", "5,7", "3,J", "3,K",
	"6,6", "3,10", "4,9", "4,8", "4,4", "3,5", "3,9", "2,6",
	"5,9", "4,10", "4,Q", "4,K", "6,7", "4,J", "7,8", "6,8",
	"5,8", "5,10", "5,J", "8,8", "5,Q", "5,K", "6,J", "6,Q",
	"6,K", "6,10", "6,9", "7,9", "7,7", "7,K", "8,9", "7,10",
	"7,J", "7,Q", "2,5", "3,4", "8,K", "8,J", "8,10", "9,9",
	"8,Q", "3,3", "2,4", "9,J", "9,K", "9,Q", "9,10", "2,3",
	"2,2", "10,10", "Q,Q", "10,Q", "K,K", "10,K", "J,J", "Q,K",
	"J,K", "J,Q", "10,J",
}

var defaultTable = mustTable(defaultOrder)

// Default returns the shipped strategy table.
func Default() *Table {
	return defaultTable
}

func mustTable(order []string) *Table {
	pairs := make([]Pair, len(order))
	for i, s := range order {
		p, err := ParsePair(s)
		if err != nil {
			panic(fmt.Sprintf("strategy: %v", err))
		}
		pairs[i] = p
	}
	t, err := NewTable(pairs)
	if err != nil {
		panic(fmt.Sprintf("strategy: %v", err))
	}
	return t
}
