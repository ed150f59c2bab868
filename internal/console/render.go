package console

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"maxjack/internal/game"
	"maxjack/internal/player"
	"maxjack/internal/strategy"
)

var printer = message.NewPrinter(language.English)

// Count formats n with thousands separators.
func Count(n int) string {
	return printer.Sprintf("%d", n)
}

// Units formats a payout total without trailing zeros.
func Units(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func cards(cs []game.Card) string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}

// RenderHidden shows the two revealed cards of each hand.
func RenderHidden(r game.Round) string {
	var b strings.Builder
	b.WriteString(pterm.Bold.Sprint("Your Hands:") + "\n")
	for i, h := range r.Hands {
		fmt.Fprintf(&b, "  Hand %d: %s, %s\n", i+1, cards(h[:2]), pterm.Gray("<card hidden>"))
	}
	return b.String()
}

// RenderRevealed shows every card and total.
func RenderRevealed(r game.Round) string {
	var b strings.Builder
	b.WriteString(pterm.Bold.Sprint("Revealing all hands:") + "\n")
	for i, h := range r.Hands {
		total := h.Score()
		value := strconv.Itoa(total)
		if game.IsBust(total) {
			value = pterm.Red(value + " (bust)")
		}
		fmt.Fprintf(&b, "  Hand %d: %s  | Value: %s\n", i+1, cards(h.Cards()), value)
	}
	return b.String()
}

func RenderResult(res game.Result) string {
	var b strings.Builder
	if res.AllBust {
		b.WriteString(pterm.Red("All Busts, Dealer Win") + "\n")
	}
	switch res.Outcome {
	case game.OutcomeWin:
		b.WriteString(pterm.Green("Result: Win! (+1.5)"))
	case game.OutcomePush:
		b.WriteString(pterm.Yellow("Result: Push (tie)"))
	default:
		b.WriteString(pterm.Red("Result: Lose (-1)"))
	}
	b.WriteString("\n")
	return b.String()
}

// RenderMining tabulates the top folded pair frequencies.
func RenderMining(freqs []strategy.Frequency, runs, top int) (string, error) {
	if top > len(freqs) {
		top = len(freqs)
	}

	data := pterm.TableData{{"#", "Pair", "Frequency"}}
	for i, f := range freqs[:top] {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			f.Pair.String(),
			Count(int(math.Round(f.Count))),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithRightAlignment().WithData(data).Srender()
	if err != nil {
		return "", fmt.Errorf("render mining table: %w", err)
	}

	title := fmt.Sprintf("Top %d Winning Starting Pairs (out of %s runs):", top, Count(runs))
	return pterm.Bold.Sprint(title) + "\n" + table + "\n", nil
}

func RenderEV(l player.Ledger) (string, error) {
	data := pterm.TableData{
		{"Wins", Count(l.Wins)},
		{"Losses", Count(l.Losses)},
		{"Pushes", Count(l.Pushes)},
		{"Total", Units(l.Total)},
		{"EV", fmt.Sprintf("%.5f", l.EV())},
	}

	table, err := pterm.DefaultTable.WithData(data).Srender()
	if err != nil {
		return "", fmt.Errorf("render ev table: %w", err)
	}

	title := fmt.Sprintf("Simulation Results for %s games:", Count(l.Rounds))
	return pterm.Bold.Sprint(title) + "\n" + table + "\n", nil
}
