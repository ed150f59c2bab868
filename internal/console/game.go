package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"

	"maxjack/internal/game"
	"maxjack/internal/player"
)

const (
	choosePrompt   = "Choose a Hand (1-4): "
	continuePrompt = "Press Enter to play again or Q to quit: "
)

// errQuit ends the session when input runs out or the context is done.
var errQuit = errors.New("quit")

// Game is an interactive session: the player picks one of four hands per
// round and the running payout is reported on quit.
type Game struct {
	In     io.Reader
	Out    io.Writer
	Rand   *rand.Rand
	Suited bool
	Log    *slog.Logger
}

// Run plays rounds until the player quits, input ends or ctx is
// cancelled. All three stop the session cleanly and report the total.
func (g *Game) Run(ctx context.Context) (player.Ledger, error) {
	in := newLineReader(g.In)
	defer in.Close()

	log := g.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	var ledger player.Ledger
	fmt.Fprintln(g.Out, "Welcome to Max Jack!")
	fmt.Fprintln(g.Out)

	for ctx.Err() == nil {
		res, err := g.round(ctx, in)
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			return ledger, err
		}
		ledger.Add(res)
		log.Debug("round resolved", "hand", res.Chosen, "outcome", res.Outcome.String(), "total", ledger.Total)

		again, err := g.playAgain(ctx, in)
		if err != nil && !errors.Is(err, errQuit) {
			return ledger, err
		}
		if !again {
			break
		}
	}

	if ctx.Err() != nil {
		fmt.Fprintln(g.Out)
	}
	fmt.Fprintf(g.Out, "\nYou ended: %s\n", Units(ledger.Total))
	log.Info("session finished", "rounds", ledger.Rounds, "total", ledger.Total)
	return ledger, nil
}

func (g *Game) round(ctx context.Context, in *lineReader) (game.Result, error) {
	r, err := game.Deal(game.NewDeck(g.Rand, g.Suited))
	if err != nil {
		return game.Result{}, err
	}

	fmt.Fprintln(g.Out, RenderHidden(r))

	chosen, err := g.chooseHand(ctx, in)
	if err != nil {
		return game.Result{}, err
	}

	fmt.Fprintln(g.Out)
	fmt.Fprintln(g.Out, RenderRevealed(r))

	res, err := game.Resolve(chosen, r.Totals())
	if err != nil {
		return game.Result{}, err
	}
	fmt.Fprintln(g.Out, RenderResult(res))
	return res, nil
}

func (g *Game) chooseHand(ctx context.Context, in *lineReader) (int, error) {
	for {
		fmt.Fprint(g.Out, choosePrompt)
		line, err := in.Next(ctx)
		if err != nil {
			return 0, err
		}
		switch line {
		case "1", "2", "3", "4":
			return strconv.Atoi(line)
		}
		fmt.Fprintln(g.Out, "Invalid input. Please enter 1, 2, 3, or 4.")
	}
}

func (g *Game) playAgain(ctx context.Context, in *lineReader) (bool, error) {
	for {
		fmt.Fprint(g.Out, continuePrompt)
		line, err := in.Next(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "q":
			return false, nil
		case "":
			return true, nil
		}
		fmt.Fprintln(g.Out, "Invalid input. Press Enter to play again or Q to quit.")
	}
}

// readLine returns the next trimmed line. A final line without a newline
// is still returned; errQuit follows once input is exhausted.
func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", errQuit
		}
		return strings.TrimSpace(line), nil
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

type lineResult struct {
	line string
	err  error
}

// lineReader reads lines on its own goroutine so a blocked read never
// holds up cancellation. One read is requested per Next call.
type lineReader struct {
	requests chan struct{}
	results  chan lineResult
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{
		requests: make(chan struct{}),
		results:  make(chan lineResult, 1),
	}
	go lr.loop(bufio.NewReader(r))
	return lr
}

func (lr *lineReader) loop(in *bufio.Reader) {
	for range lr.requests {
		line, err := readLine(in)
		lr.results <- lineResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

// Next returns the next line, or errQuit once input ends or ctx is done.
func (lr *lineReader) Next(ctx context.Context) (string, error) {
	select {
	case lr.requests <- struct{}{}:
	case <-ctx.Done():
		return "", errQuit
	}

	select {
	case res := <-lr.results:
		return res.line, res.err
	case <-ctx.Done():
		return "", errQuit
	}
}

// Close stops the reader goroutine once its pending read, if any, returns.
func (lr *lineReader) Close() {
	close(lr.requests)
}
