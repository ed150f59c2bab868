package console

import (
	"bytes"
	"context"
	"io"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maxjack/internal/game"
	"maxjack/internal/player"
)

func playSession(t *testing.T, seed int64, input string) (player.Ledger, string) {
	t.Helper()
	var out bytes.Buffer
	g := &Game{
		In:     strings.NewReader(input),
		Out:    &out,
		Rand:   rand.New(rand.NewSource(seed)),
		Suited: true,
	}

	ledger, err := g.Run(context.Background())
	require.NoError(t, err)
	return ledger, out.String()
}

// expected replays the same deals and choices without the console.
func expected(t *testing.T, seed int64, choices ...int) player.Ledger {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var l player.Ledger
	for _, c := range choices {
		r, err := game.Deal(game.NewDeck(rng, true))
		require.NoError(t, err)
		res, err := game.Resolve(c, r.Totals())
		require.NoError(t, err)
		l.Add(res)
	}
	return l
}

func TestRunPlaysUntilQuit(t *testing.T) {
	ledger, out := playSession(t, 12, "2\n\n4\nq\n")

	assert.Equal(t, expected(t, 12, 2, 4), ledger)
	assert.Equal(t, 2, strings.Count(out, choosePrompt))
	assert.Equal(t, 2, strings.Count(out, continuePrompt))
	assert.Contains(t, out, "Welcome to Max Jack!")
	assert.Contains(t, out, "You ended: "+Units(ledger.Total))
	assert.Equal(t, 8, strings.Count(out, "<card hidden>"))
}

func TestRunRepromptsOnBadChoice(t *testing.T) {
	ledger, out := playSession(t, 3, "0\nfive\n 3 \nQ\n")

	assert.Equal(t, expected(t, 3, 3), ledger)
	assert.Equal(t, 3, strings.Count(out, choosePrompt))
	assert.Equal(t, 2, strings.Count(out, "Invalid input. Please enter 1, 2, 3, or 4."))
}

func TestRunRepromptsOnBadContinue(t *testing.T) {
	ledger, out := playSession(t, 8, "1\nyes\nquit\n\n1\nq\n")

	assert.Equal(t, 2, ledger.Rounds)
	assert.Equal(t, 2, strings.Count(out, "Invalid input. Press Enter to play again or Q to quit."))
}

func TestRunTreatsEOFAsQuit(t *testing.T) {
	ledger, out := playSession(t, 5, "1\n\n")

	assert.Equal(t, expected(t, 5, 1), ledger)
	assert.Contains(t, out, "You ended: ")

	ledger, out = playSession(t, 5, "")
	assert.Zero(t, ledger.Rounds)
	assert.Contains(t, out, "You ended: 0")
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	g := &Game{In: strings.NewReader("1\n"), Out: &out, Rand: rand.New(rand.NewSource(1))}
	ledger, err := g.Run(ctx)
	require.NoError(t, err)

	assert.Zero(t, ledger.Rounds)
	assert.Contains(t, out.String(), "You ended: 0")
}

// syncBuffer lets the test watch output written by Run's goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type runResult struct {
	ledger player.Ledger
	err    error
}

func startSession(ctx context.Context, in io.Reader, out io.Writer, seed int64) <-chan runResult {
	done := make(chan runResult, 1)
	g := &Game{In: in, Out: out, Rand: rand.New(rand.NewSource(seed)), Suited: true}
	go func() {
		ledger, err := g.Run(ctx)
		done <- runResult{ledger: ledger, err: err}
	}()
	return done
}

func waitForRun(t *testing.T, done <-chan runResult) runResult {
	t.Helper()
	select {
	case res := <-done:
		return res
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
		return runResult{}
	}
}

func TestRunCancelWhileWaitingForChoice(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	done := startSession(ctx, pr, out, 4)

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), choosePrompt)
	}, 2*time.Second, 5*time.Millisecond)
	cancel()

	res := waitForRun(t, done)
	require.NoError(t, res.err)
	assert.Zero(t, res.ledger.Rounds)
	assert.Contains(t, out.String(), "You ended: 0")
}

func TestRunCancelWhileWaitingToContinue(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	done := startSession(ctx, pr, out, 6)

	go io.WriteString(pw, "3\n")

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), continuePrompt)
	}, 2*time.Second, 5*time.Millisecond)
	cancel()

	res := waitForRun(t, done)
	require.NoError(t, res.err)
	assert.Equal(t, expected(t, 6, 3), res.ledger)
	assert.Contains(t, out.String(), "You ended: "+Units(res.ledger.Total))
}

func TestReadLineLastLineWithoutNewline(t *testing.T) {
	ledger, _ := playSession(t, 9, "4\nq")
	assert.Equal(t, expected(t, 9, 4), ledger)
}
