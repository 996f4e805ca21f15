// internal/sim/harness.go
//
// Self-play against a known answer.
// Responsibilities:
//   - Ask the strategy for a guess, count it, stop when it is the answer.
//   - Otherwise score it, feed the feedback into a fresh engine, continue.
//
// Notes:
//   - The loop is iterative; an optional turn cap ends runaway games.
//   - The strategy only sees the engine, never the answer.
package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/CarsonDavis/wordle-solver/internal/game"
)

// ErrMaxTurns is returned when a game hits its turn cap unsolved.
var ErrMaxTurns = errors.New("turn limit reached")

// Result describes one finished game.
type Result struct {
	Answer  string      `json:"answer"`
	Guesses int         `json:"guesses"`
	Path    []game.Turn `json:"-"`
}

// Harness plays a single game.
type Harness struct {
	answer   string
	engine   *game.Engine
	strategy Strategy
	scorer   game.Scorer
	maxTurns int
	log      zerolog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithScorer replaces the default per-position scorer.
func WithScorer(s game.Scorer) Option {
	return func(h *Harness) {
		if s != nil {
			h.scorer = s
		}
	}
}

// WithMaxTurns caps the number of guesses; 0 means no cap.
func WithMaxTurns(n int) Option {
	return func(h *Harness) { h.maxTurns = n }
}

// WithLogger sets the logger used for per-turn debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(h *Harness) { h.log = l }
}

// NewHarness prepares a game for answer over dict.
func NewHarness(answer string, dict *game.Dictionary, strategy Strategy, opts ...Option) *Harness {
	h := &Harness{
		answer:   answer,
		engine:   game.NewEngine(dict),
		strategy: strategy,
		scorer:   game.Score,
		log:      log.Logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Engine exposes the game's constraint state.
func (h *Harness) Engine() *game.Engine { return h.engine }

// Play runs the game to completion and returns the guess count.
// On failure the partial result is returned alongside the error.
func (h *Harness) Play(ctx context.Context) (Result, error) {
	res := Result{Answer: h.answer}
	if n := h.engine.WordLength(); len(h.answer) != n {
		return res, fmt.Errorf("%w: answer %q has %d letters, word length is %d",
			game.ErrLengthMismatch, h.answer, len(h.answer), n)
	}
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if h.maxTurns > 0 && res.Guesses >= h.maxTurns {
			return res, fmt.Errorf("%w: %q unsolved after %d guesses", ErrMaxTurns, h.answer, res.Guesses)
		}

		guess, err := h.strategy.Choose(res.Guesses+1, h.engine)
		if err != nil {
			return res, fmt.Errorf("answer %q, turn %d: %w", h.answer, res.Guesses+1, err)
		}
		if len(guess) != len(h.answer) {
			return res, fmt.Errorf("%w: guess %q has %d letters, word length is %d",
				game.ErrLengthMismatch, guess, len(guess), len(h.answer))
		}
		res.Guesses++

		turn, err := h.scorer(guess, h.answer)
		if err != nil {
			return res, fmt.Errorf("answer %q, guess %q: %w", h.answer, guess, err)
		}
		res.Path = append(res.Path, turn)

		if guess == h.answer {
			h.log.Debug().Str("answer", h.answer).Int("guesses", res.Guesses).Msg("solved")
			return res, nil
		}

		remaining, err := h.engine.Update(turn)
		h.log.Debug().
			Str("guess", guess).
			Str("pattern", turn.Pattern()).
			Int("remaining", len(remaining)).
			Msg("turn")
		if err != nil {
			return res, fmt.Errorf("answer %q, turn %d: %w", h.answer, res.Guesses, err)
		}
	}
}
