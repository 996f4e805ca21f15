// internal/eval/evaluator.go
//
// Strategy evaluation over a whole dictionary.
// Responsibilities:
//   - Play one game per answer, each with its own engine and strategy.
//   - Record every outcome, failures included, without stopping the sweep.
//   - Report progress and the running mean as games complete.
//
// Notes:
//   - Games share only the read-only dictionary, so they can run on a
//     bounded pool of goroutines; results keep answer order.
//   - Only cancellation of the parent context aborts a run.
package eval

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/CarsonDavis/wordle-solver/internal/game"
	"github.com/CarsonDavis/wordle-solver/internal/sim"
)

// logEvery is how often (in games) the running mean is logged.
const logEvery = 50

// StrategyFactory builds a fresh strategy for one answer.
type StrategyFactory func(answer string) sim.Strategy

// Progress is passed to OnResult after each completed game.
type Progress struct {
	Done        int
	Total       int
	Failures    int
	RunningMean float64
}

// Evaluator runs a strategy against every answer.
type Evaluator struct {
	Dict     *game.Dictionary
	Answers  []string // nil means every dictionary word
	Strategy StrategyFactory
	Scorer   game.Scorer
	MaxTurns int
	Workers  int // <= 1 runs sequentially
	Meta     Meta
	Logger   *zerolog.Logger
	OnResult func(WordResult, Progress)
}

// Run plays every answer and returns the report. Per-answer failures are
// recorded in the report; the returned error is only set on cancellation.
func (e *Evaluator) Run(ctx context.Context) (*Report, error) {
	logger := log.Logger
	if e.Logger != nil {
		logger = *e.Logger
	}
	answers := e.Answers
	if answers == nil {
		answers = e.Dict.Words()
	}

	report := &Report{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Meta:      e.Meta,
		StartedAt: time.Now().UTC(),
		Results:   make([]WordResult, len(answers)),
	}

	var (
		mu       sync.Mutex
		done     int
		solved   int
		failures int
		sum      int
	)
	record := func(i int, r WordResult) {
		mu.Lock()
		defer mu.Unlock()
		report.Results[i] = r
		done++
		if r.Failed() {
			failures++
		} else {
			solved++
			sum += r.Guesses
		}
		p := Progress{Done: done, Total: len(answers), Failures: failures}
		if solved > 0 {
			p.RunningMean = float64(sum) / float64(solved)
		}
		if done%logEvery == 0 {
			logger.Info().Int("done", done).Int("total", p.Total).
				Float64("mean", p.RunningMean).Int("failures", failures).Msg("evaluating")
		}
		if e.OnResult != nil {
			e.OnResult(r, p)
		}
	}

	workers := max(e.Workers, 1)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, answer := range answers {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r := e.play(gctx, answer, logger)
			if err := gctx.Err(); err != nil {
				return err
			}
			record(i, r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report.FinishedAt = time.Now().UTC()
	logger.Info().Str("run", report.ID).Object("summary", report.Summary()).Msg("evaluation finished")
	return report, nil
}

// play runs a single game and converts its outcome into a WordResult.
// A panicking strategy fails only its own answer.
func (e *Evaluator) play(ctx context.Context, answer string, logger zerolog.Logger) (out WordResult) {
	defer func() {
		if p := recover(); p != nil {
			logger.Error().Str("answer", answer).Interface("panic", p).Msg("game panicked")
			out = WordResult{Word: answer, Err: fmt.Sprintf("panic: %v", p)}
		}
	}()
	h := sim.NewHarness(answer, e.Dict, e.Strategy(answer),
		sim.WithScorer(e.Scorer),
		sim.WithMaxTurns(e.MaxTurns),
		sim.WithLogger(logger),
	)
	res, err := h.Play(ctx)
	if err != nil {
		logger.Warn().Err(err).Str("answer", answer).Msg("game failed")
		return WordResult{Word: answer, Guesses: res.Guesses, Err: err.Error()}
	}
	return WordResult{Word: answer, Guesses: res.Guesses}
}
