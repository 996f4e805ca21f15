// internal/sim/strategy.go
//
// Guess selection strategies. Every way of picking the next guess is a
// Strategy, so the harness can be driven by a seeded random choice in an
// evaluation and by a fixed choice in a test.
package sim

import (
	"math/rand/v2"

	"github.com/CarsonDavis/wordle-solver/internal/game"
)

// Strategy picks the guess for turn (1-based) from the engine's state.
type Strategy interface {
	Choose(turn int, eng *game.Engine) (string, error)
}

// StrategyFunc adapts a plain function to Strategy.
type StrategyFunc func(turn int, eng *game.Engine) (string, error)

// Choose calls f.
func (f StrategyFunc) Choose(turn int, eng *game.Engine) (string, error) { return f(turn, eng) }

// Random picks uniformly from the remaining candidates.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random strategy with a reproducible PCG source.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Choose returns a random candidate.
func (r *Random) Choose(_ int, eng *game.Engine) (string, error) {
	cands := eng.Candidates()
	if len(cands) == 0 {
		return "", game.ErrEmptyCandidateSet
	}
	return cands[r.rng.IntN(len(cands))], nil
}

// First always picks the first remaining candidate in dictionary order.
type First struct{}

// Choose returns the first candidate.
func (First) Choose(_ int, eng *game.Engine) (string, error) {
	cands := eng.Candidates()
	if len(cands) == 0 {
		return "", game.ErrEmptyCandidateSet
	}
	return cands[0], nil
}

// Opening plays Words on turns 1..len(Words) and defers to Next afterwards.
// A nil Next behaves like First.
type Opening struct {
	Words []string
	Next  Strategy
}

// Choose returns the opening word for early turns.
func (o Opening) Choose(turn int, eng *game.Engine) (string, error) {
	if turn >= 1 && turn <= len(o.Words) {
		return o.Words[turn-1], nil
	}
	if o.Next == nil {
		return First{}.Choose(turn, eng)
	}
	return o.Next.Choose(turn, eng)
}
