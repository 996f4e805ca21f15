package cli

import (
	"fmt"
	"strings"

	"github.com/CarsonDavis/wordle-solver/internal/config"
	"github.com/CarsonDavis/wordle-solver/internal/eval"
	"github.com/CarsonDavis/wordle-solver/internal/game"
	"github.com/CarsonDavis/wordle-solver/internal/sim"
)

// Strategy names accepted by --strategy.
var strategyNames = []string{"random", "first", "minimax"}

// minimaxLimit bounds the candidate count minimax searches exhaustively.
const minimaxLimit = 300

// buildStrategy returns a per-answer strategy factory and a label for
// reports. The configured openings are played first; random choices are
// seeded from the answer so runs are reproducible in any order. A non-nil
// seed replaces the derived one; strategies without random choices ignore it.
func buildStrategy(name string, cfg config.Config, scorer game.Scorer, seed *uint64) (eval.StrategyFactory, string, error) {
	openings := cfg.Solver.Openings
	salt := cfg.Eval.SeedSalt
	rng := func(answer string) *sim.Random {
		if seed != nil {
			return sim.NewRandom(*seed)
		}
		return sim.NewRandom(sim.Seed(salt, answer))
	}

	var next func(answer string) sim.Strategy
	switch strings.ToLower(name) {
	case "", "random":
		name = "random"
		next = func(answer string) sim.Strategy { return rng(answer) }
	case "first":
		next = func(string) sim.Strategy { return sim.First{} }
	case "minimax":
		next = func(answer string) sim.Strategy {
			return sim.Minimax{Limit: minimaxLimit, Scorer: scorer, Fallback: rng(answer)}
		}
	default:
		return nil, "", fmt.Errorf("unknown strategy %q (want one of %v)", name, strategyNames)
	}

	label := strings.ToLower(name)
	if len(openings) > 0 {
		label += "+opening(" + strings.Join(openings, ",") + ")"
	}
	factory := func(answer string) sim.Strategy {
		return sim.Opening{Words: openings, Next: next(answer)}
	}
	return factory, label, nil
}
