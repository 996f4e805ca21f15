package cli

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/CarsonDavis/wordle-solver/internal/sim"
)

// PlayResult is the payload of the play command.
type PlayResult struct {
	Answer   string   `json:"answer"`
	Strategy string   `json:"strategy"`
	Guesses  int      `json:"guesses"`
	Path     []string `json:"path"`
}

// NewPlayCommand creates the play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		strategy string
		seed     uint64
		trace    bool
	)
	cmd := &cobra.Command{
		Use:   "play <answer>",
		Short: "Let the solver play one game against a known answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.formatter(cmd)
			answer := strings.ToLower(args[0])

			dict, err := rootOpts.dictionary()
			if err != nil {
				return err
			}
			if !dict.Contains(answer) {
				out.Debugf("%q is not in the word list; the game cannot be solved", answer)
			}
			scorer, err := rootOpts.scorer()
			if err != nil {
				return err
			}
			var override *uint64
			if cmd.Flags().Changed("seed") {
				override = &seed
			}
			factory, label, err := buildStrategy(strategy, rootOpts.Config, scorer, override)
			if err != nil {
				return WrapExitError(ExitCommandError, "strategy", err)
			}

			res, err := sim.NewHarness(answer, dict, factory(answer),
				sim.WithScorer(scorer),
				sim.WithMaxTurns(rootOpts.Config.Solver.MaxTurns),
				sim.WithLogger(log.Logger),
			).Play(cmd.Context())

			pr := PlayResult{Answer: answer, Strategy: label, Guesses: res.Guesses, Path: make([]string, len(res.Path))}
			for i, t := range res.Path {
				pr.Path[i] = t.String()
			}
			if err != nil {
				_ = out.Fail("unsolved", err.Error(), pr)
				return WrapExitError(ExitFailure, "play", err)
			}

			var b strings.Builder
			if trace {
				for i, p := range pr.Path {
					fmt.Fprintf(&b, "%d %s\n", i+1, p)
				}
			}
			fmt.Fprintf(&b, "%s solved in %d guess(es)\n", answer, res.Guesses)
			return out.Result(pr, b.String())
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", "random", "guess strategy (random|first|minimax)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default: derived from the answer)")
	cmd.Flags().BoolVar(&trace, "trace", false, "print every guess and its feedback")
	return cmd
}
