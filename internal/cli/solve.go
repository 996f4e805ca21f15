package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CarsonDavis/wordle-solver/internal/game"
)

// SolveResult is the payload of the solve command.
type SolveResult struct {
	Turns      []string `json:"turns"`
	Count      int      `json:"count"`
	Candidates []string `json:"candidates"`
	Required   string   `json:"required"`
	Positions  []string `json:"positions"`
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		turns []string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "solve [word:pattern...]",
		Short: "List the words consistent with the feedback so far",
		Long: `Apply the feedback of each turn and list the remaining candidates.

A turn is written word:pattern, one pattern letter per slot:
  g  exact   (right letter, right slot)
  y  present (in the word, another slot)
  -  absent  (b and . are accepted too)

Example: wordle-solver solve --turn crane:ggg-g`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(rootOpts, cmd, append(turns, args...), limit)
		},
	}
	cmd.Flags().StringArrayVarP(&turns, "turn", "t", nil, "turn as word:pattern (repeatable)")
	cmd.Flags().IntVarP(&limit, "limit", "l", 50, "maximum candidates to print (0 = all)")
	return cmd
}

func runSolve(opts *RootOptions, cmd *cobra.Command, notations []string, limit int) error {
	out := opts.formatter(cmd)
	dict, err := opts.dictionary()
	if err != nil {
		return err
	}

	eng := game.NewEngine(dict)
	for _, n := range notations {
		t, err := game.ParseNotation(n)
		if err != nil {
			return WrapExitError(ExitCommandError, "parse turn", err)
		}
		if err := eng.ApplyTurn(t); err != nil {
			return WrapExitError(ExitCommandError, "apply turn "+n, err)
		}
		out.Debugf("applied %s", t)
	}

	cands, err := eng.Recompute()
	if errors.Is(err, game.ErrEmptyCandidateSet) {
		_ = out.Fail("empty_candidate_set", "no word matches the feedback", notations)
		return WrapExitError(ExitFailure, "solve", err)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "solve", err)
	}

	res := SolveResult{
		Turns:      notations,
		Count:      len(cands),
		Candidates: cands,
		Required:   eng.Required().String(),
	}
	if res.Turns == nil {
		res.Turns = []string{}
	}
	if limit > 0 && len(cands) > limit {
		res.Candidates = cands[:limit]
	}
	for _, p := range eng.Positions() {
		res.Positions = append(res.Positions, p.String())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d candidate(s)\n", res.Count)
	for _, w := range res.Candidates {
		fmt.Fprintln(&b, w)
	}
	if len(res.Candidates) < res.Count {
		fmt.Fprintf(&b, "... and %d more\n", res.Count-len(res.Candidates))
	}
	return out.Result(res, b.String())
}
