package cli

import (
	"github.com/spf13/cobra"
)

// ScoreResult is the payload of the score command.
type ScoreResult struct {
	Guess   string `json:"guess"`
	Answer  string `json:"answer"`
	Pattern string `json:"pattern"`
	Solved  bool   `json:"solved"`
}

// NewScoreCommand creates the score command.
func NewScoreCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "score <guess> <answer>",
		Short: "Show the feedback pattern a guess gets against an answer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.formatter(cmd)
			scorer, err := rootOpts.scorer()
			if err != nil {
				return err
			}
			turn, err := scorer(args[0], args[1])
			if err != nil {
				return WrapExitError(ExitCommandError, "score", err)
			}
			res := ScoreResult{Guess: args[0], Answer: args[1], Pattern: turn.Pattern(), Solved: turn.Solved()}
			return out.Result(res, turn.String()+"\n")
		},
	}
}
