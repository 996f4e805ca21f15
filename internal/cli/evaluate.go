package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/CarsonDavis/wordle-solver/internal/eval"
	"github.com/CarsonDavis/wordle-solver/internal/store"
)

// EvaluateOptions holds the evaluate command's flags.
type EvaluateOptions struct {
	Strategy string
	Workers  int
	Answers  int
	Save     bool
	Progress bool
	List     bool
	Strict   bool
}

// NewEvaluateCommand creates the evaluate command.
func NewEvaluateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvaluateOptions{}
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Play every word of the dictionary and report the mean guess count",
		Long: `Play one self-play game per dictionary word and report the mean number
of guesses, the guess distribution, the best and worst words and any failures.

Games run on --workers goroutines. Random choices are seeded from the answer,
so a run gives the same results whatever the worker count.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(rootOpts, opts, cmd)
		},
	}
	cmd.Flags().StringVar(&opts.Strategy, "strategy", "random", "guess strategy (random|first|minimax)")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 0, "parallel games (default from config)")
	cmd.Flags().IntVar(&opts.Answers, "answers", 0, "only evaluate the first N words (0 = all)")
	cmd.Flags().BoolVar(&opts.Save, "save", false, "store the run in the database")
	cmd.Flags().BoolVar(&opts.Progress, "progress", true, "show a progress bar on stderr")
	cmd.Flags().BoolVar(&opts.List, "list", false, "list every word's result")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "exit with failure when any game fails")
	return cmd
}

func runEvaluate(rootOpts *RootOptions, opts *EvaluateOptions, cmd *cobra.Command) error {
	cfg := rootOpts.Config
	out := rootOpts.formatter(cmd)

	dict, err := rootOpts.dictionary()
	if err != nil {
		return err
	}
	scorer, err := rootOpts.scorer()
	if err != nil {
		return err
	}
	factory, label, err := buildStrategy(opts.Strategy, cfg, scorer, nil)
	if err != nil {
		return WrapExitError(ExitCommandError, "strategy", err)
	}

	answers := dict.Words()
	if opts.Answers > 0 && opts.Answers < len(answers) {
		answers = answers[:opts.Answers]
	}
	workers := cfg.Eval.Workers
	if opts.Workers > 0 {
		workers = opts.Workers
	}

	ev := &eval.Evaluator{
		Dict:     dict,
		Answers:  answers,
		Strategy: factory,
		Scorer:   scorer,
		MaxTurns: cfg.Solver.MaxTurns,
		Workers:  workers,
		Meta:     eval.Meta{Strategy: label, Source: cfg.Words.Source, Scorer: cfg.Solver.Scorer},
	}
	if opts.Progress && !out.JSON() {
		bar := progressbar.NewOptions(len(answers),
			progressbar.OptionSetWriter(out.diag()),
			progressbar.OptionSetDescription("evaluating"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		ev.OnResult = func(_ eval.WordResult, p eval.Progress) {
			bar.Describe(fmt.Sprintf("mean %.3f", p.RunningMean))
			_ = bar.Add(1)
		}
		defer func() { _ = bar.Finish() }()
	}

	out.Debugf("evaluating %d word(s) with %s on %d worker(s)", len(answers), label, workers)
	report, err := ev.Run(cmd.Context())
	if err != nil {
		return WrapExitError(ExitFailure, "evaluate", err)
	}

	if opts.Save {
		st, err := store.OpenSQLite(cfg.DBPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "open store", err)
		}
		defer st.Close()
		if err := st.SaveRun(cmd.Context(), report); err != nil {
			return WrapExitError(ExitFailure, "save run", err)
		}
		log.Info().Str("run", report.ID).Str("db", cfg.DBPath).Msg("run saved")
	}

	if err := renderReport(out, report, opts.List); err != nil {
		return err
	}
	if n := len(report.Failures()); opts.Strict && n > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d game(s) failed", n))
	}
	return nil
}

// renderReport writes a report as text or as a JSON CLI response.
func renderReport(out *Printer, report *eval.Report, list bool) error {
	if out.JSON() {
		var buf bytes.Buffer
		if err := eval.RenderJSON(&buf, report); err != nil {
			return err
		}
		return out.Result(json.RawMessage(buf.Bytes()), "")
	}
	return eval.RenderText(out.Out, report, list)
}
