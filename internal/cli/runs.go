package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/CarsonDavis/wordle-solver/internal/store"
)

// NewRunsCommand creates the runs command group.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect stored evaluation runs",
	}
	cmd.AddCommand(newRunsListCommand(rootOpts))
	cmd.AddCommand(newRunsShowCommand(rootOpts))
	return cmd
}

func newRunsListCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.formatter(cmd)
			st, err := store.OpenSQLite(rootOpts.Config.DBPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "open store", err)
			}
			defer st.Close()

			runs, err := st.ListRuns(cmd.Context(), limit)
			if err != nil {
				return WrapExitError(ExitFailure, "list runs", err)
			}

			var b strings.Builder
			tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSTARTED\tSTRATEGY\tSOURCE\tSCORER\tWORDS\tFAILED\tMEAN")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%d\t%.3f\n",
					r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), r.Strategy, r.Source, r.Scorer,
					r.Words, r.Failures, r.Mean)
			}
			_ = tw.Flush()
			return out.Result(runs, b.String())
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "number of runs to list")
	return cmd
}

func newRunsShowCommand(rootOpts *RootOptions) *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one run's report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.formatter(cmd)
			st, err := store.OpenSQLite(rootOpts.Config.DBPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "open store", err)
			}
			defer st.Close()

			report, err := st.GetRun(cmd.Context(), args[0])
			if errors.Is(err, store.ErrNotFound) {
				_ = out.Fail("not_found", fmt.Sprintf("no run %q", args[0]), nil)
				return WrapExitError(ExitCommandError, "show run", err)
			}
			if err != nil {
				return WrapExitError(ExitFailure, "show run", err)
			}
			return renderReport(out, report, list)
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "list every word's result")
	return cmd
}
