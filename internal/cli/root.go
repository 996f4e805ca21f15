package cli

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/CarsonDavis/wordle-solver/internal/config"
	"github.com/CarsonDavis/wordle-solver/internal/game"
	"github.com/CarsonDavis/wordle-solver/internal/words"
)

// RootOptions holds global flags for all commands, and the configuration
// resolved from them before any subcommand runs.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	Source     string
	WordsFile  string
	Length     int
	Scorer     string

	Config config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the solver CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "wordle-solver",
		Short: "Constraint-based Wordle solver",
		Long: `Narrow a Wordle dictionary from guess feedback, play self-play games,
and measure how many guesses a strategy needs on average.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return opts.resolve(cmd)
		},
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (debug logging)")
	pf.StringVar(&opts.Format, "format", "text", "output format (json|text)")
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "YAML config file")
	pf.StringVarP(&opts.Source, "source", "s", "", "word list source (official|knuth|external)")
	pf.StringVar(&opts.WordsFile, "words", "", "word list file for the selected source")
	pf.IntVarP(&opts.Length, "length", "n", 0, "word length")
	pf.StringVar(&opts.Scorer, "scorer", "", "feedback scorer (simple|standard)")

	// Add subcommands
	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewScoreCommand(opts))
	cmd.AddCommand(NewPlayCommand(opts))
	cmd.AddCommand(NewEvaluateCommand(opts))
	cmd.AddCommand(NewRunsCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))

	return cmd
}

// resolve loads the config file and environment, then applies flags.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "load config", err)
	}
	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Words.Source = o.Source
	}
	if flags.Changed("length") {
		cfg.Words.Length = o.Length
	}
	if flags.Changed("scorer") {
		cfg.Solver.Scorer = o.Scorer
	}
	if flags.Changed("words") {
		src, err := words.ParseSource(cfg.Words.Source)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid config", err)
		}
		switch src {
		case words.SourceKnuth:
			cfg.Words.KnuthFile = o.WordsFile
		case words.SourceExternal:
			cfg.Words.ExternalFile = o.WordsFile
		default:
			cfg.Words.OfficialFile = o.WordsFile
		}
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid config", err)
	}
	o.Config = cfg

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if o.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

// formatter builds the result printer for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *Printer {
	return &Printer{
		Format:  o.Format,
		Out:     cmd.OutOrStdout(),
		Diag:    cmd.ErrOrStderr(),
		Verbose: o.Verbose,
	}
}

// dictionary loads the configured word list.
func (o *RootOptions) dictionary() (*game.Dictionary, error) {
	d, err := words.LoadDictionary(o.Config.WordOptions())
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load word list", err)
	}
	return d, nil
}

// scorer returns the configured scorer.
func (o *RootOptions) scorer() (game.Scorer, error) {
	s, err := game.ScorerFor(o.Config.Solver.Scorer)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "scorer", err)
	}
	return s, nil
}
