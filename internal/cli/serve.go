package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/CarsonDavis/wordle-solver/internal/httpserver"
	"github.com/CarsonDavis/wordle-solver/internal/store"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		port     string
		noStore  bool
		memStore bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive solver over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.Config
			if port != "" {
				cfg.Server.Port = port
			}
			dict, err := rootOpts.dictionary()
			if err != nil {
				return err
			}

			var st store.Store
			switch {
			case noStore:
			case memStore:
				st = store.NewMemoryStore()
			default:
				db, err := store.OpenSQLite(cfg.DBPath)
				if err != nil {
					return WrapExitError(ExitCommandError, "open store", err)
				}
				defer db.Close()
				st = db
			}

			if cfg.Server.JWTSecret == "" {
				log.Warn().Msg("JWT_SECRET not set; using the development secret")
			}
			srv := httpserver.New(dict, cfg, st)
			log.Info().Str("port", cfg.Server.Port).Int("words", dict.Len()).Msg("starting wordle-solver")
			if err := srv.Start(cmd.Context(), ":"+cfg.Server.Port); err != nil {
				return WrapExitError(ExitFailure, "server exited", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default from PORT)")
	cmd.Flags().BoolVar(&noStore, "no-store", false, "do not expose stored runs")
	cmd.Flags().BoolVar(&memStore, "memory", false, "use an in-memory run store")
	return cmd
}
