package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jsonops/api"
	"go.jacobcolvin.com/jsonops/server"
	"go.jacobcolvin.com/jsonops/version"
)

func (c *cli) newServeCmd() *cobra.Command {
	apiCfg := api.NewConfig()
	srvCfg := server.NewConfig()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON operations over HTTP",
		Long: `Serve runs the HTTP API. Operations are POST routes under /api; the API
description is served at /api/swagger.json and /api/swagger.yaml, with a
browsable page at /api/swagger.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			handler, err := apiCfg.NewHandler(c.logger)
			if err != nil {
				return err
			}

			srv, err := srvCfg.NewServer(handler, c.logger)
			if err != nil {
				return err
			}

			c.logger.InfoContext(cmd.Context(), "starting jsonops",
				slog.String("version", version.Get().Version),
				slog.Bool("api_key", apiCfg.APIKey != ""),
				slog.Bool("pprof", srvCfg.Pprof),
			)

			err = srv.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("serve: %w", err)
			}

			return nil
		},
	}

	apiCfg.RegisterFlags(cmd.Flags())
	srvCfg.RegisterFlags(cmd.Flags())

	for _, register := range []func(*cobra.Command) error{
		apiCfg.RegisterCompletions,
		srvCfg.RegisterCompletions,
	} {
		err := register(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
		}
	}

	return cmd
}
