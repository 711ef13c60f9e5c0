package main

import (
	"context"

	"github.com/spf13/cobra"

	"botanica/internal/platform/httpserver"
)

func serveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(parent context.Context, opts *options) error {
	cfg, log, err := opts.load()
	if err != nil {
		return err
	}
	ctx, stop := signalContext(parent)
	defer stop()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.close()

	log.Info("starting botanica",
		"addr", cfg.Server.Addr,
		"conservation_source", a.conservation.SourceID(),
		"context_source", a.plantContext.SourceID(),
		"darwin_core", cfg.DarwinCore.Enabled,
	)
	return httpserver.Run(ctx, httpserver.New(cfg.Server.Addr, a.router()), cfg.Server.ShutdownGrace, log)
}
