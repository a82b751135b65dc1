package main

import (
	"fmt"
	"os"
	"time"

	"aisummarizer/internal/server"

	"github.com/spf13/cobra"
)

func newServeCmd(d deps) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the summarizer page and API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			start := time.Now()

			cfg, err := d.loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if addr != "" {
				cfg.Addr = addr
			}

			logOutput := d.logOutput
			if logOutput == nil {
				logOutput = os.Stdout
			}
			log := newLogger(logOutput, cfg.LogLevel)

			s, configErr, err := buildSummarizer(d, cfg)
			if err != nil {
				log.ErrorContext(ctx, "Failed to initialize summarizer",
					"error", err,
					"provider", cfg.Provider)

				return err
			}
			if configErr != nil {
				log.WarnContext(ctx, "API key is missing so every request will fail",
					"provider", cfg.Provider)
			} else {
				log.InfoContext(ctx, "Summarizer is initialized",
					"provider", cfg.Provider)
			}

			srv := server.New(cfg.Addr, server.NewHandler(s, configErr, log), cfg.ShutdownTimeout, log)

			if err = srv.Run(ctx); err != nil {
				log.ErrorContext(ctx, "Server failed",
					"error", err,
					"addr", cfg.Addr)

				return err
			}

			log.InfoContext(ctx, "Exiting...",
				"uptimeSeconds", time.Since(start).Seconds())

			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides ADDR)")

	return cmd
}
