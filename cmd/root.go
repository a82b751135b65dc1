package main

import (
	"errors"
	"io"
	"log/slog"

	"aisummarizer/internal/config"
	"aisummarizer/internal/summarizer"

	"github.com/spf13/cobra"
)

type deps struct {
	loadConfig    func() (config.Config, error)
	newSummarizer func(config.Config) (summarizer.Summarizer, error)
	logOutput     io.Writer
}

func defaultDeps() deps {
	return deps{
		loadConfig:    config.LoadConfig,
		newSummarizer: summarizer.New,
	}
}

func newRootCmd(d deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "aisummarizer",
		Short:         "Summarize text with a hosted LLM",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(d), newSummarizeCmd(d))

	return root
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	return log
}

// buildSummarizer reports a missing key as configErr, which the handler
// returns per request; any other construction failure is fatal.
func buildSummarizer(d deps, cfg config.Config) (s summarizer.Summarizer, configErr error, err error) {
	s, err = d.newSummarizer(cfg)
	if errors.Is(err, summarizer.ErrNotConfigured) {
		return nil, err, nil
	}
	return s, nil, err
}
