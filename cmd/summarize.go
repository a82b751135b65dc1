package main

import (
	"fmt"
	"io"
	"strings"

	"aisummarizer/internal/server"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newSummarizeCmd(d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "summarize [text...]",
		Short: "Summarize text from the arguments or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := d.loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logOutput := d.logOutput
			if logOutput == nil {
				logOutput = cmd.ErrOrStderr()
			}
			log := newLogger(logOutput, cfg.LogLevel)

			s, configErr, err := buildSummarizer(d, cfg)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if len(args) == 0 {
				b, readErr := io.ReadAll(cmd.InOrStdin())
				if readErr != nil {
					return fmt.Errorf("read stdin: %w", readErr)
				}
				text = string(b)
			}

			result, err := server.NewHandler(s, configErr, log).Summarize(ctx, text)
			if err != nil {
				return &summarizeError{err: err}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, result.Summary)
			fmt.Fprintf(out, "\noriginal: %s chars, summary: %s chars\n",
				humanize.Comma(int64(result.OriginalLength)),
				humanize.Comma(int64(result.SummaryLength)))

			return nil
		},
	}
}

// summarizeError prints as the message an API client would have received.
type summarizeError struct {
	err error
}

func (e *summarizeError) Error() string {
	return server.ErrorMessage(e.err)
}

func (e *summarizeError) Unwrap() error {
	return e.err
}
