package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"aisummarizer/internal/config"
	"aisummarizer/internal/summarizer"
)

func configWithBlankKey() config.Config {
	return config.Config{Provider: config.ProviderOpenAI, OpenAIAPIKey: ""}
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "text required",
			err:        ErrTextRequired,
			wantStatus: http.StatusBadRequest,
			wantMsg:    msgTextRequired,
		},
		{
			name:       "text too long",
			err:        fmt.Errorf("validate: %w", ErrTextTooLong),
			wantStatus: http.StatusBadRequest,
			wantMsg:    msgTextTooLong,
		},
		{
			name:       "not configured",
			err:        fmt.Errorf("openai: %w", summarizer.ErrNotConfigured),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    msgNotConfigured,
		},
		{
			name:       "empty summary",
			err:        summarizer.ErrEmptySummary,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    msgFailedToSummarize,
		},
		{
			name:       "provider error",
			err:        errors.New("do request: timeout"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "do request: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := errorStatus(tt.err)
			if status != tt.wantStatus {
				t.Errorf("errorStatus() status = %v, want %v", status, tt.wantStatus)
			}
			if msg != tt.wantMsg {
				t.Errorf("errorStatus() message = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}
