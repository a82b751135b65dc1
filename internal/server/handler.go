package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"unicode"

	"aisummarizer/internal/domain"
	"aisummarizer/internal/summarizer"
)

const maxRequestBodyBytes = 1 << 20

// Handler serves the summarization endpoint. It holds no per-request state,
// so one instance is shared by all concurrent requests.
type Handler struct {
	summarizer summarizer.Summarizer
	configErr  error
	log        *slog.Logger
}

// NewHandler wires s into a handler. configErr is whatever building s
// failed with (typically summarizer.ErrNotConfigured); it is reported on
// every request that passes validation.
func NewHandler(
	s summarizer.Summarizer,
	configErr error,
	log *slog.Logger,
) *Handler {
	if s == nil && configErr == nil {
		configErr = summarizer.ErrNotConfigured
	}

	return &Handler{
		summarizer: s,
		configErr:  configErr,
		log:        log,
	}
}

// Summarize validates text and asks the provider for a summary.
func (h *Handler) Summarize(
	ctx context.Context,
	text string,
) (domain.SummaryResult, error) {
	if trimText(text) == "" {
		return domain.SummaryResult{}, ErrTextRequired
	}

	textLength := domain.TextLength(text)
	if textLength > domain.MaxTextLength {
		return domain.SummaryResult{}, ErrTextTooLong
	}

	if h.configErr != nil {
		return domain.SummaryResult{}, h.configErr
	}

	summary, err := h.summarizer.Summarize(ctx, summarizer.Input{Text: text})
	if err != nil {
		return domain.SummaryResult{}, err
	}

	if summary == "" {
		return domain.SummaryResult{}, summarizer.ErrEmptySummary
	}

	return domain.NewSummaryResult(text, summary), nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	req, err := decodeRequest(r.Body)
	if err != nil {
		h.log.DebugContext(ctx, "Failed to decode request body",
			"error", err)
		h.writeError(ctx, w, http.StatusBadRequest, msgTextRequired)

		return
	}

	var text string
	if req.Text != nil {
		text = *req.Text
	}

	result, err := h.Summarize(ctx, text)
	if err != nil {
		status, msg := errorStatus(err)

		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			h.log.ErrorContext(ctx, "Summarization error",
				"error", err,
				"status", status,
				"textLength", domain.TextLength(text))
		}

		h.writeError(ctx, w, status, msg)

		return
	}

	h.log.InfoContext(ctx, "Summary is generated",
		"originalLength", result.OriginalLength,
		"summaryLength", result.SummaryLength)

	h.writeJSON(ctx, w, http.StatusOK, result)
}

// decodeRequest reads exactly one JSON value from body.
func decodeRequest(body io.Reader) (domain.SummaryRequest, error) {
	var req domain.SummaryRequest

	dec := json.NewDecoder(body)
	if err := dec.Decode(&req); err != nil {
		return domain.SummaryRequest{}, fmt.Errorf("decode body: %w", err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return domain.SummaryRequest{}, errors.New("unexpected data after JSON body")
	}

	return req, nil
}

// trimText strips whitespace the way a browser's String.prototype.trim
// does, which also covers the byte order mark.
func trimText(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

func (h *Handler) writeError(
	ctx context.Context,
	w http.ResponseWriter,
	status int,
	msg string,
) {
	h.writeJSON(ctx, w, status, domain.ErrorResponse{Error: msg})
}

func (h *Handler) writeJSON(
	ctx context.Context,
	w http.ResponseWriter,
	status int,
	v any,
) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.WarnContext(ctx, "Failed to write response",
			"error", err,
			"status", status)
	}
}
