package server

import (
	"errors"
	"net/http"

	"aisummarizer/internal/summarizer"
)

const (
	msgTextRequired      = "Text is required"
	msgTextTooLong       = "Text is too long (max 10,000 characters)"
	msgNotConfigured     = "API key not configured"
	msgFailedToSummarize = "Failed to generate summary"
	msgUnexpected        = "An unexpected error occurred"
)

// ValidationError is a problem with the submitted text itself.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrTextRequired = &ValidationError{Message: msgTextRequired}
	ErrTextTooLong  = &ValidationError{Message: msgTextTooLong}
)

// errorStatus maps a summarization failure to the status code and message
// returned to the client. The API key never reaches the message.
func errorStatus(err error) (int, string) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Message
	case errors.Is(err, summarizer.ErrNotConfigured):
		return http.StatusInternalServerError, msgNotConfigured
	case errors.Is(err, summarizer.ErrEmptySummary):
		return http.StatusInternalServerError, msgFailedToSummarize
	}

	if msg := summarizer.ProviderMessage(err); msg != "" {
		return http.StatusInternalServerError, msg
	}

	return http.StatusInternalServerError, msgUnexpected
}

// ErrorMessage is the client-facing message for err.
func ErrorMessage(err error) string {
	_, msg := errorStatus(err)
	return msg
}
