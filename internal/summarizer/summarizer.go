package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"aisummarizer/internal/config"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go/v3"
	"github.com/tidwall/gjson"
)

const (
	temperature     = 0.5
	maxOutputTokens = 500

	systemPrompt = "You are a concise summarizer. " +
		"Provide clear, accurate summaries that capture the main points."
	userPromptPrefix = "Summarize the following text:\n\n"

	requestErrPrefix = "do request: "
)

var (
	// ErrNotConfigured means the selected provider has no API key.
	ErrNotConfigured = errors.New("API key not configured")
	// ErrEmptySummary means the provider answered without any content.
	ErrEmptySummary = errors.New("failed to generate summary")
)

// Input describes the payload for a summary request.
type Input struct {
	// Text is the original text to summarise, passed to the model verbatim.
	Text string
}

// Summarizer produces a single summary for a given input text.
type Summarizer interface {
	Summarize(ctx context.Context, input Input) (string, error)
}

// New builds the summarizer selected by cfg.Provider. A blank key for that
// provider yields ErrNotConfigured.
func New(cfg config.Config) (Summarizer, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI, "":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai: %w", ErrNotConfigured)
		}
		return NewOpenAISummarizer(cfg.OpenAIAPIKey,
			WithModel(cfg.OpenAIModel),
			WithBaseURL(cfg.OpenAIBaseURL),
		), nil
	case config.ProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("anthropic: %w", ErrNotConfigured)
		}
		return NewAnthropicSummarizer(cfg.AnthropicAPIKey,
			WithModel(cfg.AnthropicModel),
			WithBaseURL(cfg.AnthropicBaseURL),
		), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

// ProviderMessage returns the message a provider attached to err. Transport
// failures lose the endpoint URL, and the request wrap prefix is dropped.
func ProviderMessage(err error) string {
	if err == nil {
		return ""
	}

	var openaiErr *openai.Error
	if errors.As(err, &openaiErr) && openaiErr.Message != "" {
		return openaiErr.Message
	}

	var anthropicErr *anthropic.Error
	if errors.As(err, &anthropicErr) {
		if msg := gjson.Get(anthropicErr.RawJSON(), "error.message").String(); msg != "" {
			return msg
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}

	return strings.TrimPrefix(err.Error(), requestErrPrefix)
}

func userPrompt(text string) string {
	return userPromptPrefix + text
}

// Option tweaks a provider client.
type Option func(*options)

type options struct {
	model   string
	baseURL string
}

func WithModel(model string) Option {
	return func(o *options) {
		if model != "" {
			o.model = model
		}
	}
}

func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

func buildOptions(defaultModel string, opts []Option) options {
	o := options{model: defaultModel}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
