package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicModel = "claude-3-5-haiku-latest"

// AnthropicSummarizer calls the Anthropic Messages API to produce summaries.
type AnthropicSummarizer struct {
	client anthropic.Client
	model  string
}

func NewAnthropicSummarizer(apiKey string, opts ...Option) *AnthropicSummarizer {
	o := buildOptions(defaultAnthropicModel, opts)

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if o.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(o.baseURL))
	}

	return &AnthropicSummarizer{
		client: anthropic.NewClient(clientOpts...),
		model:  o.model,
	}
}

func (s *AnthropicSummarizer) Model() string {
	return s.model
}

func (s *AnthropicSummarizer) Summarize(
	ctx context.Context,
	input Input,
) (string, error) {
	msg, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: maxOutputTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt(input.Text))),
		},
		Temperature: anthropic.Float(temperature),
	})
	if err != nil {
		return "", fmt.Errorf(requestErrPrefix+"%w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(text.Text)
		}
	}

	if b.Len() == 0 {
		return "", ErrEmptySummary
	}

	return b.String(), nil
}
