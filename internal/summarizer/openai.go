package summarizer

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const defaultOpenAIModel = string(openai.ChatModelGPT4oMini)

// OpenAISummarizer calls OpenAI's Chat Completions API to produce summaries.
type OpenAISummarizer struct {
	client openai.Client
	model  string
}

// NewOpenAISummarizer builds a new summarizer instance. The client never
// retries on its own.
func NewOpenAISummarizer(apiKey string, opts ...Option) *OpenAISummarizer {
	o := buildOptions(defaultOpenAIModel, opts)

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if o.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(o.baseURL))
	}

	return &OpenAISummarizer{
		client: openai.NewClient(clientOpts...),
		model:  o.model,
	}
}

func (s *OpenAISummarizer) Model() string {
	return s.model
}

// Summarize asks the model for a concise summary of input.Text.
func (s *OpenAISummarizer) Summarize(
	ctx context.Context,
	input Input,
) (string, error) {
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt(input.Text)),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxOutputTokens),
	})
	if err != nil {
		return "", fmt.Errorf(requestErrPrefix+"%w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptySummary
	}

	return resp.Choices[0].Message.Content, nil
}
