package openaiplanner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"london_trips/internal/adapters/observability"
	"london_trips/internal/adapters/planner"
	"london_trips/internal/domain"
)

const DefaultModel = "gpt-4o-mini"

const systemPrompt = "You are a travel planner that answers with a single JSON document and nothing else."

// Planner asks an OpenAI chat model for a trip plan.
type Planner struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

func New(apiKey, model string) (*Planner, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	return NewWithConfig(openai.DefaultConfig(apiKey), model), nil
}

// NewWithConfig allows a custom base URL (proxies, Azure, tests).
func NewWithConfig(cfg openai.ClientConfig, model string) *Planner {
	if model == "" {
		model = DefaultModel
	}
	return &Planner{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: 0.4,
		maxTokens:   4000,
	}
}

func (o *Planner) Plan(ctx context.Context, p domain.RequestParams) ([]byte, error) {
	start := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: o.temperature,
		MaxTokens:   o.maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: planner.Prompt(p)},
		},
	})
	status := 200
	if err != nil {
		status = 0
	}
	observability.ObserveExternal("openai", o.model, status, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%w: openai: %w", domain.ErrUpstreamUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: openai: no choices", domain.ErrUpstreamUnavailable)
	}

	content := planner.ExtractJSON(resp.Choices[0].Message.Content)
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("%w: openai: not valid json", domain.ErrUpstreamUnavailable)
	}
	return []byte(content), nil
}
