package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"london_trips/internal/adapters/observability"
	"london_trips/internal/adapters/planner"
	"london_trips/internal/domain"
)

const DefaultModel = "gemini-1.5-flash"

// Planner asks a Gemini model for a trip plan in the array-of-days shape.
type Planner struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, apiKey, model string) (*Planner, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Planner{client: client, model: model}, nil
}

func (g *Planner) Close() error { return g.client.Close() }

func (g *Planner) Plan(ctx context.Context, p domain.RequestParams) ([]byte, error) {
	m := g.client.GenerativeModel(g.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.4)
	m.SetTopP(0.9)

	start := time.Now()
	resp, err := m.GenerateContent(ctx, genai.Text(planner.Prompt(p)))
	status := 200
	if err != nil {
		status = 0
	}
	observability.ObserveExternal("gemini", g.model, status, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%w: gemini: %w", domain.ErrUpstreamUnavailable, err)
	}
	return planFromResponse(resp)
}

// planFromResponse joins the text parts of the first candidate and checks
// that they hold a JSON document.
func planFromResponse(resp *genai.GenerateContentResponse) ([]byte, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("%w: gemini: no content", domain.ErrUpstreamUnavailable)
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	if sb.Len() == 0 {
		return nil, fmt.Errorf("%w: gemini: no content", domain.ErrUpstreamUnavailable)
	}

	content := planner.ExtractJSON(sb.String())
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("%w: gemini: not valid json", domain.ErrUpstreamUnavailable)
	}
	return []byte(content), nil
}
