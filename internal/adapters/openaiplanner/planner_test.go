package openaiplanner_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"

	"london_trips/internal/adapters/openaiplanner"
	"london_trips/internal/domain"
)

func newPlanner(t *testing.T, h http.HandlerFunc) *openaiplanner.Planner {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = ts.URL + "/v1"
	return openaiplanner.NewWithConfig(cfg, "")
}

func TestPlanner_Plan(t *testing.T) {
	p := newPlanner(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req openai.ChatCompletionRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Model != openaiplanner.DefaultModel || len(req.Messages) != 2 {
			t.Errorf("unexpected request: %+v", req)
		}
		if !strings.Contains(req.Messages[1].Content, "2-day trip to London") {
			t.Errorf("prompt not built from params")
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "c1", "object": "chat.completion",
			"choices": []map[string]any{{
				"index":   0,
				"message": map[string]any{"role": "assistant", "content": "```json\n{\"itinerary\":[]}\n```"},
			}},
		})
	})

	raw, err := p.Plan(context.Background(), domain.RequestParams{Destination: "London", Days: 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if string(raw) != `{"itinerary":[]}` {
		t.Fatalf("unexpected payload: %s", raw)
	}
}

func TestPlanner_PlanNotJSON(t *testing.T) {
	p := newPlanner(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"Sorry, I can't."}}]}`))
	})

	_, err := p.Plan(context.Background(), domain.RequestParams{Days: 1})
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestPlanner_PlanServerError(t *testing.T) {
	p := newPlanner(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"bad","type":"invalid_request_error"}}`))
	})

	_, err := p.Plan(context.Background(), domain.RequestParams{Days: 1})
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := openaiplanner.New("", ""); err == nil {
		t.Fatalf("expected error without API key")
	}
}
