package shared_test

import (
	"testing"
	"time"

	"london_trips/internal/shared"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PLANNER_PROVIDER", "")
	t.Setenv("CACHE_TTL_SECONDS", "")
	c := shared.Load()
	if c.PlannerProvider != "mock" || c.CacheTTL != 15*time.Minute || c.Workers != 8 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.HTTPAddr != ":8080" || len(c.CORSOrigins) != 0 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PLANNER_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("NORMALIZE_WORKERS", "-3")
	t.Setenv("REDIS_DB", "two")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	c := shared.Load()
	if c.PlannerProvider != "openai" || c.OpenAIKey != "sk-test" {
		t.Fatalf("provider not read: %+v", c)
	}
	if c.Workers != 1 || c.RedisDB != 0 {
		t.Fatalf("bad numbers should fall back: workers=%d db=%d", c.Workers, c.RedisDB)
	}
	if len(c.CORSOrigins) != 2 || c.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("origins: %q", c.CORSOrigins)
	}
}

func TestLoad_UnknownProviderIsMock(t *testing.T) {
	t.Setenv("PLANNER_PROVIDER", "carrier-pigeon")
	if c := shared.Load(); c.PlannerProvider != "mock" {
		t.Fatalf("expected mock, got %q", c.PlannerProvider)
	}
}
