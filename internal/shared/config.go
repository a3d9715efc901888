package shared

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	HTTPAddr    string
	MetricsAddr string
	HTTPTimeout time.Duration
	CORSOrigins []string

	MySQLDSN  string
	RedisAddr string
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration

	PlannerProvider string // http | gemini | openai | mock
	PlannerBase     string
	PlannerKey      string
	PlannerRPS      int
	GeminiKey       string
	GeminiModel     string
	OpenAIKey       string
	OpenAIModel     string

	NominatimBase string
	OSRMBase      string

	Workers int
}

// Load reads the environment, after an optional .env in the working directory.
// Variables already set win over the file.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg(".env not loaded")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		LogLevel:    env("LOG_LEVEL", "info"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),
		HTTPTimeout: time.Duration(atoi("HTTP_TIMEOUT_SECONDS", 60)) * time.Second,
		CORSOrigins: list(env("CORS_ALLOWED_ORIGINS", "")),

		MySQLDSN:  env("MYSQL_DSN", "root:root@tcp(localhost:3306)/trips?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr: env("REDIS_ADDR", "localhost:6379"),
		RedisPass: env("REDIS_PASSWORD", ""),
		RedisDB:   atoi("REDIS_DB", 0),
		CacheTTL:  time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,

		PlannerProvider: strings.ToLower(env("PLANNER_PROVIDER", "mock")),
		PlannerBase:     env("PLANNER_BASE_URL", ""),
		PlannerKey:      env("PLANNER_API_KEY", ""),
		PlannerRPS:      atoi("PLANNER_RPS", 5),
		GeminiKey:       env("GEMINI_API_KEY", ""),
		GeminiModel:     env("GEMINI_MODEL", "gemini-1.5-flash"),
		OpenAIKey:       env("OPENAI_API_KEY", ""),
		OpenAIModel:     env("OPENAI_MODEL", "gpt-4o-mini"),

		NominatimBase: env("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		OSRMBase:      env("OSRM_BASE_URL", "https://router.project-osrm.org"),

		Workers: atoi("NORMALIZE_WORKERS", 8),
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	switch c.PlannerProvider {
	case "http":
		if c.PlannerBase == "" {
			log.Warn().Msg("PLANNER_BASE_URL is empty; trips will use mock data")
		}
	case "gemini":
		if c.GeminiKey == "" {
			log.Warn().Msg("GEMINI_API_KEY is empty; trips will use mock data")
		}
	case "openai":
		if c.OpenAIKey == "" {
			log.Warn().Msg("OPENAI_API_KEY is empty; trips will use mock data")
		}
	case "mock":
	default:
		log.Warn().Str("provider", c.PlannerProvider).Msg("unknown PLANNER_PROVIDER; using mock")
		c.PlannerProvider = "mock"
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func list(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
