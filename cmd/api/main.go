package main

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"london_trips/internal/adapters/gemini"
	server "london_trips/internal/adapters/http_server"
	"london_trips/internal/adapters/mockplanner"
	"london_trips/internal/adapters/observability"
	"london_trips/internal/adapters/openaiplanner"
	"london_trips/internal/adapters/places"
	"london_trips/internal/adapters/planner"
	redisad "london_trips/internal/adapters/redis"
	"london_trips/internal/app"
	"london_trips/internal/domain"
	"london_trips/internal/normalize"
	"london_trips/internal/shared"
	mysqlrepo "london_trips/internal/storage/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(ctx, cfg.MetricsAddr, reg)

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cache.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis not reachable; cache calls will fail soft")
	}

	norm := normalize.New(normalize.Config{MockLocations: mockplanner.Locations})
	upstream := plannerFor(ctx, cfg)
	if c, ok := upstream.(io.Closer); ok {
		defer c.Close()
	}
	trips := app.NewTripService(upstream, mockplanner.New(), norm, repo, cache, cfg.CacheTTL)
	q := app.NewQueryService(repo, cache, cfg.CacheTTL)
	ps := app.NewPlaceService(places.NewNominatim(cfg.NominatimBase, 1), places.NewOSRM(cfg.OSRMBase))

	// http
	srv := server.New(cfg.HTTPTimeout, cfg.CORSOrigins)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{T: trips, Q: q, P: ps})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("planner", cfg.PlannerProvider).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	_ = cache.Close()
	_ = db.Close()
	log.Info().Msg("API stopped")
}

// plannerFor picks the upstream planner. nil means every trip is mock data.
func plannerFor(ctx context.Context, cfg shared.Config) domain.PlannerClient {
	switch cfg.PlannerProvider {
	case "http":
		c, err := planner.New(cfg.PlannerBase, cfg.PlannerKey, cfg.PlannerRPS)
		if err != nil {
			log.Warn().Err(err).Msg("planner client disabled")
			return nil
		}
		return c
	case "gemini":
		g, err := gemini.New(ctx, cfg.GeminiKey, cfg.GeminiModel)
		if err != nil {
			log.Warn().Err(err).Msg("gemini planner disabled")
			return nil
		}
		return g
	case "openai":
		o, err := openaiplanner.New(cfg.OpenAIKey, cfg.OpenAIModel)
		if err != nil {
			log.Warn().Err(err).Msg("openai planner disabled")
			return nil
		}
		return o
	}
	return nil
}
