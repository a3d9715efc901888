// Command normalize imports saved planner payloads. Each argument is a JSON
// file; a sibling <file>.params.json, when present, replaces the flag params
// for it.
//
//	normalize -days 3 -interests food,history plans/*.json
//	normalize -dry-run plan.json
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"london_trips/internal/adapters/mockplanner"
	"london_trips/internal/adapters/observability"
	"london_trips/internal/app"
	"london_trips/internal/domain"
	"london_trips/internal/normalize"
	"london_trips/internal/shared"
	mysqlrepo "london_trips/internal/storage/mysql"
)

func main() {
	var (
		days        = flag.Int("days", 3, "trip length in days")
		destination = flag.String("destination", domain.DefaultDestination, "destination city")
		budget      = flag.String("budget", string(domain.BudgetMedium), "low | medium | high")
		interests   = flag.String("interests", "", "comma separated interests")
		dryRun      = flag.Bool("dry-run", false, "print normalized itineraries instead of saving them")
	)
	flag.Parse()

	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	files := flag.Args()
	if len(files) == 0 {
		log.Fatal().Msg("no payload files given")
	}
	defaults := domain.RequestParams{
		Destination: *destination,
		Days:        *days,
		Budget:      domain.Budget(*budget),
		Interests:   strings.Split(*interests, ","),
	}
	norm := normalize.New(normalize.Config{MockLocations: mockplanner.Locations})

	log.Info().
		Int("files", len(files)).
		Int("workers", cfg.Workers).
		Bool("dry_run", *dryRun).
		Msg("normalize starting")

	var trips *app.TripService
	if !*dryRun {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("db ping ok")
		trips = app.NewTripService(nil, mockplanner.New(), norm, mysqlrepo.New(db), nil, cfg.CacheTTL)
	}

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var (
		wg     sync.WaitGroup
		outMu  sync.Mutex
		failed atomic.Int64
	)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	for _, path := range files {
		if strings.HasSuffix(path, ".params.json") {
			continue
		}
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer sem.Release(1)

			raw, err := os.ReadFile(path)
			if err != nil {
				failed.Add(1)
				log.Warn().Str("file", path).Err(err).Msg("read failed")
				return
			}
			p, err := paramsFor(path, defaults)
			if err != nil {
				failed.Add(1)
				log.Warn().Str("file", path).Err(err).Msg("params file invalid")
				return
			}

			if *dryRun {
				p = p.Normalized()
				it, shape := norm.NormalizeWithShape(raw, p)
				outMu.Lock()
				_ = enc.Encode(it)
				outMu.Unlock()
				log.Info().Str("file", path).Str("shape", shape.String()).Int("days", len(it.Itinerary)).Msg("normalized")
				return
			}

			t, err := trips.ImportPayload(ctx, raw, p)
			if err != nil {
				failed.Add(1)
				log.Warn().Str("file", path).Err(err).Msg("import failed")
				return
			}
			log.Info().Str("file", path).Str("id", t.ID).Msg("import ok")
		}(path)
	}

	wg.Wait()
	if n := failed.Load(); n > 0 {
		log.Error().Int64("failed", n).Int("total", len(files)).Msg("normalize finished with errors")
		os.Exit(1)
	}
	log.Info().Msg("normalize completed")
}

// paramsFor reads <path>.params.json when it exists.
func paramsFor(path string, defaults domain.RequestParams) (domain.RequestParams, error) {
	b, err := os.ReadFile(strings.TrimSuffix(path, ".json") + ".params.json")
	if os.IsNotExist(err) {
		return defaults, nil
	}
	if err != nil {
		return domain.RequestParams{}, err
	}
	var p domain.RequestParams
	if err := json.Unmarshal(b, &p); err != nil {
		return domain.RequestParams{}, err
	}
	return p, nil
}
