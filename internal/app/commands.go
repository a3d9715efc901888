package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"london_trips/internal/adapters/observability"
	"london_trips/internal/domain"
	"london_trips/internal/normalize"
)

// TripService is the write path: generate, normalize and store trips.
type TripService struct {
	planner  domain.PlannerClient
	fallback domain.PlannerClient
	norm     *normalize.Normalizer
	repo     domain.TripRepository
	cache    domain.Cache
	cacheTTL time.Duration

	now   func() time.Time
	newID func() string
}

// NewTripService wires the write path. planner may be nil, in which case
// every trip comes from fallback. cache may be nil.
func NewTripService(planner, fallback domain.PlannerClient, n *normalize.Normalizer,
	r domain.TripRepository, c domain.Cache, ttl time.Duration) *TripService {
	return &TripService{
		planner:  planner,
		fallback: fallback,
		norm:     n,
		repo:     r,
		cache:    c,
		cacheTTL: ttl,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// CreateTrip validates p, fetches a raw plan and stores the normalized trip.
// Only invalid params and repository failures are returned as errors.
func (s *TripService) CreateTrip(ctx context.Context, p domain.RequestParams) (domain.Trip, error) {
	p = p.Normalized()
	if err := p.Validate(); err != nil {
		return domain.Trip{}, err
	}

	raw, fellBack, err := s.rawPlan(ctx, p)
	if err != nil {
		return domain.Trip{}, err
	}
	return s.store(ctx, raw, p, fellBack)
}

// ImportPayload normalizes an already fetched payload and stores it.
func (s *TripService) ImportPayload(ctx context.Context, raw []byte, p domain.RequestParams) (domain.Trip, error) {
	p = p.Normalized()
	if err := p.Validate(); err != nil {
		return domain.Trip{}, err
	}
	return s.store(ctx, raw, p, false)
}

func (s *TripService) store(ctx context.Context, raw []byte, p domain.RequestParams, fellBack bool) (domain.Trip, error) {
	it, shape := s.norm.NormalizeWithShape(raw, p)
	observability.ObserveNormalized(shape.String())
	if fellBack {
		it.UsedFallbackData = true
	}

	t := domain.Trip{ID: s.newID(), Params: p, Itinerary: it, CreatedAt: s.now()}
	if err := s.repo.SaveTrip(ctx, t); err != nil {
		return domain.Trip{}, fmt.Errorf("save trip: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, tripKey(t.ID), t, int(s.cacheTTL.Seconds())); err != nil {
			log.Warn().Err(err).Str("trip", t.ID).Msg("cache trip failed")
		}
	}

	log.Info().
		Str("trip", t.ID).
		Str("shape", shape.String()).
		Int("days", len(it.Itinerary)).
		Bool("fallback", it.UsedFallbackData).
		Msg("trip_created")
	return t, nil
}

// rawPlan consults the payload cache, then the planner, then the fallback.
func (s *TripService) rawPlan(ctx context.Context, p domain.RequestParams) ([]byte, bool, error) {
	key := planKey(p)
	if s.cache != nil {
		var cached json.RawMessage
		if ok, err := s.cache.Get(ctx, key, &cached); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("plan cache read failed")
		} else if ok {
			return cached, false, nil
		}
	}

	if s.planner != nil {
		raw, err := s.planner.Plan(ctx, p)
		if err == nil {
			if s.cache != nil {
				if err := s.cache.Set(ctx, key, json.RawMessage(raw), int(s.cacheTTL.Seconds())); err != nil {
					log.Warn().Err(err).Str("key", key).Msg("plan cache write failed")
				}
			}
			return raw, false, nil
		}
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		log.Warn().Err(err).
			Bool("upstream_unavailable", errors.Is(err, domain.ErrUpstreamUnavailable)).
			Msg("planner failed, using mock data")
		observability.ObserveFallback()
	}

	raw, err := s.fallback.Plan(ctx, p)
	if err != nil {
		return nil, false, fmt.Errorf("fallback planner: %w", err)
	}
	return raw, true, nil
}

// planKey identifies a normalized request; equal params share a payload.
func planKey(p domain.RequestParams) string {
	b, _ := json.Marshal(p)
	sum := sha1.Sum(b)
	return "plan:" + hex.EncodeToString(sum[:])
}

func tripKey(id string) string { return "trip:" + id }
