package app

import (
	"context"
	"time"

	"london_trips/internal/domain"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type QueryService struct {
	repo     domain.TripRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.TripRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *QueryService) GetTrip(ctx context.Context, id string) (domain.Trip, error) {
	key := tripKey(id)
	var t domain.Trip
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &t); ok {
			return t, nil
		}
	}
	t, err := s.repo.GetTrip(ctx, id)
	if err != nil {
		return domain.Trip{}, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, t, int(s.cacheTTL.Seconds()))
	}
	return t, nil
}

// ListTrips returns the most recent trips first. limit is clamped to 1..MaxListLimit.
func (s *QueryService) ListTrips(ctx context.Context, limit int) ([]domain.TripSummary, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}
	out, err := s.repo.ListTrips(ctx, limit)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.TripSummary{}
	}
	return out, nil
}
