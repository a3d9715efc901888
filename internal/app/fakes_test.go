package app_test

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"london_trips/internal/domain"
)

// ---- fakes ----

type fakeRepo struct {
	mu      sync.Mutex
	trips   map[string]domain.Trip
	saveErr error
	gets    int
}

func (f *fakeRepo) SaveTrip(ctx context.Context, t domain.Trip) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.trips == nil {
		f.trips = map[string]domain.Trip{}
	}
	f.trips[t.ID] = t
	return nil
}

func (f *fakeRepo) GetTrip(ctx context.Context, id string) (domain.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	t, ok := f.trips[id]
	if !ok {
		return domain.Trip{}, domain.ErrNotFound
	}
	return t, nil
}

func (f *fakeRepo) ListTrips(ctx context.Context, limit int) ([]domain.TripSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.TripSummary
	for _, t := range f.trips {
		out = append(out, domain.TripSummary{ID: t.ID, Destination: t.Params.Destination, Days: t.Params.Days, CreatedAt: t.CreatedAt})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeCache keeps JSON like the redis adapter does.
type fakeCache struct {
	store map[string][]byte
	sets  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	c.sets = append(c.sets, key)
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

type fakePlanner struct {
	raw   []byte
	err   error
	calls int
}

func (f *fakePlanner) Plan(ctx context.Context, p domain.RequestParams) ([]byte, error) {
	f.calls++
	return f.raw, f.err
}
