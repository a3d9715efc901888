package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"london_trips/internal/app"
	"london_trips/internal/domain"
)

func TestGetTrip_CacheMissThenHit(t *testing.T) {
	repo := &fakeRepo{trips: map[string]domain.Trip{
		"t-1": {ID: "t-1", Params: domain.RequestParams{Destination: "London", Days: 2}},
	}}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, 10*time.Minute)

	// miss populates the cache
	tr, err := q.GetTrip(context.Background(), "t-1")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if tr.ID != "t-1" || tr.Params.Days != 2 {
		t.Fatalf("unexpected trip: %+v", tr)
	}

	// change repo, call again -> should come from cache
	repo.trips["t-1"] = domain.Trip{ID: "t-1", Params: domain.RequestParams{Days: 9}}
	tr2, err := q.GetTrip(context.Background(), "t-1")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if tr2.Params.Days != 2 {
		t.Fatalf("expected cached trip, got %+v", tr2)
	}
	if repo.gets != 1 {
		t.Fatalf("expected one repo read, got %d", repo.gets)
	}
}

func TestGetTrip_NotFound(t *testing.T) {
	q := app.NewQueryService(&fakeRepo{}, &fakeCache{}, time.Minute)
	if _, err := q.GetTrip(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListTrips_LimitClamp(t *testing.T) {
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{trips: map[string]domain.Trip{}}
	for i := 0; i < 30; i++ {
		id := string(rune('a' + i%26)) + string(rune('0'+i/26))
		repo.trips[id] = domain.Trip{ID: id, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
	}
	q := app.NewQueryService(repo, nil, time.Minute)

	out, err := q.ListTrips(context.Background(), 0)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != app.DefaultListLimit {
		t.Fatalf("expected default limit %d, got %d", app.DefaultListLimit, len(out))
	}
	if !out[0].CreatedAt.After(out[1].CreatedAt) {
		t.Fatalf("expected newest first")
	}

	out, _ = q.ListTrips(context.Background(), 1000)
	if len(out) != 30 {
		t.Fatalf("expected all 30 trips, got %d", len(out))
	}
}

func TestListTrips_EmptyIsNotNil(t *testing.T) {
	q := app.NewQueryService(&fakeRepo{}, nil, time.Minute)
	out, err := q.ListTrips(context.Background(), 5)
	if err != nil || out == nil {
		t.Fatalf("expected empty slice, got %v err=%v", out, err)
	}
}
