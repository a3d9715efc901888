package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"london_trips/internal/app"
	"london_trips/internal/domain"
)

type fakePlaces struct {
	places  []domain.Place
	details domain.PlaceDetails
	err     error
	queries []string
}

func (f *fakePlaces) SearchPlaces(ctx context.Context, q string, near domain.Location) ([]domain.Place, error) {
	f.queries = append(f.queries, q)
	return f.places, f.err
}

func (f *fakePlaces) GetPlaceDetails(ctx context.Context, id string) (domain.PlaceDetails, error) {
	return f.details, f.err
}

type fakeDirections struct {
	route domain.Route
	err   error
}

func (f *fakeDirections) GetDirections(ctx context.Context, w []domain.Location, m domain.TransportMode) (domain.Route, error) {
	return f.route, f.err
}

func TestSearchPlaces_PassThrough(t *testing.T) {
	fp := &fakePlaces{places: []domain.Place{{ID: "101", Name: "Borough Market"}}}
	svc := app.NewPlaceService(fp, nil)

	out, err := svc.SearchPlaces(context.Background(), " Borough Market ", domain.Location{})
	if err != nil || len(out) != 1 || out[0].Placeholder {
		t.Fatalf("unexpected: %+v err=%v", out, err)
	}
	if fp.queries[0] != "Borough Market" {
		t.Fatalf("query not trimmed: %q", fp.queries[0])
	}
}

func TestSearchPlaces_PlaceholderOnFailure(t *testing.T) {
	svc := app.NewPlaceService(&fakePlaces{err: errors.New("timeout")}, nil)

	out, err := svc.SearchPlaces(context.Background(), "Sky Garden", domain.Location{})
	if err != nil {
		t.Fatalf("upstream failure must not surface: %v", err)
	}
	if len(out) != 1 || !out[0].Placeholder || out[0].Name != "Sky Garden" {
		t.Fatalf("unexpected placeholder: %+v", out)
	}
	if !strings.HasPrefix(out[0].ID, "placeholder-") {
		t.Fatalf("placeholder id: %q", out[0].ID)
	}

	again, _ := svc.SearchPlaces(context.Background(), "Sky Garden", domain.Location{})
	if again[0] != out[0] {
		t.Fatalf("placeholders should be stable")
	}
}

func TestSearchPlaces_EmptyQuery(t *testing.T) {
	svc := app.NewPlaceService(nil, nil)
	if _, err := svc.SearchPlaces(context.Background(), "  ", domain.Location{}); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestGetPlaceDetails_Placeholder(t *testing.T) {
	fp := &fakePlaces{err: errors.New("down")}
	svc := app.NewPlaceService(fp, nil)

	d, err := svc.GetPlaceDetails(context.Background(), "101")
	if err != nil || !d.Placeholder || d.ID != "101" {
		t.Fatalf("unexpected: %+v err=%v", d, err)
	}

	fp.err = nil
	fp.details = domain.PlaceDetails{Place: domain.Place{ID: "101", Name: "Borough Market"}}
	d, _ = svc.GetPlaceDetails(context.Background(), "101")
	if d.Placeholder || d.Name != "Borough Market" {
		t.Fatalf("expected real details: %+v", d)
	}
}

func TestGetDirections(t *testing.T) {
	wps := []domain.Location{{Lat: 51.5007, Lng: -0.1246}, {Lat: 51.5081, Lng: -0.0759}}

	osrm := &fakeDirections{route: domain.Route{Mode: domain.ModeCycling, DistanceMeters: 4000}}
	r, err := app.NewPlaceService(nil, osrm).GetDirections(context.Background(), wps, domain.ModeCycling)
	if err != nil || r.Placeholder || r.DistanceMeters != 4000 {
		t.Fatalf("unexpected: %+v err=%v", r, err)
	}

	failing := &fakeDirections{err: errors.New("unsupported")}
	r, err = app.NewPlaceService(nil, failing).GetDirections(context.Background(), wps, "")
	if err != nil || !r.Placeholder || r.Mode != domain.ModeWalking || len(r.Legs) != 1 {
		t.Fatalf("expected straight-line walking placeholder: %+v err=%v", r, err)
	}

	if _, err := app.NewPlaceService(nil, nil).GetDirections(context.Background(), wps[:1], domain.ModeWalking); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestActivityPlaces_UsesLocationName(t *testing.T) {
	fp := &fakePlaces{places: []domain.Place{{ID: "1"}}}
	svc := app.NewPlaceService(fp, nil)

	_, _ = svc.ActivityPlaces(context.Background(), domain.Activity{Title: "Lunch", Location: domain.Location{Name: "Borough Market"}})
	_, _ = svc.ActivityPlaces(context.Background(), domain.Activity{Title: "Tate Modern"})
	if len(fp.queries) != 2 || fp.queries[0] != "Borough Market" || fp.queries[1] != "Tate Modern" {
		t.Fatalf("unexpected queries: %q", fp.queries)
	}
}

func TestStraightLine(t *testing.T) {
	wps := []domain.Location{
		{Lat: 51.5007, Lng: -0.1246}, // Big Ben
		{Lat: 51.5081, Lng: -0.0759}, // Tower of London
		{Lat: 51.5055, Lng: -0.0910}, // Borough Market
	}
	r := app.StraightLine(wps, domain.ModeWalking)
	if !r.Placeholder || len(r.Legs) != 2 {
		t.Fatalf("unexpected route: %+v", r)
	}
	// Big Ben to the Tower is roughly 3.4km in a straight line
	if d := r.Legs[0].DistanceMeters; d < 3200 || d > 3600 {
		t.Fatalf("leg distance %d out of range", d)
	}
	if r.DistanceMeters != r.Legs[0].DistanceMeters+r.Legs[1].DistanceMeters {
		t.Fatalf("total distance does not add up: %+v", r)
	}
	if r.DurationSeconds <= 0 {
		t.Fatalf("expected positive duration")
	}

	if one := app.StraightLine(wps[:1], domain.ModeDriving); len(one.Legs) != 0 || one.DistanceMeters != 0 {
		t.Fatalf("single waypoint should give an empty route: %+v", one)
	}
}
