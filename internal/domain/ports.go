package domain

import "context"

type TripRepository interface {
	// Write paths
	SaveTrip(ctx context.Context, t Trip) error

	// Read paths
	GetTrip(ctx context.Context, id string) (Trip, error)
	ListTrips(ctx context.Context, limit int) ([]TripSummary, error)
}

// PlannerClient returns a raw trip-plan payload. The shape of the payload is
// not known up front; the normalizer sorts it out.
type PlannerClient interface {
	Plan(ctx context.Context, p RequestParams) ([]byte, error)
}

type PlaceSearcher interface {
	SearchPlaces(ctx context.Context, query string, near Location) ([]Place, error)
	GetPlaceDetails(ctx context.Context, placeID string) (PlaceDetails, error)
}

type DirectionsClient interface {
	GetDirections(ctx context.Context, waypoints []Location, mode TransportMode) (Route, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
