package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"london_trips/internal/domain"
	"london_trips/internal/normalize"
)

// PlaceService wraps place search and routing. Upstream failures never reach
// the caller; they get placeholders instead.
type PlaceService struct {
	search     domain.PlaceSearcher
	directions domain.DirectionsClient
}

// NewPlaceService accepts nil adapters; everything is then a placeholder.
func NewPlaceService(s domain.PlaceSearcher, d domain.DirectionsClient) *PlaceService {
	return &PlaceService{search: s, directions: d}
}

func (s *PlaceService) SearchPlaces(ctx context.Context, query string, near domain.Location) ([]domain.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", domain.ErrInvalidRequest)
	}
	if s.search != nil {
		out, err := s.search.SearchPlaces(ctx, query, near)
		if err == nil && len(out) > 0 {
			return out, nil
		}
		if err != nil {
			log.Warn().Err(err).Str("query", query).Msg("place search failed, using placeholder")
		}
	}
	return []domain.Place{placeholderPlace(query, near)}, nil
}

func (s *PlaceService) GetPlaceDetails(ctx context.Context, placeID string) (domain.PlaceDetails, error) {
	if strings.TrimSpace(placeID) == "" {
		return domain.PlaceDetails{}, fmt.Errorf("%w: place id is required", domain.ErrInvalidRequest)
	}
	if s.search != nil && !strings.HasPrefix(placeID, placeholderPrefix) {
		d, err := s.search.GetPlaceDetails(ctx, placeID)
		if err == nil {
			return d, nil
		}
		log.Warn().Err(err).Str("place", placeID).Msg("place details failed, using placeholder")
	}
	return domain.PlaceDetails{
		Place:       domain.Place{ID: placeID, Placeholder: true},
		Description: "Details are not available right now.",
	}, nil
}

func (s *PlaceService) GetDirections(ctx context.Context, waypoints []domain.Location, mode domain.TransportMode) (domain.Route, error) {
	if len(waypoints) < 2 {
		return domain.Route{}, fmt.Errorf("%w: at least two waypoints are required", domain.ErrInvalidRequest)
	}
	if mode == "" {
		mode = domain.ModeWalking
	}
	if s.directions != nil {
		r, err := s.directions.GetDirections(ctx, waypoints, mode)
		if err == nil {
			return r, nil
		}
		log.Warn().Err(err).Str("mode", string(mode)).Msg("directions failed, using straight line")
	}
	return StraightLine(waypoints, mode), nil
}

// ActivityPlaces finds candidates for an itinerary activity by its location
// name, or its title when the location is unnamed.
func (s *PlaceService) ActivityPlaces(ctx context.Context, a domain.Activity) ([]domain.Place, error) {
	q := a.Location.Name
	if strings.TrimSpace(q) == "" {
		q = a.Title
	}
	return s.SearchPlaces(ctx, q, a.Location)
}

const placeholderPrefix = "placeholder-"

func placeholderPlace(query string, near domain.Location) domain.Place {
	if near.Lat == 0 && near.Lng == 0 {
		near = normalize.London
	}
	loc := normalize.PseudoGeocode(query, near)
	sum := sha1.Sum([]byte(strings.ToLower(query)))
	return domain.Place{
		ID:          placeholderPrefix + hex.EncodeToString(sum[:6]),
		Name:        query,
		Lat:         loc.Lat,
		Lng:         loc.Lng,
		Placeholder: true,
	}
}
