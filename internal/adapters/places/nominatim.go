// internal/adapters/places/nominatim.go
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"london_trips/internal/adapters/observability"
	"london_trips/internal/domain"
)

const DefaultNominatimBase = "https://nominatim.openstreetmap.org"

var ErrNoResults = errors.New("places: no results")

// Nominatim searches OpenStreetMap. The public instance allows one request
// per second; rps <= 0 means that.
type Nominatim struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func NewNominatim(base string, rps float64) *Nominatim {
	if base == "" {
		base = DefaultNominatimBase
	}
	if rps <= 0 {
		rps = 1
	}
	return &Nominatim{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 10 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), 1),
	}
}

type nominatimResult struct {
	PlaceID     int64  `json:"place_id"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Type        string `json:"type"`
	Class       string `json:"class"`
	Address     struct {
		Road        string `json:"road"`
		City        string `json:"city"`
		Town        string `json:"town"`
		Postcode    string `json:"postcode"`
		HouseNumber string `json:"house_number"`
	} `json:"address"`
}

type nominatimDetails struct {
	PlaceID   int64             `json:"place_id"`
	LocalName string            `json:"localname"`
	Category  string            `json:"category"`
	Type      string            `json:"type"`
	ExtraTags map[string]string `json:"extratags"`
	Centroid  struct {
		Coordinates []float64 `json:"coordinates"` // lon, lat
	} `json:"centroid"`
	AddressTags map[string]string `json:"addresstags"`
}

// SearchPlaces looks query up in a ~5km box around near.
func (n *Nominatim) SearchPlaces(ctx context.Context, query string, near domain.Location) ([]domain.Place, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "10")
	q.Set("addressdetails", "1")
	if near.Lat != 0 || near.Lng != 0 {
		const d = 0.05
		q.Set("viewbox", fmt.Sprintf("%f,%f,%f,%f", near.Lng-d, near.Lat+d, near.Lng+d, near.Lat-d))
	}

	var results []nominatimResult
	if err := n.get(ctx, "/search", q, &results); err != nil {
		return nil, err
	}

	out := make([]domain.Place, 0, len(results))
	for _, r := range results {
		lat, err := strconv.ParseFloat(r.Lat, 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(r.Lon, 64)
		if err != nil {
			continue
		}
		out = append(out, domain.Place{
			ID:       strconv.FormatInt(r.PlaceID, 10),
			Name:     shortName(r.DisplayName),
			Category: r.Class,
			Address:  buildAddress(r),
			Lat:      lat,
			Lng:      lon,
		})
	}
	if len(out) == 0 {
		return nil, ErrNoResults
	}
	return out, nil
}

func (n *Nominatim) GetPlaceDetails(ctx context.Context, placeID string) (domain.PlaceDetails, error) {
	if _, err := strconv.ParseInt(placeID, 10, 64); err != nil {
		return domain.PlaceDetails{}, fmt.Errorf("%w: place id %q", domain.ErrNotFound, placeID)
	}
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("format", "json")

	var d nominatimDetails
	if err := n.get(ctx, "/details", q, &d); err != nil {
		return domain.PlaceDetails{}, err
	}
	out := domain.PlaceDetails{
		Place: domain.Place{
			ID:       strconv.FormatInt(d.PlaceID, 10),
			Name:     d.LocalName,
			Category: d.Category,
			Address:  strings.TrimSpace(d.AddressTags["housenumber"] + " " + d.AddressTags["street"]),
		},
	}
	if len(d.Centroid.Coordinates) == 2 {
		out.Lng, out.Lat = d.Centroid.Coordinates[0], d.Centroid.Coordinates[1]
	}
	if d.ExtraTags != nil {
		out.Phone = firstTag(d.ExtraTags, "phone", "contact:phone")
		out.Website = firstTag(d.ExtraTags, "website", "contact:website")
		out.OpeningHours = d.ExtraTags["opening_hours"]
		out.Description = d.ExtraTags["description"]
	}
	return out, nil
}

func (n *Nominatim) get(ctx context.Context, path string, q url.Values, out any) error {
	if err := n.rl.Wait(ctx); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.base+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "london-trips/1.0")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := n.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("nominatim", path, 0, time.Since(start))
		return fmt.Errorf("nominatim request failed: %w", err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("nominatim", path, resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return domain.ErrNotFound
	default:
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func buildAddress(r nominatimResult) string {
	parts := []string{}
	if r.Address.HouseNumber != "" && r.Address.Road != "" {
		parts = append(parts, r.Address.HouseNumber+" "+r.Address.Road)
	} else if r.Address.Road != "" {
		parts = append(parts, r.Address.Road)
	}
	city := r.Address.City
	if city == "" {
		city = r.Address.Town
	}
	if city != "" {
		parts = append(parts, city)
	}
	if r.Address.Postcode != "" {
		parts = append(parts, r.Address.Postcode)
	}
	return strings.Join(parts, ", ")
}

// shortName is the first comma-separated part of a display name.
func shortName(display string) string {
	if head, _, ok := strings.Cut(display, ","); ok && strings.TrimSpace(head) != "" {
		return strings.TrimSpace(head)
	}
	return display
}

func firstTag(tags map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := tags[k]; v != "" {
			return v
		}
	}
	return ""
}
