// Package normalize turns trip-plan payloads of any known shape into a
// canonical domain.Itinerary. It performs no I/O and never fails: missing or
// malformed data degrades to empty strings and default coordinates.
package normalize

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"london_trips/internal/domain"
)

const DefaultCurrency = "GBP"

type Config struct {
	Cities CityTable
	// MockLocations is the offline generator's name -> coordinate table.
	// When set, array payloads are treated as mock-native.
	MockLocations map[string]domain.Location
	Currency      string
}

// Normalizer is immutable after New and safe for concurrent use.
type Normalizer struct {
	cities     CityTable
	mock       map[string]domain.Location
	mockFolded map[string]domain.Location
	currency   string
}

func New(cfg Config) *Normalizer {
	n := &Normalizer{cities: cfg.Cities, currency: cfg.Currency}
	if n.cities == nil {
		n.cities = DefaultCities()
	}
	if n.currency == "" {
		n.currency = DefaultCurrency
	}
	if len(cfg.MockLocations) > 0 {
		n.mock = make(map[string]domain.Location, len(cfg.MockLocations))
		n.mockFolded = make(map[string]domain.Location, len(cfg.MockLocations))
		for k, v := range cfg.MockLocations {
			n.mock[k] = v
			n.mockFolded[strings.ToLower(k)] = v
		}
	}
	return n
}

// Normalize is NormalizeWithShape without the shape.
func (n *Normalizer) Normalize(raw []byte, p domain.RequestParams) domain.Itinerary {
	it, _ := n.NormalizeWithShape(raw, p)
	return it
}

// NormalizeValue accepts an in-memory payload (maps, slices or structs).
// Struct field order is kept; Go map keys come out sorted.
func (n *Normalizer) NormalizeValue(v any, p domain.RequestParams) domain.Itinerary {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Warn().Err(err).Str("context", "NormalizeValue").Msg("payload not serializable")
		raw = nil
	}
	return n.Normalize(raw, p)
}

func (n *Normalizer) NormalizeWithShape(raw []byte, p domain.RequestParams) (domain.Itinerary, Shape) {
	destination := p.Destination
	if strings.TrimSpace(destination) == "" {
		destination = domain.DefaultDestination
	}
	out := domain.Itinerary{
		Destination: destination,
		Days:        p.Days,
		Currency:    n.currency,
		Itinerary:   []domain.DayPlan{},
	}
	if !gjson.ValidBytes(raw) {
		return out, ShapeEmpty
	}

	pl := detect(gjson.ParseBytes(raw), p.Days, n.mock != nil)
	out.UsedFallbackData = pl.Fallback
	if pl.Currency != "" {
		out.Currency = pl.Currency
	}

	base := n.cities.Centroid(destination)
	for _, d := range pl.Days {
		day := domain.DayPlan{Day: d.Number, Activities: make([]domain.Activity, 0, len(d.Activities))}
		for _, a := range d.Activities {
			day.Activities = append(day.Activities, n.activity(a, pl.Shape, p.Budget, base))
		}
		out.Itinerary = append(out.Itinerary, day)
	}
	return out, pl.Shape
}

// CityCentroid exposes the configured centroid lookup.
func (n *Normalizer) CityCentroid(city string) domain.Location { return n.cities.Centroid(city) }

func (n *Normalizer) activity(a rawActivity, shape Shape, budget domain.Budget, base domain.Location) domain.Activity {
	return domain.Activity{
		Title:           a.Title,
		Time:            a.Time,
		Description:     a.Description,
		Type:            Classify(a.ActivityText),
		Location:        n.locate(a, shape, base),
		CostDescription: costFor(a.Cost, budget),
	}
}

func (n *Normalizer) locate(a rawActivity, shape Shape, base domain.Location) domain.Location {
	if shape == ShapeMockNative && a.Location.Type == gjson.String {
		if loc, ok := n.mockLookup(a.Location.Str); ok {
			return domain.Location{Name: a.Location.Str, Lat: loc.Lat, Lng: loc.Lng}
		}
	}
	return Resolve(a.Location, a.Coordinates, base)
}

func (n *Normalizer) mockLookup(name string) (domain.Location, bool) {
	if loc, ok := n.mock[name]; ok {
		return loc, true
	}
	loc, ok := n.mockFolded[strings.ToLower(name)]
	return loc, ok
}

// costFor picks the entry for the requested budget out of a cost object.
func costFor(cost gjson.Result, budget domain.Budget) string {
	if !cost.IsObject() {
		return ""
	}
	switch budget {
	case domain.BudgetLow, domain.BudgetMedium, domain.BudgetHigh:
		return scalarText(cost.Get(string(budget)))
	}
	return ""
}
