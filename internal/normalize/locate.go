package normalize

import (
	"strings"
	"unicode/utf16"

	"github.com/tidwall/gjson"

	"london_trips/internal/domain"
)

// London is the centroid used for any city the table does not know.
var London = domain.Location{Lat: 51.5074, Lng: -0.1278}

// CityTable maps lower-cased city names to their default centroid.
type CityTable map[string]domain.Location

func DefaultCities() CityTable {
	return CityTable{
		"london":     London,
		"paris":      {Lat: 48.8566, Lng: 2.3522},
		"edinburgh":  {Lat: 55.9533, Lng: -3.1883},
		"manchester": {Lat: 53.4808, Lng: -2.2426},
		"bath":       {Lat: 51.3811, Lng: -2.3590},
		"oxford":     {Lat: 51.7520, Lng: -1.2577},
		"cambridge":  {Lat: 52.2053, Lng: 0.1218},
		"york":       {Lat: 53.9600, Lng: -1.0873},
		"new york":   {Lat: 40.7128, Lng: -74.0060},
		"rome":       {Lat: 41.9028, Lng: 12.4964},
	}
}

// Centroid never fails; unknown or empty cities fall back to London.
func (t CityTable) Centroid(city string) domain.Location {
	if loc, ok := t[strings.ToLower(strings.TrimSpace(city))]; ok {
		return domain.Location{Lat: loc.Lat, Lng: loc.Lng}
	}
	return London
}

// Resolve turns whatever the payload said about a place into coordinates.
// Priority: structured location, coordinates field, pseudo-geocoded name, base.
func Resolve(location, coordinates gjson.Result, base domain.Location) domain.Location {
	if location.IsObject() {
		lat, okLat := finite(location.Get("lat"))
		lng, okLng := finite(location.Get("lng"))
		if okLat && okLng {
			return domain.Location{Name: firstString(location, []string{"name"}), Lat: lat, Lng: lng}
		}
	}

	name := locationName(location)

	if coordinates.IsObject() {
		lat, okLat := finite(coordinates.Get("latitude"))
		lng, okLng := finite(coordinates.Get("longitude"))
		if okLat && okLng {
			return domain.Location{Name: name, Lat: lat, Lng: lng}
		}
	}

	if name != "" {
		return PseudoGeocode(name, base)
	}
	return domain.Location{Lat: base.Lat, Lng: base.Lng}
}

// PseudoGeocode places name within ±0.02° of base. It is not geocoding: the
// offset comes from the name's UTF-16 code unit sum, so equal sums collide.
func PseudoGeocode(name string, base domain.Location) domain.Location {
	seed := 0
	for _, u := range utf16.Encode([]rune(name)) {
		seed += int(u)
	}
	latOffset := float64(seed%100)/2500 - 0.02
	lngOffset := float64((seed*13)%100)/2500 - 0.02
	return domain.Location{Name: name, Lat: base.Lat + latOffset, Lng: base.Lng + lngOffset}
}
