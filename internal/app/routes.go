package app

import (
	"math"

	"london_trips/internal/domain"
)

// average speeds in metres per second
var modeSpeed = map[domain.TransportMode]float64{
	domain.ModeWalking: 1.4,
	domain.ModeCycling: 4.2,
	domain.ModePublic:  6.0,
	domain.ModeDriving: 8.3,
}

// Haversine returns the great-circle distance in metres between two points.
func Haversine(a, b domain.Location) float64 {
	const R = 6371000
	φ1 := a.Lat * math.Pi / 180
	φ2 := b.Lat * math.Pi / 180
	Δφ := (b.Lat - a.Lat) * math.Pi / 180
	Δλ := (b.Lng - a.Lng) * math.Pi / 180
	h := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	return R * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// StraightLine builds a placeholder route from direct distances between
// consecutive waypoints.
func StraightLine(waypoints []domain.Location, mode domain.TransportMode) domain.Route {
	speed, ok := modeSpeed[mode]
	if !ok {
		speed = modeSpeed[domain.ModeWalking]
	}
	out := domain.Route{Mode: mode, Legs: []domain.RouteLeg{}, Placeholder: true}
	for i := 0; i+1 < len(waypoints); i++ {
		d := Haversine(waypoints[i], waypoints[i+1])
		leg := domain.RouteLeg{
			From:            waypoints[i],
			To:              waypoints[i+1],
			DistanceMeters:  int(math.Round(d)),
			DurationSeconds: int(math.Round(d / speed)),
		}
		out.DistanceMeters += leg.DistanceMeters
		out.DurationSeconds += leg.DurationSeconds
		out.Legs = append(out.Legs, leg)
	}
	return out
}
