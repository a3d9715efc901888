package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"london_trips/internal/adapters/observability"
	"london_trips/internal/domain"
)

const DefaultOSRMBase = "https://router.project-osrm.org"

var ErrUnsupportedMode = errors.New("directions: transport mode not supported")

// OSRM routes over the public OSRM demo server profiles.
type OSRM struct {
	base string
	hc   *http.Client
}

func NewOSRM(base string) *OSRM {
	if base == "" {
		base = DefaultOSRMBase
	}
	return &OSRM{base: strings.TrimRight(base, "/"), hc: &http.Client{Timeout: 10 * time.Second}}
}

var osrmProfiles = map[domain.TransportMode]string{
	domain.ModeWalking: "foot",
	domain.ModeCycling: "bike",
	domain.ModeDriving: "car",
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Legs     []struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
			Steps    []struct {
				Name     string `json:"name"`
				Maneuver struct {
					Type     string `json:"type"`
					Modifier string `json:"modifier"`
				} `json:"maneuver"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

func (o *OSRM) GetDirections(ctx context.Context, waypoints []domain.Location, mode domain.TransportMode) (domain.Route, error) {
	if len(waypoints) < 2 {
		return domain.Route{}, fmt.Errorf("%w: at least two waypoints are required", domain.ErrInvalidRequest)
	}
	profile, ok := osrmProfiles[mode]
	if !ok {
		return domain.Route{}, fmt.Errorf("%w: %s", ErrUnsupportedMode, mode)
	}

	coords := make([]string, len(waypoints))
	for i, w := range waypoints {
		coords[i] = fmt.Sprintf("%f,%f", w.Lng, w.Lat)
	}
	u := fmt.Sprintf("%s/route/v1/%s/%s?overview=false&steps=true", o.base, profile, strings.Join(coords, ";"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.Route{}, err
	}
	req.Header.Set("User-Agent", "london-trips/1.0")

	start := time.Now()
	resp, err := o.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("osrm", "/route", 0, time.Since(start))
		return domain.Route{}, fmt.Errorf("osrm request failed: %w", err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("osrm", "/route", resp.StatusCode, time.Since(start))
	if resp.StatusCode != http.StatusOK {
		return domain.Route{}, fmt.Errorf("osrm returned status %d", resp.StatusCode)
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Route{}, err
	}
	if body.Code != "Ok" || len(body.Routes) == 0 {
		return domain.Route{}, fmt.Errorf("osrm: %s", body.Code)
	}

	r := body.Routes[0]
	out := domain.Route{
		Mode:            mode,
		DistanceMeters:  int(math.Round(r.Distance)),
		DurationSeconds: int(math.Round(r.Duration)),
	}
	for i, leg := range r.Legs {
		if i+1 >= len(waypoints) {
			break
		}
		l := domain.RouteLeg{
			From:            waypoints[i],
			To:              waypoints[i+1],
			DistanceMeters:  int(math.Round(leg.Distance)),
			DurationSeconds: int(math.Round(leg.Duration)),
		}
		for _, s := range leg.Steps {
			l.Instructions = append(l.Instructions, instruction(s.Maneuver.Type, s.Maneuver.Modifier, s.Name))
		}
		out.Legs = append(out.Legs, l)
	}
	return out, nil
}

func instruction(kind, modifier, road string) string {
	parts := []string{kind}
	if modifier != "" {
		parts = append(parts, modifier)
	}
	if road != "" {
		parts = append(parts, "onto "+road)
	}
	return strings.Join(parts, " ")
}
