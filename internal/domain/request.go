package domain

import (
	"fmt"
	"strings"
	"time"
)

type Budget string

const (
	BudgetLow    Budget = "low"
	BudgetMedium Budget = "medium"
	BudgetHigh   Budget = "high"
)

type TransportMode string

const (
	ModeWalking TransportMode = "walking"
	ModePublic  TransportMode = "public"
	ModeDriving TransportMode = "driving"
	ModeCycling TransportMode = "cycling"
)

const (
	DefaultDestination = "London"
	DefaultInterest    = "general"
	MaxDays            = 14
	maxInterests       = 2
)

// RequestParams is what the trip form submits.
type RequestParams struct {
	Destination    string          `json:"destination"`
	Days           int             `json:"days"`
	Interests      []string        `json:"interests"`
	Budget         Budget          `json:"budget"`
	TransportModes []TransportMode `json:"transportModes"`
}

// Normalized returns a trimmed copy with defaults applied. The receiver is not modified.
func (p RequestParams) Normalized() RequestParams {
	out := RequestParams{
		Destination: strings.TrimSpace(p.Destination),
		Days:        p.Days,
		Budget:      Budget(strings.ToLower(strings.TrimSpace(string(p.Budget)))),
	}
	if out.Destination == "" {
		out.Destination = DefaultDestination
	}
	if out.Budget == "" {
		out.Budget = BudgetMedium
	}

	seen := map[string]struct{}{}
	for _, in := range p.Interests {
		k := strings.ToLower(strings.TrimSpace(in))
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out.Interests = append(out.Interests, k)
		if len(out.Interests) == maxInterests {
			break
		}
	}
	if len(out.Interests) == 0 {
		out.Interests = []string{DefaultInterest}
	}

	modes := map[TransportMode]struct{}{}
	for _, m := range p.TransportModes {
		m = TransportMode(strings.ToLower(strings.TrimSpace(string(m))))
		if _, dup := modes[m]; dup || m == "" {
			continue
		}
		modes[m] = struct{}{}
		out.TransportModes = append(out.TransportModes, m)
	}
	if len(out.TransportModes) == 0 {
		out.TransportModes = []TransportMode{ModeWalking, ModePublic}
	}
	return out
}

// Validate checks a Normalized() value.
func (p RequestParams) Validate() error {
	if p.Days < 1 || p.Days > MaxDays {
		return fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidRequest, MaxDays)
	}
	switch p.Budget {
	case BudgetLow, BudgetMedium, BudgetHigh:
	default:
		return fmt.Errorf("%w: unknown budget %q", ErrInvalidRequest, p.Budget)
	}
	for _, m := range p.TransportModes {
		switch m {
		case ModeWalking, ModePublic, ModeDriving, ModeCycling:
		default:
			return fmt.Errorf("%w: unknown transport mode %q", ErrInvalidRequest, m)
		}
	}
	return nil
}

// Trip is a generated itinerary together with the request that produced it.
type Trip struct {
	ID        string        `json:"id"`
	Params    RequestParams `json:"params"`
	Itinerary Itinerary     `json:"itinerary"`
	CreatedAt time.Time     `json:"createdAt"`
}

type TripSummary struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	Days        int       `json:"days"`
	Fallback    bool      `json:"usedFallbackData"`
	CreatedAt   time.Time `json:"createdAt"`
}
