// Package mockplanner generates London itineraries offline. It stands in for
// the upstream planner when that is unconfigured or failing; every payload it
// produces is marked usedFallbackData.
package mockplanner

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"london_trips/internal/domain"
)

var slots = []string{"09:00", "12:30", "15:00", "19:00"}

type Planner struct{}

func New() *Planner { return &Planner{} }

type mockCost struct {
	Low    string `json:"low"`
	Medium string `json:"medium"`
	High   string `json:"high"`
}

type mockActivity struct {
	Time        string   `json:"time"`
	Activity    string   `json:"activity"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Location    string   `json:"location"`
	Cost        mockCost `json:"cost"`
}

type mockDay struct {
	Day        int            `json:"day"`
	Activities []mockActivity `json:"activities"`
}

type mockPlan struct {
	ID               string    `json:"id"`
	Destination      string    `json:"destination"`
	Currency         string    `json:"currency"`
	UsedFallbackData bool      `json:"usedFallbackData"`
	Itinerary        []mockDay `json:"itinerary"`
}

// Plan never fails. The activities are drawn from the templates of the
// requested interests in turn; unknown interests use the general set.
func (m *Planner) Plan(_ context.Context, p domain.RequestParams) ([]byte, error) {
	p = p.Normalized()
	days := p.Days
	if days < 1 {
		days = 1
	}
	if days > domain.MaxDays {
		days = domain.MaxDays
	}

	pools := make([][]template, 0, len(p.Interests))
	for _, in := range p.Interests {
		if t, ok := templates[strings.ToLower(in)]; ok {
			pools = append(pools, t)
		}
	}
	if len(pools) == 0 {
		pools = append(pools, templates["general"])
	}

	plan := mockPlan{
		ID:               uuid.NewString(),
		Destination:      p.Destination,
		Currency:         "GBP",
		UsedFallbackData: true,
		Itinerary:        make([]mockDay, 0, days),
	}
	n := 0
	for d := 1; d <= days; d++ {
		day := mockDay{Day: d, Activities: make([]mockActivity, 0, len(slots))}
		for _, slot := range slots {
			pool := pools[n%len(pools)]
			t := pool[(n/len(pools))%len(pool)]
			n++
			day.Activities = append(day.Activities, mockActivity{
				Time:        slot,
				Activity:    t.Title,
				Description: t.Description,
				Type:        t.Kind,
				Location:    t.Location,
				Cost:        mockCost{Low: t.Cost[0], Medium: t.Cost[1], High: t.Cost[2]},
			})
		}
		plan.Itinerary = append(plan.Itinerary, day)
	}
	return json.Marshal(plan)
}
