package domain

type ActivityType string

const (
	TypeActivity   ActivityType = "activity"
	TypeAttraction ActivityType = "attraction"
)

// Itinerary is the canonical multi-day plan produced by the normalizer.
type Itinerary struct {
	Destination      string    `json:"destination"`
	Days             int       `json:"days"`
	Currency         string    `json:"currency"`
	Itinerary        []DayPlan `json:"itinerary"`
	UsedFallbackData bool      `json:"usedFallbackData"`
}

// Empty reports whether there is nothing to show for this plan.
func (it Itinerary) Empty() bool { return len(it.Itinerary) == 0 }

type DayPlan struct {
	Day        int        `json:"day"` // 1-based, matches position
	Activities []Activity `json:"activities"`
}

type Activity struct {
	Title           string       `json:"title"`
	Time            string       `json:"time"`
	Description     string       `json:"description"`
	Type            ActivityType `json:"type"`
	Location        Location     `json:"location"`
	CostDescription string       `json:"costDescription"`
}

// Location always carries finite coordinates once resolved.
type Location struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}
