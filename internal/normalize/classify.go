package normalize

import (
	"strings"

	"london_trips/internal/domain"
)

// ActivityText is the free text the classifier looks at.
type ActivityText struct {
	Kind        string // explicit type, if the source sent one
	Category    string
	Title       string
	Description string
	Location    string
}

var explicitActivityKinds = []string{"activity", "tour", "experience"}

// ActivityKeywords covers dining, shopping, entertainment, tours and events.
// Matching is by substring on lower-cased text.
var ActivityKeywords = []string{
	// dining
	"restaurant", "breakfast", "brunch", "lunch", "dinner", "afternoon tea",
	"cafe", "café", "coffee", "pub", "bar", "food", "dining", "tasting",
	// shopping
	"shopping", "shop", "market", "boutique",
	// entertainment
	"theatre", "theater", "musical", "show", "concert", "cinema", "comedy",
	"gig", "nightlife", "club",
	// tours and experiences
	"tour", "cruise", "walk", "class", "workshop", "ride",
	// events
	"museum", "exhibition", "festival", "event", "match",
}

// Classify is total and deterministic: the same text always gets the same type.
func Classify(t ActivityText) domain.ActivityType {
	for _, k := range []string{t.Kind, t.Category} {
		k = strings.ToLower(k)
		for _, want := range explicitActivityKinds {
			if k != "" && strings.Contains(k, want) {
				return domain.TypeActivity
			}
		}
	}

	blob := lower(t.Title, t.Description, t.Location)
	for _, kw := range ActivityKeywords {
		if strings.Contains(blob, kw) {
			return domain.TypeActivity
		}
	}
	return domain.TypeAttraction
}
