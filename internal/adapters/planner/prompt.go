package planner

import (
	"fmt"
	"strings"

	"london_trips/internal/domain"
)

const schema = `{
  "currency": "GBP",
  "itinerary": [
    {
      "day": 1,
      "activities": [
        {
          "time": "09:00",
          "activity": "Breakfast at Dishoom Covent Garden",
          "description": "Bombay-style breakfast",
          "type": "activity",
          "location": {"name": "Dishoom Covent Garden", "lat": 51.5124, "lng": -0.1269},
          "cost": {"low": "£10", "medium": "£18", "high": "£30"}
        }
      ]
    }
  ]
}`

// Prompt builds the instruction used by the LLM-backed planners. The model is
// asked for the array-of-days shape the normalizer understands.
func Prompt(p domain.RequestParams) string {
	modes := make([]string, 0, len(p.TransportModes))
	for _, m := range p.TransportModes {
		modes = append(modes, string(m))
	}
	return fmt.Sprintf(`You are planning a %d-day trip to %s. Return JSON only that matches the schema below.

Schema (example, match keys exactly):
%s

Traveller:
- interests: %s
- budget: %s
- gets around by: %s

Hard constraints:
- Exactly %d entries in "itinerary", numbered 1..%d.
- 3 to 5 activities per day, times formatted HH:MM, in chronological order.
- "type" is "activity" for dining, shopping, shows, tours and events; "attraction" for landmarks and sights.
- Coordinates are real WGS84 values for the place.
- "cost" always has low, medium and high entries in local currency.

Return JSON only. No comments, no markdown.
`, p.Days, p.Destination, schema, strings.Join(p.Interests, ", "), p.Budget, strings.Join(modes, ", "), p.Days, p.Days)
}

// ExtractJSON strips markdown fences and leading prose some models add
// around the JSON body.
func ExtractJSON(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}
	i := strings.IndexAny(s, "{[")
	if i < 0 {
		return s
	}
	closer := "}"
	if s[i] == '[' {
		closer = "]"
	}
	if j := strings.LastIndex(s, closer); j > i {
		return s[i : j+1]
	}
	return s[i:]
}
