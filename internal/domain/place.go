package domain

// Place is a candidate returned by a place search.
type Place struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category,omitempty"`
	Address     string  `json:"address,omitempty"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Placeholder bool    `json:"placeholder,omitempty"`
}

type PlaceDetails struct {
	Place
	Phone        string `json:"phone,omitempty"`
	Website      string `json:"website,omitempty"`
	OpeningHours string `json:"openingHours,omitempty"`
	Description  string `json:"description,omitempty"`
}

type RouteLeg struct {
	From            Location `json:"from"`
	To              Location `json:"to"`
	DistanceMeters  int      `json:"distanceMeters"`
	DurationSeconds int      `json:"durationSeconds"`
	Instructions    []string `json:"instructions,omitempty"`
}

type Route struct {
	Mode            TransportMode `json:"mode"`
	DistanceMeters  int           `json:"distanceMeters"`
	DurationSeconds int           `json:"durationSeconds"`
	Legs            []RouteLeg    `json:"legs"`
	Placeholder     bool          `json:"placeholder,omitempty"`
}
