package model

// Raw records as the external booking API serves them, with pricing, duration
// and formula details nested per session type.

type PriceTierRecord struct {
	Standard float64 `json:"standard"`
	Reduced  float64 `json:"reduced"`
	ACM      float64 `json:"acm"`
}

type ActivityRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	Formulas struct {
		HalfDay bool `json:"half_day"`
		FullDay bool `json:"full_day"`
	} `json:"formulas"`

	Durations struct {
		HalfDay string `json:"half_day"`
		FullDay string `json:"full_day"`
	} `json:"durations"`

	Prices struct {
		HalfDay PriceTierRecord `json:"half_day"`
		FullDay PriceTierRecord `json:"full_day"`
	} `json:"prices"`

	MinParticipants int `json:"min_participants"`
	MaxParticipants int `json:"max_participants"`
	MinAge          int `json:"min_age"`
}

type SpotRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	GPS         string `json:"gps"`
	Photo       string `json:"photo"`

	Activities []struct {
		ActivityID string `json:"activity_id"`
		Name       string `json:"name"`
	} `json:"activities"`
}

type SessionRecord struct {
	ID     string `json:"id"`
	Status string `json:"status"`

	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	Activity ActivityRecord `json:"activity"`

	Spot struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"spot"`

	PlacesMax      int    `json:"places_max"`
	PlacesReserved int    `json:"places_reserved"`
	TypeFormule    string `json:"type_formule"`
	Duration       string `json:"duration"`
}
