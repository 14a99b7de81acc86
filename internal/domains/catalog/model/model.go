package model

import "escapade/shared/constant"

// Catalog entities are read-only projections of the external booking API.
// They are fetched, cached and filtered here, never mutated locally.

type PriceTier struct {
	Standard float64 `json:"standard"`
	Reduced  float64 `json:"reduced"`
	ACM      float64 `json:"acm"`
}

type Activity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// Offered formulas. When a flag is false that session type must never be
	// selectable or priced for this activity.
	HalfDay bool `json:"half_day"`
	FullDay bool `json:"full_day"`

	// Durations both as the API's display strings and as decimal hours.
	DurationHalfDay string  `json:"duration_half_day"`
	DurationFullDay string  `json:"duration_full_day"`
	HoursHalfDay    float64 `json:"hours_half_day"`
	HoursFullDay    float64 `json:"hours_full_day"`

	PriceHalfDay PriceTier `json:"price_half_day"`
	PriceFullDay PriceTier `json:"price_full_day"`

	MinParticipants int `json:"min_participants"`
	MaxParticipants int `json:"max_participants"`
	MinAge          int `json:"min_age"`
}

// Offers reports whether the activity can be booked for the given session type.
func (a Activity) Offers(sessionType string) bool {
	switch sessionType {
	case constant.SessionTypeHalfDay:
		return a.HalfDay
	case constant.SessionTypeFullDay:
		return a.FullDay
	default:
		return false
	}
}

type PracticedActivity struct {
	ActivityID string `json:"activity_id"`
	Name       string `json:"name"`
}

type Spot struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// GPS keeps the API's "lat,lon" encoding; Lat/Lon carry the parsed pair.
	GPS string  `json:"gps"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`

	Photo    string `json:"photo"`
	PhotoURL string `json:"photo_url"`

	PracticedActivities []PracticedActivity `json:"practiced_activities"`
}

// Practices reports whether the spot offers the given activity. A spot may
// only be proposed for an activity it practices.
func (s Spot) Practices(activityID string) bool {
	for _, practiced := range s.PracticedActivities {
		if practiced.ActivityID == activityID {
			return true
		}
	}

	return false
}

type SpotRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Session struct {
	ID     string `json:"id"`
	Status string `json:"status"`

	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	Activity Activity `json:"activity"`
	Spot     SpotRef  `json:"spot"`

	PlacesMax      int `json:"places_max"`
	PlacesReserved int `json:"places_reserved"`

	SessionType string `json:"session_type"`
	Duration    string `json:"duration"`
}

// Remaining is the number of places still open on the session.
func (s Session) Remaining() int {
	return max(0, s.PlacesMax-s.PlacesReserved)
}
