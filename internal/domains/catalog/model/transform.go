package model

import (
	"strconv"
	"strings"

	"escapade/shared/duration"
)

// Transformers map raw API records into the flat shapes the booking flows
// consume. They assume well-formed responses and do not validate: a malformed
// record yields zero values downstream rather than being rejected at the
// boundary.

func ActivityFromRecord(rec ActivityRecord) Activity {
	return Activity{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,

		HalfDay: rec.Formulas.HalfDay,
		FullDay: rec.Formulas.FullDay,

		DurationHalfDay: rec.Durations.HalfDay,
		DurationFullDay: rec.Durations.FullDay,
		HoursHalfDay:    hours(rec.Durations.HalfDay),
		HoursFullDay:    hours(rec.Durations.FullDay),

		PriceHalfDay: PriceTier(rec.Prices.HalfDay),
		PriceFullDay: PriceTier(rec.Prices.FullDay),

		MinParticipants: rec.MinParticipants,
		MaxParticipants: rec.MaxParticipants,
		MinAge:          rec.MinAge,
	}
}

func SpotFromRecord(rec SpotRecord) Spot {
	lat, lon := parseGPS(rec.GPS)

	practiced := make([]PracticedActivity, len(rec.Activities))
	for i, activity := range rec.Activities {
		practiced[i] = PracticedActivity{
			ActivityID: activity.ActivityID,
			Name:       activity.Name,
		}
	}

	return Spot{
		ID:                  rec.ID,
		Name:                rec.Name,
		Description:         rec.Description,
		GPS:                 rec.GPS,
		Lat:                 lat,
		Lon:                 lon,
		Photo:               rec.Photo,
		PracticedActivities: practiced,
	}
}

func SessionFromRecord(rec SessionRecord) Session {
	return Session{
		ID:     rec.ID,
		Status: rec.Status,

		Date:      rec.Date,
		StartTime: rec.StartTime,
		EndTime:   rec.EndTime,

		Activity: ActivityFromRecord(rec.Activity),
		Spot: SpotRef{
			ID:   rec.Spot.ID,
			Name: rec.Spot.Name,
		},

		PlacesMax:      rec.PlacesMax,
		PlacesReserved: rec.PlacesReserved,
		SessionType:    rec.TypeFormule,
		Duration:       rec.Duration,
	}
}

// hours parses a duration display string, leaving formulas the activity does
// not offer (empty string) at 0 without the unknown-format warning.
func hours(text string) float64 {
	if text == "" {
		return 0
	}

	return duration.Parse(text)
}

// parseGPS splits a "lat,lon" pair. Malformed coordinates come back as zeros.
func parseGPS(gps string) (lat, lon float64) {
	parts := strings.Split(gps, ",")
	if len(parts) != 2 {
		return 0, 0
	}

	lat, _ = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, _ = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)

	return lat, lon
}
