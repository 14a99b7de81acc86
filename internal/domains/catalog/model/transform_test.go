package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"escapade/internal/domains/catalog/model"
	"escapade/shared/constant"
)

func TestActivityFromRecord(t *testing.T) {
	rec := model.ActivityRecord{
		ID:          "act-kayak",
		Name:        "Kayak",
		Description: "Descente de rivière",

		MinParticipants: 2,
		MaxParticipants: 8,
		MinAge:          12,
	}
	rec.Formulas.HalfDay = true
	rec.Formulas.FullDay = true
	rec.Durations.HalfDay = "4h"
	rec.Durations.FullDay = "7h30"
	rec.Prices.HalfDay = model.PriceTierRecord{Standard: 45, Reduced: 40, ACM: 35}
	rec.Prices.FullDay = model.PriceTierRecord{Standard: 80, Reduced: 70, ACM: 60}

	activity := model.ActivityFromRecord(rec)

	assert.Equal(t, "act-kayak", activity.ID)
	assert.Equal(t, "Kayak", activity.Name)
	assert.True(t, activity.HalfDay)
	assert.True(t, activity.FullDay)
	assert.Equal(t, "4h", activity.DurationHalfDay)
	assert.Equal(t, "7h30", activity.DurationFullDay)
	assert.InDelta(t, 4, activity.HoursHalfDay, 0.0001)
	assert.InDelta(t, 7.5, activity.HoursFullDay, 0.0001)
	assert.InDelta(t, 45, activity.PriceHalfDay.Standard, 0.0001)
	assert.InDelta(t, 70, activity.PriceFullDay.Reduced, 0.0001)
	assert.Equal(t, 2, activity.MinParticipants)
	assert.Equal(t, 8, activity.MaxParticipants)
	assert.Equal(t, 12, activity.MinAge)
}

func TestActivityFromRecord_UnofferedFormulaStaysZero(t *testing.T) {
	rec := model.ActivityRecord{ID: "act-canyon", Name: "Canyoning"}
	rec.Formulas.HalfDay = true
	rec.Durations.HalfDay = "3h30"

	activity := model.ActivityFromRecord(rec)

	assert.False(t, activity.FullDay)
	assert.Empty(t, activity.DurationFullDay)
	assert.Zero(t, activity.HoursFullDay)
	assert.False(t, activity.Offers(constant.SessionTypeFullDay))
	assert.True(t, activity.Offers(constant.SessionTypeHalfDay))
}

func TestSpotFromRecord(t *testing.T) {
	rec := model.SpotRecord{
		ID:          "spot-river",
		Name:        "La Rivière",
		Description: "Base nautique",
		GPS:         "44.1234, 3.5678",
		Photo:       "river.jpg",
		Activities: []struct {
			ActivityID string `json:"activity_id"`
			Name       string `json:"name"`
		}{
			{ActivityID: "act-kayak", Name: "Kayak"},
			{ActivityID: "act-canyon", Name: "Canyoning"},
		},
	}

	spot := model.SpotFromRecord(rec)

	assert.Equal(t, "spot-river", spot.ID)
	assert.Equal(t, "44.1234, 3.5678", spot.GPS)
	assert.InDelta(t, 44.1234, spot.Lat, 0.0001)
	assert.InDelta(t, 3.5678, spot.Lon, 0.0001)
	assert.Equal(t, "river.jpg", spot.Photo)
	assert.Len(t, spot.PracticedActivities, 2)
	assert.True(t, spot.Practices("act-kayak"))
	assert.False(t, spot.Practices("act-rafting"))
}

func TestSpotFromRecord_MalformedGPS(t *testing.T) {
	for _, gps := range []string{"", "44.1234", "not,numbers,at,all"} {
		spot := model.SpotFromRecord(model.SpotRecord{ID: "spot-x", GPS: gps})

		assert.Zero(t, spot.Lat)
		assert.Zero(t, spot.Lon)
		assert.Equal(t, gps, spot.GPS)
	}
}

func TestSessionFromRecord(t *testing.T) {
	rec := model.SessionRecord{
		ID:     "sess-1",
		Status: "Active",

		Date:      "2030-06-01",
		StartTime: "10:00",
		EndTime:   "14:00",

		PlacesMax:      8,
		PlacesReserved: 5,
		TypeFormule:    constant.SessionTypeHalfDay,
		Duration:       "4h",
	}
	rec.Activity.ID = "act-kayak"
	rec.Activity.Name = "Kayak"
	rec.Spot.ID = "spot-river"
	rec.Spot.Name = "La Rivière"

	session := model.SessionFromRecord(rec)

	assert.Equal(t, "sess-1", session.ID)
	assert.Equal(t, "act-kayak", session.Activity.ID)
	assert.Equal(t, "spot-river", session.Spot.ID)
	assert.Equal(t, constant.SessionTypeHalfDay, session.SessionType)
	assert.Equal(t, "4h", session.Duration)
	assert.Equal(t, 3, session.Remaining())
}

func TestSessionRemaining_NeverNegative(t *testing.T) {
	session := model.Session{PlacesMax: 4, PlacesReserved: 6}

	assert.Equal(t, 0, session.Remaining())
}
