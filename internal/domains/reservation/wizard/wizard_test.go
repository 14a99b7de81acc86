package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	catalogModel "escapade/internal/domains/catalog/model"
	"escapade/internal/domains/reservation/wizard"
	"escapade/shared/constant"
	"escapade/shared/timezone"
)

func testCatalog() wizard.Catalog {
	return wizard.Catalog{
		Activities: []catalogModel.Activity{
			{
				ID:              "act-kayak",
				Name:            "Kayak",
				HalfDay:         true,
				FullDay:         true,
				DurationHalfDay: "4h",
				DurationFullDay: "8h",
				HoursHalfDay:    4,
				HoursFullDay:    8,
				PriceHalfDay:    catalogModel.PriceTier{Standard: 45, Reduced: 40},
				PriceFullDay:    catalogModel.PriceTier{Standard: 80, Reduced: 70},
				MinParticipants: 1,
				MaxParticipants: 8,
			},
			{
				ID:              "act-canyon",
				Name:            "Canyoning",
				HalfDay:         true,
				FullDay:         false,
				DurationHalfDay: "3h30",
				HoursHalfDay:    3.5,
				PriceHalfDay:    catalogModel.PriceTier{Standard: 55, Reduced: 50},
				MaxParticipants: 6,
			},
			{
				ID:              "act-rafting",
				Name:            "Rafting",
				HalfDay:         false,
				FullDay:         true,
				DurationFullDay: "6h",
				HoursFullDay:    6,
				PriceFullDay:    catalogModel.PriceTier{Standard: 65, Reduced: 60},
				MaxParticipants: 10,
			},
		},
		Spots: []catalogModel.Spot{
			{
				ID:   "spot-river",
				Name: "La Rivière",
				PracticedActivities: []catalogModel.PracticedActivity{
					{ActivityID: "act-kayak", Name: "Kayak"},
					{ActivityID: "act-canyon", Name: "Canyoning"},
				},
			},
			{
				ID:   "spot-gorge",
				Name: "Les Gorges",
				PracticedActivities: []catalogModel.PracticedActivity{
					{ActivityID: "act-canyon", Name: "Canyoning"},
				},
			},
		},
	}
}

func validIdentity() wizard.SetClientIdentity {
	return wizard.SetClientIdentity{
		FirstName: "Claire",
		LastName:  "Dupont",
		Email:     "claire@example.com",
		Phone:     "0612345678",
	}
}

func TestNewState(t *testing.T) {
	state := wizard.NewState(testCatalog())

	assert.Equal(t, wizard.StepClient, state.Step)
	assert.Len(t, state.Participants, 1)
	assert.Empty(t, state.Errors)
}

func TestApply_NextBlockedByInvalidStep(t *testing.T) {
	state := wizard.NewState(testCatalog())

	next := wizard.Apply(state, wizard.Next{})

	assert.Equal(t, wizard.StepClient, next.Step)
	assert.NotEmpty(t, next.Errors)
}

func TestApply_NextAdvancesWhenStepValid(t *testing.T) {
	state := wizard.NewState(testCatalog())
	state = wizard.Apply(state, validIdentity())

	next := wizard.Apply(state, wizard.Next{})

	assert.Equal(t, wizard.StepPlanning, next.Step)
	assert.Empty(t, next.Errors)
}

func TestApply_PlanningStepGatesOnActivity(t *testing.T) {
	state := wizard.NewState(testCatalog())
	state = wizard.Apply(state, validIdentity())
	state = wizard.Apply(state, wizard.Next{})

	next := wizard.Apply(state, wizard.Next{})

	assert.Equal(t, wizard.StepPlanning, next.Step)
	assert.NotEmpty(t, next.Errors)
}

func TestApply_BackNeverValidates(t *testing.T) {
	state := wizard.NewState(testCatalog())
	state = wizard.Apply(state, validIdentity())
	state = wizard.Apply(state, wizard.Next{})

	back := wizard.Apply(state, wizard.Back{To: wizard.StepClient})

	assert.Equal(t, wizard.StepClient, back.Step)
	assert.Empty(t, back.Errors)

	// Forward jumps through Back are ignored.
	same := wizard.Apply(back, wizard.Back{To: wizard.StepMessage})
	assert.Equal(t, wizard.StepClient, same.Step)
}

func TestApply_SessionTypeAutoCorrectsToOfferedFormula(t *testing.T) {
	state := wizard.NewState(testCatalog())

	state = wizard.Apply(state, wizard.SelectActivity{ActivityID: "act-kayak"})
	state = wizard.Apply(state, wizard.SelectSessionType{SessionType: constant.SessionTypeFullDay})
	assert.Equal(t, constant.SessionTypeFullDay, state.SessionType)

	// Canyoning has no full-day formula: the half-day one is selected instead.
	state = wizard.Apply(state, wizard.SelectActivity{ActivityID: "act-canyon"})
	assert.Equal(t, constant.SessionTypeHalfDay, state.SessionType)

	// Rafting is full-day only.
	state = wizard.Apply(state, wizard.SelectActivity{ActivityID: "act-rafting"})
	assert.Equal(t, constant.SessionTypeFullDay, state.SessionType)
}

func TestApply_SpotResetsWhenActivityChanges(t *testing.T) {
	state := wizard.NewState(testCatalog())

	state = wizard.Apply(state, wizard.SelectActivity{ActivityID: "act-canyon"})
	state = wizard.Apply(state, wizard.SelectSpot{SpotID: "spot-gorge"})
	assert.Equal(t, "spot-gorge", state.SpotID)

	// Les Gorges does not practice kayak, so the selection is dropped.
	state = wizard.Apply(state, wizard.SelectActivity{ActivityID: "act-kayak"})
	assert.Empty(t, state.SpotID)
}

func TestApply_SpotSurvivesActivityChangeWhenStillPracticed(t *testing.T) {
	state := wizard.NewState(testCatalog())

	state = wizard.Apply(state, wizard.SelectActivity{ActivityID: "act-kayak"})
	state = wizard.Apply(state, wizard.SelectSpot{SpotID: "spot-river"})

	state = wizard.Apply(state, wizard.SelectActivity{ActivityID: "act-canyon"})
	assert.Equal(t, "spot-river", state.SpotID)
}

func TestApply_EndTimeDerivation(t *testing.T) {
	state := wizard.NewState(testCatalog())

	state = wizard.Apply(state, wizard.SelectActivity{ActivityID: "act-kayak"})
	state = wizard.Apply(state, wizard.SelectSessionType{SessionType: constant.SessionTypeHalfDay})
	state = wizard.Apply(state, wizard.SetStartTime{StartTime: "10:00"})
	assert.Equal(t, "14:00", state.EndTime)

	state = wizard.Apply(state, wizard.SelectSessionType{SessionType: constant.SessionTypeFullDay})
	assert.Equal(t, "18:00", state.EndTime)

	// Canyoning's half day is 3h30.
	state = wizard.Apply(state, wizard.SelectActivity{ActivityID: "act-canyon"})
	assert.Equal(t, "13:30", state.EndTime)
}

func TestApply_ParticipantListNeverShrinksBelowOne(t *testing.T) {
	state := wizard.NewState(testCatalog())

	state = wizard.Apply(state, wizard.AddParticipant{})
	assert.Len(t, state.Participants, 2)

	state = wizard.Apply(state, wizard.RemoveParticipant{Index: 1})
	assert.Len(t, state.Participants, 1)

	state = wizard.Apply(state, wizard.RemoveParticipant{Index: 0})
	assert.Len(t, state.Participants, 1)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	state := wizard.NewState(testCatalog())
	state = wizard.Apply(state, wizard.UpdateParticipant{Index: 0, Participant: wizard.Participant{Height: 170, Weight: 70}})

	_ = wizard.Apply(state, wizard.UpdateParticipant{Index: 0, Participant: wizard.Participant{Height: 150, Weight: 50}})
	_ = wizard.Apply(state, wizard.AddParticipant{})

	assert.Len(t, state.Participants, 1)
	assert.Equal(t, 170, state.Participants[0].Height)
}

func TestAvailableSpots(t *testing.T) {
	state := wizard.NewState(testCatalog())
	state = wizard.Apply(state, wizard.SelectActivity{ActivityID: "act-kayak"})

	spots := state.AvailableSpots()

	assert.Len(t, spots, 1)
	assert.Equal(t, "spot-river", spots[0].ID)
}

func TestBuild(t *testing.T) {
	now := timezone.Now()
	tomorrow := now.AddDate(0, 0, 1).Format(constant.DateFormat)

	state := wizard.NewState(testCatalog())
	state = wizard.Apply(state, validIdentity())
	state = wizard.Apply(state, wizard.SelectActivity{ActivityID: "act-kayak"})
	state = wizard.Apply(state, wizard.SelectSessionType{SessionType: constant.SessionTypeHalfDay})
	state = wizard.Apply(state, wizard.SelectSpot{SpotID: "spot-river"})
	state = wizard.Apply(state, wizard.SetDate{Date: tomorrow})
	state = wizard.Apply(state, wizard.SetStartTime{StartTime: "10:00"})
	state = wizard.Apply(state, wizard.UpdateParticipant{Index: 0, Participant: wizard.Participant{Height: 175, Weight: 70}})
	state = wizard.Apply(state, wizard.AddParticipant{})
	state = wizard.Apply(state, wizard.UpdateParticipant{Index: 1, Participant: wizard.Participant{Height: 160, Weight: 55}})
	state = wizard.Apply(state, wizard.SetMessage{Message: "Nous sommes débutants."})

	booking, err := state.Build(now)

	assert.NoError(t, err)
	assert.Equal(t, "Nous sommes débutants.", booking.Message)
	assert.Empty(t, booking.SessionID)

	customer := booking.Customer
	assert.Equal(t, constant.CustomerStatusWaiting, customer.Status)
	assert.Equal(t, constant.ReservationChannelWebsite, customer.Channel)
	assert.Equal(t, constant.TariffStandard, customer.Tariff)
	assert.Equal(t, 2, customer.PeopleCount)
	assert.InDelta(t, 45, customer.UnitPrice, 0.0001)
	assert.InDelta(t, 90, customer.TotalPrice, 0.0001)
	assert.Len(t, customer.Participants, 2)
	assert.False(t, customer.Participants[0].IsReduced)

	session := booking.Session
	assert.NotNil(t, session)
	assert.Equal(t, constant.SessionStatusPending, session.Status)
	assert.Equal(t, tomorrow, session.Date)
	assert.Equal(t, "10:00", session.StartTime)
	assert.Equal(t, "14:00", session.EndTime)
	assert.Equal(t, "act-kayak", session.ActivityID)
	assert.Equal(t, "Kayak", session.ActivityName)
	assert.Equal(t, "spot-river", session.SpotID)
	assert.Equal(t, "La Rivière", session.SpotName)
	assert.Equal(t, 8, session.PlacesMax)
	assert.Equal(t, 2, session.PlacesReserved)
	assert.Equal(t, constant.SessionTypeHalfDay, session.SessionType)
	assert.Equal(t, "4h", session.Duration)
}

func TestBuild_FailsOnIncompleteState(t *testing.T) {
	state := wizard.NewState(testCatalog())
	state = wizard.Apply(state, validIdentity())

	_, err := state.Build(timezone.Now())

	assert.Error(t, err)
}

func TestBuild_FailsWhenParticipantOutOfBounds(t *testing.T) {
	now := timezone.Now()
	tomorrow := now.AddDate(0, 0, 1).Format(constant.DateFormat)

	state := wizard.NewState(testCatalog())
	state = wizard.Apply(state, validIdentity())
	state = wizard.Apply(state, wizard.SelectActivity{ActivityID: "act-kayak"})
	state = wizard.Apply(state, wizard.SelectSessionType{SessionType: constant.SessionTypeHalfDay})
	state = wizard.Apply(state, wizard.SelectSpot{SpotID: "spot-river"})
	state = wizard.Apply(state, wizard.SetDate{Date: tomorrow})
	state = wizard.Apply(state, wizard.SetStartTime{StartTime: "10:00"})
	state = wizard.Apply(state, wizard.UpdateParticipant{Index: 0, Participant: wizard.Participant{Height: 90, Weight: 70}})

	_, err := state.Build(now)

	assert.Error(t, err)
}
