// Package wizard models the multi-step reservation form as a pure reducer:
// Apply(state, event) returns the next state with every derived field
// (session-type constraint, spot filter, end time) recomputed
// deterministically. Nothing here touches the network; submission is the
// service layer's job.
package wizard

import (
	"time"

	catalogModel "escapade/internal/domains/catalog/model"
	"escapade/internal/domains/reservation/model"
	"escapade/internal/domains/reservation/pricing"
	"escapade/shared/constant"
	"escapade/shared/duration"
	"escapade/shared/failure"
	"escapade/shared/timezone"
)

type Step int

const (
	StepClient Step = iota + 1
	StepPlanning
	StepParticipants
	StepMessage
)

type Participant struct {
	Height int
	Weight int
}

// Catalog is the read-only activity/spot snapshot a wizard instance derives
// its dependent fields from.
type Catalog struct {
	Activities []catalogModel.Activity
	Spots      []catalogModel.Spot
}

type State struct {
	Step   Step
	Errors []string

	FirstName string
	LastName  string
	Email     string
	Phone     string

	ActivityID  string
	SpotID      string
	SessionType string
	Date        string
	StartTime   string
	EndTime     string

	Participants []Participant
	Message      string

	catalog Catalog
}

// NewState starts a wizard at step 1 with the minimum one participant entry.
func NewState(catalog Catalog) State {
	return State{
		Step:         StepClient,
		Participants: []Participant{{}},
		catalog:      catalog,
	}
}

type Event interface{ isEvent() }

type SetClientIdentity struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

type SelectActivity struct{ ActivityID string }

type SelectSpot struct{ SpotID string }

type SelectSessionType struct{ SessionType string }

type SetDate struct{ Date string }

type SetStartTime struct{ StartTime string }

type AddParticipant struct{}

type RemoveParticipant struct{ Index int }

type UpdateParticipant struct {
	Index       int
	Participant Participant
}

type SetMessage struct{ Message string }

type Next struct{}

type Back struct{ To Step }

func (SetClientIdentity) isEvent() {}
func (SelectActivity) isEvent()    {}
func (SelectSpot) isEvent()        {}
func (SelectSessionType) isEvent() {}
func (SetDate) isEvent()           {}
func (SetStartTime) isEvent()      {}
func (AddParticipant) isEvent()    {}
func (RemoveParticipant) isEvent() {}
func (UpdateParticipant) isEvent() {}
func (SetMessage) isEvent()        {}
func (Next) isEvent()              {}
func (Back) isEvent()              {}

// Apply is the reducer. It never mutates its input.
func Apply(state State, event Event) State {
	next := state.clone()

	switch ev := event.(type) {
	case SetClientIdentity:
		next.FirstName = ev.FirstName
		next.LastName = ev.LastName
		next.Email = ev.Email
		next.Phone = ev.Phone

	case SelectActivity:
		next.ActivityID = ev.ActivityID

	case SelectSpot:
		next.SpotID = ev.SpotID

	case SelectSessionType:
		next.SessionType = ev.SessionType

	case SetDate:
		next.Date = ev.Date

	case SetStartTime:
		next.StartTime = ev.StartTime

	case AddParticipant:
		next.Participants = append(next.Participants, Participant{})

	case RemoveParticipant:
		// The list never shrinks below one entry.
		if len(next.Participants) > 1 && ev.Index >= 0 && ev.Index < len(next.Participants) {
			next.Participants = append(next.Participants[:ev.Index], next.Participants[ev.Index+1:]...)
		}

	case UpdateParticipant:
		if ev.Index >= 0 && ev.Index < len(next.Participants) {
			next.Participants[ev.Index] = ev.Participant
		}

	case SetMessage:
		next.Message = ev.Message

	case Next:
		if errs := next.StepErrors(next.Step); len(errs) > 0 {
			next.Errors = errs

			return next
		}

		next.Errors = nil
		if next.Step < StepMessage {
			next.Step++
		}

	case Back:
		// Backward navigation is unrestricted and never validates.
		if ev.To >= StepClient && ev.To < next.Step {
			next.Step = ev.To
			next.Errors = nil
		}
	}

	return derive(next)
}

func (s State) clone() State {
	next := s

	next.Participants = make([]Participant, len(s.Participants))
	copy(next.Participants, s.Participants)

	if s.Errors != nil {
		next.Errors = make([]string, len(s.Errors))
		copy(next.Errors, s.Errors)
	}

	return next
}

// derive recomputes every dependent field from the new state: session type is
// constrained to what the activity offers, the spot resets when it stops
// practicing the chosen activity, and the end time follows activity, start
// time and session type.
func derive(s State) State {
	activity, found := s.Activity()
	if !found {
		s.EndTime = constant.Empty

		return s
	}

	if !activity.Offers(s.SessionType) {
		switch {
		case activity.HalfDay:
			s.SessionType = constant.SessionTypeHalfDay
		case activity.FullDay:
			s.SessionType = constant.SessionTypeFullDay
		default:
			s.SessionType = constant.Empty
		}
	}

	if s.SpotID != constant.Empty {
		if spot, ok := s.Spot(); !ok || !spot.Practices(activity.ID) {
			s.SpotID = constant.Empty
		}
	}

	s.EndTime = constant.Empty
	if s.StartTime != constant.Empty && s.SessionType != constant.Empty {
		if end, err := duration.EndTime(s.StartTime, activity.HoursHalfDay, activity.HoursFullDay, s.SessionType); err == nil {
			s.EndTime = end
		}
	}

	return s
}

// Activity resolves the selected activity in the catalog snapshot.
func (s State) Activity() (catalogModel.Activity, bool) {
	for _, activity := range s.catalog.Activities {
		if activity.ID == s.ActivityID {
			return activity, true
		}
	}

	return catalogModel.Activity{}, false
}

// Spot resolves the selected spot in the catalog snapshot.
func (s State) Spot() (catalogModel.Spot, bool) {
	for _, spot := range s.catalog.Spots {
		if spot.ID == s.SpotID {
			return spot, true
		}
	}

	return catalogModel.Spot{}, false
}

// AvailableSpots is exactly the set of spots practicing the chosen activity.
func (s State) AvailableSpots() []catalogModel.Spot {
	spots := make([]catalogModel.Spot, 0, len(s.catalog.Spots))

	for _, spot := range s.catalog.Spots {
		if spot.Practices(s.ActivityID) {
			spots = append(spots, spot)
		}
	}

	return spots
}

// Build assembles the booking payload for a new-session request. It fails
// before any network activity when the selection cannot be resolved or any
// step is still invalid; wizard state is left untouched for correction.
func (s State) Build(now time.Time) (model.Booking, error) {
	for step := StepClient; step <= StepMessage; step++ {
		if errs := s.StepErrors(step); len(errs) > 0 {
			return model.Booking{}, failure.BadRequestFromString(errs[0]) //nolint:wrapcheck
		}
	}

	activity, found := s.Activity()
	if !found {
		return model.Booking{}, failure.BadRequestFromString("selected activity could not be resolved") //nolint:wrapcheck
	}

	spot, found := s.Spot()
	if !found {
		return model.Booking{}, failure.BadRequestFromString("selected spot could not be resolved") //nolint:wrapcheck
	}

	// New-session requests are always priced at the standard tariff; the
	// last-minute reduced window only applies when joining an existing
	// session.
	unitPrice, err := pricing.UnitPrice(activity, s.SessionType, false)
	if err != nil {
		return model.Booking{}, err
	}

	sessionDuration := activity.DurationFullDay
	if s.SessionType == constant.SessionTypeHalfDay {
		sessionDuration = activity.DurationHalfDay
	}

	return model.Booking{
		Message:  s.Message,
		Customer: s.customer(now, unitPrice),
		Session: &model.SessionRequest{
			Status:         constant.SessionStatusPending,
			Date:           s.Date,
			StartTime:      s.StartTime,
			EndTime:        s.EndTime,
			ActivityID:     activity.ID,
			ActivityName:   activity.Name,
			SpotID:         spot.ID,
			SpotName:       spot.Name,
			PlacesMax:      activity.MaxParticipants,
			PlacesReserved: len(s.Participants),
			SessionType:    s.SessionType,
			Duration:       sessionDuration,
		},
	}, nil
}

func (s State) customer(now time.Time, unitPrice float64) model.Customer {
	participants := make([]model.Participant, len(s.Participants))
	for i, participant := range s.Participants {
		participants[i] = model.Participant{
			Height:    participant.Height,
			Weight:    participant.Weight,
			Price:     unitPrice,
			IsReduced: false,
		}
	}

	return model.Customer{
		CreatedAt:    timezone.ToAppTime(now).Format(time.RFC3339),
		Status:       constant.CustomerStatusWaiting,
		Channel:      constant.ReservationChannelWebsite,
		PeopleCount:  len(participants),
		FirstName:    s.FirstName,
		LastName:     s.LastName,
		Email:        s.Email,
		Phone:        s.Phone,
		Participants: participants,
		Tariff:       constant.TariffStandard,
		UnitPrice:    unitPrice,
		TotalPrice:   pricing.Total(unitPrice, len(participants)),
	}
}
