package wizard

import (
	"time"

	catalogModel "escapade/internal/domains/catalog/model"
	"escapade/internal/domains/reservation/model"
	"escapade/internal/domains/reservation/pricing"
	"escapade/shared/constant"
	"escapade/shared/failure"
	"escapade/shared/timezone"
)

// Quick-join is the three-step variant bound to an already scheduled session:
// activity, spot, date and times are fixed by the session, leaving client
// identity, participants and the optional message.

type QuickStep int

const (
	QuickStepClient QuickStep = iota + 1
	QuickStepParticipants
	QuickStepMessage
)

type QuickState struct {
	Step   QuickStep
	Errors []string

	FirstName string
	LastName  string
	Email     string
	Phone     string

	Participants []Participant
	Message      string

	session catalogModel.Session
}

func NewQuickState(session catalogModel.Session) QuickState {
	return QuickState{
		Step:         QuickStepClient,
		Participants: []Participant{{}},
		session:      session,
	}
}

// Session is the fixed session this wizard joins.
func (s QuickState) Session() catalogModel.Session {
	return s.session
}

// CanAddParticipant reports whether the session still has room for one more
// entry beyond the current list.
func (s QuickState) CanAddParticipant() bool {
	return len(s.Participants) < s.session.Remaining()
}

// ApplyQuick is the reducer for the quick-join flow. Planning events have no
// meaning here; adding a participant beyond the session's remaining capacity
// is refused.
func ApplyQuick(state QuickState, event Event) QuickState {
	next := state.cloneQuick()

	switch ev := event.(type) {
	case SetClientIdentity:
		next.FirstName = ev.FirstName
		next.LastName = ev.LastName
		next.Email = ev.Email
		next.Phone = ev.Phone

	case AddParticipant:
		if next.CanAddParticipant() {
			next.Participants = append(next.Participants, Participant{})
		}

	case RemoveParticipant:
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
		if next.Step < QuickStepMessage {
			next.Step++
		}

	case Back:
		to := QuickStep(ev.To)
		if to >= QuickStepClient && to < next.Step {
			next.Step = to
			next.Errors = nil
		}
	}

	return next
}

func (s QuickState) cloneQuick() QuickState {
	next := s

	next.Participants = make([]Participant, len(s.Participants))
	copy(next.Participants, s.Participants)

	if s.Errors != nil {
		next.Errors = make([]string, len(s.Errors))
		copy(next.Errors, s.Errors)
	}

	return next
}

// StepErrors mirrors State.StepErrors for the three quick-join steps.
func (s QuickState) StepErrors(step QuickStep) []string {
	switch step {
	case QuickStepClient:
		state := State{
			FirstName: s.FirstName,
			LastName:  s.LastName,
			Email:     s.Email,
			Phone:     s.Phone,
		}

		return state.StepErrors(StepClient)

	case QuickStepParticipants:
		state := State{Participants: s.Participants}

		return state.StepErrors(StepParticipants)

	case QuickStepMessage:
		state := State{Message: s.Message}

		return state.StepErrors(StepMessage)

	default:
		return nil
	}
}

// Build assembles the join payload against the fixed session. Pricing is
// keyed off the session's type and date: sessions starting within the
// last-minute window get the reduced tariff on the aggregate unit price.
func (s QuickState) Build(now time.Time) (model.Booking, error) {
	for step := QuickStepClient; step <= QuickStepMessage; step++ {
		if errs := s.StepErrors(step); len(errs) > 0 {
			return model.Booking{}, failure.BadRequestFromString(errs[0]) //nolint:wrapcheck
		}
	}

	if s.session.ID == constant.Empty {
		return model.Booking{}, failure.BadRequestFromString("session could not be resolved") //nolint:wrapcheck
	}

	if len(s.Participants) > s.session.Remaining() {
		return model.Booking{}, failure.Conflict("the session does not have enough places left") //nolint:wrapcheck
	}

	reduced := pricing.IsReduced(s.session.Date, now)

	unitPrice, err := pricing.UnitPrice(s.session.Activity, s.session.SessionType, reduced)
	if err != nil {
		return model.Booking{}, err
	}

	participants := make([]model.Participant, len(s.Participants))
	for i, participant := range s.Participants {
		participants[i] = model.Participant{
			Height:    participant.Height,
			Weight:    participant.Weight,
			Price:     unitPrice,
			IsReduced: false,
		}
	}

	return model.Booking{
		Message:   s.Message,
		SessionID: s.session.ID,
		Customer: model.Customer{
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
		},
	}, nil
}
