package dto

import (
	"escapade/internal/domains/reservation/wizard"
)

type ParticipantPayload struct {
	Height int `json:"height" validate:"required,gte=100,lte=250"`
	Weight int `json:"weight" validate:"required,gte=20,lte=200"`
}

// CreateReservationRequest carries the full set of wizard values for a
// new-session booking request. The service replays it through the wizard
// reducer, so dependent fields (session type, spot, end time) are re-derived
// server-side rather than trusted from the client.
type CreateReservationRequest struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=50,humanname"`
	LastName  string `json:"last_name"  validate:"required,min=2,max=50,humanname"`
	Email     string `json:"email"      validate:"required,email,max=100"`
	Phone     string `json:"phone"      validate:"required,frphone"`

	ActivityID  string `json:"activity_id"  validate:"required"`
	SpotID      string `json:"spot_id"      validate:"required"`
	SessionType string `json:"session_type" validate:"required,oneof=half_day full_day"`
	Date        string `json:"date"         validate:"required,futuredate"`
	StartTime   string `json:"start_time"   validate:"required"`

	Participants []ParticipantPayload `json:"participants" validate:"required,min=1,dive"`

	Message string `json:"message" validate:"omitempty,max=1000"`
}

// Replay walks the request through the wizard reducer step by step and
// returns the resulting state.
func (r *CreateReservationRequest) Replay(catalog wizard.Catalog) wizard.State {
	state := wizard.NewState(catalog)

	state = wizard.Apply(state, wizard.SetClientIdentity{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
	})

	state = wizard.Apply(state, wizard.SelectActivity{ActivityID: r.ActivityID})
	state = wizard.Apply(state, wizard.SelectSessionType{SessionType: r.SessionType})
	state = wizard.Apply(state, wizard.SelectSpot{SpotID: r.SpotID})
	state = wizard.Apply(state, wizard.SetDate{Date: r.Date})
	state = wizard.Apply(state, wizard.SetStartTime{StartTime: r.StartTime})

	for i, participant := range r.Participants {
		if i > 0 {
			state = wizard.Apply(state, wizard.AddParticipant{})
		}

		state = wizard.Apply(state, wizard.UpdateParticipant{
			Index: i,
			Participant: wizard.Participant{
				Height: participant.Height,
				Weight: participant.Weight,
			},
		})
	}

	return wizard.Apply(state, wizard.SetMessage{Message: r.Message})
}

// JoinSessionRequest carries the quick-join values for an already scheduled
// session.
type JoinSessionRequest struct {
	SessionID string `json:"session_id" validate:"required"`

	FirstName string `json:"first_name" validate:"required,min=2,max=50,humanname"`
	LastName  string `json:"last_name"  validate:"required,min=2,max=50,humanname"`
	Email     string `json:"email"      validate:"required,email,max=100"`
	Phone     string `json:"phone"      validate:"required,frphone"`

	Participants []ParticipantPayload `json:"participants" validate:"required,min=1,dive"`

	Message string `json:"message" validate:"omitempty,max=1000"`
}

// ReplayQuick walks the request through the quick-join reducer bound to its
// session.
func (r *JoinSessionRequest) ReplayQuick(state wizard.QuickState) wizard.QuickState {
	state = wizard.ApplyQuick(state, wizard.SetClientIdentity{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
	})

	for i, participant := range r.Participants {
		if i > 0 {
			state = wizard.ApplyQuick(state, wizard.AddParticipant{})
		}

		state = wizard.ApplyQuick(state, wizard.UpdateParticipant{
			Index: i,
			Participant: wizard.Participant{
				Height: participant.Height,
				Weight: participant.Weight,
			},
		})
	}

	return wizard.ApplyQuick(state, wizard.SetMessage{Message: r.Message})
}

type ReservationResponse struct {
	Message   string `json:"message"`
	BookingID string `json:"booking_id"`
}
