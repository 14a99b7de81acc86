package wizard

import (
	"escapade/shared/validator"
)

// Per-step field groups. Forward navigation from step N validates only the
// fields of step N, and every failing rule is surfaced at once.

type clientStep struct {
	FirstName string `validate:"required,min=2,max=50,humanname"`
	LastName  string `validate:"required,min=2,max=50,humanname"`
	Email     string `validate:"required,email,max=100"`
	Phone     string `validate:"required,frphone"`
}

type planningStep struct {
	ActivityID  string `validate:"required"`
	SpotID      string `validate:"required"`
	SessionType string `validate:"required,oneof=half_day full_day"`
	Date        string `validate:"required,futuredate"`
	StartTime   string `validate:"required"`
}

type participantEntry struct {
	Height int `validate:"required,gte=100,lte=250"`
	Weight int `validate:"required,gte=20,lte=200"`
}

type participantsStep struct {
	Participants []participantEntry `validate:"required,min=1,dive"`
}

type messageStep struct {
	Message string `validate:"omitempty,max=1000"`
}

// StepErrors validates the fields belonging to one step and returns every
// failing rule's message, or nil when the step is complete.
func (s State) StepErrors(step Step) []string {
	switch step {
	case StepClient:
		payload := clientStep{
			FirstName: s.FirstName,
			LastName:  s.LastName,
			Email:     s.Email,
			Phone:     s.Phone,
		}

		return validator.ValidateStructAll(&payload)

	case StepPlanning:
		payload := planningStep{
			ActivityID:  s.ActivityID,
			SpotID:      s.SpotID,
			SessionType: s.SessionType,
			Date:        s.Date,
			StartTime:   s.StartTime,
		}

		return validator.ValidateStructAll(&payload)

	case StepParticipants:
		payload := participantsStep{
			Participants: make([]participantEntry, len(s.Participants)),
		}
		for i, participant := range s.Participants {
			payload.Participants[i] = participantEntry(participant)
		}

		return validator.ValidateStructAll(&payload)

	case StepMessage:
		payload := messageStep{Message: s.Message}

		return validator.ValidateStructAll(&payload)

	default:
		return nil
	}
}
