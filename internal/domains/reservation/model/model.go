package model

// Booking is the payload handed to the external booking API, either as a
// request for a brand-new session (Session set) or as a join of an already
// scheduled one (SessionID set). It only ever exists transiently: assembled,
// validated, submitted, discarded.

type Participant struct {
	Height int     `json:"height"`
	Weight int     `json:"weight"`
	Price  float64 `json:"price"`

	// Reduced eligibility is a session-level concept; the flag is always
	// false at creation and the discount applies to the aggregate unit price
	// only.
	IsReduced bool `json:"is_reduced"`
}

type Customer struct {
	CreatedAt string `json:"created_at"`
	Status    string `json:"status"`
	Channel   string `json:"reservation_channel"`

	PeopleCount int    `json:"people_count"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`

	Participants []Participant `json:"participants"`

	Tariff     string  `json:"tariff"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

type SessionRequest struct {
	Status string `json:"status"`

	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	ActivityID   string `json:"activity_id"`
	ActivityName string `json:"activity_name"`
	SpotID       string `json:"spot_id"`
	SpotName     string `json:"spot_name"`

	PlacesMax      int `json:"places_max"`
	PlacesReserved int `json:"places_reserved"`

	SessionType string `json:"type_formule"`
	Duration    string `json:"duration"`
}

type Booking struct {
	ID      string `json:"id"`
	Message string `json:"message,omitempty"`

	Customer Customer `json:"customer"`

	Session   *SessionRequest `json:"session,omitempty"`
	SessionID string          `json:"session_id,omitempty"`
}
