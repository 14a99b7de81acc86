package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"escapade/config"
	"escapade/infras/kafka"
	"escapade/infras/mailer"
	"escapade/infras/otel"
	catalogService "escapade/internal/domains/catalog/service"
	"escapade/internal/domains/reservation/model"
	"escapade/internal/domains/reservation/model/dto"
	"escapade/internal/domains/reservation/repository"
	"escapade/internal/domains/reservation/wizard"
	"escapade/shared/constant"
	"escapade/shared/failure"
	"escapade/shared/timezone"
)

const (
	flowCreate = "create"
	flowJoin   = "join"
)

// Reservation runs the two-phase booking submission: the primary call against
// the external booking API decides the user-visible outcome; the follow-up
// notifications (admin email, booking event) are best-effort and only ever
// logged.
type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (bookingID string, err error)
	Join(ctx context.Context, req dto.JoinSessionRequest) (bookingID string, err error)
}

type serviceImpl struct {
	repo    repository.Reservation
	catalog catalogService.Catalog
	cfg     *config.Config
	mailer  mailer.Mailer
	events  kafka.Client
	otel    otel.Otel
}

func New(repo repository.Reservation, catalog catalogService.Catalog, cfg *config.Config, mail mailer.Mailer, events kafka.Client, ot otel.Otel) Reservation {
	return &serviceImpl{
		repo:    repo,
		catalog: catalog,
		cfg:     cfg,
		mailer:  mail,
		events:  events,
		otel:    ot,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (bookingID string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	activities, err := s.catalog.Activities(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load activities for reservation")

		return constant.Empty, fmt.Errorf("failed to load activities: %w", err)
	}

	spots, err := s.catalog.Spots(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load spots for reservation")

		return constant.Empty, fmt.Errorf("failed to load spots: %w", err)
	}

	state := req.Replay(wizard.Catalog{Activities: activities, Spots: spots})

	booking, err := state.Build(timezone.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to assemble booking")

		return constant.Empty, err
	}

	booking.ID = uuid.NewString()

	if err = s.repo.Create(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return constant.Empty, fmt.Errorf("failed to create booking: %w", err)
	}

	s.afterSubmit(ctx, booking, flowCreate)

	return booking.ID, nil
}

func (s *serviceImpl) Join(ctx context.Context, req dto.JoinSessionRequest) (bookingID string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Join")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, err := s.catalog.Session(ctx, req.SessionID)
	if err != nil {
		log.Error().Err(err).Str("session", req.SessionID).Msg("failed to resolve session to join")

		return constant.Empty, err
	}

	if len(req.Participants) > session.Remaining() {
		return constant.Empty, failure.Conflict("the session does not have enough places left") //nolint:wrapcheck
	}

	state := req.ReplayQuick(wizard.NewQuickState(session))

	booking, err := state.Build(timezone.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to assemble join booking")

		return constant.Empty, err
	}

	booking.ID = uuid.NewString()

	if err = s.repo.Join(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to join session")

		return constant.Empty, fmt.Errorf("failed to join session: %w", err)
	}

	s.afterSubmit(ctx, booking, flowJoin)

	return booking.ID, nil
}

// afterSubmit runs once the primary call has succeeded: it invalidates the
// cached session list so capacity numbers are refetched, then fires the
// best-effort notifications. Nothing in here can change the outcome already
// reported to the caller.
func (s *serviceImpl) afterSubmit(ctx context.Context, booking model.Booking, flow string) {
	c := context.WithoutCancel(ctx)

	s.catalog.InvalidateSessions(c)

	go func() {
		if err := s.mailer.Send(c, s.adminEmail(booking, flow)); err != nil {
			log.Warn().Err(err).Str("booking", booking.ID).Msg("booking notification email failed")
		}

		event := kafka.Message{
			Key: booking.ID,
			Value: bookingEvent{
				Type:       "booking.submitted",
				BookingID:  booking.ID,
				Flow:       flow,
				People:     booking.Customer.PeopleCount,
				TotalPrice: booking.Customer.TotalPrice,
				At:         booking.Customer.CreatedAt,
			},
		}

		if err := s.events.SendMessages(c, s.cfg.Kafka.Topics.BookingEvents, event); err != nil {
			log.Warn().Err(err).Str("booking", booking.ID).Msg("booking event publish failed")
		}
	}()
}

type bookingEvent struct {
	Type       string  `json:"type"`
	BookingID  string  `json:"booking_id"`
	Flow       string  `json:"flow"`
	People     int     `json:"people"`
	TotalPrice float64 `json:"total_price"`
	At         string  `json:"at"`
}

func (s *serviceImpl) adminEmail(booking model.Booking, flow string) mailer.Email {
	customer := booking.Customer

	switch flow {
	case flowJoin:
		return mailer.Email{
			To:      s.cfg.External.SMTP.AdminEmail,
			Subject: fmt.Sprintf("Nouvelle inscription de %s %s", customer.FirstName, customer.LastName),
			HTML: fmt.Sprintf(
				"<p>%s %s (%s, %s) rejoint une session existante avec %d participant(s) pour un total de %.2f&nbsp;€.</p>"+
					"<p><a href=\"%s/sessions/%s\">Voir la session dans le back-office</a></p>",
				customer.FirstName, customer.LastName, customer.Email, customer.Phone,
				customer.PeopleCount, customer.TotalPrice,
				s.cfg.External.BackOffice.URL, booking.SessionID,
			),
		}
	default:
		session := booking.Session

		return mailer.Email{
			To:      s.cfg.External.SMTP.AdminEmail,
			Subject: fmt.Sprintf("Nouvelle demande de réservation de %s %s", customer.FirstName, customer.LastName),
			HTML: fmt.Sprintf(
				"<p>%s %s (%s, %s) demande une session %s à %s le %s de %s à %s, "+
					"%d participant(s), total %.2f&nbsp;€.</p>",
				customer.FirstName, customer.LastName, customer.Email, customer.Phone,
				session.ActivityName, session.SpotName, session.Date,
				session.StartTime, session.EndTime,
				customer.PeopleCount, customer.TotalPrice,
			),
		}
	}
}
