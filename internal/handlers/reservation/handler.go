package reservation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"escapade/infras/otel"
	"escapade/internal/domains/reservation/model/dto"
	"escapade/internal/domains/reservation/service"
	"escapade/shared/constant"
	"escapade/shared/validator"
	"escapade/transport/http/response"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Patch("/", handler.JoinSession)
	})
}

// CreateReservation submits a request for a brand-new session and notifies
// the admin.
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate reservation request")

		response.WithError(w, err)

		return
	}

	bookingID, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation submitted " + bookingID)

	response.WithJSON(w, http.StatusCreated, dto.ReservationResponse{
		Message:   "Reservation request submitted successfully",
		BookingID: bookingID,
	})
}

// JoinSession attaches the party to an already scheduled session.
func (handler *Handler) JoinSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".JoinSession")
	defer scope.End()

	req := dto.JoinSessionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate join request")

		response.WithError(w, err)

		return
	}

	bookingID, err := handler.service.Join(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to join session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Session joined " + bookingID)

	response.WithJSON(w, http.StatusOK, dto.ReservationResponse{
		Message:   "Session joined successfully",
		BookingID: bookingID,
	})
}
