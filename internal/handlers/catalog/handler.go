package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"escapade/infras/otel"
	"escapade/internal/domains/catalog/service"
	"escapade/shared/constant"
	"escapade/transport/http/response"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/activities", handler.GetActivities)
	router.Get("/spots", handler.GetSpots)
	router.Get("/sessions", handler.GetSessions)
}

// GetActivities returns the bookable activities with their formulas, prices
// and participant bounds.
func (handler *Handler) GetActivities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivities")
	defer scope.End()

	activities, err := handler.service.Activities(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get activities")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, activities)
}

// GetSpots returns the practice spots. An `activity_id` query restricts the
// list to spots practicing that activity.
func (handler *Handler) GetSpots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSpots")
	defer scope.End()

	var (
		spots any
		err   error
	)

	if activityID := r.URL.Query().Get("activity_id"); activityID != "" {
		spots, err = handler.service.SpotsForActivity(ctx, activityID)
	} else {
		spots, err = handler.service.Spots(ctx)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get spots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, spots)
}

// GetSessions returns the active sessions open to joining.
func (handler *Handler) GetSessions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSessions")
	defer scope.End()

	sessions, err := handler.service.Sessions(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sessions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, sessions)
}
