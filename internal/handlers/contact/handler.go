package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"escapade/infras/otel"
	"escapade/internal/domains/contact/model/dto"
	"escapade/internal/domains/contact/service"
	"escapade/shared/constant"
	"escapade/shared/validator"
	"escapade/transport/http/response"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/contact", handler.SendMessage)
}

// SendMessage validates the captcha token and forwards the visitor's message.
func (handler *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendMessage")
	defer scope.End()

	req := dto.ContactRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate contact request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Send(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send contact message")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Message sent successfully")
}
