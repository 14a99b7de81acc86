package router

import (
	"github.com/go-chi/chi/v5"

	"escapade/internal/handlers/catalog"
	"escapade/internal/handlers/contact"
	"escapade/internal/handlers/reservation"
)

type DomainHandlers struct {
	Catalog     catalog.Handler
	Reservation reservation.Handler
	Contact     contact.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
