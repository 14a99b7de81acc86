//go:build wireinject
// +build wireinject

package di

import (
	"escapade/config"
	"escapade/infras/bookingapi"
	"escapade/infras/captcha"
	"escapade/infras/kafka"
	"escapade/infras/mailer"
	"escapade/infras/otel"
	"escapade/infras/redis"
	"escapade/infras/s3"
	catalogHandler "escapade/internal/handlers/catalog"
	contactHandler "escapade/internal/handlers/contact"
	reservationHandler "escapade/internal/handlers/reservation"
	"escapade/shared/cache"
	"escapade/transport/http"
	"escapade/transport/http/middleware"
	"escapade/transport/http/router"

	catalogRepository "escapade/internal/domains/catalog/repository"
	catalogService "escapade/internal/domains/catalog/service"
	contactService "escapade/internal/domains/contact/service"
	reservationRepository "escapade/internal/domains/reservation/repository"
	reservationService "escapade/internal/domains/reservation/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	bookingapi.New,
	s3.New,
	kafka.New,
	mailer.New,
	captcha.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var contactDomain = wire.NewSet(
	contactService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	reservationDomain,
	contactDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	catalogHandler.New,
	reservationHandler.New,
	contactHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
