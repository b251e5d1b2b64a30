//go:build wireinject
// +build wireinject

package di

import (
	"workbrew/config"
	"workbrew/infras/kafka"
	"workbrew/infras/otel"
	"workbrew/infras/postgres"
	"workbrew/infras/random"
	"workbrew/infras/redis"
	"workbrew/infras/weather"
	"workbrew/shared/cache"
	"workbrew/transport/http"
	"workbrew/transport/http/middleware"
	"workbrew/transport/http/router"

	bookingRepository "workbrew/internal/domains/booking/repository"
	bookingService "workbrew/internal/domains/booking/service"
	bookmarkRepository "workbrew/internal/domains/bookmark/repository"
	bookmarkService "workbrew/internal/domains/bookmark/service"
	catalogRepository "workbrew/internal/domains/catalog/repository"
	catalogService "workbrew/internal/domains/catalog/service"
	recommendationService "workbrew/internal/domains/recommendation/service"
	statusService "workbrew/internal/domains/status/service"

	bookingHandler "workbrew/internal/handlers/booking"
	bookmarkHandler "workbrew/internal/handlers/bookmark"
	catalogHandler "workbrew/internal/handlers/catalog"
	recommendationHandler "workbrew/internal/handlers/recommendation"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	random.New,
	weather.NewMock,
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

var recommendationDomain = wire.NewSet(
	recommendationService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.NewSimulatedConfirmer,
	bookingService.New,
)

var bookmarkDomain = wire.NewSet(
	bookmarkRepository.New,
	bookmarkService.New,
)

var statusDomain = wire.NewSet(
	statusService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	recommendationDomain,
	bookingDomain,
	bookmarkDomain,
	statusDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	catalogHandler.New,
	recommendationHandler.New,
	bookingHandler.New,
	bookmarkHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
