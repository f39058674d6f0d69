//go:build wireinject
// +build wireinject

package di

import (
	"conectapro/config"
	"conectapro/infras/jwt"
	"conectapro/infras/kafka"
	"conectapro/infras/otel"
	"conectapro/infras/postgres"
	"conectapro/infras/redis"
	"conectapro/infras/s3"
	"conectapro/internal/jobs/completion"
	"conectapro/permissions"
	"conectapro/shared/cache"
	"conectapro/shared/event"
	"conectapro/shared/metrics"
	"conectapro/transport/http"
	"conectapro/transport/http/middleware"
	"conectapro/transport/http/router"

	"github.com/google/wire"

	authService "conectapro/internal/domains/auth/service"
	catalogRepository "conectapro/internal/domains/catalog/repository"
	catalogService "conectapro/internal/domains/catalog/service"
	homeService "conectapro/internal/domains/home/service"
	locationRepository "conectapro/internal/domains/location/repository"
	locationService "conectapro/internal/domains/location/service"
	paymentMethodRepository "conectapro/internal/domains/paymentmethod/repository"
	paymentMethodService "conectapro/internal/domains/paymentmethod/service"
	reviewRepository "conectapro/internal/domains/review/repository"
	reviewService "conectapro/internal/domains/review/service"
	serviceRequestRepository "conectapro/internal/domains/servicerequest/repository"
	serviceRequestService "conectapro/internal/domains/servicerequest/service"
	userRepository "conectapro/internal/domains/user/repository"
	userService "conectapro/internal/domains/user/service"

	authHandler "conectapro/internal/handlers/auth"
	catalogHandler "conectapro/internal/handlers/catalog"
	homeHandler "conectapro/internal/handlers/home"
	locationHandler "conectapro/internal/handlers/location"
	paymentMethodHandler "conectapro/internal/handlers/paymentmethod"
	providerHandler "conectapro/internal/handlers/provider"
	reviewHandler "conectapro/internal/handlers/review"
	serviceRequestHandler "conectapro/internal/handlers/servicerequest"
	systemHandler "conectapro/internal/handlers/system"
	userHandler "conectapro/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	event.NewPublisher,
	metrics.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.NewCategory,
	catalogRepository.NewService,
	catalogService.NewCatalog,
	catalogService.NewProvider,
)

var clientDomain = wire.NewSet(
	locationRepository.New,
	locationService.New,
	paymentMethodRepository.New,
	paymentMethodService.New,
	homeService.New,
)

var serviceRequestDomain = wire.NewSet(
	serviceRequestRepository.New,
	serviceRequestService.New,
	reviewRepository.New,
	reviewService.New,
)

var domains = wire.NewSet(
	userDomain,
	catalogDomain,
	clientDomain,
	serviceRequestDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	homeHandler.New,
	locationHandler.New,
	paymentMethodHandler.New,
	catalogHandler.New,
	providerHandler.New,
	serviceRequestHandler.New,
	reviewHandler.New,
	systemHandler.New,
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

func InitializeCompletionJob() *completion.Job {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		kafka.New,
		event.NewPublisher,
		metrics.New,
		catalogRepository.NewService,
		locationRepository.New,
		paymentMethodRepository.New,
		serviceRequestRepository.New,
		serviceRequestService.New,
		completion.New,
	)

	return &completion.Job{}
}
