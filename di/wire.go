//go:build wireinject
// +build wireinject

package di

import (
	"saapadu/config"
	"saapadu/infras/jwt"
	"saapadu/infras/kafka"
	"saapadu/infras/otel"
	"saapadu/infras/s3"
	"saapadu/internal/events"
	"saapadu/permissions"
	"saapadu/shared/storage"
	"saapadu/transport/http"
	"saapadu/transport/http/middleware"
	"saapadu/transport/http/router"

	analyticsService "saapadu/internal/domains/analytics/service"
	dashboardService "saapadu/internal/domains/dashboard/service"
	donationRepo "saapadu/internal/domains/donation/repository"
	donationService "saapadu/internal/domains/donation/service"
	hotelRepo "saapadu/internal/domains/hotel/repository"
	hotelService "saapadu/internal/domains/hotel/service"
	menuService "saapadu/internal/domains/menu/service"
	orderRepo "saapadu/internal/domains/order/repository"
	orderService "saapadu/internal/domains/order/service"
	promoRepo "saapadu/internal/domains/promo/repository"
	promoService "saapadu/internal/domains/promo/service"
	reviewRepo "saapadu/internal/domains/review/repository"
	reviewService "saapadu/internal/domains/review/service"
	sessionService "saapadu/internal/domains/session/service"
	settingsService "saapadu/internal/domains/settings/service"
	userRepo "saapadu/internal/domains/user/repository"
	userService "saapadu/internal/domains/user/service"

	analyticsHandler "saapadu/internal/handlers/analytics"
	dashboardHandler "saapadu/internal/handlers/dashboard"
	donationHandler "saapadu/internal/handlers/donation"
	hotelHandler "saapadu/internal/handlers/hotel"
	menuHandler "saapadu/internal/handlers/menu"
	orderHandler "saapadu/internal/handlers/order"
	promoHandler "saapadu/internal/handlers/promo"
	reviewHandler "saapadu/internal/handlers/review"
	sessionHandler "saapadu/internal/handlers/session"
	settingsHandler "saapadu/internal/handlers/settings"
	userHandler "saapadu/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	storage.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var eventing = wire.NewSet(
	events.New,
	events.NewForwarder,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var repositories = wire.NewSet(
	hotelRepo.New,
	orderRepo.New,
	donationRepo.New,
	reviewRepo.New,
	promoRepo.New,
	userRepo.New,
	wire.Struct(new(Repositories), "*"),
)

var domains = wire.NewSet(
	hotelService.New,
	menuService.New,
	orderService.New,
	donationService.New,
	reviewService.New,
	promoService.New,
	userService.New,
	analyticsService.New,
	dashboardService.New,
	settingsService.New,
	wire.Bind(new(sessionService.CredentialSource), new(settingsService.Settings)),
	sessionService.NewCredentialAuthenticator,
	sessionService.New,
	wire.Struct(new(Services), "*"),
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	sessionHandler.New,
	hotelHandler.New,
	menuHandler.New,
	orderHandler.New,
	reviewHandler.New,
	promoHandler.New,
	donationHandler.New,
	userHandler.New,
	analyticsHandler.New,
	settingsHandler.New,
	dashboardHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		eventing,
		middlewares,
		repositories,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
