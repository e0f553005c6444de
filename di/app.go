package di

import (
	"context"
	"saapadu/config"
	"saapadu/infras/otel"
	analyticsService "saapadu/internal/domains/analytics/service"
	dashboardService "saapadu/internal/domains/dashboard/service"
	donationRepo "saapadu/internal/domains/donation/repository"
	hotelRepo "saapadu/internal/domains/hotel/repository"
	hotelService "saapadu/internal/domains/hotel/service"
	orderRepo "saapadu/internal/domains/order/repository"
	promoRepo "saapadu/internal/domains/promo/repository"
	promoService "saapadu/internal/domains/promo/service"
	reviewRepo "saapadu/internal/domains/review/repository"
	reviewService "saapadu/internal/domains/review/service"
	userRepo "saapadu/internal/domains/user/repository"
	userService "saapadu/internal/domains/user/service"
	"saapadu/internal/events"
	"saapadu/shared/storage"
	"saapadu/transport/http"

	"github.com/rs/zerolog/log"
)

type Repositories struct {
	Hotels    hotelRepo.Hotel
	Orders    orderRepo.Order
	Donations donationRepo.Donation
	Reviews   reviewRepo.Review
	Promos    promoRepo.PromoCode
	Users     userRepo.User
}

// Load reads every collection from the store.
func (r Repositories) Load(ctx context.Context) {
	r.Hotels.Load(ctx)
	r.Orders.Load(ctx)
	r.Donations.Load(ctx)
	r.Reviews.Load(ctx)
	r.Promos.Load(ctx)
	r.Users.Load(ctx)
}

type Services struct {
	Hotel     hotelService.Hotel
	Review    reviewService.Review
	Promo     promoService.PromoCode
	User      userService.User
	Analytics analyticsService.Analytics
	Dashboard dashboardService.Dashboard
}

type App struct {
	Config       *config.Config
	Otel         otel.Otel
	Store        storage.Store
	Bus          events.Bus
	Forwarder    *events.Forwarder
	Repositories Repositories
	Services     Services
	HTTP         *http.HTTP
}

// Start loads state and starts the background work. Goroutines stop when ctx is done.
func (a *App) Start(ctx context.Context) {
	a.Repositories.Load(ctx)
	a.Services.Analytics.Refresh(ctx)

	stop := a.Services.Analytics.Warmup(ctx)
	context.AfterFunc(ctx, func() { stop() })

	go func() {
		if err := a.Services.User.Watch(ctx); err != nil {
			log.Warn().Err(err).Msg("user watcher stopped")
		}
	}()

	if a.Config.Kafka.Enable {
		a.Forwarder.Register(a.Bus)
		a.Bus.Subscribe(events.TopicOrdersChanged, func(ctx context.Context, _ events.Event) {
			a.Repositories.Orders.Reload(ctx)
		})

		go a.Forwarder.Listen(ctx, a.Bus)
	}
}

// Shutdown waits for pending change handlers, then closes kafka writers and flushes traces.
func (a *App) Shutdown(ctx context.Context) {
	a.Bus.Wait()

	if err := a.Forwarder.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close kafka writers")
	}

	if err := a.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to shut down tracer provider")
	}
}
