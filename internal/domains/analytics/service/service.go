package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"sync"
	"time"

	"saapadu/config"
	"saapadu/infras/otel"
	"saapadu/internal/domains/analytics/derive"
	donationRepo "saapadu/internal/domains/donation/repository"
	hotelRepo "saapadu/internal/domains/hotel/repository"
	orderRepo "saapadu/internal/domains/order/repository"
	"saapadu/shared/constant"
	"saapadu/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Analytics interface {
	// Views returns the latest snapshot. Callers must not modify it.
	Views(ctx context.Context) derive.Views
	Refresh(ctx context.Context) derive.Views
	// Warmup schedules one extra refresh after the configured delay.
	Warmup(ctx context.Context) (stop func() bool)
}

type serviceImpl struct {
	hotels    hotelRepo.Hotel
	orders    orderRepo.Order
	donations donationRepo.Donation
	cfg       *config.Config
	otel      otel.Otel

	mu    sync.RWMutex
	views derive.Views
}

// New subscribes to every collection the views derive from, so a mutation returns only
// after the views reflect it.
func New(hotels hotelRepo.Hotel, orders orderRepo.Order, donations donationRepo.Donation, cfg *config.Config, otel otel.Otel) Analytics {
	svc := &serviceImpl{
		hotels:    hotels,
		orders:    orders,
		donations: donations,
		cfg:       cfg,
		otel:      otel,
	}

	refresh := func(ctx context.Context) {
		svc.Refresh(ctx)
	}

	hotels.OnChange(refresh)
	orders.OnChange(refresh)
	donations.OnChange(refresh)

	svc.Refresh(context.Background())

	return svc
}

func (s *serviceImpl) Views(ctx context.Context) derive.Views {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Views")
	defer scope.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.views
}

func (s *serviceImpl) Refresh(ctx context.Context) derive.Views {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refresh")
	defer scope.End()

	// Hold the lock while reading the sources so two refreshes cannot publish out of order.
	s.mu.Lock()
	defer s.mu.Unlock()

	s.views = derive.Compute(derive.Input{
		Hotels:    s.hotels.All(),
		Orders:    s.orders.All(),
		Donations: s.donations.All(),
		Now:       timezone.Now(),
		Policy:    s.policy(),
	})

	scope.SetAttributes(map[string]any{
		"analytics.hotels":     s.views.Summary.TotalHotels,
		"analytics.customers":  s.views.Summary.TotalCustomers,
		"analytics.menu_items": s.views.Summary.TotalMenuItems,
	})

	return s.views
}

func (s *serviceImpl) Warmup(ctx context.Context) (stop func() bool) {
	delay := time.Duration(s.cfg.App.Analytics.WarmupMillis) * time.Millisecond
	detached := context.WithoutCancel(ctx)

	timer := time.AfterFunc(delay, func() {
		views := s.Refresh(detached)

		log.Debug().
			Int("hotels", views.Summary.TotalHotels).
			Int("orders", views.OrderStats.Total).
			Msg("analytics warm-up refresh done")
	})

	return timer.Stop
}

func (s *serviceImpl) policy() derive.JoinDatePolicy {
	if derive.JoinDatePolicy(s.cfg.App.Analytics.JoinDatePolicy) == derive.JoinDateEarliest {
		return derive.JoinDateEarliest
	}

	return derive.JoinDateFirstSeen
}
