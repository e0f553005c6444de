package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"saapadu/infras/otel"
	analyticsService "saapadu/internal/domains/analytics/service"
	"saapadu/internal/domains/dashboard/model/dto"
	donationService "saapadu/internal/domains/donation/service"
	hotelService "saapadu/internal/domains/hotel/service"
	menuService "saapadu/internal/domains/menu/service"
	orderDto "saapadu/internal/domains/order/model/dto"
	orderService "saapadu/internal/domains/order/service"
	promoService "saapadu/internal/domains/promo/service"
	reviewService "saapadu/internal/domains/review/service"
	userService "saapadu/internal/domains/user/service"
	"saapadu/internal/view"
	"saapadu/shared/constant"
	"saapadu/shared/failure"
	"saapadu/shared/validator"

	"github.com/rs/zerolog/log"
)

// Dashboard builds the tables shown on the admin dashboard.
type Dashboard interface {
	Panel(ctx context.Context, query dto.PanelQuery) (view.Table, error)
}

type serviceImpl struct {
	hotels    hotelService.Hotel
	menu      menuService.Menu
	orders    orderService.Order
	donations donationService.Donation
	reviews   reviewService.Review
	promos    promoService.PromoCode
	users     userService.User
	analytics analyticsService.Analytics
	otel      otel.Otel
}

func New(
	hotels hotelService.Hotel,
	menu menuService.Menu,
	orders orderService.Order,
	donations donationService.Donation,
	reviews reviewService.Review,
	promos promoService.PromoCode,
	users userService.User,
	analytics analyticsService.Analytics,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		hotels:    hotels,
		menu:      menu,
		orders:    orders,
		donations: donations,
		reviews:   reviews,
		promos:    promos,
		users:     users,
		analytics: analytics,
		otel:      otel,
	}
}

func (s *serviceImpl) Panel(ctx context.Context, query dto.PanelQuery) (table view.Table, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Panel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&query); err != nil {
		return table, err
	}

	table, err = s.build(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("panel", query.Panel).Msg("failed to build panel")

		return table, fmt.Errorf("failed to build panel %s: %w", query.Panel, err)
	}

	return table, nil
}

func (s *serviceImpl) build(ctx context.Context, query dto.PanelQuery) (view.Table, error) {
	switch query.Panel {
	case view.PanelHotels:
		res, err := s.hotels.GetAll(ctx)
		return view.Hotels(res.Hotels), err
	case view.PanelMenu:
		res, err := s.menu.GetAll(ctx, query.MenuFilter())
		return view.Menu(res.Items), err
	case view.PanelOrders:
		res, err := s.orders.GetAll(ctx, query.OrderFilter())
		return view.Orders(res.Orders), err
	case view.PanelDonations:
		res, err := s.donations.GetAll(ctx)
		return view.Donations(res.Donations), err
	case view.PanelReviews:
		res, err := s.reviews.GetAll(ctx, query.ReviewFilter())
		return view.Reviews(res.Reviews), err
	case view.PanelPromos:
		res, err := s.promos.GetAll(ctx)
		return view.Promos(res.PromoCodes), err
	case view.PanelUsers:
		res, err := s.users.GetAll(ctx)
		return view.Users(res.Users), err
	}

	views := s.analytics.Views(ctx)

	switch query.Panel {
	case view.PanelCustomers:
		return view.Customers(views.Customers), nil
	case view.PanelRecentOrders:
		var recent orderDto.GetOrdersResponse
		recent.FromModels(views.RecentOrders)

		return view.RecentOrders(recent.Orders), nil
	case view.PanelTopHotels:
		return view.TopHotels(views.TopHotels), nil
	case view.PanelPerformance:
		return view.Performance(views.Performance), nil
	case view.PanelOrderStats:
		return view.OrderStats(views.OrderStats), nil
	case view.PanelPopularItems:
		return view.PopularItems(views.Popular), nil
	case view.PanelRevenueBreakdown:
		return view.RevenueBreakdown(views.RevenueByHotel), nil
	case view.PanelCustomerInsights:
		return view.CustomerInsights(views.CustomerInsights), nil
	case view.PanelHotelAnalytics:
		return view.HotelAnalytics(views.HotelAnalytics), nil
	case view.PanelMenuAnalytics:
		return view.MenuAnalytics(views.MenuAnalytics), nil
	}

	return view.Table{}, failure.NotFound("panel " + query.Panel) // nolint:wrapcheck
}
