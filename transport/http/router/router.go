package router

import (
	"saapadu/internal/handlers/analytics"
	"saapadu/internal/handlers/dashboard"
	"saapadu/internal/handlers/donation"
	"saapadu/internal/handlers/hotel"
	"saapadu/internal/handlers/menu"
	"saapadu/internal/handlers/order"
	"saapadu/internal/handlers/promo"
	"saapadu/internal/handlers/review"
	"saapadu/internal/handlers/session"
	"saapadu/internal/handlers/settings"
	"saapadu/internal/handlers/user"
	"saapadu/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Session   session.Handler
	Hotel     hotel.Handler
	Menu      menu.Handler
	Order     order.Handler
	Review    review.Handler
	Promo     promo.Handler
	Donation  donation.Handler
	User      user.Handler
	Analytics analytics.Handler
	Settings  settings.Handler
	Dashboard dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Auth           middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Auth.Auth)

		r.DomainHandlers.Session.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Menu.Router(routerGroup)
		r.DomainHandlers.Order.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Promo.Router(routerGroup)
		r.DomainHandlers.Donation.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Analytics.Router(routerGroup)
		r.DomainHandlers.Settings.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Auth:           auth,
	}
}
