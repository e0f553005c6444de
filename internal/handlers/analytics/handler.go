package analytics

import (
	"net/http"
	"saapadu/infras/otel"
	"saapadu/internal/domains/analytics/derive"
	"saapadu/internal/domains/analytics/service"
	"saapadu/shared/constant"
	"saapadu/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Analytics
	otel    otel.Otel
}

func New(service service.Analytics, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

type GetCustomersResponse struct {
	Customers []derive.Customer `json:"customers"`
	TotalData int               `json:"total_data"`
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/customers", handler.GetCustomers)
	router.Route("/analytics", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAnalytics)
		routerGroup.Get("/summary", handler.GetSummary)
	})
}

// GetAnalytics returns every derived view.
// @Summary Get analytics
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Data[derive.Views] "Derived views"
// @Router /v1/analytics [get]
// @Security BearerAuth
func (handler *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAnalytics")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Views(ctx))
}

// GetSummary returns the dashboard cards.
// @Summary Get dashboard summary
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Data[derive.Summary] "Summary"
// @Router /v1/analytics/summary [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Views(ctx).Summary)
}

// GetCustomers lists customers derived from orders.
// @Summary Get customers
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Data[GetCustomersResponse] "List of customers"
// @Router /v1/customers [get]
// @Security BearerAuth
func (handler *Handler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomers")
	defer scope.End()

	customers := handler.service.Views(ctx).Customers
	if customers == nil {
		customers = []derive.Customer{}
	}

	response.WithJSON(w, http.StatusOK, GetCustomersResponse{Customers: customers, TotalData: len(customers)})
}
