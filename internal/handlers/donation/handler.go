package donation

import (
	"net/http"
	"saapadu/infras/otel"
	"saapadu/internal/domains/donation/service"
	"saapadu/shared/constant"
	"saapadu/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Donation
	otel    otel.Otel
}

func New(service service.Donation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/donations", handler.GetDonations)
}

// GetDonations lists donations recorded by the storefront.
// @Summary Get donations
// @Tags Donation
// @Produce json
// @Success 200 {object} response.Data[dto.GetDonationsResponse] "List of donations"
// @Router /v1/donations [get]
// @Security BearerAuth
func (handler *Handler) GetDonations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDonations")
	defer scope.End()

	donations, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get donations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, donations)
}
