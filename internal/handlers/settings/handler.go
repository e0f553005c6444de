package settings

import (
	"net/http"
	"saapadu/infras/otel"
	"saapadu/internal/domains/settings/model/dto"
	"saapadu/internal/domains/settings/service"
	"saapadu/shared/constant"
	"saapadu/shared/validator"
	"saapadu/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Settings
	otel    otel.Otel
}

func New(service service.Settings, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSettings)
		routerGroup.Put("/commission", handler.UpdateCommission)
		routerGroup.Put("/delivery", handler.UpdateDelivery)
		routerGroup.Put("/credentials", handler.UpdateCredentials)
	})
}

// GetSettings returns the platform settings.
// @Summary Get settings
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Data[dto.SettingsResponse] "Settings"
// @Router /v1/settings [get]
// @Security BearerAuth
func (handler *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	settings, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get settings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, settings)
}

// UpdateCommission saves the commission percentage and minimum order value.
// @Summary Update commission settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateCommissionRequest true "Commission settings"
// @Success 200 {object} response.Message "Commission settings saved"
// @Failure 400 {object} response.Error
// @Failure 507 {object} response.Error
// @Router /v1/settings/commission [put]
// @Security BearerAuth
func (handler *Handler) UpdateCommission(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCommission")
	defer scope.End()

	var req dto.UpdateCommissionRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateCommission(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update commission settings")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Commission settings saved")
}

// UpdateDelivery saves the delivery distance and base fee.
// @Summary Update delivery settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateDeliveryRequest true "Delivery settings"
// @Success 200 {object} response.Message "Delivery settings saved"
// @Failure 400 {object} response.Error
// @Failure 507 {object} response.Error
// @Router /v1/settings/delivery [put]
// @Security BearerAuth
func (handler *Handler) UpdateDelivery(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDelivery")
	defer scope.End()

	var req dto.UpdateDeliveryRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateDelivery(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update delivery settings")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Delivery settings saved")
}

// UpdateCredentials changes the admin email, password, or both.
// @Summary Update admin credentials
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateCredentialsRequest true "Admin credentials"
// @Success 200 {object} response.Applied "Admin credentials updated"
// @Failure 400 {object} response.Error
// @Failure 507 {object} response.Error
// @Router /v1/settings/credentials [put]
// @Security BearerAuth
func (handler *Handler) UpdateCredentials(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCredentials")
	defer scope.End()

	var req dto.UpdateCredentialsRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	applied, err := handler.service.UpdateCredentials(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update admin credentials")

		response.WithError(w, err)

		return
	}

	response.WithApplied(w, applied, "Admin credentials updated")
}
