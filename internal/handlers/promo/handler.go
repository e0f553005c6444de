package promo

import (
	"net/http"
	"saapadu/infras/otel"
	"saapadu/internal/domains/promo/model/dto"
	"saapadu/internal/domains/promo/service"
	"saapadu/shared/constant"
	"saapadu/shared/validator"
	"saapadu/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.PromoCode
	otel    otel.Otel
}

func New(service service.PromoCode, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/promo-codes", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePromoCode)
		routerGroup.Get("/", handler.GetPromoCodes)
		routerGroup.Get("/{id}", handler.GetPromoCodeByID)
		routerGroup.Patch("/{id}", handler.UpdatePromoCode)
		routerGroup.Post("/{id}/toggle", handler.TogglePromoCode)
		routerGroup.Delete("/{id}", handler.DeletePromoCode)
	})
}

// CreatePromoCode adds a promo code.
// @Summary Create a promo code
// @Tags Promo
// @Accept json
// @Produce json
// @Param request body dto.CreatePromoCodeRequest true "Create Promo Code Request"
// @Success 201 {object} response.Data[dto.PromoCodeResponse] "Created promo code"
// @Failure 400 {object} response.Error
// @Failure 507 {object} response.Error
// @Router /v1/promo-codes [post]
// @Security BearerAuth
func (handler *Handler) CreatePromoCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePromoCode")
	defer scope.End()

	var req dto.CreatePromoCodeRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	promo, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create promo code")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, promo)
}

// GetPromoCodes lists every promo code.
// @Summary Get promo codes
// @Tags Promo
// @Produce json
// @Success 200 {object} response.Data[dto.GetPromoCodesResponse] "List of promo codes"
// @Router /v1/promo-codes [get]
// @Security BearerAuth
func (handler *Handler) GetPromoCodes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPromoCodes")
	defer scope.End()

	promos, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get promo codes")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, promos)
}

// GetPromoCodeByID retrieves a promo code by its ID.
// @Summary Get a promo code by ID
// @Tags Promo
// @Produce json
// @Param id path string true "Promo code ID"
// @Success 200 {object} response.Data[dto.PromoCodeResponse] "Promo code"
// @Failure 404 {object} response.Error
// @Router /v1/promo-codes/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPromoCodeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPromoCodeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	promo, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get promo code by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, promo)
}

// UpdatePromoCode changes the given fields of a promo code.
// @Summary Update a promo code
// @Tags Promo
// @Accept json
// @Produce json
// @Param id path string true "Promo code ID"
// @Param request body dto.UpdatePromoCodeRequest true "Update Promo Code Request"
// @Success 200 {object} response.Applied "Promo code updated successfully"
// @Failure 400 {object} response.Error
// @Failure 507 {object} response.Error
// @Router /v1/promo-codes/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePromoCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePromoCode")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdatePromoCodeRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	applied, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update promo code")

		response.WithError(w, err)

		return
	}

	response.WithApplied(w, applied, "Promo code updated successfully")
}

// TogglePromoCode flips a promo code between active and inactive.
// @Summary Toggle a promo code
// @Tags Promo
// @Produce json
// @Param id path string true "Promo code ID"
// @Success 200 {object} response.Applied "Promo code toggled successfully"
// @Failure 507 {object} response.Error
// @Router /v1/promo-codes/{id}/toggle [post]
// @Security BearerAuth
func (handler *Handler) TogglePromoCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TogglePromoCode")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	applied, err := handler.service.Toggle(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to toggle promo code")

		response.WithError(w, err)

		return
	}

	response.WithApplied(w, applied, "Promo code toggled successfully")
}

// DeletePromoCode removes a promo code.
// @Summary Delete a promo code
// @Tags Promo
// @Produce json
// @Param id path string true "Promo code ID"
// @Success 200 {object} response.Applied "Promo code deleted successfully"
// @Failure 507 {object} response.Error
// @Router /v1/promo-codes/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePromoCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePromoCode")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	applied, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete promo code")

		response.WithError(w, err)

		return
	}

	response.WithApplied(w, applied, "Promo code deleted successfully")
}
