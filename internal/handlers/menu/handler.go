package menu

import (
	"net/http"
	"saapadu/infras/otel"
	"saapadu/internal/domains/menu/model/dto"
	"saapadu/internal/domains/menu/service"
	"saapadu/shared"
	"saapadu/shared/constant"
	"saapadu/shared/failure"
	"saapadu/shared/validator"
	"saapadu/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Menu
	otel    otel.Otel
}

func New(service service.Menu, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/menu-items", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMenuItem)
		routerGroup.Get("/", handler.GetMenuItems)
		routerGroup.Get("/{id}", handler.GetMenuItemByID)
		routerGroup.Put("/{id}", handler.UpdateMenuItem)
		routerGroup.Delete("/{id}", handler.DeleteMenuItem)
	})
}

// CreateMenuItem appends an entry to a hotel menu category.
// @Summary Create a menu item
// @Tags Menu
// @Accept json
// @Produce json
// @Param request body dto.CreateMenuItemRequest true "Create Menu Item Request"
// @Success 201 {object} response.Data[dto.MenuItemResponse] "Created menu item"
// @Failure 400 {object} response.Error
// @Failure 507 {object} response.Error
// @Router /v1/menu-items [post]
// @Security BearerAuth
func (handler *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMenuItem")
	defer scope.End()

	var req dto.CreateMenuItemRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	item, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create menu item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu item created successfully")

	response.WithJSON(w, http.StatusCreated, item)
}

// GetMenuItems lists the flattened menu of every hotel.
// @Summary Get menu items
// @Description Filters combine with AND. Omit a filter to match everything.
// @Tags Menu
// @Produce json
// @Param hotel query int false "Hotel ID"
// @Param category query string false "Menu category" Enums(breakfast, lunch, snacks, dinner)
// @Success 200 {object} response.Data[dto.GetMenuItemsResponse] "List of menu items"
// @Failure 400 {object} response.Error
// @Router /v1/menu-items [get]
// @Security BearerAuth
func (handler *Handler) GetMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenuItems")
	defer scope.End()

	filter := dto.MenuFilter{Category: r.URL.Query().Get(constant.RequestParamCategory)}

	if hotel := r.URL.Query().Get(constant.RequestParamHotel); hotel != constant.Empty {
		id := shared.ConvertStringToInt(hotel)
		if id == nil {
			response.WithError(w, failure.BadRequestFromString("hotel must be a number"))

			return
		}

		filter.HotelID = *id
	}

	if err := validator.ValidateStruct(&filter); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	items, err := handler.service.GetAll(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, items)
}

// GetMenuItemByID retrieves a menu item by its composite ID.
// @Summary Get a menu item by ID
// @Tags Menu
// @Produce json
// @Param id path string true "Menu item ID, for example 3-lunch-0"
// @Success 200 {object} response.Data[dto.MenuItemResponse] "Menu item"
// @Failure 404 {object} response.Error
// @Router /v1/menu-items/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetMenuItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenuItemByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	item, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get menu item by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}

// UpdateMenuItem replaces a menu item, moving it when the hotel or category changes.
// @Summary Update a menu item
// @Tags Menu
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Param request body dto.UpdateMenuItemRequest true "Update Menu Item Request"
// @Success 200 {object} response.Applied "Menu item updated successfully"
// @Failure 400 {object} response.Error
// @Failure 507 {object} response.Error
// @Router /v1/menu-items/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMenuItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateMenuItemRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	applied, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update menu item")

		response.WithError(w, err)

		return
	}

	response.WithApplied(w, applied, "Menu item updated successfully")
}

// DeleteMenuItem removes a menu item from its hotel.
// @Summary Delete a menu item
// @Tags Menu
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} response.Applied "Menu item deleted successfully"
// @Failure 507 {object} response.Error
// @Router /v1/menu-items/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMenuItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	applied, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete menu item")

		response.WithError(w, err)

		return
	}

	response.WithApplied(w, applied, "Menu item deleted successfully")
}
