package dashboard

import (
	"bytes"
	"net/http"
	"saapadu/infras/otel"
	"saapadu/internal/domains/dashboard/model/dto"
	"saapadu/internal/domains/dashboard/service"
	"saapadu/internal/view"
	"saapadu/shared"
	"saapadu/shared/constant"
	"saapadu/shared/failure"
	"saapadu/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/views", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPanels)
		routerGroup.Get("/{panel}", handler.GetPanel)
	})
}

// GetPanels lists the panel names accepted by GetPanel.
// @Summary List dashboard panels
// @Tags View
// @Produce json
// @Success 200 {object} response.Data[[]string] "Panel names"
// @Router /v1/views [get]
// @Security BearerAuth
func (handler *Handler) GetPanels(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, view.Panels)
}

// GetPanel renders one dashboard panel as a text table or an HTML fragment.
// @Summary Render a dashboard panel
// @Tags View
// @Produce plain
// @Produce html
// @Param panel path string true "Panel name"
// @Param format query string false "Output format" Enums(text, html)
// @Param hotel query int false "Hotel ID (menu, reviews)"
// @Param category query string false "Menu category (menu)"
// @Param status query string false "Order status (orders)"
// @Param rating query int false "Star rating (reviews)"
// @Success 200 {string} string "Rendered panel"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/views/{panel} [get]
// @Security BearerAuth
func (handler *Handler) GetPanel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPanel")
	defer scope.End()

	query := r.URL.Query()

	format, err := view.ParseFormat(query.Get(constant.RequestParamFormat))
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	panel := dto.PanelQuery{
		Panel:    chi.URLParam(r, constant.RequestParamPanel),
		Category: query.Get(constant.RequestParamCategory),
		Status:   query.Get(constant.RequestParamStatus),
	}

	for param, target := range map[string]*int{
		constant.RequestParamHotel:  &panel.HotelID,
		constant.RequestParamRating: &panel.Rating,
	} {
		value := query.Get(param)
		if value == constant.Empty {
			continue
		}

		parsed := shared.ConvertStringToInt(value)
		if parsed == nil {
			response.WithError(w, failure.BadRequestFromString(param+" must be a number"))

			return
		}

		*target = *parsed
	}

	table, err := handler.service.Panel(ctx, panel)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("panel", panel.Panel).Msg("failed to build panel")

		response.WithError(w, err)

		return
	}

	var buf bytes.Buffer

	if err := table.Render(&buf, format); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("panel", panel.Panel).Msg("failed to render panel")

		response.WithError(w, err)

		return
	}

	response.WithContent(w, http.StatusOK, format.ContentType(), buf.Bytes())
}
