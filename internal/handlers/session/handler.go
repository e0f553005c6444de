package session

import (
	"net/http"
	"saapadu/infras/otel"
	"saapadu/internal/domains/session/model/dto"
	"saapadu/internal/domains/session/service"
	"saapadu/shared/constant"
	"saapadu/shared/validator"
	"saapadu/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Session
	otel    otel.Otel
}

func New(service service.Session, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/session", func(routerGroup chi.Router) {
		routerGroup.Post("/login", handler.Login)
		routerGroup.Get("/", handler.Status)
		routerGroup.Delete("/", handler.Logout)
	})
}

// Login opens the admin session.
// @Summary Log in
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.LoginResponse] "Session token"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/session/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	var req dto.LoginRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	token, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin logged in as " + req.Email)

	response.WithJSON(w, http.StatusOK, token)
}

// Status reports whether a session is open.
// @Summary Session status
// @Tags Session
// @Produce json
// @Success 200 {object} response.Data[dto.StatusResponse] "Session status"
// @Router /v1/session [get]
func (handler *Handler) Status(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Status")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Status(ctx))
}

// Logout clears the session marker. Every outstanding token stops working.
// @Summary Log out
// @Tags Session
// @Produce json
// @Success 200 {object} response.Message "Logged out"
// @Failure 507 {object} response.Error
// @Router /v1/session [delete]
// @Security BearerAuth
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	if err := handler.service.Logout(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log out")

		response.WithError(w, err)

		return
	}

	email, _ := ctx.Value(constant.ContextKeyAdminEmail).(string)
	scope.AddEvent("Admin logged out " + email)

	response.WithMessage(w, http.StatusOK, "Logged out")
}
