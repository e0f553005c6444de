package middleware

import (
	"context"
	"errors"
	"net/http"
	"saapadu/infras/jwt"
	"saapadu/infras/otel"
	sessionService "saapadu/internal/domains/session/service"
	"saapadu/permissions"
	"saapadu/shared/constant"
	"saapadu/shared/failure"
	"saapadu/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// Auth guards the admin API behind the session gate.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	session    sessionService.Session
	otel       otel.Otel
	permission *permissions.PermissionData
}

func NewAuthMiddleware(session sessionService.Session, otel otel.Otel, permissions *permissions.PermissionData) Auth {
	return &authImpl{
		session:    session,
		otel:       otel,
		permission: permissions,
	}
}

// Auth accepts a bearer token only while its session is open. Endpoints marked skip in
// the permissions file pass through.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		method, path := request.Method, routePattern(request)

		if m.permission != nil && m.permission.Public(path, method) {
			next.ServeHTTP(writer, request)

			return
		}

		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     method,
		})

		claims, err := m.authenticate(ctx, request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		ctx = context.WithValue(request.Context(), constant.ContextKeyAdminEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// authenticate resolves the Authorization header to the claims of the open session.
func (m *authImpl) authenticate(ctx context.Context, header string) (*jwt.Claims, error) {
	token, err := jwt.ExtractTokenFromHeader(header)
	if err != nil {
		return nil, failure.Unauthorized(tokenMessage(err)) // nolint:wrapcheck
	}

	claims, err := m.session.Verify(ctx, token)
	switch {
	case errors.Is(err, failure.LoggedOutError):
		return nil, failure.LoggedOutError // nolint:wrapcheck
	case err != nil:
		return nil, failure.Unauthorized(tokenMessage(err)) // nolint:wrapcheck
	}

	return claims, nil
}

// routePattern prefers the chi pattern ("/v1/hotels/{id}") so skip rules match any id.
func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	if pattern := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); pattern != constant.Empty {
		return pattern
	}

	return request.URL.Path
}

func tokenMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrMissingHeader):
		return "Missing authorization header"
	case errors.Is(err, jwt.ErrNotBearer):
		return "Invalid authorization header format"
	case errors.Is(err, jwt.ErrExpiredToken):
		return "Token has expired"
	case errors.Is(err, jwt.ErrInvalidToken):
		return "Invalid token"
	case errors.Is(err, jwt.ErrInvalidClaim):
		return "Invalid token claims"
	default:
		return "Token validation failed"
	}
}
