package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"saapadu/infras/jwt"
	"saapadu/infras/otel"
	"saapadu/internal/domains/session/model/dto"
	"saapadu/shared/constant"
	"saapadu/shared/failure"
	"saapadu/shared/storage"

	"github.com/rs/zerolog/log"
)

// Session is the admin login gate. At most one session marker exists at a time, so a new
// login or a logout invalidates every token issued before it.
type Session interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Verify(ctx context.Context, token string) (*jwt.Claims, error)
	Status(ctx context.Context) dto.StatusResponse
	Logout(ctx context.Context) error
}

type serviceImpl struct {
	store      storage.Store
	jwtService jwt.JWT
	auth       Authenticator
	otel       otel.Otel
}

func New(store storage.Store, jwt jwt.JWT, auth Authenticator, otel otel.Otel) Session {
	return &serviceImpl{
		store:      store,
		jwtService: jwt,
		auth:       auth,
		otel:       otel,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.auth.Authenticate(ctx, req.Email, req.Password) {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong credentials")

		return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
	}

	token, err := s.jwtService.Issue(req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	if err = s.store.Save(ctx, constant.StorageKeyAdminToken, token.ID, 0); err != nil {
		log.Error().Err(err).Msg("failed to save session marker")

		return res, failure.StorageWrite(err) // nolint:wrapcheck
	}

	if err = s.store.Save(ctx, constant.StorageKeyAdminEmail, req.Email, 0); err != nil {
		log.Error().Err(err).Msg("failed to save session email")

		return res, failure.StorageWrite(err) // nolint:wrapcheck
	}

	res.FromToken(token)

	return res, nil
}

// Verify accepts a token only while it belongs to the current session.
func (s *serviceImpl) Verify(ctx context.Context, token string) (claims *jwt.Claims, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Verify")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err = s.jwtService.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", failure.Unauthorized("invalid session token"), err)
	}

	if marker := s.marker(ctx); marker == constant.Empty || marker != claims.TokenID {
		return nil, failure.LoggedOutError
	}

	return claims, nil
}

func (s *serviceImpl) Status(ctx context.Context) dto.StatusResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Status")
	defer scope.End()

	if s.marker(ctx) == constant.Empty {
		return dto.StatusResponse{}
	}

	var email string
	if err := s.store.Get(ctx, constant.StorageKeyAdminEmail, &email); err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Warn().Err(err).Msg("failed to read session email")
	}

	return dto.StatusResponse{LoggedIn: true, Email: email}
}

func (s *serviceImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	for _, key := range []string{constant.StorageKeyAdminToken, constant.StorageKeyAdminEmail} {
		if err = s.store.Delete(ctx, key); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to clear session")

			return failure.StorageWrite(err) // nolint:wrapcheck
		}
	}

	return nil
}

func (s *serviceImpl) marker(ctx context.Context) string {
	var marker string

	if err := s.store.Get(ctx, constant.StorageKeyAdminToken, &marker); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Warn().Err(err).Msg("failed to read session marker")
		}

		return constant.Empty
	}

	return marker
}
