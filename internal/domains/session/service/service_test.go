package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"saapadu/config"
	"saapadu/infras/jwt"
	jwtMocks "saapadu/infras/jwt/mocks"
	"saapadu/infras/otel/mocks"
	"saapadu/internal/domains/session/model/dto"
	"saapadu/internal/domains/session/service"
	settingsDto "saapadu/internal/domains/settings/model/dto"
	settingsService "saapadu/internal/domains/settings/service"
	"saapadu/shared/constant"
	"saapadu/shared/failure"
	"saapadu/shared/storage"
	storageMocks "saapadu/shared/storage/mocks"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "saapadu-admin"
	cfg.JWT.AccessSecret = "secret"
	cfg.JWT.AccessExpireMin = 60
	cfg.Admin.DefaultEmail = "admin@oorsaapadu.com"
	cfg.Admin.DefaultPassword = "password123"

	return cfg
}

func newSession(store storage.Store) (service.Session, settingsService.Settings) {
	cfg := newConfig()
	settings := settingsService.New(store, mocks.NewOtel())
	auth := service.NewCredentialAuthenticator(settings, cfg)

	return service.New(store, jwt.New(cfg), auth, mocks.NewOtel()), settings
}

func TestSessionService_Login(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		req        dto.LoginRequest
		expectCode int
	}{
		{
			name: "default credential",
			req:  dto.LoginRequest{Email: "admin@oorsaapadu.com", Password: "password123"},
		},
		{
			name:       "wrong password",
			req:        dto.LoginRequest{Email: "admin@oorsaapadu.com", Password: "password"},
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "wrong email",
			req:        dto.LoginRequest{Email: "someone@oorsaapadu.com", Password: "password123"},
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "empty pair",
			req:        dto.LoginRequest{},
			expectCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			svc, _ := newSession(store)

			res, err := svc.Login(ctx, tt.req)

			if tt.expectCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.expectCode, failure.GetCode(err))
				assert.False(t, svc.Status(ctx).LoggedIn)

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.AccessToken)
			assert.Equal(t, "Bearer", res.TokenType)
			assert.Equal(t, dto.StatusResponse{LoggedIn: true, Email: tt.req.Email}, svc.Status(ctx))
		})
	}
}

func TestSessionService_StoredCredential(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc, settings := newSession(store)

	applied, err := settings.UpdateCredentials(ctx, settingsDto.UpdateCredentialsRequest{
		Email:    "owner@oorsaapadu.com",
		Password: "new-secret",
	})
	assert.NoError(t, err)
	assert.True(t, applied)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "admin@oorsaapadu.com", Password: "password123"})
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "owner@oorsaapadu.com", Password: "new-secret"})
	assert.NoError(t, err)
}

func TestCredentialAuthenticator_PlainStoredPassword(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	assert.NoError(t, store.Save(ctx, constant.StorageKeyAdminPassword, "legacy-pass", 0))

	auth := service.NewCredentialAuthenticator(settingsService.New(store, mocks.NewOtel()), newConfig())

	assert.True(t, auth.Authenticate(ctx, "admin@oorsaapadu.com", "legacy-pass"))
	assert.False(t, auth.Authenticate(ctx, "admin@oorsaapadu.com", "password123"))
}

func TestSessionService_VerifyAfterLogout(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc, _ := newSession(store)

	res, err := svc.Login(ctx, dto.LoginRequest{Email: "admin@oorsaapadu.com", Password: "password123"})
	assert.NoError(t, err)

	claims, err := svc.Verify(ctx, res.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "admin@oorsaapadu.com", claims.Email)

	assert.NoError(t, svc.Logout(ctx))
	assert.Equal(t, dto.StatusResponse{}, svc.Status(ctx))

	_, err = svc.Verify(ctx, res.AccessToken)
	assert.ErrorIs(t, err, failure.LoggedOutError)

	var marker string
	assert.ErrorIs(t, store.Get(ctx, constant.StorageKeyAdminToken, &marker), storage.ErrNotFound)
}

func TestSessionService_NewLoginReplacesOldToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSession(storage.NewMemoryStore())
	req := dto.LoginRequest{Email: "admin@oorsaapadu.com", Password: "password123"}

	first, err := svc.Login(ctx, req)
	assert.NoError(t, err)

	second, err := svc.Login(ctx, req)
	assert.NoError(t, err)

	_, err = svc.Verify(ctx, first.AccessToken)
	assert.ErrorIs(t, err, failure.LoggedOutError)

	_, err = svc.Verify(ctx, second.AccessToken)
	assert.NoError(t, err)
}

func TestSessionService_VerifyInvalidToken(t *testing.T) {
	svc, _ := newSession(storage.NewMemoryStore())

	_, err := svc.Verify(context.Background(), "not-a-token")

	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestSessionService_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storageMocks.NewMockStore(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	cfg := newConfig()
	auth := service.NewCredentialAuthenticator(settingsService.New(mockStore, mocks.NewOtel()), cfg)
	svc := service.New(mockStore, mockJWT, auth, mocks.NewOtel())
	req := dto.LoginRequest{Email: "admin@oorsaapadu.com", Password: "password123"}

	tests := []struct {
		name       string
		setupMock  func()
		expectCode int
	}{
		{
			name: "token signing fails",
			setupMock: func() {
				mockStore.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(storage.ErrNotFound).Times(2)
				mockJWT.EXPECT().Issue(req.Email).Return(nil, errors.New("no secret"))
			},
			expectCode: http.StatusInternalServerError,
		},
		{
			name: "marker cannot be saved",
			setupMock: func() {
				mockStore.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(storage.ErrNotFound).Times(2)
				mockJWT.EXPECT().Issue(req.Email).Return(&jwt.Token{ID: "t1"}, nil)
				mockStore.EXPECT().Save(gomock.Any(), constant.StorageKeyAdminToken, "t1", 0).Return(errors.New("read only"))
			},
			expectCode: http.StatusInsufficientStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Login(context.Background(), req)

			assert.Error(t, err)
			assert.Equal(t, tt.expectCode, failure.GetCode(err))
		})
	}
}
