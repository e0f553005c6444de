package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"saapadu/infras/otel/mocks"
	"saapadu/internal/domains/settings/model/dto"
	"saapadu/internal/domains/settings/service"
	"saapadu/shared/constant"
	"saapadu/shared/failure"
	"saapadu/shared/password"
	"saapadu/shared/storage"
	storageMocks "saapadu/shared/storage/mocks"
)

func TestSettingsService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		stored   map[string]string
		expected dto.SettingsResponse
	}{
		{
			name:     "nothing stored",
			expected: dto.SettingsResponse{},
		},
		{
			name: "raw values",
			stored: map[string]string{
				constant.StorageKeyCommissionPercentage: "12.5",
				constant.StorageKeyMinOrderValue:        "150",
				constant.StorageKeyMaxDeliveryDistance:  " 8 ",
				constant.StorageKeyBaseDeliveryFee:      "25",
				constant.StorageKeyAdminCredentialEmail: "owner@x.com",
			},
			expected: dto.SettingsResponse{
				CommissionPercentage: 12.5,
				MinOrderValue:        150,
				MaxDeliveryDistance:  8,
				BaseDeliveryFee:      25,
				AdminEmail:           "owner@x.com",
			},
		},
		{
			name: "unparsable values read as zero",
			stored: map[string]string{
				constant.StorageKeyCommissionPercentage: "ten",
				constant.StorageKeyMinOrderValue:        "150",
			},
			expected: dto.SettingsResponse{MinOrderValue: 150},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			for key, value := range tt.stored {
				assert.NoError(t, store.Save(ctx, key, value, 0))
			}

			res, err := service.New(store, mocks.NewOtel()).Get(ctx)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestSettingsService_UpdateCommissionAndDelivery(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := service.New(store, mocks.NewOtel())

	assert.NoError(t, svc.UpdateCommission(ctx, dto.UpdateCommissionRequest{CommissionPercentage: 7.5, MinOrderValue: 100}))
	assert.NoError(t, svc.UpdateDelivery(ctx, dto.UpdateDeliveryRequest{MaxDeliveryDistance: 12, BaseDeliveryFee: 30}))

	var raw string
	assert.NoError(t, store.Get(ctx, constant.StorageKeyCommissionPercentage, &raw))
	assert.Equal(t, "7.5", raw)
	assert.NoError(t, store.Get(ctx, constant.StorageKeyMaxDeliveryDistance, &raw))
	assert.Equal(t, "12", raw)

	res, err := svc.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, dto.SettingsResponse{
		CommissionPercentage: 7.5,
		MinOrderValue:        100,
		MaxDeliveryDistance:  12,
		BaseDeliveryFee:      30,
	}, res)
}

func TestSettingsService_UpdateCredentials(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		req           dto.UpdateCredentialsRequest
		expectApplied bool
		expectEmail   string
		expectSecret  string
	}{
		{
			name:          "both empty is a no-op",
			req:           dto.UpdateCredentialsRequest{},
			expectApplied: false,
		},
		{
			name:          "email only",
			req:           dto.UpdateCredentialsRequest{Email: " owner@x.com "},
			expectApplied: true,
			expectEmail:   "owner@x.com",
		},
		{
			name:          "password only",
			req:           dto.UpdateCredentialsRequest{Password: "s3cret!"},
			expectApplied: true,
			expectSecret:  "s3cret!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.New(storage.NewMemoryStore(), mocks.NewOtel())

			applied, err := svc.UpdateCredentials(ctx, tt.req)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectApplied, applied)

			email, secret := svc.Credential(ctx)
			assert.Equal(t, tt.expectEmail, email)

			if tt.expectSecret == constant.Empty {
				assert.Empty(t, secret)

				return
			}

			assert.True(t, password.IsHash(secret))
			assert.NoError(t, password.Verify(tt.expectSecret, secret))
		})
	}
}

func TestSettingsService_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storageMocks.NewMockStore(ctrl)
	mockStore.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 0).Return(errors.New("disk full"))

	svc := service.New(mockStore, mocks.NewOtel())

	err := svc.UpdateCommission(context.Background(), dto.UpdateCommissionRequest{CommissionPercentage: 5})

	assert.Error(t, err)
	assert.Equal(t, http.StatusInsufficientStorage, failure.GetCode(err))
}

func TestSettingsService_GetStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storageMocks.NewMockStore(ctrl)
	mockStore.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused")).Times(5)

	res, err := service.New(mockStore, mocks.NewOtel()).Get(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, dto.SettingsResponse{}, res)
}
