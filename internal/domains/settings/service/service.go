package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"saapadu/infras/otel"
	"saapadu/internal/domains/settings/model/dto"
	"saapadu/shared/constant"
	"saapadu/shared/failure"
	"saapadu/shared/logger"
	"saapadu/shared/password"
	"saapadu/shared/storage"

	"github.com/rs/zerolog/log"
)

type Settings interface {
	Get(ctx context.Context) (dto.SettingsResponse, error)
	UpdateCommission(ctx context.Context, req dto.UpdateCommissionRequest) error
	UpdateDelivery(ctx context.Context, req dto.UpdateDeliveryRequest) error
	UpdateCredentials(ctx context.Context, req dto.UpdateCredentialsRequest) (bool, error)
	// Credential returns the stored admin email and password. Either may be empty.
	Credential(ctx context.Context) (email, secret string)
}

type serviceImpl struct {
	store storage.Store
	otel  otel.Otel
}

func New(store storage.Store, otel otel.Otel) Settings {
	return &serviceImpl{
		store: store,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()

	res.CommissionPercentage = s.number(ctx, constant.StorageKeyCommissionPercentage)
	res.MinOrderValue = s.number(ctx, constant.StorageKeyMinOrderValue)
	res.MaxDeliveryDistance = s.number(ctx, constant.StorageKeyMaxDeliveryDistance)
	res.BaseDeliveryFee = s.number(ctx, constant.StorageKeyBaseDeliveryFee)
	res.AdminEmail = s.text(ctx, constant.StorageKeyAdminCredentialEmail)

	return res, nil
}

func (s *serviceImpl) UpdateCommission(ctx context.Context, req dto.UpdateCommissionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateCommission")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.save(ctx, map[string]string{
		constant.StorageKeyCommissionPercentage: formatNumber(req.CommissionPercentage),
		constant.StorageKeyMinOrderValue:        formatNumber(req.MinOrderValue),
	})
}

func (s *serviceImpl) UpdateDelivery(ctx context.Context, req dto.UpdateDeliveryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateDelivery")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.save(ctx, map[string]string{
		constant.StorageKeyMaxDeliveryDistance: formatNumber(req.MaxDeliveryDistance),
		constant.StorageKeyBaseDeliveryFee:     formatNumber(req.BaseDeliveryFee),
	})
}

// UpdateCredentials stores the password as a bcrypt hash.
func (s *serviceImpl) UpdateCredentials(ctx context.Context, req dto.UpdateCredentialsRequest) (applied bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateCredentials")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	values := make(map[string]string)

	if email := strings.TrimSpace(req.Email); email != constant.Empty {
		values[constant.StorageKeyAdminCredentialEmail] = email
	}

	if req.Password != constant.Empty {
		hash, err := password.Hash(req.Password)
		if err != nil {
			log.Error().Err(err).Msg("failed to hash admin password")

			return false, fmt.Errorf("failed to hash admin password: %w", err)
		}

		values[constant.StorageKeyAdminPassword] = hash
	}

	if len(values) == 0 {
		return false, nil
	}

	if err = s.save(ctx, values); err != nil {
		return false, err
	}

	return true, nil
}

func (s *serviceImpl) Credential(ctx context.Context) (email, secret string) {
	return s.text(ctx, constant.StorageKeyAdminCredentialEmail), s.text(ctx, constant.StorageKeyAdminPassword)
}

// save writes each key on its own. Keys written before a failure stay written.
func (s *serviceImpl) save(ctx context.Context, values map[string]string) error {
	for key, value := range values {
		if err := s.store.Save(ctx, key, value, 0); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to save setting")

			return failure.StorageWrite(err) // nolint:wrapcheck
		}
	}

	return nil
}

func (s *serviceImpl) text(ctx context.Context, key string) string {
	var raw string

	if err := s.store.Get(ctx, key, &raw); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.StorageReadError(key, err)
		}

		return constant.Empty
	}

	return raw
}

// number reads a numeric setting. Missing or unparsable values read as 0.
func (s *serviceImpl) number(ctx context.Context, key string) float64 {
	raw := strings.TrimSpace(s.text(ctx, key))
	if raw == constant.Empty {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logger.StorageReadError(key, err)

		return 0
	}

	return value
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
