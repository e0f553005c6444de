package service

import (
	"context"
	"fmt"
	"slices"

	"saapadu/infras/otel"
	"saapadu/internal/domains/promo/model"
	"saapadu/internal/domains/promo/model/dto"
	"saapadu/internal/domains/promo/repository"
	"saapadu/shared"
	"saapadu/shared/constant"
	"saapadu/shared/failure"

	"github.com/rs/zerolog/log"
)

const maxPercentage = 100

type PromoCode interface {
	GetAll(ctx context.Context) (dto.GetPromoCodesResponse, error)
	Get(ctx context.Context, id string) (dto.PromoCodeResponse, error)
	Create(ctx context.Context, req dto.CreatePromoCodeRequest) (dto.PromoCodeResponse, error)
	Update(ctx context.Context, req dto.UpdatePromoCodeRequest, id string) (bool, error)
	Toggle(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type serviceImpl struct {
	repo repository.PromoCode
	otel otel.Otel
}

func New(repo repository.PromoCode, otel otel.Otel) PromoCode {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetPromoCodesResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	res.FromModels(s.repo.All())

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PromoCodeResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	promo, ok := s.repo.FindByID(id)
	if !ok {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(promo)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePromoCodeRequest) (res dto.PromoCodeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	promo := req.ToModel()
	if err = checkDiscount(promo); err != nil {
		return res, err
	}

	_, err = s.repo.Mutate(ctx, func(promos []model.PromoCode) ([]model.PromoCode, bool, error) {
		return append(promos, promo), true, nil
	})
	if err != nil {
		log.Error().Err(err).Str("code", promo.Code).Msg("failed to create promo code")

		return res, fmt.Errorf("failed to create promo code: %w", err)
	}

	res.FromModel(promo)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePromoCodeRequest, id string) (applied bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Code != nil {
		code := dto.NormalizeCode(*req.Code)
		req.Code = &code
	}

	applied, err = s.repo.Mutate(ctx, func(promos []model.PromoCode) ([]model.PromoCode, bool, error) {
		index := model.IndexOf(promos, id)
		if index == -1 {
			return promos, false, nil
		}

		promo := promos[index]
		if !shared.ApplyFields(&promo, req) {
			return promos, false, nil
		}

		if err := checkDiscount(promo); err != nil {
			return nil, false, err
		}

		promos[index] = promo

		return promos, true, nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update promo code")

		return false, fmt.Errorf("failed to update promo code: %w", err)
	}

	return applied, nil
}

func (s *serviceImpl) Toggle(ctx context.Context, id string) (applied bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Toggle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	applied, err = s.repo.Mutate(ctx, func(promos []model.PromoCode) ([]model.PromoCode, bool, error) {
		index := model.IndexOf(promos, id)
		if index == -1 {
			return promos, false, nil
		}

		promos[index].Active = !promos[index].Active

		return promos, true, nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to toggle promo code")

		return false, fmt.Errorf("failed to toggle promo code: %w", err)
	}

	return applied, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (applied bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	applied, err = s.repo.Mutate(ctx, func(promos []model.PromoCode) ([]model.PromoCode, bool, error) {
		index := model.IndexOf(promos, id)
		if index == -1 {
			return promos, false, nil
		}

		return slices.Delete(promos, index, index+1), true, nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete promo code")

		return false, fmt.Errorf("failed to delete promo code: %w", err)
	}

	return applied, nil
}

func checkDiscount(promo model.PromoCode) error {
	if promo.DiscountType == constant.DiscountTypePercentage && promo.DiscountValue > maxPercentage {
		return failure.BadRequestFromString("percentage discount must not exceed 100") // nolint:wrapcheck
	}

	return nil
}
