package service

import (
	"context"

	"saapadu/infras/otel"
	"saapadu/internal/domains/donation/model/dto"
	"saapadu/internal/domains/donation/repository"
	"saapadu/shared/constant"
)

type Donation interface {
	GetAll(ctx context.Context) (dto.GetDonationsResponse, error)
}

type serviceImpl struct {
	repo repository.Donation
	otel otel.Otel
}

func New(repo repository.Donation, otel otel.Otel) Donation {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetDonationsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	res.FromModels(s.repo.All())

	return res, nil
}
