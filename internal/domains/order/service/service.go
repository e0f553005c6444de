package service

import (
	"context"
	"fmt"
	"slices"

	"saapadu/infras/otel"
	"saapadu/internal/domains/order/model"
	"saapadu/internal/domains/order/model/dto"
	"saapadu/internal/domains/order/repository"
	"saapadu/shared/constant"
	"saapadu/shared/failure"
	"saapadu/shared/validator"

	"github.com/rs/zerolog/log"
)

type Order interface {
	GetAll(ctx context.Context, filter dto.OrderFilter) (dto.GetOrdersResponse, error)
	Get(ctx context.Context, id string) (dto.OrderResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (bool, error)
}

type serviceImpl struct {
	repo repository.Order
	otel otel.Otel
}

func New(repo repository.Order, otel otel.Otel) Order {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, filter dto.OrderFilter) (res dto.GetOrdersResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	res.FromModels(slices.DeleteFunc(s.repo.All(), func(order model.Order) bool {
		return !filter.Match(order)
	}))

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.OrderResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	order, ok := s.repo.FindByID(id)
	if !ok {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(order)

	return res, nil
}

// UpdateStatus rejects statuses outside the fixed set before anything is written.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (applied bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("order.id", id)

	if err = validator.ValidateStruct(&req); err != nil {
		return false, err
	}

	applied, err = s.repo.Mutate(ctx, func(orders []model.Order) ([]model.Order, bool, error) {
		index := model.IndexOf(orders, id)
		if index == -1 || orders[index].Status == req.Status {
			return orders, false, nil
		}

		orders[index].Status = req.Status

		return orders, true, nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update order status")

		return false, fmt.Errorf("failed to update order status: %w", err)
	}

	return applied, nil
}
