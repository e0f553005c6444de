package service

import (
	"context"
	"fmt"
	"slices"

	"saapadu/infras/otel"
	hotelRepo "saapadu/internal/domains/hotel/repository"
	"saapadu/internal/domains/review/model"
	"saapadu/internal/domains/review/model/dto"
	"saapadu/internal/domains/review/repository"
	"saapadu/shared/constant"
	"saapadu/shared/failure"

	"github.com/rs/zerolog/log"
)

type Review interface {
	GetAll(ctx context.Context, filter dto.ReviewFilter) (dto.GetReviewsResponse, error)
	Get(ctx context.Context, id string) (dto.ReviewResponse, error)
	Create(ctx context.Context, req dto.CreateReviewRequest) (dto.ReviewResponse, error)
	Update(ctx context.Context, req dto.UpdateReviewRequest, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type serviceImpl struct {
	repo   repository.Review
	hotels hotelRepo.Hotel
	otel   otel.Otel
}

func New(repo repository.Review, hotels hotelRepo.Hotel, otel otel.Otel) Review {
	return &serviceImpl{
		repo:   repo,
		hotels: hotels,
		otel:   otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, filter dto.ReviewFilter) (res dto.GetReviewsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	res.FromModels(slices.DeleteFunc(s.repo.All(), func(review model.Review) bool {
		return !filter.Match(review)
	}))

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReviewResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	review, ok := s.repo.FindByID(id)
	if !ok {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotel, ok := s.hotels.FindByID(req.HotelID)
	if !ok {
		return res, failure.BadRequestFromString(fmt.Sprintf("hotel %d does not exist", req.HotelID)) // nolint:wrapcheck
	}

	review := req.ToModel(hotel.Name)

	_, err = s.repo.Mutate(ctx, func(reviews []model.Review) ([]model.Review, bool, error) {
		return append(reviews, review), true, nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReviewRequest, id string) (applied bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	applied, err = s.repo.Mutate(ctx, func(reviews []model.Review) ([]model.Review, bool, error) {
		index := model.IndexOf(reviews, id)
		if index == -1 {
			return reviews, false, nil
		}

		return reviews, req.ApplyTo(&reviews[index]), nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update review")

		return false, fmt.Errorf("failed to update review: %w", err)
	}

	return applied, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (applied bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	applied, err = s.repo.Mutate(ctx, func(reviews []model.Review) ([]model.Review, bool, error) {
		index := model.IndexOf(reviews, id)
		if index == -1 {
			return reviews, false, nil
		}

		return slices.Delete(reviews, index, index+1), true, nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete review")

		return false, fmt.Errorf("failed to delete review: %w", err)
	}

	return applied, nil
}
