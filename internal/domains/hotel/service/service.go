package service

import (
	"context"
	"fmt"
	"path"
	"slices"

	"saapadu/config"
	"saapadu/infras/otel"
	"saapadu/infras/s3"
	"saapadu/internal/domains/hotel/model"
	"saapadu/internal/domains/hotel/model/dto"
	"saapadu/internal/domains/hotel/repository"
	"saapadu/internal/events"
	"saapadu/shared/base64"
	"saapadu/shared/constant"
	"saapadu/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Hotel interface {
	Create(ctx context.Context, req dto.CreateHotelRequest) (dto.HotelResponse, error)
	GetAll(ctx context.Context) (dto.GetHotelsResponse, error)
	Get(ctx context.Context, id int) (dto.HotelResponse, error)
	Update(ctx context.Context, req dto.UpdateHotelRequest, id int) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type serviceImpl struct {
	repo repository.Hotel
	cfg  *config.Config
	otel otel.Otel
	s3   s3.S3
	bus  events.Bus
}

func New(repo repository.Hotel, cfg *config.Config, otel otel.Otel, s3 s3.S3, bus events.Bus) Hotel {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
		s3:   s3,
		bus:  bus,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelRequest) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	imageURL, uploaded, err := s.storeImage(ctx, req.ImageURL)
	if err != nil {
		return res, err
	}

	var created model.Hotel

	_, err = s.repo.Mutate(ctx, func(hotels []model.Hotel) ([]model.Hotel, bool, error) {
		created = req.ToModel(model.NextID(hotels), imageURL)

		return append(hotels, created), true, nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create hotel")

		if uploaded {
			s.removeImage(ctx, imageURL)
		}

		return res, fmt.Errorf("failed to create hotel: %w", err)
	}

	scope.SetAttribute("hotel.id", created.ID)
	s.bus.Publish(ctx, events.TopicHotelsChanged)

	res.FromModel(created)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetHotelsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	res.FromModels(s.repo.All())

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.HotelResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotel, ok := s.repo.FindByID(id)
	if !ok {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(hotel)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHotelRequest, id int) (applied bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("hotel.id", id)

	if _, ok := s.repo.FindByID(id); !ok {
		log.Debug().Int("id", id).Msg("hotel not found, nothing to update")

		return false, nil
	}

	imageURL, uploaded, err := s.storeImage(ctx, req.ImageURL)
	if err != nil {
		return false, err
	}

	var previousImage, currentImage string

	applied, err = s.repo.Mutate(ctx, func(hotels []model.Hotel) ([]model.Hotel, bool, error) {
		index := model.IndexOf(hotels, id)
		if index == -1 {
			return hotels, false, nil
		}

		previousImage = hotels[index].ImageURL
		hotels[index] = req.ApplyTo(hotels[index].Clone(), imageURL)
		currentImage = hotels[index].ImageURL

		return hotels, true, nil
	})
	if err != nil || !applied {
		if uploaded {
			s.removeImage(ctx, imageURL)
		}

		if err != nil {
			log.Error().Err(err).Int("id", id).Msg("failed to update hotel")

			return false, fmt.Errorf("failed to update hotel: %w", err)
		}

		return false, nil
	}

	if previousImage != currentImage {
		s.removeImage(ctx, previousImage)
	}

	s.bus.Publish(ctx, events.TopicHotelsChanged)

	return true, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (applied bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("hotel.id", id)

	var removed model.Hotel

	applied, err = s.repo.Mutate(ctx, func(hotels []model.Hotel) ([]model.Hotel, bool, error) {
		index := model.IndexOf(hotels, id)
		if index == -1 {
			return hotels, false, nil
		}

		removed = hotels[index]

		return slices.Delete(hotels, index, index+1), true, nil
	})
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to delete hotel")

		return false, fmt.Errorf("failed to delete hotel: %w", err)
	}

	if !applied {
		return false, nil
	}

	s.removeImage(ctx, removed.ImageURL)
	s.bus.Publish(ctx, events.TopicHotelsChanged)

	return true, nil
}

// storeImage uploads an embedded image payload and returns the url to keep on the hotel.
// Remote urls, the placeholder and payloads with object storage disabled are kept as given.
func (s *serviceImpl) storeImage(ctx context.Context, value string) (imageURL string, uploaded bool, err error) {
	if !s.cfg.External.S3.Enable || !base64.IsDataURL(value) {
		return value, false, nil
	}

	contentType, data, err := base64.Decode(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode hotel image")

		return constant.Empty, false, failure.BadRequest(err) // nolint:wrapcheck
	}

	fileName := fmt.Sprintf("%s.%s", uuid.NewString(), base64.Extension(contentType))

	url, err := s.s3.Put(ctx, path.Join(model.ImageDirectory, fileName), contentType, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload hotel image")

		return constant.Empty, false, fmt.Errorf("failed to upload image: %w", err)
	}

	return url, true, nil
}

// removeImage deletes an image this service uploaded. Failures are only logged.
func (s *serviceImpl) removeImage(ctx context.Context, imageURL string) {
	if !s.cfg.External.S3.Enable || imageURL == constant.Empty {
		return
	}

	if _, err := s.s3.Remove(ctx, imageURL); err != nil {
		log.Warn().Err(err).Str("image", imageURL).Msg("failed to remove hotel image")
	}
}
