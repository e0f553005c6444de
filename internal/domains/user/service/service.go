package service

import (
	"context"
	"fmt"

	"saapadu/infras/otel"
	"saapadu/internal/domains/user/model/dto"
	"saapadu/internal/domains/user/repository"
	"saapadu/shared/constant"
	"saapadu/shared/storage"

	"github.com/rs/zerolog/log"
)

type User interface {
	GetAll(ctx context.Context) (dto.GetUsersResponse, error)
	// Watch reloads the users whenever another writer changes them. It blocks until ctx is done.
	Watch(ctx context.Context) error
}

type serviceImpl struct {
	repo  repository.User
	store storage.Store
	otel  otel.Otel
}

func New(repo repository.User, store storage.Store, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		store: store,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetUsersResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	res.FromModels(s.repo.All())

	return res, nil
}

func (s *serviceImpl) Watch(ctx context.Context) error {
	changes, err := s.store.Watch(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to watch storage changes")

		return fmt.Errorf("failed to watch storage changes: %w", err)
	}

	log.Info().Str("key", s.repo.Key()).Msg("watching registered users")

	for event := range changes {
		if event.Key != s.repo.Key() {
			continue
		}

		s.repo.Reload(ctx)

		log.Debug().Int("users", s.repo.Len()).Msg("registered users reloaded")
	}

	return nil
}
