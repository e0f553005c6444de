package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"saapadu/infras/otel"
	"saapadu/internal/domains/review/model"
	"saapadu/shared/constant"
	gRepo "saapadu/shared/repository"
	"saapadu/shared/storage"
)

type Review interface {
	Load(ctx context.Context)
	Reload(ctx context.Context)
	All() []model.Review
	Len() int
	FindByID(id string) (model.Review, bool)
	Mutate(ctx context.Context, fn gRepo.MutateFunc[model.Review]) (bool, error)
	OnChange(hook gRepo.ChangeHook)
}

type repositoryImpl struct {
	*gRepo.Collection[model.Review]
}

func New(store storage.Store, otel otel.Otel) Review {
	return &repositoryImpl{
		Collection: gRepo.NewCollection[model.Review](constant.StorageKeyReviews, store, otel),
	}
}

func (r *repositoryImpl) FindByID(id string) (model.Review, bool) {
	return r.Find(func(item model.Review) bool {
		return !item.ID.IsZero() && item.ID.String() == id
	})
}
