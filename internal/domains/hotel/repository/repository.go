package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"saapadu/infras/otel"
	"saapadu/internal/domains/hotel/model"
	"saapadu/shared/constant"
	gRepo "saapadu/shared/repository"
	"saapadu/shared/storage"
)

type Hotel interface {
	Load(ctx context.Context)
	Reload(ctx context.Context)
	All() []model.Hotel
	Len() int
	FindByID(id int) (model.Hotel, bool)
	Mutate(ctx context.Context, fn gRepo.MutateFunc[model.Hotel]) (bool, error)
	OnChange(hook gRepo.ChangeHook)
}

type repositoryImpl struct {
	*gRepo.Collection[model.Hotel]
}

func New(store storage.Store, otel otel.Otel) Hotel {
	return &repositoryImpl{
		Collection: gRepo.NewCollection[model.Hotel](constant.StorageKeyHotels, store, otel),
	}
}

func (r *repositoryImpl) FindByID(id int) (model.Hotel, bool) {
	return r.Find(func(hotel model.Hotel) bool {
		return hotel.ID == id
	})
}
