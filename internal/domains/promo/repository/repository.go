package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"saapadu/infras/otel"
	"saapadu/internal/domains/promo/model"
	"saapadu/shared/constant"
	gRepo "saapadu/shared/repository"
	"saapadu/shared/storage"
)

type PromoCode interface {
	Load(ctx context.Context)
	Reload(ctx context.Context)
	All() []model.PromoCode
	Len() int
	FindByID(id string) (model.PromoCode, bool)
	Mutate(ctx context.Context, fn gRepo.MutateFunc[model.PromoCode]) (bool, error)
	OnChange(hook gRepo.ChangeHook)
}

type repositoryImpl struct {
	*gRepo.Collection[model.PromoCode]
}

func New(store storage.Store, otel otel.Otel) PromoCode {
	return &repositoryImpl{
		Collection: gRepo.NewCollection[model.PromoCode](constant.StorageKeyPromoCodes, store, otel),
	}
}

func (r *repositoryImpl) FindByID(id string) (model.PromoCode, bool) {
	return r.Find(func(item model.PromoCode) bool {
		return !item.ID.IsZero() && item.ID.String() == id
	})
}
