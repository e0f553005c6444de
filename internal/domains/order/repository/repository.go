package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"saapadu/infras/otel"
	"saapadu/internal/domains/order/model"
	"saapadu/shared/constant"
	gRepo "saapadu/shared/repository"
	"saapadu/shared/storage"
)

type Order interface {
	Load(ctx context.Context)
	Reload(ctx context.Context)
	All() []model.Order
	Len() int
	FindByID(id string) (model.Order, bool)
	Mutate(ctx context.Context, fn gRepo.MutateFunc[model.Order]) (bool, error)
	OnChange(hook gRepo.ChangeHook)
}

type repositoryImpl struct {
	*gRepo.Collection[model.Order]
}

func New(store storage.Store, otel otel.Otel) Order {
	return &repositoryImpl{
		Collection: gRepo.NewCollection[model.Order](constant.StorageKeyOrders, store, otel),
	}
}

func (r *repositoryImpl) FindByID(id string) (model.Order, bool) {
	return r.Find(func(item model.Order) bool {
		return !item.OrderID.IsZero() && item.OrderID.String() == id
	})
}
