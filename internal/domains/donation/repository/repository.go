package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"saapadu/infras/otel"
	"saapadu/internal/domains/donation/model"
	"saapadu/shared/constant"
	gRepo "saapadu/shared/repository"
	"saapadu/shared/storage"
)

// Donation is read-only. Records are written by the storefront.
type Donation interface {
	Load(ctx context.Context)
	Reload(ctx context.Context)
	All() []model.Donation
	Len() int
	OnChange(hook gRepo.ChangeHook)
	Key() string
}

type repositoryImpl struct {
	*gRepo.Collection[model.Donation]
}

func New(store storage.Store, otel otel.Otel) Donation {
	return &repositoryImpl{
		Collection: gRepo.NewCollection[model.Donation](constant.StorageKeyDonations, store, otel),
	}
}
