package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"saapadu/infras/otel"
	"saapadu/internal/domains/user/model"
	"saapadu/shared/constant"
	gRepo "saapadu/shared/repository"
	"saapadu/shared/storage"
)

// User is read-only. Records are written by the storefront.
type User interface {
	Load(ctx context.Context)
	Reload(ctx context.Context)
	All() []model.RegisteredUser
	Len() int
	OnChange(hook gRepo.ChangeHook)
	Key() string
}

type repositoryImpl struct {
	*gRepo.Collection[model.RegisteredUser]
}

func New(store storage.Store, otel otel.Otel) User {
	return &repositoryImpl{
		Collection: gRepo.NewCollection[model.RegisteredUser](constant.StorageKeyUsers, store, otel),
	}
}
