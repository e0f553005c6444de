package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"saapadu/config"
	"saapadu/infras/otel/mocks"
	"saapadu/internal/domains/analytics/derive"
	"saapadu/internal/domains/analytics/service"
	donationRepo "saapadu/internal/domains/donation/repository"
	hotelModel "saapadu/internal/domains/hotel/model"
	hotelRepo "saapadu/internal/domains/hotel/repository"
	orderModel "saapadu/internal/domains/order/model"
	orderRepo "saapadu/internal/domains/order/repository"
	"saapadu/shared/constant"
	gModel "saapadu/shared/model"
	"saapadu/shared/storage"
)

type fixture struct {
	store     storage.Store
	hotels    hotelRepo.Hotel
	orders    orderRepo.Order
	donations donationRepo.Donation
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctx := context.Background()
	store := storage.NewMemoryStore()

	assert.NoError(t, store.Save(ctx, constant.StorageKeyHotels, `[{"id":1,"name":"A","menu":{"breakfast":[{"name":"Idli","price":30}]}}]`, 0))
	assert.NoError(t, store.Save(ctx, constant.StorageKeyOrders, `[{"orderId":1,"email":"a@x.com","hotelName":"A","total":100}]`, 0))
	assert.NoError(t, store.Save(ctx, constant.StorageKeyDonations, `not json`, 0))

	f := fixture{
		store:     store,
		hotels:    hotelRepo.New(store, mocks.NewOtel()),
		orders:    orderRepo.New(store, mocks.NewOtel()),
		donations: donationRepo.New(store, mocks.NewOtel()),
	}

	f.hotels.Load(ctx)
	f.orders.Load(ctx)
	f.donations.Load(ctx)

	return f
}

func TestAnalytics_InitialViews(t *testing.T) {
	f := newFixture(t)

	svc := service.New(f.hotels, f.orders, f.donations, &config.Config{}, mocks.NewOtel())
	views := svc.Views(context.Background())

	assert.Len(t, views.MenuItems, 1)
	assert.Equal(t, "1-breakfast-0", views.MenuItems[0].ID)
	assert.Len(t, views.Customers, 1)
	assert.Equal(t, 0, views.Summary.TotalDonations)
}

func TestAnalytics_RecomputesBeforeMutationReturns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	svc := service.New(f.hotels, f.orders, f.donations, &config.Config{}, mocks.NewOtel())

	applied, err := f.hotels.Mutate(ctx, func(hotels []hotelModel.Hotel) ([]hotelModel.Hotel, bool, error) {
		return append(hotels, hotelModel.Hotel{ID: 2, Name: "B", Menu: hotelModel.DefaultMenu()}), true, nil
	})
	assert.NoError(t, err)
	assert.True(t, applied)
	assert.Len(t, svc.Views(ctx).MenuItems, 9)

	_, err = f.orders.Mutate(ctx, func(orders []orderModel.Order) ([]orderModel.Order, bool, error) {
		return append(orders, orderModel.Order{OrderID: gModel.NewID("o2"), Email: "a@x.com", Total: 50}), true, nil
	})
	assert.NoError(t, err)

	customers := svc.Views(ctx).Customers
	assert.Len(t, customers, 1)
	assert.Equal(t, 2, customers[0].Orders)
	assert.InDelta(t, 150.0, customers[0].TotalSpent, 1e-9)

	_, err = f.hotels.Mutate(ctx, func(_ []hotelModel.Hotel) ([]hotelModel.Hotel, bool, error) {
		return []hotelModel.Hotel{}, true, nil
	})
	assert.NoError(t, err)
	assert.Empty(t, svc.Views(ctx).MenuItems)
}

func TestAnalytics_JoinDatePolicy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.NoError(t, f.store.Save(ctx, constant.StorageKeyOrders, `[
		{"email":"a@x.com","timestamp":"2026-02-10T10:00:00Z"},
		{"email":"a@x.com","timestamp":"2026-01-02T10:00:00Z"}
	]`, 0))
	f.orders.Load(ctx)

	cfg := &config.Config{}
	cfg.App.Analytics.JoinDatePolicy = string(derive.JoinDateEarliest)

	svc := service.New(f.hotels, f.orders, f.donations, cfg, mocks.NewOtel())

	assert.Equal(t, "2026-01-02", svc.Views(ctx).Customers[0].JoinDate)
}

func TestAnalytics_Warmup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cfg := &config.Config{}
	cfg.App.Analytics.WarmupMillis = 1

	svc := service.New(f.hotels, f.orders, f.donations, cfg, mocks.NewOtel())
	before := svc.Views(ctx).ComputedAt

	// A write that bypasses the collection is only picked up by a refresh.
	assert.NoError(t, f.store.Save(ctx, constant.StorageKeyOrders, `[]`, 0))
	f.orders.Load(ctx)

	stop := svc.Warmup(ctx)
	defer stop()

	assert.Eventually(t, func() bool {
		views := svc.Views(ctx)

		return views.ComputedAt.After(before) && len(views.Customers) == 0
	}, time.Second, 5*time.Millisecond)
}
