package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"saapadu/infras/otel/mocks"
	"saapadu/internal/domains/order/model/dto"
	"saapadu/internal/domains/order/repository"
	"saapadu/internal/domains/order/service"
	"saapadu/shared/constant"
	"saapadu/shared/failure"
	"saapadu/shared/storage"
	storageMocks "saapadu/shared/storage/mocks"
)

const storedOrders = `[
	{"orderId":1001,"customerName":"Anu","hotelName":"A","total":100,"status":"Pending","items":[{"name":"Idli","price":30}],"deliverySlot":"evening"},
	{"orderId":"ORD-2","customerName":"Bala","hotelName":"B","total":50,"status":"Delivered"},
	{"customerName":"Chitra","total":20}
]`

func newRepo(t *testing.T, store storage.Store) repository.Order {
	t.Helper()

	repo := repository.New(store, mocks.NewOtel())
	repo.Load(context.Background())

	return repo
}

func seededStore(t *testing.T) storage.Store {
	t.Helper()

	store := storage.NewMemoryStore()
	assert.NoError(t, store.Save(context.Background(), constant.StorageKeyOrders, storedOrders, 0))

	return store
}

func TestOrderService_GetAll(t *testing.T) {
	svc := service.New(newRepo(t, seededStore(t)), mocks.NewOtel())

	tests := []struct {
		name    string
		filter  dto.OrderFilter
		wantIDs []string
	}{
		{name: "all orders", filter: dto.OrderFilter{}, wantIDs: []string{"1001", "ORD-2", "N/A"}},
		{name: "pending", filter: dto.OrderFilter{Status: constant.OrderStatusPending}, wantIDs: []string{"1001"}},
		{name: "cancelled", filter: dto.OrderFilter{Status: constant.OrderStatusCancelled}, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.GetAll(context.Background(), tt.filter)
			assert.NoError(t, err)

			ids := []string{}
			for _, order := range res.Orders {
				ids = append(ids, order.OrderID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestOrderService_Get(t *testing.T) {
	svc := service.New(newRepo(t, seededStore(t)), mocks.NewOtel())

	res, err := svc.Get(context.Background(), "1001")
	assert.NoError(t, err)
	assert.Equal(t, 1, res.ItemCount)
	assert.InDelta(t, 1.0, res.Items[0].Quantity, 1e-9)

	_, err = svc.Get(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestOrderService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		status      string
		wantApplied bool
		wantCode    int
		wantStatus  string
	}{
		{name: "numeric id", id: "1001", status: constant.OrderStatusConfirmed, wantApplied: true, wantStatus: constant.OrderStatusConfirmed},
		{name: "unknown id", id: "42", status: constant.OrderStatusConfirmed, wantApplied: false, wantStatus: constant.OrderStatusPending},
		{name: "same status", id: "1001", status: constant.OrderStatusPending, wantApplied: false, wantStatus: constant.OrderStatusPending},
		{name: "invalid status", id: "1001", status: "Shipped", wantCode: http.StatusBadRequest, wantStatus: constant.OrderStatusPending},
		{name: "empty status", id: "1001", status: "", wantCode: http.StatusBadRequest, wantStatus: constant.OrderStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := seededStore(t)
			repo := newRepo(t, store)
			svc := service.New(repo, mocks.NewOtel())

			applied, err := svc.UpdateStatus(ctx, tt.id, dto.UpdateStatusRequest{Status: tt.status})

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantApplied, applied)

			order, _ := repo.FindByID("1001")
			assert.Equal(t, tt.wantStatus, order.Status)

			// Storefront fields survive the rewrite.
			var raw string
			assert.NoError(t, store.Get(ctx, constant.StorageKeyOrders, &raw))
			assert.Contains(t, raw, `"deliverySlot":"evening"`)
		})
	}
}

func TestOrderService_UpdateStatusStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockStore := storageMocks.NewMockStore(ctrl)

	mockStore.EXPECT().
		Get(gomock.Any(), constant.StorageKeyOrders, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*(value.(*string)) = storedOrders

			return nil
		}).
		Times(2)
	mockStore.EXPECT().
		Save(gomock.Any(), constant.StorageKeyOrders, gomock.Any(), 0).
		Return(errors.New("connection refused"))

	repo := newRepo(t, mockStore)
	svc := service.New(repo, mocks.NewOtel())

	applied, err := svc.UpdateStatus(ctx, "ORD-2", dto.UpdateStatusRequest{Status: constant.OrderStatusCancelled})

	assert.False(t, applied)
	assert.Equal(t, http.StatusInsufficientStorage, failure.GetCode(err))

	order, _ := repo.FindByID("ORD-2")
	assert.Equal(t, constant.OrderStatusDelivered, order.Status)
}

func TestOrderService_UpdateStatusKeepsOtherOrders(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	assert.NoError(t, store.Save(ctx, constant.StorageKeyOrders,
		`[{"orderId":"A","total":10,"status":"Pending"},{"orderId":"B","customerName":42,"total":5,"timestamp":true}]`, 0))

	repo := newRepo(t, store)
	svc := service.New(repo, mocks.NewOtel())

	// the storefront places an order after the admin service loaded its snapshot
	assert.NoError(t, store.Save(ctx, constant.StorageKeyOrders,
		`[{"orderId":"A","total":10,"status":"Pending"},{"orderId":"B","customerName":42,"total":5,"timestamp":true},{"orderId":"NEW","total":7,"status":"Pending"}]`, 0))

	applied, err := svc.UpdateStatus(ctx, "A", dto.UpdateStatusRequest{Status: constant.OrderStatusDelivered})
	assert.NoError(t, err)
	assert.True(t, applied)

	var raw string
	assert.NoError(t, store.Get(ctx, constant.StorageKeyOrders, &raw))
	assert.Contains(t, raw, `"status":"Delivered"`)
	assert.Contains(t, raw, `"orderId":"B"`)
	assert.Contains(t, raw, `"customerName":42`)
	assert.Contains(t, raw, `"orderId":"NEW"`)

	_, ok := repo.FindByID("NEW")
	assert.True(t, ok)
}
