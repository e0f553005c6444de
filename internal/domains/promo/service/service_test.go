package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"saapadu/infras/otel/mocks"
	promoMocks "saapadu/internal/domains/promo/mocks"
	"saapadu/internal/domains/promo/model"
	"saapadu/internal/domains/promo/model/dto"
	"saapadu/internal/domains/promo/repository"
	"saapadu/internal/domains/promo/service"
	"saapadu/shared/constant"
	"saapadu/shared/failure"
	gModel "saapadu/shared/model"
	gRepo "saapadu/shared/repository"
	"saapadu/shared/storage"
)

const storedPromos = `[
	{"id":1735600000000,"code":"SAVE10","discountType":"percentage","discountValue":10,"minOrderValue":100,"expiryDate":"2026-12-31","active":true,"createdDate":"1/1/2026","usageCount":4},
	{"id":"p2","code":"FLAT50","discountType":"fixed","discountValue":50,"minOrderValue":300,"expiryDate":"2026-06-30","active":false,"createdDate":"2026-01-02","usageCount":0}
]`

func newService(t *testing.T) (service.PromoCode, repository.PromoCode, storage.Store) {
	t.Helper()

	ctx := context.Background()
	store := storage.NewMemoryStore()
	assert.NoError(t, store.Save(ctx, constant.StorageKeyPromoCodes, storedPromos, 0))

	repo := repository.New(store, mocks.NewOtel())
	repo.Load(ctx)

	return service.New(repo, mocks.NewOtel()), repo, store
}

func TestPromoService_Create(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CreatePromoCodeRequest
		wantCode int
		wantText string
	}{
		{
			name:     "code is trimmed and upper-cased",
			req:      dto.CreatePromoCodeRequest{Code: "  diwali20 ", DiscountType: "percentage", DiscountValue: 20, MinOrderValue: 200, ExpiryDate: "2026-11-10"},
			wantText: "20%",
		},
		{
			name:     "fixed discount",
			req:      dto.CreatePromoCodeRequest{Code: "rs75", DiscountType: "fixed", DiscountValue: 75, ExpiryDate: "2026-11-10"},
			wantText: "₹75",
		},
		{
			name:     "percentage above 100",
			req:      dto.CreatePromoCodeRequest{Code: "free", DiscountType: "percentage", DiscountValue: 150, ExpiryDate: "2026-11-10"},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Equal(t, 2, repo.Len())

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, dto.NormalizeCode(tt.req.Code), res.Code)
			assert.Equal(t, tt.wantText, res.Discount)
			assert.True(t, res.Active)
			assert.Equal(t, 0, res.UsageCount)
			assert.Equal(t, 3, repo.Len())
		})
	}
}

func TestPromoService_UpdateToggleDelete(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()

	code := " monsoon "
	value := gModel.Number(15)

	applied, err := svc.Update(ctx, dto.UpdatePromoCodeRequest{Code: &code, DiscountValue: &value}, "1735600000000")
	assert.NoError(t, err)
	assert.True(t, applied)

	promo, _ := repo.FindByID("1735600000000")
	assert.Equal(t, "MONSOON", promo.Code)
	assert.InDelta(t, 15.0, promo.DiscountValue.Float(), 1e-9)
	assert.Equal(t, 4, promo.UsageCount)

	applied, err = svc.Update(ctx, dto.UpdatePromoCodeRequest{}, "p2")
	assert.NoError(t, err)
	assert.False(t, applied)

	applied, err = svc.Toggle(ctx, "p2")
	assert.NoError(t, err)
	assert.True(t, applied)

	promo, _ = repo.FindByID("p2")
	assert.True(t, promo.Active)

	applied, err = svc.Delete(ctx, "p2")
	assert.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, 1, repo.Len())
}

func TestPromoService_DeleteAbsentID(t *testing.T) {
	svc, repo, store := newService(t)
	ctx := context.Background()

	before := repo.All()

	applied, err := svc.Delete(ctx, "does-not-exist")

	assert.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, before, repo.All())

	var raw string
	assert.NoError(t, store.Get(ctx, constant.StorageKeyPromoCodes, &raw))
	assert.Equal(t, storedPromos, raw)
}

func TestPromoService_ToggleDoesNotPersistWhenAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := promoMocks.NewMockPromoCode(ctrl)
	mockRepo.EXPECT().
		Mutate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn gRepo.MutateFunc[model.PromoCode]) (bool, error) {
			_, changed, err := fn([]model.PromoCode{{ID: gModel.NewID("p1")}})

			return changed, err
		})

	svc := service.New(mockRepo, mocks.NewOtel())

	applied, err := svc.Toggle(context.Background(), "p9")

	assert.NoError(t, err)
	assert.False(t, applied)
}
