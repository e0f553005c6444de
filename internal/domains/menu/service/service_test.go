package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"saapadu/infras/otel/mocks"
	hotelMocks "saapadu/internal/domains/hotel/mocks"
	hotelModel "saapadu/internal/domains/hotel/model"
	hotelRepo "saapadu/internal/domains/hotel/repository"
	"saapadu/internal/domains/menu/model/dto"
	"saapadu/internal/domains/menu/service"
	"saapadu/internal/events"
	eventMocks "saapadu/internal/events/mocks"
	"saapadu/shared/constant"
	"saapadu/shared/failure"
	gRepo "saapadu/shared/repository"
	"saapadu/shared/storage"
)

const storedHotels = `[
	{"id":1,"name":"A","menu":{"breakfast":[{"name":"Idli","price":30},{"name":"Dosa","price":40}],"lunch":[]}},
	{"id":2,"name":"B","menu":{"dinner":["Parotta"]}}
]`

func newRepo(t *testing.T) hotelRepo.Hotel {
	t.Helper()

	ctx := context.Background()
	store := storage.NewMemoryStore()
	assert.NoError(t, store.Save(ctx, constant.StorageKeyHotels, storedHotels, 0))

	repo := hotelRepo.New(store, mocks.NewOtel())
	repo.Load(ctx)

	return repo
}

func TestMenuService_GetAll(t *testing.T) {
	svc := service.New(newRepo(t), mocks.NewOtel(), nil)

	tests := []struct {
		name    string
		filter  dto.MenuFilter
		wantIDs []string
	}{
		{
			name:    "no filter",
			filter:  dto.MenuFilter{},
			wantIDs: []string{"1-breakfast-0", "1-breakfast-1", "2-dinner-0"},
		},
		{
			name:    "hotel only",
			filter:  dto.MenuFilter{HotelID: 1},
			wantIDs: []string{"1-breakfast-0", "1-breakfast-1"},
		},
		{
			name:    "hotel and category",
			filter:  dto.MenuFilter{HotelID: 1, Category: constant.MenuCategoryDinner},
			wantIDs: []string{},
		},
		{
			name:    "category only",
			filter:  dto.MenuFilter{Category: constant.MenuCategoryDinner},
			wantIDs: []string{"2-dinner-0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.GetAll(context.Background(), tt.filter)

			assert.NoError(t, err)

			ids := []string{}
			for _, item := range res.Items {
				ids = append(ids, item.ID)
				assert.True(t, tt.filter.Match(item))
			}

			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, len(tt.wantIDs), res.TotalData)
		})
	}
}

func TestMenuService_Get(t *testing.T) {
	svc := service.New(newRepo(t), mocks.NewOtel(), nil)

	res, err := svc.Get(context.Background(), "2-dinner-0")
	assert.NoError(t, err)
	assert.Equal(t, "Parotta", res.Name)
	assert.InDelta(t, 50.0, res.Price, 1e-9)

	for _, id := range []string{"2-dinner-1", "9-lunch-0", "garbage"} {
		_, err = svc.Get(context.Background(), id)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err), id)
	}
}

func TestMenuService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBus := eventMocks.NewMockBus(ctrl)

	tests := []struct {
		name      string
		req       dto.CreateMenuItemRequest
		setupMock func()
		wantID    string
		wantCode  int
	}{
		{
			name: "appended to the hotel category",
			req:  dto.CreateMenuItemRequest{HotelID: 1, Category: constant.MenuCategoryBreakfast, Name: "Pongal", Price: 45},
			setupMock: func() {
				mockBus.EXPECT().Publish(gomock.Any(), events.TopicHotelsChanged).Times(1)
			},
			wantID: "1-breakfast-2",
		},
		{
			name: "empty category",
			req:  dto.CreateMenuItemRequest{HotelID: 1, Category: constant.MenuCategoryLunch, Name: "Meals", Price: 90},
			setupMock: func() {
				mockBus.EXPECT().Publish(gomock.Any(), events.TopicHotelsChanged).Times(1)
			},
			wantID: "1-lunch-0",
		},
		{
			name:      "unknown hotel",
			req:       dto.CreateMenuItemRequest{HotelID: 7, Category: constant.MenuCategoryLunch, Name: "Meals"},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			repo := newRepo(t)
			svc := service.New(repo, mocks.NewOtel(), mockBus)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)

			hotel, _ := repo.FindByID(tt.req.HotelID)
			entries := hotel.Menu.Category(tt.req.Category)
			assert.Equal(t, tt.req.Name, entries[len(entries)-1].Name)
		})
	}
}

func TestMenuService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBus := eventMocks.NewMockBus(ctrl)

	tests := []struct {
		name        string
		id          string
		req         dto.UpdateMenuItemRequest
		setupMock   func()
		wantApplied bool
		check       func(t *testing.T, repo hotelRepo.Hotel)
	}{
		{
			name: "in place",
			id:   "1-breakfast-1",
			req:  dto.UpdateMenuItemRequest{HotelID: 1, Category: constant.MenuCategoryBreakfast, Name: "Ghee Dosa", Price: 60},
			setupMock: func() {
				mockBus.EXPECT().Publish(gomock.Any(), events.TopicHotelsChanged).Times(1)
			},
			wantApplied: true,
			check: func(t *testing.T, repo hotelRepo.Hotel) {
				hotel, _ := repo.FindByID(1)
				assert.Equal(t, "Ghee Dosa", hotel.Menu.Breakfast[1].Name)
				assert.InDelta(t, 60.0, hotel.Menu.Breakfast[1].Price.Float(), 1e-9)
			},
		},
		{
			name: "moved to another hotel",
			id:   "1-breakfast-0",
			req:  dto.UpdateMenuItemRequest{HotelID: 2, Category: constant.MenuCategoryDinner, Name: "Idli", Price: 30},
			setupMock: func() {
				mockBus.EXPECT().Publish(gomock.Any(), events.TopicHotelsChanged).Times(1)
			},
			wantApplied: true,
			check: func(t *testing.T, repo hotelRepo.Hotel) {
				first, _ := repo.FindByID(1)
				second, _ := repo.FindByID(2)
				assert.Len(t, first.Menu.Breakfast, 1)
				assert.Equal(t, "Dosa", first.Menu.Breakfast[0].Name)
				assert.Len(t, second.Menu.Dinner, 2)
				assert.Equal(t, "Idli", second.Menu.Dinner[1].Name)
			},
		},
		{
			name:        "unknown item",
			id:          "1-dinner-4",
			req:         dto.UpdateMenuItemRequest{HotelID: 1, Category: constant.MenuCategoryDinner, Name: "x"},
			setupMock:   func() {},
			wantApplied: false,
			check: func(t *testing.T, repo hotelRepo.Hotel) {
				hotel, _ := repo.FindByID(1)
				assert.Equal(t, 2, hotel.Menu.Count())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			repo := newRepo(t)
			svc := service.New(repo, mocks.NewOtel(), mockBus)

			applied, err := svc.Update(context.Background(), tt.req, tt.id)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantApplied, applied)
			tt.check(t, repo)
		})
	}
}

func TestMenuService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBus := eventMocks.NewMockBus(ctrl)
	mockBus.EXPECT().Publish(gomock.Any(), events.TopicHotelsChanged).Times(1)

	repo := newRepo(t)
	svc := service.New(repo, mocks.NewOtel(), mockBus)

	applied, err := svc.Delete(context.Background(), "1-breakfast-0")
	assert.NoError(t, err)
	assert.True(t, applied)

	applied, err = svc.Delete(context.Background(), "1-breakfast-5")
	assert.NoError(t, err)
	assert.False(t, applied)

	hotel, _ := repo.FindByID(1)
	assert.Equal(t, []string{"Dosa"}, []string{hotel.Menu.Breakfast[0].Name})
	assert.Len(t, hotel.Menu.Breakfast, 1)
}

func TestMenuService_StorageFailureLeavesMenuUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := hotelMocks.NewMockHotel(ctrl)
	mockBus := eventMocks.NewMockBus(ctrl)

	original := []hotelModel.Hotel{{ID: 1, Name: "A", Menu: hotelModel.DefaultMenu()}}

	mockRepo.EXPECT().
		Mutate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn gRepo.MutateFunc[hotelModel.Hotel]) (bool, error) {
			working := append([]hotelModel.Hotel(nil), original...)
			_, _, _ = fn(working)

			return false, failure.StorageWrite(errors.New("quota exceeded"))
		})

	svc := service.New(mockRepo, mocks.NewOtel(), mockBus)

	_, err := svc.Delete(context.Background(), "1-breakfast-0")

	assert.Equal(t, http.StatusInsufficientStorage, failure.GetCode(err))
	assert.Equal(t, "Idli", original[0].Menu.Breakfast[0].Name)
	assert.Len(t, original[0].Menu.Breakfast, 2)
}

func TestMenuService_WritesKeepStorefrontMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	store := storage.NewMemoryStore()
	assert.NoError(t, store.Save(ctx, constant.StorageKeyHotels, `[{"id":1,"name":"A","menu":{
		"breakfast":[{"name":"Idli","price":30,"isVeg":true,"image":"idli.png"},{"name":42}],
		"specials":[{"name":"Kari Dosa"}]
	}}]`, 0))

	repo := hotelRepo.New(store, mocks.NewOtel())
	repo.Load(ctx)

	mockBus := eventMocks.NewMockBus(ctrl)
	mockBus.EXPECT().Publish(gomock.Any(), events.TopicHotelsChanged).Times(2)

	svc := service.New(repo, mocks.NewOtel(), mockBus)

	_, err := svc.Create(ctx, dto.CreateMenuItemRequest{HotelID: 1, Category: constant.MenuCategoryDinner, Name: "Naan", Price: 35})
	assert.NoError(t, err)

	applied, err := svc.Update(ctx, dto.UpdateMenuItemRequest{HotelID: 1, Category: constant.MenuCategoryBreakfast, Name: "Idli", Price: 35}, "1-breakfast-0")
	assert.NoError(t, err)
	assert.True(t, applied)

	var raw string
	assert.NoError(t, store.Get(ctx, constant.StorageKeyHotels, &raw))
	assert.Contains(t, raw, `{"image":"idli.png","isVeg":true,"name":"Idli","price":35}`)
	assert.Contains(t, raw, `{"name":42}`)
	assert.Contains(t, raw, `"specials":[{"name":"Kari Dosa"}]`)
	assert.Contains(t, raw, `"name":"Naan"`)
}
