package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"saapadu/config"
	"saapadu/infras/otel/mocks"
	s3Mocks "saapadu/infras/s3/mocks"
	hotelMocks "saapadu/internal/domains/hotel/mocks"
	"saapadu/internal/domains/hotel/model"
	"saapadu/internal/domains/hotel/model/dto"
	"saapadu/internal/domains/hotel/repository"
	"saapadu/internal/domains/hotel/service"
	"saapadu/internal/events"
	eventMocks "saapadu/internal/events/mocks"
	"saapadu/shared/constant"
	"saapadu/shared/failure"
	gRepo "saapadu/shared/repository"
	"saapadu/shared/storage"
)

func seededRepo(t *testing.T, hotels ...model.Hotel) repository.Hotel {
	t.Helper()

	ctx := context.Background()
	store := storage.NewMemoryStore()

	if hotels != nil {
		assert.NoError(t, store.Save(ctx, constant.StorageKeyHotels, hotels, 0))
	}

	repo := repository.New(store, mocks.NewOtel())
	repo.Load(ctx)

	return repo
}

func TestHotelService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockBus := eventMocks.NewMockBus(ctrl)

	tests := []struct {
		name      string
		existing  []model.Hotel
		req       dto.CreateHotelRequest
		s3Enabled bool
		setupMock func()
		wantID    int
		wantImage string
	}{
		{
			name:     "first hotel gets id 1",
			existing: nil,
			req:      dto.CreateHotelRequest{Name: "Annapoorna", Area: "RS Puram"},
			setupMock: func() {
				mockBus.EXPECT().Publish(gomock.Any(), events.TopicHotelsChanged).Times(1)
			},
			wantID:    1,
			wantImage: constant.ImagePlaceholder,
		},
		{
			name:     "id is max plus one",
			existing: []model.Hotel{{ID: 2, Name: "A"}, {ID: 7, Name: "B"}, {ID: 4, Name: "C"}},
			req:      dto.CreateHotelRequest{Name: "Haribhavanam", ImageURL: "https://cdn.example.com/h.png"},
			setupMock: func() {
				mockBus.EXPECT().Publish(gomock.Any(), events.TopicHotelsChanged).Times(1)
			},
			wantID:    8,
			wantImage: "https://cdn.example.com/h.png",
		},
		{
			name:      "embedded image is uploaded",
			req:       dto.CreateHotelRequest{Name: "Valarmathi", ImageURL: "data:image/png;base64,aGVsbG8="},
			s3Enabled: true,
			setupMock: func() {
				mockS3.EXPECT().
					Put(gomock.Any(), gomock.Any(), "image/png", []byte("hello")).
					DoAndReturn(func(_ context.Context, key, _ string, _ []byte) (string, error) {
						assert.True(t, strings.HasPrefix(key, model.ImageDirectory+"/"))
						assert.True(t, strings.HasSuffix(key, ".png"))

						return "https://cdn.example.com/hotels/x.png", nil
					})
				mockBus.EXPECT().Publish(gomock.Any(), events.TopicHotelsChanged).Times(1)
			},
			wantID:    1,
			wantImage: "https://cdn.example.com/hotels/x.png",
		},
		{
			name:      "embedded image kept when object storage is disabled",
			req:       dto.CreateHotelRequest{Name: "Valarmathi", ImageURL: "data:image/png;base64,aGVsbG8="},
			s3Enabled: false,
			setupMock: func() {
				mockBus.EXPECT().Publish(gomock.Any(), events.TopicHotelsChanged).Times(1)
			},
			wantID:    1,
			wantImage: "data:image/png;base64,aGVsbG8=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			cfg := &config.Config{}
			cfg.External.S3.Enable = tt.s3Enabled

			repo := seededRepo(t, tt.existing...)
			svc := service.New(repo, cfg, mocks.NewOtel(), mockS3, mockBus)

			res, err := svc.Create(context.Background(), tt.req)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
			assert.Equal(t, tt.wantImage, res.ImageURL)
			assert.Equal(t, model.DefaultRating, res.Rating)
			assert.Equal(t, model.DefaultReviews, res.Reviews)
			assert.Equal(t, model.DefaultMenu().Count(), res.MenuCount)
			assert.Equal(t, len(tt.existing)+1, repo.Len())
		})
	}
}

func TestHotelService_CreateStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := hotelMocks.NewMockHotel(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockBus := eventMocks.NewMockBus(ctrl)

	cfg := &config.Config{}
	cfg.External.S3.Enable = true

	svc := service.New(mockRepo, cfg, mocks.NewOtel(), mockS3, mockBus)

	mockS3.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("https://cdn.example.com/hotels/x.png", nil)
	mockRepo.EXPECT().
		Mutate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn gRepo.MutateFunc[model.Hotel]) (bool, error) {
			_, _, _ = fn([]model.Hotel{})

			return false, failure.StorageWrite(errors.New("disk full"))
		})
	mockS3.EXPECT().Remove(gomock.Any(), "https://cdn.example.com/hotels/x.png").Return(true, nil)

	_, err := svc.Create(context.Background(), dto.CreateHotelRequest{
		Name:     "Annapoorna",
		ImageURL: "data:image/png;base64,aGVsbG8=",
	})

	assert.Error(t, err)
	assert.Equal(t, http.StatusInsufficientStorage, failure.GetCode(err))
}

func TestHotelService_Get(t *testing.T) {
	repo := seededRepo(t, model.Hotel{ID: 3, Name: "Annapoorna", Menu: model.DefaultMenu()})
	svc := service.New(repo, &config.Config{}, mocks.NewOtel(), nil, nil)

	tests := []struct {
		name     string
		id       int
		wantCode int
	}{
		{name: "existing hotel", id: 3},
		{name: "unknown hotel", id: 9, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Annapoorna", res.Name)
			assert.Equal(t, 8, res.MenuCount)
		})
	}
}

func TestHotelService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBus := eventMocks.NewMockBus(ctrl)

	menu := model.Menu{Breakfast: []model.MenuEntry{model.NewMenuEntry("Pongal", 45, "")}}
	existing := model.Hotel{ID: 1, Name: "Old", Rating: 3.9, Reviews: 12, Menu: menu, ImageURL: constant.ImagePlaceholder}

	tests := []struct {
		name        string
		id          int
		setupMock   func()
		wantApplied bool
	}{
		{
			name: "existing hotel keeps menu, rating and reviews",
			id:   1,
			setupMock: func() {
				mockBus.EXPECT().Publish(gomock.Any(), events.TopicHotelsChanged).Times(1)
			},
			wantApplied: true,
		},
		{
			name:        "unknown hotel is a no-op",
			id:          42,
			setupMock:   func() {},
			wantApplied: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			repo := seededRepo(t, existing)
			svc := service.New(repo, &config.Config{}, mocks.NewOtel(), nil, mockBus)

			applied, err := svc.Update(context.Background(), dto.UpdateHotelRequest{Name: "New", Cuisine: "South Indian"}, tt.id)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantApplied, applied)

			hotel, ok := repo.FindByID(1)
			assert.True(t, ok)

			if tt.wantApplied {
				assert.Equal(t, "New", hotel.Name)
				assert.Equal(t, "South Indian", hotel.Cuisine)
			} else {
				assert.Equal(t, "Old", hotel.Name)
			}

			assert.Equal(t, menu, hotel.Menu)
			assert.InDelta(t, 3.9, hotel.Rating.Float(), 0.0001)
			assert.Equal(t, 12, hotel.Reviews)
		})
	}
}

func TestHotelService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBus := eventMocks.NewMockBus(ctrl)

	tests := []struct {
		name        string
		id          int
		setupMock   func()
		wantApplied bool
		wantLen     int
	}{
		{
			name: "removes exactly one hotel",
			id:   2,
			setupMock: func() {
				mockBus.EXPECT().Publish(gomock.Any(), events.TopicHotelsChanged).Times(1)
			},
			wantApplied: true,
			wantLen:     2,
		},
		{
			name:        "unknown id removes nothing",
			id:          99,
			setupMock:   func() {},
			wantApplied: false,
			wantLen:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			repo := seededRepo(t, model.Hotel{ID: 1}, model.Hotel{ID: 2}, model.Hotel{ID: 3})
			svc := service.New(repo, &config.Config{}, mocks.NewOtel(), nil, mockBus)

			applied, err := svc.Delete(context.Background(), tt.id)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantApplied, applied)
			assert.Equal(t, tt.wantLen, repo.Len())

			_, found := repo.FindByID(tt.id)
			assert.False(t, found)
		})
	}
}

func TestHotelService_UpdateImage(t *testing.T) {
	const uploaded = "https://cdn.example.com/hotels/old.png"

	tests := []struct {
		name      string
		imageURL  string
		setupMock func(s3 *s3Mocks.MockS3)
		wantImage string
	}{
		{
			name:      "omitted image keeps the current one",
			imageURL:  "",
			setupMock: func(s3 *s3Mocks.MockS3) {},
			wantImage: uploaded,
		},
		{
			name:     "new image replaces and removes the old object",
			imageURL: "https://images.example.com/new.jpg",
			setupMock: func(s3 *s3Mocks.MockS3) {
				s3.EXPECT().Remove(gomock.Any(), uploaded).Return(true, nil)
			},
			wantImage: "https://images.example.com/new.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockS3 := s3Mocks.NewMockS3(ctrl)
			mockBus := eventMocks.NewMockBus(ctrl)

			tt.setupMock(mockS3)
			mockBus.EXPECT().Publish(gomock.Any(), events.TopicHotelsChanged).Times(1)

			cfg := &config.Config{}
			cfg.External.S3.Enable = true

			repo := seededRepo(t, model.Hotel{ID: 1, Name: "Old", ImageURL: uploaded, Menu: model.DefaultMenu()})
			svc := service.New(repo, cfg, mocks.NewOtel(), mockS3, mockBus)

			applied, err := svc.Update(context.Background(), dto.UpdateHotelRequest{Name: "New", ImageURL: tt.imageURL}, 1)

			assert.NoError(t, err)
			assert.True(t, applied)

			hotel, _ := repo.FindByID(1)
			assert.Equal(t, tt.wantImage, hotel.ImageURL)
		})
	}
}
