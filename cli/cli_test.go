package cli_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"saapadu/cli"
	"saapadu/config"
	"saapadu/infras/otel/mocks"
	dashboardDto "saapadu/internal/domains/dashboard/model/dto"
	dashboardMocks "saapadu/internal/domains/dashboard/mocks"
	donationRepo "saapadu/internal/domains/donation/repository"
	hotelRepo "saapadu/internal/domains/hotel/repository"
	hotelService "saapadu/internal/domains/hotel/service"
	orderRepo "saapadu/internal/domains/order/repository"
	promoRepo "saapadu/internal/domains/promo/repository"
	promoService "saapadu/internal/domains/promo/service"
	reviewRepo "saapadu/internal/domains/review/repository"
	reviewService "saapadu/internal/domains/review/service"
	userRepo "saapadu/internal/domains/user/repository"
	"saapadu/internal/events"
	"saapadu/internal/view"
	"saapadu/shared/constant"
	"saapadu/shared/storage"
)

const seedYAML = `
hotels:
  - name: Saravana
    area: T Nagar
    cuisine: South Indian
    distance: 2.5
    minPrice: 100
    deliveryFee: 20
orders:
  - customerName: Anu
    email: anu@x.com
    hotelName: Saravana
    total: 70
    status: Delivered
    timestamp: "2026-10-01T09:00:00Z"
    items:
      - name: Idli
        price: 30
      - name: Dosa
        price: 40
donations:
  - donor: Bala
    hotel: Saravana
    orphanage: Anbu Illam
    items: 20 x Idli
    amount: 600
    date: "2026-10-02T09:00:00Z"
reviews:
  - customerName: Chitra
    rating: 4
    comment: Soft idli
promoCodes:
  - code: welcome10
    discountType: percentage
    discountValue: 10
    expiryDate: "2026-12-31"
users:
  - name: Anu
    email: anu@x.com
    phone: "9000000000"
`

var now = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func writeSeedFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	return path
}

type stack struct {
	seeder    cli.Seeder
	hotels    hotelRepo.Hotel
	orders    orderRepo.Order
	donations donationRepo.Donation
	reviews   reviewRepo.Review
	promos    promoRepo.PromoCode
	users     userRepo.User
	bus       events.Bus
}

func newStack() stack {
	store := storage.NewMemoryStore()
	otl := mocks.NewOtel()
	bus := events.New(otl)

	s := stack{
		hotels:    hotelRepo.New(store, otl),
		orders:    orderRepo.New(store, otl),
		donations: donationRepo.New(store, otl),
		reviews:   reviewRepo.New(store, otl),
		promos:    promoRepo.New(store, otl),
		users:     userRepo.New(store, otl),
		bus:       bus,
	}

	s.seeder = cli.Seeder{
		Hotels:    hotelService.New(s.hotels, &config.Config{}, otl, nil, bus),
		Reviews:   reviewService.New(s.reviews, s.hotels, otl),
		Promos:    promoService.New(s.promos, otl),
		Orders:    s.orders,
		Donations: s.donations,
		Users:     s.users,
		Store:     store,
	}

	return s
}

func TestLoadSeedFile(t *testing.T) {
	data, err := cli.LoadSeedFile(writeSeedFile(t))
	assert.NoError(t, err)

	assert.Len(t, data.Hotels, 1)
	assert.Equal(t, "Saravana", data.Hotels[0].Name)
	assert.InDelta(t, 2.5, data.Hotels[0].Distance, 0.001)
	assert.InDelta(t, 100, data.Hotels[0].MinPrice, 0.001)

	assert.Len(t, data.Orders, 1)
	assert.Len(t, data.Orders[0].Items, 2)
	assert.Equal(t, 2026, data.Orders[0].Timestamp.Year())

	assert.Len(t, data.Donations, 1)
	assert.Len(t, data.Reviews, 1)
	assert.Equal(t, 4, data.Reviews[0].Rating)
	assert.Len(t, data.PromoCodes, 1)
	assert.Equal(t, "welcome10", data.PromoCodes[0].Code)
	assert.Len(t, data.Users, 1)
	assert.Equal(t, 6, data.Len())
}

func TestLoadSeedFile_Missing(t *testing.T) {
	_, err := cli.LoadSeedFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestFake(t *testing.T) {
	counts := cli.Counts{Hotels: 3, Orders: 10, Donations: 4, Reviews: 5, PromoCodes: 2, Users: 6}

	first := cli.Fake(7, counts, now)
	second := cli.Fake(7, counts, now)

	assert.Equal(t, first, second)
	assert.Len(t, first.Hotels, 3)
	assert.Len(t, first.Orders, 10)
	assert.Len(t, first.Donations, 4)
	assert.Len(t, first.Reviews, 5)
	assert.Len(t, first.PromoCodes, 2)
	assert.Len(t, first.Users, 6)

	for _, order := range first.Orders {
		assert.Contains(t, constant.OrderStatuses, order.Status)
		assert.NotEmpty(t, order.Items)
	}

	for _, review := range first.Reviews {
		assert.Zero(t, review.HotelID)
		assert.GreaterOrEqual(t, review.Rating, 1)
		assert.LessOrEqual(t, review.Rating, 5)
	}
}

func TestSeeder_Seed(t *testing.T) {
	s := newStack()
	ctx := context.Background()

	data, err := cli.LoadSeedFile(writeSeedFile(t))
	assert.NoError(t, err)

	summary, err := s.seeder.Seed(ctx, data, io.Discard)
	s.bus.Wait()

	assert.NoError(t, err)
	assert.Equal(t, cli.SeedSummary{Hotels: 1, Orders: 1, Donations: 1, Reviews: 1, PromoCodes: 1, Users: 1}, summary)

	hotel, ok := s.hotels.FindByID(1)
	assert.True(t, ok)
	assert.Equal(t, "Saravana", hotel.Name)

	reviews := s.reviews.All()
	assert.Len(t, reviews, 1)
	assert.Equal(t, "1", reviews[0].HotelID.String())
	assert.Equal(t, "Saravana", reviews[0].HotelName)

	orders := s.orders.All()
	assert.Len(t, orders, 1)
	assert.False(t, orders[0].OrderID.IsZero())
	assert.InDelta(t, 70, orders[0].Total.Float(), 0.001)

	assert.Equal(t, 1, s.donations.Len())
	assert.Equal(t, 1, s.users.Len())
	assert.Equal(t, "WELCOME10", s.promos.All()[0].Code)
}

func TestSeeder_SeedAppends(t *testing.T) {
	s := newStack()
	ctx := context.Background()

	data := cli.Fake(1, cli.Counts{Hotels: 2, Orders: 5, Donations: 2, Reviews: 3, Users: 2}, now)

	_, err := s.seeder.Seed(ctx, data, io.Discard)
	assert.NoError(t, err)

	_, err = s.seeder.Seed(ctx, data, io.Discard)
	assert.NoError(t, err)

	s.bus.Wait()

	assert.Equal(t, 4, s.hotels.Len())
	assert.Equal(t, 10, s.orders.Len())
	assert.Equal(t, 4, s.donations.Len())
	assert.Equal(t, 6, s.reviews.Len())
	assert.Equal(t, 4, s.users.Len())
}

func TestSeeder_InvalidReview(t *testing.T) {
	s := newStack()

	data := cli.SeedData{}
	data.Reviews = append(data.Reviews, cli.Fake(1, cli.Counts{Reviews: 1}, now).Reviews...)
	data.Reviews[0].HotelID = 99

	summary, err := s.seeder.Seed(context.Background(), data, io.Discard)

	assert.Error(t, err)
	assert.Zero(t, summary.Reviews)
	assert.Zero(t, s.reviews.Len())
}

func TestReport(t *testing.T) {
	hotels := view.Table{Title: "Hotels", Columns: []string{"ID", "Name"}, Rows: [][]string{{"1", "Saravana"}}}
	orders := view.Table{Title: "Orders", Columns: []string{"Order ID"}, Placeholder: "No orders found"}

	tests := []struct {
		name      string
		panels    []string
		setupMock func(dashboard *dashboardMocks.MockDashboard)
		wantErr   bool
		contains  []string
	}{
		{
			name:   "named panels in order",
			panels: []string{view.PanelHotels, view.PanelOrders},
			setupMock: func(dashboard *dashboardMocks.MockDashboard) {
				gomock.InOrder(
					dashboard.EXPECT().
						Panel(gomock.Any(), dashboardDto.PanelQuery{Panel: view.PanelHotels, Status: constant.OrderStatusPending}).
						Return(hotels, nil),
					dashboard.EXPECT().
						Panel(gomock.Any(), dashboardDto.PanelQuery{Panel: view.PanelOrders, Status: constant.OrderStatusPending}).
						Return(orders, nil),
				)
			},
			contains: []string{"Hotels", "Saravana", "No orders found"},
		},
		{
			name: "every panel when none named",
			setupMock: func(dashboard *dashboardMocks.MockDashboard) {
				dashboard.EXPECT().Panel(gomock.Any(), gomock.Any()).Return(hotels, nil).Times(len(view.Panels))
			},
			contains: []string{"Saravana"},
		},
		{
			name:   "panel error stops the report",
			panels: []string{"unknown"},
			setupMock: func(dashboard *dashboardMocks.MockDashboard) {
				dashboard.EXPECT().Panel(gomock.Any(), gomock.Any()).Return(view.Table{}, errors.New("boom"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			dashboard := dashboardMocks.NewMockDashboard(ctrl)
			tt.setupMock(dashboard)

			var buf bytes.Buffer

			err := cli.Report(context.Background(), dashboard, &buf, view.FormatText,
				dashboardDto.PanelQuery{Status: constant.OrderStatusPending}, tt.panels)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
