package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"saapadu/infras/otel/mocks"
	donationMocks "saapadu/internal/domains/donation/mocks"
	"saapadu/internal/domains/donation/model"
	"saapadu/internal/domains/donation/service"
	gModel "saapadu/shared/model"
)

func TestDonationService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := donationMocks.NewMockDonation(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantLen   int
		wantTotal float64
		check     func(t *testing.T, donor, hotel, items, date string)
	}{
		{
			name: "no donations",
			setupMock: func() {
				mockRepo.EXPECT().All().Return([]model.Donation{})
			},
		},
		{
			name: "missing members use display defaults",
			setupMock: func() {
				mockRepo.EXPECT().All().Return([]model.Donation{
					{Amount: 250},
					{ID: gModel.NewID("d2"), Donor: "Kavin", Amount: 100},
				})
			},
			wantLen:   2,
			wantTotal: 350,
			check: func(t *testing.T, donor, hotel, items, date string) {
				assert.Equal(t, "Anonymous", donor)
				assert.Equal(t, "N/A", hotel)
				assert.Equal(t, "N/A", items)
				assert.Equal(t, "N/A", date)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background())

			assert.NoError(t, err)
			assert.Len(t, res.Donations, tt.wantLen)
			assert.InDelta(t, tt.wantTotal, res.TotalAmount, 1e-9)

			if tt.check != nil {
				first := res.Donations[0]
				tt.check(t, first.Donor, first.Hotel, first.Items, first.Date)
			}
		})
	}
}
