package cli

import (
	"context"
	"fmt"
	"io"

	donationModel "saapadu/internal/domains/donation/model"
	donationRepo "saapadu/internal/domains/donation/repository"
	hotelService "saapadu/internal/domains/hotel/service"
	orderModel "saapadu/internal/domains/order/model"
	orderRepo "saapadu/internal/domains/order/repository"
	promoService "saapadu/internal/domains/promo/service"
	reviewService "saapadu/internal/domains/review/service"
	userRepo "saapadu/internal/domains/user/repository"
	"saapadu/shared/constant"
	"saapadu/shared/failure"
	gModel "saapadu/shared/model"
	"saapadu/shared/storage"
	"saapadu/shared/validator"

	"github.com/lucsky/cuid"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
)

type Seeder struct {
	Hotels    hotelService.Hotel
	Reviews   reviewService.Review
	Promos    promoService.PromoCode
	Orders    orderRepo.Order
	Donations donationRepo.Donation
	Users     userRepo.User
	Store     storage.Store
}

type SeedSummary struct {
	Hotels     int `json:"hotels"`
	Orders     int `json:"orders"`
	Donations  int `json:"donations"`
	Reviews    int `json:"reviews"`
	PromoCodes int `json:"promoCodes"`
	Users      int `json:"users"`
}

// Seed appends data to what is stored. Hotels, reviews and promo codes go through their
// managers so they get the same defaults and validation as API requests.
func (s *Seeder) Seed(ctx context.Context, data SeedData, progress io.Writer) (summary SeedSummary, err error) {
	if data.Len() == 0 {
		return summary, nil
	}

	bar := progressbar.NewOptions(data.Len(),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("seeding"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	defer func() {
		if finishErr := bar.Finish(); finishErr != nil {
			log.Warn().Err(finishErr).Msg("failed to finish progress bar")
		}
	}()

	hotelIDs := []int{}

	for _, req := range data.Hotels {
		if err := validator.ValidateStruct(&req); err != nil {
			return summary, fmt.Errorf("invalid hotel %q: %w", req.Name, err)
		}

		hotel, err := s.Hotels.Create(ctx, req)
		if err != nil {
			return summary, fmt.Errorf("failed to seed hotel %q: %w", req.Name, err)
		}

		hotelIDs = append(hotelIDs, hotel.ID)
		summary.Hotels++
		_ = bar.Add(1)
	}

	for index, req := range data.Reviews {
		if req.HotelID == 0 && len(hotelIDs) > 0 {
			req.HotelID = hotelIDs[index%len(hotelIDs)]
		}

		if err := validator.ValidateStruct(&req); err != nil {
			return summary, fmt.Errorf("invalid review: %w", err)
		}

		if _, err := s.Reviews.Create(ctx, req); err != nil {
			return summary, fmt.Errorf("failed to seed review: %w", err)
		}

		summary.Reviews++
		_ = bar.Add(1)
	}

	for _, req := range data.PromoCodes {
		if err := validator.ValidateStruct(&req); err != nil {
			return summary, fmt.Errorf("invalid promo code %q: %w", req.Code, err)
		}

		if _, err := s.Promos.Create(ctx, req); err != nil {
			return summary, fmt.Errorf("failed to seed promo code %q: %w", req.Code, err)
		}

		summary.PromoCodes++
		_ = bar.Add(1)
	}

	if summary.Orders, err = s.seedOrders(ctx, data.Orders); err != nil {
		return summary, err
	}

	_ = bar.Add(summary.Orders)

	if summary.Donations, err = s.seedDonations(ctx, data.Donations); err != nil {
		return summary, err
	}

	_ = bar.Add(summary.Donations)

	if summary.Users, err = s.seedUsers(ctx, data); err != nil {
		return summary, err
	}

	_ = bar.Add(summary.Users)

	return summary, nil
}

func (s *Seeder) seedOrders(ctx context.Context, seeds []SeedOrder) (int, error) {
	if len(seeds) == 0 {
		return 0, nil
	}

	orders := make([]orderModel.Order, 0, len(seeds))

	for _, seed := range seeds {
		if seed.Status == constant.Empty {
			seed.Status = constant.OrderStatusPending
		}

		items := make([]orderModel.OrderItem, 0, len(seed.Items))
		for _, item := range seed.Items {
			items = append(items, orderModel.OrderItem{
				Name:     item.Name,
				Price:    gModel.Number(item.Price),
				Quantity: gModel.Number(item.Quantity),
			})
		}

		orders = append(orders, orderModel.Order{
			OrderID:      gModel.NewID(cuid.Slug()),
			CustomerName: seed.CustomerName,
			Email:        seed.Email,
			Phone:        seed.Phone,
			HotelName:    seed.HotelName,
			Items:        items,
			Total:        gModel.Number(seed.Total),
			Status:       seed.Status,
			Timestamp:    gModel.NewTimestamp(seed.Timestamp),
		})
	}

	_, err := s.Orders.Mutate(ctx, func(existing []orderModel.Order) ([]orderModel.Order, bool, error) {
		return append(existing, orders...), true, nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to seed orders: %w", err)
	}

	return len(orders), nil
}

func (s *Seeder) seedDonations(ctx context.Context, seeds []SeedDonation) (int, error) {
	if len(seeds) == 0 {
		return 0, nil
	}

	donations := s.Donations.All()

	for _, seed := range seeds {
		donor := seed.Donor
		if donor == constant.Empty {
			donor = donationModel.AnonymousDonor
		}

		donations = append(donations, donationModel.Donation{
			ID:        gModel.NewID(cuid.New()),
			Donor:     donor,
			Hotel:     seed.Hotel,
			Orphanage: seed.Orphanage,
			Items:     gModel.Text{Value: seed.Items},
			Amount:    gModel.Number(seed.Amount),
			Date:      gModel.NewTimestamp(seed.Date),
		})
	}

	if err := s.Store.Save(ctx, s.Donations.Key(), donations, 0); err != nil {
		return 0, failure.StorageWrite(err) // nolint:wrapcheck
	}

	s.Donations.Reload(ctx)

	return len(seeds), nil
}

func (s *Seeder) seedUsers(ctx context.Context, data SeedData) (int, error) {
	if len(data.Users) == 0 {
		return 0, nil
	}

	users := append(s.Users.All(), data.Users...)

	if err := s.Store.Save(ctx, s.Users.Key(), users, 0); err != nil {
		return 0, failure.StorageWrite(err) // nolint:wrapcheck
	}

	s.Users.Reload(ctx)

	return len(data.Users), nil
}
