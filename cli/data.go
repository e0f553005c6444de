package cli

import (
	"fmt"
	"math/rand"
	"time"

	hotelDto "saapadu/internal/domains/hotel/model/dto"
	promoDto "saapadu/internal/domains/promo/model/dto"
	reviewDto "saapadu/internal/domains/review/model/dto"
	userModel "saapadu/internal/domains/user/model"
	"saapadu/shared/constant"

	"github.com/jaswdr/faker"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// SeedData is what the seed command writes. Reviews with no hotel id are spread over the
// hotels created in the same run.
type SeedData struct {
	Hotels     []hotelDto.CreateHotelRequest     `mapstructure:"hotels"`
	Orders     []SeedOrder                       `mapstructure:"orders"`
	Donations  []SeedDonation                    `mapstructure:"donations"`
	Reviews    []reviewDto.CreateReviewRequest   `mapstructure:"reviews"`
	PromoCodes []promoDto.CreatePromoCodeRequest `mapstructure:"promoCodes"`
	Users      []userModel.RegisteredUser        `mapstructure:"users"`
}

func (d SeedData) Len() int {
	return len(d.Hotels) + len(d.Orders) + len(d.Donations) + len(d.Reviews) + len(d.PromoCodes) + len(d.Users)
}

type SeedOrderItem struct {
	Name     string  `mapstructure:"name"`
	Price    float64 `mapstructure:"price"`
	Quantity float64 `mapstructure:"quantity"`
}

type SeedOrder struct {
	CustomerName string          `mapstructure:"customerName"`
	Email        string          `mapstructure:"email"`
	Phone        string          `mapstructure:"phone"`
	HotelName    string          `mapstructure:"hotelName"`
	Items        []SeedOrderItem `mapstructure:"items"`
	Total        float64         `mapstructure:"total"`
	Status       string          `mapstructure:"status"`
	Timestamp    time.Time       `mapstructure:"timestamp"`
}

type SeedDonation struct {
	Donor     string    `mapstructure:"donor"`
	Hotel     string    `mapstructure:"hotel"`
	Orphanage string    `mapstructure:"orphanage"`
	Items     string    `mapstructure:"items"`
	Amount    float64   `mapstructure:"amount"`
	Date      time.Time `mapstructure:"date"`
}

// LoadSeedFile reads a yaml or json seed file.
func LoadSeedFile(path string) (SeedData, error) {
	var data SeedData

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return data, fmt.Errorf("error reading seed file: %w", err)
	}

	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})

	if err := v.Unmarshal(&data, decoderConfigOption); err != nil {
		return data, fmt.Errorf("unable to decode seed file: %w", err)
	}

	return data, nil
}

// Counts sets how many records Fake generates per collection.
type Counts struct {
	Hotels     int
	Orders     int
	Donations  int
	Reviews    int
	PromoCodes int
	Users      int
}

var (
	areas      = []string{"Anna Nagar", "T. Nagar", "Adyar", "Velachery", "Mylapore", "Tambaram"}
	cuisines   = []string{"South Indian", "Chettinad", "North Indian", "Biriyani", "Tiffin", "Seafood"}
	dishes     = []string{"Idli", "Dosa", "Pongal", "Biriyani", "Pulao", "Parotta", "Naan", "Samosa", "Vada", "Meals"}
	orphanages = []string{"Anbu Illam", "Karunai Home", "Udhavi Trust", "Nambikkai Children Home"}
)

// Fake builds demo data dated in the three months before now. The same seed and now give
// the same data.
func Fake(seed int64, counts Counts, now time.Time) SeedData {
	fake := faker.NewWithSeed(rand.NewSource(seed))
	since := now.AddDate(0, -3, 0)

	var data SeedData

	hotelNames := make([]string, 0, counts.Hotels)

	for range counts.Hotels {
		name := fake.Company().Name()
		hotelNames = append(hotelNames, name)

		data.Hotels = append(data.Hotels, hotelDto.CreateHotelRequest{
			Name:         name,
			Area:         fake.RandomStringElement(areas),
			Location:     fake.Address().StreetAddress(),
			Cuisine:      fake.RandomStringElement(cuisines),
			Distance:     fake.Float64(1, 1, 15),
			MinPrice:     float64(fake.IntBetween(5, 30) * 10),
			DeliveryFee:  float64(fake.IntBetween(2, 8) * 5),
			DeliveryTime: fmt.Sprintf("%d-%d mins", fake.IntBetween(20, 30), fake.IntBetween(35, 50)),
			Contact:      fake.Phone().Number(),
		})
	}

	if len(hotelNames) == 0 {
		hotelNames = append(hotelNames, fake.Company().Name())
	}

	customers := make([]userModel.RegisteredUser, 0, max(counts.Users, 1))
	for range max(counts.Users, 1) {
		customers = append(customers, userModel.RegisteredUser{
			Name:  fake.Person().Name(),
			Email: fake.Internet().Email(),
			Phone: fake.Phone().Number(),
		})
	}

	if counts.Users > 0 {
		data.Users = customers
	}

	for range counts.Orders {
		customer := customers[fake.IntBetween(0, len(customers)-1)]
		items := make([]SeedOrderItem, 0, 3)
		total := 0.0

		for range fake.IntBetween(1, 3) {
			item := SeedOrderItem{
				Name:     fake.RandomStringElement(dishes),
				Price:    float64(fake.IntBetween(2, 25) * 10),
				Quantity: float64(fake.IntBetween(1, 3)),
			}
			total += item.Price * item.Quantity
			items = append(items, item)
		}

		data.Orders = append(data.Orders, SeedOrder{
			CustomerName: customer.Name,
			Email:        customer.Email,
			Phone:        customer.Phone,
			HotelName:    fake.RandomStringElement(hotelNames),
			Items:        items,
			Total:        total,
			Status:       fake.RandomStringElement(constant.OrderStatuses),
			Timestamp:    fake.Time().TimeBetween(since, now),
		})
	}

	for range counts.Donations {
		data.Donations = append(data.Donations, SeedDonation{
			Donor:     fake.Person().Name(),
			Hotel:     fake.RandomStringElement(hotelNames),
			Orphanage: fake.RandomStringElement(orphanages),
			Items:     fmt.Sprintf("%d x %s", fake.IntBetween(10, 50), fake.RandomStringElement(dishes)),
			Amount:    float64(fake.IntBetween(5, 100) * 50),
			Date:      fake.Time().TimeBetween(since, now),
		})
	}

	for range counts.Reviews {
		data.Reviews = append(data.Reviews, reviewDto.CreateReviewRequest{
			CustomerName: customers[fake.IntBetween(0, len(customers)-1)].Name,
			Rating:       fake.IntBetween(1, 5),
			Comment:      fake.Lorem().Sentence(12),
		})
	}

	for index := range counts.PromoCodes {
		active := fake.Boolean().Bool()
		discountType := fake.RandomStringElement([]string{constant.DiscountTypePercentage, constant.DiscountTypeFixed})

		discount := float64(fake.IntBetween(5, 50))
		if discountType == constant.DiscountTypeFixed {
			discount = float64(fake.IntBetween(2, 20) * 10)
		}

		data.PromoCodes = append(data.PromoCodes, promoDto.CreatePromoCodeRequest{
			Code:          fmt.Sprintf("SAAPADU%d%d", index+1, fake.IntBetween(10, 99)),
			DiscountType:  discountType,
			DiscountValue: discount,
			MinOrderValue: float64(fake.IntBetween(0, 10) * 50),
			ExpiryDate:    now.AddDate(0, fake.IntBetween(1, 6), 0).Format(constant.DateOnlyFormat),
			Active:        &active,
		})
	}

	return data
}
