package dto

import (
	"saapadu/internal/domains/donation/model"
	"saapadu/shared/constant"
)

type DonationResponse struct {
	ID        string  `json:"id"`
	Donor     string  `json:"donor"`
	Hotel     string  `json:"hotel"`
	Orphanage string  `json:"orphanage"`
	Items     string  `json:"items"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"`
}

// FromModel fills in the display defaults for members the storefront left out.
func (r *DonationResponse) FromModel(donation model.Donation) {
	r.ID = orDefault(donation.ID.String(), constant.NotAvailable)
	r.Donor = orDefault(donation.Donor, model.AnonymousDonor)
	r.Hotel = orDefault(donation.Hotel, constant.NotAvailable)
	r.Orphanage = orDefault(donation.Orphanage, constant.NotAvailable)
	r.Items = orDefault(donation.Items.String(), constant.NotAvailable)
	r.Amount = donation.Amount.Float()
	r.Date = donation.Date.Date()
}

type GetDonationsResponse struct {
	Donations   []DonationResponse `json:"donations"`
	TotalAmount float64            `json:"total_amount"`
	TotalData   int                `json:"total_data"`
}

func (r *GetDonationsResponse) FromModels(donations []model.Donation) {
	r.TotalData = len(donations)
	r.TotalAmount = 0

	r.Donations = make([]DonationResponse, len(donations))
	for i, donation := range donations {
		r.Donations[i].FromModel(donation)
		r.TotalAmount += r.Donations[i].Amount
	}
}

func orDefault(value, fallback string) string {
	if value == constant.Empty {
		return fallback
	}

	return value
}
