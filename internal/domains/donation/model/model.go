package model

import (
	gModel "saapadu/shared/model"
)

const (
	EntityName = "donation"

	AnonymousDonor = "Anonymous"
)

// Donation is recorded by the storefront and only read here.
type Donation struct {
	ID        gModel.ID        `json:"id,omitzero"`
	Donor     string           `json:"donor,omitempty"`
	Hotel     string           `json:"hotel,omitempty"`
	Orphanage string           `json:"orphanage,omitempty"`
	Items     gModel.Text      `json:"items,omitzero"`
	Amount    gModel.Number    `json:"amount,omitempty"`
	Date      gModel.Timestamp `json:"date,omitzero"`
}
