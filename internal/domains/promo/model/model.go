package model

import (
	"strconv"

	"saapadu/shared/constant"
	gModel "saapadu/shared/model"
)

const EntityName = "promo code"

type PromoCode struct {
	ID            gModel.ID     `json:"id,omitzero"`
	Code          string        `json:"code"`
	DiscountType  string        `json:"discountType"`
	DiscountValue gModel.Number `json:"discountValue"`
	MinOrderValue gModel.Number `json:"minOrderValue"`
	ExpiryDate    string        `json:"expiryDate"`
	Active        bool          `json:"active"`
	CreatedDate   string        `json:"createdDate"`
	UsageCount    int           `json:"usageCount"`
	Extras        gModel.Extras `json:"-"`
}

func (p *PromoCode) UnmarshalJSON(data []byte) error {
	type alias PromoCode

	var value alias

	extras, err := gModel.DecodeWithExtras(data, &value)
	if err != nil {
		return err //nolint:wrapcheck
	}

	*p = PromoCode(value)
	p.Extras = extras

	return nil
}

func (p PromoCode) MarshalJSON() ([]byte, error) {
	type alias PromoCode

	return gModel.EncodeWithExtras(alias(p), p.Extras)
}

// Discount renders the discount as "10%" or "₹10".
func (p PromoCode) Discount() string {
	value := strconv.FormatFloat(p.DiscountValue.Float(), 'f', -1, 64)

	if p.DiscountType == constant.DiscountTypePercentage {
		return value + "%"
	}

	return "₹" + value
}

func IndexOf(promos []PromoCode, id string) int {
	for index, promo := range promos {
		if !promo.ID.IsZero() && promo.ID.String() == id {
			return index
		}
	}

	return -1
}
