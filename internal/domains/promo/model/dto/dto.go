package dto

import (
	"strings"

	"saapadu/internal/domains/promo/model"
	"saapadu/shared/constant"
	gModel "saapadu/shared/model"
	"saapadu/shared/timezone"

	"github.com/google/uuid"
)

type CreatePromoCodeRequest struct {
	Code          string  `json:"code"          validate:"required,max=30"`
	DiscountType  string  `json:"discountType"  validate:"required,oneof=percentage fixed"`
	DiscountValue float64 `json:"discountValue" validate:"gt=0"`
	MinOrderValue float64 `json:"minOrderValue" validate:"gte=0"`
	ExpiryDate    string  `json:"expiryDate"    validate:"required,datetime=2006-01-02"`
	Active        *bool   `json:"active"`
}

func (c *CreatePromoCodeRequest) ToModel() model.PromoCode {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.PromoCode{
		ID:            gModel.NewID(uuid.NewString()),
		Code:          NormalizeCode(c.Code),
		DiscountType:  strings.TrimSpace(c.DiscountType),
		DiscountValue: gModel.Number(c.DiscountValue),
		MinOrderValue: gModel.Number(c.MinOrderValue),
		ExpiryDate:    strings.TrimSpace(c.ExpiryDate),
		Active:        active,
		CreatedDate:   timezone.Format(timezone.Now(), constant.DateOnlyFormat),
		UsageCount:    0,
	}
}

// UpdatePromoCodeRequest changes only the fields that are set.
type UpdatePromoCodeRequest struct {
	Code          *string        `json:"code"          validate:"omitempty,min=1,max=30"`
	DiscountType  *string        `json:"discountType"  validate:"omitempty,oneof=percentage fixed"`
	DiscountValue *gModel.Number `json:"discountValue" validate:"omitempty,gt=0"`
	MinOrderValue *gModel.Number `json:"minOrderValue" validate:"omitempty,gte=0"`
	ExpiryDate    *string        `json:"expiryDate"    validate:"omitempty,datetime=2006-01-02"`
	Active        *bool          `json:"active"`
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

type PromoCodeResponse struct {
	ID            string  `json:"id"`
	Code          string  `json:"code"`
	DiscountType  string  `json:"discountType"`
	DiscountValue float64 `json:"discountValue"`
	Discount      string  `json:"discount"`
	MinOrderValue float64 `json:"minOrderValue"`
	ExpiryDate    string  `json:"expiryDate"`
	Active        bool    `json:"active"`
	CreatedDate   string  `json:"createdDate"`
	UsageCount    int     `json:"usageCount"`
}

func (r *PromoCodeResponse) FromModel(promo model.PromoCode) {
	r.ID = promo.ID.String()
	r.Code = promo.Code
	r.DiscountType = promo.DiscountType
	r.DiscountValue = promo.DiscountValue.Float()
	r.Discount = promo.Discount()
	r.MinOrderValue = promo.MinOrderValue.Float()
	r.ExpiryDate = promo.ExpiryDate
	r.Active = promo.Active
	r.CreatedDate = promo.CreatedDate
	r.UsageCount = promo.UsageCount
}

type GetPromoCodesResponse struct {
	PromoCodes []PromoCodeResponse `json:"promoCodes"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetPromoCodesResponse) FromModels(promos []model.PromoCode) {
	r.TotalData = len(promos)

	r.PromoCodes = make([]PromoCodeResponse, len(promos))
	for i, promo := range promos {
		r.PromoCodes[i].FromModel(promo)
	}
}
