package dto

type SettingsResponse struct {
	CommissionPercentage float64 `json:"commissionPercentage"`
	MinOrderValue        float64 `json:"minOrderValue"`
	MaxDeliveryDistance  float64 `json:"maxDeliveryDistance"`
	BaseDeliveryFee      float64 `json:"baseDeliveryFee"`
	AdminEmail           string  `json:"adminEmail"`
}

type UpdateCommissionRequest struct {
	CommissionPercentage float64 `json:"commissionPercentage" validate:"gte=0,lte=100"`
	MinOrderValue        float64 `json:"minOrderValue"        validate:"gte=0"`
}

type UpdateDeliveryRequest struct {
	MaxDeliveryDistance float64 `json:"maxDeliveryDistance" validate:"gte=0"`
	BaseDeliveryFee     float64 `json:"baseDeliveryFee"     validate:"gte=0"`
}

// UpdateCredentialsRequest changes whichever of email and password is given.
type UpdateCredentialsRequest struct {
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6,max=72"`
}
