package validator_test

import (
	"net/http"
	"saapadu/shared/failure"
	"saapadu/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type menuEntryRequest struct {
	HotelID  int      `json:"hotelId"  validate:"required,gt=0"`
	Category string   `json:"category" validate:"required,category"`
	Name     string   `json:"name"     validate:"required,max=10"`
	Price    float64  `json:"price"    validate:"gte=0"`
	Tags     []string `json:"tags"     validate:"max=2"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required,orderstatus"`
	Email  string `json:"email"  validate:"omitempty,email"`
	Rating int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        menuEntryRequest
		expectedMsg string
	}{
		{
			name: "valid entry",
			data: menuEntryRequest{HotelID: 1, Category: "snacks", Name: "Bajji", Price: 25},
		},
		{
			name:        "missing hotel",
			data:        menuEntryRequest{Category: "snacks", Name: "Bajji"},
			expectedMsg: "hotelId is required",
		},
		{
			name:        "unknown category",
			data:        menuEntryRequest{HotelID: 1, Category: "brunch", Name: "Bajji"},
			expectedMsg: "category must be one of breakfast, lunch, snacks, dinner",
		},
		{
			name:        "name too long",
			data:        menuEntryRequest{HotelID: 1, Category: "lunch", Name: "Thalapakatti"},
			expectedMsg: "name must be at most 10 characters",
		},
		{
			name:        "negative price",
			data:        menuEntryRequest{HotelID: 1, Category: "lunch", Name: "Meals", Price: -1},
			expectedMsg: "price must be at least 0",
		},
		{
			name:        "too many tags",
			data:        menuEntryRequest{HotelID: 1, Category: "lunch", Name: "Meals", Tags: []string{"a", "b", "c"}},
			expectedMsg: "tags must have at most 2 items",
		},
		{
			name:        "every failed field is reported",
			data:        menuEntryRequest{Category: "brunch", Name: "Meals"},
			expectedMsg: "hotelId is required; category must be one of breakfast, lunch, snacks, dinner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectedMsg == "" {
				assert.NoError(t, err)
				return
			}

			assert.EqualError(t, err, tt.expectedMsg)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateStruct_Numbers(t *testing.T) {
	assert.NoError(t, validator.ValidateStruct(&statusRequest{Status: "Pending"}))
	assert.EqualError(t, validator.ValidateStruct(&statusRequest{Status: "Pending", Rating: 6}), "rating must be at most 5")
	assert.EqualError(t, validator.ValidateStruct(&statusRequest{Status: "Pending", Email: "anu"}), "email must be a valid email address")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectedMsg string
	}{
		{
			name: "valid body",
			body: `{"status":"Delivered","email":"anu@x.com","rating":4}`,
		},
		{
			name:        "status is case sensitive",
			body:        `{"status":"delivered"}`,
			expectedMsg: "status must be one of Pending, Confirmed, Delivered, Cancelled",
		},
		{
			name:        "empty body object",
			body:        `{}`,
			expectedMsg: "status is required",
		},
		{
			name:        "malformed json",
			body:        `{"status":}`,
			expectedMsg: "failed to decode request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data statusRequest

			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.expectedMsg == "" {
				assert.NoError(t, err)
				assert.Equal(t, "Delivered", data.Status)

				return
			}

			assert.ErrorContains(t, err, tt.expectedMsg)
			assert.True(t, failure.IsValidation(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectedMsg string
	}{
		{
			name:  "known category",
			field: "breakfast",
			tag:   "category",
		},
		{
			name:        "unknown order status",
			field:       "Shipped",
			tag:         "orderstatus",
			expectedMsg: "value must be one of Pending, Confirmed, Delivered, Cancelled",
		},
		{
			name:        "empty required value",
			field:       "",
			tag:         "required",
			expectedMsg: "value is required",
		},
		{
			name:  "allowed image payload",
			field: "data:image/png;base64,iVBORw0KGgo=",
			tag:   "mimetypes=image/png image/jpeg",
		},
		{
			name:        "disallowed payload type",
			field:       "data:text/plain;base64,SGVsbG8=",
			tag:         "mimetypes=image/png image/jpeg",
			expectedMsg: "value must be one of image/png, image/jpeg",
		},
		{
			name:  "remote url passes mimetype check",
			field: "https://example.com/dosa.jpg",
			tag:   "mimetypes=image/png image/jpeg",
		},
		{
			name:        "payload over size limit",
			field:       "data:image/png;base64," + strings.Repeat("A", 2*1024*1024),
			tag:         "maxfilesize=1",
			expectedMsg: "value must not exceed 1 MB",
		},
		{
			name:        "tag without a message",
			field:       "abc",
			tag:         "numeric",
			expectedMsg: "value failed numeric validation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectedMsg == "" {
				assert.NoError(t, err)
				return
			}

			assert.EqualError(t, err, tt.expectedMsg)
		})
	}
}
