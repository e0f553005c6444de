package analytics_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"saapadu/infras/otel/mocks"
	"saapadu/internal/domains/analytics/derive"
	analyticsMocks "saapadu/internal/domains/analytics/mocks"
	"saapadu/internal/handlers/analytics"
)

func TestHandler(t *testing.T) {
	views := derive.Views{
		Customers: []derive.Customer{
			{ID: "anu@x.com", Name: "Anu", Email: "anu@x.com", Orders: 2, TotalSpent: 150},
		},
		Summary: derive.Summary{TotalHotels: 2, TotalCustomers: 1},
	}

	tests := []struct {
		name       string
		target     string
		views      derive.Views
		expectBody string
	}{
		{
			name:       "customers",
			target:     "/customers",
			views:      views,
			expectBody: `{"data":{"customers":[{"id":"anu@x.com","name":"Anu","email":"anu@x.com","phone":"","orders":2,"totalSpent":150,"joinDate":""}],"total_data":1}}`,
		},
		{
			name:       "no customers is an empty list",
			target:     "/customers",
			views:      derive.Views{},
			expectBody: `{"data":{"customers":[],"total_data":0}}`,
		},
		{
			name:       "summary",
			target:     "/analytics/summary",
			views:      views,
			expectBody: `{"data":{"totalHotels":2,"todayOrders":0,"todayRevenue":0,"totalDonations":0,"totalCustomers":1,"totalMenuItems":0}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAnalytics := analyticsMocks.NewMockAnalytics(ctrl)
			mockAnalytics.EXPECT().Views(gomock.Any()).Return(tt.views)

			handler := analytics.New(mockAnalytics, mocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.expectBody, rec.Body.String())
		})
	}
}

func TestHandler_GetAnalytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := analyticsMocks.NewMockAnalytics(ctrl)
	mockAnalytics.EXPECT().Views(gomock.Any()).Return(derive.Views{Summary: derive.Summary{TotalMenuItems: 8}})

	handler := analytics.New(mockAnalytics, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/analytics/", nil))

	var body struct {
		Data derive.Views `json:"data"`
	}

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 8, body.Data.Summary.TotalMenuItems)
}
