package dashboard_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"saapadu/infras/otel/mocks"
	"saapadu/internal/domains/dashboard/model/dto"
	dashboardMocks "saapadu/internal/domains/dashboard/mocks"
	"saapadu/internal/handlers/dashboard"
	"saapadu/internal/view"
	"saapadu/shared/constant"
	"saapadu/shared/failure"
)

func TestHandler_GetPanel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDashboard := dashboardMocks.NewMockDashboard(ctrl)
	handler := dashboard.New(mockDashboard, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	menu := view.Table{
		Title:   "Menu Items",
		Columns: []string{"ID", "Name"},
		Rows:    [][]string{{"1-breakfast-0", "Idli <hot>"}},
	}

	tests := []struct {
		name              string
		target            string
		setupMock         func()
		expectCode        int
		expectContentType string
		expectBody        string
	}{
		{
			name:   "text with filters",
			target: "/views/menu?hotel=1&category=breakfast",
			setupMock: func() {
				mockDashboard.EXPECT().
					Panel(gomock.Any(), dto.PanelQuery{Panel: view.PanelMenu, HotelID: 1, Category: constant.MenuCategoryBreakfast}).
					Return(menu, nil)
			},
			expectCode:        http.StatusOK,
			expectContentType: constant.ContentTypeText,
			expectBody:        "Idli <hot>",
		},
		{
			name:   "html escapes cells",
			target: "/views/menu?format=html",
			setupMock: func() {
				mockDashboard.EXPECT().Panel(gomock.Any(), dto.PanelQuery{Panel: view.PanelMenu}).Return(menu, nil)
			},
			expectCode:        http.StatusOK,
			expectContentType: constant.ContentTypeHTML,
			expectBody:        "Idli &lt;hot&gt;",
		},
		{
			name:       "unknown format",
			target:     "/views/menu?format=pdf",
			setupMock:  func() {},
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "non numeric hotel",
			target:     "/views/menu?hotel=one",
			setupMock:  func() {},
			expectCode: http.StatusBadRequest,
		},
		{
			name:   "unknown panel",
			target: "/views/kitchen",
			setupMock: func() {
				mockDashboard.EXPECT().
					Panel(gomock.Any(), dto.PanelQuery{Panel: "kitchen"}).
					Return(view.Table{}, failure.NotFound("panel kitchen"))
			},
			expectCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectCode, rec.Code)

			if tt.expectContentType != "" {
				assert.Equal(t, tt.expectContentType, rec.Header().Get(constant.RequestHeaderContentType))
			}

			if tt.expectBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectBody)
			}
		})
	}
}

func TestHandler_GetPanels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := dashboard.New(dashboardMocks.NewMockDashboard(ctrl), mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/views/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), view.PanelRecentOrders)
}
