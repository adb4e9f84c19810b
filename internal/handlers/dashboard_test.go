package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"ayoo/internal/models"
	"ayoo/internal/repositories"
)

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Stats(merchantID string) models.MerchantStats {
	return m.Called(merchantID).Get(0).(models.MerchantStats)
}

func (m *MockDashboardService) Preview(merchantID string) (*models.StorePreview, error) {
	args := m.Called(merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StorePreview), args.Error(1)
}

func dashboardApp(svc *MockDashboardService, user *models.User) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if user != nil {
			c.Locals("user", user)
		}
		return c.Next()
	})

	h := NewDashboardHandler(svc)
	app.Get("/api/dashboard/stats", h.Stats)
	app.Get("/api/preview", h.Preview)
	return app
}

func TestDashboardHandler_Preview(t *testing.T) {
	t.Run("merchantless user is blocked before any fetch", func(t *testing.T) {
		svc := new(MockDashboardService)
		app := dashboardApp(svc, &models.User{Model: gorm.Model{ID: 7}})

		resp, err := app.Test(httptest.NewRequest("GET", "/api/preview", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		svc.AssertNotCalled(t, "Preview", mock.Anything)
	})

	t.Run("onboarded merchant gets the preview", func(t *testing.T) {
		svc := new(MockDashboardService)
		svc.On("Preview", "m-1").Return(&models.StorePreview{
			Store: &models.StoreInfo{MerchantID: "m-1"},
		}, nil)
		app := dashboardApp(svc, merchantUser())

		resp, err := app.Test(httptest.NewRequest("GET", "/api/preview", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("missing store record maps to not found", func(t *testing.T) {
		svc := new(MockDashboardService)
		svc.On("Preview", "m-1").Return(nil, repositories.ErrRecordNotFound)
		app := dashboardApp(svc, merchantUser())

		resp, err := app.Test(httptest.NewRequest("GET", "/api/preview", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestDashboardHandler_Stats(t *testing.T) {
	svc := new(MockDashboardService)
	svc.On("Stats", "m-1").Return(models.MerchantStats{
		TotalCategories: 3,
		TotalProducts:   12,
		ActiveDeals:     1,
		StoreViews:      250,
	})
	app := dashboardApp(svc, merchantUser())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dashboard/stats", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}
