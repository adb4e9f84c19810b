package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"ayoo/internal/models"
	"ayoo/internal/repositories"
	"ayoo/internal/services/catalog"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListCategories(merchantID string) []models.Category {
	return m.Called(merchantID).Get(0).([]models.Category)
}

func (m *MockCatalogService) CreateCategory(merchantID string, ownerID uint, input catalog.CategoryInput) (*models.Category, error) {
	args := m.Called(merchantID, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCatalogService) UpdateCategory(merchantID string, id uint, input catalog.CategoryInput) (*models.Category, error) {
	args := m.Called(merchantID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCatalogService) SetCategoryEnabled(merchantID string, id uint, enabled bool) (*models.Category, error) {
	args := m.Called(merchantID, id, enabled)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCatalogService) DeleteCategory(merchantID string, id uint) error {
	return m.Called(merchantID, id).Error(0)
}

func (m *MockCatalogService) ListProducts(merchantID string, categoryID uint) []models.Product {
	return m.Called(merchantID, categoryID).Get(0).([]models.Product)
}

func (m *MockCatalogService) CreateProduct(merchantID string, ownerID uint, input catalog.ProductInput) (*models.Product, error) {
	args := m.Called(merchantID, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogService) UpdateProduct(merchantID string, id uint, input catalog.ProductInput) (*models.Product, error) {
	args := m.Called(merchantID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogService) SetProductAvailable(merchantID string, id uint, available bool) (*models.Product, error) {
	args := m.Called(merchantID, id, available)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogService) DeleteProduct(merchantID string, id uint) error {
	return m.Called(merchantID, id).Error(0)
}

// categoryApp mounts the category routes behind a stand-in for the auth
// middleware so handlers see a signed-in merchant.
func categoryApp(svc catalog.Service, user *models.User) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if user != nil {
			c.Locals("user", user)
		}
		return c.Next()
	})

	h := NewCategoryHandler(svc)
	app.Get("/api/categories", h.List)
	app.Post("/api/categories", h.Create)
	app.Put("/api/categories/:id", h.Update)
	app.Patch("/api/categories/:id/toggle", h.Toggle)
	app.Delete("/api/categories/:id", h.Delete)
	return app
}

func merchantUser() *models.User {
	return &models.User{
		Model:               gorm.Model{ID: 7},
		MerchantID:          "m-1",
		StoreSetupCompleted: true,
	}
}

func TestCategoryHandler_List(t *testing.T) {
	t.Run("returns the merchant's categories", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("ListCategories", "m-1").Return([]models.Category{
			{ID: 1, Name: "Drinks"},
		})
		app := categoryApp(svc, merchantUser())

		resp, err := app.Test(httptest.NewRequest("GET", "/api/categories", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var got []models.Category
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Len(t, got, 1)
		svc.AssertExpectations(t)
	})

	t.Run("missing user is unauthorized and fetches nothing", func(t *testing.T) {
		svc := new(MockCatalogService)
		app := categoryApp(svc, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/categories", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		svc.AssertNotCalled(t, "ListCategories", mock.Anything)
	})

	t.Run("merchantless user is forbidden and fetches nothing", func(t *testing.T) {
		svc := new(MockCatalogService)
		app := categoryApp(svc, &models.User{Model: gorm.Model{ID: 7}})

		resp, err := app.Test(httptest.NewRequest("GET", "/api/categories", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		svc.AssertNotCalled(t, "ListCategories", mock.Anything)
	})
}

func TestCategoryHandler_Create(t *testing.T) {
	t.Run("valid body creates the category", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("CreateCategory", "m-1", uint(7), mock.MatchedBy(func(in catalog.CategoryInput) bool {
			return in.Name == "Drinks"
		})).Return(&models.Category{ID: 1, Name: "Drinks"}, nil)
		app := categoryApp(svc, merchantUser())

		req := httptest.NewRequest("POST", "/api/categories",
			strings.NewReader(`{"name":"Drinks","enabled":true}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("missing user never reaches the service", func(t *testing.T) {
		svc := new(MockCatalogService)
		app := categoryApp(svc, nil)

		req := httptest.NewRequest("POST", "/api/categories",
			strings.NewReader(`{"name":"Drinks","enabled":true}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		svc.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing name is a bad request", func(t *testing.T) {
		svc := new(MockCatalogService)
		app := categoryApp(svc, merchantUser())

		req := httptest.NewRequest("POST", "/api/categories",
			strings.NewReader(`{"description":"no name"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCategoryHandler_Update(t *testing.T) {
	t.Run("stale version maps to conflict", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("UpdateCategory", "m-1", uint(2), mock.Anything).
			Return(nil, repositories.ErrVersionConflict)
		app := categoryApp(svc, merchantUser())

		req := httptest.NewRequest("PUT", "/api/categories/2",
			strings.NewReader(`{"name":"Drinks","version":1}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("unknown record maps to not found", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("UpdateCategory", "m-1", uint(99), mock.Anything).
			Return(nil, repositories.ErrRecordNotFound)
		app := categoryApp(svc, merchantUser())

		req := httptest.NewRequest("PUT", "/api/categories/99",
			strings.NewReader(`{"name":"Drinks"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("non-numeric id is a bad request", func(t *testing.T) {
		svc := new(MockCatalogService)
		app := categoryApp(svc, merchantUser())

		req := httptest.NewRequest("PUT", "/api/categories/abc",
			strings.NewReader(`{"name":"Drinks"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestCategoryHandler_Toggle(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("SetCategoryEnabled", "m-1", uint(2), false).
		Return(&models.Category{ID: 2, Enabled: false}, nil)
	app := categoryApp(svc, merchantUser())

	req := httptest.NewRequest("PATCH", "/api/categories/2/toggle",
		strings.NewReader(`{"enabled":false}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}
