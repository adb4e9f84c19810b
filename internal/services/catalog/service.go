// Package catalog implements category and product management for a
// merchant's storefront.
package catalog

import (
	"errors"

	"ayoo/internal/logger"
	"ayoo/internal/models"
	"ayoo/internal/repositories"
)

// ErrCategoryNotFound is returned when a product write references a
// category that does not exist for the merchant.
var ErrCategoryNotFound = errors.New("category not found for this merchant")

// CategoryInput carries the editable category fields.
type CategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
	SortOrder   int    `json:"sortOrder"`
	Version     int    `json:"version"`
}

// ProductInput carries the editable product fields. Options, addon names
// and tags arrive as lists; splitting comma-separated form text is the
// client's concern.
type ProductInput struct {
	CategoryID  uint           `json:"categoryId" validate:"required"`
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description"`
	Price       float64        `json:"price" validate:"gte=0"`
	Image       string         `json:"image"`
	Available   bool           `json:"available"`
	Options     []string       `json:"options"`
	Addons      []models.Addon `json:"addons"`
	Tags        []string       `json:"tags"`
	SortOrder   int            `json:"sortOrder"`
	Version     int            `json:"version"`
}

type Service interface {
	// ListCategories returns the merchant's categories. A storage failure
	// degrades to an empty list so the dashboard renders the same as a
	// store with no data yet.
	ListCategories(merchantID string) []models.Category
	CreateCategory(merchantID string, ownerID uint, input CategoryInput) (*models.Category, error)
	UpdateCategory(merchantID string, id uint, input CategoryInput) (*models.Category, error)
	SetCategoryEnabled(merchantID string, id uint, enabled bool) (*models.Category, error)
	DeleteCategory(merchantID string, id uint) error

	// ListProducts behaves like ListCategories. A non-zero categoryID
	// narrows the list.
	ListProducts(merchantID string, categoryID uint) []models.Product
	CreateProduct(merchantID string, ownerID uint, input ProductInput) (*models.Product, error)
	UpdateProduct(merchantID string, id uint, input ProductInput) (*models.Product, error)
	SetProductAvailable(merchantID string, id uint, available bool) (*models.Product, error)
	DeleteProduct(merchantID string, id uint) error
}

type service struct {
	categories repositories.CategoryRepository
	products   repositories.ProductRepository
}

func NewService(categories repositories.CategoryRepository, products repositories.ProductRepository) Service {
	return &service{
		categories: categories,
		products:   products,
	}
}

func (s *service) ListCategories(merchantID string) []models.Category {
	categories, err := s.categories.ListByMerchant(merchantID)
	if err != nil {
		logger.Sugar().Warnw("category list degraded to empty",
			"merchant_id", merchantID, "error", err)
		return []models.Category{}
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories
}

func (s *service) CreateCategory(merchantID string, ownerID uint, input CategoryInput) (*models.Category, error) {
	category := &models.Category{
		MerchantID:  merchantID,
		Name:        input.Name,
		Description: input.Description,
		Enabled:     input.Enabled,
		SortOrder:   input.SortOrder,
		OwnerID:     ownerID,
	}
	if err := s.categories.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *service) UpdateCategory(merchantID string, id uint, input CategoryInput) (*models.Category, error) {
	category := &models.Category{
		ID:          id,
		MerchantID:  merchantID,
		Name:        input.Name,
		Description: input.Description,
		Enabled:     input.Enabled,
		SortOrder:   input.SortOrder,
		Version:     input.Version,
	}
	if err := s.categories.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *service) SetCategoryEnabled(merchantID string, id uint, enabled bool) (*models.Category, error) {
	return s.categories.SetEnabled(merchantID, id, enabled)
}

func (s *service) DeleteCategory(merchantID string, id uint) error {
	return s.categories.Delete(merchantID, id)
}

func (s *service) ListProducts(merchantID string, categoryID uint) []models.Product {
	products, err := s.products.ListByMerchant(merchantID, categoryID)
	if err != nil {
		logger.Sugar().Warnw("product list degraded to empty",
			"merchant_id", merchantID, "error", err)
		return []models.Product{}
	}
	if products == nil {
		products = []models.Product{}
	}
	return products
}

func (s *service) CreateProduct(merchantID string, ownerID uint, input ProductInput) (*models.Product, error) {
	if err := s.checkCategory(merchantID, input.CategoryID); err != nil {
		return nil, err
	}

	product := &models.Product{
		MerchantID:  merchantID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Available:   input.Available,
		Options:     input.Options,
		Addons:      input.Addons,
		Tags:        input.Tags,
		SortOrder:   input.SortOrder,
		OwnerID:     ownerID,
	}
	if err := s.products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *service) UpdateProduct(merchantID string, id uint, input ProductInput) (*models.Product, error) {
	if err := s.checkCategory(merchantID, input.CategoryID); err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:          id,
		MerchantID:  merchantID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Available:   input.Available,
		Options:     input.Options,
		Addons:      input.Addons,
		Tags:        input.Tags,
		SortOrder:   input.SortOrder,
		Version:     input.Version,
	}
	if err := s.products.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *service) SetProductAvailable(merchantID string, id uint, available bool) (*models.Product, error) {
	return s.products.SetAvailable(merchantID, id, available)
}

func (s *service) DeleteProduct(merchantID string, id uint) error {
	return s.products.Delete(merchantID, id)
}

// checkCategory rejects product writes that reference a category outside
// the merchant's store.
func (s *service) checkCategory(merchantID string, categoryID uint) error {
	if _, err := s.categories.GetByID(merchantID, categoryID); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}
