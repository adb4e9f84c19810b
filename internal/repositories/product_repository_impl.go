package repositories

import (
	"errors"

	"gorm.io/gorm"

	"ayoo/internal/models"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new instance of ProductRepository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *productRepository) GetByID(merchantID string, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.Where("merchant_id = ?", merchantID).First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &product, nil
}

func (r *productRepository) ListByMerchant(merchantID string, categoryID uint) ([]models.Product, error) {
	query := r.db.Where("merchant_id = ?", merchantID)
	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var products []models.Product
	err := query.Order("sort_order ASC, created_at ASC").Find(&products).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return products, nil
}

func (r *productRepository) Update(product *models.Product) error {
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND merchant_id = ? AND version = ?",
			product.ID, product.MerchantID, product.Version).
		Updates(map[string]interface{}{
			"category_id": product.CategoryID,
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"image":       product.Image,
			"available":   product.Available,
			"options":     product.Options,
			"addons":      product.Addons,
			"tags":        product.Tags,
			"sort_order":  product.SortOrder,
			"version":     gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return ErrDatabaseOperation
	}
	if res.RowsAffected == 0 {
		return r.staleOrMissing(product.MerchantID, product.ID)
	}
	if err := r.db.Where("merchant_id = ?", product.MerchantID).
		First(product, product.ID).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *productRepository) SetAvailable(merchantID string, id uint, available bool) (*models.Product, error) {
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND merchant_id = ?", id, merchantID).
		Updates(map[string]interface{}{
			"available": available,
			"version":   gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return nil, ErrDatabaseOperation
	}
	if res.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}
	return r.GetByID(merchantID, id)
}

func (r *productRepository) Delete(merchantID string, id uint) error {
	res := r.db.Where("merchant_id = ?", merchantID).Delete(&models.Product{}, id)
	if res.Error != nil {
		return ErrDatabaseOperation
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *productRepository) CountByMerchant(merchantID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).
		Where("merchant_id = ?", merchantID).Count(&count).Error
	if err != nil {
		return 0, ErrDatabaseOperation
	}
	return count, nil
}

func (r *productRepository) staleOrMissing(merchantID string, id uint) error {
	var count int64
	if err := r.db.Model(&models.Product{}).
		Where("id = ? AND merchant_id = ?", id, merchantID).
		Count(&count).Error; err != nil {
		return ErrDatabaseOperation
	}
	if count == 0 {
		return ErrRecordNotFound
	}
	return ErrVersionConflict
}
