package repositories

import (
	"errors"

	"gorm.io/gorm"

	"ayoo/internal/models"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new instance of CategoryRepository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *categoryRepository) GetByID(merchantID string, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("merchant_id = ?", merchantID).First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &category, nil
}

func (r *categoryRepository) ListByMerchant(merchantID string) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("merchant_id = ?", merchantID).
		Order("sort_order ASC, created_at ASC").
		Find(&categories).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return categories, nil
}

func (r *categoryRepository) Update(category *models.Category) error {
	res := r.db.Model(&models.Category{}).
		Where("id = ? AND merchant_id = ? AND version = ?",
			category.ID, category.MerchantID, category.Version).
		Updates(map[string]interface{}{
			"name":        category.Name,
			"description": category.Description,
			"enabled":     category.Enabled,
			"sort_order":  category.SortOrder,
			"version":     gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return ErrDatabaseOperation
	}
	if res.RowsAffected == 0 {
		return r.staleOrMissing(category.MerchantID, category.ID)
	}
	if err := r.db.Where("merchant_id = ?", category.MerchantID).
		First(category, category.ID).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *categoryRepository) SetEnabled(merchantID string, id uint, enabled bool) (*models.Category, error) {
	res := r.db.Model(&models.Category{}).
		Where("id = ? AND merchant_id = ?", id, merchantID).
		Updates(map[string]interface{}{
			"enabled": enabled,
			"version": gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return nil, ErrDatabaseOperation
	}
	if res.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}
	return r.GetByID(merchantID, id)
}

func (r *categoryRepository) Delete(merchantID string, id uint) error {
	res := r.db.Where("merchant_id = ?", merchantID).Delete(&models.Category{}, id)
	if res.Error != nil {
		return ErrDatabaseOperation
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *categoryRepository) CountByMerchant(merchantID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Category{}).
		Where("merchant_id = ?", merchantID).Count(&count).Error
	if err != nil {
		return 0, ErrDatabaseOperation
	}
	return count, nil
}

func (r *categoryRepository) staleOrMissing(merchantID string, id uint) error {
	var count int64
	if err := r.db.Model(&models.Category{}).
		Where("id = ? AND merchant_id = ?", id, merchantID).
		Count(&count).Error; err != nil {
		return ErrDatabaseOperation
	}
	if count == 0 {
		return ErrRecordNotFound
	}
	return ErrVersionConflict
}
