package repositories

import (
	"errors"

	"gorm.io/gorm"

	"ayoo/internal/models"
)

type dealRepository struct {
	db *gorm.DB
}

// NewDealRepository creates a new instance of DealRepository.
func NewDealRepository(db *gorm.DB) DealRepository {
	return &dealRepository{db: db}
}

func (r *dealRepository) Create(deal *models.Deal) error {
	if err := r.db.Create(deal).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *dealRepository) GetByID(merchantID string, id uint) (*models.Deal, error) {
	var deal models.Deal
	err := r.db.Where("merchant_id = ?", merchantID).First(&deal, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &deal, nil
}

func (r *dealRepository) ListByMerchant(merchantID string) ([]models.Deal, error) {
	var deals []models.Deal
	err := r.db.Where("merchant_id = ?", merchantID).
		Order("created_at DESC").
		Find(&deals).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return deals, nil
}

func (r *dealRepository) Update(deal *models.Deal) error {
	res := r.db.Model(&models.Deal{}).
		Where("id = ? AND merchant_id = ? AND version = ?",
			deal.ID, deal.MerchantID, deal.Version).
		Updates(map[string]interface{}{
			"name":           deal.Name,
			"description":    deal.Description,
			"deal_type":      deal.DealType,
			"discount_value": deal.DiscountValue,
			"start_date":     deal.StartDate,
			"end_date":       deal.EndDate,
			"active":         deal.Active,
			"image":          deal.Image,
			"product_ids":    deal.ProductIDs,
			"category_ids":   deal.CategoryIDs,
			"version":        gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return ErrDatabaseOperation
	}
	if res.RowsAffected == 0 {
		return r.staleOrMissing(deal.MerchantID, deal.ID)
	}
	if err := r.db.Where("merchant_id = ?", deal.MerchantID).
		First(deal, deal.ID).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *dealRepository) SetActive(merchantID string, id uint, active bool) (*models.Deal, error) {
	res := r.db.Model(&models.Deal{}).
		Where("id = ? AND merchant_id = ?", id, merchantID).
		Updates(map[string]interface{}{
			"active":  active,
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

func (r *dealRepository) Delete(merchantID string, id uint) error {
	res := r.db.Where("merchant_id = ?", merchantID).Delete(&models.Deal{}, id)
	if res.Error != nil {
		return ErrDatabaseOperation
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *dealRepository) staleOrMissing(merchantID string, id uint) error {
	var count int64
	if err := r.db.Model(&models.Deal{}).
		Where("id = ? AND merchant_id = ?", id, merchantID).
		Count(&count).Error; err != nil {
		return ErrDatabaseOperation
	}
	if count == 0 {
		return ErrRecordNotFound
	}
	return ErrVersionConflict
}
