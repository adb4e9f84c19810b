package repositories

import (
	"errors"

	"gorm.io/gorm"

	"ayoo/internal/models"
)

type storeInfoRepository struct {
	db *gorm.DB
}

// NewStoreInfoRepository creates a new instance of StoreInfoRepository.
func NewStoreInfoRepository(db *gorm.DB) StoreInfoRepository {
	return &storeInfoRepository{db: db}
}

func (r *storeInfoRepository) Create(info *models.StoreInfo) error {
	if err := r.db.Create(info).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *storeInfoRepository) GetByMerchant(merchantID string) (*models.StoreInfo, error) {
	var info models.StoreInfo
	err := r.db.Where("merchant_id = ?", merchantID).First(&info).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &info, nil
}

func (r *storeInfoRepository) Update(info *models.StoreInfo) error {
	res := r.db.Model(&models.StoreInfo{}).
		Where("id = ? AND merchant_id = ? AND version = ?",
			info.ID, info.MerchantID, info.Version).
		Updates(map[string]interface{}{
			"store_name":     info.StoreName,
			"store_type":     info.StoreType,
			"description":    info.Description,
			"address":        info.Address,
			"contact_number": info.ContactNumber,
			"logo_url":       info.LogoURL,
			"store_open":     info.StoreOpen,
			"version":        gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return ErrDatabaseOperation
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.StoreInfo{}).
			Where("id = ? AND merchant_id = ?", info.ID, info.MerchantID).
			Count(&count).Error; err != nil {
			return ErrDatabaseOperation
		}
		if count == 0 {
			return ErrRecordNotFound
		}
		return ErrVersionConflict
	}
	if err := r.db.Where("merchant_id = ?", info.MerchantID).
		First(info, info.ID).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *storeInfoRepository) SetOpen(merchantID string, open bool) (*models.StoreInfo, error) {
	res := r.db.Model(&models.StoreInfo{}).
		Where("merchant_id = ?", merchantID).
		Updates(map[string]interface{}{
			"store_open": open,
			"version":    gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return nil, ErrDatabaseOperation
	}
	if res.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}
	return r.GetByMerchant(merchantID)
}
