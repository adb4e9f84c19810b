package repositories

import "ayoo/internal/models"

// StoreInfoRepository defines persistence for the per-merchant store
// profile record.
type StoreInfoRepository interface {
	Create(info *models.StoreInfo) error

	// GetByMerchant returns the merchant's store record, or
	// ErrRecordNotFound if onboarding never created one.
	GetByMerchant(merchantID string) (*models.StoreInfo, error)

	// Update persists the editable fields, conditional on the caller's
	// version.
	Update(info *models.StoreInfo) error

	// SetOpen flips only the open flag and returns the stored record.
	SetOpen(merchantID string, open bool) (*models.StoreInfo, error)
}
