package repositories

import "ayoo/internal/models"

// DealRepository defines merchant-scoped deal persistence.
type DealRepository interface {
	Create(deal *models.Deal) error

	GetByID(merchantID string, id uint) (*models.Deal, error)

	// ListByMerchant returns the merchant's deals, newest first.
	ListByMerchant(merchantID string) ([]models.Deal, error)

	// Update persists the editable fields, conditional on the caller's
	// version.
	Update(deal *models.Deal) error

	// SetActive flips only the active flag and returns the stored record.
	SetActive(merchantID string, id uint, active bool) (*models.Deal, error)

	Delete(merchantID string, id uint) error
}
