package repositories

import "ayoo/internal/models"

// CategoryRepository defines merchant-scoped category persistence.
// Every operation is keyed by merchant so a record can never leak
// across stores.
type CategoryRepository interface {
	Create(category *models.Category) error

	GetByID(merchantID string, id uint) (*models.Category, error)

	// ListByMerchant returns the merchant's categories sorted by
	// sort order, then creation time.
	ListByMerchant(merchantID string) ([]models.Category, error)

	// Update persists the editable fields. The write is conditional on
	// the caller's version; a stale version yields ErrVersionConflict.
	Update(category *models.Category) error

	// SetEnabled flips only the enabled flag and returns the stored record.
	SetEnabled(merchantID string, id uint, enabled bool) (*models.Category, error)

	Delete(merchantID string, id uint) error

	CountByMerchant(merchantID string) (int64, error)
}
