package repositories

import "ayoo/internal/models"

// ProductRepository defines merchant-scoped product persistence.
type ProductRepository interface {
	Create(product *models.Product) error

	GetByID(merchantID string, id uint) (*models.Product, error)

	// ListByMerchant returns the merchant's products sorted by sort order,
	// then creation time. A non-zero categoryID narrows the list.
	ListByMerchant(merchantID string, categoryID uint) ([]models.Product, error)

	// Update persists the editable fields, conditional on the caller's
	// version.
	Update(product *models.Product) error

	// SetAvailable flips only the available flag and returns the stored
	// record.
	SetAvailable(merchantID string, id uint, available bool) (*models.Product, error)

	Delete(merchantID string, id uint) error

	CountByMerchant(merchantID string) (int64, error)
}
