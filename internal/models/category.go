package models

import "time"

// Category groups products on a merchant's storefront. Customers only see
// categories with Enabled set.
type Category struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	MerchantID  string    `gorm:"index;not null" json:"merchantId"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Enabled     bool      `gorm:"default:true" json:"enabled"`
	SortOrder   int       `gorm:"default:0" json:"sortOrder"`
	OwnerID     uint      `gorm:"index" json:"ownerId"`
	Version     int       `gorm:"default:1" json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
