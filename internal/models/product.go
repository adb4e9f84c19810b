package models

import "time"

// Product is a sellable item. Customers only see products with Available
// set, inside an enabled category.
type Product struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	MerchantID  string     `gorm:"index;not null" json:"merchantId"`
	CategoryID  uint       `gorm:"index;not null" json:"categoryId"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description"`
	Price       float64    `gorm:"not null" json:"price"`
	Image       string     `json:"image"`
	Rating      float64    `gorm:"default:0" json:"rating"`
	Available   bool       `gorm:"default:true" json:"available"`
	Options     StringList `gorm:"type:jsonb" json:"options"`
	Addons      AddonList  `gorm:"type:jsonb" json:"addons"`
	Tags        StringList `gorm:"type:jsonb" json:"tags"`
	SortOrder   int        `gorm:"default:0" json:"sortOrder"`
	OwnerID     uint       `gorm:"index" json:"ownerId"`
	Version     int        `gorm:"default:1" json:"version"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
