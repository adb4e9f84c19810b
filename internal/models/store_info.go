package models

import "time"

// StoreInfo is the store profile record, one per merchant. Onboarding
// creates it; the store screen edits it.
type StoreInfo struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	MerchantID    string    `gorm:"uniqueIndex;not null" json:"merchantId"`
	StoreName     string    `gorm:"not null" json:"storeName"`
	StoreType     string    `gorm:"not null" json:"storeType"`
	Description   string    `json:"description"`
	Address       string    `json:"address"`
	ContactNumber string    `json:"contactNumber"`
	LogoURL       string    `json:"logoUrl"`
	StoreOpen     bool      `gorm:"default:true" json:"storeOpen"`
	OwnerID       uint      `gorm:"index" json:"ownerId"`
	Version       int       `gorm:"default:1" json:"version"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
