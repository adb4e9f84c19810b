package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a merchant account. The store fields are written once during
// onboarding; StoreInfo is the source of truth for them afterwards.
type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Password     string `gorm:"not null" json:"-"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Role         string `gorm:"default:'merchant'" json:"role"`
	TokenVersion int    `gorm:"default:1" json:"-"`

	MerchantID          string `gorm:"index;default:''" json:"merchantId"`
	StoreName           string `json:"storeName"`
	StoreType           string `json:"storeType"`
	Description         string `json:"description"`
	Address             string `json:"address"`
	ContactNumber       string `json:"contactNumber"`
	LogoURL             string `json:"logoUrl"`
	StoreOpen           bool   `gorm:"default:true" json:"storeOpen"`
	StoreSetupCompleted bool   `gorm:"default:false" json:"storeSetupCompleted"`

	LastLoginAt time.Time `json:"-"`
}

// CreateUserInput carries the fields accepted at registration.
type CreateUserInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// UpdateUserInput carries the optional profile fields of a partial update.
// Pointers distinguish "not sent" from zero values so unspecified fields
// are preserved.
type UpdateUserInput struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	StoreName     *string `json:"storeName"`
	StoreType     *string `json:"storeType"`
	Description   *string `json:"description"`
	Address       *string `json:"address"`
	ContactNumber *string `json:"contactNumber"`
	LogoURL       *string `json:"logoUrl"`
	StoreOpen     *bool   `json:"storeOpen"`
}

// Apply merges the set fields onto the user.
func (in *UpdateUserInput) Apply(u *User) {
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.StoreName != nil {
		u.StoreName = *in.StoreName
	}
	if in.StoreType != nil {
		u.StoreType = *in.StoreType
	}
	if in.Description != nil {
		u.Description = *in.Description
	}
	if in.Address != nil {
		u.Address = *in.Address
	}
	if in.ContactNumber != nil {
		u.ContactNumber = *in.ContactNumber
	}
	if in.LogoURL != nil {
		u.LogoURL = *in.LogoURL
	}
	if in.StoreOpen != nil {
		u.StoreOpen = *in.StoreOpen
	}
}
