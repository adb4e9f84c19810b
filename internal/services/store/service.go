// Package store implements store profile management.
package store

import (
	"ayoo/internal/models"
	"ayoo/internal/repositories"
)

// Input carries the editable store profile fields.
type Input struct {
	StoreName     string `json:"storeName" validate:"required"`
	StoreType     string `json:"storeType" validate:"required"`
	Description   string `json:"description"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactNumber"`
	LogoURL       string `json:"logoUrl"`
	StoreOpen     bool   `json:"storeOpen"`
	Version       int    `json:"version"`
}

type Service interface {
	// Get returns the merchant's store record, or
	// repositories.ErrRecordNotFound if onboarding never created one.
	Get(merchantID string) (*models.StoreInfo, error)
	Update(merchantID string, id uint, input Input) (*models.StoreInfo, error)
	// ToggleOpen flips the open flag and returns the stored record.
	ToggleOpen(merchantID string, open bool) (*models.StoreInfo, error)
}

type service struct {
	repo repositories.StoreInfoRepository
}

func NewService(repo repositories.StoreInfoRepository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) Get(merchantID string) (*models.StoreInfo, error) {
	return s.repo.GetByMerchant(merchantID)
}

func (s *service) Update(merchantID string, id uint, input Input) (*models.StoreInfo, error) {
	info := &models.StoreInfo{
		ID:            id,
		MerchantID:    merchantID,
		StoreName:     input.StoreName,
		StoreType:     input.StoreType,
		Description:   input.Description,
		Address:       input.Address,
		ContactNumber: input.ContactNumber,
		LogoURL:       input.LogoURL,
		StoreOpen:     input.StoreOpen,
		Version:       input.Version,
	}
	if err := s.repo.Update(info); err != nil {
		return nil, err
	}
	return info, nil
}

func (s *service) ToggleOpen(merchantID string, open bool) (*models.StoreInfo, error) {
	return s.repo.SetOpen(merchantID, open)
}
