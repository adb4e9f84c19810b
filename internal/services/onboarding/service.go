// Package onboarding implements the one-time store setup flow.
package onboarding

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ayoo/internal/logger"
	"ayoo/internal/models"
	"ayoo/internal/repositories/cache"
)

var (
	// ErrAlreadyOnboarded is returned when a user who completed store
	// setup runs onboarding again.
	ErrAlreadyOnboarded = errors.New("store setup already completed")

	ErrUserNotFound = errors.New("user not found")
)

// Input carries the store fields collected by the onboarding form. The
// logo is uploaded beforehand; LogoURL is its result.
type Input struct {
	StoreName     string `json:"storeName" validate:"required"`
	StoreType     string `json:"storeType" validate:"required"`
	Description   string `json:"description"`
	Address       string `json:"address" validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required"`
	LogoURL       string `json:"logoUrl"`
}

type Service interface {
	// Complete assigns the user a merchant id, writes the store fields
	// onto the account and creates the StoreInfo record, all in one
	// transaction. StoreSetupCompleted is set here and nowhere else.
	Complete(userID uint, input Input) (*models.User, error)
}

type service struct {
	db    *gorm.DB
	cache *cache.CacheService
}

func NewService(db *gorm.DB, cache *cache.CacheService) Service {
	return &service{
		db:    db,
		cache: cache,
	}
}

func (s *service) Complete(userID uint, input Input) (*models.User, error) {
	var user models.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if user.StoreSetupCompleted {
			return ErrAlreadyOnboarded
		}

		user.MerchantID = uuid.NewString()
		user.StoreName = input.StoreName
		user.StoreType = input.StoreType
		user.Description = input.Description
		user.Address = input.Address
		user.ContactNumber = input.ContactNumber
		user.LogoURL = input.LogoURL
		user.StoreOpen = true
		user.StoreSetupCompleted = true

		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		// StoreInfo is the source of truth for these fields from now on.
		info := models.StoreInfo{
			MerchantID:    user.MerchantID,
			StoreName:     input.StoreName,
			StoreType:     input.StoreType,
			Description:   input.Description,
			Address:       input.Address,
			ContactNumber: input.ContactNumber,
			LogoURL:       input.LogoURL,
			StoreOpen:     true,
			OwnerID:       user.ID,
		}
		return tx.Create(&info).Error
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateUser(context.Background(), user.ID); err != nil {
			logger.Sugar().Warnw("failed to invalidate user cache", "user_id", user.ID, "error", err)
		}
	}

	return &user, nil
}
