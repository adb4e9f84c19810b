// Package deals implements time-limited promotion management.
package deals

import (
	"errors"
	"time"

	"ayoo/internal/logger"
	"ayoo/internal/models"
	"ayoo/internal/repositories"
)

var (
	ErrDealTypeRequired = errors.New("deal type is required")
	ErrBadDateRange     = errors.New("end date must not be before start date")
)

// Input carries the editable deal fields. DealType is free text so
// "Other" entries pass through.
type Input struct {
	Name          string    `json:"name" validate:"required"`
	Description   string    `json:"description"`
	DealType      string    `json:"dealType"`
	DiscountValue float64   `json:"discountValue" validate:"gte=0"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	Active        bool      `json:"active"`
	Image         string    `json:"image"`
	ProductIDs    []string  `json:"productIds"`
	CategoryIDs   []string  `json:"categoryIds"`
	Version       int       `json:"version"`
}

type Service interface {
	// List returns the merchant's deals, newest first. A storage failure
	// degrades to an empty list.
	List(merchantID string) []models.Deal
	Create(merchantID string, ownerID uint, input Input) (*models.Deal, error)
	Update(merchantID string, id uint, input Input) (*models.Deal, error)
	SetActive(merchantID string, id uint, active bool) (*models.Deal, error)
	Delete(merchantID string, id uint) error
}

type service struct {
	repo repositories.DealRepository
}

func NewService(repo repositories.DealRepository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) List(merchantID string) []models.Deal {
	deals, err := s.repo.ListByMerchant(merchantID)
	if err != nil {
		logger.Sugar().Warnw("deal list degraded to empty",
			"merchant_id", merchantID, "error", err)
		return []models.Deal{}
	}
	if deals == nil {
		deals = []models.Deal{}
	}
	return deals
}

func (s *service) Create(merchantID string, ownerID uint, input Input) (*models.Deal, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	deal := &models.Deal{
		MerchantID:    merchantID,
		Name:          input.Name,
		Description:   input.Description,
		DealType:      input.DealType,
		DiscountValue: input.DiscountValue,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Active:        input.Active,
		Image:         input.Image,
		ProductIDs:    input.ProductIDs,
		CategoryIDs:   input.CategoryIDs,
		OwnerID:       ownerID,
	}
	if err := s.repo.Create(deal); err != nil {
		return nil, err
	}
	return deal, nil
}

func (s *service) Update(merchantID string, id uint, input Input) (*models.Deal, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	deal := &models.Deal{
		ID:            id,
		MerchantID:    merchantID,
		Name:          input.Name,
		Description:   input.Description,
		DealType:      input.DealType,
		DiscountValue: input.DiscountValue,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Active:        input.Active,
		Image:         input.Image,
		ProductIDs:    input.ProductIDs,
		CategoryIDs:   input.CategoryIDs,
		Version:       input.Version,
	}
	if err := s.repo.Update(deal); err != nil {
		return nil, err
	}
	return deal, nil
}

func (s *service) SetActive(merchantID string, id uint, active bool) (*models.Deal, error) {
	return s.repo.SetActive(merchantID, id, active)
}

func (s *service) Delete(merchantID string, id uint) error {
	return s.repo.Delete(merchantID, id)
}

func validate(input Input) error {
	if input.DealType == "" {
		return ErrDealTypeRequired
	}
	if input.EndDate.Before(input.StartDate) {
		return ErrBadDateRange
	}
	return nil
}
