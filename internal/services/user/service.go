// Package user implements account registration and profile updates.
package user

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"ayoo/internal/models"
	"ayoo/internal/repositories"
	"ayoo/internal/validation"
)

type Service interface {
	GetByID(id uint) (*models.User, error)
	Create(input *models.CreateUserInput) (*models.User, error)

	// UpdateProfile merges the set fields of input into the stored user,
	// preserving everything the caller did not send.
	UpdateProfile(userID uint, input *models.UpdateUserInput) (*models.User, error)

	// DeactivateAccount revokes the user's sessions. Data is kept; real
	// deletion is out of scope for the dashboard.
	DeactivateAccount(userID uint) error
}

type service struct {
	repo repositories.UserRepository
}

func NewService(repo repositories.UserRepository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) GetByID(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *service) Create(input *models.CreateUserInput) (*models.User, error) {
	if err := validation.Password(input.Password); err != nil {
		return nil, err
	}

	existingUser, _ := s.repo.GetByEmail(input.Email)
	if existingUser != nil {
		return nil, errors.New("user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &models.User{
		Email:     input.Email,
		Password:  string(hashedPassword),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      "merchant",
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) UpdateProfile(userID uint, input *models.UpdateUserInput) (*models.User, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	input.Apply(user)

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) DeactivateAccount(userID uint) error {
	return s.repo.IncrementTokenVersion(userID)
}
