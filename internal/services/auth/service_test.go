package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ayoo/internal/models"
	"ayoo/internal/repositories"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepo) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) Update(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepo) IncrementTokenVersion(userID uint) error {
	return m.Called(userID).Error(0)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	stored := &models.User{
		Model:        gorm.Model{ID: 1},
		Email:        "owner@kape.ph",
		Password:     hashOf(t, "s3cret-pass!"),
		TokenVersion: 1,
	}

	t.Run("valid credentials return tokens", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", "owner@kape.ph").Return(stored, nil)

		user, access, refresh, err := NewService(repo).Login("owner@kape.ph", "s3cret-pass!")
		assert.NoError(t, err)
		assert.Equal(t, "owner@kape.ph", user.Email)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", "owner@kape.ph").Return(stored, nil)
		repo.On("GetByEmail", "nobody@kape.ph").Return(nil, repositories.ErrUserNotFound)

		_, _, _, errWrongPass := NewService(repo).Login("owner@kape.ph", "not-the-password!")
		_, _, _, errNoUser := NewService(repo).Login("nobody@kape.ph", "s3cret-pass!")
		assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
		assert.ErrorIs(t, errNoUser, ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	stored := &models.User{
		Model:        gorm.Model{ID: 1},
		Email:        "owner@kape.ph",
		Password:     hashOf(t, "s3cret-pass!"),
		TokenVersion: 1,
	}

	t.Run("valid refresh token rotates the pair", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", "owner@kape.ph").Return(stored, nil)
		repo.On("GetByID", uint(1)).Return(stored, nil)

		svc := NewService(repo)
		_, _, refresh, err := svc.Login("owner@kape.ph", "s3cret-pass!")
		assert.NoError(t, err)

		access, newRefresh, err := svc.RefreshTokens(refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("logout invalidates outstanding refresh tokens", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", "owner@kape.ph").Return(stored, nil)

		svc := NewService(repo)
		_, _, refresh, err := svc.Login("owner@kape.ph", "s3cret-pass!")
		assert.NoError(t, err)

		// The stored token version moved on after logout.
		bumped := *stored
		bumped.TokenVersion = 2
		repo.On("GetByID", uint(1)).Return(&bumped, nil)

		_, _, err = svc.RefreshTokens(refresh)
		assert.Error(t, err)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, _, err := NewService(new(MockUserRepo)).RefreshTokens("not-a-token")
		assert.Error(t, err)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	t.Run("rehashes and bumps the token version", func(t *testing.T) {
		stored := &models.User{
			Model:        gorm.Model{ID: 1},
			Password:     hashOf(t, "old-pass!x"),
			TokenVersion: 1,
		}
		repo := new(MockUserRepo)
		repo.On("GetByID", uint(1)).Return(stored, nil)
		repo.On("Update", mock.MatchedBy(func(u *models.User) bool {
			return u.TokenVersion == 2 &&
				bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("new-pass!x")) == nil
		})).Return(nil)

		err := NewService(repo).ChangePassword(1, "old-pass!x", "new-pass!x")
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("wrong old password is rejected", func(t *testing.T) {
		stored := &models.User{
			Model:    gorm.Model{ID: 1},
			Password: hashOf(t, "old-pass!x"),
		}
		repo := new(MockUserRepo)
		repo.On("GetByID", uint(1)).Return(stored, nil)

		err := NewService(repo).ChangePassword(1, "guess", "new-pass!x")
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("weak new password is rejected", func(t *testing.T) {
		stored := &models.User{
			Model:    gorm.Model{ID: 1},
			Password: hashOf(t, "old-pass!x"),
		}
		repo := new(MockUserRepo)
		repo.On("GetByID", uint(1)).Return(stored, nil)

		err := NewService(repo).ChangePassword(1, "old-pass!x", "short")
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Update", mock.Anything)
	})
}
