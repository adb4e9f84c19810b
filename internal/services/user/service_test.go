package user

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

func TestUserService_Create(t *testing.T) {
	input := &models.CreateUserInput{
		Email:     "owner@kape.ph",
		Password:  "s3cret-pass!",
		FirstName: "Rence",
	}

	t.Run("hashes the password and defaults to merchant role", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", input.Email).Return(nil, repositories.ErrUserNotFound)
		repo.On("Create", mock.Anything).Return(nil)

		user, err := NewService(repo).Create(input)
		assert.NoError(t, err)
		assert.Equal(t, "merchant", user.Role)
		assert.NotEqual(t, input.Password, user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)))
		repo.AssertExpectations(t)
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", input.Email).Return(&models.User{Email: input.Email}, nil)

		_, err := NewService(repo).Create(input)
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("rejects a weak password", func(t *testing.T) {
		repo := new(MockUserRepo)

		_, err := NewService(repo).Create(&models.CreateUserInput{
			Email:    "owner@kape.ph",
			Password: "short",
		})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "GetByEmail", mock.Anything)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Run("merges only the set fields", func(t *testing.T) {
		repo := new(MockUserRepo)
		stored := &models.User{
			Model:     gorm.Model{ID: 1},
			FirstName: "Rence",
			LastName:  "Yagi",
			StoreName: "Kape Tayo",
		}
		repo.On("GetByID", uint(1)).Return(stored, nil)
		repo.On("Update", mock.MatchedBy(func(u *models.User) bool {
			return u.FirstName == "Lawrence" && u.LastName == "Yagi" && u.StoreName == "Kape Tayo"
		})).Return(nil)

		firstName := "Lawrence"
		user, err := NewService(repo).UpdateProfile(1, &models.UpdateUserInput{
			FirstName: &firstName,
		})
		assert.NoError(t, err)
		assert.Equal(t, "Lawrence", user.FirstName)
		assert.Equal(t, "Kape Tayo", user.StoreName)
		repo.AssertExpectations(t)
	})

	t.Run("unknown user surfaces the lookup error", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByID", uint(9)).Return(nil, repositories.ErrUserNotFound)

		_, err := NewService(repo).UpdateProfile(9, &models.UpdateUserInput{})
		assert.ErrorIs(t, err, repositories.ErrUserNotFound)
	})
}

func TestUserService_DeactivateAccount(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("IncrementTokenVersion", uint(1)).Return(nil)

	assert.NoError(t, NewService(repo).DeactivateAccount(1))
	repo.AssertExpectations(t)
}
