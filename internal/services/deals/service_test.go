package deals

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ayoo/internal/models"
	"ayoo/internal/repositories"
)

type MockDealRepo struct {
	mock.Mock
}

func (m *MockDealRepo) Create(deal *models.Deal) error {
	args := m.Called(deal)
	return args.Error(0)
}

func (m *MockDealRepo) GetByID(merchantID string, id uint) (*models.Deal, error) {
	args := m.Called(merchantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deal), args.Error(1)
}

func (m *MockDealRepo) ListByMerchant(merchantID string) ([]models.Deal, error) {
	args := m.Called(merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Deal), args.Error(1)
}

func (m *MockDealRepo) Update(deal *models.Deal) error {
	args := m.Called(deal)
	return args.Error(0)
}

func (m *MockDealRepo) SetActive(merchantID string, id uint, active bool) (*models.Deal, error) {
	args := m.Called(merchantID, id, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deal), args.Error(1)
}

func (m *MockDealRepo) Delete(merchantID string, id uint) error {
	args := m.Called(merchantID, id)
	return args.Error(0)
}

func TestDealService_List(t *testing.T) {
	t.Run("returns deals from the repository", func(t *testing.T) {
		repo := new(MockDealRepo)
		repo.On("ListByMerchant", "m-1").Return([]models.Deal{
			{ID: 2, Name: "Weekend Special"},
			{ID: 1, Name: "Launch Promo"},
		}, nil)

		deals := NewService(repo).List("m-1")
		assert.Len(t, deals, 2)
		repo.AssertExpectations(t)
	})

	t.Run("storage failure degrades to empty list", func(t *testing.T) {
		repo := new(MockDealRepo)
		repo.On("ListByMerchant", "m-1").Return(nil, errors.New("connection refused"))

		deals := NewService(repo).List("m-1")
		assert.NotNil(t, deals)
		assert.Empty(t, deals)
	})

	t.Run("nil result normalizes to empty list", func(t *testing.T) {
		repo := new(MockDealRepo)
		repo.On("ListByMerchant", "m-1").Return(nil, nil)

		deals := NewService(repo).List("m-1")
		assert.NotNil(t, deals)
		assert.Empty(t, deals)
	})
}

func TestDealService_Create(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		input     Input
		setupMock func(*MockDealRepo)
		wantErr   error
	}{
		{
			name: "successful create",
			input: Input{
				Name:      "Launch Promo",
				DealType:  models.DealTypePercentage,
				StartDate: now,
				EndDate:   now.Add(24 * time.Hour),
			},
			setupMock: func(repo *MockDealRepo) {
				repo.On("Create", mock.Anything).Return(nil)
			},
		},
		{
			name: "missing deal type",
			input: Input{
				Name:      "Launch Promo",
				StartDate: now,
				EndDate:   now.Add(24 * time.Hour),
			},
			wantErr: ErrDealTypeRequired,
		},
		{
			name: "end date before start date",
			input: Input{
				Name:      "Launch Promo",
				DealType:  models.DealTypeFixedAmount,
				StartDate: now,
				EndDate:   now.Add(-time.Hour),
			},
			wantErr: ErrBadDateRange,
		},
		{
			name: "free-text deal type passes through",
			input: Input{
				Name:      "Mystery Box",
				DealType:  "Other",
				StartDate: now,
				EndDate:   now,
			},
			setupMock: func(repo *MockDealRepo) {
				repo.On("Create", mock.Anything).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockDealRepo)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			deal, err := NewService(repo).Create("m-1", 7, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, deal)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "m-1", deal.MerchantID)
				assert.Equal(t, uint(7), deal.OwnerID)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestDealService_Update(t *testing.T) {
	t.Run("carries the caller's version to the repository", func(t *testing.T) {
		repo := new(MockDealRepo)
		repo.On("Update", mock.MatchedBy(func(d *models.Deal) bool {
			return d.ID == 3 && d.MerchantID == "m-1" && d.Version == 2
		})).Return(nil)

		input := Input{
			Name:     "Weekend Special",
			DealType: models.DealTypeBundle,
			Version:  2,
		}
		deal, err := NewService(repo).Update("m-1", 3, input)
		assert.NoError(t, err)
		assert.Equal(t, uint(3), deal.ID)
		repo.AssertExpectations(t)
	})

	t.Run("stale version surfaces the conflict", func(t *testing.T) {
		repo := new(MockDealRepo)
		repo.On("Update", mock.Anything).Return(repositories.ErrVersionConflict)

		input := Input{
			Name:     "Weekend Special",
			DealType: models.DealTypeBundle,
			Version:  1,
		}
		_, err := NewService(repo).Update("m-1", 3, input)
		assert.ErrorIs(t, err, repositories.ErrVersionConflict)
	})
}

func TestDealService_SetActive(t *testing.T) {
	repo := new(MockDealRepo)
	repo.On("SetActive", "m-1", uint(3), false).
		Return(&models.Deal{ID: 3, Active: false}, nil)

	deal, err := NewService(repo).SetActive("m-1", 3, false)
	assert.NoError(t, err)
	assert.False(t, deal.Active)
	repo.AssertExpectations(t)
}

func TestDealService_Delete(t *testing.T) {
	repo := new(MockDealRepo)
	repo.On("Delete", "m-1", uint(3)).Return(nil).Once()

	assert.NoError(t, NewService(repo).Delete("m-1", 3))
	repo.AssertExpectations(t)
}
