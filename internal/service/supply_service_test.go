package service

import (
	"context"
	"errors"
	"testing"

	"stockpile/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSupplyRepository is a mock of the SupplyRepository interface
type MockSupplyRepository struct {
	mock.Mock
}

func (m *MockSupplyRepository) GetByID(ctx context.Context, id uint) (*models.Supply, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supply), args.Error(1)
}

func (m *MockSupplyRepository) Create(ctx context.Context, supply *models.Supply) error {
	args := m.Called(ctx, supply)
	return args.Error(0)
}

func (m *MockSupplyRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSupplyRepository) List(ctx context.Context) ([]models.Supply, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Supply), args.Error(1)
}

func (m *MockSupplyRepository) ListByUser(ctx context.Context, userID uint) ([]models.Supply, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Supply), args.Error(1)
}

func TestCreateSupplyValidation(t *testing.T) {
	valid := CreateSupplyInput{
		Name: "Bottled Water", Quantity: 24, Frequency: 7,
		FailRate: 2, LifeCycle: 365, DemandPerLifeCycle: 52,
		NeedID: 1, UserID: 1,
	}

	tests := []struct {
		name   string
		mutate func(*CreateSupplyInput)
	}{
		{"missing name", func(in *CreateSupplyInput) { in.Name = "" }},
		{"zero quantity", func(in *CreateSupplyInput) { in.Quantity = 0 }},
		{"zero frequency", func(in *CreateSupplyInput) { in.Frequency = 0 }},
		{"missing need", func(in *CreateSupplyInput) { in.NeedID = 0 }},
		{"missing user", func(in *CreateSupplyInput) { in.UserID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockSupplyRepository)
			svc := NewSupplyService(repo)

			in := valid
			tt.mutate(&in)

			_, err := svc.CreateSupply(context.Background(), in)
			require.Error(t, err)

			var appErr *models.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateSupplyPersistsReliabilityFields(t *testing.T) {
	repo := new(MockSupplyRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	svc := NewSupplyService(repo)

	supply, err := svc.CreateSupply(context.Background(), CreateSupplyInput{
		Name: "Bottled Water", Quantity: 24, Frequency: 7,
		FailRate: 2, LifeCycle: 365, DemandPerLifeCycle: 52,
		NeedID: 3, UserID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, supply.FailRate)
	assert.Equal(t, 365, supply.LifeCycle)
	assert.Equal(t, 52, supply.DemandPerLifeCycle)
	assert.Equal(t, uint(3), supply.NeedID)
	repo.AssertExpectations(t)
}
