package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"nuamx/internal/domain"
)

// MockFxRateRepo is a mock implementation of port.FxRateRepository.
type MockFxRateRepo struct {
	mock.Mock
}

func (m *MockFxRateRepo) GetByCode(ctx context.Context, code domain.CurrencyCode) (*domain.FxRate, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FxRate), args.Error(1)
}

func (m *MockFxRateRepo) List(ctx context.Context) ([]domain.FxRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FxRate), args.Error(1)
}
