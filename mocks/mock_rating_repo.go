package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"nuamx/internal/domain"
)

// MockRatingRepo is a mock implementation of port.RatingRepository.
type MockRatingRepo struct {
	mock.Mock
}

func (m *MockRatingRepo) Create(ctx context.Context, r *domain.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRatingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func (m *MockRatingRepo) List(ctx context.Context, filters domain.RatingFilters, offset, limit int) ([]domain.Rating, int, error) {
	args := m.Called(ctx, filters, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Rating), args.Int(1), args.Error(2)
}

func (m *MockRatingRepo) LatestDisplayName(ctx context.Context, rut string) (string, error) {
	args := m.Called(ctx, rut)
	return args.String(0), args.Error(1)
}

func (m *MockRatingRepo) ListForNameResolution(ctx context.Context, filters domain.RatingFilters, includeNamed bool, limit int) ([]domain.Rating, error) {
	args := m.Called(ctx, filters, includeNamed, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func (m *MockRatingRepo) UpdateDisplayName(ctx context.Context, id uuid.UUID, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockRatingRepo) CurrencyTotals(ctx context.Context, filters domain.RatingFilters) ([]domain.CurrencyTotal, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyTotal), args.Error(1)
}

func (m *MockRatingRepo) PeriodCounts(ctx context.Context, filters domain.RatingFilters) ([]domain.PeriodCount, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PeriodCount), args.Error(1)
}
