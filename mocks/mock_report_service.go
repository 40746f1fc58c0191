package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"nuamx/internal/domain"
	"nuamx/internal/service"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Summary(ctx context.Context, filters domain.RatingFilters) (*service.SummaryReport, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SummaryReport), args.Error(1)
}
