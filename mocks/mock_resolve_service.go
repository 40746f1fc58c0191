package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"nuamx/internal/service"
)

// MockResolveService is a mock implementation of service.ResolveService.
type MockResolveService struct {
	mock.Mock
}

func (m *MockResolveService) Resolve(ctx context.Context, input *service.ResolveInput) (*service.ResolveResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ResolveResult), args.Error(1)
}
