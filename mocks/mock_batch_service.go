package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"nuamx/internal/service"
)

// MockBatchService is a mock implementation of service.BatchService.
type MockBatchService struct {
	mock.Mock
}

func (m *MockBatchService) Preview(ctx context.Context, input *service.BatchInput) (*service.BatchPreview, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BatchPreview), args.Error(1)
}

func (m *MockBatchService) Commit(ctx context.Context, input *service.BatchInput) (*service.CommitResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CommitResult), args.Error(1)
}
