package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockNameSource is a mock implementation of port.NameSource.
type MockNameSource struct {
	mock.Mock
}

func (m *MockNameSource) Tag() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockNameSource) Lookup(ctx context.Context, rut string) (string, error) {
	args := m.Called(ctx, rut)
	return args.String(0), args.Error(1)
}
