package mocks

import (
	"context"

	"go-slug-shortener/types"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a mock Storage interface
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Put(ctx context.Context, originalURL string) (types.URLRecord, error) {
	args := m.Called(ctx, originalURL)
	return args.Get(0).(types.URLRecord), args.Error(1)
}

func (m *MockStorage) Get(ctx context.Context, slug string) (types.URLRecord, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(types.URLRecord), args.Error(1)
}

func (m *MockStorage) Len() int {
	args := m.Called()
	return args.Int(0)
}
