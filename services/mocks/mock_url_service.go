package mocks

import (
	"context"

	"go-slug-shortener/types"

	"github.com/stretchr/testify/mock"
)

// MockURLService is a mock URLService interface
type MockURLService struct {
	mock.Mock
}

func (m *MockURLService) Shorten(ctx context.Context, originalURL string) (types.URLRecord, error) {
	args := m.Called(ctx, originalURL)
	return args.Get(0).(types.URLRecord), args.Error(1)
}

func (m *MockURLService) Resolve(ctx context.Context, slug string) (types.URLRecord, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(types.URLRecord), args.Error(1)
}
