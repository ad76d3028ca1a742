package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"faena/internal/domain"
)

// MockProviderService is a mock implementation of service.ProviderService.
type MockProviderService struct {
	mock.Mock
}

func (m *MockProviderService) Search(ctx context.Context, query string, limit int) (*domain.SearchResult, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SearchResult), args.Error(1)
}

func (m *MockProviderService) List(ctx context.Context, offset, limit int) ([]domain.ProviderRecord, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ProviderRecord), args.Int(1), args.Error(2)
}

func (m *MockProviderService) ExportAll(ctx context.Context) ([]domain.ProviderRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProviderRecord), args.Error(1)
}
