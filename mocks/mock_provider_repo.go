package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"faena/internal/domain"
)

// MockProviderRepo is a mock implementation of port.ProviderRepository.
type MockProviderRepo struct {
	mock.Mock
}

func (m *MockProviderRepo) SaveBatch(ctx context.Context, records []domain.ProviderRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockProviderRepo) Search(ctx context.Context, query string, limit int) ([]domain.ProviderRecord, int, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ProviderRecord), args.Int(1), args.Error(2)
}

func (m *MockProviderRepo) List(ctx context.Context, offset, limit int) ([]domain.ProviderRecord, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ProviderRecord), args.Int(1), args.Error(2)
}
