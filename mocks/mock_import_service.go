package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"faena/internal/domain"
)

// MockImportService is a mock implementation of service.ImportService.
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) ImportSources(ctx context.Context, units []domain.SourceUnit) (*domain.ImportResult, error) {
	args := m.Called(ctx, units)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportResult), args.Error(1)
}
