package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"faena/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendImportSummary(ctx context.Context, toEmail string, meta domain.ImportMetadata, errs []string) error {
	args := m.Called(ctx, toEmail, meta, errs)
	return args.Error(0)
}
