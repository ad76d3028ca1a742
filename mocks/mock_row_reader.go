package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockRowReader is a mock implementation of port.RowReader.
type MockRowReader struct {
	mock.Mock
}

func (m *MockRowReader) Rows(name string, content []byte) ([][]string, error) {
	args := m.Called(name, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]string), args.Error(1)
}

// MockTextExtractor is a mock implementation of port.TextExtractor.
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) Text(name string, content []byte) (string, error) {
	args := m.Called(name, content)
	return args.String(0), args.Error(1)
}
