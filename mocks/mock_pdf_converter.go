package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockPDFConverter is a mock implementation of port.PDFConverter.
type MockPDFConverter struct {
	mock.Mock
}

func (m *MockPDFConverter) Convert(ctx context.Context, docxBytes []byte) ([]byte, error) {
	args := m.Called(ctx, docxBytes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
