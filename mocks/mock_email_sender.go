package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billforge/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendDocument(ctx context.Context, input port.SendDocumentInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}
