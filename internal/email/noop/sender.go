// Package noop logs document deliveries instead of sending them. Used in
// development when no email provider is configured.
package noop

import (
	"context"
	"log"

	"billforge/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendDocument(_ context.Context, input port.SendDocumentInput) error {
	log.Printf("[NOOP EMAIL] %q to %s (%d byte attachment %s)",
		input.Subject, input.To, len(input.Attachment), input.FileName)
	return nil
}
