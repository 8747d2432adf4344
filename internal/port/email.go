package port

import "context"

// SendDocumentInput describes a document delivery email.
type SendDocumentInput struct {
	To          string
	Subject     string
	BodyText    string
	FileName    string
	ContentType string
	Attachment  []byte
}

// EmailSender delivers rendered documents by email.
type EmailSender interface {
	SendDocument(ctx context.Context, input SendDocumentInput) error
}
