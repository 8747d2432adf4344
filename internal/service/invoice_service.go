package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"billforge/internal/domain"
	"billforge/internal/export"
	"billforge/internal/port"
	"billforge/internal/render"
	"billforge/internal/sequence"
	"billforge/internal/template"
)

// RenderedDocument is a downloadable artifact produced by the render pipeline.
type RenderedDocument struct {
	FileName    string
	ContentType string
	Bytes       []byte
	// Degraded marks fallback output produced when PDF conversion failed.
	Degraded bool
}

// exportLimit caps how many records a register export reads.
const exportLimit = 10000

// InvoiceService defines the invoice use cases.
type InvoiceService interface {
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, search string, page, limit int) ([]domain.Invoice, int, error)
	Update(ctx context.Context, id uuid.UUID, inv *domain.Invoice) (*domain.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
	DownloadWord(ctx context.Context, id uuid.UUID) (*RenderedDocument, error)
	DownloadPDF(ctx context.Context, id uuid.UUID) (*RenderedDocument, error)
	EmailPDF(ctx context.Context, id uuid.UUID, to string) error
	ExportRegister(ctx context.Context, search string) ([]byte, error)
}

type invoiceService struct {
	repo      port.InvoiceRepository
	allocator *sequence.Allocator
	pipeline  *render.Pipeline
	email     port.EmailSender
	archive   *Archiver
}

// NewInvoiceService creates an InvoiceService implementation.
func NewInvoiceService(repo port.InvoiceRepository, pipeline *render.Pipeline, email port.EmailSender, archive *Archiver) InvoiceService {
	return &invoiceService{
		repo:      repo,
		allocator: sequence.New(repo, domain.KindInvoice.NumberPrefix()),
		pipeline:  pipeline,
		email:     email,
		archive:   archive,
	}
}

// Create persists a new invoice. A number is allocated only when the incoming
// record carries none; a record arriving with a number keeps it. Because two
// concurrent creations can race to the same sequence value, a duplicate on an
// allocated number is retried exactly once with a fresh allocation.
func (s *invoiceService) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	if inv.Currency == "" {
		inv.Currency = domain.DefaultCurrency
	}
	if inv.PaymentMode == "" {
		inv.PaymentMode = domain.PaymentBankTransfer
	}

	allocated := inv.InvoiceNo == ""
	for attempt := 0; ; attempt++ {
		if allocated {
			number, err := s.allocator.Next(ctx)
			if err != nil {
				return nil, err
			}
			inv.InvoiceNo = number
		}

		err := s.repo.Create(ctx, inv)
		if err == nil {
			return inv, nil
		}
		if !allocated || !errors.Is(err, domain.ErrDuplicateNumber) || attempt >= 1 {
			return nil, fmt.Errorf("creating invoice: %w", err)
		}
		log.Printf("invoiceService.Create: number %s collided, reallocating", inv.InvoiceNo)
	}
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *invoiceService) List(ctx context.Context, search string, page, limit int) ([]domain.Invoice, int, error) {
	return s.repo.List(ctx, search, (page-1)*limit, limit)
}

// Update replaces every mutable field. The invoice number, once assigned, is
// never regenerated or overwritten.
func (s *invoiceService) Update(ctx context.Context, id uuid.UUID, inv *domain.Invoice) (*domain.Invoice, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	inv.ID = existing.ID
	inv.InvoiceNo = existing.InvoiceNo
	inv.CreatedAt = existing.CreatedAt
	if inv.Currency == "" {
		inv.Currency = domain.DefaultCurrency
	}
	if inv.PaymentMode == "" {
		inv.PaymentMode = existing.PaymentMode
	}

	if err := s.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// DeleteMany removes the given invoices in one bulk operation. Returns
// ErrInvoiceNotFound when nothing matched.
func (s *invoiceService) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	deleted, err := s.repo.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, domain.ErrInvoiceNotFound
	}
	return deleted, nil
}

func (s *invoiceService) DownloadWord(ctx context.Context, id uuid.UUID) (*RenderedDocument, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.pipeline.Word(ctx, domain.KindInvoice, inv.WithSignature, template.FromInvoice(inv))
	if err != nil {
		return nil, err
	}

	doc := &RenderedDocument{
		FileName:    fmt.Sprintf("Invoice_%s.docx", inv.InvoiceNo),
		ContentType: result.ContentType,
		Bytes:       result.Bytes,
	}
	s.archive.Store(ctx, doc.FileName, doc.ContentType, doc.Bytes)
	return doc, nil
}

func (s *invoiceService) DownloadPDF(ctx context.Context, id uuid.UUID) (*RenderedDocument, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.pipeline.PDF(ctx, domain.KindInvoice, inv.WithSignature, template.FromInvoice(inv), "Invoice")
	if err != nil {
		return nil, err
	}

	doc := &RenderedDocument{
		FileName:    fmt.Sprintf("Invoice_%s.pdf", inv.InvoiceNo),
		ContentType: result.ContentType,
		Bytes:       result.Bytes,
		Degraded:    result.Degraded,
	}
	if !doc.Degraded {
		s.archive.Store(ctx, doc.FileName, doc.ContentType, doc.Bytes)
	}
	return doc, nil
}

// EmailPDF renders the invoice as PDF and sends it to the given address.
func (s *invoiceService) EmailPDF(ctx context.Context, id uuid.UUID, to string) error {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	result, err := s.pipeline.PDF(ctx, domain.KindInvoice, inv.WithSignature, template.FromInvoice(inv), "Invoice")
	if err != nil {
		return err
	}

	return s.email.SendDocument(ctx, port.SendDocumentInput{
		To:          to,
		Subject:     fmt.Sprintf("Invoice %s", inv.InvoiceNo),
		BodyText:    fmt.Sprintf("Please find invoice %s attached.", inv.InvoiceNo),
		FileName:    fmt.Sprintf("Invoice_%s.pdf", inv.InvoiceNo),
		ContentType: result.ContentType,
		Attachment:  result.Bytes,
	})
}

// ExportRegister builds an xlsx register of matching invoices.
func (s *invoiceService) ExportRegister(ctx context.Context, search string) ([]byte, error) {
	invoices, _, err := s.repo.List(ctx, search, 0, exportLimit)
	if err != nil {
		return nil, err
	}

	f, err := export.InvoiceRegister(invoices)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("exporting invoice register: %w", err)
	}
	return buf.Bytes(), nil
}
