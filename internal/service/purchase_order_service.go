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

// PurchaseOrderService defines the purchase-order use cases.
type PurchaseOrderService interface {
	Create(ctx context.Context, po *domain.PurchaseOrder) (*domain.PurchaseOrder, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error)
	List(ctx context.Context, search string, page, limit int) ([]domain.PurchaseOrder, int, error)
	Update(ctx context.Context, id uuid.UUID, po *domain.PurchaseOrder) (*domain.PurchaseOrder, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
	DownloadWord(ctx context.Context, id uuid.UUID) (*RenderedDocument, error)
	DownloadPDF(ctx context.Context, id uuid.UUID) (*RenderedDocument, error)
	EmailPDF(ctx context.Context, id uuid.UUID, to string) error
	ExportRegister(ctx context.Context, search string) ([]byte, error)
}

type purchaseOrderService struct {
	repo      port.PurchaseOrderRepository
	allocator *sequence.Allocator
	pipeline  *render.Pipeline
	email     port.EmailSender
	archive   *Archiver
}

// NewPurchaseOrderService creates a PurchaseOrderService implementation.
func NewPurchaseOrderService(repo port.PurchaseOrderRepository, pipeline *render.Pipeline, email port.EmailSender, archive *Archiver) PurchaseOrderService {
	return &purchaseOrderService{
		repo:      repo,
		allocator: sequence.New(repo, domain.KindPurchaseOrder.NumberPrefix()),
		pipeline:  pipeline,
		email:     email,
		archive:   archive,
	}
}

// Create persists a new purchase order, allocating a PO number when none is
// supplied. Sequence collisions with a concurrent creation are retried once.
func (s *purchaseOrderService) Create(ctx context.Context, po *domain.PurchaseOrder) (*domain.PurchaseOrder, error) {
	if po.ID == uuid.Nil {
		po.ID = uuid.New()
	}
	if po.Currency == "" {
		po.Currency = domain.DefaultCurrency
	}
	if po.PaymentTerms == "" {
		po.PaymentTerms = domain.TermsNet30
	}

	allocated := po.PONumber == ""
	for attempt := 0; ; attempt++ {
		if allocated {
			number, err := s.allocator.Next(ctx)
			if err != nil {
				return nil, err
			}
			po.PONumber = number
		}

		err := s.repo.Create(ctx, po)
		if err == nil {
			return po, nil
		}
		if !allocated || !errors.Is(err, domain.ErrDuplicateNumber) || attempt >= 1 {
			return nil, fmt.Errorf("creating purchase order: %w", err)
		}
		log.Printf("purchaseOrderService.Create: number %s collided, reallocating", po.PONumber)
	}
}

func (s *purchaseOrderService) GetByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *purchaseOrderService) List(ctx context.Context, search string, page, limit int) ([]domain.PurchaseOrder, int, error) {
	return s.repo.List(ctx, search, (page-1)*limit, limit)
}

// Update replaces every mutable field; the PO number is immutable once set.
func (s *purchaseOrderService) Update(ctx context.Context, id uuid.UUID, po *domain.PurchaseOrder) (*domain.PurchaseOrder, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	po.ID = existing.ID
	po.PONumber = existing.PONumber
	po.CreatedAt = existing.CreatedAt
	if po.Currency == "" {
		po.Currency = domain.DefaultCurrency
	}
	if po.PaymentTerms == "" {
		po.PaymentTerms = existing.PaymentTerms
	}

	if err := s.repo.Update(ctx, po); err != nil {
		return nil, err
	}
	return po, nil
}

func (s *purchaseOrderService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *purchaseOrderService) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	deleted, err := s.repo.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, domain.ErrPurchaseOrderNotFound
	}
	return deleted, nil
}

func (s *purchaseOrderService) DownloadWord(ctx context.Context, id uuid.UUID) (*RenderedDocument, error) {
	po, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.pipeline.Word(ctx, domain.KindPurchaseOrder, po.WithSignature, template.FromPurchaseOrder(po))
	if err != nil {
		return nil, err
	}

	doc := &RenderedDocument{
		FileName:    fmt.Sprintf("PurchaseOrder_%s.docx", po.PONumber),
		ContentType: result.ContentType,
		Bytes:       result.Bytes,
	}
	s.archive.Store(ctx, doc.FileName, doc.ContentType, doc.Bytes)
	return doc, nil
}

func (s *purchaseOrderService) DownloadPDF(ctx context.Context, id uuid.UUID) (*RenderedDocument, error) {
	po, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.pipeline.PDF(ctx, domain.KindPurchaseOrder, po.WithSignature, template.FromPurchaseOrder(po), "Purchase Order")
	if err != nil {
		return nil, err
	}

	doc := &RenderedDocument{
		FileName:    fmt.Sprintf("PurchaseOrder_%s.pdf", po.PONumber),
		ContentType: result.ContentType,
		Bytes:       result.Bytes,
		Degraded:    result.Degraded,
	}
	if !doc.Degraded {
		s.archive.Store(ctx, doc.FileName, doc.ContentType, doc.Bytes)
	}
	return doc, nil
}

func (s *purchaseOrderService) EmailPDF(ctx context.Context, id uuid.UUID, to string) error {
	po, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	result, err := s.pipeline.PDF(ctx, domain.KindPurchaseOrder, po.WithSignature, template.FromPurchaseOrder(po), "Purchase Order")
	if err != nil {
		return err
	}

	return s.email.SendDocument(ctx, port.SendDocumentInput{
		To:          to,
		Subject:     fmt.Sprintf("Purchase Order %s", po.PONumber),
		BodyText:    fmt.Sprintf("Please find purchase order %s attached.", po.PONumber),
		FileName:    fmt.Sprintf("PurchaseOrder_%s.pdf", po.PONumber),
		ContentType: result.ContentType,
		Attachment:  result.Bytes,
	})
}

func (s *purchaseOrderService) ExportRegister(ctx context.Context, search string) ([]byte, error) {
	orders, _, err := s.repo.List(ctx, search, 0, exportLimit)
	if err != nil {
		return nil, err
	}

	f, err := export.PurchaseOrderRegister(orders)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("exporting purchase order register: %w", err)
	}
	return buf.Bytes(), nil
}
