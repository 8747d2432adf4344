package port

import (
	"context"

	"github.com/google/uuid"

	"billforge/internal/domain"
)

// InvoiceRepository is the persistence contract for invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, search string, offset, limit int) ([]domain.Invoice, int, error)
	Update(ctx context.Context, inv *domain.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
	// LastNumberWithPrefix returns the lexicographically greatest invoice
	// number starting with prefix, or "" when the series is empty.
	LastNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}

// PurchaseOrderRepository is the persistence contract for purchase orders.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *domain.PurchaseOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error)
	List(ctx context.Context, search string, offset, limit int) ([]domain.PurchaseOrder, int, error)
	Update(ctx context.Context, po *domain.PurchaseOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
	LastNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}

// ClientRepository is the persistence contract for the counterparty directory.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, search string) ([]domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}
