package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"billforge/internal/domain"
	"billforge/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	query := `INSERT INTO invoices (
			id, invoice_no, po_reference, invoice_date, due_date, reference_date,
			currency, amount_due, payment_mode, bill_to, ship_to, items,
			total_taxable_value, total_cgst_amount, total_sgst_amount, total_igst_amount,
			value_in_words, with_signature, created_at, updated_at)
		VALUES (
			:id, :invoice_no, :po_reference, :invoice_date, :due_date, :reference_date,
			:currency, :amount_due, :payment_mode, :bill_to, :ship_to, :items,
			:total_taxable_value, :total_cgst_amount, :total_sgst_amount, :total_igst_amount,
			:value_in_words, :with_signature, :created_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, inv)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateNumber, inv.InvoiceNo)
		}
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv, "SELECT * FROM invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return &inv, nil
}

func (r *invoiceRepo) List(ctx context.Context, search string, offset, limit int) ([]domain.Invoice, int, error) {
	where := `($1 = ''
		OR bill_to->>'name' ILIKE '%' || $1 || '%'
		OR invoice_no ILIKE '%' || $1 || '%'
		OR bill_to->>'gstin' ILIKE '%' || $1 || '%')`

	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM invoices WHERE "+where, search)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	var invoices []domain.Invoice
	err = r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM invoices WHERE "+where+
			" ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		search, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) Update(ctx context.Context, inv *domain.Invoice) error {
	inv.UpdatedAt = time.Now().UTC()

	query := `UPDATE invoices SET
			po_reference = :po_reference, invoice_date = :invoice_date,
			due_date = :due_date, reference_date = :reference_date,
			currency = :currency, amount_due = :amount_due, payment_mode = :payment_mode,
			bill_to = :bill_to, ship_to = :ship_to, items = :items,
			total_taxable_value = :total_taxable_value, total_cgst_amount = :total_cgst_amount,
			total_sgst_amount = :total_sgst_amount, total_igst_amount = :total_igst_amount,
			value_in_words = :value_in_words, with_signature = :with_signature,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, inv)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func (r *invoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM invoices WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func (r *invoiceRepo) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In("DELETE FROM invoices WHERE id IN (?)", ids)
	if err != nil {
		return 0, fmt.Errorf("invoiceRepo.DeleteByIDs: %w", err)
	}
	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("invoiceRepo.DeleteByIDs: %w", err)
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

func (r *invoiceRepo) LastNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	var number string
	err := r.db.GetContext(ctx, &number,
		`SELECT invoice_no FROM invoices
		 WHERE invoice_no LIKE $1 || '%'
		 ORDER BY invoice_no DESC LIMIT 1`, prefix)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("invoiceRepo.LastNumberWithPrefix: %w", err)
	}
	return number, nil
}
