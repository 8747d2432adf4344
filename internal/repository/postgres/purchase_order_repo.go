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

type purchaseOrderRepo struct {
	db *sqlx.DB
}

// NewPurchaseOrderRepo creates a PostgreSQL-backed PurchaseOrderRepository.
func NewPurchaseOrderRepo(db *sqlx.DB) port.PurchaseOrderRepository {
	return &purchaseOrderRepo{db: db}
}

func (r *purchaseOrderRepo) Create(ctx context.Context, po *domain.PurchaseOrder) error {
	now := time.Now().UTC()
	po.CreatedAt = now
	po.UpdatedAt = now

	query := `INSERT INTO purchase_orders (
			id, po_number, po_reference, po_date, delivery_date, reference_date,
			currency, total_amount, payment_terms, vendor, deliver_to, items,
			total_taxable_value, total_cgst_amount, total_sgst_amount, total_igst_amount,
			value_in_words, with_signature, created_at, updated_at)
		VALUES (
			:id, :po_number, :po_reference, :po_date, :delivery_date, :reference_date,
			:currency, :total_amount, :payment_terms, :vendor, :deliver_to, :items,
			:total_taxable_value, :total_cgst_amount, :total_sgst_amount, :total_igst_amount,
			:value_in_words, :with_signature, :created_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, po)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateNumber, po.PONumber)
		}
		return fmt.Errorf("purchaseOrderRepo.Create: %w", err)
	}
	return nil
}

func (r *purchaseOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error) {
	var po domain.PurchaseOrder
	err := r.db.GetContext(ctx, &po, "SELECT * FROM purchase_orders WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPurchaseOrderNotFound
		}
		return nil, fmt.Errorf("purchaseOrderRepo.GetByID: %w", err)
	}
	return &po, nil
}

func (r *purchaseOrderRepo) List(ctx context.Context, search string, offset, limit int) ([]domain.PurchaseOrder, int, error) {
	where := `($1 = ''
		OR vendor->>'name' ILIKE '%' || $1 || '%'
		OR po_number ILIKE '%' || $1 || '%'
		OR vendor->>'gstin' ILIKE '%' || $1 || '%')`

	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM purchase_orders WHERE "+where, search)
	if err != nil {
		return nil, 0, fmt.Errorf("purchaseOrderRepo.List count: %w", err)
	}

	var orders []domain.PurchaseOrder
	err = r.db.SelectContext(ctx, &orders,
		"SELECT * FROM purchase_orders WHERE "+where+
			" ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		search, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("purchaseOrderRepo.List: %w", err)
	}
	return orders, total, nil
}

func (r *purchaseOrderRepo) Update(ctx context.Context, po *domain.PurchaseOrder) error {
	po.UpdatedAt = time.Now().UTC()

	query := `UPDATE purchase_orders SET
			po_reference = :po_reference, po_date = :po_date,
			delivery_date = :delivery_date, reference_date = :reference_date,
			currency = :currency, total_amount = :total_amount, payment_terms = :payment_terms,
			vendor = :vendor, deliver_to = :deliver_to, items = :items,
			total_taxable_value = :total_taxable_value, total_cgst_amount = :total_cgst_amount,
			total_sgst_amount = :total_sgst_amount, total_igst_amount = :total_igst_amount,
			value_in_words = :value_in_words, with_signature = :with_signature,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, po)
	if err != nil {
		return fmt.Errorf("purchaseOrderRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPurchaseOrderNotFound
	}
	return nil
}

func (r *purchaseOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM purchase_orders WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("purchaseOrderRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPurchaseOrderNotFound
	}
	return nil
}

func (r *purchaseOrderRepo) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In("DELETE FROM purchase_orders WHERE id IN (?)", ids)
	if err != nil {
		return 0, fmt.Errorf("purchaseOrderRepo.DeleteByIDs: %w", err)
	}
	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("purchaseOrderRepo.DeleteByIDs: %w", err)
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

func (r *purchaseOrderRepo) LastNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	var number string
	err := r.db.GetContext(ctx, &number,
		`SELECT po_number FROM purchase_orders
		 WHERE po_number LIKE $1 || '%'
		 ORDER BY po_number DESC LIMIT 1`, prefix)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("purchaseOrderRepo.LastNumberWithPrefix: %w", err)
	}
	return number, nil
}
