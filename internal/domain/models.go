package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PartyAddress identifies one side of a billing document (bill-to, ship-to,
// vendor or deliver-to). Stored as a JSONB column.
type PartyAddress struct {
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address" binding:"required"`
	StateCode string `json:"state_code" binding:"required"`
	GSTIN     string `json:"gstin" binding:"required"`
	PAN       string `json:"pan,omitempty"`
}

// Value implements driver.Valuer for JSONB storage.
func (p PartyAddress) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner for JSONB storage.
func (p *PartyAddress) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("cannot scan %T into PartyAddress", src)
	}
}

// LineItem is one billable row on a document. Totals are caller-supplied and
// never recomputed here.
type LineItem struct {
	Description  string  `json:"description" binding:"required"`
	HSNSAC       string  `json:"hsn_sac"`
	Quantity     float64 `json:"quantity" binding:"required,gte=1"`
	Rate         float64 `json:"rate" binding:"gte=0"`
	TaxableValue float64 `json:"taxable_value" binding:"gte=0"`
	GSTRate      float64 `json:"gst_rate" binding:"gte=0"`
	GSTAmount    float64 `json:"gst_amount" binding:"gte=0"`
	Total        float64 `json:"total" binding:"gte=0"`
}

// LineItems is an ordered list of line items stored as a JSONB column.
// Insertion order is significant: template placeholder keys are positional.
type LineItems []LineItem

// Value implements driver.Valuer for JSONB storage.
func (l LineItems) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSONB storage.
func (l *LineItems) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into LineItems", src)
	}
}

// Invoice is a persisted sales invoice. InvoiceNo is assigned once at first
// persistence and never regenerated.
type Invoice struct {
	ID                uuid.UUID    `db:"id" json:"id"`
	InvoiceNo         string       `db:"invoice_no" json:"invoice_no"`
	POReference       string       `db:"po_reference" json:"po_reference"`
	InvoiceDate       Date         `db:"invoice_date" json:"invoice_date" binding:"required"`
	DueDate           Date         `db:"due_date" json:"due_date" binding:"required"`
	ReferenceDate     *Date        `db:"reference_date" json:"reference_date,omitempty"`
	Currency          string       `db:"currency" json:"currency"`
	AmountDue         float64      `db:"amount_due" json:"amount_due" binding:"gte=0"`
	PaymentMode       PaymentMode  `db:"payment_mode" json:"payment_mode" binding:"omitempty,oneof=bank-transfer credit-card debit-card upi cash cheque"`
	BillTo            PartyAddress `db:"bill_to" json:"bill_to" binding:"required"`
	ShipTo            PartyAddress `db:"ship_to" json:"ship_to" binding:"required"`
	Items             LineItems    `db:"items" json:"items" binding:"required,min=1,dive"`
	TotalTaxableValue float64      `db:"total_taxable_value" json:"total_taxable_value" binding:"gte=0"`
	TotalCGSTAmount   float64      `db:"total_cgst_amount" json:"total_cgst_amount" binding:"gte=0"`
	TotalSGSTAmount   float64      `db:"total_sgst_amount" json:"total_sgst_amount" binding:"gte=0"`
	TotalIGSTAmount   float64      `db:"total_igst_amount" json:"total_igst_amount" binding:"gte=0"`
	ValueInWords      string       `db:"value_in_words" json:"value_in_words" binding:"required"`
	WithSignature     bool         `db:"with_signature" json:"with_signature"`
	CreatedAt         time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time    `db:"updated_at" json:"updated_at"`
}

// PurchaseOrder is a persisted purchase order. PONumber follows the same
// assignment rules as Invoice.InvoiceNo.
type PurchaseOrder struct {
	ID                uuid.UUID    `db:"id" json:"id"`
	PONumber          string       `db:"po_number" json:"po_number"`
	POReference       string       `db:"po_reference" json:"po_reference"`
	PODate            Date         `db:"po_date" json:"po_date" binding:"required"`
	DeliveryDate      Date         `db:"delivery_date" json:"delivery_date" binding:"required"`
	ReferenceDate     *Date        `db:"reference_date" json:"reference_date,omitempty"`
	Currency          string       `db:"currency" json:"currency"`
	TotalAmount       float64      `db:"total_amount" json:"total_amount" binding:"gte=0"`
	PaymentTerms      PaymentTerms `db:"payment_terms" json:"payment_terms" binding:"omitempty,oneof=net-30 net-60 net-90 cod advance immediate"`
	Vendor            PartyAddress `db:"vendor" json:"vendor" binding:"required"`
	DeliverTo         PartyAddress `db:"deliver_to" json:"deliver_to" binding:"required"`
	Items             LineItems    `db:"items" json:"items" binding:"required,min=1,dive"`
	TotalTaxableValue float64      `db:"total_taxable_value" json:"total_taxable_value" binding:"gte=0"`
	TotalCGSTAmount   float64      `db:"total_cgst_amount" json:"total_cgst_amount" binding:"gte=0"`
	TotalSGSTAmount   float64      `db:"total_sgst_amount" json:"total_sgst_amount" binding:"gte=0"`
	TotalIGSTAmount   float64      `db:"total_igst_amount" json:"total_igst_amount" binding:"gte=0"`
	ValueInWords      string       `db:"value_in_words" json:"value_in_words" binding:"required"`
	WithSignature     bool         `db:"with_signature" json:"with_signature"`
	CreatedAt         time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time    `db:"updated_at" json:"updated_at"`
}

// Client is an entry in the counterparty directory.
type Client struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name" binding:"required"`
	Address   string    `db:"address" json:"address" binding:"required"`
	StateCode string    `db:"state_code" json:"state_code" binding:"required,len=2,numeric"`
	GSTIN     string    `db:"gstin" json:"gstin" binding:"required"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
