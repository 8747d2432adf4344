package domain

import "errors"

var (
	ErrInvoiceNotFound       = errors.New("invoice not found")
	ErrPurchaseOrderNotFound = errors.New("purchase order not found")
	ErrClientNotFound        = errors.New("client not found")
	ErrDuplicateNumber       = errors.New("document number already exists")
	ErrDuplicateGSTIN        = errors.New("gstin already exists")
	ErrInvalidGSTIN          = errors.New("invalid gstin")
	ErrTemplateNotFound      = errors.New("template file not found")
	ErrConversionFailed      = errors.New("pdf conversion failed")
)
