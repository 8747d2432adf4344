package domain

// DocumentKind distinguishes the two billing-document series.
type DocumentKind string

const (
	KindInvoice       DocumentKind = "invoice"
	KindPurchaseOrder DocumentKind = "purchase-order"
)

// NumberPrefix returns the document-number series prefix for the kind.
func (k DocumentKind) NumberPrefix() string {
	if k == KindPurchaseOrder {
		return "PO"
	}
	return "INV"
}

// PaymentMode is how an invoice is settled.
type PaymentMode string

const (
	PaymentBankTransfer PaymentMode = "bank-transfer"
	PaymentCreditCard   PaymentMode = "credit-card"
	PaymentDebitCard    PaymentMode = "debit-card"
	PaymentUPI          PaymentMode = "upi"
	PaymentCash         PaymentMode = "cash"
	PaymentCheque       PaymentMode = "cheque"
)

// PaymentTerms is the settlement schedule on a purchase order.
type PaymentTerms string

const (
	TermsNet30     PaymentTerms = "net-30"
	TermsNet60     PaymentTerms = "net-60"
	TermsNet90     PaymentTerms = "net-90"
	TermsCOD       PaymentTerms = "cod"
	TermsAdvance   PaymentTerms = "advance"
	TermsImmediate PaymentTerms = "immediate"
)

// DefaultCurrency is applied when a document arrives without a currency code.
const DefaultCurrency = "USD"
