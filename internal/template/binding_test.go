package template_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billforge/internal/domain"
	"billforge/internal/template"
)

func sampleInvoice(items int) *domain.Invoice {
	inv := &domain.Invoice{
		InvoiceNo:         "INV-250314-001",
		POReference:       "PO-250301-002",
		InvoiceDate:       domain.NewDate(2025, time.March, 14),
		DueDate:           domain.NewDate(2025, time.April, 13),
		Currency:          "INR",
		AmountDue:         1180,
		PaymentMode:       domain.PaymentBankTransfer,
		TotalTaxableValue: 1000,
		TotalCGSTAmount:   90,
		TotalSGSTAmount:   90,
		ValueInWords:      "One Thousand One Hundred Eighty Only",
		BillTo: domain.PartyAddress{
			Name: "Acme Traders", Address: "12 MG Road, Bengaluru",
			StateCode: "29", GSTIN: "29ABCDE1234F1Z5",
		},
		ShipTo: domain.PartyAddress{
			Name: "Acme Warehouse", Address: "Plot 7, Hosur Road",
			StateCode: "29", GSTIN: "29ABCDE1234F1Z5",
		},
	}
	for i := 0; i < items; i++ {
		inv.Items = append(inv.Items, domain.LineItem{
			Description:  "Widget",
			HSNSAC:       "8479",
			Quantity:     2,
			Rate:         250,
			TaxableValue: 500,
			GSTRate:      18,
			GSTAmount:    90,
			Total:        590,
		})
	}
	return inv
}

func TestFromInvoice_ScalarPlaceholders(t *testing.T) {
	b := template.FromInvoice(sampleInvoice(1))
	m := b.Placeholders()

	assert.Equal(t, "INV-250314-001", m["InvoiceNo"])
	assert.Equal(t, "14/03/2025", m["invoiceDate"])
	assert.Equal(t, "13/04/2025", m["DueDate"])
	assert.Equal(t, "PO-250301-002", m["purchaseorderreference"])
	assert.Equal(t, "INR", m["Currency"])
	assert.Equal(t, "1180.00", m["AmountDue"])
	assert.Equal(t, "bank-transfer", m["PaymentMode"])
	assert.Equal(t, "1000.00", m["TotalTaxableValue"])
	assert.Equal(t, "90.00", m["CGST"])
	assert.Equal(t, "90.00", m["SGST"])
	assert.Equal(t, "0.00", m["IGST"])
	assert.Equal(t, "One Thousand One Hundred Eighty Only", m["ValueInFigure"])
	assert.Equal(t, "Acme Traders", m["BillToClientName"])
	assert.Equal(t, "29ABCDE1234F1Z5", m["ShipToGSTIN"])

	// No reference date supplied: the key still exists, as an empty string.
	assert.Contains(t, m, "referenceDate")
	assert.Equal(t, "", m["referenceDate"])
}

func TestFromInvoice_RowSlots(t *testing.T) {
	b := template.FromInvoice(sampleInvoice(2))
	m := b.Placeholders()

	// Populated slots carry formatted values and a 1-based serial.
	assert.Equal(t, "1", m["SL1"])
	assert.Equal(t, "Widget", m["Description1"])
	assert.Equal(t, "8479", m["HSN_SAC1"])
	assert.Equal(t, "2", m["Quantity1"])
	assert.Equal(t, "250.00", m["Rate1"])
	assert.Equal(t, "18%", m["GSTRate1"])
	assert.Equal(t, "590.00", m["Total2"])

	// Unused slots still have every key, set to nil, so the renderer can
	// blank the tokens.
	for _, key := range []string{"SL3", "Description3", "Quantity4", "Total4"} {
		require.Contains(t, m, key)
		assert.Nil(t, m[key])
	}
	assert.Zero(t, b.Truncated)
}

func TestFromInvoice_TruncatesBeyondMaxRows(t *testing.T) {
	b := template.FromInvoice(sampleInvoice(6))

	assert.Equal(t, 2, b.Truncated)
	m := b.Placeholders()
	assert.Equal(t, "Widget", m["Description4"])
	assert.NotContains(t, m, "Description5")
}

func TestFromPurchaseOrder_UsesPOKeys(t *testing.T) {
	refDate := domain.NewDate(2025, time.February, 28)
	po := &domain.PurchaseOrder{
		PONumber:      "PO-250314-002",
		PODate:        domain.NewDate(2025, time.March, 14),
		DeliveryDate:  domain.NewDate(2025, time.March, 28),
		ReferenceDate: &refDate,
		Currency:      "INR",
		TotalAmount:   590,
		PaymentTerms:  domain.TermsNet30,
		Vendor:        domain.PartyAddress{Name: "Supply Co"},
		DeliverTo:     domain.PartyAddress{Name: "Main Plant"},
		Items:         domain.LineItems{{Description: "Bolt", Quantity: 100, Total: 590}},
	}

	m := template.FromPurchaseOrder(po).Placeholders()

	assert.Equal(t, "PO-250314-002", m["PurchaseOrderNo"])
	assert.Equal(t, "14/03/2025", m["poDate"])
	assert.Equal(t, "28/03/2025", m["DueDate"])
	assert.Equal(t, "28/02/2025", m["referenceDate"])
	assert.Equal(t, "net-30", m["PaymentMode"])
	assert.Equal(t, "Supply Co", m["BillToClientName"])
	assert.Equal(t, "Main Plant", m["ShipToClientName"])
	assert.NotContains(t, m, "InvoiceNo")
}

func TestFormatMoney_RoundTrip(t *testing.T) {
	formatted := template.FormatMoney(1234.5)
	assert.Equal(t, "1234.50", formatted)

	parsed, err := template.ParseMoney(formatted)
	require.NoError(t, err)
	assert.Equal(t, 1234.5, parsed)
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "18%", template.FormatPercent(18))
	assert.Equal(t, "2.5%", template.FormatPercent(2.5))
	assert.Equal(t, "0%", template.FormatPercent(0))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "3", template.FormatQuantity(3))
	assert.Equal(t, "1.5", template.FormatQuantity(1.5))
}
