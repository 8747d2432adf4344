// Package template flattens billing documents into the fixed placeholder set
// consumed by the Word templates. The binding is strongly typed so a missing
// field is a compile error, not a render-time surprise.
package template

import (
	"strconv"

	"billforge/internal/domain"
)

// MaxRows is the number of line-item slots in the templates. Items beyond
// MaxRows are not represented in the rendered document.
// TODO: decide whether >MaxRows items should be rejected at creation instead
// of silently truncated here.
const MaxRows = 4

// Party is the placeholder view of one address block.
type Party struct {
	Name      string
	Address   string
	StateCode string
	GSTIN     string
}

// Row is the placeholder view of one line-item slot.
type Row struct {
	Description  string
	HSNSAC       string
	Quantity     string
	Rate         string
	TaxableValue string
	GSTRate      string
	GSTAmount    string
	Total        string
}

// Binding carries every placeholder value for one document. A nil row slot is
// an explicitly absent row: its keys still appear in the placeholder map so no
// raw token survives in the output.
type Binding struct {
	numberKey string
	dateKey   string

	DocumentNo        string
	Date              string
	DueDate           string
	Reference         string
	ReferenceDate     string
	Currency          string
	AmountDue         string
	PaymentMode       string
	TotalTaxableValue string
	CGST              string
	SGST              string
	IGST              string
	ValueInWords      string

	BillTo Party
	ShipTo Party

	Rows [MaxRows]*Row

	// Truncated counts items that did not fit into the template slots.
	Truncated int
}

// FromInvoice builds the binding for an invoice.
func FromInvoice(inv *domain.Invoice) Binding {
	b := Binding{
		numberKey:         "InvoiceNo",
		dateKey:           "invoiceDate",
		DocumentNo:        inv.InvoiceNo,
		Date:              FormatDate(inv.InvoiceDate),
		DueDate:           FormatDate(inv.DueDate),
		Reference:         inv.POReference,
		Currency:          inv.Currency,
		AmountDue:         FormatMoney(inv.AmountDue),
		PaymentMode:       string(inv.PaymentMode),
		TotalTaxableValue: FormatMoney(inv.TotalTaxableValue),
		CGST:              FormatMoney(inv.TotalCGSTAmount),
		SGST:              FormatMoney(inv.TotalSGSTAmount),
		IGST:              FormatMoney(inv.TotalIGSTAmount),
		ValueInWords:      inv.ValueInWords,
		BillTo:            partyOf(inv.BillTo),
		ShipTo:            partyOf(inv.ShipTo),
	}
	if inv.ReferenceDate != nil {
		b.ReferenceDate = FormatDate(*inv.ReferenceDate)
	}
	b.fillRows(inv.Items)
	return b
}

// FromPurchaseOrder builds the binding for a purchase order. The templates
// reuse the BillTo/ShipTo key set for vendor and deliver-to blocks.
func FromPurchaseOrder(po *domain.PurchaseOrder) Binding {
	b := Binding{
		numberKey:         "PurchaseOrderNo",
		dateKey:           "poDate",
		DocumentNo:        po.PONumber,
		Date:              FormatDate(po.PODate),
		DueDate:           FormatDate(po.DeliveryDate),
		Reference:         po.POReference,
		Currency:          po.Currency,
		AmountDue:         FormatMoney(po.TotalAmount),
		PaymentMode:       string(po.PaymentTerms),
		TotalTaxableValue: FormatMoney(po.TotalTaxableValue),
		CGST:              FormatMoney(po.TotalCGSTAmount),
		SGST:              FormatMoney(po.TotalSGSTAmount),
		IGST:              FormatMoney(po.TotalIGSTAmount),
		ValueInWords:      po.ValueInWords,
		BillTo:            partyOf(po.Vendor),
		ShipTo:            partyOf(po.DeliverTo),
	}
	if po.ReferenceDate != nil {
		b.ReferenceDate = FormatDate(*po.ReferenceDate)
	}
	b.fillRows(po.Items)
	return b
}

func partyOf(p domain.PartyAddress) Party {
	return Party{Name: p.Name, Address: p.Address, StateCode: p.StateCode, GSTIN: p.GSTIN}
}

func (b *Binding) fillRows(items domain.LineItems) {
	for i, item := range items {
		if i >= MaxRows {
			b.Truncated = len(items) - MaxRows
			break
		}
		b.Rows[i] = &Row{
			Description:  item.Description,
			HSNSAC:       item.HSNSAC,
			Quantity:     FormatQuantity(item.Quantity),
			Rate:         FormatMoney(item.Rate),
			TaxableValue: FormatMoney(item.TaxableValue),
			GSTRate:      FormatPercent(item.GSTRate),
			GSTAmount:    FormatMoney(item.GSTAmount),
			Total:        FormatMoney(item.Total),
		}
	}
}

// Placeholders flattens the binding into the key set the templates expect.
// Absent row slots map to nil so the renderer blanks them out.
func (b Binding) Placeholders() map[string]interface{} {
	m := map[string]interface{}{
		b.numberKey:              b.DocumentNo,
		b.dateKey:                b.Date,
		"DueDate":                b.DueDate,
		"purchaseorderreference": b.Reference,
		"referenceDate":          b.ReferenceDate,
		"Currency":               b.Currency,
		"AmountDue":              b.AmountDue,
		"PaymentMode":            b.PaymentMode,
		"TotalTaxableValue":      b.TotalTaxableValue,
		"ValueInFigure":          b.ValueInWords,
		"CGST":                   b.CGST,
		"SGST":                   b.SGST,
		"IGST":                   b.IGST,

		"BillToClientName": b.BillTo.Name,
		"BillToAddress":    b.BillTo.Address,
		"BillToStateCode":  b.BillTo.StateCode,
		"BillToGSTIN":      b.BillTo.GSTIN,

		"ShipToClientName": b.ShipTo.Name,
		"ShipToAddress":    b.ShipTo.Address,
		"ShipToStateCode":  b.ShipTo.StateCode,
		"ShipToGSTIN":      b.ShipTo.GSTIN,
	}

	for i := 0; i < MaxRows; i++ {
		n := strconv.Itoa(i + 1)
		row := b.Rows[i]
		if row == nil {
			for _, key := range []string{"SL", "Description", "HSN_SAC", "Quantity", "Rate", "TaxableValue", "GSTRate", "GSTAmount", "Total"} {
				m[key+n] = nil
			}
			continue
		}
		m["SL"+n] = n
		m["Description"+n] = row.Description
		m["HSN_SAC"+n] = row.HSNSAC
		m["Quantity"+n] = row.Quantity
		m["Rate"+n] = row.Rate
		m["TaxableValue"+n] = row.TaxableValue
		m["GSTRate"+n] = row.GSTRate
		m["GSTAmount"+n] = row.GSTAmount
		m["Total"+n] = row.Total
	}
	return m
}
