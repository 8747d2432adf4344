// Package export builds xlsx register workbooks for download.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"billforge/internal/domain"
	"billforge/internal/template"
)

// XLSXContentType is the MIME type of the produced workbooks.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var invoiceColumns = []string{
	"Invoice No", "Invoice Date", "Due Date", "Bill To", "GSTIN",
	"Taxable Value", "CGST", "SGST", "IGST", "Amount Due", "Currency", "Payment Mode",
}

var purchaseOrderColumns = []string{
	"PO Number", "PO Date", "Delivery Date", "Vendor", "GSTIN",
	"Taxable Value", "CGST", "SGST", "IGST", "Total Amount", "Currency", "Payment Terms",
}

// InvoiceRegister builds a one-sheet workbook listing the given invoices.
func InvoiceRegister(invoices []domain.Invoice) (*excelize.File, error) {
	rows := make([][]interface{}, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, []interface{}{
			inv.InvoiceNo,
			template.FormatDate(inv.InvoiceDate),
			template.FormatDate(inv.DueDate),
			inv.BillTo.Name,
			inv.BillTo.GSTIN,
			inv.TotalTaxableValue,
			inv.TotalCGSTAmount,
			inv.TotalSGSTAmount,
			inv.TotalIGSTAmount,
			inv.AmountDue,
			inv.Currency,
			string(inv.PaymentMode),
		})
	}
	return buildSheet(invoiceColumns, rows)
}

// PurchaseOrderRegister builds a one-sheet workbook listing the given
// purchase orders.
func PurchaseOrderRegister(orders []domain.PurchaseOrder) (*excelize.File, error) {
	rows := make([][]interface{}, 0, len(orders))
	for _, po := range orders {
		rows = append(rows, []interface{}{
			po.PONumber,
			template.FormatDate(po.PODate),
			template.FormatDate(po.DeliveryDate),
			po.Vendor.Name,
			po.Vendor.GSTIN,
			po.TotalTaxableValue,
			po.TotalCGSTAmount,
			po.TotalSGSTAmount,
			po.TotalIGSTAmount,
			po.TotalAmount,
			po.Currency,
			string(po.PaymentTerms),
		})
	}
	return buildSheet(purchaseOrderColumns, rows)
}

func buildSheet(columns []string, rows [][]interface{}) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("export: header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, fmt.Errorf("export: writing header: %w", err)
		}
	}

	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("export: data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("export: writing row %d: %w", i+1, err)
			}
		}
	}
	return f, nil
}
