package render_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billforge/internal/domain"
	"billforge/internal/render"
	"billforge/internal/template"
	"billforge/mocks"
)

// buildTemplateDocx builds a minimal Word document with placeholder tokens in
// the body.
func buildTemplateDocx(t *testing.T) []byte {
	t.Helper()

	const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>Invoice {InvoiceNo} dated {invoiceDate} item {Description1} unused {Description4}</w:t></w:r></w:p></w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// documentXMLOf extracts word/document.xml from a rendered docx.
func documentXMLOf(t *testing.T, docxBytes []byte) string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(docxBytes), int64(len(docxBytes)))
	require.NoError(t, err)
	for _, zf := range zr.File {
		if zf.Name != "word/document.xml" {
			continue
		}
		rc, err := zf.Open()
		require.NoError(t, err)
		defer rc.Close()
		raw, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(raw)
	}
	t.Fatal("word/document.xml not found in rendered output")
	return ""
}

func testBinding() template.Binding {
	return template.FromInvoice(&domain.Invoice{
		InvoiceNo:   "INV-250314-001",
		InvoiceDate: domain.NewDate(2025, time.March, 14),
		DueDate:     domain.NewDate(2025, time.April, 13),
		Items:       domain.LineItems{{Description: "Widget", Quantity: 1, Total: 590}},
	})
}

func TestPipeline_Word_SubstitutesPlaceholders(t *testing.T) {
	templates := new(mocks.MockTemplateStore)
	templates.On("Load", mock.Anything, "invoice.docx").Return(buildTemplateDocx(t), nil)
	converter := new(mocks.MockPDFConverter)

	p := render.NewPipeline(templates, converter)
	result, err := p.Word(context.Background(), domain.KindInvoice, false, testBinding())

	require.NoError(t, err)
	assert.Equal(t, render.WordContentType, result.ContentType)
	assert.False(t, result.Degraded)

	xml := documentXMLOf(t, result.Bytes)
	assert.Contains(t, xml, "INV-250314-001")
	assert.Contains(t, xml, "14/03/2025")
	assert.Contains(t, xml, "Widget")
	assert.NotContains(t, xml, "{InvoiceNo}")
	// The unused row slot token is blanked, not left behind.
	assert.NotContains(t, xml, "{Description4}")
	templates.AssertExpectations(t)
}

func TestPipeline_Word_SignedVariantSelectsTemplate(t *testing.T) {
	templates := new(mocks.MockTemplateStore)
	templates.On("Load", mock.Anything, "invoice_signed.docx").Return(buildTemplateDocx(t), nil)

	p := render.NewPipeline(templates, new(mocks.MockPDFConverter))
	_, err := p.Word(context.Background(), domain.KindInvoice, true, testBinding())

	require.NoError(t, err)
	templates.AssertExpectations(t)
}

func TestPipeline_Word_MissingTemplate(t *testing.T) {
	templates := new(mocks.MockTemplateStore)
	templates.On("Load", mock.Anything, "invoice.docx").Return(nil, domain.ErrTemplateNotFound)

	p := render.NewPipeline(templates, new(mocks.MockPDFConverter))
	_, err := p.Word(context.Background(), domain.KindInvoice, false, testBinding())

	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestPipeline_PDF_Converts(t *testing.T) {
	templates := new(mocks.MockTemplateStore)
	templates.On("Load", mock.Anything, "invoice.docx").Return(buildTemplateDocx(t), nil)
	converter := new(mocks.MockPDFConverter)
	converter.On("Convert", mock.Anything, mock.Anything).Return([]byte("%PDF-1.7 converted"), nil)

	p := render.NewPipeline(templates, converter)
	result, err := p.PDF(context.Background(), domain.KindInvoice, false, testBinding(), "Invoice")

	require.NoError(t, err)
	assert.Equal(t, render.PDFContentType, result.ContentType)
	assert.False(t, result.Degraded)
	assert.Equal(t, []byte("%PDF-1.7 converted"), result.Bytes)
}

func TestPipeline_PDF_DegradesWhenConversionFails(t *testing.T) {
	templates := new(mocks.MockTemplateStore)
	templates.On("Load", mock.Anything, "invoice.docx").Return(buildTemplateDocx(t), nil)
	converter := new(mocks.MockPDFConverter)
	converter.On("Convert", mock.Anything, mock.Anything).Return(nil, domain.ErrConversionFailed)

	p := render.NewPipeline(templates, converter)
	result, err := p.PDF(context.Background(), domain.KindInvoice, false, testBinding(), "Invoice")

	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.Equal(t, render.PDFContentType, result.ContentType)
	assert.Equal(t, "%PDF", string(result.Bytes[:4]))
}

func TestPipeline_PDF_WordFailureIsFatal(t *testing.T) {
	templates := new(mocks.MockTemplateStore)
	templates.On("Load", mock.Anything, "purchase_order.docx").Return(nil, errors.New("store down"))

	p := render.NewPipeline(templates, new(mocks.MockPDFConverter))
	_, err := p.PDF(context.Background(), domain.KindPurchaseOrder, false, testBinding(), "Purchase Order")

	assert.Error(t, err)
}

func TestTemplateName(t *testing.T) {
	assert.Equal(t, "invoice.docx", render.TemplateName(domain.KindInvoice, false))
	assert.Equal(t, "invoice_signed.docx", render.TemplateName(domain.KindInvoice, true))
	assert.Equal(t, "purchase_order.docx", render.TemplateName(domain.KindPurchaseOrder, false))
	assert.Equal(t, "purchase_order_signed.docx", render.TemplateName(domain.KindPurchaseOrder, true))
}
