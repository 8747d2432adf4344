package service_test

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billforge/internal/domain"
	"billforge/internal/port"
	"billforge/internal/render"
	"billforge/internal/service"
	"billforge/mocks"
)

func newPurchaseOrder() *domain.PurchaseOrder {
	return &domain.PurchaseOrder{
		PODate:       domain.NewDate(2025, time.March, 14),
		DeliveryDate: domain.NewDate(2025, time.March, 28),
		Vendor:       domain.PartyAddress{Name: "Supply Co", GSTIN: "27FGHIJ5678K1Z3"},
		DeliverTo:    domain.PartyAddress{Name: "Main Plant"},
		Items:        domain.LineItems{{Description: "Bolt", Quantity: 100, Total: 590}},
		TotalAmount:  590,
		ValueInWords: "Five Hundred Ninety Only",
	}
}

func poPrefix() string {
	return "PO-" + time.Now().Format("060102")
}

// minimalDocx is a one-paragraph Word document used to drive the real render
// pipeline in service tests.
func minimalDocx(t *testing.T) []byte {
	t.Helper()

	const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>Order {PurchaseOrderNo}</w:t></w:r></w:p></w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestPurchaseOrderCreate_AllocatesPONumber(t *testing.T) {
	repo := new(mocks.MockPurchaseOrderRepo)
	repo.On("LastNumberWithPrefix", mock.Anything, poPrefix()).Return("", nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	svc := service.NewPurchaseOrderService(repo, nil, nil, nil)
	created, err := svc.Create(context.Background(), newPurchaseOrder())

	require.NoError(t, err)
	assert.Equal(t, poPrefix()+"-001", created.PONumber)
	assert.Equal(t, domain.TermsNet30, created.PaymentTerms)
	repo.AssertExpectations(t)
}

func TestPurchaseOrderUpdate_NumberImmutable(t *testing.T) {
	id := uuid.New()
	existing := newPurchaseOrder()
	existing.ID = id
	existing.PONumber = "PO-250310-003"

	repo := new(mocks.MockPurchaseOrderRepo)
	repo.On("GetByID", mock.Anything, id).Return(existing, nil).Once()
	repo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

	incoming := newPurchaseOrder()
	incoming.PONumber = "PO-OVERRIDE-009"

	svc := service.NewPurchaseOrderService(repo, nil, nil, nil)
	updated, err := svc.Update(context.Background(), id, incoming)

	require.NoError(t, err)
	assert.Equal(t, "PO-250310-003", updated.PONumber)
}

func TestPurchaseOrderDownloadPDF_DegradedWhenConverterFails(t *testing.T) {
	id := uuid.New()
	po := newPurchaseOrder()
	po.ID = id
	po.PONumber = "PO-250314-001"

	repo := new(mocks.MockPurchaseOrderRepo)
	repo.On("GetByID", mock.Anything, id).Return(po, nil).Once()

	templates := new(mocks.MockTemplateStore)
	templates.On("Load", mock.Anything, "purchase_order.docx").Return(minimalDocx(t), nil)
	converter := new(mocks.MockPDFConverter)
	converter.On("Convert", mock.Anything, mock.Anything).Return(nil, domain.ErrConversionFailed)

	svc := service.NewPurchaseOrderService(repo, render.NewPipeline(templates, converter), nil, nil)
	doc, err := svc.DownloadPDF(context.Background(), id)

	require.NoError(t, err)
	assert.True(t, doc.Degraded)
	assert.Equal(t, "PurchaseOrder_PO-250314-001.pdf", doc.FileName)
	assert.Equal(t, render.PDFContentType, doc.ContentType)
}

func TestPurchaseOrderDownloadWord_BuildsFileName(t *testing.T) {
	id := uuid.New()
	po := newPurchaseOrder()
	po.ID = id
	po.PONumber = "PO-250314-002"

	repo := new(mocks.MockPurchaseOrderRepo)
	repo.On("GetByID", mock.Anything, id).Return(po, nil).Once()

	templates := new(mocks.MockTemplateStore)
	templates.On("Load", mock.Anything, "purchase_order.docx").Return(minimalDocx(t), nil)

	svc := service.NewPurchaseOrderService(repo, render.NewPipeline(templates, new(mocks.MockPDFConverter)), nil, nil)
	doc, err := svc.DownloadWord(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "PurchaseOrder_PO-250314-002.docx", doc.FileName)
	assert.Equal(t, render.WordContentType, doc.ContentType)
	assert.False(t, doc.Degraded)
}

func TestPurchaseOrderEmailPDF_SendsAttachment(t *testing.T) {
	id := uuid.New()
	po := newPurchaseOrder()
	po.ID = id
	po.PONumber = "PO-250314-003"

	repo := new(mocks.MockPurchaseOrderRepo)
	repo.On("GetByID", mock.Anything, id).Return(po, nil).Once()

	templates := new(mocks.MockTemplateStore)
	templates.On("Load", mock.Anything, "purchase_order.docx").Return(minimalDocx(t), nil)
	converter := new(mocks.MockPDFConverter)
	converter.On("Convert", mock.Anything, mock.Anything).Return([]byte("%PDF-1.7"), nil)

	sender := new(mocks.MockEmailSender)
	sender.On("SendDocument", mock.Anything, mock.MatchedBy(func(in port.SendDocumentInput) bool {
		return in.To == "buyer@example.com" &&
			in.FileName == "PurchaseOrder_PO-250314-003.pdf" &&
			len(in.Attachment) > 0
	})).Return(nil).Once()

	svc := service.NewPurchaseOrderService(repo, render.NewPipeline(templates, converter), sender, nil)
	err := svc.EmailPDF(context.Background(), id, "buyer@example.com")

	require.NoError(t, err)
	sender.AssertExpectations(t)
}
