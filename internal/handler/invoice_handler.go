package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billforge/internal/domain"
	"billforge/internal/export"
	"billforge/internal/service"
)

// InvoiceHandler handles the invoice endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates an InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Create handles POST /api/invoices/create
func (h *InvoiceHandler) Create(c *gin.Context) {
	var inv domain.Invoice
	if err := c.ShouldBindJSON(&inv); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid invoice payload", err.Error())
		return
	}

	created, err := h.invoiceService.Create(c.Request.Context(), &inv)
	if err != nil {
		HandleError(c, err, "Failed to create invoice")
		return
	}

	RespondCreated(c, "Invoice created successfully", created)
}

// List handles GET /api/invoices/get
func (h *InvoiceHandler) List(c *gin.Context) {
	search := c.Query("search")
	page, limit := parsePagination(c)

	invoices, total, err := h.invoiceService.List(c.Request.Context(), search, page, limit)
	if err != nil {
		HandleError(c, err, "Failed to fetch invoices")
		return
	}

	RespondList(c, invoices, totalPages(total, limit), page)
}

// GetByID handles GET /api/invoices/get/:id
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid invoice ID", err.Error())
		return
	}

	inv, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err, "Failed to fetch invoice")
		return
	}

	RespondOK(c, "", inv)
}

// Update handles PUT /api/invoices/put/:id
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid invoice ID", err.Error())
		return
	}

	var inv domain.Invoice
	if err := c.ShouldBindJSON(&inv); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid invoice payload", err.Error())
		return
	}

	updated, err := h.invoiceService.Update(c.Request.Context(), id, &inv)
	if err != nil {
		HandleError(c, err, "Failed to update invoice")
		return
	}

	RespondOK(c, "Invoice updated successfully", updated)
}

// Delete handles DELETE /api/invoices/delete/:id
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid invoice ID", err.Error())
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err, "Failed to delete invoice")
		return
	}

	RespondOK(c, "Invoice deleted successfully", nil)
}

// DeleteMany handles DELETE /api/invoices/deleteall. Validation is
// all-or-nothing: one malformed ID rejects the whole batch before anything is
// deleted.
func (h *InvoiceHandler) DeleteMany(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		RespondError(c, http.StatusBadRequest, "Please provide valid invoice IDs", "")
		return
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "Some invoice IDs are invalid", err.Error())
			return
		}
		ids = append(ids, id)
	}

	deleted, err := h.invoiceService.DeleteMany(c.Request.Context(), ids)
	if err != nil {
		HandleError(c, err, "Failed to delete invoices")
		return
	}

	RespondOK(c, fmt.Sprintf("%d invoice(s) deleted successfully", deleted), gin.H{"deleted": deleted})
}

// DownloadWord handles GET /api/invoices/:id/download/word
func (h *InvoiceHandler) DownloadWord(c *gin.Context) {
	h.download(c, h.invoiceService.DownloadWord, "Failed to download Word invoice")
}

// DownloadPDF handles GET /api/invoices/:id/download/pdf
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	h.download(c, h.invoiceService.DownloadPDF, "Failed to download PDF invoice")
}

func (h *InvoiceHandler) download(c *gin.Context, renderFn func(ctx context.Context, id uuid.UUID) (*service.RenderedDocument, error), failMessage string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid invoice ID", err.Error())
		return
	}

	doc, err := renderFn(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err, failMessage)
		return
	}

	if doc.Degraded {
		c.Header("X-Render-Degraded", "true")
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", doc.FileName))
	c.Data(http.StatusOK, doc.ContentType, doc.Bytes)
}

// Email handles POST /api/invoices/:id/email
func (h *InvoiceHandler) Email(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid invoice ID", err.Error())
		return
	}

	var req struct {
		To string `json:"to" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "A valid recipient address is required", err.Error())
		return
	}

	if err := h.invoiceService.EmailPDF(c.Request.Context(), id, req.To); err != nil {
		HandleError(c, err, "Failed to email invoice")
		return
	}

	RespondOK(c, "Invoice emailed successfully", nil)
}

// Export handles GET /api/invoices/export
func (h *InvoiceHandler) Export(c *gin.Context) {
	data, err := h.invoiceService.ExportRegister(c.Request.Context(), c.Query("search"))
	if err != nil {
		HandleError(c, err, "Failed to export invoices")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=invoices.xlsx")
	c.Data(http.StatusOK, export.XLSXContentType, data)
}
