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

// PurchaseOrderHandler handles the purchase-order endpoints.
type PurchaseOrderHandler struct {
	poService service.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a PurchaseOrderHandler.
func NewPurchaseOrderHandler(poService service.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{poService: poService}
}

// Create handles POST /api/purchase-orders/create
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var po domain.PurchaseOrder
	if err := c.ShouldBindJSON(&po); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid purchase order payload", err.Error())
		return
	}

	created, err := h.poService.Create(c.Request.Context(), &po)
	if err != nil {
		HandleError(c, err, "Failed to create purchase order")
		return
	}

	RespondCreated(c, "Purchase order created successfully", created)
}

// List handles GET /api/purchase-orders/get
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	search := c.Query("search")
	page, limit := parsePagination(c)

	orders, total, err := h.poService.List(c.Request.Context(), search, page, limit)
	if err != nil {
		HandleError(c, err, "Failed to fetch purchase orders")
		return
	}

	RespondList(c, orders, totalPages(total, limit), page)
}

// GetByID handles GET /api/purchase-orders/get/:id
func (h *PurchaseOrderHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid purchase order ID", err.Error())
		return
	}

	po, err := h.poService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err, "Failed to fetch purchase order")
		return
	}

	RespondOK(c, "", po)
}

// Update handles PUT /api/purchase-orders/put/:id
func (h *PurchaseOrderHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid purchase order ID", err.Error())
		return
	}

	var po domain.PurchaseOrder
	if err := c.ShouldBindJSON(&po); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid purchase order payload", err.Error())
		return
	}

	updated, err := h.poService.Update(c.Request.Context(), id, &po)
	if err != nil {
		HandleError(c, err, "Failed to update purchase order")
		return
	}

	RespondOK(c, "Purchase order updated successfully", updated)
}

// Delete handles DELETE /api/purchase-orders/delete/:id
func (h *PurchaseOrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid purchase order ID", err.Error())
		return
	}

	if err := h.poService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err, "Failed to delete purchase order")
		return
	}

	RespondOK(c, "Purchase order deleted successfully", nil)
}

// DeleteMany handles DELETE /api/purchase-orders/deleteall. One malformed ID
// rejects the whole batch before anything is deleted.
func (h *PurchaseOrderHandler) DeleteMany(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		RespondError(c, http.StatusBadRequest, "Please provide valid purchase order IDs", "")
		return
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "Some purchase order IDs are invalid", err.Error())
			return
		}
		ids = append(ids, id)
	}

	deleted, err := h.poService.DeleteMany(c.Request.Context(), ids)
	if err != nil {
		HandleError(c, err, "Failed to delete purchase orders")
		return
	}

	RespondOK(c, fmt.Sprintf("%d purchase order(s) deleted successfully", deleted), gin.H{"deleted": deleted})
}

// DownloadWord handles GET /api/purchase-orders/:id/download/word
func (h *PurchaseOrderHandler) DownloadWord(c *gin.Context) {
	h.download(c, h.poService.DownloadWord, "Failed to download Word purchase order")
}

// DownloadPDF handles GET /api/purchase-orders/:id/download/pdf
func (h *PurchaseOrderHandler) DownloadPDF(c *gin.Context) {
	h.download(c, h.poService.DownloadPDF, "Failed to download PDF purchase order")
}

func (h *PurchaseOrderHandler) download(c *gin.Context, renderFn func(ctx context.Context, id uuid.UUID) (*service.RenderedDocument, error), failMessage string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid purchase order ID", err.Error())
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

// Email handles POST /api/purchase-orders/:id/email
func (h *PurchaseOrderHandler) Email(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid purchase order ID", err.Error())
		return
	}

	var req struct {
		To string `json:"to" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "A valid recipient address is required", err.Error())
		return
	}

	if err := h.poService.EmailPDF(c.Request.Context(), id, req.To); err != nil {
		HandleError(c, err, "Failed to email purchase order")
		return
	}

	RespondOK(c, "Purchase order emailed successfully", nil)
}

// Export handles GET /api/purchase-orders/export
func (h *PurchaseOrderHandler) Export(c *gin.Context) {
	data, err := h.poService.ExportRegister(c.Request.Context(), c.Query("search"))
	if err != nil {
		HandleError(c, err, "Failed to export purchase orders")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=purchase_orders.xlsx")
	c.Data(http.StatusOK, export.XLSXContentType, data)
}
