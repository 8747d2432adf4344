package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billforge/internal/domain"
	"billforge/internal/service"
)

// ClientHandler handles the client-directory endpoints.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a ClientHandler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// Create handles POST /api/clients/create
func (h *ClientHandler) Create(c *gin.Context) {
	var client domain.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid client payload", err.Error())
		return
	}

	created, err := h.clientService.Create(c.Request.Context(), &client)
	if err != nil {
		HandleError(c, err, "Failed to create client")
		return
	}

	RespondCreated(c, "Client created successfully", created)
}

// List handles GET /api/clients/get
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientService.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		HandleError(c, err, "Failed to fetch clients")
		return
	}

	RespondOK(c, "", clients)
}

// GetByID handles GET /api/clients/get/:id
func (h *ClientHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid client ID", err.Error())
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err, "Failed to fetch client")
		return
	}

	RespondOK(c, "", client)
}

// Update handles PUT /api/clients/update/:id
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid client ID", err.Error())
		return
	}

	var client domain.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid client payload", err.Error())
		return
	}

	updated, err := h.clientService.Update(c.Request.Context(), id, &client)
	if err != nil {
		HandleError(c, err, "Failed to update client")
		return
	}

	RespondOK(c, "Client updated successfully", updated)
}

// Delete handles DELETE /api/clients/delete/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid client ID", err.Error())
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err, "Failed to delete client")
		return
	}

	RespondOK(c, "Client deleted successfully", nil)
}
