package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"billforge/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ListResponse is the envelope for paginated list responses.
type ListResponse struct {
	Success     bool        `json:"success"`
	Data        interface{} `json:"data"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Message: message, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Message: message, Data: data})
}

// RespondList sends a 200 paginated list response.
func RespondList(c *gin.Context, data interface{}, totalPages, currentPage int) {
	c.JSON(http.StatusOK, ListResponse{
		Success:     true,
		Data:        data,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
	})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, message, errDetail string) {
	c.JSON(status, APIResponse{Success: false, Message: message, Error: errDetail})
}

// statusOf maps a domain error to an HTTP status code.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvoiceNotFound),
		errors.Is(err, domain.ErrPurchaseOrderNotFound),
		errors.Is(err, domain.ErrClientNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidGSTIN),
		errors.Is(err, domain.ErrDuplicateGSTIN):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// HandleError maps a domain error to a status code and sends the envelope.
// The message is the endpoint's human-readable failure description; the raw
// error string rides along in the error field.
func HandleError(c *gin.Context, err error, message string) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		requestID, _ := c.Get("request_id")
		log.Printf("[%v] %s: %v", requestID, message, err)
	}
	RespondError(c, status, message, err.Error())
}

// parsePagination reads page/limit query parameters with the defaults the
// frontend expects.
func parsePagination(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit
}

// totalPages computes the page count for a result set.
func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
