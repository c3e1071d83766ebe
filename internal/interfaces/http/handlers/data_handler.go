package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/turtacn/opspulse/internal/application/dto"
	appservice "github.com/turtacn/opspulse/internal/application/service"
	"github.com/turtacn/opspulse/pkg/errors"
)

// DataHandler serves the /api/data CRUD endpoints.
type DataHandler struct {
	svc appservice.DataAppService
}

// NewDataHandler creates a new DataHandler.
func NewDataHandler(svc appservice.DataAppService) *DataHandler {
	return &DataHandler{svc: svc}
}

// CreateEntry handles POST /api/data.
func (h *DataHandler) CreateEntry(c *gin.Context) {
	var req dto.CreateDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrInvalidRequest.WithCause(err))
		return
	}

	entry, err := h.svc.CreateEntry(c.Request.Context(), &req)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendSuccess(c, http.StatusCreated, entry)
}

// ListEntries handles GET /api/data.
func (h *DataHandler) ListEntries(c *gin.Context) {
	entries, err := h.svc.ListEntries(c.Request.Context())
	if err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendSuccess(c, http.StatusOK, dto.DataListResponse{
		Count:   len(entries),
		Entries: entries,
	})
}

// GetEntry handles GET /api/data/:id.
func (h *DataHandler) GetEntry(c *gin.Context) {
	entry, err := h.svc.GetEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendSuccess(c, http.StatusOK, entry)
}

// UpdateEntry handles PUT /api/data/:id.
func (h *DataHandler) UpdateEntry(c *gin.Context) {
	var req dto.UpdateDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrInvalidRequest.WithCause(err))
		return
	}

	entry, err := h.svc.UpdateEntry(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendSuccess(c, http.StatusOK, entry)
}

// DeleteEntry handles DELETE /api/data/:id.
func (h *DataHandler) DeleteEntry(c *gin.Context) {
	if err := h.svc.DeleteEntry(c.Request.Context(), c.Param("id")); err != nil {
		dto.SendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
