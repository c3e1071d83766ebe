package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/turtacn/opspulse/internal/application/dto"
	"github.com/turtacn/opspulse/internal/domain/repository"
	"github.com/turtacn/opspulse/internal/domain/service"
	"github.com/turtacn/opspulse/internal/infrastructure/monitoring"
	"github.com/turtacn/opspulse/pkg/logger"
)

// AdminHandler serves the administrative endpoints.
type AdminHandler struct {
	aggregator service.RequestAggregator
	users      repository.UserRepository
	data       repository.DataRepository
	metrics    *monitoring.Metrics
	log        logger.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	aggregator service.RequestAggregator,
	users repository.UserRepository,
	data repository.DataRepository,
	metrics *monitoring.Metrics,
	log logger.Logger,
) *AdminHandler {
	return &AdminHandler{
		aggregator: aggregator,
		users:      users,
		data:       data,
		metrics:    metrics,
		log:        log,
	}
}

// Reset zeroes the request aggregator and flushes the in-memory stores.
func (h *AdminHandler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	h.aggregator.Reset()
	if err := h.users.Flush(ctx); err != nil {
		dto.SendError(c, err)
		return
	}
	if err := h.data.Flush(ctx); err != nil {
		dto.SendError(c, err)
		return
	}
	h.metrics.RecordAdminReset()

	h.log.Info(ctx, "Administrative reset performed", logger.Fields{
		"client_ip": c.ClientIP(),
	})

	dto.SendSuccess(c, http.StatusOK, gin.H{
		"message":  "metrics and stores cleared",
		"reset_at": time.Now().UTC(),
	})
}

// Stats reports the aggregate snapshot together with store sizes.
func (h *AdminHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	userCount := h.users.Count(ctx)
	dataCount := h.data.Count(ctx)
	h.metrics.SetStoreItems("users", userCount)
	h.metrics.SetStoreItems("data", dataCount)

	dto.SendSuccess(c, http.StatusOK, gin.H{
		"metrics": h.aggregator.Snapshot(),
		"stores": gin.H{
			"users": userCount,
			"data":  dataCount,
		},
	})
}
