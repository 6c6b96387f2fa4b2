package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dioadam27-sketch/SIMPDB/internal/service"
	"github.com/dioadam27-sketch/SIMPDB/pkg/response"
)

// MonitoringHandler handles dashboard and occupancy endpoints.
type MonitoringHandler struct {
	monitoringSvc service.MonitoringService
}

// NewMonitoringHandler creates a MonitoringHandler.
func NewMonitoringHandler(monitoringSvc service.MonitoringService) *MonitoringHandler {
	return &MonitoringHandler{monitoringSvc: monitoringSvc}
}

// Dashboard returns the entity counts and per-day occupancy rates.
// GET /api/v1/monitoring/dashboard
func (h *MonitoringHandler) Dashboard(c *gin.Context) {
	result, err := h.monitoringSvc.Dashboard(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Occupancy returns the room × slot grid for one day.
// GET /api/v1/monitoring/occupancy?day=&q=
func (h *MonitoringHandler) Occupancy(c *gin.Context) {
	day := c.Query("day")
	if day == "" {
		response.BadRequest(c, 14001, "day tidak boleh kosong")
		return
	}

	result, err := h.monitoringSvc.Occupancy(c.Request.Context(), day, c.Query("q"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownDay) {
			response.BadRequest(c, 14002, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
