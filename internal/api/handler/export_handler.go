package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dioadam27-sketch/SIMPDB/internal/service"
	"github.com/dioadam27-sketch/SIMPDB/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles the Excel download endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportSchedule downloads the full timetable.
// GET /api/v1/export/schedule
func (h *ExportHandler) ExportSchedule(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportSchedule(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportOccupancy downloads the occupancy grid for one day.
// GET /api/v1/export/occupancy?day=
func (h *ExportHandler) ExportOccupancy(c *gin.Context) {
	day := c.Query("day")
	if day == "" {
		response.BadRequest(c, 15001, "day tidak boleh kosong")
		return
	}

	buf, filename, err := h.exportSvc.ExportOccupancy(c.Request.Context(), day)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// handleExportError maps export business errors to responses.
func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportNoSchedule),
		errors.Is(err, service.ErrExportNoRooms):
		response.NotFound(c, 15004, err.Error())
	case errors.Is(err, service.ErrUnknownDay):
		response.BadRequest(c, 15002, err.Error())
	default:
		response.InternalError(c)
	}
}
