package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dioadam27-sketch/SIMPDB/internal/service"
	"github.com/dioadam27-sketch/SIMPDB/internal/sheet"
	"github.com/dioadam27-sketch/SIMPDB/pkg/response"
)

// SyncHandler handles remote-store refresh and status endpoints.
type SyncHandler struct {
	syncSvc service.SyncService
}

// NewSyncHandler creates a SyncHandler.
func NewSyncHandler(syncSvc service.SyncService) *SyncHandler {
	return &SyncHandler{syncSvc: syncSvc}
}

// Refresh replaces the whole local store with the remote snapshot.
// POST /api/v1/sync/refresh
func (h *SyncHandler) Refresh(c *gin.Context) {
	result, err := h.syncSvc.Refresh(c.Request.Context())
	if err != nil {
		if errors.Is(err, sheet.ErrNotConfigured) {
			response.BadRequest(c, 16002, "endpoint spreadsheet belum dikonfigurasi")
			return
		}
		// The remote endpoint is unreachable; the local store stays
		// intact and the status flips to disconnected.
		response.Error(c, http.StatusBadGateway, 16003, "gagal mengambil data dari spreadsheet")
		return
	}
	response.OK(c, result)
}

// Status reports remote-endpoint health.
// GET /api/v1/sync/status
func (h *SyncHandler) Status(c *gin.Context) {
	response.OK(c, h.syncSvc.Status())
}
