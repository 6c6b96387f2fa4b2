package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dioadam27-sketch/SIMPDB/internal/dto"
	"github.com/dioadam27-sketch/SIMPDB/internal/service"
	"github.com/dioadam27-sketch/SIMPDB/pkg/response"
)

// PortalHandler handles the lecturer self-service endpoints.
//
// Lecturers always act as themselves; the lecturer_id field of the
// claim/release payloads is honored only for admin callers, mirroring
// the admin simulation mode of the UI.
type PortalHandler struct {
	portalSvc service.PortalService
}

// NewPortalHandler creates a PortalHandler.
func NewPortalHandler(portalSvc service.PortalService) *PortalHandler {
	return &PortalHandler{portalSvc: portalSvc}
}

// OpenCourses lists courses with claimable slots.
// GET /api/v1/portal/open-courses
func (h *PortalHandler) OpenCourses(c *gin.Context) {
	courses, err := h.portalSvc.OpenCourses(c.Request.Context())
	if err != nil {
		h.handlePortalError(c, err)
		return
	}
	response.OK(c, gin.H{"list": courses})
}

// OpenSlots lists open slots, optionally for one course.
// GET /api/v1/portal/open-slots?course_id=
func (h *PortalHandler) OpenSlots(c *gin.Context) {
	slots, err := h.portalSvc.OpenSlots(c.Request.Context(), c.Query("course_id"))
	if err != nil {
		h.handlePortalError(c, err)
		return
	}
	response.OK(c, gin.H{"list": slots})
}

// MySchedule lists the caller's held slots. Admins may inspect any
// lecturer via ?lecturer_id=.
// GET /api/v1/portal/my
func (h *PortalHandler) MySchedule(c *gin.Context) {
	lecturerID, ok := h.actingLecturerID(c, c.Query("lecturer_id"))
	if !ok {
		return
	}

	items, err := h.portalSvc.MySchedule(c.Request.Context(), lecturerID)
	if err != nil {
		h.handlePortalError(c, err)
		return
	}
	response.OK(c, gin.H{"list": items})
}

// Claim assigns an open slot to the acting lecturer.
// POST /api/v1/portal/claim
func (h *PortalHandler) Claim(c *gin.Context) {
	var req dto.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 13001, "permintaan tidak valid")
		return
	}

	lecturerID, ok := h.actingLecturerID(c, req.LecturerID)
	if !ok {
		return
	}
	if lecturerID == "" {
		response.BadRequest(c, 13001, "lecturer_id tidak boleh kosong")
		return
	}

	item, err := h.portalSvc.Claim(c.Request.Context(), req.ItemID, lecturerID)
	if err != nil {
		h.handlePortalError(c, err)
		return
	}
	response.OK(c, item)
}

// Release returns a held slot to open.
// POST /api/v1/portal/release
func (h *PortalHandler) Release(c *gin.Context) {
	var req dto.ReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 13001, "permintaan tidak valid")
		return
	}

	// For lecturers the ownership check binds to their own id; an
	// admin passes an empty lecturer_id to release any slot.
	lecturerID, ok := h.actingLecturerID(c, req.LecturerID)
	if !ok {
		return
	}

	item, err := h.portalSvc.Release(c.Request.Context(), req.ItemID, lecturerID)
	if err != nil {
		h.handlePortalError(c, err)
		return
	}
	response.OK(c, item)
}

// actingLecturerID resolves which lecturer the caller acts as:
// lecturers act as themselves, admins as the requested id.
func (h *PortalHandler) actingLecturerID(c *gin.Context, requested string) (string, bool) {
	role, ok := MustGetRole(c)
	if !ok {
		return "", false
	}
	if role == service.RoleAdmin {
		return requested, true
	}
	userID, ok := MustGetUserID(c)
	if !ok {
		return "", false
	}
	return userID, true
}

// handlePortalError maps portal business errors to responses.
func (h *PortalHandler) handlePortalError(c *gin.Context, err error) {
	var conflict *service.ConflictError
	switch {
	case errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrLecturerNotFound):
		response.NotFound(c, 13004, err.Error())
	case errors.Is(err, service.ErrSlotNotOpen):
		response.Conflict(c, 13005, err.Error())
	case errors.Is(err, service.ErrSlotNotClaimed):
		response.Conflict(c, 13006, err.Error())
	case errors.Is(err, service.ErrNotSlotOwner):
		response.Forbidden(c, 13007, err.Error())
	case errors.As(err, &conflict):
		response.Conflict(c, 13008, conflict.Error())
	default:
		response.InternalError(c)
	}
}
