package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dioadam27-sketch/SIMPDB/internal/dto"
	"github.com/dioadam27-sketch/SIMPDB/internal/service"
	"github.com/dioadam27-sketch/SIMPDB/pkg/response"
)

// ScheduleHandler handles the timetable endpoints.
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// List returns timetable items, optionally filtered.
// GET /api/v1/schedule?day=&room_id=&lecturer_id=
func (h *ScheduleHandler) List(c *gin.Context) {
	items, err := h.scheduleSvc.List(
		c.Request.Context(),
		c.Query("day"),
		c.Query("room_id"),
		c.Query("lecturer_id"),
	)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, gin.H{"list": items})
}

// Create proposes a candidate assignment.
// POST /api/v1/schedule
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req dto.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "permintaan tidak valid")
		return
	}

	item, err := h.scheduleSvc.ProposeAssignment(c.Request.Context(), &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.Created(c, item)
}

// Delete removes a timetable item.
// DELETE /api/v1/schedule/:id
func (h *ScheduleHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 12001, "id jadwal tidak boleh kosong")
		return
	}

	if err := h.scheduleSvc.RemoveAssignment(c.Request.Context(), id); err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, nil)
}

// Import bulk-loads timetable rows from an uploaded workbook.
// POST /api/v1/schedule/import  (multipart field "file")
func (h *ScheduleHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 12001, "file tidak ditemukan pada permintaan")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, 12001, "file tidak dapat dibuka")
		return
	}
	defer f.Close()

	rows, err := service.ParseScheduleWorkbook(f)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkbookInvalid),
			errors.Is(err, service.ErrWorkbookNoHeader):
			response.BadRequest(c, 12006, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	result, err := h.scheduleSvc.ImportRows(c.Request.Context(), rows)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, result)
}

// handleScheduleError maps assignment business errors to responses.
// Conflicts surface as 409 with the message naming the collision.
func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	var conflict *service.ConflictError
	switch {
	case errors.Is(err, service.ErrMissingRoom),
		errors.Is(err, service.ErrMissingCourse),
		errors.Is(err, service.ErrMissingClass):
		response.BadRequest(c, 12002, err.Error())
	case errors.Is(err, service.ErrUnknownDay),
		errors.Is(err, service.ErrUnknownTimeSlot):
		response.BadRequest(c, 12003, err.Error())
	case errors.Is(err, service.ErrCourseNotFound),
		errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrClassNotFound),
		errors.Is(err, service.ErrLecturerNotFound),
		errors.Is(err, service.ErrItemNotFound):
		response.NotFound(c, 12004, err.Error())
	case errors.As(err, &conflict):
		response.Conflict(c, 12005, conflict.Error())
	default:
		response.InternalError(c)
	}
}
