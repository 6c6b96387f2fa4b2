package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dioadam27-sketch/SIMPDB/internal/dto"
	"github.com/dioadam27-sketch/SIMPDB/internal/service"
	"github.com/dioadam27-sketch/SIMPDB/pkg/response"
)

// MasterHandler handles CRUD and bulk import for the four master
// tables.
type MasterHandler struct {
	masterSvc service.MasterService
}

// NewMasterHandler creates a MasterHandler.
func NewMasterHandler(masterSvc service.MasterService) *MasterHandler {
	return &MasterHandler{masterSvc: masterSvc}
}

// ── Courses ──

// ListCourses GET /api/v1/courses
func (h *MasterHandler) ListCourses(c *gin.Context) {
	courses, err := h.masterSvc.ListCourses(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": courses})
}

// CreateCourse POST /api/v1/courses
func (h *MasterHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "permintaan tidak valid")
		return
	}

	course, err := h.masterSvc.CreateCourse(c.Request.Context(), &req)
	if err != nil {
		h.handleMasterError(c, err)
		return
	}
	response.Created(c, course)
}

// DeleteCourse DELETE /api/v1/courses/:id
func (h *MasterHandler) DeleteCourse(c *gin.Context) {
	if err := h.masterSvc.DeleteCourse(c.Request.Context(), c.Param("id")); err != nil {
		h.handleMasterError(c, err)
		return
	}
	response.OK(c, nil)
}

// ImportCourses POST /api/v1/courses/import
func (h *MasterHandler) ImportCourses(c *gin.Context) {
	var req dto.ImportCoursesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "permintaan tidak valid")
		return
	}

	result, err := h.masterSvc.ImportCourses(c.Request.Context(), &req)
	if err != nil {
		h.handleMasterError(c, err)
		return
	}
	response.OK(c, result)
}

// ── Lecturers ──

// ListLecturers GET /api/v1/lecturers
func (h *MasterHandler) ListLecturers(c *gin.Context) {
	lecturers, err := h.masterSvc.ListLecturers(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": lecturers})
}

// CreateLecturer POST /api/v1/lecturers
func (h *MasterHandler) CreateLecturer(c *gin.Context) {
	var req dto.CreateLecturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "permintaan tidak valid")
		return
	}

	lecturer, err := h.masterSvc.CreateLecturer(c.Request.Context(), &req)
	if err != nil {
		h.handleMasterError(c, err)
		return
	}
	response.Created(c, lecturer)
}

// DeleteLecturer DELETE /api/v1/lecturers/:id
func (h *MasterHandler) DeleteLecturer(c *gin.Context) {
	if err := h.masterSvc.DeleteLecturer(c.Request.Context(), c.Param("id")); err != nil {
		h.handleMasterError(c, err)
		return
	}
	response.OK(c, nil)
}

// ImportLecturers POST /api/v1/lecturers/import
func (h *MasterHandler) ImportLecturers(c *gin.Context) {
	var req dto.ImportLecturersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "permintaan tidak valid")
		return
	}

	result, err := h.masterSvc.ImportLecturers(c.Request.Context(), &req)
	if err != nil {
		h.handleMasterError(c, err)
		return
	}
	response.OK(c, result)
}

// ── Rooms ──

// ListRooms GET /api/v1/rooms
func (h *MasterHandler) ListRooms(c *gin.Context) {
	rooms, err := h.masterSvc.ListRooms(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": rooms})
}

// CreateRoom POST /api/v1/rooms
func (h *MasterHandler) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "permintaan tidak valid")
		return
	}

	room, err := h.masterSvc.CreateRoom(c.Request.Context(), &req)
	if err != nil {
		h.handleMasterError(c, err)
		return
	}
	response.Created(c, room)
}

// DeleteRoom DELETE /api/v1/rooms/:id
func (h *MasterHandler) DeleteRoom(c *gin.Context) {
	if err := h.masterSvc.DeleteRoom(c.Request.Context(), c.Param("id")); err != nil {
		h.handleMasterError(c, err)
		return
	}
	response.OK(c, nil)
}

// ImportRooms POST /api/v1/rooms/import
func (h *MasterHandler) ImportRooms(c *gin.Context) {
	var req dto.ImportRoomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "permintaan tidak valid")
		return
	}

	result, err := h.masterSvc.ImportRooms(c.Request.Context(), &req)
	if err != nil {
		h.handleMasterError(c, err)
		return
	}
	response.OK(c, result)
}

// ── Classes ──

// ListClasses GET /api/v1/classes
func (h *MasterHandler) ListClasses(c *gin.Context) {
	classes, err := h.masterSvc.ListClasses(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": classes})
}

// CreateClass POST /api/v1/classes
func (h *MasterHandler) CreateClass(c *gin.Context) {
	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "permintaan tidak valid")
		return
	}

	class, err := h.masterSvc.CreateClass(c.Request.Context(), &req)
	if err != nil {
		h.handleMasterError(c, err)
		return
	}
	response.Created(c, class)
}

// DeleteClass DELETE /api/v1/classes/:id
func (h *MasterHandler) DeleteClass(c *gin.Context) {
	if err := h.masterSvc.DeleteClass(c.Request.Context(), c.Param("id")); err != nil {
		h.handleMasterError(c, err)
		return
	}
	response.OK(c, nil)
}

// ImportClasses POST /api/v1/classes/import
func (h *MasterHandler) ImportClasses(c *gin.Context) {
	var req dto.ImportClassesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "permintaan tidak valid")
		return
	}

	result, err := h.masterSvc.ImportClasses(c.Request.Context(), &req)
	if err != nil {
		h.handleMasterError(c, err)
		return
	}
	response.OK(c, result)
}

// handleMasterError maps master-data business errors to responses.
func (h *MasterHandler) handleMasterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound),
		errors.Is(err, service.ErrLecturerNotFound),
		errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrClassNotFound):
		response.NotFound(c, 11004, err.Error())
	case errors.Is(err, service.ErrNIPTaken):
		response.Conflict(c, 11005, err.Error())
	default:
		response.InternalError(c)
	}
}
