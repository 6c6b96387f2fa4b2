package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dioadam27-sketch/SIMPDB/internal/dto"
	"github.com/dioadam27-sketch/SIMPDB/internal/model"
	"github.com/dioadam27-sketch/SIMPDB/internal/repository"
	"github.com/dioadam27-sketch/SIMPDB/internal/sheet"
)

// ── Schedule business errors ──

var (
	ErrMissingRoom   = errors.New("pilih ruangan terlebih dahulu")
	ErrMissingCourse = errors.New("mohon pilih mata kuliah")
	ErrMissingClass  = errors.New("mohon pilih nama kelas (PDB)")

	ErrUnknownDay      = errors.New("hari tidak dikenal")
	ErrUnknownTimeSlot = errors.New("slot waktu tidak dikenal")

	ErrCourseNotFound   = errors.New("mata kuliah tidak ditemukan")
	ErrRoomNotFound     = errors.New("ruangan tidak ditemukan")
	ErrClassNotFound    = errors.New("nama kelas tidak ditemukan")
	ErrLecturerNotFound = errors.New("dosen tidak ditemukan")
	ErrItemNotFound     = errors.New("jadwal tidak ditemukan")
)

// ScheduleService is the timetable assignment engine.
//
// Mutations follow the optimistic pattern of the whole system: the
// in-memory store commits first, then the mutation is handed to the
// sheet syncer fire-and-forget. A failed persist never rolls the
// local commit back.
type ScheduleService interface {
	// List returns timetable items with names resolved, optionally
	// filtered by day, room or lecturer, ordered along the weekly grid.
	List(ctx context.Context, day, roomID, lecturerID string) ([]dto.ScheduleItemResponse, error)
	// ProposeAssignment validates a candidate tuple and commits it.
	ProposeAssignment(ctx context.Context, req *dto.AssignmentRequest) (*dto.ScheduleItemResponse, error)
	// RemoveAssignment deletes an item; absent ids are a no-op.
	RemoveAssignment(ctx context.Context, id string) error
	// ImportRows bulk-inserts rows parsed from an uploaded workbook,
	// resolving references by display name.
	ImportRows(ctx context.Context, rows []dto.ScheduleImportRow) (*dto.ScheduleImportResult, error)
}

type scheduleService struct {
	repo         *repository.Repository
	syncer       sheet.Syncer
	strictImport bool
	logger       *zap.Logger
}

// NewScheduleService creates a ScheduleService instance.
func NewScheduleService(repo *repository.Repository, syncer sheet.Syncer, strictImport bool, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, syncer: syncer, strictImport: strictImport, logger: logger}
}

func (s *scheduleService) List(ctx context.Context, day, roomID, lecturerID string) ([]dto.ScheduleItemResponse, error) {
	items, err := s.repo.Schedule.List(ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := newNameResolver(ctx, s.repo)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ScheduleItemResponse, 0, len(items))
	for _, it := range items {
		if day != "" && it.Day != day {
			continue
		}
		if roomID != "" && it.RoomID != roomID {
			continue
		}
		if lecturerID != "" && it.LecturerID != lecturerID {
			continue
		}
		out = append(out, resolver.itemResponse(it))
	}

	sortGrid(out)
	return out, nil
}

// ═══════════════════════════════════════════════════════════
// ProposeAssignment — conflict-checked insert
// ═══════════════════════════════════════════════════════════
//
// Order of rejection matters because only one reason surfaces to the
// user at a time: blank selections first (room, course, class), then
// vocabulary and reference checks, then the conflict checker with its
// own fixed room → class → lecturer precedence.

func (s *scheduleService) ProposeAssignment(ctx context.Context, req *dto.AssignmentRequest) (*dto.ScheduleItemResponse, error) {
	// 1. Blank selections
	if req.RoomID == "" {
		return nil, ErrMissingRoom
	}
	if req.CourseID == "" {
		return nil, ErrMissingCourse
	}
	if req.ClassName == "" {
		return nil, ErrMissingClass
	}

	// 2. Closed vocabularies
	if !model.ValidDay(req.Day) {
		return nil, ErrUnknownDay
	}
	if !model.ValidTimeSlot(req.TimeSlot) {
		return nil, ErrUnknownTimeSlot
	}

	// 3. Referenced entities
	if _, err := s.repo.Room.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Course.GetByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if err := s.classNameExists(ctx, req.ClassName); err != nil {
		return nil, err
	}
	if req.LecturerID != "" {
		if _, err := s.repo.Lecturer.GetByID(ctx, req.LecturerID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrLecturerNotFound
			}
			return nil, err
		}
	}

	// 4. Conflict check
	items, err := s.repo.Schedule.List(ctx)
	if err != nil {
		return nil, err
	}
	cand := model.ScheduleItem{
		CourseID:   req.CourseID,
		LecturerID: req.LecturerID,
		RoomID:     req.RoomID,
		ClassName:  req.ClassName,
		Day:        req.Day,
		TimeSlot:   req.TimeSlot,
	}
	if kind, existing := checkCandidate(items, cand); kind != 0 {
		return nil, s.conflictError(ctx, kind, existing)
	}

	// 5. Commit locally, then persist fire-and-forget
	item := cand
	item.ID = newID("sch")
	if err := s.repo.Schedule.Create(ctx, &item); err != nil {
		return nil, err
	}
	s.syncer.WriteAsync(sheet.ActionAdd, sheet.TableSchedule, item, "")

	s.logger.Info("schedule item created",
		zap.String("item_id", item.ID),
		zap.String("day", item.Day),
		zap.String("time_slot", item.TimeSlot),
		zap.String("room_id", item.RoomID))

	resolver, err := newNameResolver(ctx, s.repo)
	if err != nil {
		return nil, err
	}
	resp := resolver.itemResponse(item)
	return &resp, nil
}

// RemoveAssignment deletes locally (no-op when absent) and always
// issues the remote delete; removal can never violate the occupancy
// invariants, so no re-check.
func (s *scheduleService) RemoveAssignment(ctx context.Context, id string) error {
	if err := s.repo.Schedule.Delete(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		s.logger.Debug("remove of absent schedule item", zap.String("item_id", id))
	}
	s.syncer.WriteAsync(sheet.ActionDelete, sheet.TableSchedule, nil, id)
	return nil
}

// ═══════════════════════════════════════════════════════════
// ImportRows — bulk insert from uploaded workbook
// ═══════════════════════════════════════════════════════════
//
// References arrive as display names and are matched
// case-insensitively: course by name or code, room by name, lecturer
// by name with blank or "open slot" meaning unassigned. Rows missing
// a required field are skipped, not fatal. Conflict checking is
// applied only when strict import is enabled; the default accepts
// rows unchecked, matching how bulk data was always loaded.

func (s *scheduleService) ImportRows(ctx context.Context, rows []dto.ScheduleImportRow) (*dto.ScheduleImportResult, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		return nil, err
	}
	lecturers, err := s.repo.Lecturer.List(ctx)
	if err != nil {
		return nil, err
	}
	rooms, err := s.repo.Room.List(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.Schedule.List(ctx)
	if err != nil {
		return nil, err
	}

	courseByKey := make(map[string]string, len(courses)*2)
	for _, c := range courses {
		courseByKey[normalizeKey(c.Name)] = c.ID
		courseByKey[normalizeKey(c.Code)] = c.ID
	}
	lecturerByName := make(map[string]string, len(lecturers))
	for _, l := range lecturers {
		lecturerByName[normalizeKey(l.Name)] = l.ID
	}
	roomByName := make(map[string]string, len(rooms))
	for _, r := range rooms {
		roomByName[normalizeKey(r.Name)] = r.ID
	}

	result := &dto.ScheduleImportResult{}
	var batch []model.ScheduleItem

	for _, row := range rows {
		day := strings.TrimSpace(row.Day)
		slot := strings.TrimSpace(row.TimeSlot)
		class := strings.TrimSpace(row.ClassName)
		courseName := strings.TrimSpace(row.CourseName)
		roomName := strings.TrimSpace(row.RoomName)

		if day == "" || slot == "" || class == "" || courseName == "" || roomName == "" {
			result.SkippedIncomplete++
			continue
		}
		if !model.ValidDay(day) || !model.ValidTimeSlot(slot) {
			result.SkippedUnresolved++
			continue
		}

		courseID, ok := courseByKey[normalizeKey(courseName)]
		if !ok {
			result.SkippedUnresolved++
			continue
		}
		roomID, ok := roomByName[normalizeKey(roomName)]
		if !ok {
			result.SkippedUnresolved++
			continue
		}

		lecturerID := ""
		lecturerName := normalizeKey(row.LecturerName)
		if lecturerName != "" && lecturerName != "open slot" {
			// An unmatched lecturer name degrades to an open slot.
			lecturerID = lecturerByName[lecturerName]
		}

		item := model.ScheduleItem{
			ID:         newID("sch"),
			CourseID:   courseID,
			LecturerID: lecturerID,
			RoomID:     roomID,
			ClassName:  class,
			Day:        day,
			TimeSlot:   slot,
		}

		if s.strictImport {
			if kind, _ := checkCandidate(append(existing, batch...), item); kind != 0 {
				result.SkippedConflict++
				continue
			}
		}

		batch = append(batch, item)
	}

	if len(batch) > 0 {
		if err := s.repo.Schedule.CreateBatch(ctx, batch); err != nil {
			return nil, err
		}
		s.syncer.WriteAsync(sheet.ActionBulkAdd, sheet.TableSchedule, batch, "")
	}
	result.Imported = len(batch)

	s.logger.Info("schedule import finished",
		zap.Int("imported", result.Imported),
		zap.Int("skipped_incomplete", result.SkippedIncomplete),
		zap.Int("skipped_unresolved", result.SkippedUnresolved),
		zap.Int("skipped_conflict", result.SkippedConflict))

	return result, nil
}

// ── Helpers ──

// classNameExists checks the section label against the class table.
func (s *scheduleService) classNameExists(ctx context.Context, name string) error {
	classes, err := s.repo.Class.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range classes {
		if c.Name == name {
			return nil
		}
	}
	return ErrClassNotFound
}

// conflictError wraps a checker hit with the colliding room's name.
func (s *scheduleService) conflictError(ctx context.Context, kind ConflictKind, existing *model.ScheduleItem) error {
	roomName := unknownName
	if room, err := s.repo.Room.GetByID(ctx, existing.RoomID); err == nil {
		roomName = room.Name
	}
	return &ConflictError{Kind: kind, Existing: *existing, RoomName: roomName}
}

func newID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String())
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
