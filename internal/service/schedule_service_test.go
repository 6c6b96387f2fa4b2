package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dioadam27-sketch/SIMPDB/internal/dto"
	"github.com/dioadam27-sketch/SIMPDB/internal/model"
	"github.com/dioadam27-sketch/SIMPDB/internal/repository"
	"github.com/dioadam27-sketch/SIMPDB/internal/sheet"
)

func setupScheduleService(t *testing.T) (ScheduleService, *repository.Repository, *fakeSyncer) {
	t.Helper()
	repo, syncer := setupTestStore()
	seedMasterData(t, repo)
	svc := NewScheduleService(repo, syncer, false, testLogger())
	return svc, repo, syncer
}

func validAssignment() *dto.AssignmentRequest {
	return &dto.AssignmentRequest{
		CourseID:   "c-1",
		LecturerID: "l-1",
		RoomID:     "r-1",
		ClassName:  "PDB01",
		Day:        "Senin",
		TimeSlot:   "07:00 - 08:40",
	}
}

// ═══════════════════════════════════════════════════════════
// ProposeAssignment — success paths
// ═══════════════════════════════════════════════════════════

func TestScheduleService_ProposeAssignment_Success(t *testing.T) {
	svc, repo, syncer := setupScheduleService(t)
	ctx := context.Background()

	resp, err := svc.ProposeAssignment(ctx, validAssignment())
	if err != nil {
		t.Fatalf("ProposeAssignment failed: %v", err)
	}
	if resp.ID == "" {
		t.Error("expected a generated item id")
	}
	if resp.CourseName != "Algoritma" || resp.RoomName != "R1" || resp.LecturerName != "Budi Santoso" {
		t.Errorf("names not resolved: %+v", resp)
	}

	items, _ := repo.Schedule.List(ctx)
	if len(items) != 1 {
		t.Fatalf("expected 1 stored item, got %d", len(items))
	}

	w, ok := syncer.lastWrite()
	if !ok {
		t.Fatal("expected a sheet write")
	}
	if w.action != sheet.ActionAdd || w.table != sheet.TableSchedule {
		t.Errorf("expected add/schedule write, got %s/%s", w.action, w.table)
	}
}

func TestScheduleService_ProposeAssignment_OpenSlot(t *testing.T) {
	svc, _, _ := setupScheduleService(t)

	req := validAssignment()
	req.LecturerID = ""

	resp, err := svc.ProposeAssignment(context.Background(), req)
	if err != nil {
		t.Fatalf("open-slot assignment failed: %v", err)
	}
	if resp.LecturerID != "" || resp.LecturerName != "" {
		t.Errorf("expected unassigned slot, got %+v", resp)
	}
}

func TestScheduleService_ProposeAssignment_SameRoomDifferentSlot(t *testing.T) {
	svc, _, _ := setupScheduleService(t)
	ctx := context.Background()

	if _, err := svc.ProposeAssignment(ctx, validAssignment()); err != nil {
		t.Fatalf("first assignment failed: %v", err)
	}

	req := validAssignment()
	req.TimeSlot = "09:00 - 10:40"
	req.ClassName = "PDB02"
	if _, err := svc.ProposeAssignment(ctx, req); err != nil {
		t.Fatalf("second assignment at a free slot failed: %v", err)
	}
}

// ═══════════════════════════════════════════════════════════
// ProposeAssignment — rejection order
// ═══════════════════════════════════════════════════════════

func TestScheduleService_ProposeAssignment_BlankSelections(t *testing.T) {
	svc, _, _ := setupScheduleService(t)
	ctx := context.Background()

	// All three blank: room surfaces first.
	req := &dto.AssignmentRequest{Day: "Senin", TimeSlot: "07:00 - 08:40"}
	if _, err := svc.ProposeAssignment(ctx, req); !errors.Is(err, ErrMissingRoom) {
		t.Errorf("expected ErrMissingRoom, got %v", err)
	}

	// Room chosen: course next.
	req.RoomID = "r-1"
	if _, err := svc.ProposeAssignment(ctx, req); !errors.Is(err, ErrMissingCourse) {
		t.Errorf("expected ErrMissingCourse, got %v", err)
	}

	// Course chosen: class last.
	req.CourseID = "c-1"
	if _, err := svc.ProposeAssignment(ctx, req); !errors.Is(err, ErrMissingClass) {
		t.Errorf("expected ErrMissingClass, got %v", err)
	}
}

func TestScheduleService_ProposeAssignment_UnknownVocabulary(t *testing.T) {
	svc, _, _ := setupScheduleService(t)
	ctx := context.Background()

	req := validAssignment()
	req.Day = "Minggu"
	if _, err := svc.ProposeAssignment(ctx, req); !errors.Is(err, ErrUnknownDay) {
		t.Errorf("expected ErrUnknownDay, got %v", err)
	}

	req = validAssignment()
	req.TimeSlot = "08:00 - 09:40"
	if _, err := svc.ProposeAssignment(ctx, req); !errors.Is(err, ErrUnknownTimeSlot) {
		t.Errorf("expected ErrUnknownTimeSlot, got %v", err)
	}
}

func TestScheduleService_ProposeAssignment_UnknownReferences(t *testing.T) {
	svc, _, _ := setupScheduleService(t)
	ctx := context.Background()

	req := validAssignment()
	req.RoomID = "r-missing"
	if _, err := svc.ProposeAssignment(ctx, req); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound, got %v", err)
	}

	req = validAssignment()
	req.CourseID = "c-missing"
	if _, err := svc.ProposeAssignment(ctx, req); !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("expected ErrCourseNotFound, got %v", err)
	}

	req = validAssignment()
	req.ClassName = "PDB99"
	if _, err := svc.ProposeAssignment(ctx, req); !errors.Is(err, ErrClassNotFound) {
		t.Errorf("expected ErrClassNotFound, got %v", err)
	}

	req = validAssignment()
	req.LecturerID = "l-missing"
	if _, err := svc.ProposeAssignment(ctx, req); !errors.Is(err, ErrLecturerNotFound) {
		t.Errorf("expected ErrLecturerNotFound, got %v", err)
	}
}

func TestScheduleService_ProposeAssignment_RoomConflict(t *testing.T) {
	svc, repo, syncer := setupScheduleService(t)
	ctx := context.Background()

	if _, err := svc.ProposeAssignment(ctx, validAssignment()); err != nil {
		t.Fatalf("seed assignment failed: %v", err)
	}
	writesBefore := syncer.writeCount()

	// Same room and slot, everything else different.
	req := validAssignment()
	req.CourseID = "c-2"
	req.LecturerID = "l-2"
	req.ClassName = "PDB02"

	_, err := svc.ProposeAssignment(ctx, req)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Kind != ConflictRoom {
		t.Errorf("expected ConflictRoom, got %d", conflict.Kind)
	}
	if conflict.RoomName != "R1" {
		t.Errorf("expected room name R1, got %q", conflict.RoomName)
	}

	// Rejection leaves the store and the sheet untouched.
	items, _ := repo.Schedule.List(ctx)
	if len(items) != 1 {
		t.Errorf("expected 1 item after rejection, got %d", len(items))
	}
	if syncer.writeCount() != writesBefore {
		t.Error("rejected assignment must not reach the sheet")
	}
}

func TestScheduleService_ProposeAssignment_ClassConflict(t *testing.T) {
	svc, _, _ := setupScheduleService(t)
	ctx := context.Background()

	if _, err := svc.ProposeAssignment(ctx, validAssignment()); err != nil {
		t.Fatalf("seed assignment failed: %v", err)
	}

	// Same class in another room at the same slot.
	req := validAssignment()
	req.RoomID = "r-2"
	req.LecturerID = "l-2"

	_, err := svc.ProposeAssignment(ctx, req)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Kind != ConflictClass {
		t.Errorf("expected ConflictClass, got %d", conflict.Kind)
	}
	// The message names the room the class already sits in.
	if conflict.RoomName != "R1" {
		t.Errorf("expected existing room R1, got %q", conflict.RoomName)
	}
}

func TestScheduleService_ProposeAssignment_LecturerConflict(t *testing.T) {
	svc, _, _ := setupScheduleService(t)
	ctx := context.Background()

	if _, err := svc.ProposeAssignment(ctx, validAssignment()); err != nil {
		t.Fatalf("seed assignment failed: %v", err)
	}

	// Same lecturer in another room with another class.
	req := validAssignment()
	req.RoomID = "r-2"
	req.ClassName = "PDB02"

	_, err := svc.ProposeAssignment(ctx, req)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Kind != ConflictLecturer {
		t.Errorf("expected ConflictLecturer, got %d", conflict.Kind)
	}
}

// ═══════════════════════════════════════════════════════════
// RemoveAssignment
// ═══════════════════════════════════════════════════════════

func TestScheduleService_RemoveAssignment(t *testing.T) {
	svc, repo, syncer := setupScheduleService(t)
	ctx := context.Background()

	resp, err := svc.ProposeAssignment(ctx, validAssignment())
	if err != nil {
		t.Fatalf("seed assignment failed: %v", err)
	}

	if err := svc.RemoveAssignment(ctx, resp.ID); err != nil {
		t.Fatalf("RemoveAssignment failed: %v", err)
	}
	items, _ := repo.Schedule.List(ctx)
	if len(items) != 0 {
		t.Fatalf("expected empty timetable, got %d items", len(items))
	}

	w, _ := syncer.lastWrite()
	if w.action != sheet.ActionDelete || w.id != resp.ID {
		t.Errorf("expected remote delete of %s, got %+v", resp.ID, w)
	}

	// The freed slot is assignable again.
	if _, err := svc.ProposeAssignment(ctx, validAssignment()); err != nil {
		t.Fatalf("re-assignment after removal failed: %v", err)
	}
}

func TestScheduleService_RemoveAssignment_AbsentID(t *testing.T) {
	svc, _, syncer := setupScheduleService(t)

	// Local no-op, but the remote delete still goes out.
	if err := svc.RemoveAssignment(context.Background(), "sch-missing"); err != nil {
		t.Fatalf("remove of absent id should succeed, got %v", err)
	}
	w, ok := syncer.lastWrite()
	if !ok || w.action != sheet.ActionDelete || w.id != "sch-missing" {
		t.Errorf("expected remote delete for absent id, got %+v", w)
	}
}

// ═══════════════════════════════════════════════════════════
// List — filters and ordering
// ═══════════════════════════════════════════════════════════

func TestScheduleService_List_FiltersAndOrder(t *testing.T) {
	svc, repo, _ := setupScheduleService(t)
	ctx := context.Background()

	// Inserted out of grid order on purpose.
	seed := []model.ScheduleItem{
		{ID: "sch-3", CourseID: "c-1", RoomID: "r-1", ClassName: "PDB01", Day: "Selasa", TimeSlot: "07:00 - 08:40"},
		{ID: "sch-2", CourseID: "c-1", LecturerID: "l-1", RoomID: "r-2", ClassName: "PDB02", Day: "Senin", TimeSlot: "09:00 - 10:40"},
		{ID: "sch-1", CourseID: "c-2", LecturerID: "l-2", RoomID: "r-1", ClassName: "PDB01", Day: "Senin", TimeSlot: "07:00 - 08:40"},
	}
	if err := repo.Schedule.CreateBatch(ctx, seed); err != nil {
		t.Fatalf("seed schedule: %v", err)
	}

	all, err := svc.List(ctx, "", "", "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 items, got %d", len(all))
	}
	if all[0].ID != "sch-1" || all[1].ID != "sch-2" || all[2].ID != "sch-3" {
		t.Errorf("grid order wrong: %s, %s, %s", all[0].ID, all[1].ID, all[2].ID)
	}

	monday, _ := svc.List(ctx, "Senin", "", "")
	if len(monday) != 2 {
		t.Errorf("expected 2 Monday items, got %d", len(monday))
	}
	roomOne, _ := svc.List(ctx, "", "r-1", "")
	if len(roomOne) != 2 {
		t.Errorf("expected 2 items in r-1, got %d", len(roomOne))
	}
	byLecturer, _ := svc.List(ctx, "", "", "l-1")
	if len(byLecturer) != 1 || byLecturer[0].ID != "sch-2" {
		t.Errorf("lecturer filter wrong: %+v", byLecturer)
	}
}

func TestScheduleService_List_DanglingReference(t *testing.T) {
	svc, repo, _ := setupScheduleService(t)
	ctx := context.Background()

	it := model.ScheduleItem{
		ID: "sch-1", CourseID: "c-gone", RoomID: "r-1",
		ClassName: "PDB01", Day: "Senin", TimeSlot: "07:00 - 08:40",
	}
	if err := repo.Schedule.Create(ctx, &it); err != nil {
		t.Fatalf("seed: %v", err)
	}

	out, err := svc.List(ctx, "", "", "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if out[0].CourseName != "Unknown" {
		t.Errorf("dangling course should render Unknown, got %q", out[0].CourseName)
	}
}

// ═══════════════════════════════════════════════════════════
// ImportRows — bulk insert
// ═══════════════════════════════════════════════════════════

func TestScheduleService_ImportRows_ResolvesNames(t *testing.T) {
	svc, repo, syncer := setupScheduleService(t)
	ctx := context.Background()

	rows := []dto.ScheduleImportRow{
		// By course name, lecturer by name.
		{Day: "Senin", TimeSlot: "07:00 - 08:40", ClassName: "PDB01", CourseName: "Algoritma", LecturerName: "Budi Santoso", RoomName: "R1"},
		// By course code, case-insensitive room, open slot lecturer.
		{Day: "Senin", TimeSlot: "09:00 - 10:40", ClassName: "PDB02", CourseName: "if102", LecturerName: "Open Slot", RoomName: "r2"},
		// Blank lecturer is an open slot too.
		{Day: "Selasa", TimeSlot: "07:00 - 08:40", ClassName: "PDB01", CourseName: "Basis Data", RoomName: "R1"},
	}

	result, err := svc.ImportRows(ctx, rows)
	if err != nil {
		t.Fatalf("ImportRows failed: %v", err)
	}
	if result.Imported != 3 {
		t.Fatalf("expected 3 imported, got %+v", result)
	}

	items, _ := repo.Schedule.List(ctx)
	if len(items) != 3 {
		t.Fatalf("expected 3 stored items, got %d", len(items))
	}
	if items[0].LecturerID != "l-1" {
		t.Errorf("expected lecturer resolved to l-1, got %q", items[0].LecturerID)
	}
	if items[1].CourseID != "c-2" || items[1].RoomID != "r-2" {
		t.Errorf("code/room resolution wrong: %+v", items[1])
	}
	if items[1].LecturerID != "" || items[2].LecturerID != "" {
		t.Error("open-slot rows must stay unassigned")
	}

	w, _ := syncer.lastWrite()
	if w.action != sheet.ActionBulkAdd || w.table != sheet.TableSchedule {
		t.Errorf("expected bulk_add/schedule write, got %s/%s", w.action, w.table)
	}
}

func TestScheduleService_ImportRows_SkipsBadRows(t *testing.T) {
	svc, _, _ := setupScheduleService(t)

	rows := []dto.ScheduleImportRow{
		// Missing room.
		{Day: "Senin", TimeSlot: "07:00 - 08:40", ClassName: "PDB01", CourseName: "Algoritma"},
		// Unknown day.
		{Day: "Minggu", TimeSlot: "07:00 - 08:40", ClassName: "PDB01", CourseName: "Algoritma", RoomName: "R1"},
		// Unknown course.
		{Day: "Senin", TimeSlot: "07:00 - 08:40", ClassName: "PDB01", CourseName: "Kalkulus", RoomName: "R1"},
		// Good.
		{Day: "Senin", TimeSlot: "07:00 - 08:40", ClassName: "PDB01", CourseName: "Algoritma", RoomName: "R1"},
	}

	result, err := svc.ImportRows(context.Background(), rows)
	if err != nil {
		t.Fatalf("ImportRows failed: %v", err)
	}
	if result.Imported != 1 || result.SkippedIncomplete != 1 || result.SkippedUnresolved != 2 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestScheduleService_ImportRows_UnmatchedLecturerBecomesOpenSlot(t *testing.T) {
	svc, repo, _ := setupScheduleService(t)
	ctx := context.Background()

	rows := []dto.ScheduleImportRow{
		{Day: "Senin", TimeSlot: "07:00 - 08:40", ClassName: "PDB01", CourseName: "Algoritma", LecturerName: "Dosen Tidak Ada", RoomName: "R1"},
	}
	result, err := svc.ImportRows(ctx, rows)
	if err != nil || result.Imported != 1 {
		t.Fatalf("import failed: %v %+v", err, result)
	}

	items, _ := repo.Schedule.List(ctx)
	if items[0].LecturerID != "" {
		t.Errorf("unmatched lecturer should degrade to open slot, got %q", items[0].LecturerID)
	}
}

func TestScheduleService_ImportRows_DefaultBypassesConflicts(t *testing.T) {
	svc, repo, _ := setupScheduleService(t)
	ctx := context.Background()

	// Two rows double-booking the same room and slot.
	rows := []dto.ScheduleImportRow{
		{Day: "Senin", TimeSlot: "07:00 - 08:40", ClassName: "PDB01", CourseName: "Algoritma", RoomName: "R1"},
		{Day: "Senin", TimeSlot: "07:00 - 08:40", ClassName: "PDB02", CourseName: "Basis Data", RoomName: "R1"},
	}
	result, err := svc.ImportRows(ctx, rows)
	if err != nil {
		t.Fatalf("ImportRows failed: %v", err)
	}
	if result.Imported != 2 || result.SkippedConflict != 0 {
		t.Errorf("default import must not conflict-check: %+v", result)
	}

	items, _ := repo.Schedule.List(ctx)
	if len(items) != 2 {
		t.Errorf("expected both rows stored, got %d", len(items))
	}
}

func TestScheduleService_ImportRows_StrictRejectsConflicts(t *testing.T) {
	repo, syncer := setupTestStore()
	seedMasterData(t, repo)
	svc := NewScheduleService(repo, syncer, true, testLogger())
	ctx := context.Background()

	existing := model.ScheduleItem{
		ID: "sch-1", CourseID: "c-1", RoomID: "r-1",
		ClassName: "PDB01", Day: "Senin", TimeSlot: "07:00 - 08:40",
	}
	if err := repo.Schedule.Create(ctx, &existing); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rows := []dto.ScheduleImportRow{
		// Collides with the existing item.
		{Day: "Senin", TimeSlot: "07:00 - 08:40", ClassName: "PDB02", CourseName: "Basis Data", RoomName: "R1"},
		// Clean.
		{Day: "Senin", TimeSlot: "09:00 - 10:40", ClassName: "PDB02", CourseName: "Basis Data", RoomName: "R1"},
		// Collides with the previous row inside the same batch.
		{Day: "Senin", TimeSlot: "09:00 - 10:40", ClassName: "PDB01", CourseName: "Algoritma", RoomName: "R1"},
	}
	result, err := svc.ImportRows(ctx, rows)
	if err != nil {
		t.Fatalf("ImportRows failed: %v", err)
	}
	if result.Imported != 1 || result.SkippedConflict != 2 {
		t.Errorf("strict import result wrong: %+v", result)
	}
}
