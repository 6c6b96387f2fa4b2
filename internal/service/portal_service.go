package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/dioadam27-sketch/SIMPDB/internal/dto"
	"github.com/dioadam27-sketch/SIMPDB/internal/repository"
	"github.com/dioadam27-sketch/SIMPDB/internal/sheet"
)

// ── Portal business errors ──

var (
	ErrSlotNotOpen    = errors.New("slot ini sudah diambil dosen lain")
	ErrSlotNotClaimed = errors.New("slot ini belum memiliki dosen")
	ErrNotSlotOwner   = errors.New("jadwal ini bukan milik Anda")
)

// PortalService drives the lecturer self-service flow: browse open
// slots, claim one, release one.
//
// A timetable item is either Unassigned (empty lecturer id, an "open
// slot") or Assigned. Claim flips Unassigned to Assigned after
// re-checking lecturer occupancy at that day/slot across all rooms;
// the room and class axes are already fixed by the existing item, so
// the full assignment validation does not apply here. The occupancy
// re-check runs at claim time because the caller's view may be stale
// relative to claims made since it was loaded.
type PortalService interface {
	// OpenCourses lists courses that still have claimable slots.
	OpenCourses(ctx context.Context) ([]dto.OpenCourseResponse, error)
	// OpenSlots lists the open slots, optionally for one course.
	OpenSlots(ctx context.Context, courseID string) ([]dto.ScheduleItemResponse, error)
	// MySchedule lists the slots currently held by a lecturer.
	MySchedule(ctx context.Context, lecturerID string) ([]dto.ScheduleItemResponse, error)
	// Claim assigns an open slot to the lecturer.
	Claim(ctx context.Context, itemID, lecturerID string) (*dto.ScheduleItemResponse, error)
	// Release returns a held slot to open. An empty callerLecturerID
	// skips the ownership check (admin acting on any slot).
	Release(ctx context.Context, itemID, callerLecturerID string) (*dto.ScheduleItemResponse, error)
}

type portalService struct {
	repo   *repository.Repository
	syncer sheet.Syncer
	logger *zap.Logger
}

// NewPortalService creates a PortalService instance.
func NewPortalService(repo *repository.Repository, syncer sheet.Syncer, logger *zap.Logger) PortalService {
	return &portalService{repo: repo, syncer: syncer, logger: logger}
}

func (s *portalService) OpenCourses(ctx context.Context) ([]dto.OpenCourseResponse, error) {
	items, err := s.repo.Schedule.List(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		return nil, err
	}

	openByCourse := make(map[string]int)
	for _, it := range items {
		if !it.Assigned() {
			openByCourse[it.CourseID]++
		}
	}

	out := make([]dto.OpenCourseResponse, 0, len(openByCourse))
	for _, c := range courses {
		if n := openByCourse[c.ID]; n > 0 {
			out = append(out, dto.OpenCourseResponse{
				CourseID:   c.ID,
				CourseCode: c.Code,
				CourseName: c.Name,
				OpenSlots:  n,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CourseName < out[j].CourseName })
	return out, nil
}

func (s *portalService) OpenSlots(ctx context.Context, courseID string) ([]dto.ScheduleItemResponse, error) {
	items, err := s.repo.Schedule.List(ctx)
	if err != nil {
		return nil, err
	}
	resolver, err := newNameResolver(ctx, s.repo)
	if err != nil {
		return nil, err
	}

	var out []dto.ScheduleItemResponse
	for _, it := range items {
		if it.Assigned() {
			continue
		}
		if courseID != "" && it.CourseID != courseID {
			continue
		}
		out = append(out, resolver.itemResponse(it))
	}
	sortGrid(out)
	return out, nil
}

func (s *portalService) MySchedule(ctx context.Context, lecturerID string) ([]dto.ScheduleItemResponse, error) {
	if _, err := s.repo.Lecturer.GetByID(ctx, lecturerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLecturerNotFound
		}
		return nil, err
	}

	items, err := s.repo.Schedule.List(ctx)
	if err != nil {
		return nil, err
	}
	resolver, err := newNameResolver(ctx, s.repo)
	if err != nil {
		return nil, err
	}

	var out []dto.ScheduleItemResponse
	for _, it := range items {
		if it.LecturerID == lecturerID {
			out = append(out, resolver.itemResponse(it))
		}
	}
	sortGrid(out)
	return out, nil
}

// ═══════════════════════════════════════════════════════════
// Claim / Release — the slot state machine
// ═══════════════════════════════════════════════════════════

func (s *portalService) Claim(ctx context.Context, itemID, lecturerID string) (*dto.ScheduleItemResponse, error) {
	if _, err := s.repo.Lecturer.GetByID(ctx, lecturerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLecturerNotFound
		}
		return nil, err
	}

	item, err := s.repo.Schedule.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if item.Assigned() {
		return nil, ErrSlotNotOpen
	}

	// Re-check lecturer occupancy across all rooms at this day/slot.
	items, err := s.repo.Schedule.List(ctx)
	if err != nil {
		return nil, err
	}
	if busy := findLecturerBusy(items, item.Day, item.TimeSlot, lecturerID); busy != nil {
		roomName := unknownName
		if room, rerr := s.repo.Room.GetByID(ctx, busy.RoomID); rerr == nil {
			roomName = room.Name
		}
		return nil, &ConflictError{Kind: ConflictLecturerBusy, Existing: *busy, RoomName: roomName}
	}

	item.LecturerID = lecturerID
	if err := s.repo.Schedule.Update(ctx, item); err != nil {
		return nil, err
	}
	s.syncer.WriteAsync(sheet.ActionUpdate, sheet.TableSchedule, *item, "")

	s.logger.Info("slot claimed",
		zap.String("item_id", item.ID),
		zap.String("lecturer_id", lecturerID))

	resolver, err := newNameResolver(ctx, s.repo)
	if err != nil {
		return nil, err
	}
	resp := resolver.itemResponse(*item)
	return &resp, nil
}

func (s *portalService) Release(ctx context.Context, itemID, callerLecturerID string) (*dto.ScheduleItemResponse, error) {
	item, err := s.repo.Schedule.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if !item.Assigned() {
		return nil, ErrSlotNotClaimed
	}
	if callerLecturerID != "" && item.LecturerID != callerLecturerID {
		return nil, ErrNotSlotOwner
	}

	released := item.LecturerID
	item.LecturerID = ""
	if err := s.repo.Schedule.Update(ctx, item); err != nil {
		return nil, err
	}
	s.syncer.WriteAsync(sheet.ActionUpdate, sheet.TableSchedule, *item, "")

	s.logger.Info("slot released",
		zap.String("item_id", item.ID),
		zap.String("lecturer_id", released))

	resolver, err := newNameResolver(ctx, s.repo)
	if err != nil {
		return nil, err
	}
	resp := resolver.itemResponse(*item)
	return &resp, nil
}

// sortGrid orders responses along the weekly grid.
func sortGrid(items []dto.ScheduleItemResponse) {
	sort.SliceStable(items, func(i, j int) bool {
		if di, dj := dayIndex(items[i].Day), dayIndex(items[j].Day); di != dj {
			return di < dj
		}
		if si, sj := slotIndex(items[i].TimeSlot), slotIndex(items[j].TimeSlot); si != sj {
			return si < sj
		}
		return items[i].RoomName < items[j].RoomName
	})
}
