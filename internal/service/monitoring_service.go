package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/dioadam27-sketch/SIMPDB/internal/dto"
	"github.com/dioadam27-sketch/SIMPDB/internal/model"
	"github.com/dioadam27-sketch/SIMPDB/internal/repository"
)

// MonitoringService feeds the admin dashboard and the per-day room
// occupancy view. Occupancy rate is occupied cells over rooms × the
// five slots of the day.
type MonitoringService interface {
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	// Occupancy returns the room × slot grid for one day, optionally
	// filtered by a room-name search string.
	Occupancy(ctx context.Context, day, search string) (*dto.OccupancyResponse, error)
}

type monitoringService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMonitoringService creates a MonitoringService instance.
func NewMonitoringService(repo *repository.Repository, logger *zap.Logger) MonitoringService {
	return &monitoringService{repo: repo, logger: logger}
}

func (s *monitoringService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
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
	items, err := s.repo.Schedule.List(ctx)
	if err != nil {
		return nil, err
	}

	occupiedByDay := make(map[string]map[string]bool, len(model.Days))
	for _, it := range items {
		if occupiedByDay[it.Day] == nil {
			occupiedByDay[it.Day] = make(map[string]bool)
		}
		occupiedByDay[it.Day][it.RoomID+"|"+it.TimeSlot] = true
	}

	total := len(rooms) * len(model.TimeSlots)
	occupancy := make([]dto.DayOccupancy, 0, len(model.Days))
	for _, day := range model.Days {
		occupied := len(occupiedByDay[day])
		rate := 0.0
		if total > 0 {
			rate = float64(occupied) / float64(total)
		}
		occupancy = append(occupancy, dto.DayOccupancy{
			Day:      day,
			Occupied: occupied,
			Total:    total,
			Rate:     rate,
		})
	}

	return &dto.DashboardResponse{
		Courses:       len(courses),
		Lecturers:     len(lecturers),
		Rooms:         len(rooms),
		ScheduleItems: len(items),
		Occupancy:     occupancy,
	}, nil
}

func (s *monitoringService) Occupancy(ctx context.Context, day, search string) (*dto.OccupancyResponse, error) {
	if !model.ValidDay(day) {
		return nil, ErrUnknownDay
	}

	rooms, err := s.repo.Room.List(ctx)
	if err != nil {
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

	byCell := make(map[string]model.ScheduleItem)
	for _, it := range items {
		if it.Day == day {
			byCell[it.RoomID+"|"+it.TimeSlot] = it
		}
	}

	search = normalizeKey(search)
	resp := &dto.OccupancyResponse{Day: day}
	for _, rm := range rooms {
		if search != "" && !strings.Contains(normalizeKey(rm.Name), search) {
			continue
		}
		for _, slot := range model.TimeSlots {
			cell := dto.OccupancyCell{
				RoomID:   rm.ID,
				RoomName: rm.Name,
				Capacity: rm.Capacity,
				TimeSlot: slot,
			}
			if it, ok := byCell[rm.ID+"|"+slot]; ok {
				cell.Occupied = true
				cell.CourseName = resolver.courseName(it.CourseID)
				cell.ClassName = it.ClassName
				cell.LecturerName = resolver.lecturerName(it.LecturerID)
			}
			resp.Cells = append(resp.Cells, cell)
			resp.Total++
			if cell.Occupied {
				resp.Occupied++
			}
		}
	}
	if resp.Total > 0 {
		resp.Rate = float64(resp.Occupied) / float64(resp.Total)
	}

	return resp, nil
}
