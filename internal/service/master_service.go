package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dioadam27-sketch/SIMPDB/internal/dto"
	"github.com/dioadam27-sketch/SIMPDB/internal/model"
	"github.com/dioadam27-sketch/SIMPDB/internal/repository"
	"github.com/dioadam27-sketch/SIMPDB/internal/sheet"
)

// ── Master-data business errors ──

var (
	ErrNIPTaken = errors.New("NIP sudah terdaftar")
)

// defaultClassCount is how many PDB sections a fresh store gets.
const defaultClassCount = 125

// MasterService manages the four master tables. Deletes never cascade
// into the timetable: items referencing a deleted record stay and
// render with a placeholder name.
type MasterService interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*model.Course, error)
	DeleteCourse(ctx context.Context, id string) error
	ImportCourses(ctx context.Context, req *dto.ImportCoursesRequest) (*dto.ImportResult, error)

	ListLecturers(ctx context.Context) ([]model.Lecturer, error)
	CreateLecturer(ctx context.Context, req *dto.CreateLecturerRequest) (*model.Lecturer, error)
	DeleteLecturer(ctx context.Context, id string) error
	ImportLecturers(ctx context.Context, req *dto.ImportLecturersRequest) (*dto.ImportResult, error)

	ListRooms(ctx context.Context) ([]model.Room, error)
	CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*model.Room, error)
	DeleteRoom(ctx context.Context, id string) error
	ImportRooms(ctx context.Context, req *dto.ImportRoomsRequest) (*dto.ImportResult, error)

	ListClasses(ctx context.Context) ([]model.ClassName, error)
	CreateClass(ctx context.Context, req *dto.CreateClassRequest) (*model.ClassName, error)
	DeleteClass(ctx context.Context, id string) error
	ImportClasses(ctx context.Context, req *dto.ImportClassesRequest) (*dto.ImportResult, error)

	// SeedDefaultClasses fills an empty class table with PDB01..PDB125.
	// Local only; seeded defaults are not pushed to the sheet.
	SeedDefaultClasses(ctx context.Context) error
}

type masterService struct {
	repo   *repository.Repository
	syncer sheet.Syncer
	logger *zap.Logger
}

// NewMasterService creates a MasterService instance.
func NewMasterService(repo *repository.Repository, syncer sheet.Syncer, logger *zap.Logger) MasterService {
	return &masterService{repo: repo, syncer: syncer, logger: logger}
}

// ── Courses ──

func (s *masterService) ListCourses(ctx context.Context) ([]model.Course, error) {
	return s.repo.Course.List(ctx)
}

func (s *masterService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*model.Course, error) {
	course := &model.Course{
		ID:      newID("c"),
		Code:    strings.TrimSpace(req.Code),
		Name:    strings.TrimSpace(req.Name),
		Credits: req.Credits,
	}
	if err := s.repo.Course.Create(ctx, course); err != nil {
		return nil, err
	}
	s.syncer.WriteAsync(sheet.ActionAdd, sheet.TableCourses, *course, "")
	return course, nil
}

func (s *masterService) DeleteCourse(ctx context.Context, id string) error {
	if err := s.repo.Course.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCourseNotFound
		}
		return err
	}
	s.syncer.WriteAsync(sheet.ActionDelete, sheet.TableCourses, nil, id)
	return nil
}

func (s *masterService) ImportCourses(ctx context.Context, req *dto.ImportCoursesRequest) (*dto.ImportResult, error) {
	result := &dto.ImportResult{}
	var batch []model.Course
	for _, row := range req.Items {
		code := strings.TrimSpace(row.Code)
		name := strings.TrimSpace(row.Name)
		if code == "" || name == "" || row.Credits < 0 {
			result.Skipped++
			continue
		}
		batch = append(batch, model.Course{
			ID:      newID("c"),
			Code:    code,
			Name:    name,
			Credits: row.Credits,
		})
	}
	if len(batch) > 0 {
		if err := s.repo.Course.CreateBatch(ctx, batch); err != nil {
			return nil, err
		}
		s.syncer.WriteAsync(sheet.ActionBulkAdd, sheet.TableCourses, batch, "")
	}
	result.Imported = len(batch)
	return result, nil
}

// ── Lecturers ──

func (s *masterService) ListLecturers(ctx context.Context) ([]model.Lecturer, error) {
	return s.repo.Lecturer.List(ctx)
}

func (s *masterService) CreateLecturer(ctx context.Context, req *dto.CreateLecturerRequest) (*model.Lecturer, error) {
	nip := strings.TrimSpace(req.NIP)
	if _, err := s.repo.Lecturer.GetByNIP(ctx, nip); err == nil {
		return nil, ErrNIPTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	lecturer := &model.Lecturer{
		ID:        newID("l"),
		Name:      strings.TrimSpace(req.Name),
		NIP:       nip,
		Position:  strings.TrimSpace(req.Position),
		Expertise: strings.TrimSpace(req.Expertise),
	}
	if err := s.repo.Lecturer.Create(ctx, lecturer); err != nil {
		return nil, err
	}
	s.syncer.WriteAsync(sheet.ActionAdd, sheet.TableLecturers, *lecturer, "")
	return lecturer, nil
}

func (s *masterService) DeleteLecturer(ctx context.Context, id string) error {
	if err := s.repo.Lecturer.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLecturerNotFound
		}
		return err
	}
	s.syncer.WriteAsync(sheet.ActionDelete, sheet.TableLecturers, nil, id)
	return nil
}

func (s *masterService) ImportLecturers(ctx context.Context, req *dto.ImportLecturersRequest) (*dto.ImportResult, error) {
	existing, err := s.repo.Lecturer.List(ctx)
	if err != nil {
		return nil, err
	}
	seenNIP := make(map[string]bool, len(existing))
	for _, l := range existing {
		seenNIP[l.NIP] = true
	}

	result := &dto.ImportResult{}
	var batch []model.Lecturer
	for _, row := range req.Items {
		name := strings.TrimSpace(row.Name)
		nip := strings.TrimSpace(row.NIP)
		if name == "" || nip == "" || seenNIP[nip] {
			result.Skipped++
			continue
		}
		seenNIP[nip] = true
		batch = append(batch, model.Lecturer{
			ID:        newID("l"),
			Name:      name,
			NIP:       nip,
			Position:  strings.TrimSpace(row.Position),
			Expertise: strings.TrimSpace(row.Expertise),
		})
	}
	if len(batch) > 0 {
		if err := s.repo.Lecturer.CreateBatch(ctx, batch); err != nil {
			return nil, err
		}
		s.syncer.WriteAsync(sheet.ActionBulkAdd, sheet.TableLecturers, batch, "")
	}
	result.Imported = len(batch)
	return result, nil
}

// ── Rooms ──

func (s *masterService) ListRooms(ctx context.Context) ([]model.Room, error) {
	return s.repo.Room.List(ctx)
}

func (s *masterService) CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*model.Room, error) {
	room := &model.Room{
		ID:       newID("r"),
		Name:     strings.TrimSpace(req.Name),
		Capacity: req.Capacity,
		Building: strings.TrimSpace(req.Building),
		Location: strings.TrimSpace(req.Location),
	}
	if err := s.repo.Room.Create(ctx, room); err != nil {
		return nil, err
	}
	s.syncer.WriteAsync(sheet.ActionAdd, sheet.TableRooms, *room, "")
	return room, nil
}

func (s *masterService) DeleteRoom(ctx context.Context, id string) error {
	if err := s.repo.Room.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRoomNotFound
		}
		return err
	}
	s.syncer.WriteAsync(sheet.ActionDelete, sheet.TableRooms, nil, id)
	return nil
}

func (s *masterService) ImportRooms(ctx context.Context, req *dto.ImportRoomsRequest) (*dto.ImportResult, error) {
	result := &dto.ImportResult{}
	var batch []model.Room
	for _, row := range req.Items {
		name := strings.TrimSpace(row.Name)
		if name == "" || row.Capacity < 0 {
			result.Skipped++
			continue
		}
		batch = append(batch, model.Room{
			ID:       newID("r"),
			Name:     name,
			Capacity: row.Capacity,
			Building: strings.TrimSpace(row.Building),
			Location: strings.TrimSpace(row.Location),
		})
	}
	if len(batch) > 0 {
		if err := s.repo.Room.CreateBatch(ctx, batch); err != nil {
			return nil, err
		}
		s.syncer.WriteAsync(sheet.ActionBulkAdd, sheet.TableRooms, batch, "")
	}
	result.Imported = len(batch)
	return result, nil
}

// ── Classes ──

func (s *masterService) ListClasses(ctx context.Context) ([]model.ClassName, error) {
	return s.repo.Class.List(ctx)
}

func (s *masterService) CreateClass(ctx context.Context, req *dto.CreateClassRequest) (*model.ClassName, error) {
	class := &model.ClassName{
		ID:   newID("cls"),
		Name: strings.TrimSpace(req.Name),
	}
	if err := s.repo.Class.Create(ctx, class); err != nil {
		return nil, err
	}
	s.syncer.WriteAsync(sheet.ActionAdd, sheet.TableClasses, *class, "")
	return class, nil
}

func (s *masterService) DeleteClass(ctx context.Context, id string) error {
	if err := s.repo.Class.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClassNotFound
		}
		return err
	}
	s.syncer.WriteAsync(sheet.ActionDelete, sheet.TableClasses, nil, id)
	return nil
}

func (s *masterService) ImportClasses(ctx context.Context, req *dto.ImportClassesRequest) (*dto.ImportResult, error) {
	result := &dto.ImportResult{}
	var batch []model.ClassName
	for _, row := range req.Items {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			result.Skipped++
			continue
		}
		batch = append(batch, model.ClassName{ID: newID("cls"), Name: name})
	}
	if len(batch) > 0 {
		if err := s.repo.Class.CreateBatch(ctx, batch); err != nil {
			return nil, err
		}
		s.syncer.WriteAsync(sheet.ActionBulkAdd, sheet.TableClasses, batch, "")
	}
	result.Imported = len(batch)
	return result, nil
}

func (s *masterService) SeedDefaultClasses(ctx context.Context) error {
	classes, err := s.repo.Class.List(ctx)
	if err != nil {
		return err
	}
	if len(classes) > 0 {
		return nil
	}

	seed := make([]model.ClassName, 0, defaultClassCount)
	for i := 1; i <= defaultClassCount; i++ {
		seed = append(seed, model.ClassName{
			ID:   fmt.Sprintf("cls-%d", i),
			Name: fmt.Sprintf("PDB%02d", i),
		})
	}
	if err := s.repo.Class.CreateBatch(ctx, seed); err != nil {
		return err
	}

	s.logger.Info("seeded default class sections", zap.Int("count", defaultClassCount))
	return nil
}
