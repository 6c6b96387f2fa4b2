package repository

import (
	"context"
	"errors"

	"github.com/dioadam27-sketch/SIMPDB/internal/model"
)

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = errors.New("record not found")

// CourseRepository manages the course catalogue.
type CourseRepository interface {
	List(ctx context.Context) ([]model.Course, error)
	GetByID(ctx context.Context, id string) (*model.Course, error)
	Create(ctx context.Context, course *model.Course) error
	CreateBatch(ctx context.Context, courses []model.Course) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, courses []model.Course) error
}

// LecturerRepository manages teaching staff.
type LecturerRepository interface {
	List(ctx context.Context) ([]model.Lecturer, error)
	GetByID(ctx context.Context, id string) (*model.Lecturer, error)
	GetByNIP(ctx context.Context, nip string) (*model.Lecturer, error)
	Create(ctx context.Context, lecturer *model.Lecturer) error
	CreateBatch(ctx context.Context, lecturers []model.Lecturer) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, lecturers []model.Lecturer) error
}

// RoomRepository manages teaching rooms.
type RoomRepository interface {
	List(ctx context.Context) ([]model.Room, error)
	GetByID(ctx context.Context, id string) (*model.Room, error)
	Create(ctx context.Context, room *model.Room) error
	CreateBatch(ctx context.Context, rooms []model.Room) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, rooms []model.Room) error
}

// ClassRepository manages teaching-section labels.
type ClassRepository interface {
	List(ctx context.Context) ([]model.ClassName, error)
	GetByID(ctx context.Context, id string) (*model.ClassName, error)
	Create(ctx context.Context, class *model.ClassName) error
	CreateBatch(ctx context.Context, classes []model.ClassName) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, classes []model.ClassName) error
}

// ScheduleRepository manages timetable items.
type ScheduleRepository interface {
	List(ctx context.Context) ([]model.ScheduleItem, error)
	GetByID(ctx context.Context, id string) (*model.ScheduleItem, error)
	Create(ctx context.Context, item *model.ScheduleItem) error
	CreateBatch(ctx context.Context, items []model.ScheduleItem) error
	Update(ctx context.Context, item *model.ScheduleItem) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, items []model.ScheduleItem) error
}

// Repository aggregates every table of the store.
//
// The store is an in-memory snapshot of the remote sheet: reads are
// served locally, writes are applied locally first and persisted
// asynchronously, and a refresh replaces the whole snapshot.
type Repository struct {
	Course   CourseRepository
	Lecturer LecturerRepository
	Room     RoomRepository
	Class    ClassRepository
	Schedule ScheduleRepository
}

// NewMemory builds an empty in-memory store.
func NewMemory() *Repository {
	return &Repository{
		Course:   newCourseRepo(),
		Lecturer: newLecturerRepo(),
		Room:     newRoomRepo(),
		Class:    newClassRepo(),
		Schedule: newScheduleRepo(),
	}
}
