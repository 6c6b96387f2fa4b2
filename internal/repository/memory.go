package repository

import (
	"context"

	"github.com/dioadam27-sketch/SIMPDB/internal/model"
)

// ── Course ──

type courseRepo struct {
	table *memTable[model.Course]
}

func newCourseRepo() *courseRepo {
	return &courseRepo{table: newMemTable(func(c model.Course) string { return c.ID })}
}

func (r *courseRepo) List(ctx context.Context) ([]model.Course, error) {
	return r.table.list(), nil
}

func (r *courseRepo) GetByID(ctx context.Context, id string) (*model.Course, error) {
	c, ok := r.table.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	r.table.insert(*course)
	return nil
}

func (r *courseRepo) CreateBatch(ctx context.Context, courses []model.Course) error {
	r.table.insertBatch(courses)
	return nil
}

func (r *courseRepo) Delete(ctx context.Context, id string) error {
	if !r.table.remove(id) {
		return ErrNotFound
	}
	return nil
}

func (r *courseRepo) ReplaceAll(ctx context.Context, courses []model.Course) error {
	r.table.replaceAll(courses)
	return nil
}

// ── Lecturer ──

type lecturerRepo struct {
	table *memTable[model.Lecturer]
}

func newLecturerRepo() *lecturerRepo {
	return &lecturerRepo{table: newMemTable(func(l model.Lecturer) string { return l.ID })}
}

func (r *lecturerRepo) List(ctx context.Context) ([]model.Lecturer, error) {
	return r.table.list(), nil
}

func (r *lecturerRepo) GetByID(ctx context.Context, id string) (*model.Lecturer, error) {
	l, ok := r.table.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &l, nil
}

func (r *lecturerRepo) GetByNIP(ctx context.Context, nip string) (*model.Lecturer, error) {
	l, ok := r.table.find(func(l model.Lecturer) bool { return l.NIP == nip })
	if !ok {
		return nil, ErrNotFound
	}
	return &l, nil
}

func (r *lecturerRepo) Create(ctx context.Context, lecturer *model.Lecturer) error {
	r.table.insert(*lecturer)
	return nil
}

func (r *lecturerRepo) CreateBatch(ctx context.Context, lecturers []model.Lecturer) error {
	r.table.insertBatch(lecturers)
	return nil
}

func (r *lecturerRepo) Delete(ctx context.Context, id string) error {
	if !r.table.remove(id) {
		return ErrNotFound
	}
	return nil
}

func (r *lecturerRepo) ReplaceAll(ctx context.Context, lecturers []model.Lecturer) error {
	r.table.replaceAll(lecturers)
	return nil
}

// ── Room ──

type roomRepo struct {
	table *memTable[model.Room]
}

func newRoomRepo() *roomRepo {
	return &roomRepo{table: newMemTable(func(rm model.Room) string { return rm.ID })}
}

func (r *roomRepo) List(ctx context.Context) ([]model.Room, error) {
	return r.table.list(), nil
}

func (r *roomRepo) GetByID(ctx context.Context, id string) (*model.Room, error) {
	rm, ok := r.table.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &rm, nil
}

func (r *roomRepo) Create(ctx context.Context, room *model.Room) error {
	r.table.insert(*room)
	return nil
}

func (r *roomRepo) CreateBatch(ctx context.Context, rooms []model.Room) error {
	r.table.insertBatch(rooms)
	return nil
}

func (r *roomRepo) Delete(ctx context.Context, id string) error {
	if !r.table.remove(id) {
		return ErrNotFound
	}
	return nil
}

func (r *roomRepo) ReplaceAll(ctx context.Context, rooms []model.Room) error {
	r.table.replaceAll(rooms)
	return nil
}

// ── ClassName ──

type classRepo struct {
	table *memTable[model.ClassName]
}

func newClassRepo() *classRepo {
	return &classRepo{table: newMemTable(func(c model.ClassName) string { return c.ID })}
}

func (r *classRepo) List(ctx context.Context) ([]model.ClassName, error) {
	return r.table.list(), nil
}

func (r *classRepo) GetByID(ctx context.Context, id string) (*model.ClassName, error) {
	c, ok := r.table.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *classRepo) Create(ctx context.Context, class *model.ClassName) error {
	r.table.insert(*class)
	return nil
}

func (r *classRepo) CreateBatch(ctx context.Context, classes []model.ClassName) error {
	r.table.insertBatch(classes)
	return nil
}

func (r *classRepo) Delete(ctx context.Context, id string) error {
	if !r.table.remove(id) {
		return ErrNotFound
	}
	return nil
}

func (r *classRepo) ReplaceAll(ctx context.Context, classes []model.ClassName) error {
	r.table.replaceAll(classes)
	return nil
}

// ── ScheduleItem ──

type scheduleRepo struct {
	table *memTable[model.ScheduleItem]
}

func newScheduleRepo() *scheduleRepo {
	return &scheduleRepo{table: newMemTable(func(s model.ScheduleItem) string { return s.ID })}
}

func (r *scheduleRepo) List(ctx context.Context) ([]model.ScheduleItem, error) {
	return r.table.list(), nil
}

func (r *scheduleRepo) GetByID(ctx context.Context, id string) (*model.ScheduleItem, error) {
	s, ok := r.table.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *scheduleRepo) Create(ctx context.Context, item *model.ScheduleItem) error {
	r.table.insert(*item)
	return nil
}

func (r *scheduleRepo) CreateBatch(ctx context.Context, items []model.ScheduleItem) error {
	r.table.insertBatch(items)
	return nil
}

func (r *scheduleRepo) Update(ctx context.Context, item *model.ScheduleItem) error {
	if !r.table.update(*item) {
		return ErrNotFound
	}
	return nil
}

func (r *scheduleRepo) Delete(ctx context.Context, id string) error {
	if !r.table.remove(id) {
		return ErrNotFound
	}
	return nil
}

func (r *scheduleRepo) ReplaceAll(ctx context.Context, items []model.ScheduleItem) error {
	r.table.replaceAll(items)
	return nil
}
