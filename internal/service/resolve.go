package service

import (
	"context"

	"github.com/dioadam27-sketch/SIMPDB/internal/dto"
	"github.com/dioadam27-sketch/SIMPDB/internal/model"
	"github.com/dioadam27-sketch/SIMPDB/internal/repository"
)

// unknownName is rendered for dangling references. Master records can
// be deleted while timetable items still point at them; reads keep
// working and show the placeholder instead.
const unknownName = "Unknown"

// nameResolver resolves entity ids to display names from one read of
// the master tables.
type nameResolver struct {
	courses   map[string]model.Course
	lecturers map[string]model.Lecturer
	rooms     map[string]model.Room
}

func newNameResolver(ctx context.Context, repo *repository.Repository) (*nameResolver, error) {
	courses, err := repo.Course.List(ctx)
	if err != nil {
		return nil, err
	}
	lecturers, err := repo.Lecturer.List(ctx)
	if err != nil {
		return nil, err
	}
	rooms, err := repo.Room.List(ctx)
	if err != nil {
		return nil, err
	}

	r := &nameResolver{
		courses:   make(map[string]model.Course, len(courses)),
		lecturers: make(map[string]model.Lecturer, len(lecturers)),
		rooms:     make(map[string]model.Room, len(rooms)),
	}
	for _, c := range courses {
		r.courses[c.ID] = c
	}
	for _, l := range lecturers {
		r.lecturers[l.ID] = l
	}
	for _, rm := range rooms {
		r.rooms[rm.ID] = rm
	}
	return r, nil
}

func (r *nameResolver) roomName(id string) string {
	if rm, ok := r.rooms[id]; ok {
		return rm.Name
	}
	return unknownName
}

func (r *nameResolver) courseName(id string) string {
	if c, ok := r.courses[id]; ok {
		return c.Name
	}
	return unknownName
}

func (r *nameResolver) courseCode(id string) string {
	if c, ok := r.courses[id]; ok {
		return c.Code
	}
	return ""
}

// lecturerName returns "" for open slots and the placeholder for
// dangling ids.
func (r *nameResolver) lecturerName(id string) string {
	if id == "" {
		return ""
	}
	if l, ok := r.lecturers[id]; ok {
		return l.Name
	}
	return unknownName
}

func (r *nameResolver) itemResponse(it model.ScheduleItem) dto.ScheduleItemResponse {
	return dto.ScheduleItemResponse{
		ID:           it.ID,
		CourseID:     it.CourseID,
		CourseCode:   r.courseCode(it.CourseID),
		CourseName:   r.courseName(it.CourseID),
		LecturerID:   it.LecturerID,
		LecturerName: r.lecturerName(it.LecturerID),
		RoomID:       it.RoomID,
		RoomName:     r.roomName(it.RoomID),
		ClassName:    it.ClassName,
		Day:          it.Day,
		TimeSlot:     it.TimeSlot,
	}
}

// dayIndex and slotIndex order items along the fixed weekly grid.
// Unrecognized values sort last.

func dayIndex(day string) int {
	for i, d := range model.Days {
		if d == day {
			return i
		}
	}
	return len(model.Days)
}

func slotIndex(slot string) int {
	for i, s := range model.TimeSlots {
		if s == slot {
			return i
		}
	}
	return len(model.TimeSlots)
}
