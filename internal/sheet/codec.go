package sheet

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/dioadam27-sketch/SIMPDB/internal/model"
)

// The web-app endpoint serializes raw spreadsheet cells, so a numeric
// column may arrive as a JSON number or a string, and an id column
// typed into the sheet as a number arrives as a JSON number. The loose
// types below absorb both shapes; records are coerced into clean model
// structs before entering the store.

// looseString accepts any JSON scalar and renders it as a string.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	}
	*s = looseString(string(b))
	return nil
}

// looseInt accepts a JSON number or a numeric string.
type looseInt int

func (n *looseInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*n = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*n = 0
			return nil // unreadable cell, treat as zero like the UI did
		}
		*n = looseInt(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = looseInt(f)
	return nil
}

// ── Raw wire records ──

type rawCourse struct {
	ID      looseString `json:"id"`
	Code    looseString `json:"code"`
	Name    looseString `json:"name"`
	Credits looseInt    `json:"credits"`
}

type rawLecturer struct {
	ID        looseString `json:"id"`
	Name      looseString `json:"name"`
	NIP       looseString `json:"nip"`
	Position  looseString `json:"position"`
	Expertise looseString `json:"expertise"`
}

type rawRoom struct {
	ID       looseString `json:"id"`
	Name     looseString `json:"name"`
	Capacity looseInt    `json:"capacity"`
	Building looseString `json:"building"`
	Location looseString `json:"location"`
}

type rawClass struct {
	ID   looseString `json:"id"`
	Name looseString `json:"name"`
}

type rawScheduleItem struct {
	ID         looseString `json:"id"`
	CourseID   looseString `json:"courseId"`
	LecturerID looseString `json:"lecturerId"`
	RoomID     looseString `json:"roomId"`
	ClassName  looseString `json:"className"`
	Day        looseString `json:"day"`
	TimeSlot   looseString `json:"timeSlot"`
}

type rawSnapshot struct {
	Courses   []rawCourse       `json:"courses"`
	Lecturers []rawLecturer     `json:"lecturers"`
	Rooms     []rawRoom         `json:"rooms"`
	Classes   []rawClass        `json:"classes"`
	Schedule  []rawScheduleItem `json:"schedule"`
}

func (r *rawSnapshot) toSnapshot() *Snapshot {
	snap := &Snapshot{
		Courses:   make([]model.Course, 0, len(r.Courses)),
		Lecturers: make([]model.Lecturer, 0, len(r.Lecturers)),
		Rooms:     make([]model.Room, 0, len(r.Rooms)),
		Classes:   make([]model.ClassName, 0, len(r.Classes)),
		Schedule:  make([]model.ScheduleItem, 0, len(r.Schedule)),
	}
	for _, c := range r.Courses {
		snap.Courses = append(snap.Courses, model.Course{
			ID:      string(c.ID),
			Code:    string(c.Code),
			Name:    string(c.Name),
			Credits: int(c.Credits),
		})
	}
	for _, l := range r.Lecturers {
		snap.Lecturers = append(snap.Lecturers, model.Lecturer{
			ID:        string(l.ID),
			Name:      string(l.Name),
			NIP:       string(l.NIP),
			Position:  string(l.Position),
			Expertise: string(l.Expertise),
		})
	}
	for _, rm := range r.Rooms {
		snap.Rooms = append(snap.Rooms, model.Room{
			ID:       string(rm.ID),
			Name:     string(rm.Name),
			Capacity: int(rm.Capacity),
			Building: string(rm.Building),
			Location: string(rm.Location),
		})
	}
	for _, c := range r.Classes {
		snap.Classes = append(snap.Classes, model.ClassName{
			ID:   string(c.ID),
			Name: string(c.Name),
		})
	}
	for _, s := range r.Schedule {
		snap.Schedule = append(snap.Schedule, model.ScheduleItem{
			ID:         string(s.ID),
			CourseID:   string(s.CourseID),
			LecturerID: string(s.LecturerID),
			RoomID:     string(s.RoomID),
			ClassName:  string(s.ClassName),
			Day:        string(s.Day),
			TimeSlot:   string(s.TimeSlot),
		})
	}
	return snap
}
