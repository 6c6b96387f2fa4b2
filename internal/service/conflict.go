package service

import (
	"fmt"

	"github.com/dioadam27-sketch/SIMPDB/internal/model"
)

// ConflictKind classifies why a candidate tuple was rejected.
type ConflictKind int

const (
	// ConflictRoom: the room is already occupied at that day/slot.
	ConflictRoom ConflictKind = iota + 1
	// ConflictClass: the class section is already scheduled elsewhere
	// at that day/slot.
	ConflictClass
	// ConflictLecturer: the chosen lecturer already teaches in another
	// room at that day/slot.
	ConflictLecturer
	// ConflictLecturerBusy: claim-time rejection, the claiming
	// lecturer already holds a slot at that day/slot.
	ConflictLecturerBusy
)

// ConflictError carries the conflict kind, the colliding item and the
// resolved name of the room it occupies, so the surfaced message can
// name the actual collision.
type ConflictError struct {
	Kind     ConflictKind
	Existing model.ScheduleItem
	RoomName string
}

func (e *ConflictError) Error() string {
	switch e.Kind {
	case ConflictRoom:
		return fmt.Sprintf("Ruangan %s sudah terisi pada %s jam %s", e.RoomName, e.Existing.Day, e.Existing.TimeSlot)
	case ConflictClass:
		return fmt.Sprintf("Kelas %s sudah memiliki jadwal di ruangan %s pada jam ini", e.Existing.ClassName, e.RoomName)
	case ConflictLecturer:
		return fmt.Sprintf("Dosen ini sedang mengajar di %s pada jam tersebut", e.RoomName)
	case ConflictLecturerBusy:
		return fmt.Sprintf("Gagal! Anda sudah memiliki jadwal mengajar pada %s jam %s di ruangan lain", e.Existing.Day, e.Existing.TimeSlot)
	default:
		return "jadwal bentrok"
	}
}

// checkCandidate evaluates a candidate tuple against the current
// timetable. Pure; no side effects.
//
// Exactly one conflict surfaces at a time, in fixed precedence: room
// first (double-booking a room is the most severe class of error),
// then class, then lecturer. The class and lecturer checks skip items
// sitting in the candidate's own room; anything there was already
// handled by the room check.
func checkCandidate(items []model.ScheduleItem, cand model.ScheduleItem) (ConflictKind, *model.ScheduleItem) {
	for i := range items {
		it := &items[i]
		if it.Day == cand.Day && it.TimeSlot == cand.TimeSlot && it.RoomID == cand.RoomID {
			return ConflictRoom, it
		}
	}

	for i := range items {
		it := &items[i]
		if it.Day == cand.Day && it.TimeSlot == cand.TimeSlot &&
			it.ClassName == cand.ClassName && it.RoomID != cand.RoomID {
			return ConflictClass, it
		}
	}

	if cand.LecturerID != "" {
		for i := range items {
			it := &items[i]
			if it.Day == cand.Day && it.TimeSlot == cand.TimeSlot &&
				it.LecturerID == cand.LecturerID && it.RoomID != cand.RoomID {
				return ConflictLecturer, it
			}
		}
	}

	return 0, nil
}

// findLecturerBusy looks for any item held by the lecturer at the
// given day/slot, across all rooms. Used by the claim path, where the
// target slot's room is irrelevant: the question is whether the
// lecturer is already teaching anywhere at that time.
func findLecturerBusy(items []model.ScheduleItem, day, timeSlot, lecturerID string) *model.ScheduleItem {
	for i := range items {
		it := &items[i]
		if it.Day == day && it.TimeSlot == timeSlot && it.LecturerID == lecturerID {
			return it
		}
	}
	return nil
}
