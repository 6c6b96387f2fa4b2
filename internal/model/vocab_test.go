package model

import "testing"

func TestValidDay(t *testing.T) {
	for _, d := range Days {
		if !ValidDay(d) {
			t.Errorf("expected %s valid", d)
		}
	}
	for _, d := range []string{"Minggu", "senin", "Monday", ""} {
		if ValidDay(d) {
			t.Errorf("expected %q invalid", d)
		}
	}
}

func TestValidTimeSlot(t *testing.T) {
	if len(TimeSlots) != 5 {
		t.Fatalf("expected 5 slots, got %d", len(TimeSlots))
	}
	for _, s := range TimeSlots {
		if !ValidTimeSlot(s) {
			t.Errorf("expected %s valid", s)
		}
	}
	for _, s := range []string{"07:00-08:40", "08:00 - 09:40", ""} {
		if ValidTimeSlot(s) {
			t.Errorf("expected %q invalid", s)
		}
	}
}

func TestScheduleItemAssigned(t *testing.T) {
	open := ScheduleItem{ID: "sch-1"}
	if open.Assigned() {
		t.Error("empty lecturer id must be an open slot")
	}
	held := ScheduleItem{ID: "sch-1", LecturerID: "l-1"}
	if !held.Assigned() {
		t.Error("non-empty lecturer id must be assigned")
	}
}
