package model

// ScheduleItem is one cell of the weekly timetable.
//
// LecturerID may be empty, meaning the slot is open and can be claimed
// through the lecturer portal. ClassName references the section by name
// rather than by id, matching the sheet layout.
type ScheduleItem struct {
	ID         string `json:"id"`
	CourseID   string `json:"courseId"`
	LecturerID string `json:"lecturerId"`
	RoomID     string `json:"roomId"`
	ClassName  string `json:"className"`
	Day        string `json:"day"`
	TimeSlot   string `json:"timeSlot"`
}

// Assigned reports whether the item has a lecturer.
func (s *ScheduleItem) Assigned() bool {
	return s.LecturerID != ""
}
