package dto

// AssignmentRequest is a candidate timetable tuple proposed by the
// admin. Blank course/room/class selections are rejected by the
// service with distinct reasons, so no binding tags on those fields.
type AssignmentRequest struct {
	CourseID   string `json:"course_id"`
	LecturerID string `json:"lecturer_id"`
	RoomID     string `json:"room_id"`
	ClassName  string `json:"class_name"`
	Day        string `json:"day" binding:"required"`
	TimeSlot   string `json:"time_slot" binding:"required"`
}

// ScheduleItemResponse is a timetable item with referenced names
// resolved. Dangling references resolve to "Unknown" rather than
// failing the read.
type ScheduleItemResponse struct {
	ID           string `json:"id"`
	CourseID     string `json:"course_id"`
	CourseCode   string `json:"course_code"`
	CourseName   string `json:"course_name"`
	LecturerID   string `json:"lecturer_id"`
	LecturerName string `json:"lecturer_name"`
	RoomID       string `json:"room_id"`
	RoomName     string `json:"room_name"`
	ClassName    string `json:"class_name"`
	Day          string `json:"day"`
	TimeSlot     string `json:"time_slot"`
}

// ScheduleImportRow is one parsed row of an uploaded schedule workbook.
// All references are by display name and resolved during import.
type ScheduleImportRow struct {
	Day          string `json:"day"`
	TimeSlot     string `json:"time_slot"`
	ClassName    string `json:"class_name"`
	CourseName   string `json:"course_name"`
	LecturerName string `json:"lecturer_name"`
	RoomName     string `json:"room_name"`
}

// ScheduleImportResult reports the outcome of a schedule import.
type ScheduleImportResult struct {
	Imported          int `json:"imported"`
	SkippedIncomplete int `json:"skipped_incomplete"`
	SkippedUnresolved int `json:"skipped_unresolved"`
	SkippedConflict   int `json:"skipped_conflict"`
}
