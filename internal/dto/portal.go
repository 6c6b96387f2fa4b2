package dto

// OpenCourseResponse is a course that still has claimable slots.
type OpenCourseResponse struct {
	CourseID   string `json:"course_id"`
	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`
	OpenSlots  int    `json:"open_slots"`
}

// ClaimRequest claims an open slot. LecturerID is honored only for
// admin callers acting on behalf of a lecturer; lecturer callers
// always act as themselves.
type ClaimRequest struct {
	ItemID     string `json:"item_id" binding:"required"`
	LecturerID string `json:"lecturer_id"`
}

// ReleaseRequest releases a held slot back to open.
type ReleaseRequest struct {
	ItemID     string `json:"item_id" binding:"required"`
	LecturerID string `json:"lecturer_id"`
}
