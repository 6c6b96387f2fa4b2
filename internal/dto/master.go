package dto

// ── Courses ──

type CreateCourseRequest struct {
	Code    string `json:"code" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Credits int    `json:"credits" binding:"gte=0"`
}

type ImportCoursesRequest struct {
	Items []CreateCourseRequest `json:"items" binding:"required,min=1,dive"`
}

// ── Lecturers ──

type CreateLecturerRequest struct {
	Name      string `json:"name" binding:"required"`
	NIP       string `json:"nip" binding:"required"`
	Position  string `json:"position"`
	Expertise string `json:"expertise"`
}

type ImportLecturersRequest struct {
	Items []CreateLecturerRequest `json:"items" binding:"required,min=1,dive"`
}

// ── Rooms ──

type CreateRoomRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"gte=0"`
	Building string `json:"building"`
	Location string `json:"location"`
}

type ImportRoomsRequest struct {
	Items []CreateRoomRequest `json:"items" binding:"required,min=1,dive"`
}

// ── Classes ──

type CreateClassRequest struct {
	Name string `json:"name" binding:"required"`
}

type ImportClassesRequest struct {
	Items []CreateClassRequest `json:"items" binding:"required,min=1,dive"`
}

// ImportResult reports the outcome of a bulk import.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
