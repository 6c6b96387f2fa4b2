package dto

// DayOccupancy is the utilization of all rooms on one day.
type DayOccupancy struct {
	Day      string  `json:"day"`
	Occupied int     `json:"occupied"`
	Total    int     `json:"total"`
	Rate     float64 `json:"rate"`
}

// DashboardResponse feeds the admin dashboard tiles.
type DashboardResponse struct {
	Courses       int            `json:"courses"`
	Lecturers     int            `json:"lecturers"`
	Rooms         int            `json:"rooms"`
	ScheduleItems int            `json:"schedule_items"`
	Occupancy     []DayOccupancy `json:"occupancy"`
}

// OccupancyCell is one room × time-slot cell of the monitoring grid.
type OccupancyCell struct {
	RoomID       string `json:"room_id"`
	RoomName     string `json:"room_name"`
	Capacity     int    `json:"capacity"`
	TimeSlot     string `json:"time_slot"`
	Occupied     bool   `json:"occupied"`
	CourseName   string `json:"course_name,omitempty"`
	ClassName    string `json:"class_name,omitempty"`
	LecturerName string `json:"lecturer_name,omitempty"`
}

// OccupancyResponse is the monitoring grid for a single day.
type OccupancyResponse struct {
	Day      string          `json:"day"`
	Cells    []OccupancyCell `json:"cells"`
	Occupied int             `json:"occupied"`
	Total    int             `json:"total"`
	Rate     float64         `json:"rate"`
}
