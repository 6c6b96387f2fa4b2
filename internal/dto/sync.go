package dto

import "time"

// SyncStatusResponse reports remote-store health.
type SyncStatusResponse struct {
	Configured bool      `json:"configured"`
	Connected  bool      `json:"connected"`
	LastSyncAt time.Time `json:"last_sync_at"`
	LastError  string    `json:"last_error,omitempty"`
}

// SyncRefreshResponse reports the table sizes after a full refetch.
type SyncRefreshResponse struct {
	Courses       int `json:"courses"`
	Lecturers     int `json:"lecturers"`
	Rooms         int `json:"rooms"`
	Classes       int `json:"classes"`
	ScheduleItems int `json:"schedule_items"`
}
