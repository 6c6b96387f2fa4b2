package model

// Room is a physical teaching room.
type Room struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Building string `json:"building,omitempty"`
	Location string `json:"location,omitempty"`
}
