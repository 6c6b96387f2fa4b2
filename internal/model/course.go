package model

// Course is a taught subject in the master catalogue.
type Course struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Credits int    `json:"credits"`
}
