package model

// Lecturer is a teaching staff member.
// NIP is globally unique and doubles as the portal login credential.
type Lecturer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	NIP       string `json:"nip"`
	Position  string `json:"position"`
	Expertise string `json:"expertise"`
}
