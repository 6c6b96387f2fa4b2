package model

// ClassName is a teaching-section label, e.g. "PDB01".
// Names are treated as unique within a single (day, time slot) for
// conflict purposes but are not globally unique.
type ClassName struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
