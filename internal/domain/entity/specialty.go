package entity

// Specialty is keyed by its exact name.
type Specialty struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}

func (s Specialty) String() string {
	return s.Name + ": " + s.Description
}
