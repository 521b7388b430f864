package dto

// Request DTOs

type CreateSpecialtyRequest struct {
	Name        string `json:"nombre" validate:"required"`
	Description string `json:"descripcion" validate:"required"`
}

// Response DTOs

type SpecialtyResponse struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Doctors     int    `json:"medicos"`
}

type SpecialtyListResponse struct {
	Specialties []SpecialtyResponse `json:"especialidades"`
	Total       int                 `json:"total"`
}
