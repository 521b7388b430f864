package dto

// Request DTOs

// CreateDoctorRequest represents the request body for registering a doctor
type CreateDoctorRequest struct {
	FirstName string `json:"nombre" validate:"required,clinic_name"`
	LastName  string `json:"apellido" validate:"required,clinic_name"`
	BirthDate string `json:"fecha_nacimiento" validate:"required,doctor_birthdate"`
	Phone     string `json:"telefono" validate:"required,clinic_phone"`
	Specialty string `json:"especialidad" validate:"required"`
}

// Response DTOs

type DoctorResponse struct {
	ID                   string `json:"id_medico"`
	FullName             string `json:"nombre_completo"`
	FirstName            string `json:"nombre"`
	LastName             string `json:"apellido"`
	BirthDate            string `json:"fecha_nacimiento"`
	Phone                string `json:"telefono"`
	Specialty            string `json:"especialidad"`
	SpecialtyDescription string `json:"descripcion_especialidad,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"medicos"`
	Total   int              `json:"total"`
}
