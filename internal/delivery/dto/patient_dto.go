package dto

// Request DTOs

// CreatePatientRequest represents the request body for registering a patient
type CreatePatientRequest struct {
	FirstName string `json:"nombre" validate:"required,clinic_name"`
	LastName  string `json:"apellido" validate:"required,clinic_name"`
	BirthDate string `json:"fecha_nacimiento" validate:"required,patient_birthdate"`
	Phone     string `json:"telefono" validate:"required,clinic_phone"`
}

// AddConsultationRequest appends one entry to a patient's history
type AddConsultationRequest struct {
	Date   string `json:"fecha" validate:"required,clinic_date"`
	Reason string `json:"motivo" validate:"required"`
	Notes  string `json:"notas"`
}

// Response DTOs

type ConsultationResponse struct {
	Date   string `json:"fecha"`
	Reason string `json:"motivo"`
	Notes  string `json:"notas,omitempty"`
}

// PatientResponse represents a patient in responses
type PatientResponse struct {
	ID        string                 `json:"id_paciente"`
	FullName  string                 `json:"nombre_completo"`
	FirstName string                 `json:"nombre"`
	LastName  string                 `json:"apellido"`
	BirthDate string                 `json:"fecha_nacimiento"`
	Phone     string                 `json:"telefono"`
	History   []ConsultationResponse `json:"historial_medico,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"pacientes"`
	Total    int               `json:"total"`
}
