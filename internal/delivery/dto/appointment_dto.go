package dto

// Request DTOs

// ScheduleAppointmentRequest represents the request body for booking an appointment
type ScheduleAppointmentRequest struct {
	Date      string `json:"fecha" validate:"required,appointment_date"`
	Time      string `json:"hora" validate:"required,clinic_time"`
	PatientID string `json:"id_paciente" validate:"required"`
	DoctorID  string `json:"id_medico" validate:"required"`
}

// RescheduleAppointmentRequest moves a pending appointment
type RescheduleAppointmentRequest struct {
	Date string `json:"fecha" validate:"required,appointment_date"`
	Time string `json:"hora" validate:"required,clinic_time"`
}

// Response DTOs

type AppointmentResponse struct {
	ID        string `json:"id_cita"`
	Date      string `json:"fecha"`
	Time      string `json:"hora"`
	Status    string `json:"estado"`
	PatientID string `json:"id_paciente"`
	Patient   string `json:"paciente,omitempty"`
	DoctorID  string `json:"id_medico"`
	Doctor    string `json:"medico,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"citas"`
	Total        int                   `json:"total"`
}
