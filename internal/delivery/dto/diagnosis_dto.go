package dto

// Request DTOs

type RegisterDiagnosisRequest struct {
	AppointmentID string `json:"id_cita" validate:"required"`
	Description   string `json:"descripcion" validate:"required"`
	Treatment     string `json:"tratamiento"`
	Observations  string `json:"observaciones"`
}

// Response DTOs

type DiagnosisResponse struct {
	ID            string `json:"id_diagnostico"`
	AppointmentID string `json:"id_cita"`
	Description   string `json:"descripcion"`
	Treatment     string `json:"tratamiento"`
	Observations  string `json:"observaciones"`
}

type DiagnosisListResponse struct {
	Diagnoses []DiagnosisResponse `json:"diagnosticos"`
	Total     int                 `json:"total"`
}

type DiagnosisViewListResponse struct {
	Rows  []DiagnosisViewResponse `json:"filas"`
	Total int                     `json:"total"`
}

type DiagnosisViewResponse struct {
	DiagnosisID   string `json:"id_diagnostico"`
	AppointmentID string `json:"id_cita"`
	Patient       string `json:"paciente"`
	Doctor        string `json:"medico"`
	Description   string `json:"descripcion"`
	Treatment     string `json:"tratamiento"`
	Observations  string `json:"observaciones"`
}
