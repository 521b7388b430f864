package entity

// Diagnosis concludes exactly one appointment.
type Diagnosis struct {
	ID            string `json:"id_diagnostico"`
	Description   string `json:"descripcion"`
	Treatment     string `json:"tratamiento"`
	Observations  string `json:"observaciones"`
	AppointmentID string `json:"id_cita"`
}

// DiagnosisIDPrefix prefixes every diagnosis id (DIA001).
const DiagnosisIDPrefix = "DIA"

// DiagnosisView is a diagnosis flattened with the names of the people involved.
type DiagnosisView struct {
	DiagnosisID   string `json:"id_diagnostico"`
	AppointmentID string `json:"id_cita"`
	Patient       string `json:"paciente"`
	Doctor        string `json:"medico"`
	Description   string `json:"descripcion"`
	Treatment     string `json:"tratamiento"`
	Observations  string `json:"observaciones"`
}
