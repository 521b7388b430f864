package entity

// Patient is a registered patient. History is append-only.
type Patient struct {
	ID string `json:"id_paciente"`
	Person
	History []Consultation `json:"historial_medico"`
}

// Consultation is a free-form entry in a patient's history.
type Consultation struct {
	Date   string `json:"fecha"`
	Reason string `json:"motivo"`
	Notes  string `json:"notas,omitempty"`
}

// PatientIDPrefix prefixes every patient id (PAC001).
const PatientIDPrefix = "PAC"
