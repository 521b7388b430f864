package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        uuid.UUID   `json:"id"`
	Action    string      `json:"accion"`
	Entity    string      `json:"entidad"`
	EntityID  string      `json:"id_entidad"`
	OldValue  interface{} `json:"valor_anterior,omitempty"`
	NewValue  interface{} `json:"valor_nuevo,omitempty"`
	CreatedAt time.Time   `json:"fecha"`
}

// Common audit actions
const (
	AuditActionSpecialtyCreate     = "specialty.create"
	AuditActionSpecialtyDelete     = "specialty.delete"
	AuditActionPatientCreate       = "patient.create"
	AuditActionPatientConsult      = "patient.consultation"
	AuditActionDoctorCreate        = "doctor.create"
	AuditActionAppointmentCreate   = "appointment.create"
	AuditActionAppointmentCancel   = "appointment.cancel"
	AuditActionAppointmentMove     = "appointment.reschedule"
	AuditActionAppointmentComplete = "appointment.complete"
	AuditActionAppointmentDelete   = "appointment.delete"
	AuditActionDiagnosisCreate     = "diagnosis.create"
)
