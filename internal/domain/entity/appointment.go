package entity

import "errors"

var ErrInvalidStatusTransition = errors.New("invalid appointment status transition")

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pendiente"
	AppointmentStatusCompleted AppointmentStatus = "completada"
	AppointmentStatusCancelled AppointmentStatus = "cancelada"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// AppointmentIDPrefix prefixes every appointment id (CIT001).
const AppointmentIDPrefix = "CIT"

// Appointment links one patient and one doctor at a date (DD/MM/YYYY) and time (HH:MM).
//
// State transitions:
//
//	pending -> cancelled
//	pending -> completed
//	pending -> pending (reschedule)
type Appointment struct {
	ID        string            `json:"id_cita"`
	Date      string            `json:"fecha"`
	Time      string            `json:"hora"`
	Status    AppointmentStatus `json:"estado"`
	PatientID string            `json:"id_paciente"`
	DoctorID  string            `json:"id_medico"`
}

// IsPending checks if appointment is in pending status
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsCompleted checks if appointment is completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsCancelled checks if appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Cancel moves a pending appointment to cancelled
func (a *Appointment) Cancel() error {
	if !a.IsPending() {
		return ErrInvalidStatusTransition
	}
	a.Status = AppointmentStatusCancelled
	return nil
}

// Complete moves a pending appointment to completed
func (a *Appointment) Complete() error {
	if !a.IsPending() {
		return ErrInvalidStatusTransition
	}
	a.Status = AppointmentStatusCompleted
	return nil
}

// Reschedule changes date and time of a pending appointment
func (a *Appointment) Reschedule(date, time string) error {
	if !a.IsPending() {
		return ErrInvalidStatusTransition
	}
	a.Date = date
	a.Time = time
	return nil
}
