package converter

import (
	"go-clinic-records/internal/delivery/dto"
	"go-clinic-records/internal/domain/entity"
)

// NameResolver returns the full name for a patient or doctor id, or "" when unknown.
type NameResolver func(id string) string

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(a entity.Appointment, patientName, doctorName NameResolver) dto.AppointmentResponse {
	resp := dto.AppointmentResponse{
		ID:        a.ID,
		Date:      a.Date,
		Time:      a.Time,
		Status:    string(a.Status),
		PatientID: a.PatientID,
		DoctorID:  a.DoctorID,
	}
	if patientName != nil {
		resp.Patient = patientName(a.PatientID)
	}
	if doctorName != nil {
		resp.Doctor = doctorName(a.DoctorID)
	}
	return resp
}

func AppointmentsToResponses(appointments []entity.Appointment, patientName, doctorName NameResolver) *dto.AppointmentListResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, a := range appointments {
		responses[i] = AppointmentToResponse(a, patientName, doctorName)
	}
	return &dto.AppointmentListResponse{Appointments: responses, Total: len(responses)}
}
