package converter

import (
	"go-clinic-records/internal/delivery/dto"
	"go-clinic-records/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(p entity.Patient, withHistory bool) dto.PatientResponse {
	resp := dto.PatientResponse{
		ID:        p.ID,
		FullName:  entity.FullName(p.Person),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		BirthDate: p.BirthDate,
		Phone:     p.Phone,
	}
	if withHistory {
		resp.History = ConsultationsToResponses(p.History)
	}
	return resp
}

func PatientsToResponses(patients []entity.Patient) *dto.PatientListResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, p := range patients {
		responses[i] = PatientToResponse(p, false)
	}
	return &dto.PatientListResponse{Patients: responses, Total: len(responses)}
}

func ConsultationsToResponses(history []entity.Consultation) []dto.ConsultationResponse {
	responses := make([]dto.ConsultationResponse, len(history))
	for i, c := range history {
		responses[i] = dto.ConsultationResponse{Date: c.Date, Reason: c.Reason, Notes: c.Notes}
	}
	return responses
}
