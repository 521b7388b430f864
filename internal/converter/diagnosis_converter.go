package converter

import (
	"go-clinic-records/internal/delivery/dto"
	"go-clinic-records/internal/domain/entity"
)

func DiagnosisToResponse(d entity.Diagnosis) dto.DiagnosisResponse {
	return dto.DiagnosisResponse{
		ID:            d.ID,
		AppointmentID: d.AppointmentID,
		Description:   d.Description,
		Treatment:     d.Treatment,
		Observations:  d.Observations,
	}
}

func DiagnosesToResponses(diagnoses []entity.Diagnosis) *dto.DiagnosisListResponse {
	responses := make([]dto.DiagnosisResponse, len(diagnoses))
	for i, d := range diagnoses {
		responses[i] = DiagnosisToResponse(d)
	}
	return &dto.DiagnosisListResponse{Diagnoses: responses, Total: len(responses)}
}

func DiagnosisViewsToResponses(rows []entity.DiagnosisView) *dto.DiagnosisViewListResponse {
	responses := make([]dto.DiagnosisViewResponse, len(rows))
	for i, r := range rows {
		responses[i] = dto.DiagnosisViewResponse{
			DiagnosisID:   r.DiagnosisID,
			AppointmentID: r.AppointmentID,
			Patient:       r.Patient,
			Doctor:        r.Doctor,
			Description:   r.Description,
			Treatment:     r.Treatment,
			Observations:  r.Observations,
		}
	}
	return &dto.DiagnosisViewListResponse{Rows: responses, Total: len(responses)}
}
