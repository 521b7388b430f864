package converter

import (
	"go-clinic-records/internal/delivery/dto"
	"go-clinic-records/internal/domain/entity"
)

func ReportToResponse(r entity.Report) *dto.ReportResponse {
	resp := &dto.ReportResponse{
		BySpecialty:    r.BySpecialty,
		MonthlyAverage: r.MonthlyAverage.StringFixed(2),
	}
	if r.MostRequestedDoctor != nil {
		d := r.MostRequestedDoctor
		resp.MostRequestedDoctor = &dto.RankedPersonResponse{ID: d.Doctor.ID, FullName: entity.FullName(d.Doctor.Person), Count: d.Count}
	}
	if r.MostFrequentPatient != nil {
		p := r.MostFrequentPatient
		resp.MostFrequentPatient = &dto.RankedPersonResponse{ID: p.Patient.ID, FullName: entity.FullName(p.Patient.Person), Count: p.Count}
	}
	return resp
}
