package converter

import (
	"go-clinic-records/internal/delivery/dto"
	"go-clinic-records/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO. The
// specialty description is taken from the registry entry, if any.
func DoctorToResponse(d entity.Doctor, specialty *entity.Specialty) dto.DoctorResponse {
	resp := dto.DoctorResponse{
		ID:        d.ID,
		FullName:  entity.FullName(d.Person),
		FirstName: d.FirstName,
		LastName:  d.LastName,
		BirthDate: d.BirthDate,
		Phone:     d.Phone,
		Specialty: d.Specialty,
	}
	if specialty != nil {
		resp.SpecialtyDescription = specialty.Description
	}
	return resp
}

func DoctorsToResponses(doctors []entity.Doctor, lookup func(name string) *entity.Specialty) *dto.DoctorListResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, d := range doctors {
		responses[i] = DoctorToResponse(d, lookup(d.Specialty))
	}
	return &dto.DoctorListResponse{Doctors: responses, Total: len(responses)}
}
