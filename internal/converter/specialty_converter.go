package converter

import (
	"go-clinic-records/internal/delivery/dto"
	"go-clinic-records/internal/domain/entity"
)

// SpecialtyToResponse converts a Specialty entity to SpecialtyResponse DTO
func SpecialtyToResponse(s entity.Specialty, doctors int) dto.SpecialtyResponse {
	return dto.SpecialtyResponse{
		Name:        s.Name,
		Description: s.Description,
		Doctors:     doctors,
	}
}

// SpecialtiesToResponses converts specialties, counting doctors with countDoctors
func SpecialtiesToResponses(specialties []entity.Specialty, countDoctors func(name string) int) *dto.SpecialtyListResponse {
	responses := make([]dto.SpecialtyResponse, len(specialties))
	for i, s := range specialties {
		responses[i] = SpecialtyToResponse(s, countDoctors(s.Name))
	}
	return &dto.SpecialtyListResponse{Specialties: responses, Total: len(responses)}
}
