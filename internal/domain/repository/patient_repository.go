package repository

import (
	"context"

	"go-clinic-records/internal/domain/entity"
)

type PatientRepository interface {
	FindAll(ctx context.Context) ([]entity.Patient, error)
	SaveAll(ctx context.Context, patients []entity.Patient) error
}
