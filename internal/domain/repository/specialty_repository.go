package repository

import (
	"context"

	"go-clinic-records/internal/domain/entity"
)

type SpecialtyRepository interface {
	FindAll(ctx context.Context) ([]entity.Specialty, error)
	SaveAll(ctx context.Context, specialties []entity.Specialty) error
}
