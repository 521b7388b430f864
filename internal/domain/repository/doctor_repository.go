package repository

import (
	"context"

	"go-clinic-records/internal/domain/entity"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	SaveAll(ctx context.Context, doctors []entity.Doctor) error
}
