package repository

import (
	"context"

	"go-clinic-records/internal/domain/entity"
)

type DiagnosisRepository interface {
	FindAll(ctx context.Context) ([]entity.Diagnosis, error)
	SaveAll(ctx context.Context, diagnoses []entity.Diagnosis) error
}
