package repository

import (
	"context"

	"go-clinic-records/internal/domain/entity"
	domainRepo "go-clinic-records/internal/domain/repository"
	"go-clinic-records/internal/infrastructure/storage"
)

type diagnosisRepository struct {
	store *storage.JSONStore[entity.Diagnosis]
}

func NewDiagnosisRepository(store *storage.JSONStore[entity.Diagnosis]) domainRepo.DiagnosisRepository {
	return &diagnosisRepository{store: store}
}

func (r *diagnosisRepository) FindAll(ctx context.Context) ([]entity.Diagnosis, error) {
	return loadCollection(ctx, r.store)
}

func (r *diagnosisRepository) SaveAll(ctx context.Context, diagnoses []entity.Diagnosis) error {
	return r.store.Save(ctx, diagnoses)
}
