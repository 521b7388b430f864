package repository

import (
	"context"

	"go-clinic-records/internal/domain/entity"
	domainRepo "go-clinic-records/internal/domain/repository"
	"go-clinic-records/internal/infrastructure/storage"
)

type patientRepository struct {
	store *storage.JSONStore[entity.Patient]
}

func NewPatientRepository(store *storage.JSONStore[entity.Patient]) domainRepo.PatientRepository {
	return &patientRepository{store: store}
}

func (r *patientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	return loadCollection(ctx, r.store)
}

func (r *patientRepository) SaveAll(ctx context.Context, patients []entity.Patient) error {
	return r.store.Save(ctx, patients)
}
