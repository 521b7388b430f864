package repository

import (
	"context"

	"go-clinic-records/internal/domain/entity"
	domainRepo "go-clinic-records/internal/domain/repository"
	"go-clinic-records/internal/infrastructure/storage"
)

type doctorRepository struct {
	store *storage.JSONStore[entity.Doctor]
}

func NewDoctorRepository(store *storage.JSONStore[entity.Doctor]) domainRepo.DoctorRepository {
	return &doctorRepository{store: store}
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	return loadCollection(ctx, r.store)
}

func (r *doctorRepository) SaveAll(ctx context.Context, doctors []entity.Doctor) error {
	return r.store.Save(ctx, doctors)
}
