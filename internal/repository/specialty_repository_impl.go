package repository

import (
	"context"

	"go-clinic-records/internal/domain/entity"
	domainRepo "go-clinic-records/internal/domain/repository"
	"go-clinic-records/internal/infrastructure/storage"
)

type specialtyRepository struct {
	store *storage.JSONStore[entity.Specialty]
}

func NewSpecialtyRepository(store *storage.JSONStore[entity.Specialty]) domainRepo.SpecialtyRepository {
	return &specialtyRepository{store: store}
}

func (r *specialtyRepository) FindAll(ctx context.Context) ([]entity.Specialty, error) {
	return loadCollection(ctx, r.store)
}

func (r *specialtyRepository) SaveAll(ctx context.Context, specialties []entity.Specialty) error {
	return r.store.Save(ctx, specialties)
}
