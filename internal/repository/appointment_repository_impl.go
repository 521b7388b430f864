package repository

import (
	"context"

	"go-clinic-records/internal/domain/entity"
	domainRepo "go-clinic-records/internal/domain/repository"
	"go-clinic-records/internal/infrastructure/storage"
)

type appointmentRepository struct {
	store *storage.JSONStore[entity.Appointment]
}

func NewAppointmentRepository(store *storage.JSONStore[entity.Appointment]) domainRepo.AppointmentRepository {
	return &appointmentRepository{store: store}
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	return loadCollection(ctx, r.store)
}

func (r *appointmentRepository) SaveAll(ctx context.Context, appointments []entity.Appointment) error {
	return r.store.Save(ctx, appointments)
}
