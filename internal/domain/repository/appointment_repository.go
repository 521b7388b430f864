package repository

import (
	"context"

	"go-clinic-records/internal/domain/entity"
)

type AppointmentRepository interface {
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	SaveAll(ctx context.Context, appointments []entity.Appointment) error
}
