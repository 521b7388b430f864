package seeder

import (
	"context"
	"io"
	"testing"
	"time"

	"go-clinic-records/internal/domain/entity"
	"go-clinic-records/internal/infrastructure/storage"
	"go-clinic-records/internal/repository"
	"go-clinic-records/internal/service"
	"go-clinic-records/internal/usecase"
	"go-clinic-records/pkg/validator"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func TestSeeder_Run(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	log := logrus.New()
	log.SetOutput(io.Discard)

	now := func() time.Time { return time.Date(2026, 10, 18, 10, 30, 0, 0, time.Local) }
	v := validator.NewValidator(now)
	audit := service.NewNoopAuditService()

	specialties := usecase.NewSpecialtyUsecase(ctx, log,
		repository.NewSpecialtyRepository(storage.NewJSONStore[entity.Specialty](fs, "datos/especialidades.json", false)), v, audit)
	patients := usecase.NewPatientUsecase(ctx, log,
		repository.NewPatientRepository(storage.NewJSONStore[entity.Patient](fs, "datos/pacientes.json", false)), v, audit)
	doctors := usecase.NewDoctorUsecase(ctx, log,
		repository.NewDoctorRepository(storage.NewJSONStore[entity.Doctor](fs, "datos/medicos.json", false)), specialties, v, audit)
	appointments := usecase.NewAppointmentUsecase(ctx, log,
		repository.NewAppointmentRepository(storage.NewJSONStore[entity.Appointment](fs, "datos/citas.json", false)), patients, doctors, v, audit)

	s := New(log, gofakeit.New(42), now, specialties, doctors, patients, appointments)
	got, err := s.Run(ctx, Counts{Specialties: 3, Doctors: 5, Patients: 10, Appointments: 20})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got.Specialties != 3 || len(specialties.List()) != 3 {
		t.Errorf("specialties = %d (%d stored), want 3", got.Specialties, len(specialties.List()))
	}
	if got.Doctors != len(doctors.List()) || got.Doctors == 0 {
		t.Errorf("doctors created = %d, stored %d", got.Doctors, len(doctors.List()))
	}
	if got.Patients != len(patients.List()) || got.Patients == 0 {
		t.Errorf("patients created = %d, stored %d", got.Patients, len(patients.List()))
	}
	if got.Appointments != 20 || len(appointments.List()) != 20 {
		t.Errorf("appointments = %d, want 20", got.Appointments)
	}

	for _, a := range appointments.List() {
		if !a.IsPending() {
			t.Errorf("seeded appointment %s is %s", a.ID, a.Status)
		}
	}

	// A second run skips specialties that already exist.
	again, err := s.Run(ctx, Counts{Specialties: 3})
	if err != nil || again.Specialties != 0 {
		t.Errorf("second run = %+v, %v; want no new specialties", again, err)
	}
}
