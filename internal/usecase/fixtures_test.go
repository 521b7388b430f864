package usecase

import (
	"context"
	"io"
	"path"
	"testing"
	"time"

	"go-clinic-records/internal/delivery/dto"
	"go-clinic-records/internal/domain/entity"
	domainRepo "go-clinic-records/internal/domain/repository"
	"go-clinic-records/internal/infrastructure/storage"
	"go-clinic-records/internal/repository"
	"go-clinic-records/internal/service"
	"go-clinic-records/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

var testNow = time.Date(2026, 10, 18, 10, 30, 0, 0, time.Local)

const dataDir = "datos"

type registries struct {
	specialties  SpecialtyUsecase
	patients     PatientUsecase
	doctors      DoctorUsecase
	appointments AppointmentUsecase
	diagnoses    DiagnosisUsecase
	statistics   StatisticsUsecase
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestValidator() *validator.CustomValidator {
	return validator.NewValidator(func() time.Time { return testNow })
}

func diagnosisRepoOn(fs afero.Fs) domainRepo.DiagnosisRepository {
	return repository.NewDiagnosisRepository(storage.NewJSONStore[entity.Diagnosis](fs, path.Join(dataDir, "diagnosticos.json"), true))
}

// openRegistries wires every registry over fs in load order.
func openRegistries(t *testing.T, fs afero.Fs) *registries {
	return openRegistriesWith(t, fs, diagnosisRepoOn(fs))
}

func openRegistriesWith(t *testing.T, fs afero.Fs, diagnosisRepo domainRepo.DiagnosisRepository) *registries {
	t.Helper()

	ctx := context.Background()
	log := newTestLogger()
	v := newTestValidator()
	audit := service.NewNoopAuditService()

	r := &registries{}
	r.specialties = NewSpecialtyUsecase(ctx, log,
		repository.NewSpecialtyRepository(storage.NewJSONStore[entity.Specialty](fs, path.Join(dataDir, "especialidades.json"), true)), v, audit)
	r.patients = NewPatientUsecase(ctx, log,
		repository.NewPatientRepository(storage.NewJSONStore[entity.Patient](fs, path.Join(dataDir, "pacientes.json"), true)), v, audit)
	r.doctors = NewDoctorUsecase(ctx, log,
		repository.NewDoctorRepository(storage.NewJSONStore[entity.Doctor](fs, path.Join(dataDir, "medicos.json"), true)), r.specialties, v, audit)
	r.appointments = NewAppointmentUsecase(ctx, log,
		repository.NewAppointmentRepository(storage.NewJSONStore[entity.Appointment](fs, path.Join(dataDir, "citas.json"), true)), r.patients, r.doctors, v, audit)
	r.diagnoses = NewDiagnosisUsecase(ctx, log, diagnosisRepo, r.appointments, r.patients, r.doctors, v, audit)
	r.statistics = NewStatisticsUsecase(log, r.appointments, r.doctors, r.patients)
	return r
}

// seedClinic registers Cardiología, patient PAC001 (Ana Díaz) and doctor MED001 (Eva Ruiz).
func seedClinic(t *testing.T, r *registries) {
	t.Helper()
	ctx := context.Background()

	if _, err := r.specialties.Add(ctx, &dto.CreateSpecialtyRequest{Name: "Cardiología", Description: "Corazón"}); err != nil {
		t.Fatalf("add specialty: %v", err)
	}
	if _, err := r.patients.Add(ctx, &dto.CreatePatientRequest{
		FirstName: "Ana", LastName: "Díaz", BirthDate: "01/01/1990", Phone: "5551234567",
	}); err != nil {
		t.Fatalf("add patient: %v", err)
	}
	if _, err := r.doctors.Add(ctx, &dto.CreateDoctorRequest{
		FirstName: "Eva", LastName: "Ruiz", BirthDate: "01/01/1980", Phone: "5559990000", Specialty: "Cardiología",
	}); err != nil {
		t.Fatalf("add doctor: %v", err)
	}
}

func schedule(t *testing.T, r *registries, date, hour, patientID, doctorID string) entity.Appointment {
	t.Helper()
	a, err := r.appointments.Schedule(context.Background(), &dto.ScheduleAppointmentRequest{
		Date: date, Time: hour, PatientID: patientID, DoctorID: doctorID,
	})
	if err != nil {
		t.Fatalf("schedule %s %s: %v", date, hour, err)
	}
	return a
}
