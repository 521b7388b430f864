package repository

import (
	"context"
	"reflect"
	"testing"
	"time"

	"go-clinic-records/internal/domain/entity"
	"go-clinic-records/internal/infrastructure/storage"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()

	t.Run("specialties", func(t *testing.T) {
		repo := NewSpecialtyRepository(storage.NewJSONStore[entity.Specialty](fs, "datos/especialidades.json", true))
		want := []entity.Specialty{{Name: "Cardiología", Description: "Corazón"}, {Name: "Pediatría", Description: "Niños"}}
		roundTrip(t, ctx, repo.SaveAll, repo.FindAll, want)
	})

	t.Run("patients", func(t *testing.T) {
		repo := NewPatientRepository(storage.NewJSONStore[entity.Patient](fs, "datos/pacientes.json", true))
		want := []entity.Patient{
			{
				ID:      "PAC001",
				Person:  entity.Person{FirstName: "Ana", LastName: "Díaz", BirthDate: "01/01/1990", Phone: "5551234567"},
				History: []entity.Consultation{{Date: "02/02/2026", Reason: "Control"}},
			},
			{
				ID:      "PAC002",
				Person:  entity.Person{FirstName: "Luis", LastName: "Mora", BirthDate: "05/06/1970", Phone: "+5550000000"},
				History: []entity.Consultation{},
			},
		}
		roundTrip(t, ctx, repo.SaveAll, repo.FindAll, want)
	})

	t.Run("doctors", func(t *testing.T) {
		repo := NewDoctorRepository(storage.NewJSONStore[entity.Doctor](fs, "datos/medicos.json", true))
		want := []entity.Doctor{{
			ID:        "MED001",
			Person:    entity.Person{FirstName: "Eva", LastName: "Ruiz", BirthDate: "01/01/1980", Phone: "5559990000"},
			Specialty: "Cardiología",
		}}
		roundTrip(t, ctx, repo.SaveAll, repo.FindAll, want)
	})

	t.Run("appointments", func(t *testing.T) {
		repo := NewAppointmentRepository(storage.NewJSONStore[entity.Appointment](fs, "datos/citas.json", true))
		want := []entity.Appointment{
			{ID: "CIT001", Date: "10/11/2026", Time: "09:00", Status: entity.AppointmentStatusPending, PatientID: "PAC001", DoctorID: "MED001"},
			{ID: "CIT002", Date: "11/11/2026", Time: "10:30", Status: entity.AppointmentStatusCancelled, PatientID: "PAC002", DoctorID: "MED001"},
			{ID: "CIT003", Date: "12/11/2026", Time: "11:00", Status: entity.AppointmentStatusCompleted, PatientID: "PAC001", DoctorID: "MED001"},
		}
		roundTrip(t, ctx, repo.SaveAll, repo.FindAll, want)
	})

	t.Run("diagnoses", func(t *testing.T) {
		repo := NewDiagnosisRepository(storage.NewJSONStore[entity.Diagnosis](fs, "datos/diagnosticos.json", true))
		want := []entity.Diagnosis{{ID: "DIA001", Description: "Gripe", Treatment: "Reposo", Observations: "", AppointmentID: "CIT003"}}
		roundTrip(t, ctx, repo.SaveAll, repo.FindAll, want)
	})
}

func roundTrip[T any](t *testing.T, ctx context.Context, save func(context.Context, []T) error, load func(context.Context) ([]T, error), want []T) {
	t.Helper()
	if err := save(ctx, want); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}
	got, err := load(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch\n got: %+v\nwant: %+v", got, want)
	}
}

func TestFindAll_MissingFileIsEmpty(t *testing.T) {
	repo := NewPatientRepository(storage.NewJSONStore[entity.Patient](afero.NewMemMapFs(), "datos/pacientes.json", false))
	got, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("FindAll = %v, want empty", got)
	}
}

func TestAuditLogRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAuditLogRepository(storage.NewJSONStore[entity.AuditLog](afero.NewMemMapFs(), "datos/auditoria.json", false))

	first := &entity.AuditLog{ID: uuid.New(), Action: entity.AuditActionPatientCreate, Entity: "patient", EntityID: "PAC001", CreatedAt: time.Now().UTC()}
	second := &entity.AuditLog{ID: uuid.New(), Action: entity.AuditActionDoctorCreate, Entity: "doctor", EntityID: "MED001", CreatedAt: time.Now().UTC()}
	for _, l := range []*entity.AuditLog{first, second} {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	all, err := repo.FindAll(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("FindAll = %d entries, %v; want 2", len(all), err)
	}

	got, err := repo.FindByID(ctx, second.ID)
	if err != nil || got == nil || got.EntityID != "MED001" {
		t.Errorf("FindByID = %+v, %v", got, err)
	}

	missing, err := repo.FindByID(ctx, uuid.New())
	if err != nil || missing != nil {
		t.Errorf("FindByID(unknown) = %+v, %v; want nil, nil", missing, err)
	}
}
