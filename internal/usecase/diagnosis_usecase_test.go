package usecase

import (
	"context"
	"errors"
	"testing"

	"go-clinic-records/internal/delivery/dto"
	"go-clinic-records/internal/domain/entity"

	"github.com/spf13/afero"
)

type failingDiagnosisRepo struct{}

func (failingDiagnosisRepo) FindAll(context.Context) ([]entity.Diagnosis, error) { return nil, nil }

func (failingDiagnosisRepo) SaveAll(context.Context, []entity.Diagnosis) error {
	return errors.New("disk full")
}

func TestDiagnosisUsecase_ScheduleThroughDiagnosis(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	r := openRegistries(t, fs)
	seedClinic(t, r)

	a := schedule(t, r, "10/11/2026", "09:00", "PAC001", "MED001")
	if got := r.appointments.ByPatient("PAC001"); len(got) != 1 || got[0].ID != a.ID {
		t.Fatalf("ByPatient = %+v", got)
	}
	if got := r.appointments.ByDoctor("MED001"); len(got) != 1 || got[0].ID != a.ID {
		t.Fatalf("ByDoctor = %+v", got)
	}

	d, err := r.diagnoses.Register(ctx, &dto.RegisterDiagnosisRequest{
		AppointmentID: a.ID, Description: "Hipertensión leve", Treatment: "Dieta baja en sal",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if d.ID != "DIA001" || d.AppointmentID != a.ID {
		t.Errorf("diagnosis = %+v", d)
	}

	if got, _ := r.appointments.Find(a.ID); !got.IsCompleted() {
		t.Errorf("appointment status = %s, want completed", got.Status)
	}

	view := r.diagnoses.CompletedView()
	want := entity.DiagnosisView{
		DiagnosisID:   "DIA001",
		AppointmentID: a.ID,
		Patient:       "Díaz, Ana",
		Doctor:        "Ruiz, Eva",
		Description:   "Hipertensión leve",
		Treatment:     "Dieta baja en sal",
	}
	if len(view) != 1 || view[0] != want {
		t.Errorf("CompletedView = %+v, want [%+v]", view, want)
	}

	if _, err := r.diagnoses.Register(ctx, &dto.RegisterDiagnosisRequest{AppointmentID: a.ID, Description: "otra"}); !errors.Is(err, entity.ErrInvalidStatusTransition) {
		t.Errorf("second diagnosis = %v, want ErrInvalidStatusTransition", err)
	}
	if n := len(r.diagnoses.List()); n != 1 {
		t.Errorf("diagnoses = %d, want exactly 1", n)
	}

	reopened := openRegistries(t, fs)
	if got := reopened.diagnoses.ByPatient("PAC001"); len(got) != 1 {
		t.Errorf("ByPatient after reload = %+v", got)
	}
	if got := reopened.diagnoses.ByDoctor("MED002"); len(got) != 0 {
		t.Errorf("ByDoctor(other) = %+v", got)
	}
}

func TestDiagnosisUsecase_Register_Rejections(t *testing.T) {
	ctx := context.Background()
	r := openRegistries(t, afero.NewMemMapFs())
	seedClinic(t, r)
	a := schedule(t, r, "10/11/2026", "09:00", "PAC001", "MED001")

	tests := []struct {
		name    string
		req     dto.RegisterDiagnosisRequest
		wantErr error
	}{
		{"blank description", dto.RegisterDiagnosisRequest{AppointmentID: a.ID, Description: "   "}, ErrValidation},
		{"unknown appointment", dto.RegisterDiagnosisRequest{AppointmentID: "CIT404", Description: "Gripe"}, ErrAppointmentNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.diagnoses.Register(ctx, &tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if got, _ := r.appointments.Find(a.ID); !got.IsPending() {
		t.Errorf("rejected registration changed appointment to %s", got.Status)
	}

	if _, err := r.appointments.Cancel(ctx, a.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := r.diagnoses.Register(ctx, &dto.RegisterDiagnosisRequest{AppointmentID: a.ID, Description: "Gripe"}); !errors.Is(err, entity.ErrInvalidStatusTransition) {
		t.Errorf("diagnosis on cancelled = %v, want ErrInvalidStatusTransition", err)
	}
}

func TestDiagnosisUsecase_FailedSaveReopensAppointment(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	r := openRegistriesWith(t, fs, failingDiagnosisRepo{})
	seedClinic(t, r)
	a := schedule(t, r, "10/11/2026", "09:00", "PAC001", "MED001")

	if _, err := r.diagnoses.Register(ctx, &dto.RegisterDiagnosisRequest{AppointmentID: a.ID, Description: "Gripe"}); !errors.Is(err, ErrPersistence) {
		t.Fatalf("err = %v, want ErrPersistence", err)
	}
	if got, _ := r.appointments.Find(a.ID); !got.IsPending() {
		t.Errorf("in-memory status = %s, want pending", got.Status)
	}
	if got, _ := openRegistries(t, fs).appointments.Find(a.ID); !got.IsPending() {
		t.Errorf("on-disk status = %s, want pending", got.Status)
	}
	if n := len(r.diagnoses.List()); n != 0 {
		t.Errorf("diagnoses = %d, want 0", n)
	}
}
