package usecase

import (
	"context"
	"errors"
	"testing"

	"go-clinic-records/internal/delivery/dto"

	"github.com/spf13/afero"
)

func TestDoctorUsecase_DuplicateLeavesRegistryUnchanged(t *testing.T) {
	ctx := context.Background()
	r := openRegistries(t, afero.NewMemMapFs())
	seedClinic(t, r)

	_, err := r.doctors.Add(ctx, &dto.CreateDoctorRequest{
		FirstName: "EVA", LastName: " Ruiz", BirthDate: "01/01/1980", Phone: "5559990000", Specialty: "Cardiología",
	})
	if !errors.Is(err, ErrDuplicatePerson) {
		t.Fatalf("err = %v, want ErrDuplicatePerson", err)
	}
	if n := len(r.doctors.List()); n != 1 {
		t.Errorf("registry size = %d, want 1", n)
	}
}

func TestDoctorUsecase_Add(t *testing.T) {
	ctx := context.Background()
	r := openRegistries(t, afero.NewMemMapFs())
	seedClinic(t, r)

	tests := []struct {
		name    string
		req     dto.CreateDoctorRequest
		wantErr error
	}{
		{"valid", dto.CreateDoctorRequest{FirstName: "Raúl", LastName: "Peña", BirthDate: "15/03/1975", Phone: "5551112222", Specialty: "Cardiología"}, nil},
		{"unknown specialty", dto.CreateDoctorRequest{FirstName: "Raúl", LastName: "Soto", BirthDate: "15/03/1975", Phone: "5551112223", Specialty: "Oncología"}, ErrSpecialtyNotFound},
		{"too young", dto.CreateDoctorRequest{FirstName: "Raúl", LastName: "Soto", BirthDate: "01/01/2005", Phone: "5551112223", Specialty: "Cardiología"}, ErrValidation},
		{"too old", dto.CreateDoctorRequest{FirstName: "Raúl", LastName: "Soto", BirthDate: "01/01/1950", Phone: "5551112223", Specialty: "Cardiología"}, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := r.doctors.Add(ctx, &tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Add: %v", err)
			}
			if d.ID != "MED002" {
				t.Errorf("id = %s, want MED002", d.ID)
			}
		})
	}

	if got := r.doctors.BySpecialty("Cardiología"); len(got) != 2 {
		t.Errorf("BySpecialty = %d doctors, want 2", len(got))
	}
}
