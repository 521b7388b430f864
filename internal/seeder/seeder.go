package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-clinic-records/internal/delivery/dto"
	"go-clinic-records/internal/usecase"
	"go-clinic-records/pkg/validator"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
)

var specialties = []dto.CreateSpecialtyRequest{
	{Name: "Medicina General", Description: "Atención primaria y seguimiento general"},
	{Name: "Cardiología", Description: "Enfermedades del corazón y del sistema circulatorio"},
	{Name: "Pediatría", Description: "Atención médica de niños y adolescentes"},
	{Name: "Dermatología", Description: "Enfermedades de la piel"},
	{Name: "Neurología", Description: "Trastornos del sistema nervioso"},
	{Name: "Traumatología", Description: "Lesiones del aparato locomotor"},
	{Name: "Ginecología", Description: "Salud del aparato reproductor femenino"},
	{Name: "Oftalmología", Description: "Enfermedades de los ojos"},
	{Name: "Psiquiatría", Description: "Salud mental"},
	{Name: "Endocrinología", Description: "Trastornos hormonales y metabólicos"},
}

var slotMinutes = []string{"00", "15", "30", "45"}

// maxAttempts bounds retries when the faker produces a name the rules reject.
const maxAttempts = 20

// Counts is how many records of each kind to create.
type Counts struct {
	Specialties  int `json:"especialidades"`
	Doctors      int `json:"medicos"`
	Patients     int `json:"pacientes"`
	Appointments int `json:"citas"`
}

// Seeder fills the registries with generated records. Everything goes through
// the registries, so generated data obeys the same validation as user input.
type Seeder struct {
	log          *logrus.Logger
	faker        *gofakeit.Faker
	now          validator.Clock
	specialties  usecase.SpecialtyUsecase
	doctors      usecase.DoctorUsecase
	patients     usecase.PatientUsecase
	appointments usecase.AppointmentUsecase
}

func New(
	log *logrus.Logger,
	faker *gofakeit.Faker,
	now validator.Clock,
	specialties usecase.SpecialtyUsecase,
	doctors usecase.DoctorUsecase,
	patients usecase.PatientUsecase,
	appointments usecase.AppointmentUsecase,
) *Seeder {
	if now == nil {
		now = time.Now
	}
	return &Seeder{
		log:          log,
		faker:        faker,
		now:          now,
		specialties:  specialties,
		doctors:      doctors,
		patients:     patients,
		appointments: appointments,
	}
}

// Run creates up to the requested number of records and reports how many were
// actually created. Duplicates produced by the faker are skipped.
func (s *Seeder) Run(ctx context.Context, want Counts) (Counts, error) {
	var got Counts
	var err error

	if got.Specialties, err = s.seedSpecialties(ctx, want.Specialties); err != nil {
		return got, fmt.Errorf("seed specialties: %w", err)
	}
	if got.Doctors, err = s.seedDoctors(ctx, want.Doctors); err != nil {
		return got, fmt.Errorf("seed doctors: %w", err)
	}
	if got.Patients, err = s.seedPatients(ctx, want.Patients); err != nil {
		return got, fmt.Errorf("seed patients: %w", err)
	}
	if got.Appointments, err = s.seedAppointments(ctx, want.Appointments); err != nil {
		return got, fmt.Errorf("seed appointments: %w", err)
	}

	s.log.Infof("Seed complete: %d specialties, %d doctors, %d patients, %d appointments",
		got.Specialties, got.Doctors, got.Patients, got.Appointments)
	return got, nil
}

func (s *Seeder) seedSpecialties(ctx context.Context, count int) (int, error) {
	if count > len(specialties) {
		count = len(specialties)
	}

	created := 0
	for i := 0; i < count; i++ {
		req := specialties[i]
		if _, err := s.specialties.Add(ctx, &req); err != nil {
			if errors.Is(err, usecase.ErrSpecialtyExists) {
				continue
			}
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *Seeder) seedDoctors(ctx context.Context, count int) (int, error) {
	available := s.specialties.List()
	if count > 0 && len(available) == 0 {
		return 0, usecase.ErrSpecialtyNotFound
	}

	today := s.today()
	created := 0
	for i := 0; i < count; i++ {
		first, last := s.name()
		req := dto.CreateDoctorRequest{
			FirstName: first,
			LastName:  last,
			BirthDate: s.date(today.AddDate(-69, 0, 0), today.AddDate(-26, 0, 0)),
			Phone:     s.faker.Numerify("##########"),
			Specialty: available[s.faker.Number(0, len(available)-1)].Name,
		}
		if _, err := s.doctors.Add(ctx, &req); err != nil {
			if errors.Is(err, usecase.ErrDuplicatePerson) {
				continue
			}
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *Seeder) seedPatients(ctx context.Context, count int) (int, error) {
	today := s.today()
	created := 0
	for i := 0; i < count; i++ {
		first, last := s.name()
		req := dto.CreatePatientRequest{
			FirstName: first,
			LastName:  last,
			BirthDate: s.date(today.AddDate(-95, 0, 0), today.AddDate(0, 0, -1)),
			Phone:     s.faker.Numerify("##########"),
		}
		if _, err := s.patients.Add(ctx, &req); err != nil {
			if errors.Is(err, usecase.ErrDuplicatePerson) {
				continue
			}
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *Seeder) seedAppointments(ctx context.Context, count int) (int, error) {
	patients := s.patients.List()
	doctors := s.doctors.List()
	if count > 0 && (len(patients) == 0 || len(doctors) == 0) {
		return 0, errors.New("appointments need at least one patient and one doctor")
	}

	today := s.today()
	created := 0
	for i := 0; i < count; i++ {
		req := dto.ScheduleAppointmentRequest{
			Date:      s.date(today.AddDate(0, 0, 1), today.AddDate(0, 0, 300)),
			Time:      fmt.Sprintf("%02d:%s", s.faker.Number(8, 17), s.faker.RandomString(slotMinutes)),
			PatientID: patients[s.faker.Number(0, len(patients)-1)].ID,
			DoctorID:  doctors[s.faker.Number(0, len(doctors)-1)].ID,
		}
		if _, err := s.appointments.Schedule(ctx, &req); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// name draws first and last names until both pass the name rule.
func (s *Seeder) name() (string, string) {
	first, last := "Ana", "García"
	for i := 0; i < maxAttempts; i++ {
		f, l := s.faker.FirstName(), s.faker.LastName()
		if validator.ValidName(f) && validator.ValidName(l) {
			return f, l
		}
	}
	return first, last
}

func (s *Seeder) date(from, to time.Time) string {
	return s.faker.DateRange(from, to).Format(validator.DateLayout)
}

func (s *Seeder) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
