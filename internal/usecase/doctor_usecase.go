package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"go-clinic-records/internal/delivery/dto"
	"go-clinic-records/internal/domain/entity"
	"go-clinic-records/internal/domain/repository"
	"go-clinic-records/internal/service"
	"go-clinic-records/pkg/validator"

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
)

type DoctorUsecase interface {
	Add(ctx context.Context, req *dto.CreateDoctorRequest) (entity.Doctor, error)
	Find(id string) (entity.Doctor, bool)
	List() []entity.Doctor
	BySpecialty(name string) []entity.Doctor
}

// SpecialtyLookup resolves a specialty by name.
type SpecialtyLookup interface {
	Find(name string) (entity.Specialty, bool)
}

type doctorUsecase struct {
	mu           sync.RWMutex
	log          *logrus.Logger
	repo         repository.DoctorRepository
	specialties  SpecialtyLookup
	validator    *validator.CustomValidator
	auditService service.AuditService
	doctors      []entity.Doctor
}

func NewDoctorUsecase(
	ctx context.Context,
	log *logrus.Logger,
	repo repository.DoctorRepository,
	specialties SpecialtyLookup,
	validator *validator.CustomValidator,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		log:          log,
		repo:         repo,
		specialties:  specialties,
		validator:    validator,
		auditService: auditService,
		doctors:      loadOrEmpty(ctx, log, "doctors", repo.FindAll),
	}
}

func (u *doctorUsecase) Add(ctx context.Context, req *dto.CreateDoctorRequest) (entity.Doctor, error) {
	req.Specialty = strings.TrimSpace(req.Specialty)
	if err := validate(u.validator, req); err != nil {
		return entity.Doctor{}, err
	}
	if _, ok := u.specialties.Find(req.Specialty); !ok {
		return entity.Doctor{}, fmt.Errorf("%w: %s", ErrSpecialtyNotFound, req.Specialty)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	person := newPerson(req.FirstName, req.LastName, req.BirthDate, req.Phone)
	existing := storedPeople(ctx, u.log, u.repo.FindAll, u.doctors, func(d entity.Doctor) entity.Person { return d.Person })
	if entity.IsDuplicatePerson(existing, person) {
		u.log.Warnf("Duplicate doctor %s rejected", entity.FullName(person))
		return entity.Doctor{}, ErrDuplicatePerson
	}

	id, err := nextID(entity.DoctorIDPrefix, u.doctors, func(d entity.Doctor) string { return d.ID })
	if err != nil {
		return entity.Doctor{}, err
	}

	doctor := entity.Doctor{ID: id, Person: person, Specialty: req.Specialty}
	next := append(slices.Clone(u.doctors), doctor)
	if err := u.repo.SaveAll(ctx, next); err != nil {
		u.log.Warnf("Failed to save doctor %s: %+v", id, err)
		return entity.Doctor{}, persistErr(err)
	}
	u.doctors = next

	u.log.Infof("Doctor %s registered in %s", id, doctor.Specialty)
	_ = u.auditService.LogCreate(ctx, entity.AuditActionDoctorCreate, "doctor", id, doctor)

	return doctor, nil
}

func (u *doctorUsecase) Find(id string) (entity.Doctor, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	idx := slices.IndexFunc(u.doctors, func(d entity.Doctor) bool { return d.ID == id })
	if idx < 0 {
		return entity.Doctor{}, false
	}
	return u.doctors[idx], true
}

func (u *doctorUsecase) List() []entity.Doctor {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return slices.Clone(u.doctors)
}

func (u *doctorUsecase) BySpecialty(name string) []entity.Doctor {
	u.mu.RLock()
	defer u.mu.RUnlock()

	var doctors []entity.Doctor
	for _, d := range u.doctors {
		if d.Specialty == name {
			doctors = append(doctors, d)
		}
	}
	return doctors
}
