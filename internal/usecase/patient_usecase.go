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
	ErrPatientNotFound = errors.New("patient not found")
)

type PatientUsecase interface {
	Add(ctx context.Context, req *dto.CreatePatientRequest) (entity.Patient, error)
	Find(id string) (entity.Patient, bool)
	List() []entity.Patient
	AddConsultation(ctx context.Context, id string, req *dto.AddConsultationRequest) (entity.Patient, error)
	History(id string) ([]entity.Consultation, error)
}

type patientUsecase struct {
	mu           sync.RWMutex
	log          *logrus.Logger
	repo         repository.PatientRepository
	validator    *validator.CustomValidator
	auditService service.AuditService
	patients     []entity.Patient
}

func NewPatientUsecase(
	ctx context.Context,
	log *logrus.Logger,
	repo repository.PatientRepository,
	validator *validator.CustomValidator,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		log:          log,
		repo:         repo,
		validator:    validator,
		auditService: auditService,
		patients:     loadOrEmpty(ctx, log, "patients", repo.FindAll),
	}
}

func (u *patientUsecase) Add(ctx context.Context, req *dto.CreatePatientRequest) (entity.Patient, error) {
	if err := validate(u.validator, req); err != nil {
		return entity.Patient{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	person := newPerson(req.FirstName, req.LastName, req.BirthDate, req.Phone)
	existing := storedPeople(ctx, u.log, u.repo.FindAll, u.patients, func(p entity.Patient) entity.Person { return p.Person })
	if entity.IsDuplicatePerson(existing, person) {
		u.log.Warnf("Duplicate patient %s rejected", entity.FullName(person))
		return entity.Patient{}, ErrDuplicatePerson
	}

	id, err := nextID(entity.PatientIDPrefix, u.patients, func(p entity.Patient) string { return p.ID })
	if err != nil {
		return entity.Patient{}, err
	}

	patient := entity.Patient{ID: id, Person: person, History: []entity.Consultation{}}
	next := append(slices.Clone(u.patients), patient)
	if err := u.repo.SaveAll(ctx, next); err != nil {
		u.log.Warnf("Failed to save patient %s: %+v", id, err)
		return entity.Patient{}, persistErr(err)
	}
	u.patients = next

	u.log.Infof("Patient %s registered", id)
	_ = u.auditService.LogCreate(ctx, entity.AuditActionPatientCreate, "patient", id, patient)

	return clonePatient(patient), nil
}

func (u *patientUsecase) Find(id string) (entity.Patient, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if idx := u.indexOf(id); idx >= 0 {
		return clonePatient(u.patients[idx]), true
	}
	return entity.Patient{}, false
}

func (u *patientUsecase) List() []entity.Patient {
	u.mu.RLock()
	defer u.mu.RUnlock()

	patients := make([]entity.Patient, len(u.patients))
	for i, p := range u.patients {
		patients[i] = clonePatient(p)
	}
	return patients
}

// AddConsultation appends an entry to the patient's history. Entries are never edited.
func (u *patientUsecase) AddConsultation(ctx context.Context, id string, req *dto.AddConsultationRequest) (entity.Patient, error) {
	req.Reason = strings.TrimSpace(req.Reason)
	if err := validate(u.validator, req); err != nil {
		return entity.Patient{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexOf(id)
	if idx < 0 {
		return entity.Patient{}, fmt.Errorf("%w: %s", ErrPatientNotFound, id)
	}

	entry := entity.Consultation{Date: req.Date, Reason: req.Reason, Notes: strings.TrimSpace(req.Notes)}
	next := slices.Clone(u.patients)
	updated := clonePatient(next[idx])
	updated.History = append(updated.History, entry)
	next[idx] = updated

	if err := u.repo.SaveAll(ctx, next); err != nil {
		u.log.Warnf("Failed to save consultation for patient %s: %+v", id, err)
		return entity.Patient{}, persistErr(err)
	}
	u.patients = next

	u.log.Infof("Consultation added to patient %s history", id)
	_ = u.auditService.LogCreate(ctx, entity.AuditActionPatientConsult, "patient", id, entry)

	return clonePatient(updated), nil
}

func (u *patientUsecase) History(id string) ([]entity.Consultation, error) {
	p, ok := u.Find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPatientNotFound, id)
	}
	return p.History, nil
}

func (u *patientUsecase) indexOf(id string) int {
	return slices.IndexFunc(u.patients, func(p entity.Patient) bool { return p.ID == id })
}

func clonePatient(p entity.Patient) entity.Patient {
	history := make([]entity.Consultation, len(p.History))
	copy(history, p.History)
	p.History = history
	return p
}
