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
	ErrDiagnosisNotFound = errors.New("diagnosis not found")
)

type DiagnosisUsecase interface {
	Register(ctx context.Context, req *dto.RegisterDiagnosisRequest) (entity.Diagnosis, error)
	Find(id string) (entity.Diagnosis, bool)
	List() []entity.Diagnosis
	ByDoctor(doctorID string) []entity.Diagnosis
	ByPatient(patientID string) []entity.Diagnosis
	CompletedView() []entity.DiagnosisView
}

type diagnosisUsecase struct {
	mu           sync.RWMutex
	log          *logrus.Logger
	repo         repository.DiagnosisRepository
	appointments AppointmentUsecase
	patients     PatientLookup
	doctors      DoctorLookup
	validator    *validator.CustomValidator
	auditService service.AuditService
	diagnoses    []entity.Diagnosis
}

// NewDiagnosisUsecase loads the diagnoses and drops any whose appointment is unknown.
func NewDiagnosisUsecase(
	ctx context.Context,
	log *logrus.Logger,
	repo repository.DiagnosisRepository,
	appointments AppointmentUsecase,
	patients PatientLookup,
	doctors DoctorLookup,
	validator *validator.CustomValidator,
	auditService service.AuditService,
) DiagnosisUsecase {
	u := &diagnosisUsecase{
		log:          log,
		repo:         repo,
		appointments: appointments,
		patients:     patients,
		doctors:      doctors,
		validator:    validator,
		auditService: auditService,
	}

	loaded := loadOrEmpty(ctx, log, "diagnoses", repo.FindAll)
	u.diagnoses = make([]entity.Diagnosis, 0, len(loaded))
	for _, d := range loaded {
		if _, ok := appointments.Find(d.AppointmentID); !ok {
			log.Warnf("Dropping diagnosis %s: appointment %s not found", d.ID, d.AppointmentID)
			continue
		}
		u.diagnoses = append(u.diagnoses, d)
	}

	return u
}

// Register records a diagnosis and completes its appointment.
//
// The appointment is completed and saved first. If the diagnosis cannot be
// saved afterwards the appointment is put back to pending; should that fail
// as well, the two files disagree and an error is logged.
func (u *diagnosisUsecase) Register(ctx context.Context, req *dto.RegisterDiagnosisRequest) (entity.Diagnosis, error) {
	req.Description = strings.TrimSpace(req.Description)
	if err := validate(u.validator, req); err != nil {
		return entity.Diagnosis{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	appointment, ok := u.appointments.Find(req.AppointmentID)
	if !ok {
		return entity.Diagnosis{}, fmt.Errorf("%w: %s", ErrAppointmentNotFound, req.AppointmentID)
	}
	if !appointment.IsPending() {
		return entity.Diagnosis{}, fmt.Errorf("appointment %s is %s: %w",
			appointment.ID, appointment.Status, entity.ErrInvalidStatusTransition)
	}

	id, err := nextID(entity.DiagnosisIDPrefix, u.diagnoses, func(d entity.Diagnosis) string { return d.ID })
	if err != nil {
		return entity.Diagnosis{}, err
	}

	if _, err := u.appointments.Complete(ctx, appointment.ID); err != nil {
		return entity.Diagnosis{}, err
	}

	diagnosis := entity.Diagnosis{
		ID:            id,
		Description:   req.Description,
		Treatment:     strings.TrimSpace(req.Treatment),
		Observations:  strings.TrimSpace(req.Observations),
		AppointmentID: appointment.ID,
	}

	next := append(slices.Clone(u.diagnoses), diagnosis)
	if err := u.repo.SaveAll(ctx, next); err != nil {
		u.log.Warnf("Failed to save diagnosis %s, reopening appointment %s: %+v", id, appointment.ID, err)
		if rerr := u.appointments.restore(ctx, appointment); rerr != nil {
			u.log.Errorf("Appointment %s is completed but diagnosis %s was not saved: %+v", appointment.ID, id, rerr)
		}
		return entity.Diagnosis{}, persistErr(err)
	}
	u.diagnoses = next

	u.log.Infof("Diagnosis %s registered for appointment %s", id, appointment.ID)
	_ = u.auditService.LogCreate(ctx, entity.AuditActionDiagnosisCreate, "diagnosis", id, diagnosis)

	return diagnosis, nil
}

func (u *diagnosisUsecase) Find(id string) (entity.Diagnosis, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	idx := slices.IndexFunc(u.diagnoses, func(d entity.Diagnosis) bool { return d.ID == id })
	if idx < 0 {
		return entity.Diagnosis{}, false
	}
	return u.diagnoses[idx], true
}

func (u *diagnosisUsecase) List() []entity.Diagnosis {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return slices.Clone(u.diagnoses)
}

func (u *diagnosisUsecase) ByDoctor(doctorID string) []entity.Diagnosis {
	return u.filterByAppointment(func(a entity.Appointment) bool { return a.DoctorID == doctorID })
}

func (u *diagnosisUsecase) ByPatient(patientID string) []entity.Diagnosis {
	return u.filterByAppointment(func(a entity.Appointment) bool { return a.PatientID == patientID })
}

// CompletedView joins every diagnosis with the names of its patient and doctor.
func (u *diagnosisUsecase) CompletedView() []entity.DiagnosisView {
	u.mu.RLock()
	defer u.mu.RUnlock()

	rows := make([]entity.DiagnosisView, 0, len(u.diagnoses))
	for _, d := range u.diagnoses {
		appointment, ok := u.appointments.Find(d.AppointmentID)
		if !ok {
			continue
		}

		row := entity.DiagnosisView{
			DiagnosisID:   d.ID,
			AppointmentID: d.AppointmentID,
			Description:   d.Description,
			Treatment:     d.Treatment,
			Observations:  d.Observations,
		}
		if p, ok := u.patients.Find(appointment.PatientID); ok {
			row.Patient = entity.FullName(p.Person)
		}
		if doc, ok := u.doctors.Find(appointment.DoctorID); ok {
			row.Doctor = entity.FullName(doc.Person)
		}
		rows = append(rows, row)
	}
	return rows
}

func (u *diagnosisUsecase) filterByAppointment(keep func(entity.Appointment) bool) []entity.Diagnosis {
	u.mu.RLock()
	defer u.mu.RUnlock()

	var out []entity.Diagnosis
	for _, d := range u.diagnoses {
		if a, ok := u.appointments.Find(d.AppointmentID); ok && keep(a) {
			out = append(out, d)
		}
	}
	return out
}
