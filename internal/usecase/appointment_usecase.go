package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go-clinic-records/internal/delivery/dto"
	"go-clinic-records/internal/domain/entity"
	"go-clinic-records/internal/domain/repository"
	"go-clinic-records/internal/service"
	"go-clinic-records/pkg/idgen"
	"go-clinic-records/pkg/validator"

	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrLatestAppointment   = errors.New("the most recently issued appointment cannot be removed")
)

type AppointmentUsecase interface {
	Schedule(ctx context.Context, req *dto.ScheduleAppointmentRequest) (entity.Appointment, error)
	Cancel(ctx context.Context, id string) (entity.Appointment, error)
	Reschedule(ctx context.Context, id string, req *dto.RescheduleAppointmentRequest) (entity.Appointment, error)
	Complete(ctx context.Context, id string) (entity.Appointment, error)
	Remove(ctx context.Context, id string) error
	Find(id string) (entity.Appointment, bool)
	List() []entity.Appointment
	ByPatient(patientID string) []entity.Appointment
	ByDoctor(doctorID string) []entity.Appointment
	PendingByDoctor(doctorID string) []entity.Appointment

	// restore puts back a previous version of an appointment. It is only used
	// to undo a completion whose diagnosis could not be saved.
	restore(ctx context.Context, previous entity.Appointment) error
}

// PatientLookup resolves a patient by id.
type PatientLookup interface {
	Find(id string) (entity.Patient, bool)
}

// DoctorLookup resolves a doctor by id.
type DoctorLookup interface {
	Find(id string) (entity.Doctor, bool)
}

type appointmentUsecase struct {
	mu           sync.RWMutex
	log          *logrus.Logger
	repo         repository.AppointmentRepository
	patients     PatientLookup
	doctors      DoctorLookup
	validator    *validator.CustomValidator
	auditService service.AuditService
	appointments []entity.Appointment
}

// NewAppointmentUsecase loads the appointments and drops any whose patient or
// doctor cannot be resolved. The patient and doctor registries must already be loaded.
func NewAppointmentUsecase(
	ctx context.Context,
	log *logrus.Logger,
	repo repository.AppointmentRepository,
	patients PatientLookup,
	doctors DoctorLookup,
	validator *validator.CustomValidator,
	auditService service.AuditService,
) AppointmentUsecase {
	u := &appointmentUsecase{
		log:          log,
		repo:         repo,
		patients:     patients,
		doctors:      doctors,
		validator:    validator,
		auditService: auditService,
	}

	loaded := loadOrEmpty(ctx, log, "appointments", repo.FindAll)
	u.appointments = make([]entity.Appointment, 0, len(loaded))
	for _, a := range loaded {
		if !a.Status.IsValid() {
			log.Warnf("Dropping appointment %s with unknown status %q", a.ID, a.Status)
			continue
		}
		if _, ok := patients.Find(a.PatientID); !ok {
			log.Warnf("Dropping appointment %s: patient %s not found", a.ID, a.PatientID)
			continue
		}
		if _, ok := doctors.Find(a.DoctorID); !ok {
			log.Warnf("Dropping appointment %s: doctor %s not found", a.ID, a.DoctorID)
			continue
		}
		u.appointments = append(u.appointments, a)
	}

	return u
}

func (u *appointmentUsecase) Schedule(ctx context.Context, req *dto.ScheduleAppointmentRequest) (entity.Appointment, error) {
	if err := validate(u.validator, req); err != nil {
		return entity.Appointment{}, err
	}
	if _, ok := u.patients.Find(req.PatientID); !ok {
		return entity.Appointment{}, fmt.Errorf("%w: %s", ErrPatientNotFound, req.PatientID)
	}
	if _, ok := u.doctors.Find(req.DoctorID); !ok {
		return entity.Appointment{}, fmt.Errorf("%w: %s", ErrDoctorNotFound, req.DoctorID)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	id, err := nextID(entity.AppointmentIDPrefix, u.appointments, func(a entity.Appointment) string { return a.ID })
	if err != nil {
		return entity.Appointment{}, err
	}

	appointment := entity.Appointment{
		ID:        id,
		Date:      req.Date,
		Time:      req.Time,
		Status:    entity.AppointmentStatusPending,
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
	}

	next := append(slices.Clone(u.appointments), appointment)
	if err := u.repo.SaveAll(ctx, next); err != nil {
		u.log.Warnf("Failed to save appointment %s: %+v", id, err)
		return entity.Appointment{}, persistErr(err)
	}
	u.appointments = next

	u.log.Infof("Appointment %s scheduled for patient %s with doctor %s on %s %s",
		id, appointment.PatientID, appointment.DoctorID, appointment.Date, appointment.Time)
	_ = u.auditService.LogCreate(ctx, entity.AuditActionAppointmentCreate, "appointment", id, appointment)

	return appointment, nil
}

func (u *appointmentUsecase) Cancel(ctx context.Context, id string) (entity.Appointment, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.transition(ctx, id, entity.AuditActionAppointmentCancel, (*entity.Appointment).Cancel)
}

// Reschedule moves a pending appointment to a new date and time.
func (u *appointmentUsecase) Reschedule(ctx context.Context, id string, req *dto.RescheduleAppointmentRequest) (entity.Appointment, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexOf(id)
	if idx < 0 {
		return entity.Appointment{}, fmt.Errorf("%w: %s", ErrAppointmentNotFound, id)
	}
	current := u.appointments[idx]
	if current.Date == req.Date && current.Time == req.Time {
		return entity.Appointment{}, fmt.Errorf("%w: appointment %s is already on %s %s", ErrUnchanged, id, req.Date, req.Time)
	}
	if err := validate(u.validator, req); err != nil {
		return entity.Appointment{}, err
	}

	return u.transition(ctx, id, entity.AuditActionAppointmentMove, func(a *entity.Appointment) error {
		return a.Reschedule(req.Date, req.Time)
	})
}

func (u *appointmentUsecase) Complete(ctx context.Context, id string) (entity.Appointment, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.transition(ctx, id, entity.AuditActionAppointmentComplete, (*entity.Appointment).Complete)
}

// Remove deletes a cancelled appointment. The appointment holding the highest
// id is kept so that its id is never issued again.
func (u *appointmentUsecase) Remove(ctx context.Context, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrAppointmentNotFound, id)
	}

	removed := u.appointments[idx]
	if !removed.IsCancelled() {
		return fmt.Errorf("only cancelled appointments can be removed, %s is %s: %w",
			id, removed.Status, entity.ErrInvalidStatusTransition)
	}
	if u.isLatest(id) {
		return fmt.Errorf("%w: %s", ErrLatestAppointment, id)
	}

	next := slices.Delete(slices.Clone(u.appointments), idx, idx+1)
	if err := u.repo.SaveAll(ctx, next); err != nil {
		u.log.Warnf("Failed to save appointments after removing %s: %+v", id, err)
		return persistErr(err)
	}
	u.appointments = next

	u.log.Infof("Appointment %s removed", id)
	_ = u.auditService.LogDelete(ctx, entity.AuditActionAppointmentDelete, "appointment", id, removed)

	return nil
}

func (u *appointmentUsecase) Find(id string) (entity.Appointment, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if idx := u.indexOf(id); idx >= 0 {
		return u.appointments[idx], true
	}
	return entity.Appointment{}, false
}

func (u *appointmentUsecase) List() []entity.Appointment {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return slices.Clone(u.appointments)
}

func (u *appointmentUsecase) ByPatient(patientID string) []entity.Appointment {
	return u.filter(func(a entity.Appointment) bool { return a.PatientID == patientID })
}

func (u *appointmentUsecase) ByDoctor(doctorID string) []entity.Appointment {
	return u.filter(func(a entity.Appointment) bool { return a.DoctorID == doctorID })
}

func (u *appointmentUsecase) PendingByDoctor(doctorID string) []entity.Appointment {
	return u.filter(func(a entity.Appointment) bool { return a.DoctorID == doctorID && a.IsPending() })
}

func (u *appointmentUsecase) restore(ctx context.Context, previous entity.Appointment) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexOf(previous.ID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrAppointmentNotFound, previous.ID)
	}

	next := slices.Clone(u.appointments)
	next[idx] = previous
	if err := u.repo.SaveAll(ctx, next); err != nil {
		return persistErr(err)
	}
	u.appointments = next

	u.log.Infof("Appointment %s restored to %s", previous.ID, previous.Status)
	return nil
}

// transition applies change to a copy of the appointment, persists the
// resulting collection and only then replaces the in-memory state.
// Callers hold u.mu.
func (u *appointmentUsecase) transition(ctx context.Context, id, action string, change func(*entity.Appointment) error) (entity.Appointment, error) {
	idx := u.indexOf(id)
	if idx < 0 {
		return entity.Appointment{}, fmt.Errorf("%w: %s", ErrAppointmentNotFound, id)
	}

	before := u.appointments[idx]
	after := before
	if err := change(&after); err != nil {
		u.log.Warnf("Rejected %s on appointment %s in status %s", action, id, before.Status)
		return entity.Appointment{}, fmt.Errorf("appointment %s is %s: %w", id, before.Status, err)
	}

	next := slices.Clone(u.appointments)
	next[idx] = after
	if err := u.repo.SaveAll(ctx, next); err != nil {
		u.log.Warnf("Failed to save appointment %s after %s: %+v", id, action, err)
		return entity.Appointment{}, persistErr(err)
	}
	u.appointments = next

	u.log.Infof("Appointment %s: %s", id, action)
	_ = u.auditService.LogUpdate(ctx, action, "appointment", id, before, after)

	return after, nil
}

func (u *appointmentUsecase) filter(keep func(entity.Appointment) bool) []entity.Appointment {
	u.mu.RLock()
	defer u.mu.RUnlock()

	var out []entity.Appointment
	for _, a := range u.appointments {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func (u *appointmentUsecase) isLatest(id string) bool {
	ids := make([]string, len(u.appointments))
	for i, a := range u.appointments {
		ids[i] = a.ID
	}
	return idgen.Max(entity.AppointmentIDPrefix, ids) == id
}

func (u *appointmentUsecase) indexOf(id string) int {
	return slices.IndexFunc(u.appointments, func(a entity.Appointment) bool { return a.ID == id })
}
