package cli

import (
	"errors"
	"io"

	"go-clinic-records/internal/domain/entity"
	"go-clinic-records/internal/seeder"
	"go-clinic-records/internal/usecase"
	"go-clinic-records/pkg/idgen"
	"go-clinic-records/pkg/response"
	"go-clinic-records/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Usecases groups the registries the commands operate on.
type Usecases struct {
	Specialty   usecase.SpecialtyUsecase
	Patient     usecase.PatientUsecase
	Doctor      usecase.DoctorUsecase
	Appointment usecase.AppointmentUsecase
	Diagnosis   usecase.DiagnosisUsecase
	Statistics  usecase.StatisticsUsecase
	AuditLog    usecase.AuditLogUsecase
}

type Handler struct {
	log     *logrus.Logger
	uc      Usecases
	seeder  *seeder.Seeder
	stdout  io.Writer
	format  string
	respond *response.Writer
}

func NewHandler(log *logrus.Logger, uc Usecases, seeder *seeder.Seeder, stdout io.Writer) *Handler {
	return &Handler{
		log:    log,
		uc:     uc,
		seeder: seeder,
		stdout: stdout,
	}
}

// RootCommand builds the "clinic" command tree.
func (h *Handler) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "clinic",
		Short:         "Clinic records: patients, doctors, specialties, appointments and diagnoses",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			w, err := response.NewWriter(h.stdout, h.format)
			if err != nil {
				return err
			}
			h.respond = w
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&h.format, "output", "o", response.FormatText, "output format: json or text")

	root.AddCommand(
		h.specialtyCommand(),
		h.patientCommand(),
		h.doctorCommand(),
		h.appointmentCommand(),
		h.diagnosisCommand(),
		h.reportCommand(),
		h.auditCommand(),
		h.seedCommand(),
	)
	return root
}

// fail reports err to the user and returns it so the process exits non-zero.
func (h *Handler) fail(err error, fallback string) error {
	var verr *validator.ValidationError

	switch {
	case errors.As(err, &verr):
		_ = h.respond.ValidationError(verr.Fields)
	case errors.Is(err, usecase.ErrDuplicatePerson):
		_ = h.respond.Error("A person with the same name, surname, birth date and phone is already registered", nil)
	case errors.Is(err, usecase.ErrSpecialtyExists):
		_ = h.respond.Error("Specialty already exists", nil)
	case errors.Is(err, usecase.ErrSpecialtyNotFound):
		_ = h.respond.NotFound("Specialty not found")
	case errors.Is(err, usecase.ErrPatientNotFound):
		_ = h.respond.NotFound("Patient not found")
	case errors.Is(err, usecase.ErrDoctorNotFound):
		_ = h.respond.NotFound("Doctor not found")
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		_ = h.respond.NotFound("Appointment not found")
	case errors.Is(err, usecase.ErrDiagnosisNotFound):
		_ = h.respond.NotFound("Diagnosis not found")
	case errors.Is(err, usecase.ErrAuditLogNotFound):
		_ = h.respond.NotFound("Audit log not found")
	case errors.Is(err, entity.ErrInvalidStatusTransition):
		_ = h.respond.Error("The appointment's status does not allow this operation", err.Error())
	case errors.Is(err, usecase.ErrLatestAppointment):
		_ = h.respond.Error("The most recent appointment cannot be removed", nil)
	case errors.Is(err, usecase.ErrUnchanged):
		_ = h.respond.Error("The appointment already has that date and time", nil)
	case errors.Is(err, usecase.ErrPersistence):
		_ = h.respond.Error("Changes could not be saved; nothing was modified", err.Error())
	case errors.Is(err, idgen.ErrExhausted):
		_ = h.respond.Error("No identifiers left for this kind of record", nil)
	default:
		h.log.Errorf("%s: %+v", fallback, err)
		_ = h.respond.Error(fallback, err.Error())
	}

	return err
}

func (h *Handler) patientName(id string) string {
	if p, ok := h.uc.Patient.Find(id); ok {
		return entity.FullName(p.Person)
	}
	return ""
}

func (h *Handler) doctorName(id string) string {
	if d, ok := h.uc.Doctor.Find(id); ok {
		return entity.FullName(d.Person)
	}
	return ""
}

func (h *Handler) specialtyOf(name string) *entity.Specialty {
	if s, ok := h.uc.Specialty.Find(name); ok {
		return &s
	}
	return nil
}
