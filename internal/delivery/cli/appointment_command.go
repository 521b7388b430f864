package cli

import (
	"go-clinic-records/internal/converter"
	"go-clinic-records/internal/delivery/dto"
	"go-clinic-records/internal/domain/entity"
	"go-clinic-records/internal/usecase"
	"go-clinic-records/pkg/response"

	"github.com/spf13/cobra"
)

func (h *Handler) appointmentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appointment",
		Aliases: []string{"cita"},
		Short:   "Schedule and manage appointments",
	}

	var req dto.ScheduleAppointmentRequest
	schedule := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule an appointment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appointment, err := h.uc.Appointment.Schedule(cmd.Context(), &req)
			if err != nil {
				return h.fail(err, "Failed to schedule appointment")
			}
			return h.respond.Success("Appointment scheduled successfully", h.appointmentResponse(appointment))
		},
	}
	schedule.Flags().StringVar(&req.Date, "date", "", "date (DD/MM/YYYY)")
	schedule.Flags().StringVar(&req.Time, "time", "", "time (HH:MM)")
	schedule.Flags().StringVar(&req.PatientID, "patient", "", "patient id")
	schedule.Flags().StringVar(&req.DoctorID, "doctor", "", "doctor id")

	cancel := &cobra.Command{
		Use:   "cancel ID",
		Short: "Cancel a pending appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appointment, err := h.uc.Appointment.Cancel(cmd.Context(), args[0])
			if err != nil {
				return h.fail(err, "Failed to cancel appointment")
			}
			return h.respond.Success("Appointment cancelled successfully", h.appointmentResponse(appointment))
		},
	}

	var move dto.RescheduleAppointmentRequest
	reschedule := &cobra.Command{
		Use:   "reschedule ID",
		Short: "Move a pending appointment to a new date and time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appointment, err := h.uc.Appointment.Reschedule(cmd.Context(), args[0], &move)
			if err != nil {
				return h.fail(err, "Failed to reschedule appointment")
			}
			return h.respond.Success("Appointment rescheduled successfully", h.appointmentResponse(appointment))
		},
	}
	reschedule.Flags().StringVar(&move.Date, "date", "", "new date (DD/MM/YYYY)")
	reschedule.Flags().StringVar(&move.Time, "time", "", "new time (HH:MM)")

	remove := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a cancelled appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.uc.Appointment.Remove(cmd.Context(), args[0]); err != nil {
				return h.fail(err, "Failed to remove appointment")
			}
			return h.respond.Success("Appointment removed successfully", nil)
		},
	}

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appointment, ok := h.uc.Appointment.Find(args[0])
			if !ok {
				return h.fail(usecase.ErrAppointmentNotFound, "Failed to get appointment")
			}
			return h.respond.Success("Appointment retrieved successfully", h.appointmentResponse(appointment))
		},
	}

	var patientID, doctorID string
	var pendingOnly bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List appointments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appointments := h.listAppointments(patientID, doctorID, pendingOnly)
			resp := converter.AppointmentsToResponses(appointments, h.patientName, h.doctorName)
			return h.respond.SuccessWithMeta("Appointments retrieved successfully", resp.Appointments, &response.Meta{Total: resp.Total})
		},
	}
	list.Flags().StringVar(&patientID, "patient", "", "only appointments of this patient")
	list.Flags().StringVar(&doctorID, "doctor", "", "only appointments with this doctor")
	list.Flags().BoolVar(&pendingOnly, "pending", false, "only pending appointments")

	cmd.AddCommand(schedule, cancel, reschedule, remove, get, list)
	return cmd
}

func (h *Handler) listAppointments(patientID, doctorID string, pendingOnly bool) []entity.Appointment {
	var appointments []entity.Appointment
	switch {
	case doctorID != "" && pendingOnly:
		appointments = h.uc.Appointment.PendingByDoctor(doctorID)
	case doctorID != "":
		appointments = h.uc.Appointment.ByDoctor(doctorID)
	case patientID != "":
		appointments = h.uc.Appointment.ByPatient(patientID)
	default:
		appointments = h.uc.Appointment.List()
	}

	filtered := appointments[:0:0]
	for _, a := range appointments {
		if patientID != "" && a.PatientID != patientID {
			continue
		}
		if pendingOnly && !a.IsPending() {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

func (h *Handler) appointmentResponse(a entity.Appointment) dto.AppointmentResponse {
	return converter.AppointmentToResponse(a, h.patientName, h.doctorName)
}
