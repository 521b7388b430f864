package cli

import (
	"go-clinic-records/internal/converter"
	"go-clinic-records/internal/delivery/dto"
	"go-clinic-records/internal/usecase"
	"go-clinic-records/pkg/response"

	"github.com/spf13/cobra"
)

func (h *Handler) patientCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "patient",
		Aliases: []string{"paciente"},
		Short:   "Manage patients",
	}

	var req dto.CreatePatientRequest
	add := &cobra.Command{
		Use:   "add",
		Short: "Register a patient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			patient, err := h.uc.Patient.Add(cmd.Context(), &req)
			if err != nil {
				return h.fail(err, "Failed to register patient")
			}
			return h.respond.Success("Patient registered successfully", converter.PatientToResponse(patient, false))
		},
	}
	add.Flags().StringVar(&req.FirstName, "first-name", "", "first name")
	add.Flags().StringVar(&req.LastName, "last-name", "", "last name")
	add.Flags().StringVar(&req.BirthDate, "birth-date", "", "birth date (DD/MM/YYYY)")
	add.Flags().StringVar(&req.Phone, "phone", "", "phone number (10 digits, optional +)")

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show a patient and their history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patient, ok := h.uc.Patient.Find(args[0])
			if !ok {
				return h.fail(usecase.ErrPatientNotFound, "Failed to get patient")
			}
			return h.respond.Success("Patient retrieved successfully", converter.PatientToResponse(patient, true))
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List patients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := converter.PatientsToResponses(h.uc.Patient.List())
			return h.respond.SuccessWithMeta("Patients retrieved successfully", resp.Patients, &response.Meta{Total: resp.Total})
		},
	}

	history := &cobra.Command{
		Use:   "history ID",
		Short: "Show a patient's consultation history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := h.uc.Patient.History(args[0])
			if err != nil {
				return h.fail(err, "Failed to get history")
			}
			return h.respond.SuccessWithMeta("History retrieved successfully",
				converter.ConsultationsToResponses(entries), &response.Meta{Total: len(entries)})
		},
	}

	var consultation dto.AddConsultationRequest
	consult := &cobra.Command{
		Use:   "consult ID",
		Short: "Append a consultation to a patient's history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patient, err := h.uc.Patient.AddConsultation(cmd.Context(), args[0], &consultation)
			if err != nil {
				return h.fail(err, "Failed to add consultation")
			}
			return h.respond.Success("Consultation added successfully", converter.PatientToResponse(patient, true))
		},
	}
	consult.Flags().StringVar(&consultation.Date, "date", "", "consultation date (DD/MM/YYYY)")
	consult.Flags().StringVar(&consultation.Reason, "reason", "", "reason for the consultation")
	consult.Flags().StringVar(&consultation.Notes, "notes", "", "free-form notes")

	cmd.AddCommand(add, get, list, history, consult)
	return cmd
}
