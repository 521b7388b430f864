package cli

import (
	"go-clinic-records/internal/converter"
	"go-clinic-records/internal/delivery/dto"
	"go-clinic-records/pkg/response"

	"github.com/spf13/cobra"
)

func (h *Handler) diagnosisCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "diagnosis",
		Aliases: []string{"diagnostico"},
		Short:   "Register and review diagnoses",
	}

	var req dto.RegisterDiagnosisRequest
	register := &cobra.Command{
		Use:   "register",
		Short: "Register a diagnosis and complete its appointment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			diagnosis, err := h.uc.Diagnosis.Register(cmd.Context(), &req)
			if err != nil {
				return h.fail(err, "Failed to register diagnosis")
			}
			return h.respond.Success("Diagnosis registered successfully", converter.DiagnosisToResponse(diagnosis))
		},
	}
	register.Flags().StringVar(&req.AppointmentID, "appointment", "", "id of a pending appointment")
	register.Flags().StringVar(&req.Description, "description", "", "diagnosis")
	register.Flags().StringVar(&req.Treatment, "treatment", "", "prescribed treatment")
	register.Flags().StringVar(&req.Observations, "observations", "", "additional observations")

	var patientID, doctorID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List diagnoses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			diagnoses := h.uc.Diagnosis.List()
			switch {
			case patientID != "":
				diagnoses = h.uc.Diagnosis.ByPatient(patientID)
			case doctorID != "":
				diagnoses = h.uc.Diagnosis.ByDoctor(doctorID)
			}
			resp := converter.DiagnosesToResponses(diagnoses)
			return h.respond.SuccessWithMeta("Diagnoses retrieved successfully", resp.Diagnoses, &response.Meta{Total: resp.Total})
		},
	}
	list.Flags().StringVar(&patientID, "patient", "", "only diagnoses of this patient")
	list.Flags().StringVar(&doctorID, "doctor", "", "only diagnoses made by this doctor")

	view := &cobra.Command{
		Use:   "view",
		Short: "Completed appointments with patient and doctor names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := converter.DiagnosisViewsToResponses(h.uc.Diagnosis.CompletedView())
			return h.respond.SuccessWithMeta("Completed diagnoses retrieved successfully", resp.Rows, &response.Meta{Total: resp.Total})
		},
	}

	cmd.AddCommand(register, list, view)
	return cmd
}
