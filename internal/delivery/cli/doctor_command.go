package cli

import (
	"go-clinic-records/internal/converter"
	"go-clinic-records/internal/delivery/dto"
	"go-clinic-records/internal/usecase"
	"go-clinic-records/pkg/response"

	"github.com/spf13/cobra"
)

func (h *Handler) doctorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doctor",
		Aliases: []string{"medico"},
		Short:   "Manage doctors",
	}

	var req dto.CreateDoctorRequest
	add := &cobra.Command{
		Use:   "add",
		Short: "Register a doctor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doctor, err := h.uc.Doctor.Add(cmd.Context(), &req)
			if err != nil {
				return h.fail(err, "Failed to register doctor")
			}
			return h.respond.Success("Doctor registered successfully", converter.DoctorToResponse(doctor, h.specialtyOf(doctor.Specialty)))
		},
	}
	add.Flags().StringVar(&req.FirstName, "first-name", "", "first name")
	add.Flags().StringVar(&req.LastName, "last-name", "", "last name")
	add.Flags().StringVar(&req.BirthDate, "birth-date", "", "birth date (DD/MM/YYYY)")
	add.Flags().StringVar(&req.Phone, "phone", "", "phone number (10 digits, optional +)")
	add.Flags().StringVar(&req.Specialty, "specialty", "", "name of an existing specialty")

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show a doctor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doctor, ok := h.uc.Doctor.Find(args[0])
			if !ok {
				return h.fail(usecase.ErrDoctorNotFound, "Failed to get doctor")
			}
			return h.respond.Success("Doctor retrieved successfully", converter.DoctorToResponse(doctor, h.specialtyOf(doctor.Specialty)))
		},
	}

	var specialty string
	list := &cobra.Command{
		Use:   "list",
		Short: "List doctors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doctors := h.uc.Doctor.List()
			if specialty != "" {
				doctors = h.uc.Doctor.BySpecialty(specialty)
			}
			resp := converter.DoctorsToResponses(doctors, h.specialtyOf)
			return h.respond.SuccessWithMeta("Doctors retrieved successfully", resp.Doctors, &response.Meta{Total: resp.Total})
		},
	}
	list.Flags().StringVar(&specialty, "specialty", "", "only doctors of this specialty")

	cmd.AddCommand(add, get, list)
	return cmd
}
