package cli

import (
	"go-clinic-records/internal/converter"
	"go-clinic-records/internal/delivery/dto"
	"go-clinic-records/pkg/response"

	"github.com/spf13/cobra"
)

func (h *Handler) specialtyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "specialty",
		Aliases: []string{"especialidad"},
		Short:   "Manage specialties",
	}

	var req dto.CreateSpecialtyRequest
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a specialty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			specialty, err := h.uc.Specialty.Add(cmd.Context(), &req)
			if err != nil {
				return h.fail(err, "Failed to add specialty")
			}
			return h.respond.Success("Specialty added successfully", converter.SpecialtyToResponse(specialty, 0))
		},
	}
	add.Flags().StringVar(&req.Name, "name", "", "specialty name")
	add.Flags().StringVar(&req.Description, "description", "", "specialty description")

	remove := &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a specialty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.uc.Specialty.Remove(cmd.Context(), args[0]); err != nil {
				return h.fail(err, "Failed to remove specialty")
			}
			return h.respond.Success("Specialty removed successfully", nil)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List specialties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := converter.SpecialtiesToResponses(h.uc.Specialty.List(), func(name string) int {
				return len(h.uc.Doctor.BySpecialty(name))
			})
			return h.respond.SuccessWithMeta("Specialties retrieved successfully", resp.Specialties, &response.Meta{Total: resp.Total})
		},
	}

	cmd.AddCommand(add, remove, list)
	return cmd
}
