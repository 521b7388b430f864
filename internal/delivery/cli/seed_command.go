package cli

import (
	"go-clinic-records/internal/seeder"

	"github.com/spf13/cobra"
)

func (h *Handler) seedCommand() *cobra.Command {
	var counts seeder.Counts

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the data directory with generated records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := h.seeder.Run(cmd.Context(), counts)
			if err != nil {
				return h.fail(err, "Failed to seed data")
			}
			return h.respond.Success("Seed complete", created)
		},
	}
	cmd.Flags().IntVar(&counts.Specialties, "specialties", 5, "number of specialties")
	cmd.Flags().IntVar(&counts.Doctors, "doctors", 10, "number of doctors")
	cmd.Flags().IntVar(&counts.Patients, "patients", 30, "number of patients")
	cmd.Flags().IntVar(&counts.Appointments, "appointments", 50, "number of appointments")

	return cmd
}
