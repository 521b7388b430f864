package cli

import (
	"go-clinic-records/internal/converter"

	"github.com/spf13/cobra"
)

func (h *Handler) reportCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "report",
		Aliases: []string{"estadisticas"},
		Short:   "Appointment statistics",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.respond.Success("Statistics computed successfully", converter.ReportToResponse(h.uc.Statistics.Summary()))
		},
	}
}
