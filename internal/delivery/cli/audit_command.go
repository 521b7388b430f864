package cli

import (
	"go-clinic-records/pkg/response"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func (h *Handler) auditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect the audit trail",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List audit entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := h.uc.AuditLog.GetAllAuditLogs(cmd.Context())
			if err != nil {
				return h.fail(err, "Failed to get audit logs")
			}
			return h.respond.SuccessWithMeta("Audit logs retrieved successfully", resp.Logs, &response.Meta{Total: resp.Total})
		},
	}

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show one audit entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				_ = h.respond.Error("Invalid audit log ID", nil)
				return err
			}
			resp, err := h.uc.AuditLog.GetAuditLog(cmd.Context(), id)
			if err != nil {
				return h.fail(err, "Failed to get audit log")
			}
			return h.respond.Success("Audit log retrieved successfully", resp)
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}
