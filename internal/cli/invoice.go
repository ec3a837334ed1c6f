package cli

import (
	"context"

	"charty-dashboard-backend/internal/services/actions"
	"charty-dashboard-backend/internal/validation"

	"github.com/spf13/cobra"
)

var invoiceFlags = map[string]string{
	"customer-id": validation.FieldCustomerID,
	"amount":      validation.FieldAmount,
	"status":      validation.FieldStatus,
}

// NewInvoiceCommand groups the invoice actions.
func NewInvoiceCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Create, update or delete invoices",
		Long: `Create, update or delete invoices through the same validated actions as the dashboard.

Example:
  chartyctl invoice create --customer-id c1 --amount 15.50 --status paid
  chartyctl invoice update 2f6c... --customer-id c1 --amount 20 --status pending
  chartyctl invoice delete 2f6c...`,
	}

	cmd.AddCommand(newActionCommand(rootOpts, "create", "Create an invoice dated today", cobra.NoArgs, invoiceFlags,
		func(ctx context.Context, svc *actions.Service, _ []string, form validation.Form) (actions.ActionState, error) {
			return svc.CreateInvoice(ctx, actions.ActionState{}, form)
		}))
	cmd.AddCommand(newActionCommand(rootOpts, "update <id>", "Update an invoice's customer, amount and status", cobra.ExactArgs(1), invoiceFlags,
		func(ctx context.Context, svc *actions.Service, args []string, form validation.Form) (actions.ActionState, error) {
			return svc.UpdateInvoice(ctx, args[0], actions.ActionState{}, form)
		}))
	cmd.AddCommand(newActionCommand(rootOpts, "delete <id>", "Delete an invoice", cobra.ExactArgs(1), nil,
		func(ctx context.Context, svc *actions.Service, args []string, _ validation.Form) (actions.ActionState, error) {
			return svc.DeleteInvoice(ctx, args[0])
		}))

	return cmd
}
