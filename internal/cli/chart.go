package cli

import (
	"context"

	"charty-dashboard-backend/internal/services/actions"
	"charty-dashboard-backend/internal/validation"

	"github.com/spf13/cobra"
)

var chartFlags = map[string]string{
	"id":    validation.FieldChartNumber,
	"title": validation.FieldTitle,
	"image": validation.FieldImage,
}

// NewChartCommand groups the chart actions. Charts are addressed by cid.
func NewChartCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Create, update or delete charts",
		Long: `Create, update or delete charts through the same validated actions as the dashboard.

Example:
  chartyctl chart create --id 3 --title Tides --image /charts/tides.png
  chartyctl chart update x1 --id 7 --title "Solar System" --image /charts/solar.png
  chartyctl chart delete x1`,
	}

	cmd.AddCommand(newActionCommand(rootOpts, "create", "Create a chart", cobra.NoArgs, chartFlags,
		func(ctx context.Context, svc *actions.Service, _ []string, form validation.Form) (actions.ActionState, error) {
			return svc.CreateChart(ctx, actions.ActionState{}, form)
		}))
	cmd.AddCommand(newActionCommand(rootOpts, "update <cid>", "Update a chart's id, title and image", cobra.ExactArgs(1), chartFlags,
		func(ctx context.Context, svc *actions.Service, args []string, form validation.Form) (actions.ActionState, error) {
			return svc.UpdateChart(ctx, args[0], actions.ActionState{}, form)
		}))
	cmd.AddCommand(newActionCommand(rootOpts, "delete <cid>", "Delete a chart", cobra.ExactArgs(1), nil,
		func(ctx context.Context, svc *actions.Service, args []string, _ validation.Form) (actions.ActionState, error) {
			return svc.DeleteChart(ctx, args[0])
		}))

	return cmd
}
