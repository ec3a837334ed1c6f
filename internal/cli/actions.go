package cli

import (
	"context"

	"charty-dashboard-backend/internal/cache"
	"charty-dashboard-backend/internal/repository"
	"charty-dashboard-backend/internal/services/actions"
	"charty-dashboard-backend/internal/validation"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func actionService(env *Env) *actions.Service {
	return actions.NewService(
		repository.NewInvoiceRepository(env.DB),
		repository.NewChartRepository(env.DB),
		cache.NewPathRevalidator(env.Cache, env.Log),
		env.Log,
	)
}

// formFromFlags copies every flag the user set into a form keyed by field
// name. Unset flags stay absent so validation can tell missing from blank.
func formFromFlags(flags *pflag.FlagSet, fields map[string]string) validation.Form {
	form := validation.Form{}
	flags.Visit(func(f *pflag.Flag) {
		if field, ok := fields[f.Name]; ok {
			form[field] = f.Value.String()
		}
	})
	return form
}

type actionFunc func(ctx context.Context, svc *actions.Service, args []string, form validation.Form) (actions.ActionState, error)

// newActionCommand builds one invoice/chart subcommand around an action.
func newActionCommand(rootOpts *RootOptions, use, short string, args cobra.PositionalArgs, fields map[string]string, run actionFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          args,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, posArgs []string) error {
		form := formFromFlags(cmd.Flags(), fields)
		return withEnv(cmd, rootOpts, func(ctx context.Context, env *Env) error {
			state, err := run(ctx, actionService(env), posArgs, form)
			if err != nil {
				return err
			}
			return writeState(cmd.OutOrStdout(), rootOpts.Format, state)
		})
	}
	for flag := range fields {
		cmd.Flags().String(flag, "", "form field "+fields[flag])
	}
	return cmd
}
