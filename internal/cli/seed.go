package cli

import (
	"context"
	"errors"
	"fmt"

	"charty-dashboard-backend/internal/models"
	"charty-dashboard-backend/internal/repository"
	"charty-dashboard-backend/internal/services/auth"

	"github.com/spf13/cobra"
)

// SeedUserOptions holds flags for the seed-user command.
type SeedUserOptions struct {
	*RootOptions
	Email    string
	Name     string
	Password string
}

func NewSeedUserCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedUserOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed-user",
		Short: "Create a dashboard login",
		Long: `Create a dashboard login with a bcrypt-hashed password.

Example:
  chartyctl seed-user --email user@nextmail.com --name User --password 123456`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Email == "" || len(opts.Password) < 6 {
				return errors.New("--email is required and --password needs at least 6 characters")
			}
			return withEnv(cmd, rootOpts, func(ctx context.Context, env *Env) error {
				hash, err := auth.HashPassword(opts.Password)
				if err != nil {
					return err
				}
				user := &models.User{Name: opts.Name, Email: opts.Email, Password: hash}
				if err := repository.NewUserRepository(env.DB).Create(ctx, user); err != nil {
					return fmt.Errorf("seed user: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", user.Email, user.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.Email, "email", "", "login email")
	cmd.Flags().StringVar(&opts.Name, "name", "", "display name")
	cmd.Flags().StringVar(&opts.Password, "password", "", "plain-text password, stored hashed")

	return cmd
}
