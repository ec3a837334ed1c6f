package cli

import (
	"context"
	"fmt"

	"charty-dashboard-backend/internal/cache"
	"charty-dashboard-backend/internal/config"
	"charty-dashboard-backend/internal/logger"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// Env is what the commands run against.
type Env struct {
	DB    *gorm.DB
	Cache cache.Cache
	Log   *logger.Logger
	Close func()
}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Open connects to the store. Tests replace it.
	Open func(ctx context.Context, opts *RootOptions) (*Env, error)
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for chartyctl.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{Open: openFromConfig})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chartyctl",
		Short: "Administer the Charty dashboard store",
		Long:  "Run the dashboard's invoice and chart actions, migrations and user seeding from the shell.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !lo.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedUserCommand(opts))
	cmd.AddCommand(NewInvoiceCommand(opts))
	cmd.AddCommand(NewChartCommand(opts))

	return cmd
}

// openFromConfig connects the same way the server does, so mutations made
// here revalidate a shared Redis listing cache.
func openFromConfig(ctx context.Context, opts *RootOptions) (*Env, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if opts.Verbose {
		level = "debug"
	}
	log, err := logger.NewLogger(cfg.App.Env, level)
	if err != nil {
		return nil, err
	}

	db, err := config.InitDB(ctx, cfg.Postgres, log)
	if err != nil {
		return nil, err
	}
	redisClient, err := config.InitRedis(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}

	return &Env{
		DB:    db,
		Cache: cache.New(redisClient, cfg.Cache.TTL, log),
		Log:   log,
		Close: func() {
			if redisClient != nil {
				_ = redisClient.Close()
			}
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
			_ = log.Sync()
		},
	}, nil
}

// withEnv opens the store for the duration of run.
func withEnv(cmd *cobra.Command, opts *RootOptions, run func(ctx context.Context, env *Env) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	env, err := opts.Open(ctx, opts)
	if err != nil {
		return err
	}
	if env.Close != nil {
		defer env.Close()
	}
	return run(ctx, env)
}
