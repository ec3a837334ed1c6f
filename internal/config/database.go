package config

import (
	"context"
	"fmt"
	"time"

	"charty-dashboard-backend/internal/logger"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// InitDB opens the postgres connection, retrying with exponential backoff until
// ConnectTimeout elapses, and tunes the pool.
func InitDB(ctx context.Context, cfg PostgresConfig, log *logger.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         log.GormLogger(),
		NamingStrategy: schema.NamingStrategy{SingularTable: false},
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxInterval = 30 * time.Second
	policy.MaxElapsedTime = cfg.ConnectTimeout

	var db *gorm.DB
	attempt := 0
	connect := func() error {
		attempt++
		var err error
		db, err = gorm.Open(postgres.Open(cfg.GetDSN()), gormCfg)
		if err != nil {
			log.Warnw("failed to connect database", "attempt", attempt, "error", err)
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return backoff.Permanent(err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			log.Warnw("database ping failed", "attempt", attempt, "error", err)
			return err
		}
		return nil
	}

	if err := backoff.Retry(connect, backoff.WithContext(policy, ctx)); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns >= 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	log.Infow("connected to database", "attempt", attempt)
	return db, nil
}
