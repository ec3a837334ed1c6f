package actions

import (
	"context"
	"time"

	"charty-dashboard-backend/internal/cache"
	ierr "charty-dashboard-backend/internal/errors"
	"charty-dashboard-backend/internal/logger"
	"charty-dashboard-backend/internal/models"
)

const (
	opCreate = "Create"
	opUpdate = "Update"
	opDelete = "Delete"

	entityInvoice = "Invoice"
	entityChart   = "Chart"
)

// InvoiceStore performs the single-row invoice statements.
type InvoiceStore interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	UpdateByID(ctx context.Context, id, customerID string, amount int64, status string) error
	DeleteByID(ctx context.Context, id string) error
}

// ChartStore performs the single-row chart statements, keyed by cid.
type ChartStore interface {
	Create(ctx context.Context, chart *models.Chart) error
	UpdateByCID(ctx context.Context, cid string, number int, title, image string) error
	DeleteByCID(ctx context.Context, cid string) error
}

type Service struct {
	invoices    InvoiceStore
	charts      ChartStore
	revalidator cache.Revalidator
	log         *logger.Logger
	now         func() time.Time
}

func NewService(invoices InvoiceStore, charts ChartStore, revalidator cache.Revalidator, log *logger.Logger) *Service {
	return &Service{
		invoices:    invoices,
		charts:      charts,
		revalidator: revalidator,
		log:         log.Named("actions"),
		now:         time.Now,
	}
}

// WithClock replaces the clock used to stamp invoice dates.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// persisted finishes an action once its statement ran. Store failures become
// a StoreFailed state; anything not marked as a database error is returned
// to the caller unchanged.
func (s *Service) persisted(ctx context.Context, err error, operation, entity, path string, redirect bool) (ActionState, error) {
	if err != nil {
		if !ierr.IsDatabase(err) {
			return ActionState{}, err
		}
		s.log.Warnw("store failed", "operation", operation, "entity", entity, "error", err)
		return storeFailed(operation, entity), nil
	}

	s.revalidator.Revalidate(ctx, path)
	s.log.Debugw("action succeeded", "operation", operation, "entity", entity)
	if !redirect {
		return ActionState{Outcome: OutcomeSucceeded, Message: "Deleted " + entity + "."}, nil
	}
	return redirected(path), nil
}
