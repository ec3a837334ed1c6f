package actions

import (
	"context"
	"time"

	"charty-dashboard-backend/internal/cache"
	"charty-dashboard-backend/internal/models"
	"charty-dashboard-backend/internal/validation"

	"gorm.io/datatypes"
)

// CreateInvoice inserts one invoice dated today and redirects to the invoice listing.
func (s *Service) CreateInvoice(ctx context.Context, _ ActionState, form validation.Form) (ActionState, error) {
	in, errs := validation.ParseInvoice(form)
	if !errs.Empty() {
		s.log.Warnw("validation failed", "operation", opCreate, "entity", entityInvoice, "errors", errs.String())
		return validationFailed(errs, opCreate, entityInvoice), nil
	}

	invoice := &models.Invoice{
		CustomerID: in.CustomerID,
		Amount:     in.AmountInCents(),
		Status:     in.Status,
		Date:       s.today(),
	}
	err := s.invoices.Create(ctx, invoice)
	return s.persisted(ctx, err, opCreate, entityInvoice, cache.PathInvoices, true)
}

// UpdateInvoice overwrites customer, amount and status of invoice id. The
// date stays as it was created.
func (s *Service) UpdateInvoice(ctx context.Context, id string, _ ActionState, form validation.Form) (ActionState, error) {
	in, errs := validation.ParseInvoice(form)
	if !errs.Empty() {
		s.log.Warnw("validation failed", "operation", opUpdate, "entity", entityInvoice, "id", id, "errors", errs.String())
		return validationFailed(errs, opUpdate, entityInvoice), nil
	}

	err := s.invoices.UpdateByID(ctx, id, in.CustomerID, in.AmountInCents(), in.Status)
	return s.persisted(ctx, err, opUpdate, entityInvoice, cache.PathInvoices, true)
}

// DeleteInvoice removes invoice id. It has no form and does not redirect.
func (s *Service) DeleteInvoice(ctx context.Context, id string) (ActionState, error) {
	err := s.invoices.DeleteByID(ctx, id)
	return s.persisted(ctx, err, opDelete, entityInvoice, cache.PathInvoices, false)
}

func (s *Service) today() datatypes.Date {
	now := s.now().UTC()
	return datatypes.Date(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))
}
