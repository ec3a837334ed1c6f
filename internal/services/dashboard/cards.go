package dashboard

import (
	"context"

	"charty-dashboard-backend/internal/cache"
	"charty-dashboard-backend/internal/models"

	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"
)

// CustomerField is one option of the invoice form's customer select.
type CustomerField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CardData struct {
	NumberOfInvoices     int64  `json:"number_of_invoices"`
	NumberOfCustomers    int64  `json:"number_of_customers"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}

func (s *Service) FetchCustomers(ctx context.Context) ([]CustomerField, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(customers, func(c models.Customer, _ int) CustomerField {
		return CustomerField{ID: c.ID, Name: c.Name}
	}), nil
}

// FetchCardData runs the three aggregate queries in parallel.
func (s *Service) FetchCardData(ctx context.Context) (CardData, error) {
	key := cache.VersionedKey(ctx, s.cache, cache.PathDashboard, "cards")
	return cached(ctx, s, key, func() (CardData, error) {
		var (
			invoiceCount  int64
			customerCount int64
			paid, pending int64
		)

		p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
		p.Go(func(ctx context.Context) error {
			var err error
			invoiceCount, err = s.invoices.Count(ctx)
			return err
		})
		p.Go(func(ctx context.Context) error {
			var err error
			customerCount, err = s.customers.Count(ctx)
			return err
		})
		p.Go(func(ctx context.Context) error {
			totals, err := s.invoices.StatusTotals(ctx)
			if err != nil {
				return err
			}
			for _, row := range totals {
				switch row.Status {
				case models.InvoiceStatusPaid:
					paid = row.Sum
				case models.InvoiceStatusPending:
					pending = row.Sum
				}
			}
			return nil
		})
		if err := p.Wait(); err != nil {
			return CardData{}, err
		}

		return CardData{
			NumberOfInvoices:     invoiceCount,
			NumberOfCustomers:    customerCount,
			TotalPaidInvoices:    FormatCurrency(paid),
			TotalPendingInvoices: FormatCurrency(pending),
		}, nil
	})
}
