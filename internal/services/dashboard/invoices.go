package dashboard

import (
	"context"

	"charty-dashboard-backend/internal/cache"
	"charty-dashboard-backend/internal/repository"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// InvoiceTableRow is one line of the invoices table.
type InvoiceTableRow struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	ImageURL    string `json:"image_url"`
	AmountCents int64  `json:"amount_cents"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	Status      string `json:"status"`
}

// InvoiceForm hydrates the edit form. Amount is in dollars.
type InvoiceForm struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
}

type LatestInvoice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"`
}

func toTableRow(r repository.InvoiceRow, _ int) InvoiceTableRow {
	return InvoiceTableRow{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		Name:        r.Name,
		Email:       r.Email,
		ImageURL:    r.ImageURL,
		AmountCents: r.Amount,
		Amount:      FormatCurrency(r.Amount),
		Date:        r.Date.UTC().Format(dateLayout),
		Status:      r.Status,
	}
}

// FetchFilteredInvoices returns one page of the invoices table matching query.
func (s *Service) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]InvoiceTableRow, error) {
	page = normalizePage(page)
	key := cache.VersionedKey(ctx, s.cache, cache.PathInvoices, "rows", query, page)
	return cached(ctx, s, key, func() ([]InvoiceTableRow, error) {
		rows, err := s.invoices.SearchInvoices(ctx, query, page, s.itemsPerPage)
		if err != nil {
			return nil, err
		}
		return lo.Map(rows, toTableRow), nil
	})
}

// FetchInvoicesPages is the number of pages FetchFilteredInvoices has for query.
func (s *Service) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	key := cache.VersionedKey(ctx, s.cache, cache.PathInvoices, "pages", query)
	return cached(ctx, s, key, func() (int, error) {
		count, err := s.invoices.CountInvoices(ctx, query)
		if err != nil {
			return 0, err
		}
		return totalPages(count, s.itemsPerPage), nil
	})
}

func (s *Service) FetchInvoiceByID(ctx context.Context, id string) (*InvoiceForm, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &InvoiceForm{
		ID:         invoice.ID.String(),
		CustomerID: invoice.CustomerID,
		Amount:     CentsToDollars(invoice.Amount),
		Status:     invoice.Status,
	}, nil
}

func (s *Service) FetchLatestInvoices(ctx context.Context) ([]LatestInvoice, error) {
	key := cache.VersionedKey(ctx, s.cache, cache.PathDashboard, "latest")
	return cached(ctx, s, key, func() ([]LatestInvoice, error) {
		rows, err := s.invoices.Latest(ctx, latestInvoicesCount)
		if err != nil {
			return nil, err
		}
		return lo.Map(rows, func(r repository.InvoiceRow, _ int) LatestInvoice {
			return LatestInvoice{
				ID:       r.ID,
				Name:     r.Name,
				Email:    r.Email,
				ImageURL: r.ImageURL,
				Amount:   FormatCurrency(r.Amount),
			}
		}), nil
	})
}
