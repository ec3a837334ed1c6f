// Package dashboard holds the read-side fetchers behind the dashboard pages:
// searchable paginated listings, single records for edit forms, the customer
// picker and the summary cards. Listing results are cached per path and
// dropped when a mutation revalidates that path.
package dashboard

import (
	"context"
	"math"
	"time"

	"charty-dashboard-backend/internal/cache"
	"charty-dashboard-backend/internal/logger"
	"charty-dashboard-backend/internal/models"
	"charty-dashboard-backend/internal/repository"
)

const latestInvoicesCount = 5

type InvoiceReader interface {
	SearchInvoices(ctx context.Context, query string, page, perPage int) ([]repository.InvoiceRow, error)
	CountInvoices(ctx context.Context, query string) (int64, error)
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	Latest(ctx context.Context, n int) ([]repository.InvoiceRow, error)
	StatusTotals(ctx context.Context) ([]repository.InvoiceStatusTotal, error)
	Count(ctx context.Context) (int64, error)
}

type ChartReader interface {
	SearchCharts(ctx context.Context, query string, page, perPage int) ([]models.Chart, error)
	CountCharts(ctx context.Context, query string) (int64, error)
	GetByCID(ctx context.Context, cid string) (*models.Chart, error)
}

type CustomerReader interface {
	List(ctx context.Context) ([]models.Customer, error)
	Count(ctx context.Context) (int64, error)
}

type Service struct {
	invoices     InvoiceReader
	charts       ChartReader
	customers    CustomerReader
	cache        cache.Cache
	ttl          time.Duration
	itemsPerPage int
	log          *logger.Logger
}

type Options struct {
	ItemsPerPage int
	CacheTTL     time.Duration
}

func NewService(
	invoices InvoiceReader,
	charts ChartReader,
	customers CustomerReader,
	c cache.Cache,
	opts Options,
	log *logger.Logger,
) *Service {
	if opts.ItemsPerPage <= 0 {
		opts.ItemsPerPage = 6
	}
	return &Service{
		invoices:     invoices,
		charts:       charts,
		customers:    customers,
		cache:        c,
		ttl:          opts.CacheTTL,
		itemsPerPage: opts.ItemsPerPage,
		log:          log.Named("dashboard"),
	}
}

func (s *Service) ItemsPerPage() int {
	return s.itemsPerPage
}

// cached serves key from the listing cache or fills it with load.
func cached[T any](ctx context.Context, s *Service, key string, load func() (T, error)) (T, error) {
	var out T
	if cache.GetJSON(ctx, s.cache, key, &out) {
		return out, nil
	}

	out, err := load()
	if err != nil {
		return out, err
	}
	cache.SetJSON(ctx, s.cache, key, out, s.ttl)
	s.log.Debugw("listing cache filled", "key", key)
	return out, nil
}

func totalPages(count int64, perPage int) int {
	return int(math.Ceil(float64(count) / float64(perPage)))
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
