package dashboard

import (
	"context"
	"sync"
	"testing"
	"time"

	"charty-dashboard-backend/internal/cache"
	ierr "charty-dashboard-backend/internal/errors"
	"charty-dashboard-backend/internal/logger"
	"charty-dashboard-backend/internal/models"
	"charty-dashboard-backend/internal/repository"
	"charty-dashboard-backend/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[int64]string{
		0:          "$0.00",
		5:          "$0.05",
		1550:       "$15.50",
		123450:     "$1,234.50",
		1234567890: "$12,345,678.90",
		-2500:      "-$25.00",
	}
	for cents, want := range cases {
		assert.Equal(t, want, FormatCurrency(cents), cents)
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 6))
	assert.Equal(t, 1, totalPages(6, 6))
	assert.Equal(t, 2, totalPages(7, 6))
}

type DashboardSuite struct {
	suite.Suite
	ctx     context.Context
	db      *gorm.DB
	cache   *cache.InMemoryCache
	service *Service
	invoice *models.Invoice
}

func TestDashboard(t *testing.T) {
	suite.Run(t, new(DashboardSuite))
}

func (s *DashboardSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testutil.NewTestDB(s.T())
	s.cache = cache.NewInMemoryCache(time.Minute)
	s.service = NewService(
		repository.NewInvoiceRepository(s.db),
		repository.NewChartRepository(s.db),
		repository.NewCustomerRepository(s.db),
		s.cache,
		Options{ItemsPerPage: 2, CacheTTL: time.Minute},
		logger.NewNop(),
	)

	s.invoice = &models.Invoice{CustomerID: "c1", Amount: 15795, Status: "pending", Date: testutil.Date(2022, time.December, 6)}
	testutil.Seed(s.T(), s.db,
		&models.Customer{ID: "c1", Name: "Delba de Oliveira", Email: "delba@oliveira.com"},
		&models.Customer{ID: "c2", Name: "Amy Burns", Email: "amy@burns.com"},
		s.invoice,
		&models.Invoice{CustomerID: "c2", Amount: 20348, Status: "pending", Date: testutil.Date(2022, time.November, 14)},
		&models.Invoice{CustomerID: "c1", Amount: 3040, Status: "paid", Date: testutil.Date(2023, time.June, 5)},
		&models.Chart{CID: "x1", Number: 1, Title: "Solar System", Image: "/charts/solar.png"},
	)
}

func (s *DashboardSuite) TestFetchFilteredInvoices() {
	rows, err := s.service.FetchFilteredInvoices(s.ctx, "", 1)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("$30.40", rows[0].Amount)
	s.Equal("2023-06-05", rows[0].Date)
	s.Equal("Delba de Oliveira", rows[0].Name)

	rows, err = s.service.FetchFilteredInvoices(s.ctx, "", 2)
	s.Require().NoError(err)
	s.Len(rows, 1)

	rows, err = s.service.FetchFilteredInvoices(s.ctx, "amy", 0)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(int64(20348), rows[0].AmountCents)

	pages, err := s.service.FetchInvoicesPages(s.ctx, "")
	s.Require().NoError(err)
	s.Equal(2, pages)
}

func (s *DashboardSuite) TestListingCacheUntilRevalidated() {
	rows, err := s.service.FetchFilteredInvoices(s.ctx, "", 1)
	s.Require().NoError(err)
	first := rows[0].ID

	testutil.Seed(s.T(), s.db, &models.Invoice{CustomerID: "c2", Amount: 100, Status: "paid", Date: testutil.Date(2024, time.January, 1)})

	rows, err = s.service.FetchFilteredInvoices(s.ctx, "", 1)
	s.Require().NoError(err)
	s.Equal(first, rows[0].ID, "served from cache")

	cache.NewPathRevalidator(s.cache, logger.NewNop()).Revalidate(s.ctx, cache.PathInvoices)

	rows, err = s.service.FetchFilteredInvoices(s.ctx, "", 1)
	s.Require().NoError(err)
	s.Equal("$1.00", rows[0].Amount)
}

func (s *DashboardSuite) TestFetchInvoiceByID() {
	form, err := s.service.FetchInvoiceByID(s.ctx, s.invoice.ID.String())
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("157.95").Equal(form.Amount))
	s.Equal("c1", form.CustomerID)

	_, err = s.service.FetchInvoiceByID(s.ctx, "00000000-0000-0000-0000-000000000000")
	s.True(ierr.IsNotFound(err))
}

func (s *DashboardSuite) TestFetchLatestInvoices() {
	latest, err := s.service.FetchLatestInvoices(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(latest, 3)
	s.Equal("$30.40", latest[0].Amount)
}

func (s *DashboardSuite) TestFetchCardData() {
	cards, err := s.service.FetchCardData(s.ctx)
	s.Require().NoError(err)
	s.Equal(CardData{
		NumberOfInvoices:     3,
		NumberOfCustomers:    2,
		TotalPaidInvoices:    "$30.40",
		TotalPendingInvoices: "$361.43",
	}, cards)
}

func (s *DashboardSuite) TestFetchCustomersOrderedByName() {
	customers, err := s.service.FetchCustomers(s.ctx)
	s.Require().NoError(err)
	s.Equal([]CustomerField{{ID: "c2", Name: "Amy Burns"}, {ID: "c1", Name: "Delba de Oliveira"}}, customers)
}

func (s *DashboardSuite) TestCharts() {
	charts, err := s.service.FetchFilteredCharts(s.ctx, "solar", 1)
	s.Require().NoError(err)
	s.Require().Len(charts, 1)
	s.Equal("x1", charts[0].CID)

	charts, err = s.service.FetchFilteredCharts(s.ctx, "nothing", 1)
	s.Require().NoError(err)
	s.NotNil(charts)
	s.Empty(charts)

	pages, err := s.service.FetchChartsPages(s.ctx, "")
	s.Require().NoError(err)
	s.Equal(1, pages)

	chart, err := s.service.FetchChartByID(s.ctx, "x1")
	s.Require().NoError(err)
	s.Equal("Solar System", chart.Title)

	_, err = s.service.FetchChartByID(s.ctx, "missing")
	s.True(ierr.IsNotFound(err))
}

func TestFetchCardDataStoreFailure(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewService(
		repository.NewInvoiceRepository(db),
		repository.NewChartRepository(db),
		repository.NewCustomerRepository(db),
		cache.NewInMemoryCache(time.Minute),
		Options{},
		logger.NewNop(),
	)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = svc.FetchCardData(context.Background())
	assert.True(t, ierr.IsDatabase(err))
	assert.Equal(t, 6, svc.ItemsPerPage())
}

// blockingCharts parks the first SearchCharts call until release is closed.
type blockingCharts struct {
	title   string
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (b *blockingCharts) SearchCharts(_ context.Context, _ string, _, _ int) ([]models.Chart, error) {
	title := b.title
	b.once.Do(func() {
		close(b.entered)
		<-b.release
	})
	return []models.Chart{{CID: "x1", Number: 1, Title: title}}, nil
}

func (b *blockingCharts) CountCharts(context.Context, string) (int64, error) { return 1, nil }

func (b *blockingCharts) GetByCID(context.Context, string) (*models.Chart, error) {
	return nil, ierr.ErrNotFound
}

func TestListingFillRacingRevalidateIsNotServed(t *testing.T) {
	ctx := context.Background()
	c := cache.NewInMemoryCache(time.Minute)
	charts := &blockingCharts{title: "old", entered: make(chan struct{}), release: make(chan struct{})}
	db := testutil.NewTestDB(t)
	svc := NewService(
		repository.NewInvoiceRepository(db),
		charts,
		repository.NewCustomerRepository(db),
		c,
		Options{CacheTTL: time.Minute},
		logger.NewNop(),
	)

	done := make(chan []models.Chart)
	go func() {
		rows, _ := svc.FetchFilteredCharts(ctx, "", 1)
		done <- rows
	}()

	<-charts.entered
	charts.title = "new"
	cache.NewPathRevalidator(c, logger.NewNop()).Revalidate(ctx, cache.PathCharts)
	close(charts.release)

	stale := <-done
	require.Len(t, stale, 1)
	assert.Equal(t, "old", stale[0].Title)

	rows, err := svc.FetchFilteredCharts(ctx, "", 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "new", rows[0].Title)
}
