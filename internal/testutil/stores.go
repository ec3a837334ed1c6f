package testutil

import (
	"context"
	"sync"

	"charty-dashboard-backend/internal/models"

	"github.com/google/uuid"
)

// InvoiceUpdate records one UpdateByID call.
type InvoiceUpdate struct {
	ID         string
	CustomerID string
	Amount     int64
	Status     string
}

// InMemoryInvoiceStore is a fake invoice store that records every mutating
// call. Set Err to make every call fail with it.
type InMemoryInvoiceStore struct {
	mu      sync.Mutex
	Err     error
	Rows    map[string]models.Invoice
	Creates []models.Invoice
	Updates []InvoiceUpdate
	Deletes []string
}

func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{Rows: map[string]models.Invoice{}}
}

func (s *InMemoryInvoiceStore) Create(_ context.Context, invoice *models.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Creates = append(s.Creates, *invoice)
	if s.Err != nil {
		return s.Err
	}
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	s.Rows[invoice.ID.String()] = *invoice
	return nil
}

func (s *InMemoryInvoiceStore) UpdateByID(_ context.Context, id, customerID string, amount int64, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Updates = append(s.Updates, InvoiceUpdate{ID: id, CustomerID: customerID, Amount: amount, Status: status})
	if s.Err != nil {
		return s.Err
	}
	if row, ok := s.Rows[id]; ok {
		row.CustomerID, row.Amount, row.Status = customerID, amount, status
		s.Rows[id] = row
	}
	return nil
}

func (s *InMemoryInvoiceStore) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Deletes = append(s.Deletes, id)
	if s.Err != nil {
		return s.Err
	}
	delete(s.Rows, id)
	return nil
}

// Mutations is the number of mutating calls received.
func (s *InMemoryInvoiceStore) Mutations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Creates) + len(s.Updates) + len(s.Deletes)
}

// ChartUpdate records one UpdateByCID call.
type ChartUpdate struct {
	CID    string
	Number int
	Title  string
	Image  string
}

type InMemoryChartStore struct {
	mu      sync.Mutex
	Err     error
	Rows    map[string]models.Chart
	Creates []models.Chart
	Updates []ChartUpdate
	Deletes []string
}

func NewInMemoryChartStore() *InMemoryChartStore {
	return &InMemoryChartStore{Rows: map[string]models.Chart{}}
}

func (s *InMemoryChartStore) Create(_ context.Context, chart *models.Chart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Creates = append(s.Creates, *chart)
	if s.Err != nil {
		return s.Err
	}
	if chart.CID == "" {
		chart.CID = uuid.NewString()
	}
	s.Rows[chart.CID] = *chart
	return nil
}

func (s *InMemoryChartStore) UpdateByCID(_ context.Context, cid string, number int, title, image string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Updates = append(s.Updates, ChartUpdate{CID: cid, Number: number, Title: title, Image: image})
	if s.Err != nil {
		return s.Err
	}
	if row, ok := s.Rows[cid]; ok {
		row.Number, row.Title, row.Image = number, title, image
		s.Rows[cid] = row
	}
	return nil
}

func (s *InMemoryChartStore) DeleteByCID(_ context.Context, cid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Deletes = append(s.Deletes, cid)
	if s.Err != nil {
		return s.Err
	}
	delete(s.Rows, cid)
	return nil
}

func (s *InMemoryChartStore) Mutations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Creates) + len(s.Updates) + len(s.Deletes)
}

// RecordingRevalidator remembers every revalidated path.
type RecordingRevalidator struct {
	mu    sync.Mutex
	paths []string
}

func (r *RecordingRevalidator) Revalidate(_ context.Context, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *RecordingRevalidator) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}
