package repository

import (
	"context"
	"time"

	"charty-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) DB() *gorm.DB {
	return r.db
}

// InvoiceRow is an invoice joined with its customer. Customer columns are
// empty when the customer row does not exist.
type InvoiceRow struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ImageURL   string    `json:"image_url"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
	Date       time.Time `json:"date"`
}

// InvoiceStatusTotal is one row of the per-status aggregate.
type InvoiceStatusTotal struct {
	Status string
	Count  int64
	Sum    int64
}

const invoiceRowColumns = "invoices.id, invoices.customer_id, invoices.amount, invoices.status, invoices.date, " +
	"COALESCE(customers.name, '') AS name, COALESCE(customers.email, '') AS email, " +
	"COALESCE(customers.image_url, '') AS image_url"

// Create inserts a single invoice row. The id is assigned on insert.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	return wrapErr(r.db.WithContext(ctx).Create(invoice).Error, "create invoice")
}

// UpdateByID overwrites customer, amount and status. The date is never touched.
// Updating an id that matches no row is not an error.
// UpdateByID and DeleteByID are no-ops for ids that are not uuids, since no
// row can match them.
func (r *InvoiceRepository) UpdateByID(ctx context.Context, id, customerID string, amount int64, status string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"customer_id": customerID,
			"amount":      amount,
			"status":      status,
		}).Error
	return wrapErr(err, "update invoice")
}

// DeleteByID removes the row if present.
func (r *InvoiceRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Invoice{}).Error
	return wrapErr(err, "delete invoice")
}

// GetByID loads one invoice. An id that is not a uuid cannot match any row.
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, wrapErr(gorm.ErrRecordNotFound, "get invoice")
	}
	var invoice models.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if err != nil {
		return nil, wrapErr(err, "get invoice")
	}
	return &invoice, nil
}

func (r *InvoiceRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("invoices").
		Joins("LEFT JOIN customers ON customers.id = invoices.customer_id")
}

// withSearch matches query against customer name and email, the amount and
// date as text, and the status.
func withSearch(db *gorm.DB, query string) *gorm.DB {
	if query == "" {
		return db
	}
	like := likePattern(query)
	return db.Where(
		"(LOWER(customers.name) LIKE ? OR LOWER(customers.email) LIKE ? OR "+
			"CAST(invoices.amount AS TEXT) LIKE ? OR CAST(invoices.date AS TEXT) LIKE ? OR "+
			"LOWER(invoices.status) LIKE ?)",
		like, like, like, like, like,
	)
}

// SearchInvoices returns one page of invoices matching query, newest first.
func (r *InvoiceRepository) SearchInvoices(ctx context.Context, query string, page, perPage int) ([]InvoiceRow, error) {
	var rows []InvoiceRow
	err := withSearch(r.joined(ctx), query).
		Select(invoiceRowColumns).
		Order("invoices.date DESC").
		Order("invoices.id ASC").
		Limit(perPage).
		Offset(offsetFor(page, perPage)).
		Scan(&rows).Error
	if err != nil {
		return nil, wrapErr(err, "search invoices")
	}
	return rows, nil
}

func (r *InvoiceRepository) CountInvoices(ctx context.Context, query string) (int64, error) {
	var count int64
	err := withSearch(r.joined(ctx), query).Count(&count).Error
	return count, wrapErr(err, "count invoices")
}

// Latest returns the n most recent invoices with their customers.
func (r *InvoiceRepository) Latest(ctx context.Context, n int) ([]InvoiceRow, error) {
	var rows []InvoiceRow
	err := r.joined(ctx).
		Select(invoiceRowColumns).
		Order("invoices.date DESC").
		Order("invoices.id ASC").
		Limit(n).
		Scan(&rows).Error
	if err != nil {
		return nil, wrapErr(err, "latest invoices")
	}
	return rows, nil
}

// StatusTotals groups invoices by status with their count and amount sum.
func (r *InvoiceRepository) StatusTotals(ctx context.Context) ([]InvoiceStatusTotal, error) {
	var rows []InvoiceStatusTotal
	err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS sum").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapErr(err, "invoice status totals")
	}
	return rows, nil
}

func (r *InvoiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Invoice{}).Count(&count).Error
	return count, wrapErr(err, "count all invoices")
}
