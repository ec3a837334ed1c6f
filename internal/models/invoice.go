package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// InvoiceStatuses lists the allowed values of Invoice.Status.
var InvoiceStatuses = []string{InvoiceStatusPending, InvoiceStatusPaid}

// Invoice amounts are stored in cents.
type Invoice struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID string         `gorm:"type:varchar(64);index;not null" json:"customer_id"`
	Amount     int64          `gorm:"not null" json:"amount"`
	Status     string         `gorm:"type:varchar(16);index;not null" json:"status"`
	Date       datatypes.Date `gorm:"not null" json:"date"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
