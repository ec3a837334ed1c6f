package actions

import (
	"charty-dashboard-backend/internal/models"
	"charty-dashboard-backend/internal/testutil"
)

func newInvoice() *models.Invoice {
	return &models.Invoice{CustomerID: "c1", Amount: 100, Status: models.InvoiceStatusPaid, Date: testutil.Date(2024, 1, 2)}
}
